package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/fang"
	"github.com/lehigh-university-libraries/libadmin/internal/api"
)

// alertedError is an error the terminal presenter has already shown
type alertedError struct {
	err error
}

func (e *alertedError) Error() string { return e.err.Error() }

func (e *alertedError) Unwrap() error { return e.err }

// alerted marks err as shown so HandleError does not print it again
func alerted(err error) error {
	if err == nil {
		return nil
	}
	return &alertedError{err: err}
}

// HandleError prints command errors, skipping those already alerted
func HandleError(w io.Writer, styles fang.Styles, err error) {
	var shown *alertedError
	if errors.As(err, &shown) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// lookupError names the missing record when the backend answered 404
func lookupError(noun, id string, err error) error {
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) && reqErr.NotFound() {
		return fmt.Errorf("%s %s not found: %w", noun, id, err)
	}
	return err
}
