// Package console presents alerts and confirmations in a terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Terminal writes alerts to Out and reads confirmations from In
type Terminal struct {
	Out io.Writer
	In  io.Reader
	// AssumeYes answers every confirmation with yes without prompting
	AssumeYes bool

	reader *bufio.Reader
}

func NewTerminal(out io.Writer, in io.Reader, assumeYes bool) *Terminal {
	return &Terminal{Out: out, In: in, AssumeYes: assumeYes}
}

func (t *Terminal) Alert(_ context.Context, msg string) {
	if _, err := fmt.Fprintln(t.Out, msg); err != nil {
		slog.Error("Unable to write alert", "err", err)
	}
}

// Confirm asks a yes/no question. Anything but y or yes is a no. The prompt
// is abandoned when ctx is cancelled.
func (t *Terminal) Confirm(ctx context.Context, prompt string) (bool, error) {
	if t.AssumeYes {
		return true, nil
	}
	if _, err := fmt.Fprintf(t.Out, "%s [y/N]: ", prompt); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}
	if t.reader == nil {
		t.reader = bufio.NewReader(t.In)
	}

	type answer struct {
		line string
		err  error
	}
	answers := make(chan answer, 1)
	go func() {
		line, err := t.reader.ReadString('\n')
		answers <- answer{line, err}
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case a := <-answers:
		if a.err != nil && !errors.Is(a.err, io.EOF) {
			return false, fmt.Errorf("failed to read confirmation input: %w", a.err)
		}
		switch strings.ToLower(strings.TrimSpace(a.line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}
