package cmd

import (
	"errors"
	"net/url"
	"strings"

	"github.com/lehigh-university-libraries/libadmin/internal/coordinator"
	"github.com/lehigh-university-libraries/libadmin/internal/models"
	"github.com/lehigh-university-libraries/libadmin/internal/render"
	"github.com/spf13/cobra"
)

func newBooksCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "books",
		Aliases: []string{"book"},
		Short:   "List, search, add, edit and delete books",
	}

	cmd.AddCommand(newBooksListCmd(flags))
	cmd.AddCommand(newBooksGetCmd(flags))
	cmd.AddCommand(newBooksSearchCmd(flags))
	cmd.AddCommand(newBooksAddCmd(flags))
	cmd.AddCommand(newBooksEditCmd(flags))
	cmd.AddCommand(newBooksDeleteCmd(flags))

	return cmd
}

func newBooksListCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			if err := a.books.Load(cmd.Context()); err != nil {
				return alerted(err)
			}
			return a.books.Table().Write(a.out, a.format)
		},
	}
}

func newBooksGetCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			book, err := a.client.Books().Get(cmd.Context(), args[0])
			if err != nil {
				return lookupError("book", args[0], err)
			}
			return a.write(render.BookHeaders, []render.Row{render.BookRow(render.Handlers{})(book)})
		},
	}
}

func newBooksSearchCmd(flags *globalFlags) *cobra.Command {
	var department string

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search books by title, author or ISBN",
		Example: `  # Titles, authors or ISBNs containing "dune"
  libadmin books search dune

  # Every book of one department
  libadmin books search --department Science`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}

			query := url.Values{}
			if len(args) == 1 && args[0] != "" {
				query.Set("search", args[0])
			}
			if department != "" {
				query.Set("department", department)
			}

			books, err := a.client.Books().Search(cmd.Context(), query)
			if err != nil {
				return err
			}
			rows := make([]render.Row, 0, len(books))
			tmpl := render.BookRow(render.Handlers{})
			for _, b := range books {
				rows = append(rows, tmpl(b))
			}
			return a.write(render.BookHeaders, rows)
		},
	}
	cmd.Flags().StringVar(&department, "department", "", "Only books of this department")

	return cmd
}

// bookFields binds the book form flags
type bookFields struct {
	title      string
	author     string
	isbn       string
	status     string
	department string
}

func (f *bookFields) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Title")
	cmd.Flags().StringVar(&f.author, "author", "", "Author")
	cmd.Flags().StringVar(&f.isbn, "isbn", "", "ISBN")
	cmd.Flags().StringVar(&f.status, "status", "", "Status ("+strings.Join(models.BookStatuses, ", ")+")")
	cmd.Flags().StringVar(&f.department, "department", "", "Department")
}

// apply overlays the flags that were set on b
func (f *bookFields) apply(cmd *cobra.Command, b models.Book) models.Book {
	set := cmd.Flags().Changed
	if set("title") {
		b.Title = f.title
	}
	if set("author") {
		b.Author = f.author
	}
	if set("isbn") {
		b.ISBN = f.isbn
	}
	if set("status") {
		b.Status = strings.ToLower(f.status)
	}
	if set("department") {
		b.Department = f.department
	}
	return b
}

func newBooksAddCmd(flags *globalFlags) *cobra.Command {
	fields := &bookFields{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new book",
		Example: `  libadmin books add --title Dune --author "Frank Herbert" --isbn 9780441013593 --status available`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			a.books.OpenCreate()
			_, err = a.books.Submit(cmd.Context(), fields.apply(cmd, a.books.Form().Fields()))
			return alerted(err)
		},
	}
	fields.register(cmd)

	return cmd
}

func newBooksEditCmd(flags *globalFlags) *cobra.Command {
	fields := &bookFields{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing book",
		Long: `Loads the book, applies only the flags given, and saves the result.

Fields without a flag keep their current value.`,
		Example: `  libadmin books edit 64f1c2 --status borrowed`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			if err := a.books.OpenEdit(cmd.Context(), args[0]); err != nil {
				return alerted(err)
			}
			_, err = a.books.Submit(cmd.Context(), fields.apply(cmd, a.books.Form().Fields()))
			return alerted(err)
		},
	}
	fields.register(cmd)

	return cmd
}

func newBooksDeleteCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a book after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			err = a.books.Delete(cmd.Context(), args[0])
			if errors.Is(err, coordinator.ErrCancelled) {
				return nil
			}
			return alerted(err)
		},
	}
}
