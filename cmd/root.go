package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lehigh-university-libraries/libadmin/internal/api"
	"github.com/lehigh-university-libraries/libadmin/internal/config"
	"github.com/lehigh-university-libraries/libadmin/internal/console"
	"github.com/lehigh-university-libraries/libadmin/internal/coordinator"
	"github.com/lehigh-university-libraries/libadmin/internal/models"
	"github.com/lehigh-university-libraries/libadmin/internal/render"
	"github.com/lehigh-university-libraries/libadmin/internal/validation"
	"github.com/spf13/cobra"
)

// globalFlags are the persistent flags shared by every subcommand
type globalFlags struct {
	configPath string
	baseURL    string
	output     string
	yes        bool
	verbose    bool
}

func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "libadmin",
		Short: "Library administration console for users and books",
		Long: `libadmin manages the users and books of a library backend over its REST API.

Every change is validated locally, sent to the backend, and followed by a
fresh reload of the affected list so what you see always matches the server.

` + config.Usage(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			config.SetupLogging(flags.verbose)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML config file")
	pf.StringVar(&flags.baseURL, "base-url", "", "Backend API base URL (overrides LIBADMIN_BASE_URL)")
	pf.StringVarP(&flags.output, "output", "o", "", "Output format: "+strings.Join(render.Formats, ", "))
	pf.BoolVarP(&flags.yes, "yes", "y", false, "Answer yes to every confirmation")
	pf.BoolVar(&flags.verbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newUsersCmd(flags))
	cmd.AddCommand(newBooksCmd(flags))
	cmd.AddCommand(newDashboardCmd(flags))
	cmd.AddCommand(newPagesCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newServeCmd())

	return cmd
}

// app is the console wired for one command invocation
type app struct {
	cfg    *config.Config
	client *api.Client
	out    io.Writer
	format string

	dashboard *coordinator.Dashboard
	users     *coordinator.Coordinator[models.User]
	books     *coordinator.Coordinator[models.Book]
}

func newApp(cmd *cobra.Command, flags *globalFlags) (*app, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.baseURL != "" {
		cfg.BaseURL = flags.baseURL
	}
	if flags.output != "" {
		cfg.Output = flags.output
	}
	if !slices.Contains(render.Formats, cfg.Output) {
		return nil, fmt.Errorf("unsupported output format %q (supported: %s)", cfg.Output, strings.Join(render.Formats, ", "))
	}

	client := api.New(cfg.API())
	terminal := console.NewTerminal(cmd.ErrOrStderr(), cmd.InOrStdin(), flags.yes)

	a := &app{
		cfg:       cfg,
		client:    client,
		out:       cmd.OutOrStdout(),
		format:    cfg.Output,
		dashboard: coordinator.NewDashboard(client.Users(), client.Books()),
	}
	a.users = coordinator.New(coordinator.Config[models.User]{
		Noun:      "user",
		Resource:  client.Users(),
		Validate:  validation.UserValidator(cfg.Roles),
		Headers:   render.UserHeaders,
		Template:  render.UserRow,
		Presenter: terminal,
	})
	a.books = coordinator.New(coordinator.Config[models.Book]{
		Noun:      "book",
		Resource:  client.Books(),
		Validate:  validation.ValidateBook,
		Headers:   render.BookHeaders,
		Template:  render.BookRow,
		Presenter: terminal,
	})
	return a, nil
}

// write prints a one-off table in the selected format
func (a *app) write(headers []string, rows []render.Row) error {
	t := render.NewTable(headers...)
	t.Replace(rows)
	return t.Write(a.out, a.format)
}
