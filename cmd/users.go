package cmd

import (
	"errors"
	"strings"

	"github.com/lehigh-university-libraries/libadmin/internal/coordinator"
	"github.com/lehigh-university-libraries/libadmin/internal/models"
	"github.com/lehigh-university-libraries/libadmin/internal/render"
	"github.com/spf13/cobra"
)

func newUsersCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "List, add, edit and delete library users",
	}

	cmd.AddCommand(newUsersListCmd(flags))
	cmd.AddCommand(newUsersGetCmd(flags))
	cmd.AddCommand(newUsersAddCmd(flags))
	cmd.AddCommand(newUsersEditCmd(flags))
	cmd.AddCommand(newUsersDeleteCmd(flags))

	return cmd
}

func newUsersListCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			if err := a.users.Load(cmd.Context()); err != nil {
				return alerted(err)
			}
			return a.users.Table().Write(a.out, a.format)
		},
	}
}

func newUsersGetCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			user, err := a.client.Users().Get(cmd.Context(), args[0])
			if err != nil {
				return lookupError("user", args[0], err)
			}
			return a.write(render.UserHeaders, []render.Row{render.UserRow(render.Handlers{})(user)})
		},
	}
}

// userFields binds the user form flags
type userFields struct {
	userID string
	name   string
	email  string
	role   string
}

func (f *userFields) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.userID, "user-id", "", "Library user ID")
	cmd.Flags().StringVar(&f.name, "name", "", "Full name")
	cmd.Flags().StringVar(&f.email, "email", "", "Email address")
	cmd.Flags().StringVar(&f.role, "role", "", "Role (admin, staff or user)")
}

// apply overlays the flags that were set on u
func (f *userFields) apply(cmd *cobra.Command, u models.User) models.User {
	set := cmd.Flags().Changed
	if set("user-id") {
		u.UserID = f.userID
	}
	if set("name") {
		u.Name = f.name
	}
	if set("email") {
		u.Email = f.email
	}
	if set("role") {
		u.Role = strings.ToLower(f.role)
	}
	return u
}

func newUsersAddCmd(flags *globalFlags) *cobra.Command {
	fields := &userFields{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new user",
		Example: `  libadmin users add --user-id u1 --name "Ann Lee" --email ann@example.edu --role admin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			a.users.OpenCreate()
			_, err = a.users.Submit(cmd.Context(), fields.apply(cmd, a.users.Form().Fields()))
			return alerted(err)
		},
	}
	fields.register(cmd)

	return cmd
}

func newUsersEditCmd(flags *globalFlags) *cobra.Command {
	fields := &userFields{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing user",
		Long: `Loads the user, applies only the flags given, and saves the result.

Fields without a flag keep their current value.`,
		Example: `  libadmin users edit 64f1c2 --role staff`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			if err := a.users.OpenEdit(cmd.Context(), args[0]); err != nil {
				return alerted(err)
			}
			_, err = a.users.Submit(cmd.Context(), fields.apply(cmd, a.users.Form().Fields()))
			return alerted(err)
		},
	}
	fields.register(cmd)

	return cmd
}

func newUsersDeleteCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			err = a.users.Delete(cmd.Context(), args[0])
			if errors.Is(err, coordinator.ErrCancelled) {
				return nil
			}
			return alerted(err)
		},
	}
}
