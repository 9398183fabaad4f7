package command

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/stolasapp/syllabus/internal/sec"
	"github.com/stolasapp/syllabus/internal/storage/db"
)

func userCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User commands",
	}
	cmd.AddCommand(
		userCreateCommand(),
		userDeleteCommand(),
	)
	return cmd
}

func userCreateCommand() *cobra.Command {
	var firstName, lastName string
	cmd := &cobra.Command{
		Use:   "create EMAIL",
		Short: "Create user",
		Long: "Creates a user for the provided email address and password. Passwords may be\n" +
			"provided via stdin or through the interactive prompt.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s session) error {
				email := args[0]
				passwd, err := stdConsole().askSecret("password: ")
				if err != nil {
					return err
				}
				hash, err := sec.HashPassword(passwd)
				if err != nil {
					return err
				}
				user, err := s.store.CreateUser(ctx, db.User{
					FirstName:    firstName,
					LastName:     lastName,
					EmailAddress: email,
					PasswordHash: hash,
				})
				if err != nil {
					return err
				}

				s.logger.InfoContext(ctx, "created user",
					slog.String("email", email),
					slog.Uint64("user_id", user.ID),
				)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&firstName, "first", "", "first name of the user")
	cmd.Flags().StringVar(&lastName, "last", "", "last name of the user")
	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("last")
	return cmd
}

func userDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete EMAIL",
		Short: "Delete user",
		Long: "Permanently deletes the user and all courses they own. " +
			"This operation is permanent and irreversible.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s session) error {
				logger := s.logger.With(slog.String("email", args[0]))
				user, err := s.store.GetUserByEmail(ctx, args[0])
				if err != nil {
					return err
				}
				ok, err := stdConsole().confirm("Are you sure you want to delete this user and their courses?")
				if err != nil || !ok {
					logger.InfoContext(ctx, "aborted user deletion")
					return err
				}
				if err = s.store.DeleteUser(ctx, user.ID); err != nil {
					return err
				}
				logger.InfoContext(ctx, "user deleted")
				return nil
			})
		},
	}
}
