package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/stolasapp/syllabus/internal/seed"
)

func seedCommand() *cobra.Command {
	opts := seed.Options{Seed: rand.Uint64()} //nolint:gosec // this isn't for crypto
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with fake users and courses",
		Long: "Creates fake users and courses for local development. The generated\n" +
			"credentials are printed to stdout so they can be used with the API.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, s session) error {
				accounts, err := seed.Run(ctx, s.store, s.logger, opts)
				for _, acct := range accounts {
					if _, printErr := fmt.Fprintf(cmd.OutOrStdout(), "%s:%s\n",
						acct.User.EmailAddress, acct.Password); printErr != nil {
						return errors.Join(err, printErr)
					}
				}
				if err != nil {
					return err
				}

				s.logger.InfoContext(ctx, "seeded database",
					slog.Uint64("seed", opts.Seed),
					slog.Int("users", opts.Users),
					slog.Int("courses", opts.Courses),
				)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&opts.Users, "users", 5, "number of users to create")     //nolint:mnd // default
	cmd.Flags().IntVar(&opts.Courses, "courses", 10, "number of courses to create") //nolint:mnd // default
	cmd.Flags().Uint64Var(&opts.Seed, "seed", opts.Seed, "random seed for the generated data")
	return cmd
}
