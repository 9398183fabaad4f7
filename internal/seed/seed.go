// Package seed populates a store with fake users and courses for local
// development.
package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/stolasapp/syllabus/internal/sec"
	"github.com/stolasapp/syllabus/internal/storage"
	"github.com/stolasapp/syllabus/internal/storage/db"
)

const passwordLength = 16

// Account is a seeded user along with its plaintext password.
type Account struct {
	User     db.User
	Password string
}

// Options controls how much data [Run] generates.
type Options struct {
	Seed    uint64
	Users   int
	Courses int
}

// Run creates opts.Users users and opts.Courses courses, each course owned by
// a randomly chosen seeded user. The same seed always produces the same data,
// except for ids. The created accounts are returned so their passwords can be
// handed to the operator.
func Run(ctx context.Context, store storage.Store, logger *slog.Logger, opts Options) ([]Account, error) {
	if opts.Users <= 0 && opts.Courses > 0 {
		return nil, fmt.Errorf("cannot seed %d courses without any users", opts.Courses)
	}
	faker := gofakeit.New(opts.Seed)

	accounts := make([]Account, 0, opts.Users)
	for range opts.Users {
		acct, err := generateAccount(ctx, store, faker)
		if err != nil {
			return accounts, err
		}
		logger.DebugContext(ctx, "seeded user",
			slog.Uint64("user_id", acct.User.ID),
			slog.String("email", acct.User.EmailAddress),
		)
		accounts = append(accounts, acct)
	}

	for range opts.Courses {
		owner := accounts[faker.IntN(len(accounts))].User
		course, err := store.CreateCourse(ctx, generateCourse(faker, owner.ID))
		if err != nil {
			return accounts, fmt.Errorf("failed to seed course: %w", err)
		}
		logger.DebugContext(ctx, "seeded course",
			slog.Uint64("course_id", course.ID),
			slog.Uint64("user_id", owner.ID),
		)
	}
	return accounts, nil
}

func generateAccount(ctx context.Context, store storage.Users, faker *gofakeit.Faker) (Account, error) {
	password := faker.Password(true, true, true, false, false, passwordLength)
	hash, err := sec.HashPassword(password)
	if err != nil {
		return Account{}, err
	}

	for {
		user, err := store.CreateUser(ctx, db.User{
			FirstName:    faker.FirstName(),
			LastName:     faker.LastName(),
			EmailAddress: faker.Email(),
			PasswordHash: hash,
		})
		switch {
		case err == nil:
			return Account{User: user, Password: password}, nil
		case errors.Is(err, storage.ErrAlreadyExists):
			continue
		default:
			return Account{}, fmt.Errorf("failed to seed user: %w", err)
		}
	}
}

func generateCourse(faker *gofakeit.Faker, owner uint64) db.Course {
	course := db.Course{
		UserID:      owner,
		Title:       generateTitle(faker),
		Description: generateDescription(faker),
	}
	if faker.Float64() < optionalChance {
		course.EstimatedTime = sql.NullString{String: generateEstimatedTime(faker), Valid: true}
	}
	if faker.Float64() < optionalChance {
		course.MaterialsNeeded = sql.NullString{String: generateMaterials(faker), Valid: true}
	}
	return course
}
