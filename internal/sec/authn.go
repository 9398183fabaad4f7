package sec

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"connectrpc.com/authn"

	"github.com/stolasapp/syllabus/internal/storage"
	"github.com/stolasapp/syllabus/internal/storage/db"
)

// Outcome classifies a verification attempt. Only [Authenticated] grants
// access; the others exist for diagnostics and are never revealed to clients.
type Outcome int

// Verification outcomes.
const (
	NoCredentials Outcome = iota
	NoSuchUser
	WrongSecret
	Authenticated
)

func (o Outcome) String() string {
	switch o {
	case NoCredentials:
		return "no_credentials"
	case NoSuchUser:
		return "no_such_user"
	case WrongSecret:
		return "wrong_secret"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Result is the outcome of [Verify]. User is only populated when the Outcome
// is [Authenticated].
type Result struct {
	Outcome Outcome
	User    db.User
}

// Verify checks the claimed credentials against the user store. A nil creds
// short-circuits to [NoCredentials] without touching the store. Only storage
// faults are returned as errors.
func Verify(ctx context.Context, users storage.Users, creds *Credentials) (Result, error) {
	if creds == nil {
		return Result{Outcome: NoCredentials}, nil
	}
	user, err := users.GetUserByEmail(ctx, creds.Email)
	if errors.Is(err, storage.ErrNotFound) {
		return Result{Outcome: NoSuchUser}, nil
	} else if err != nil {
		return Result{}, err
	}
	if err = ComparePassword(creds.Secret, user.PasswordHash); err != nil {
		return Result{Outcome: WrongSecret}, nil
	}
	return Result{Outcome: Authenticated, User: user}, nil
}

// Authenticate resolves the user making req. Any failure to authenticate
// yields the same unauthenticated error regardless of cause; the cause is
// logged instead. Storage faults are returned unchanged.
func Authenticate(ctx context.Context, req *http.Request, users storage.Users, logger *slog.Logger) (db.User, error) {
	var claimed *Credentials
	creds, ok := ParseCredentials(req.Header.Get("Authorization"))
	if ok {
		claimed = &creds
	}

	res, err := Verify(ctx, users, claimed)
	if err != nil {
		return db.User{}, err
	}
	if res.Outcome != Authenticated {
		logger.WarnContext(ctx, "authentication failed",
			slog.String("outcome", res.Outcome.String()),
			slog.String("credentials", creds.String()),
		)
		return db.User{}, authn.Errorf("access denied")
	}
	logger.DebugContext(ctx, "authentication successful", slog.String("email", res.User.EmailAddress))
	return res.User, nil
}

// GetAuthenticatedUser returns the user information for the authenticated user.
// Returns a zero-value User if the context has no authenticated user.
func GetAuthenticatedUser(ctx context.Context) db.User {
	if user, ok := authn.GetInfo(ctx).(db.User); ok {
		return user
	}
	return db.User{}
}

// SetAuthenticatedUser attaches the authenticated user to ctx.
func SetAuthenticatedUser(ctx context.Context, user db.User) context.Context {
	return authn.SetInfo(ctx, user)
}
