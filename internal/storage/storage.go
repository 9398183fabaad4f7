// Package storage provides the state management for users and courses.
package storage

import (
	"context"

	"github.com/stolasapp/syllabus/internal/storage/db"
)

const (
	// ErrNotFound is returned when a course or user cannot be found.
	ErrNotFound Error = "not found"
	// ErrAlreadyExists is returned if a unique user attribute is already taken.
	ErrAlreadyExists Error = "already exists"
)

// Error is an error type returned by the storage implementation.
type Error string

// Error satisfies [error].
func (e Error) Error() string { return string(e) }

// Users are the methods on a storage implementation that are responsible for
// accessing and modifying users.
type Users interface {
	// GetUser returns a single user with the specified ID. An [ErrNotFound] is
	// returned if the user ID does not exist.
	GetUser(ctx context.Context, userID uint64) (db.User, error)
	// GetUserByEmail returns the user whose email address matches exactly
	// (case-sensitive). An [ErrNotFound] is returned if there is none.
	GetUserByEmail(ctx context.Context, email string) (db.User, error)
	// CreateUser inserts a new user and returns the stored record. The
	// database assigns the ID if unset. An [ErrAlreadyExists] error is
	// returned if the email address is already in use.
	CreateUser(ctx context.Context, user db.User) (db.User, error)
	// DeleteUser removes a user and all the courses they own. Note that this
	// is a hard delete; data is not recoverable.
	DeleteUser(ctx context.Context, userID uint64) error
}

// Courses are the methods on a storage implementation that are responsible
// for accessing and modifying courses.
type Courses interface {
	// ListCourses returns every course along with its owner.
	ListCourses(ctx context.Context) ([]db.CourseWithOwner, error)
	// GetCourse returns a single course along with its owner. An
	// [ErrNotFound] is returned if the course ID does not exist.
	GetCourse(ctx context.Context, courseID uint64) (db.CourseWithOwner, error)
	// CreateCourse inserts a new course and returns the stored record. The
	// database assigns the ID if unset.
	CreateCourse(ctx context.Context, course db.Course) (db.Course, error)
	// UpdateCourse overwrites the title, description, estimated time and
	// materials of an existing course. The owner is never changed. An
	// [ErrNotFound] is returned if the course ID does not exist.
	UpdateCourse(ctx context.Context, course db.Course) error
}

// Store is the combination interface for [Users] and [Courses].
type Store interface {
	Users
	Courses
	// Close releases any resources held by the store. An error is returned if
	// the store cannot be cleanly closed.
	Close() error
}
