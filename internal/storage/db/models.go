package db

import (
	"database/sql"
	"strconv"
	"time"
)

// User is a row of the users table.
type User struct {
	ID           uint64
	FirstName    string
	LastName     string
	EmailAddress string
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Course is a row of the courses table.
type Course struct {
	ID              uint64
	UserID          uint64
	Title           string
	Description     string
	EstimatedTime   sql.NullString
	MaterialsNeeded sql.NullString
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Path returns the path to the course relative to the API root.
func (c Course) Path() string {
	return "courses/" + strconv.FormatUint(c.ID, 10)
}

// Owner is the public subset of the User owning a course.
type Owner struct {
	ID           uint64
	FirstName    string
	LastName     string
	EmailAddress string
}

// CourseWithOwner is a course joined with its owning user.
type CourseWithOwner struct {
	Course
	Owner Owner
}
