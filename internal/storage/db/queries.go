package db

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is satisfied by both [sql.DB] and [sql.Tx].
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Queries contains the SQL statements issued against the database.
type Queries struct {
	db DBTX
}

// New wraps db with the query methods.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// rowID binds an id column, leaving 0 for SQLite to assign.
func rowID(id uint64) any {
	if id == 0 {
		return nil
	}
	return id
}

const userColumns = `id, first_name, last_name, email_address, password_hash, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.EmailAddress,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

const getUser = `SELECT ` + userColumns + ` FROM users WHERE id = ?`

// GetUser selects the user with the given id.
func (q *Queries) GetUser(ctx context.Context, id uint64) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUser, id))
}

// email_address uses the default BINARY collation, so the comparison is case
// sensitive.
const getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email_address = ?`

// GetUserByEmail selects the user with exactly the given email address.
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByEmail, email))
}

const insertUser = `
INSERT INTO users (id, first_name, last_name, email_address, password_hash, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (email_address) DO NOTHING
RETURNING id`

// InsertUserParams are the arguments to InsertUser.
type InsertUserParams User

// InsertUser creates a user, returning its id. A zero ID is assigned by the
// database. [sql.ErrNoRows] is returned if the email address is already taken.
func (q *Queries) InsertUser(ctx context.Context, arg InsertUserParams) (uint64, error) {
	var id uint64
	err := q.db.QueryRowContext(ctx, insertUser,
		rowID(arg.ID),
		arg.FirstName,
		arg.LastName,
		arg.EmailAddress,
		arg.PasswordHash,
		arg.CreatedAt,
		arg.UpdatedAt,
	).Scan(&id)
	return id, err
}

const deleteUser = `DELETE FROM users WHERE id = ?`

// DeleteUser removes the user and, by cascade, their courses.
func (q *Queries) DeleteUser(ctx context.Context, id uint64) error {
	_, err := q.db.ExecContext(ctx, deleteUser, id)
	return err
}

const courseWithOwnerSelect = `
SELECT c.id, c.user_id, c.title, c.description, c.estimated_time, c.materials_needed,
       c.created_at, c.updated_at,
       u.id, u.first_name, u.last_name, u.email_address
FROM courses c
JOIN users u ON u.id = c.user_id`

func scanCourseWithOwner(row interface{ Scan(dest ...any) error }) (CourseWithOwner, error) {
	var c CourseWithOwner
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Title,
		&c.Description,
		&c.EstimatedTime,
		&c.MaterialsNeeded,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.Owner.ID,
		&c.Owner.FirstName,
		&c.Owner.LastName,
		&c.Owner.EmailAddress,
	)
	return c, err
}

const listCourses = courseWithOwnerSelect + ` ORDER BY c.id`

// ListCourses selects every course with its owner.
func (q *Queries) ListCourses(ctx context.Context) ([]CourseWithOwner, error) {
	rows, err := q.db.QueryContext(ctx, listCourses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CourseWithOwner
	for rows.Next() {
		item, err := scanCourseWithOwner(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err = rows.Close(); err != nil {
		return nil, err
	}
	return items, rows.Err()
}

const getCourse = courseWithOwnerSelect + ` WHERE c.id = ?`

// GetCourse selects a single course with its owner.
func (q *Queries) GetCourse(ctx context.Context, id uint64) (CourseWithOwner, error) {
	return scanCourseWithOwner(q.db.QueryRowContext(ctx, getCourse, id))
}

const insertCourse = `
INSERT INTO courses (id, user_id, title, description, estimated_time, materials_needed, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id`

// InsertCourseParams are the arguments to InsertCourse.
type InsertCourseParams Course

// InsertCourse creates a course, returning its id. A zero ID is assigned by
// the database.
func (q *Queries) InsertCourse(ctx context.Context, arg InsertCourseParams) (uint64, error) {
	var id uint64
	err := q.db.QueryRowContext(ctx, insertCourse,
		rowID(arg.ID),
		arg.UserID,
		arg.Title,
		arg.Description,
		arg.EstimatedTime,
		arg.MaterialsNeeded,
		arg.CreatedAt,
		arg.UpdatedAt,
	).Scan(&id)
	return id, err
}

const updateCourse = `
UPDATE courses
SET title = ?, description = ?, estimated_time = ?, materials_needed = ?, updated_at = ?
WHERE id = ?`

// UpdateCourseParams are the arguments to UpdateCourse.
type UpdateCourseParams struct {
	ID              uint64
	Title           string
	Description     string
	EstimatedTime   sql.NullString
	MaterialsNeeded sql.NullString
	UpdatedAt       time.Time
}

// UpdateCourse overwrites the mutable columns of a course, returning the number
// of rows affected.
func (q *Queries) UpdateCourse(ctx context.Context, arg UpdateCourseParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateCourse,
		arg.Title,
		arg.Description,
		arg.EstimatedTime,
		arg.MaterialsNeeded,
		arg.UpdatedAt,
		arg.ID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
