package sec

import "github.com/stolasapp/syllabus/internal/storage/db"

// Decision is the result of an authorization check.
type Decision bool

// Authorization decisions.
const (
	Deny  Decision = false
	Allow Decision = true
)

// AuthorizeCourseUpdate allows only the owner of course to modify it.
func AuthorizeCourseUpdate(user db.User, course db.Course) Decision {
	return Decision(user.ID != 0 && user.ID == course.UserID)
}
