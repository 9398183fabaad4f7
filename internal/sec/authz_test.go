package sec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stolasapp/syllabus/internal/storage/db"
)

func TestAuthorizeCourseUpdate(t *testing.T) {
	t.Parallel()

	course := db.Course{ID: 5, UserID: 1}
	assert.Equal(t, Allow, AuthorizeCourseUpdate(db.User{ID: 1}, course))
	assert.Equal(t, Deny, AuthorizeCourseUpdate(db.User{ID: 2}, course))
	assert.Equal(t, Deny, AuthorizeCourseUpdate(db.User{}, db.Course{ID: 5}), "zero identity never owns")
}
