package api

import (
	"database/sql"
	"time"

	"github.com/stolasapp/syllabus/internal/content"
	"github.com/stolasapp/syllabus/internal/storage/db"
)

// userView is an identity without its password hash or timestamps.
type userView struct {
	ID           uint64 `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

func toUserView(user db.User) userView {
	return userView{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
	}
}

type courseView struct {
	ID              uint64    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	EstimatedTime   *string   `json:"estimatedTime"`
	MaterialsNeeded *string   `json:"materialsNeeded"`
	UserID          uint64    `json:"userId"`
	Owner           userView  `json:"owner"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toCourseView(course db.CourseWithOwner) courseView {
	return courseView{
		ID:              course.ID,
		Title:           course.Title,
		Description:     course.Description,
		EstimatedTime:   fromNullString(course.EstimatedTime),
		MaterialsNeeded: fromNullString(course.MaterialsNeeded),
		UserID:          course.UserID,
		Owner: userView{
			ID:           course.Owner.ID,
			FirstName:    course.Owner.FirstName,
			LastName:     course.Owner.LastName,
			EmailAddress: course.Owner.EmailAddress,
		},
		CreatedAt: course.CreatedAt,
		UpdatedAt: course.UpdatedAt,
	}
}

// renderHTML replaces the markdown fields of view with sanitized HTML.
func (view courseView) renderHTML() (courseView, error) {
	var err error
	if view.Description, err = content.RenderMarkdown(view.Description); err != nil {
		return view, err
	}
	if view.MaterialsNeeded != nil {
		html, err := content.RenderMarkdown(*view.MaterialsNeeded)
		if err != nil {
			return view, err
		}
		view.MaterialsNeeded = &html
	}
	return view, nil
}

// courseRecord is the value a course is bound to in filter expressions.
func courseRecord(course db.CourseWithOwner) map[string]any {
	return map[string]any{
		"id":              course.ID,
		"title":           course.Title,
		"description":     course.Description,
		"estimatedTime":   course.EstimatedTime.String,
		"materialsNeeded": course.MaterialsNeeded.String,
		"userId":          course.UserID,
	}
}

func fromNullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
