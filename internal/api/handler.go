package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/stolasapp/syllabus/internal/filter"
	"github.com/stolasapp/syllabus/internal/sec"
	"github.com/stolasapp/syllabus/internal/storage"
	"github.com/stolasapp/syllabus/internal/storage/db"
	"github.com/stolasapp/syllabus/internal/validate"
)

const formatHTML = "html"

type handler struct {
	store  storage.Store
	logger *slog.Logger
}

func (h handler) register(e *echo.Echo) {
	authn := authenticate(h.store, h.logger)

	users := e.Group("/users")
	users.GET("", h.currentUser, authn)
	users.POST("", h.createUser, validateFields(validate.CreateUser))

	courses := e.Group("/courses")
	courses.GET("", h.listCourses)
	courses.POST("", h.createCourse, validateFields(validate.CreateCourse), authn)
	courses.GET("/:id", h.getCourse)
	courses.PUT("/:id", h.updateCourse, validateFields(validate.UpdateCourse), authn)
}

// currentUser responds with the caller's stored record, re-read so the view
// reflects storage rather than the authentication snapshot.
func (h handler) currentUser(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := h.store.GetUser(ctx, sec.GetAuthenticatedUser(ctx).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserView(user))
}

type createUserInput struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

func (h handler) createUser(c echo.Context) error {
	var in createUserInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	hash, err := sec.HashPassword(in.Password)
	if errors.Is(err, sec.ErrPasswordTooLong) {
		return &ValidationError{Messages: []string{`Please provide a "password" of at most 72 bytes`}}
	} else if err != nil {
		return err
	}

	user, err := h.store.CreateUser(c.Request().Context(), db.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		EmailAddress: in.EmailAddress,
		PasswordHash: hash,
	})
	if errors.Is(err, storage.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "Email address is already in use").SetInternal(err)
	} else if err != nil {
		return err
	}

	h.logger.InfoContext(c.Request().Context(), "created user", slog.Uint64("user_id", user.ID))
	c.Response().Header().Set(echo.HeaderLocation, "/")
	return c.NoContent(http.StatusCreated)
}

func (h handler) listCourses(c echo.Context) error {
	var courseFilter *filter.Filter
	if expr := c.QueryParam("filter"); expr != "" {
		var err error
		if courseFilter, err = filter.Compile(expr); err != nil {
			return err
		}
	}
	html, err := wantHTML(c)
	if err != nil {
		return err
	}

	courses, err := h.store.ListCourses(c.Request().Context())
	if err != nil {
		return err
	}
	if courses, err = filter.Apply(courseFilter, courses, courseRecord); err != nil {
		return err
	}

	views := make([]courseView, 0, len(courses))
	for _, course := range courses {
		view := toCourseView(course)
		if html {
			if view, err = view.renderHTML(); err != nil {
				return err
			}
		}
		views = append(views, view)
	}
	return c.JSON(http.StatusOK, views)
}

func (h handler) getCourse(c echo.Context) error {
	html, err := wantHTML(c)
	if err != nil {
		return err
	}
	id, err := courseID(c)
	if err != nil {
		return err
	}

	course, err := h.store.GetCourse(c.Request().Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		return errCourseNotFound(err)
	} else if err != nil {
		return err
	}

	view := toCourseView(course)
	if html {
		if view, err = view.renderHTML(); err != nil {
			return err
		}
	}
	return c.JSON(http.StatusOK, view)
}

type courseInput struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

func (h handler) createCourse(c echo.Context) error {
	var in courseInput
	if err := bindBody(c, &in); err != nil {
		return err
	}
	ctx := c.Request().Context()
	user := sec.GetAuthenticatedUser(ctx)

	course, err := h.store.CreateCourse(ctx, db.Course{
		UserID:          user.ID,
		Title:           in.Title,
		Description:     in.Description,
		EstimatedTime:   toNullString(in.EstimatedTime),
		MaterialsNeeded: toNullString(in.MaterialsNeeded),
	})
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "created course",
		slog.Uint64("course_id", course.ID),
		slog.Uint64("user_id", user.ID),
	)
	c.Response().Header().Set(echo.HeaderLocation, course.Path())
	return c.NoContent(http.StatusCreated)
}

func (h handler) updateCourse(c echo.Context) error {
	id, err := courseID(c)
	if err != nil {
		return err
	}
	var in courseInput
	if err = bindBody(c, &in); err != nil {
		return err
	}
	ctx := c.Request().Context()
	user := sec.GetAuthenticatedUser(ctx)

	existing, err := h.store.GetCourse(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return errCourseNotFound(err)
	} else if err != nil {
		return err
	}

	if sec.AuthorizeCourseUpdate(user, existing.Course) == sec.Deny {
		h.logger.WarnContext(ctx, "course update denied",
			slog.Uint64("course_id", existing.ID),
			slog.Uint64("owner_id", existing.UserID),
			slog.Uint64("user_id", user.ID),
		)
		return ErrForbidden
	}

	course := existing.Course
	course.Title = in.Title
	course.Description = in.Description
	if in.EstimatedTime != nil {
		course.EstimatedTime = toNullString(in.EstimatedTime)
	}
	if in.MaterialsNeeded != nil {
		course.MaterialsNeeded = toNullString(in.MaterialsNeeded)
	}
	if err = h.store.UpdateCourse(ctx, course); errors.Is(err, storage.ErrNotFound) {
		return errCourseNotFound(err)
	} else if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// courseID parses the :id path parameter. Ids that cannot exist are reported
// the same as missing courses.
func courseID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errCourseNotFound(err)
	}
	return id, nil
}

func wantHTML(c echo.Context) (bool, error) {
	switch format := c.QueryParam("format"); format {
	case "":
		return false, nil
	case formatHTML:
		return true, nil
	default:
		return false, echo.NewHTTPError(http.StatusBadRequest, "unsupported format "+strconv.Quote(format))
	}
}
