package seed

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stolasapp/syllabus/internal/sec"
	"github.com/stolasapp/syllabus/internal/storage"
)

func TestRun(t *testing.T) {
	t.Parallel()
	store, err := storage.NewDB(t.Context(), filepath.Join(t.TempDir(), "db.sqlite"), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	accounts, err := Run(t.Context(), store, slog.Default(), Options{Seed: 42, Users: 3, Courses: 10})
	require.NoError(t, err)
	require.Len(t, accounts, 3)

	owners := make(map[uint64]bool, len(accounts))
	for _, acct := range accounts {
		owners[acct.User.ID] = true

		stored, err := store.GetUserByEmail(t.Context(), acct.User.EmailAddress)
		require.NoError(t, err)
		assert.Equal(t, acct.User.ID, stored.ID)
		require.NoError(t, sec.ComparePassword(acct.Password, stored.PasswordHash))
	}

	courses, err := store.ListCourses(t.Context())
	require.NoError(t, err)
	require.Len(t, courses, 10)
	for _, course := range courses {
		assert.True(t, owners[course.UserID], "course %d has an unseeded owner", course.ID)
		assert.NotEmpty(t, course.Title)
		assert.NotEmpty(t, course.Description)
	}
}

func TestRun_CoursesRequireUsers(t *testing.T) {
	t.Parallel()
	_, err := Run(t.Context(), nil, slog.Default(), Options{Courses: 1})
	require.Error(t, err)
}

func TestGenerateCourse_Deterministic(t *testing.T) {
	t.Parallel()
	a := generateCourse(gofakeit.New(7), 1)
	b := generateCourse(gofakeit.New(7), 1)
	assert.Equal(t, a, b)
}

func TestGenerateMaterials(t *testing.T) {
	t.Parallel()
	faker := gofakeit.New(1)
	for range 20 {
		lines := strings.Split(strings.TrimSuffix(generateMaterials(faker), "\n"), "\n")
		assert.GreaterOrEqual(t, len(lines), minMaterials)
		assert.LessOrEqual(t, len(lines), minMaterials+maxExtraMat-1)
		for _, line := range lines {
			assert.True(t, strings.HasPrefix(line, "* "), line)
		}
	}
}

func TestTitleCase(t *testing.T) {
	t.Parallel()
	assert.Empty(t, titleCase(""))
	assert.Equal(t, "Bookcase", titleCase("bookcase"))
}
