package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	body := Decode(strings.NewReader(`{"title":"x","userId":5}`))
	assert.Equal(t, "x", body["title"])
	assert.InDelta(t, 5.0, body["userId"], 0)

	for _, input := range []string{"", "null", "[1,2]", `"str"`, "{broken"} {
		assert.Empty(t, Decode(strings.NewReader(input)), input)
	}
}

func TestPresent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   any
		present bool
		want    bool
	}{
		{name: "missing", present: false, want: false},
		{name: "null", value: nil, present: true, want: false},
		{name: "empty string", value: "", present: true, want: false},
		{name: "false", value: false, present: true, want: false},
		{name: "zero", value: 0.0, present: true, want: false},
		{name: "string", value: "a", present: true, want: true},
		{name: "whitespace", value: " ", present: true, want: true},
		{name: "true", value: true, present: true, want: true},
		{name: "number", value: 5.0, present: true, want: true},
		{name: "negative", value: -1.0, present: true, want: true},
		{name: "empty array", value: []any{}, present: true, want: true},
		{name: "object", value: map[string]any{}, present: true, want: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, Present(test.value, test.present))
		})
	}
}

func TestText(t *testing.T) {
	t.Parallel()

	assert.True(t, Text("a", true))
	assert.False(t, Text("", true))
	assert.False(t, Text(nil, true))
	assert.False(t, Text("a", false))
	assert.False(t, Text(123.0, true))
	assert.False(t, Text(true, true))
	assert.False(t, Text([]any{"a"}, true))
}

func TestOptionalText(t *testing.T) {
	t.Parallel()

	assert.True(t, OptionalText(nil, false))
	assert.True(t, OptionalText(nil, true))
	assert.True(t, OptionalText("", true))
	assert.True(t, OptionalText("6 hours", true))
	assert.False(t, OptionalText(6.0, true))
	assert.False(t, OptionalText(map[string]any{}, true))
}

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   any
		present bool
		want    bool
	}{
		{name: "absent is left to Present", present: false, want: true},
		{name: "empty is left to Present", value: "", present: true, want: true},
		{name: "simple", value: "jane@x.com", present: true, want: true},
		{name: "subdomain and tag", value: "joe.smith+tag@sub.example.org", present: true, want: true},
		{name: "no domain", value: "jane", present: true, want: false},
		{name: "empty domain", value: "jane@", present: true, want: false},
		{name: "single label domain", value: "jane@x", present: true, want: false},
		{name: "localhost", value: "jane@localhost", present: true, want: false},
		{name: "display name", value: "Jane <jane@x.com>", present: true, want: false},
		{name: "number", value: 42.0, present: true, want: false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, Email(test.value, test.present))
		})
	}
}

func TestRules_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rules Rules
		body  string
		want  []string
	}{
		{
			name:  "valid user",
			rules: CreateUser,
			body:  `{"firstName":"Jane","lastName":"Doe","emailAddress":"jane@x.com","password":"pw123"}`,
			want:  nil,
		},
		{
			name:  "empty user body lists every missing field in order",
			rules: CreateUser,
			body:  `{}`,
			want: []string{
				`Please provide a value for "firstName"`,
				`Please provide a value for "lastName"`,
				`Please provide a value for "emailAddress"`,
				`Please provide a value for "password"`,
			},
		},
		{
			name:  "malformed email",
			rules: CreateUser,
			body:  `{"firstName":"Jane","lastName":"Doe","emailAddress":"jane","password":"pw123"}`,
			want:  []string{"Please provide a valid email address"},
		},
		{
			name:  "null and empty fields",
			rules: CreateUser,
			body:  `{"firstName":null,"lastName":"","emailAddress":"jane@x.com","password":"pw"}`,
			want: []string{
				`Please provide a value for "firstName"`,
				`Please provide a value for "lastName"`,
			},
		},
		{
			name:  "course description",
			rules: CreateCourse,
			body:  `{"title":"t"}`,
			want:  []string{`Please provide text for "description"`},
		},
		{
			name:  "course update requires userId",
			rules: UpdateCourse,
			body:  `{"title":"t","description":"d","userId":0}`,
			want:  []string{`Please provide a value for "userId"`},
		},
		{
			name:  "email without a dotted domain",
			rules: CreateUser,
			body:  `{"firstName":"Jane","lastName":"Doe","emailAddress":"jane@localhost","password":"pw123"}`,
			want:  []string{"Please provide a valid email address"},
		},
		{
			name:  "wrongly typed course fields",
			rules: CreateCourse,
			body:  `{"title":123,"description":"d","estimatedTime":6,"materialsNeeded":null}`,
			want: []string{
				`Please provide a value for "title"`,
				`Please provide text for "estimatedTime"`,
			},
		},
		{
			name:  "wrongly typed update fields",
			rules: UpdateCourse,
			body:  `{"title":"t","description":true,"userId":1,"materialsNeeded":["saw"]}`,
			want: []string{
				`Please provide a value for "description"`,
				`Please provide text for "materialsNeeded"`,
			},
		},
		{
			name:  "unparseable body",
			rules: CreateCourse,
			body:  `not json`,
			want: []string{
				`Please provide a value for "title"`,
				`Please provide text for "description"`,
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, test.rules.Validate(Decode(strings.NewReader(test.body))))
		})
	}
}
