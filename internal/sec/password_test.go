package sec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw123")
	require.NoError(t, err)
	assert.NotContains(t, string(hash), "pw123")

	tests := []struct {
		name     string
		password []byte
		wantErr  bool
	}{
		{name: "same secret", password: []byte("pw123")},
		{name: "different secret", password: []byte("pw124"), wantErr: true},
		{name: "case differs", password: []byte("PW123"), wantErr: true},
		{name: "empty", password: nil, wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			err := ComparePassword(test.password, hash)
			if test.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	first, err := HashPassword([]byte("secret"))
	require.NoError(t, err)
	second, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestHashPassword_TooLong(t *testing.T) {
	t.Parallel()

	_, err := HashPassword(strings.Repeat("x", 73))
	assert.Error(t, err)
}

func TestComparePassword_InvalidHash(t *testing.T) {
	t.Parallel()

	assert.Error(t, ComparePassword("pw123", []byte("not-a-bcrypt-hash")))
}
