package sec

import (
	"encoding/base64"
	"strings"
)

const basicScheme = "Basic "

// Credentials is the claimed identity of a single request. It is never
// persisted.
type Credentials struct {
	Email  string
	Secret string
}

// ParseCredentials extracts the email and secret from a Basic Authorization
// header value. Missing and malformed headers both report false.
func ParseCredentials(header string) (creds Credentials, ok bool) {
	if len(header) < len(basicScheme) || !strings.EqualFold(header[:len(basicScheme)], basicScheme) {
		return creds, false
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(basicScheme):]))
	if err != nil {
		return creds, false
	}
	email, secret, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return creds, false
	}
	return Credentials{Email: email, Secret: secret}, true
}

// String masks the secret so credentials can be logged.
func (c Credentials) String() string {
	return c.Email + ":***"
}
