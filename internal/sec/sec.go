// Package sec provides authentication and authorization primitives for the
// course API.
//
// # Authentication
//
// Every protected request carries HTTP Basic credentials whose user name is the
// email address of an identity. Credentials are checked against bcrypt password
// hashes stored in the database on every request; nothing is cached and no
// session is established.
//
// IMPORTANT: Basic Auth transmits credentials in base64 encoding (not encrypted).
// TLS must be used in production to protect credentials in transit.
//
// # Components
//
//   - [ParseCredentials]: Extracts a [Credentials] pair from an Authorization header
//   - [Verify]: Resolves a [Credentials] pair against the user store into a [Result]
//   - [Authenticate]: Combines both, logging the diagnostic [Outcome] on failure
//   - [AuthorizeCourseUpdate]: The course ownership rule
//   - [GetAuthenticatedUser], [SetAuthenticatedUser]: Context accessors for user info
//   - [HashPassword], [ComparePassword]: bcrypt password hashing utilities
package sec
