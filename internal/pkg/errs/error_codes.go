/*
Package errs provides the application error type and error code constants.

Error codes identify specific business or system failures both internally and
in responses to clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrRateLimitExceeded indicates that the request rate exceeded the limit.
	ErrRateLimitExceeded = 1002
)

// 3xxx: Login and Session Errors
const (
	// ErrMissingCredentials indicates a login attempt without a username or password.
	ErrMissingCredentials = 3001

	// ErrIncorrectPassword indicates a password mismatch for a registered username.
	ErrIncorrectPassword = 3002

	// ErrBanned indicates the client's IP address is on the ban list.
	ErrBanned = 3003

	// ErrMissingRoom indicates a login attempt without a room label.
	ErrMissingRoom = 3004
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified internal server error.
	ErrUnknown = 5000
)
