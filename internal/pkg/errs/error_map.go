/*
Package errs provides the application error type and error code constants.

This file maps every error code to its CustomError template. The login
messages are part of the client protocol and must not be reworded: the client
displays them verbatim in the login dialog.
*/
package errs

import "net/http"

// errorMap stores the CustomError template for every application error code.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:     {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrRateLimitExceeded: {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 3xxx: Login and Session Errors
	ErrMissingCredentials: {Code: ErrMissingCredentials, Message: "Missing username or password."},
	ErrIncorrectPassword:  {Code: ErrIncorrectPassword, Message: "Incorrect password."},
	ErrBanned:             {Code: ErrBanned, Message: "You are banned from this server.", Status: http.StatusForbidden},
	ErrMissingRoom:        {Code: ErrMissingRoom, Message: "Missing room."},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
