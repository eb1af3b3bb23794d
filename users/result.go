package users

import (
	"encoding/json"
	"net/http"
)

// Result is the outcome of a call to GET /users. Every Result knows the
// upstream status code it was decoded from.
type Result interface {
	StatusCode() int
}

// User is a single user returned by the users API
type User struct {
	Name string `json:"name"`
}

// Users is the 200 result: the list of users
type Users []User

// StatusCode implements Result
func (Users) StatusCode() int { return http.StatusOK }

// BadRequest is the 400 result, carrying the text body returned upstream
type BadRequest struct {
	Message string `json:"message"`
}

// StatusCode implements Result
func (BadRequest) StatusCode() int { return http.StatusBadRequest }

// Unauthorised is the 401 result: the error message and the
// WWW-Authenticate challenge
type Unauthorised struct {
	Message   string `json:"message"`
	Challenge string `json:"challenge"`
}

// StatusCode implements Result
func (Unauthorised) StatusCode() int { return http.StatusUnauthorized }

// Unprocessable is the 422 result, decoded from the X-Code and
// X-CorrelationID response headers. Code keeps the number exactly as sent.
type Unprocessable struct {
	Code          json.Number `json:"code"`
	CorrelationID string      `json:"correlationId"`
}

// StatusCode implements Result
func (Unprocessable) StatusCode() int { return http.StatusUnprocessableEntity }
