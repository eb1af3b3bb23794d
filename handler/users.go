package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ONSdigital/dp-fetcher/fetcher"
	"github.com/ONSdigital/dp-fetcher/users"
	"github.com/ONSdigital/log.go/v2/log"
)

// Users is the handler for GET /users. Every documented users API result is
// relayed with its upstream status code.
type Users struct {
	client UsersClient
}

// NewUsers returns a new Users handler
func NewUsers(c UsersClient) *Users {
	return &Users{
		client: c,
	}
}

// Handle fetches the users and writes the result
func (h *Users) Handle(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	res, err := h.client.GetUsers(ctx)
	if err != nil {
		h.handleError(ctx, w, &Error{
			err:        fmt.Errorf("failed to get users: %w", err),
			statusCode: fetcher.StatusCode(err),
			logData: log.Data{
				"kind": fetcher.KindOf(err).String(),
			},
		})
		return
	}

	log.Info(ctx, "successfully got users", log.Data{"status_code": res.StatusCode()})

	if u, ok := res.(users.Unauthorised); ok {
		w.Header().Set("WWW-Authenticate", u.Challenge)
	}

	h.writeJSON(ctx, w, res.StatusCode(), res)
}

func (h *Users) handleError(ctx context.Context, w http.ResponseWriter, err *Error) {
	log.Error(ctx, "error handling request", err, unwrapLogData(err))

	h.writeJSON(ctx, w, err.Code(), errorResponse{Message: err.Error()})
}

func (h *Users) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error(ctx, "failed to marshal response", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil {
		log.Error(ctx, "failed to write response", err)
	}
}

type errorResponse struct {
	Message string `json:"message"`
}
