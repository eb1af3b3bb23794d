package handler

import (
	"context"

	"github.com/ONSdigital/dp-fetcher/users"
)

//go:generate moq -out mock/users.go -pkg mock . UsersClient

// UsersClient is the users API client the Users handler calls
type UsersClient interface {
	GetUsers(ctx context.Context) (users.Result, error)
}

