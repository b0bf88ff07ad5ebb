// Package users declares the users repository contract and its PostgreSQL
// implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/usersapi/internal/server/models"
)

type Repository interface {
	// List returns one page of users, newest first, optionally restricted
	// to a division.
	List(ctx context.Context, params models.ListUsersParams) ([]models.UserRecord, error)
}
