package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/usersapi/internal/common"
	"github.com/dmitrijs2005/usersapi/internal/dbx"
	"github.com/dmitrijs2005/usersapi/internal/server/models"
	"github.com/jmoiron/sqlx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, params models.ListUsersParams) ([]models.UserRecord, error) {
	query, args := BuildListQuery(params)

	records := []models.UserRecord{}
	if err := sqlx.SelectContext(ctx, r.db, &records, query, args...); err != nil {
		return nil, fmt.Errorf("%w: db error: %w", common.ErrQueryExecution, err)
	}

	return records, nil
}
