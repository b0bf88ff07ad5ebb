// Package services contains server-side business logic. UserService builds
// the users listing: it fetches a page of rows, derives the view model for
// each and attaches the page statistics.
package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/usersapi/internal/dbx"
	"github.com/dmitrijs2005/usersapi/internal/server/models"
	"github.com/dmitrijs2005/usersapi/internal/server/repositories/repomanager"
)

type UserService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewUserService(db dbx.DBTX, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m, now: time.Now}
}

// ListUsers returns one page of users with its statistics. The listing is
// all-or-nothing: any store error is returned as is.
func (s *UserService) ListUsers(ctx context.Context, params models.ListUsersParams) (*models.UserListing, error) {
	records, err := s.repomanager.Users(s.db).List(ctx, params)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]models.UserView, 0, len(records))
	for _, rec := range records {
		views = append(views, TransformUser(rec, now))
	}

	stats := AggregateUserStats(views)

	return &models.UserListing{
		Users:                     views,
		Total:                     len(views),
		ActiveUsers:               len(stats.ActiveUsers),
		SeniorUsers:               len(stats.SeniorUsers),
		UsersWithCompleteProfiles: len(stats.UsersWithCompleteProfiles),
		UsersByDivision:           stats.UsersByDivision,
		FilteredBy:                params.FilteredBy(),
		Page:                      params.Page,
		Limit:                     params.Limit,
		Message:                   models.ListUsersMessage,
	}, nil
}
