package services

import (
	"database/sql"
	"math"
	"time"

	"github.com/dmitrijs2005/usersapi/internal/server/models"
)

const (
	activeLogThreshold = 5
	completeProfileMin = 75.0
)

var seniorRoles = map[string]struct{}{
	"admin":     {},
	"moderator": {},
}

// TransformUser maps a listing row to its API view. It is pure: the only
// time input is now.
func TransformUser(rec models.UserRecord, now time.Time) models.UserView {
	hasBio := present(rec.Bio)
	hasAddress := present(rec.Address)
	hasPhone := present(rec.PhoneNumber)
	hasProfile := rec.Profile.Present()

	filled := 0
	for _, ok := range []bool{hasBio, hasAddress, hasPhone, hasProfile} {
		if ok {
			filled++
		}
	}

	_, senior := seniorRoles[rec.Role.String]

	view := models.UserView{
		ID:          rec.ID,
		Username:    rec.Username,
		FullName:    rec.FullName,
		Email:       nullable(rec.Email),
		Bio:         nullable(rec.Bio),
		LongBio:     nullable(rec.LongBio),
		ProfileJSON: rec.Profile,
		Address:     nullable(rec.Address),
		PhoneNumber: nullable(rec.PhoneNumber),
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
		Role:        nullable(rec.Role),
		Division:    nullable(rec.DivisionName),

		DisplayName:     rec.DisplayName,
		BioDisplay:      rec.BioDisplay,
		InstagramHandle: rec.InstagramHandle,

		TotalUsers:    rec.TotalUsers,
		NewerUsers:    rec.NewerUsers,
		LogCount:      rec.LogCount,
		RoleCount:     rec.RoleCount,
		DivisionCount: rec.DivisionCount,
		LoginCount:    rec.LoginCount,
		UpdateCount:   rec.UpdateCount,
		RecentLogs:    rec.RecentLogs,

		DaysSinceCreated: daysBetween(rec.CreatedAt, now),
		IsActive:         rec.LogCount > activeLogThreshold,
		IsSenior:         rec.Role.Valid && senior,
		SocialMedia:      rec.Profile.Object("social_media"),
		Preferences:      rec.Profile.Object("preferences"),
		Skills:           rec.Profile.List("skills"),
		Interests:        rec.Profile.List("interests"),

		HasProfile:          hasProfile,
		HasBio:              hasBio,
		HasAddress:          hasAddress,
		HasPhone:            hasPhone,
		ProfileCompleteness: float64(filled) / 4 * 100,
	}

	if rec.BirthDate.Valid {
		bd := rec.BirthDate.Time
		view.BirthDate = &bd
	}

	return view
}

// daysBetween floors (to - from) in whole days. It is negative when from is
// in the future.
func daysBetween(from, to time.Time) int64 {
	return int64(math.Floor(to.Sub(from).Hours() / 24))
}

func present(s sql.NullString) bool {
	return s.Valid && s.String != ""
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
