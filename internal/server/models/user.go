package models

import (
	"database/sql"
	"time"
)

// UserRecord is one row of the users listing query: the user's own
// columns, joined auth/role/division columns and the per-user counters and
// display strings computed by the database.
type UserRecord struct {
	ID          int64           `db:"id"`
	Username    string          `db:"username"`
	FullName    string          `db:"full_name"`
	BirthDate   sql.NullTime    `db:"birth_date"`
	Bio         sql.NullString  `db:"bio"`
	LongBio     sql.NullString  `db:"long_bio"`
	Profile     ProfileDocument `db:"profile_json"`
	Address     sql.NullString  `db:"address"`
	PhoneNumber sql.NullString  `db:"phone_number"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`

	Email        sql.NullString `db:"email"`
	Role         sql.NullString `db:"role"`
	DivisionName sql.NullString `db:"division_name"`

	TotalUsers    int64 `db:"total_users"`
	NewerUsers    int64 `db:"newer_users"`
	LogCount      int64 `db:"log_count"`
	RoleCount     int64 `db:"role_count"`
	DivisionCount int64 `db:"division_count"`
	LoginCount    int64 `db:"login_count"`
	UpdateCount   int64 `db:"update_count"`
	RecentLogs    int64 `db:"recent_logs"`

	DisplayName     string `db:"display_name"`
	BioDisplay      string `db:"bio_display"`
	InstagramHandle string `db:"instagram_handle"`
}

// UserView is the API representation of a user with derived fields.
type UserView struct {
	ID          int64           `json:"id"`
	Username    string          `json:"username"`
	FullName    string          `json:"fullName"`
	Email       *string         `json:"email"`
	BirthDate   *time.Time      `json:"birthDate"`
	Bio         *string         `json:"bio"`
	LongBio     *string         `json:"longBio"`
	ProfileJSON ProfileDocument `json:"profileJson"`
	Address     *string         `json:"address"`
	PhoneNumber *string         `json:"phoneNumber"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Role        *string         `json:"role"`
	Division    *string         `json:"division"`

	DisplayName     string `json:"displayName"`
	BioDisplay      string `json:"bioDisplay"`
	InstagramHandle string `json:"instagramHandle"`

	TotalUsers    int64 `json:"totalUsers"`
	NewerUsers    int64 `json:"newerUsers"`
	LogCount      int64 `json:"logCount"`
	RoleCount     int64 `json:"roleCount"`
	DivisionCount int64 `json:"divisionCount"`
	LoginCount    int64 `json:"loginCount"`
	UpdateCount   int64 `json:"updateCount"`
	RecentLogs    int64 `json:"recentLogs"`

	DaysSinceCreated int64          `json:"daysSinceCreated"`
	IsActive         bool           `json:"isActive"`
	IsSenior         bool           `json:"isSenior"`
	SocialMedia      map[string]any `json:"socialMedia"`
	Preferences      map[string]any `json:"preferences"`
	Skills           []any          `json:"skills"`
	Interests        []any          `json:"interests"`

	HasProfile          bool    `json:"hasProfile"`
	HasBio              bool    `json:"hasBio"`
	HasAddress          bool    `json:"hasAddress"`
	HasPhone            bool    `json:"hasPhone"`
	ProfileCompleteness float64 `json:"profileCompleteness"`
}
