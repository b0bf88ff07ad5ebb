package users

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/usersapi/internal/server/models"
)

const listUsersSelect = `
SELECT
	u.id, u.username, u.full_name, u.birth_date, u.bio, u.long_bio, u.profile_json,
	u.address, u.phone_number, u.created_at, u.updated_at,
	a.email, ur.role, ud.division_name,
	(SELECT COUNT(*) FROM users) AS total_users,
	(SELECT COUNT(*) FROM users WHERE created_at > u.created_at) AS newer_users,
	(SELECT COUNT(*) FROM user_logs WHERE user_id = u.id) AS log_count,
	(SELECT COUNT(*) FROM user_roles WHERE user_id = u.id) AS role_count,
	(SELECT COUNT(*) FROM user_divisions WHERE user_id = u.id) AS division_count,
	(SELECT COUNT(*) FROM user_logs WHERE action = 'login' AND user_id = u.id) AS login_count,
	(SELECT COUNT(*) FROM user_logs WHERE action = 'update_profile' AND user_id = u.id) AS update_count,
	(SELECT COUNT(*) FROM user_logs ul
		WHERE ul.user_id = u.id
		AND ul.created_at > (SELECT MAX(created_at) FROM user_logs WHERE user_id = u.id) - INTERVAL '30 days') AS recent_logs,
	CONCAT(u.full_name, ' (', COALESCE(ur.role, 'no role'), ')') AS display_name,
	CASE
		WHEN u.bio IS NULL THEN 'No bio available'
		WHEN u.bio = '' THEN 'Empty bio'
		ELSE u.bio
	END AS bio_display,
	CASE
		WHEN u.profile_json IS NULL THEN 'No profile data'
		WHEN u.profile_json->'social_media' IS NULL THEN 'No social media'
		WHEN u.profile_json->'social_media'->>'instagram' IS NULL THEN 'No Instagram'
		ELSE u.profile_json->'social_media'->>'instagram'
	END AS instagram_handle
FROM users u
LEFT JOIN auth a ON u.auth_id = a.id
LEFT JOIN user_roles ur ON u.id = ur.user_id
LEFT JOIN user_divisions ud ON u.id = ud.user_id`

// BuildListQuery returns the listing statement and its positional
// arguments. The division, limit and offset are always bound, never
// spliced into the SQL text.
func BuildListQuery(params models.ListUsersParams) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, 3)

	bind := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	sb.WriteString(listUsersSelect)

	if division, ok := params.DivisionFilter(); ok {
		sb.WriteString("\nWHERE ud.division_name = ")
		sb.WriteString(bind(division))
	}

	sb.WriteString("\nORDER BY u.created_at DESC")
	sb.WriteString("\nLIMIT ")
	sb.WriteString(bind(params.Limit))
	sb.WriteString(" OFFSET ")
	sb.WriteString(bind(params.Offset()))

	return sb.String(), args
}
