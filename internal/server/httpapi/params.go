package httpapi

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/usersapi/internal/server/models"
)

var intPrefix = regexp.MustCompile(`^[+-]?[0-9]+`)

// parseListParams reads division, page and limit from the query string.
// Malformed or non-positive numbers fall back to their defaults; the names
// of the parameters that did so are returned for logging.
func parseListParams(r *http.Request) (models.ListUsersParams, []string) {
	q := r.URL.Query()

	var params models.ListUsersParams
	var fallbacks []string

	if d := q.Get("division"); d != "" {
		params.Division = &d
	}

	var ok bool
	if params.Page, ok = parsePositive(q.Get("page"), models.DefaultPage); !ok {
		fallbacks = append(fallbacks, "page")
	}
	if params.Limit, ok = parsePositive(q.Get("limit"), models.DefaultLimit); !ok {
		fallbacks = append(fallbacks, "limit")
	}

	return params, fallbacks
}

// parsePositive parses the leading integer of raw, so "12abc" is 12. An
// empty raw yields def and is not a failure.
func parsePositive(raw string, def int) (int, bool) {
	if raw == "" {
		return def, true
	}

	n, err := strconv.Atoi(intPrefix.FindString(strings.TrimSpace(raw)))
	if err != nil || n < 1 {
		return def, false
	}

	return n, true
}
