// Package models holds the data types shared by the users API layers.
package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

const (
	// DefaultPage and DefaultLimit apply when the query string omits or
	// mangles the parameters.
	DefaultPage  = 1
	DefaultLimit = 20

	// AllDivisions disables the division filter.
	AllDivisions = "all"

	// UnknownDivision keys users without a division in the statistics.
	UnknownDivision = "Unknown"

	ListUsersMessage = "Users retrieved successfully"
)

// ListUsersParams is the parsed form of the listing query string.
type ListUsersParams struct {
	Division *string
	Page     int
	Limit    int
}

// Offset is the number of rows skipped for Page. It saturates at
// math.MaxInt rather than wrapping, so an absurd page reads past the end.
func (p ListUsersParams) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// DivisionFilter reports the division to filter on, if any.
func (p ListUsersParams) DivisionFilter() (string, bool) {
	if p.Division == nil || *p.Division == "" || *p.Division == AllDivisions {
		return "", false
	}
	return *p.Division, true
}

// FilteredBy is the value echoed back in the response.
func (p ListUsersParams) FilteredBy() string {
	if p.Division == nil || *p.Division == "" {
		return AllDivisions
	}
	return *p.Division
}

// DivisionCount is one entry of DivisionCounts.
type DivisionCount struct {
	Division string
	Count    int
}

// DivisionCounts counts users per division, keeping keys in order of first
// occurrence. It marshals to a JSON object in that order.
type DivisionCounts []DivisionCount

// Get returns the count for division, zero when absent.
func (d DivisionCounts) Get(division string) int {
	for _, c := range d {
		if c.Division == division {
			return c.Count
		}
	}
	return 0
}

// Total sums all counts.
func (d DivisionCounts) Total() int {
	n := 0
	for _, c := range d {
		n += c.Count
	}
	return n
}

func (d DivisionCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Division)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(c.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// StatsSummary aggregates a page of users.
type StatsSummary struct {
	ActiveUsers               []UserView
	SeniorUsers               []UserView
	UsersWithCompleteProfiles []UserView
	UsersByDivision           DivisionCounts
}

// UserListing is the body of a successful GET /api/users response.
type UserListing struct {
	Users                     []UserView     `json:"users"`
	Total                     int            `json:"total"`
	ActiveUsers               int            `json:"activeUsers"`
	SeniorUsers               int            `json:"seniorUsers"`
	UsersWithCompleteProfiles int            `json:"usersWithCompleteProfiles"`
	UsersByDivision           DivisionCounts `json:"usersByDivision"`
	FilteredBy                string         `json:"filteredBy"`
	Page                      int            `json:"page"`
	Limit                     int            `json:"limit"`
	Message                   string         `json:"message"`
}
