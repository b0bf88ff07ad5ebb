package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestListUsersParams(t *testing.T) {
	tests := []struct {
		name       string
		params     ListUsersParams
		offset     int
		filter     string
		hasFilter  bool
		filteredBy string
	}{
		{name: "first page", params: ListUsersParams{Page: 1, Limit: 5, Division: ptr("Tech")}, offset: 0, filter: "Tech", hasFilter: true, filteredBy: "Tech"},
		{name: "second page", params: ListUsersParams{Page: 2, Limit: 10, Division: ptr("all")}, offset: 10, filteredBy: "all"},
		{name: "no division", params: ListUsersParams{Page: 3, Limit: 20}, offset: 40, filteredBy: "all"},
		{name: "empty division", params: ListUsersParams{Page: 1, Limit: 20, Division: ptr("")}, offset: 0, filteredBy: "all"},
		{name: "offset wraps to zero", params: ListUsersParams{Page: math.MaxInt/4 + 2, Limit: 4}, offset: math.MaxInt, filteredBy: "all"},
		{name: "offset wraps negative", params: ListUsersParams{Page: math.MaxInt, Limit: 3}, offset: math.MaxInt, filteredBy: "all"},
		{name: "largest exact offset", params: ListUsersParams{Page: math.MaxInt/4 + 1, Limit: 4}, offset: (math.MaxInt / 4) * 4, filteredBy: "all"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.offset, tt.params.Offset())
			got, ok := tt.params.DivisionFilter()
			assert.Equal(t, tt.hasFilter, ok)
			assert.Equal(t, tt.filter, got)
			assert.Equal(t, tt.filteredBy, tt.params.FilteredBy())
		})
	}
}

func TestDivisionCounts_MarshalKeepsOrder(t *testing.T) {
	d := DivisionCounts{{"Tech", 2}, {"HR", 1}, {UnknownDivision, 3}}

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `{"Tech":2,"HR":1,"Unknown":3}`, string(b))

	assert.Equal(t, 2, d.Get("Tech"))
	assert.Equal(t, 0, d.Get("Sales"))
	assert.Equal(t, 6, d.Total())
}

func TestDivisionCounts_EmptyMarshalsAsObject(t *testing.T) {
	b, err := json.Marshal(UserListing{})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, map[string]any{}, m["usersByDivision"])
}

func TestDivisionCounts_EscapesKeys(t *testing.T) {
	b, err := json.Marshal(DivisionCounts{{`R"&D`, 1}})
	require.NoError(t, err)

	var m map[string]int
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, 1, m[`R"&D`])
}
