package services

import "github.com/dmitrijs2005/usersapi/internal/server/models"

// AggregateUserStats summarises a page of users. Every subsequence keeps
// the input order and division keys appear in order of first occurrence.
func AggregateUserStats(users []models.UserView) models.StatsSummary {
	summary := models.StatsSummary{
		ActiveUsers:               []models.UserView{},
		SeniorUsers:               []models.UserView{},
		UsersWithCompleteProfiles: []models.UserView{},
		UsersByDivision:           models.DivisionCounts{},
	}
	index := make(map[string]int)

	for _, u := range users {
		if u.IsActive {
			summary.ActiveUsers = append(summary.ActiveUsers, u)
		}
		if u.IsSenior {
			summary.SeniorUsers = append(summary.SeniorUsers, u)
		}
		if u.ProfileCompleteness > completeProfileMin {
			summary.UsersWithCompleteProfiles = append(summary.UsersWithCompleteProfiles, u)
		}

		key := models.UnknownDivision
		if u.Division != nil {
			key = *u.Division
		}
		if i, ok := index[key]; ok {
			summary.UsersByDivision[i].Count++
			continue
		}
		index[key] = len(summary.UsersByDivision)
		summary.UsersByDivision = append(summary.UsersByDivision, models.DivisionCount{Division: key, Count: 1})
	}

	return summary
}
