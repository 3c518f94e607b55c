package model

type Stats struct {
	GoalsAchieved int `json:"goalsAchieved"`
	TotalDays     int `json:"totalDays"`
	SuccessRate   int `json:"successRate"`
	ThisWeekGoals int `json:"thisWeekGoals"`
}
