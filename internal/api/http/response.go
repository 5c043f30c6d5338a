package http

import "gitwrapped/internal/app"

type repoActivity struct {
	Name    string `json:"name"`
	Commits int    `json:"commits"`
}

type achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
}

type statsResponse struct {
	TotalCommits     int              `json:"totalCommits"`
	TotalRepos       int              `json:"totalRepos"`
	TopLanguages     map[string]int64 `json:"topLanguages"`
	CommitsByHour    [24]int          `json:"commitsByHour"`
	CommitsByDay     [7]int           `json:"commitsByDay"`
	LongestStreak    int              `json:"longestStreak"`
	CurrentStreak    int              `json:"currentStreak"`
	TotalDaysActive  int              `json:"totalDaysActive"`
	LinesAdded       int              `json:"linesAdded"`
	LinesDeleted     int              `json:"linesDeleted"`
	FavoriteRepo     repoActivity     `json:"favoriteRepo"`
	TopRepos         []repoActivity   `json:"topRepos"`
	CodingPattern    string           `json:"codingPattern"`
	Achievements     []achievement    `json:"achievements"`
	DeveloperProfile string           `json:"developerProfile"`
}

func newStatsResponse(stats app.Stats) statsResponse {
	topLanguages := stats.TopLanguages
	if topLanguages == nil {
		topLanguages = map[string]int64{}
	}

	topRepos := make([]repoActivity, 0, len(stats.TopRepos))
	for _, r := range stats.TopRepos {
		topRepos = append(topRepos, repoActivity{
			Name:    r.Name,
			Commits: r.Commits,
		})
	}

	achievements := make([]achievement, 0, len(stats.Achievements))
	for _, a := range stats.Achievements {
		achievements = append(achievements, achievement{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Icon:        a.Icon,
			Unlocked:    a.Unlocked,
		})
	}

	return statsResponse{
		TotalCommits:    stats.TotalCommits,
		TotalRepos:      stats.TotalRepos,
		TopLanguages:    topLanguages,
		CommitsByHour:   stats.CommitsByHour,
		CommitsByDay:    stats.CommitsByDay,
		LongestStreak:   stats.LongestStreak,
		CurrentStreak:   stats.CurrentStreak,
		TotalDaysActive: stats.TotalDaysActive,
		LinesAdded:      stats.LinesAdded,
		LinesDeleted:    stats.LinesDeleted,
		FavoriteRepo: repoActivity{
			Name:    stats.FavoriteRepo.Name,
			Commits: stats.FavoriteRepo.Commits,
		},
		TopRepos:         topRepos,
		CodingPattern:    stats.CodingPattern,
		Achievements:     achievements,
		DeveloperProfile: stats.DeveloperProfile,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}
