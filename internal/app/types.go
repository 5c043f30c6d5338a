package app

import "time"

// User is a github account profile.
type User struct {
	Login       string
	Name        string
	AvatarURL   string
	PublicRepos int
	Followers   int
	Following   int
	CreatedAt   time.Time
}

// Repository is a github repository as seen by the listing endpoints.
// Identified by FullName ("owner/name") within one request's working set.
type Repository struct {
	Name        string
	FullName    string
	Description string
	Stars       int
	Language    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PushedAt    time.Time
	OwnerLogin  string
	CanPush     bool
}

// Commit is a single commit authored by the analyzed user.
// RepoFullName is stamped by the aggregator; the commits API doesn't return it.
type Commit struct {
	SHA          string
	AuthorName   string
	AuthorEmail  string
	AuthoredAt   time.Time
	Message      string
	RepoFullName string
}

// RepoActivity is a repository name with the number of commits attributed to it.
type RepoActivity struct {
	Name    string
	Commits int
}

// Achievement is one badge from the fixed catalog, unlocked or not.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Unlocked    bool
}

// Stats is the year-in-review summary for one user.
// Built once per request, never mutated afterwards.
type Stats struct {
	TotalCommits     int
	TotalRepos       int
	TopLanguages     map[string]int64
	CommitsByHour    [24]int
	CommitsByDay     [7]int
	LongestStreak    int
	CurrentStreak    int
	TotalDaysActive  int
	LinesAdded       int
	LinesDeleted     int
	FavoriteRepo     RepoActivity
	TopRepos         []RepoActivity
	CodingPattern    string
	Achievements     []Achievement
	DeveloperProfile string
}
