package app

import (
	"context"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// GithubClient reads one user's github data. A client instance is bound to
// the analyzed login, an optional bearer token and the own-profile capability
// flag chosen at construction.
type GithubClient interface {
	User(ctx context.Context) (User, error)
	Repositories(ctx context.Context, since time.Time) ([]Repository, error)
	RepositoryCommits(ctx context.Context, repo Repository, since time.Time) ([]Commit, error)
	RepositoryLanguages(ctx context.Context, repo Repository) (map[string]int64, error)
}

// ClientFactory builds a fresh GithubClient for one request.
type ClientFactory func(login string, token string, ownProfile bool) GithubClient

// Service assembles the year-in-review stats for a user.
type Service struct {
	newClient ClientFactory
	l         logrus.FieldLogger

	achievements     []AchievementSpec
	profileRules     []ProfileRule
	fallbackProfiles []string

	now  func() time.Time
	pick func(n int) int
}

// NewService creates new Service instance.
func NewService(newClient ClientFactory, l logrus.FieldLogger) *Service {
	return &Service{
		newClient:        newClient,
		l:                l,
		achievements:     DefaultAchievements,
		profileRules:     DefaultProfileRules,
		fallbackProfiles: FallbackProfiles,
		now:              time.Now,
		pick:             rand.Intn,
	}
}

// YearInReview computes the stats for login over the current calendar year,
// from Jan 1 00:00:00 UTC until now.
//
// token may be empty: the pipeline then sees public data only, at reduced
// rate limits. ownProfile widens the repository listing to owned,
// collaborator and organization-member repos and must only be set when login
// is the token owner's verified username.
//
// NotFoundError and RemoteAPIError pass through unchanged; per-repository
// fetch failures are logged and contribute empty results.
func (s *Service) YearInReview(ctx context.Context, login string, token string, ownProfile bool) (Stats, error) {
	if !ValidUsername(login) {
		return Stats{}, InvalidRequestError("invalid github username")
	}

	client := s.newClient(login, token, ownProfile)

	// The profile itself isn't part of the output; fetching it up front is
	// what turns an unknown login into NotFoundError before any listing runs.
	if _, err := client.User(ctx); err != nil {
		return Stats{}, err
	}

	now := s.now()
	since := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	repos, err := client.Repositories(ctx, since)
	if err != nil {
		return Stats{}, err
	}

	commits := s.collectCommits(ctx, client, repos, since)
	languages := s.collectLanguages(ctx, client, repos)

	byHour := HourHistogram(commits)
	byDay := DayHistogram(commits)
	dates := ActiveDates(commits)
	longest, current := Streaks(dates, now)
	topRepos, favorite := RankRepositories(commits)
	added, deleted := EstimateLines(len(commits))

	achievements := EvalAchievements(s.achievements, AchievementInput{
		Commits:       len(commits),
		LongestStreak: longest,
		Languages:     len(languages),
		Repos:         len(repos),
	})
	profile := ClassifyProfile(s.profileRules, s.fallbackProfiles, ProfileInput{
		Commits:   len(commits),
		Languages: len(languages),
		ByDay:     byDay,
	}, s.pick)

	return Stats{
		TotalCommits:     len(commits),
		TotalRepos:       len(repos),
		TopLanguages:     languages,
		CommitsByHour:    byHour,
		CommitsByDay:     byDay,
		LongestStreak:    longest,
		CurrentStreak:    current,
		TotalDaysActive:  len(dates),
		LinesAdded:       added,
		LinesDeleted:     deleted,
		FavoriteRepo:     favorite,
		TopRepos:         topRepos,
		CodingPattern:    ClassifyCodingPattern(byHour),
		Achievements:     achievements,
		DeveloperProfile: profile,
	}, nil
}
