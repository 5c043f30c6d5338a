package mock

import (
	"context"
	"time"

	"gitwrapped/internal/app"
)

// GithubClient mocks app.GithubClient.
type GithubClient struct {
	UserFunc                func(ctx context.Context) (app.User, error)
	RepositoriesFunc        func(ctx context.Context, since time.Time) ([]app.Repository, error)
	RepositoryCommitsFunc   func(ctx context.Context, repo app.Repository, since time.Time) ([]app.Commit, error)
	RepositoryLanguagesFunc func(ctx context.Context, repo app.Repository) (map[string]int64, error)
}

// User returns the analyzed account's profile.
func (m *GithubClient) User(ctx context.Context) (app.User, error) {
	if m.UserFunc != nil {
		return m.UserFunc(ctx)
	}

	return app.User{}, nil
}

// Repositories lists repositories pushed since the cutoff.
func (m *GithubClient) Repositories(ctx context.Context, since time.Time) ([]app.Repository, error) {
	if m.RepositoriesFunc != nil {
		return m.RepositoriesFunc(ctx, since)
	}

	return []app.Repository{}, nil
}

// RepositoryCommits lists the analyzed login's commits in repo.
func (m *GithubClient) RepositoryCommits(ctx context.Context, repo app.Repository, since time.Time) ([]app.Commit, error) {
	if m.RepositoryCommitsFunc != nil {
		return m.RepositoryCommitsFunc(ctx, repo, since)
	}

	return []app.Commit{}, nil
}

// RepositoryLanguages returns repo's language byte counts.
func (m *GithubClient) RepositoryLanguages(ctx context.Context, repo app.Repository) (map[string]int64, error) {
	if m.RepositoryLanguagesFunc != nil {
		return m.RepositoryLanguagesFunc(ctx, repo)
	}

	return map[string]int64{}, nil
}
