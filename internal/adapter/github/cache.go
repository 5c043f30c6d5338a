package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"gitwrapped/internal/app"
)

// ClientCaches holds the lru caches shared by all per-request cached
// clients. One set is created at startup and handed to every CachedClient,
// so responses survive across requests while clients stay per-request.
type ClientCaches struct {
	users     *lru.Cache
	repos     *lru.Cache
	commits   *lru.Cache
	languages *lru.Cache
}

// NewClientCaches creates caches with given size per client method.
func NewClientCaches(size int) (*ClientCaches, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}

	users, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for users: %w", err)
	}
	repos, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for repos: %w", err)
	}
	commits, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for commits: %w", err)
	}
	languages, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for languages: %w", err)
	}

	return &ClientCaches{
		users:     users,
		repos:     repos,
		commits:   commits,
		languages: languages,
	}, nil
}

// CachedClient wraps a github client with a caching layer.
//
// Cache keys include the analyzed login and the own-profile flag, so a
// privileged own-profile listing is never served to a third-party request.
type CachedClient struct {
	client     app.GithubClient
	caches     *ClientCaches
	ttl        time.Duration
	login      string
	ownProfile bool
}

// NewCachedClient creates new CachedClient instance over shared caches.
func NewCachedClient(client app.GithubClient, caches *ClientCaches, ttl time.Duration, login string, ownProfile bool) *CachedClient {
	return &CachedClient{
		client:     client,
		caches:     caches,
		ttl:        ttl,
		login:      login,
		ownProfile: ownProfile,
	}
}

type usersCacheEntry struct {
	created time.Time
	data    app.User
}

type reposCacheEntry struct {
	created time.Time
	data    []app.Repository
}

type commitsCacheEntry struct {
	created time.Time
	data    []app.Commit
}

type languagesCacheEntry struct {
	created time.Time
	data    map[string]int64
}

// User returns the analyzed account's profile, cached.
func (c *CachedClient) User(ctx context.Context) (app.User, error) {
	key := c.login
	if val, ok := c.caches.users.Get(key); ok {
		entry := val.(usersCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	user, err := c.client.User(ctx)
	if err != nil {
		return user, err
	}

	c.caches.users.Add(key, usersCacheEntry{created: time.Now(), data: user})

	return user, nil
}

// Repositories lists repositories pushed since the cutoff, cached.
func (c *CachedClient) Repositories(ctx context.Context, since time.Time) ([]app.Repository, error) {
	key := fmt.Sprintf("%s|%t|%s", c.login, c.ownProfile, since.Format(time.RFC3339))
	if val, ok := c.caches.repos.Get(key); ok {
		entry := val.(reposCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	repos, err := c.client.Repositories(ctx, since)
	if err != nil {
		return repos, err
	}

	c.caches.repos.Add(key, reposCacheEntry{created: time.Now(), data: repos})

	return repos, nil
}

// RepositoryCommits lists the analyzed login's commits in repo, cached.
func (c *CachedClient) RepositoryCommits(ctx context.Context, repo app.Repository, since time.Time) ([]app.Commit, error) {
	key := fmt.Sprintf("%s|%s|%s", repo.FullName, c.login, since.Format(time.RFC3339))
	if val, ok := c.caches.commits.Get(key); ok {
		entry := val.(commitsCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	commits, err := c.client.RepositoryCommits(ctx, repo, since)
	if err != nil {
		return commits, err
	}

	c.caches.commits.Add(key, commitsCacheEntry{created: time.Now(), data: commits})

	return commits, nil
}

// RepositoryLanguages returns repo's language byte counts, cached.
func (c *CachedClient) RepositoryLanguages(ctx context.Context, repo app.Repository) (map[string]int64, error) {
	key := repo.FullName
	if val, ok := c.caches.languages.Get(key); ok {
		entry := val.(languagesCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	languages, err := c.client.RepositoryLanguages(ctx, repo)
	if err != nil {
		return languages, err
	}

	c.caches.languages.Add(key, languagesCacheEntry{created: time.Now(), data: languages})

	return languages, nil
}
