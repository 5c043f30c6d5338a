package app

import (
	"context"
	"sort"
	"time"
)

const (
	// maxAnalyzedRepos bounds commit collection fan-out for accounts with
	// very large repository counts.
	maxAnalyzedRepos = 50

	// maxLanguageRepos bounds how many repositories contribute to the
	// language byte counts.
	maxLanguageRepos = 30

	// maxInFlightFetches bounds concurrent github calls within one request,
	// to stay friendly with the remote rate limit.
	maxInFlightFetches = 10
)

// collectCommits gathers the user's commits since the cutoff across the most
// recently pushed repositories. One repository's failure never aborts the
// collection: it is logged and contributes nothing.
func (s *Service) collectCommits(ctx context.Context, client GithubClient, repos []Repository, since time.Time) []Commit {
	sorted := make([]Repository, len(repos))
	copy(sorted, repos)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].PushedAt.After(sorted[j].PushedAt)
	})
	if len(sorted) > maxAnalyzedRepos {
		sorted = sorted[:maxAnalyzedRepos]
	}

	type repoCommits struct {
		repo    Repository
		commits []Commit
		err     error
	}
	results := make(chan repoCommits, len(sorted))
	sem := make(chan struct{}, maxInFlightFetches)
	for _, repo := range sorted {
		repo := repo
		go func() {
			sem <- struct{}{}
			defer func() { <-sem }()

			commits, err := client.RepositoryCommits(ctx, repo, since)
			results <- repoCommits{
				repo:    repo,
				commits: commits,
				err:     err,
			}
		}()
	}

	var all []Commit
	for i := 0; i < cap(results); i++ {
		res := <-results
		if res.err != nil {
			s.l.Warnf("fetching commits for %s: %v", res.repo.FullName, res.err)
			continue
		}
		// The commits API response carries no repository reference,
		// so every commit gets stamped with its source repo here.
		for _, c := range res.commits {
			c.RepoFullName = res.repo.FullName
			all = append(all, c)
		}
	}

	return all
}

// collectLanguages merges per-repository language byte counts over a bounded
// sample of repositories. Failed repositories are logged and skipped.
func (s *Service) collectLanguages(ctx context.Context, client GithubClient, repos []Repository) map[string]int64 {
	sample := repos
	if len(sample) > maxLanguageRepos {
		sample = sample[:maxLanguageRepos]
	}

	languages := make(map[string]int64)
	for _, repo := range sample {
		langs, err := client.RepositoryLanguages(ctx, repo)
		if err != nil {
			s.l.Warnf("fetching languages for %s: %v", repo.FullName, err)
			continue
		}
		for name, bytes := range langs {
			languages[name] += bytes
		}
	}

	return languages
}
