package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"gitwrapped/internal/app"

	"github.com/pkg/errors"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

const (
	pageSize = 100

	// Page caps are deliberate bounded-fan-out limits, not errors: listing
	// stops there even when more pages exist.
	repoPageCap   = 5
	commitPageCap = 2
)

// Client reads one github user's profile, repositories, commits and
// languages over the REST api.
//
// A client is bound at construction to the analyzed login, an optional
// bearer token and the ownProfile flag. With ownProfile the repository
// listing covers owned, collaborator and organization-member repos
// (requires the login's own token); otherwise only public owned repos.
type Client struct {
	doer       HTTPDoer
	address    string
	login      string
	authToken  string
	ownProfile bool
	timeout    time.Duration

	listResponseMaxSize int
}

// NewClient creates new github client.
// authToken is optional, rate limit is lower without it.
func NewClient(doer HTTPDoer, address string, login string, authToken string, ownProfile bool, timeout time.Duration) *Client {
	return &Client{
		doer:       doer,
		address:    address,
		login:      login,
		authToken:  authToken,
		ownProfile: ownProfile,
		timeout:    timeout,

		listResponseMaxSize: 1024 * 1024 * 10,
	}
}

// User returns the analyzed account's profile.
// Returns app.NotFoundError when the account doesn't exist.
func (c *Client) User(ctx context.Context) (app.User, error) {
	httpReq, err := http.NewRequest(http.MethodGet, c.address+"/users/"+url.PathEscape(c.login), nil)
	if err != nil {
		return app.User{}, errors.Wrap(err, "creating http request")
	}

	body, code, err := c.makeRequest(ctx, httpReq)
	if err != nil {
		return app.User{}, err
	}
	if code == http.StatusNotFound {
		return app.User{}, app.NotFoundError("user")
	}
	if code/100 != 2 {
		return app.User{}, app.RemoteAPIError(statusText(code))
	}

	var resp userResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.User{}, errors.Wrap(err, "unmarshalling response")
	}

	return resp.ToUser(), nil
}

// Repositories lists the analyzed account's repositories pushed since the
// cutoff. The repos listing can't be filtered by push date server-side, so
// the cutoff is enforced here page by page; see keepPushedSince.
func (c *Client) Repositories(ctx context.Context, since time.Time) ([]app.Repository, error) {
	var repos []app.Repository
	for page := 1; page <= repoPageCap; page++ {
		httpReq, err := http.NewRequest(http.MethodGet, c.reposURL(page), nil)
		if err != nil {
			return nil, errors.Wrap(err, "creating http request")
		}

		body, code, err := c.makeRequest(ctx, httpReq)
		if err != nil {
			return nil, err
		}
		if code == http.StatusConflict {
			// Empty listing, not an error.
			return repos, nil
		}
		if code/100 != 2 {
			return nil, app.RemoteAPIError(statusText(code))
		}

		var resp reposResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, errors.Wrap(err, "unmarshalling response")
		}
		pageRepos := resp.ToRepositories()
		if len(pageRepos) == 0 {
			break
		}

		kept := keepPushedSince(pageRepos, since)
		repos = append(repos, kept...)

		// Listing is sorted by update recency, so a partially filtered
		// page signals that older repos started appearing. Stopping here
		// trades a chance of missed stragglers for fewer requests.
		if len(kept) < len(pageRepos) {
			break
		}
	}

	return repos, nil
}

// RepositoryCommits lists commits in repo authored by the analyzed login
// since the cutoff. Commit listing is capped at commitPageCap pages.
func (c *Client) RepositoryCommits(ctx context.Context, repo app.Repository, since time.Time) ([]app.Commit, error) {
	var commits []app.Commit
	for page := 1; page <= commitPageCap; page++ {
		u, err := url.Parse(c.address + fmt.Sprintf("/repos/%s/commits", repo.FullName))
		if err != nil {
			return nil, errors.Wrap(err, "invalid url")
		}
		v := make(url.Values)
		v.Set("since", since.Format(time.RFC3339))
		v.Set("author", c.login)
		v.Set("per_page", strconv.Itoa(pageSize))
		v.Set("page", strconv.Itoa(page))
		u.RawQuery = v.Encode()

		httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, errors.Wrap(err, "creating http request")
		}

		body, code, err := c.makeRequest(ctx, httpReq)
		if err != nil {
			return nil, err
		}
		if code == http.StatusConflict {
			// Github answers 409 for repos with empty git history.
			return commits, nil
		}
		if code/100 != 2 {
			return nil, app.RemoteAPIError(statusText(code))
		}

		var resp commitsResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, errors.Wrap(err, "unmarshalling response")
		}
		if len(resp) == 0 {
			break
		}

		commits = append(commits, resp.ToCommits()...)
	}

	return commits, nil
}

// RepositoryLanguages returns repo's language byte counts.
func (c *Client) RepositoryLanguages(ctx context.Context, repo app.Repository) (map[string]int64, error) {
	httpReq, err := http.NewRequest(http.MethodGet, c.address+fmt.Sprintf("/repos/%s/languages", repo.FullName), nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating http request")
	}

	body, code, err := c.makeRequest(ctx, httpReq)
	if err != nil {
		return nil, err
	}
	if code == http.StatusConflict {
		return map[string]int64{}, nil
	}
	if code/100 != 2 {
		return nil, app.RemoteAPIError(statusText(code))
	}

	var resp map[string]int64
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "unmarshalling response")
	}

	return resp, nil
}

func (c *Client) reposURL(page int) string {
	v := make(url.Values)
	v.Set("per_page", strconv.Itoa(pageSize))
	v.Set("page", strconv.Itoa(page))
	v.Set("sort", "updated")

	var path string
	if c.ownProfile {
		path = "/user/repos"
		v.Set("affiliation", "owner,collaborator,organization_member")
	} else {
		path = "/users/" + url.PathEscape(c.login) + "/repos"
		v.Set("type", "owner")
	}

	return c.address + path + "?" + v.Encode()
}

// keepPushedSince filters a listing page down to repos pushed at or after
// the cutoff. A zero cutoff keeps everything.
func keepPushedSince(repos []app.Repository, since time.Time) []app.Repository {
	if since.IsZero() {
		return repos
	}

	kept := make([]app.Repository, 0, len(repos))
	for _, r := range repos {
		if !r.PushedAt.Before(since) {
			kept = append(kept, r)
		}
	}

	return kept
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request) ([]byte, int, error) {
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, 0, app.RemoteAPIError("timeout")
		}
		return nil, 0, errors.Wrap(err, "doing http request")
	}
	// Always drain body before close to allow connection reuse
	// See: http://tleyden.github.io/blog/2016/11/21/tuning-the-go-http-client-library-for-load-testing/
	defer func() {
		io.CopyN(ioutil.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	b, err := ioutil.ReadAll(io.LimitReader(resp.Body, int64(c.listResponseMaxSize)))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, resp.StatusCode, app.RemoteAPIError("timeout")
		}
		return nil, resp.StatusCode, errors.Wrap(err, "reading http response body")
	}

	return b, resp.StatusCode, nil
}

func statusText(code int) string {
	text := http.StatusText(code)
	if text == "" {
		text = strconv.Itoa(code)
	}

	return text
}
