package github

import (
	"time"

	"gitwrapped/internal/app"
)

type userResponse struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	AvatarURL   string    `json:"avatar_url"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r userResponse) ToUser() app.User {
	return app.User{
		Login:       r.Login,
		Name:        r.Name,
		AvatarURL:   r.AvatarURL,
		PublicRepos: r.PublicRepos,
		Followers:   r.Followers,
		Following:   r.Following,
		CreatedAt:   r.CreatedAt,
	}
}

type repoResponse struct {
	Name            string                  `json:"name"`
	FullName        string                  `json:"full_name"`
	Description     string                  `json:"description"`
	StargazersCount int                     `json:"stargazers_count"`
	Language        string                  `json:"language"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
	PushedAt        time.Time               `json:"pushed_at"`
	Owner           repoResponseOwner       `json:"owner"`
	Permissions     repoResponsePermissions `json:"permissions"`
}

type repoResponseOwner struct {
	Login string `json:"login"`
}

type repoResponsePermissions struct {
	Push bool `json:"push"`
}

func (r repoResponse) ToRepository() app.Repository {
	return app.Repository{
		Name:        r.Name,
		FullName:    r.FullName,
		Description: r.Description,
		Stars:       r.StargazersCount,
		Language:    r.Language,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		PushedAt:    r.PushedAt,
		OwnerLogin:  r.Owner.Login,
		CanPush:     r.Permissions.Push,
	}
}

type reposResponse []repoResponse

func (rs reposResponse) ToRepositories() []app.Repository {
	out := make([]app.Repository, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ToRepository())
	}

	return out
}

type commitResponse struct {
	SHA    string               `json:"sha"`
	Commit commitResponseCommit `json:"commit"`
}

type commitResponseCommit struct {
	Author  commitResponseAuthor `json:"author"`
	Message string               `json:"message"`
}

type commitResponseAuthor struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Date  time.Time `json:"date"`
}

func (c commitResponse) ToCommit() app.Commit {
	return app.Commit{
		SHA:         c.SHA,
		AuthorName:  c.Commit.Author.Name,
		AuthorEmail: c.Commit.Author.Email,
		AuthoredAt:  c.Commit.Author.Date,
		Message:     c.Commit.Message,
	}
}

type commitsResponse []commitResponse

func (cs commitsResponse) ToCommits() []app.Commit {
	out := make([]app.Commit, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ToCommit())
	}

	return out
}
