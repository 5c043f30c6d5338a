package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"gitwrapped/internal/app"
)

func TestSlideContent(t *testing.T) {
	t.Parallel()

	stats := app.Stats{
		TotalCommits: 1234,
		TotalRepos:   12,
		TopLanguages: map[string]int64{"Go": 5000, "HTML": 100},
		LinesAdded:   11100,
		LinesDeleted: 7400,
		FavoriteRepo: app.RepoActivity{Name: "octocat/hello-world", Commits: 321},
		TopRepos: []app.RepoActivity{
			{Name: "octocat/hello-world", Commits: 321},
			{Name: "octocat/spoon-knife", Commits: 10},
		},
		CodingPattern:    app.PatternNightOwl,
		DeveloperProfile: "Code Poet",
	}

	tests := []struct {
		slide           int
		wantTitle       string
		wantSubtitle    string
		wantDescription string
	}{
		{
			slide:        0,
			wantTitle:    "Git Wrapped 2024",
			wantSubtitle: "Seu ano em código",
		},
		{
			slide:           1,
			wantTitle:       "1.234",
			wantSubtitle:    "Você fez",
			wantDescription: "commits em 2024",
		},
		{
			slide:           2,
			wantTitle:       "Go",
			wantSubtitle:    "Sua linguagem favorita",
			wantDescription: "em 12 repositórios",
		},
		{
			slide:        3,
			wantTitle:    app.PatternNightOwl,
			wantSubtitle: "Seu padrão de código",
		},
		{
			slide:           4,
			wantTitle:       "hello-world",
			wantSubtitle:    "Repositório favorito",
			wantDescription: "321 commits",
		},
		{
			slide:           5,
			wantTitle:       "+11.100",
			wantSubtitle:    "Linhas de código",
			wantDescription: "-7.400 removidas",
		},
		{
			slide:        6,
			wantTitle:    "Code Poet",
			wantSubtitle: "Seu perfil de desenvolvedor",
		},
		{
			slide:           7,
			wantTitle:       "2024 Wrapped",
			wantSubtitle:    "Seu ano em código",
			wantDescription: "1.234 commits • 12 repos",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("slide %d", tt.slide), func(t *testing.T) {
			content := SlideContent(tt.slide, stats, 2024)

			assert.Equal(t, tt.wantTitle, content.Title)
			assert.Equal(t, tt.wantSubtitle, content.Subtitle)
			assert.Equal(t, tt.wantDescription, content.Description)
			assert.NotZero(t, content.TitleSize)
			assert.NotEmpty(t, content.Background[0])
		})
	}
}

func TestSlideContentEmptyStats(t *testing.T) {
	t.Parallel()

	content := SlideContent(2, app.Stats{}, 2024)
	assert.Equal(t, "Code", content.Title)

	content = SlideContent(4, app.Stats{}, 2024)
	assert.Equal(t, "GitHub", content.Title)
	assert.Equal(t, "0 commits", content.Description)
}

func TestTopLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		languages map[string]int64
		want      string
	}{
		{
			name:      "picks most bytes",
			languages: map[string]int64{"Go": 100, "Rust": 500, "HTML": 50},
			want:      "Rust",
		},
		{
			name:      "name breaks ties",
			languages: map[string]int64{"Go": 100, "C": 100},
			want:      "C",
		},
		{
			name: "empty",
			want: "Code",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, topLanguage(tt.languages))
		})
	}
}

func TestTopRepoName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		repos []app.RepoActivity
		want  string
	}{
		{
			name:  "strips owner prefix",
			repos: []app.RepoActivity{{Name: "octocat/hello-world"}},
			want:  "hello-world",
		},
		{
			name:  "bare name kept",
			repos: []app.RepoActivity{{Name: "hello-world"}},
			want:  "hello-world",
		},
		{
			name: "no repos",
			want: "GitHub",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, topRepoName(tt.repos))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.000"},
		{1234, "1.234"},
		{12345, "12.345"},
		{1234567, "1.234.567"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatNumber(tt.n))
		})
	}
}
