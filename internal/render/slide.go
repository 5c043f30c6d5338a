// Package render produces the shareable 1200x630 preview images, one per
// wrapped slide.
package render

import (
	"fmt"
	"sort"
	"strings"

	"gitwrapped/internal/app"
)

// SlideCount is the number of shareable slides.
const SlideCount = 8

// Gradient is a 3-stop background, top-left to bottom-right.
type Gradient [3]string

var backgrounds = []Gradient{
	{"#1DB954", "#1ED760", "#34d399"},
	{"#9333ea", "#7c3aed", "#c026d3"},
	{"#1DB954", "#14b8a6", "#06b6d4"},
	{"#db2777", "#f43f5e", "#f97316"},
	{"#2563eb", "#4f46e5", "#9333ea"},
	{"#1DB954", "#10b981", "#0d9488"},
	{"#f97316", "#ec4899", "#9333ea"},
	{"#9333ea", "#1DB954", "#06b6d4"},
}

// Content is one slide's copy and styling.
type Content struct {
	Title       string
	Subtitle    string
	Description string
	TitleSize   int
	Background  Gradient
}

// SlideContent maps a slide number (1..SlideCount) to its copy. Out-of-range
// slide numbers get the generic cover.
func SlideContent(slide int, stats app.Stats, year int) Content {
	switch slide {
	case 1:
		return Content{
			Title:       formatNumber(stats.TotalCommits),
			Subtitle:    "Você fez",
			Description: fmt.Sprintf("commits em %d", year),
			TitleSize:   180,
			Background:  backgrounds[1],
		}
	case 2:
		return Content{
			Title:       topLanguage(stats.TopLanguages),
			Subtitle:    "Sua linguagem favorita",
			Description: fmt.Sprintf("em %d repositórios", stats.TotalRepos),
			TitleSize:   100,
			Background:  backgrounds[2],
		}
	case 3:
		return Content{
			Title:      stats.CodingPattern,
			Subtitle:   "Seu padrão de código",
			TitleSize:  80,
			Background: backgrounds[3],
		}
	case 4:
		var commits int
		if len(stats.TopRepos) > 0 {
			commits = stats.TopRepos[0].Commits
		}
		return Content{
			Title:       topRepoName(stats.TopRepos),
			Subtitle:    "Repositório favorito",
			Description: fmt.Sprintf("%d commits", commits),
			TitleSize:   80,
			Background:  backgrounds[4],
		}
	case 5:
		return Content{
			Title:       "+" + formatNumber(stats.LinesAdded),
			Subtitle:    "Linhas de código",
			Description: fmt.Sprintf("-%s removidas", formatNumber(stats.LinesDeleted)),
			TitleSize:   140,
			Background:  backgrounds[5],
		}
	case 6:
		return Content{
			Title:      stats.DeveloperProfile,
			Subtitle:   "Seu perfil de desenvolvedor",
			TitleSize:  70,
			Background: backgrounds[6],
		}
	case 7:
		return Content{
			Title:       fmt.Sprintf("%d Wrapped", year),
			Subtitle:    "Seu ano em código",
			Description: fmt.Sprintf("%s commits • %d repos", formatNumber(stats.TotalCommits), stats.TotalRepos),
			TitleSize:   100,
			Background:  backgrounds[7],
		}
	default:
		return Content{
			Title:      fmt.Sprintf("Git Wrapped %d", year),
			Subtitle:   "Seu ano em código",
			TitleSize:  100,
			Background: backgrounds[0],
		}
	}
}

// topLanguage picks the language with the most bytes.
func topLanguage(languages map[string]int64) string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if languages[names[i]] != languages[names[j]] {
			return languages[names[i]] > languages[names[j]]
		}
		return names[i] < names[j]
	})

	if len(names) == 0 {
		return "Code"
	}
	return names[0]
}

// topRepoName shows the bare repo name without the owner prefix.
func topRepoName(repos []app.RepoActivity) string {
	if len(repos) == 0 {
		return "GitHub"
	}

	name := repos[0].Name
	if i := strings.Index(name, "/"); i >= 0 && i+1 < len(name) {
		name = name[i+1:]
	}

	return name
}

// formatNumber renders n with pt-BR thousands separators (1.234.567).
func formatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(s[i : i+3])
	}

	return b.String()
}
