package app

import "fmt"

// AchievementInput carries the yearly counters achievement predicates look at.
type AchievementInput struct {
	Commits       int
	LongestStreak int
	Languages     int
	Repos         int
}

// AchievementSpec is one catalog entry: a stable id, display copy and an
// unlock predicate. Catalogs are plain data passed into EvalAchievements so
// the evaluation stays pure.
type AchievementSpec struct {
	ID       string
	Title    string
	Icon     string
	Describe func(AchievementInput) string
	Unlock   func(AchievementInput) bool
}

// DefaultAchievements is the fixed badge catalog. Every badge is always
// reported, locked or not, in this order.
var DefaultAchievements = []AchievementSpec{
	{
		ID:       "active-year",
		Title:    "Active Year",
		Icon:     "⭐",
		Describe: func(in AchievementInput) string { return fmt.Sprintf("Made %d commits this year", in.Commits) },
		Unlock:   func(in AchievementInput) bool { return in.Commits >= 10 },
	},
	{
		ID:       "century",
		Title:    "Century Club",
		Icon:     "💯",
		Describe: func(AchievementInput) string { return "Reached 100 commits this year" },
		Unlock:   func(in AchievementInput) bool { return in.Commits >= 100 },
	},
	{
		ID:       "commit-machine",
		Title:    "Commit Machine",
		Icon:     "🤖",
		Describe: func(AchievementInput) string { return "Made 500+ commits this year" },
		Unlock:   func(in AchievementInput) bool { return in.Commits >= 500 },
	},
	{
		ID:       "streak-master",
		Title:    "Streak Master",
		Icon:     "🔥",
		Describe: func(AchievementInput) string { return "Maintained a 30-day streak" },
		Unlock:   func(in AchievementInput) bool { return in.LongestStreak >= 30 },
	},
	{
		ID:       "consistency",
		Title:    "Consistent Coder",
		Icon:     "📅",
		Describe: func(AchievementInput) string { return "Maintained a 7-day streak" },
		Unlock:   func(in AchievementInput) bool { return in.LongestStreak >= 7 },
	},
	{
		ID:       "polyglot",
		Title:    "Polyglot",
		Icon:     "🌐",
		Describe: func(AchievementInput) string { return "Coded in 5+ languages" },
		Unlock:   func(in AchievementInput) bool { return in.Languages >= 5 },
	},
	{
		ID:       "repo-collector",
		Title:    "Repo Collector",
		Icon:     "📚",
		Describe: func(AchievementInput) string { return "Created 10+ repositories" },
		Unlock:   func(in AchievementInput) bool { return in.Repos >= 10 },
	},
}

// EvalAchievements evaluates the whole catalog against the input.
// The result always has one entry per catalog entry, in catalog order.
func EvalAchievements(catalog []AchievementSpec, in AchievementInput) []Achievement {
	out := make([]Achievement, 0, len(catalog))
	for _, spec := range catalog {
		out = append(out, Achievement{
			ID:          spec.ID,
			Title:       spec.Title,
			Description: spec.Describe(in),
			Icon:        spec.Icon,
			Unlocked:    spec.Unlock(in),
		})
	}

	return out
}

// ProfileInput carries the counters the developer profile rules look at.
type ProfileInput struct {
	Commits   int
	Languages int
	ByDay     [7]int
}

// ProfileRule is one entry of the ordered decision list; first match wins.
type ProfileRule struct {
	Label string
	Match func(ProfileInput) bool
}

// DefaultProfileRules is the ordered developer profile decision list.
var DefaultProfileRules = []ProfileRule{
	{
		Label: "Weekend Warrior",
		Match: func(in ProfileInput) bool {
			weekend := in.ByDay[0] + in.ByDay[6]
			var weekday int
			for i := 1; i <= 5; i++ {
				weekday += in.ByDay[i]
			}
			return float64(weekend) > float64(weekday)*0.4
		},
	},
	{
		Label: "Commit Machine",
		Match: func(in ProfileInput) bool { return in.Commits > 1000 },
	},
	{
		Label: "Language Explorer",
		Match: func(in ProfileInput) bool { return in.Languages > 10 },
	},
	{
		Label: "Feature Factory",
		Match: func(in ProfileInput) bool { return in.Commits > 500 },
	},
}

// FallbackProfiles are picked uniformly at random when no rule matches.
// The random pick is part of the product contract, so it stays even though it
// makes this branch non-deterministic.
var FallbackProfiles = []string{
	"Refactor Addict",
	"Bug Squasher",
	"Code Poet",
	"Open Source Hero",
}

// ClassifyProfile walks the rules in order and returns the first matching
// label. When nothing matches it returns fallback[pick(len(fallback))].
func ClassifyProfile(rules []ProfileRule, fallback []string, in ProfileInput, pick func(n int) int) string {
	for _, rule := range rules {
		if rule.Match(in) {
			return rule.Label
		}
	}

	return fallback[pick(len(fallback))]
}
