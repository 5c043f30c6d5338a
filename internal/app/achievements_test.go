package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gitwrapped/internal/app"
)

var achievementIDs = []string{
	"active-year",
	"century",
	"commit-machine",
	"streak-master",
	"consistency",
	"polyglot",
	"repo-collector",
}

func TestEvalAchievementsCatalogIsStable(t *testing.T) {
	t.Parallel()

	for _, in := range []app.AchievementInput{
		{},
		{Commits: 10000, LongestStreak: 365, Languages: 30, Repos: 100},
	} {
		got := app.EvalAchievements(app.DefaultAchievements, in)

		assert.Len(t, got, len(achievementIDs))
		for i, a := range got {
			assert.Equal(t, achievementIDs[i], a.ID)
			assert.NotEmpty(t, a.Title)
			assert.NotEmpty(t, a.Description)
			assert.NotEmpty(t, a.Icon)
		}
	}
}

func TestEvalAchievementsUnlockGates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		in           app.AchievementInput
		wantUnlocked map[string]bool
	}{
		{
			name: "nothing unlocked",
			in:   app.AchievementInput{Commits: 9, LongestStreak: 6, Languages: 4, Repos: 9},
			wantUnlocked: map[string]bool{
				"active-year": false, "century": false, "commit-machine": false,
				"streak-master": false, "consistency": false, "polyglot": false, "repo-collector": false,
			},
		},
		{
			name: "thresholds met exactly",
			in:   app.AchievementInput{Commits: 100, LongestStreak: 7, Languages: 5, Repos: 10},
			wantUnlocked: map[string]bool{
				"active-year": true, "century": true, "commit-machine": false,
				"streak-master": false, "consistency": true, "polyglot": true, "repo-collector": true,
			},
		},
		{
			name: "everything unlocked",
			in:   app.AchievementInput{Commits: 500, LongestStreak: 30, Languages: 12, Repos: 40},
			wantUnlocked: map[string]bool{
				"active-year": true, "century": true, "commit-machine": true,
				"streak-master": true, "consistency": true, "polyglot": true, "repo-collector": true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := app.EvalAchievements(app.DefaultAchievements, tt.in)

			assert.Len(t, got, len(tt.wantUnlocked))
			for _, a := range got {
				assert.Equal(t, tt.wantUnlocked[a.ID], a.Unlocked, a.ID)
			}
		})
	}
}

func TestEvalAchievementsDynamicDescription(t *testing.T) {
	t.Parallel()

	got := app.EvalAchievements(app.DefaultAchievements, app.AchievementInput{Commits: 42})
	assert.Equal(t, "Made 42 commits this year", got[0].Description)
}

func TestClassifyProfile(t *testing.T) {
	t.Parallel()

	pickFirst := func(int) int { return 0 }

	weekendHeavy := [7]int{}
	weekendHeavy[0] = 30 // Sunday
	weekendHeavy[6] = 25 // Saturday
	weekendHeavy[2] = 40

	weekdayOnly := [7]int{}
	weekdayOnly[1] = 50
	weekdayOnly[3] = 60

	tests := []struct {
		name string
		in   app.ProfileInput
		want string
	}{
		{
			name: "weekend heavy wins first",
			in:   app.ProfileInput{Commits: 5000, Languages: 20, ByDay: weekendHeavy},
			want: "Weekend Warrior",
		},
		{
			name: "commit machine",
			in:   app.ProfileInput{Commits: 1001, ByDay: weekdayOnly},
			want: "Commit Machine",
		},
		{
			name: "language explorer",
			in:   app.ProfileInput{Commits: 700, Languages: 11, ByDay: weekdayOnly},
			want: "Language Explorer",
		},
		{
			name: "feature factory",
			in:   app.ProfileInput{Commits: 501, Languages: 3, ByDay: weekdayOnly},
			want: "Feature Factory",
		},
		{
			name: "fallback picks from the fixed set",
			in:   app.ProfileInput{Commits: 100, Languages: 3, ByDay: weekdayOnly},
			want: app.FallbackProfiles[0],
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := app.ClassifyProfile(app.DefaultProfileRules, app.FallbackProfiles, tt.in, pickFirst)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyProfileFallbackMembership(t *testing.T) {
	t.Parallel()

	// The fallback branch is random by contract; only membership is asserted.
	for i := 0; i < len(app.FallbackProfiles); i++ {
		i := i
		got := app.ClassifyProfile(
			app.DefaultProfileRules,
			app.FallbackProfiles,
			app.ProfileInput{Commits: 1},
			func(n int) int { return i % n },
		)
		assert.Contains(t, app.FallbackProfiles, got)
	}
}
