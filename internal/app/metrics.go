package app

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// Coding pattern labels. Exactly one of these is reported per year.
const (
	PatternNightOwl       = "Night Owl"
	PatternEarlyBird      = "Early Bird"
	PatternAfternoonCoder = "Afternoon Coder"
	PatternAllDayCoder    = "All Day Coder"
)

// FavoriteRepoFallback is reported as the favorite repo name when no commit
// could be attributed to any repository.
const FavoriteRepoFallback = "Various Projects"

// HourHistogram buckets commits by the hour of their author timestamp.
// No timezone conversion beyond what the timestamp itself encodes.
func HourHistogram(commits []Commit) [24]int {
	var h [24]int
	for _, c := range commits {
		h[c.AuthoredAt.Hour()]++
	}
	return h
}

// DayHistogram buckets commits by weekday, 0=Sunday..6=Saturday.
func DayHistogram(commits []Commit) [7]int {
	var d [7]int
	for _, c := range commits {
		d[int(c.AuthoredAt.Weekday())]++
	}
	return d
}

// ActiveDates returns the distinct calendar dates (yyyy-mm-dd, by the commit's
// own date) with at least one commit, sorted ascending.
func ActiveDates(commits []Commit) []string {
	seen := make(map[string]struct{}, len(commits))
	for _, c := range commits {
		seen[c.AuthoredAt.Format(dateLayout)] = struct{}{}
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	return dates
}

// Streaks computes the longest and current run of consecutive active dates.
// dates must be sorted ascending, as returned by ActiveDates.
// The current streak counts only if the most recent active date is today or
// yesterday relative to now.
func Streaks(dates []string, now time.Time) (longest int, current int) {
	if len(dates) == 0 {
		return 0, 0
	}

	run := 1
	for i := 1; i < len(dates); i++ {
		prev, _ := time.Parse(dateLayout, dates[i-1])
		curr, _ := time.Parse(dateLayout, dates[i])
		if curr.Sub(prev) == 24*time.Hour {
			run++
			continue
		}
		if run > longest {
			longest = run
		}
		run = 1
	}
	if run > longest {
		longest = run
	}

	last := dates[len(dates)-1]
	if last == now.Format(dateLayout) || last == now.AddDate(0, 0, -1).Format(dateLayout) {
		current = run
	}

	return longest, current
}

// ClassifyCodingPattern picks the time-of-day label from the hourly histogram.
// Windows: night [22,24)+[0,6), morning [6,12), afternoon [12,18), evening [18,22).
// A window wins only on strict maximum; an evening maximum or any tie falls
// through to the all-day label.
func ClassifyCodingPattern(byHour [24]int) string {
	sum := func(hours ...int) int {
		var s int
		for _, h := range hours {
			s += byHour[h]
		}
		return s
	}

	night := sum(22, 23, 0, 1, 2, 3, 4, 5)
	morning := sum(6, 7, 8, 9, 10, 11)
	afternoon := sum(12, 13, 14, 15, 16, 17)
	evening := sum(18, 19, 20, 21)

	switch {
	case night > morning && night > afternoon && night > evening:
		return PatternNightOwl
	case morning > night && morning > afternoon && morning > evening:
		return PatternEarlyBird
	case afternoon > night && afternoon > morning && afternoon > evening:
		return PatternAfternoonCoder
	default:
		return PatternAllDayCoder
	}
}

// RankRepositories counts commits per repository and returns the top 3 by
// commit count plus the favorite (top) one. Commits without an attributed
// repository are excluded from the ranking. When nothing can be attributed the
// favorite falls back to a sentinel carrying the total commit count.
func RankRepositories(commits []Commit) (top []RepoActivity, favorite RepoActivity) {
	counts := make(map[string]int)
	for _, c := range commits {
		if c.RepoFullName == "" || c.RepoFullName == "Unknown" {
			continue
		}
		counts[c.RepoFullName]++
	}

	ranked := make([]RepoActivity, 0, len(counts))
	for name, n := range counts {
		ranked = append(ranked, RepoActivity{Name: name, Commits: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Commits != ranked[j].Commits {
			return ranked[i].Commits > ranked[j].Commits
		}
		return ranked[i].Name < ranked[j].Name
	})

	top = ranked
	if len(top) > 3 {
		top = top[:3]
	}

	if len(top) > 0 {
		favorite = top[0]
	} else {
		favorite = RepoActivity{Name: FavoriteRepoFallback, Commits: len(commits)}
	}

	return top, favorite
}

// EstimateLines derives the lines added/deleted estimate from the commit
// count. This is a declared, fixed heuristic (15 lines per commit, 60/40
// split), not a diff measurement, and is kept exactly for compatibility with
// the shared slide images.
func EstimateLines(commitCount int) (added int, deleted int) {
	total := commitCount * 15
	added = int(float64(total) * 0.6)
	deleted = int(float64(total) * 0.4)
	return added, deleted
}
