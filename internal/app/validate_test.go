package app_test

import (
	"strings"
	"testing"

	"gitwrapped/internal/app"
)

func TestValidUsername(t *testing.T) {
	t.Parallel()

	tests := []struct {
		username string
		want     bool
	}{
		{username: "ab", want: true},
		{username: "a", want: true},
		{username: "octocat", want: true},
		{username: "octo-cat", want: true},
		{username: strings.Repeat("a", 39), want: true},
		{username: "", want: false},
		{username: "-ab", want: false},
		{username: "ab-", want: false},
		{username: strings.Repeat("a", 40), want: false},
		{username: "octo_cat", want: false},
		{username: "octo/cat", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			if got := app.ValidUsername(tt.username); got != tt.want {
				t.Errorf("ValidUsername(%q) = %v, want %v", tt.username, got, tt.want)
			}
		})
	}
}
