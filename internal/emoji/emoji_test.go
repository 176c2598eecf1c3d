package emoji

import "testing"

func TestForTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Gym Session", "💪"},
		{"Morning Run", "🏃"},
		{"Walk the dog", "🚶"},
		{"Drink more water", "💧"},
		{"Read 30 minutes", "📚"},
		{"Daily journaling", "✍️"},
		{"Meditation", "🧘‍♀️"},
		{"Study Spanish", "🎓"},
		{"Practice guitar... music time", "🎵"},
		{"Call mom and family", "📞"},
		{"Something unmatched", DefaultGlyph},
		{"", DefaultGlyph},
	}

	for _, tt := range tests {
		if got := ForTitle(tt.title); got != tt.want {
			t.Errorf("ForTitle(%q) = %s, want %s", tt.title, got, tt.want)
		}
	}
}

func TestForTitleIsCaseInsensitive(t *testing.T) {
	if got := ForTitle("GYM WORKOUT"); got != "💪" {
		t.Errorf("ForTitle(GYM WORKOUT) = %s, want 💪", got)
	}
}

func TestFirstMatchingRuleWins(t *testing.T) {
	// "workout" (fitness) appears before "read" in the rule table.
	if got := ForTitle("read about workouts"); got != "💪" {
		t.Errorf("ForTitle = %s, want 💪", got)
	}
}
