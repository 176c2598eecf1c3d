// Package emoji assigns a glyph to a habit based on keywords in its title.
package emoji

import "strings"

// DefaultGlyph is used when no keyword rule matches.
const DefaultGlyph = "🎯"

type rule struct {
	keywords []string
	glyph    string
}

// Rules are checked in order; the first matching keyword wins.
var rules = []rule{
	// Fitness & health
	{[]string{"gym", "workout", "exercise"}, "💪"},
	{[]string{"run", "jog"}, "🏃"},
	{[]string{"walk", "dog"}, "🚶"},
	{[]string{"yoga", "stretch"}, "🧘"},
	{[]string{"water", "hydrat"}, "💧"},
	{[]string{"sleep", "bed"}, "😴"},
	{[]string{"eat", "meal", "nutrition"}, "🥗"},

	// Learning & productivity
	{[]string{"read", "book"}, "📚"},
	{[]string{"write", "journal"}, "✍️"},
	{[]string{"meditat"}, "🧘‍♀️"},
	{[]string{"learn", "study"}, "🎓"},
	{[]string{"code", "program"}, "💻"},

	// Creative & personal
	{[]string{"art", "draw", "paint"}, "🎨"},
	{[]string{"music", "instrument"}, "🎵"},
	{[]string{"clean", "organize"}, "🧹"},
	{[]string{"call", "family", "friend"}, "📞"},
}

// ForTitle picks a glyph for the given habit title.
func ForTitle(title string) string {
	lower := strings.ToLower(title)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.glyph
			}
		}
	}
	return DefaultGlyph
}
