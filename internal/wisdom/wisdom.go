// Package wisdom provides the time-of-day greeting and the rotating quote
// shown on the home surfaces.
package wisdom

import "github.com/solunahq/soluna/internal/dates"

type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// TimeOfDayAt buckets the clock's current hour.
func TimeOfDayAt(clock dates.Clock) TimeOfDay {
	hour := clock.Now().Hour()
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 18:
		return Afternoon
	default:
		return Evening
	}
}

// Greeting returns the themed greeting for a time of day.
func Greeting(t TimeOfDay) string {
	switch t {
	case Morning:
		return "Sol Rising ☀️"
	case Afternoon:
		return "Sol Shining ✨"
	case Evening:
		return "Luna Rising 🌙"
	default:
		return "Welcome Back"
	}
}

type Quote struct {
	Text     string
	Author   string
	Category string
}

var quotes = map[TimeOfDay][]Quote{
	Morning: {
		{"The way to get started is to quit talking and begin doing.", "Walt Disney", "success"},
		{"Great things never come from comfort zones.", "Unknown", "success"},
		{"Success doesn't just find you. You have to go out and get it.", "Unknown", "success"},
		{"Don't stop when you're tired. Stop when you're done.", "Unknown", "energy"},
		{"Wake up with determination. Go to bed with satisfaction.", "Unknown", "success"},
		{"Do something today that your future self will thank you for.", "Sean Patrick Flanery", "energy"},
		{"Little things make big days.", "Unknown", "success"},
		{"It's going to be hard, but hard does not mean impossible.", "Unknown", "energy"},
	},
	Afternoon: {
		{"The only way to do great work is to love what you do.", "Steve Jobs", "productivity"},
		{"Innovation distinguishes between a leader and a follower.", "Steve Jobs", "leadership"},
		{"The best time to plant a tree was 20 years ago. The second best time is now.", "Chinese Proverb", "productivity"},
		{"Don't be afraid to give up the good to go for the great.", "John D. Rockefeller", "leadership"},
		{"The only impossible journey is the one you never begin.", "Tony Robbins", "productivity"},
		{"In the middle of difficulty lies opportunity.", "Albert Einstein", "leadership"},
		{"Believe you can and you're halfway there.", "Theodore Roosevelt", "leadership"},
		{"The future belongs to those who believe in the beauty of their dreams.", "Eleanor Roosevelt", "productivity"},
	},
	Evening: {
		{"The only person you are destined to become is the person you decide to be.", "Ralph Waldo Emerson", "reflection"},
		{"Be yourself; everyone else is already taken.", "Oscar Wilde", "reflection"},
		{"Life is what happens to you while you're busy making other plans.", "John Lennon", "reflection"},
		{"The purpose of our lives is to be happy.", "Dalai Lama", "growth"},
		{"Life is really simple, but we insist on making it complicated.", "Confucius", "reflection"},
		{"The only true wisdom is in knowing you know nothing.", "Socrates", "growth"},
		{"In the depth of winter, I finally learned that within me there lay an invincible summer.", "Albert Camus", "reflection"},
		{"The journey of a thousand miles begins with one step.", "Lao Tzu", "growth"},
	},
}

// QuoteAt rotates through the current bucket's quotes every two hours, so the
// same quote is shown for a stable window rather than changing per call.
func QuoteAt(clock dates.Clock) Quote {
	bucket := quotes[TimeOfDayAt(clock)]
	idx := (clock.Now().Hour() / 2) % len(bucket)
	return bucket[idx]
}
