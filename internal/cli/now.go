package cli

import (
	"fmt"

	"github.com/solunahq/soluna/internal/dates"
	"github.com/solunahq/soluna/internal/retention"
	"github.com/solunahq/soluna/internal/wisdom"
)

type NowCmd struct{}

func (c *NowCmd) Run(ctx *Context) error {
	if err := ctx.loadStore(); err != nil {
		return err
	}

	timeOfDay := wisdom.TimeOfDayAt(ctx.Clock)
	user := ctx.Store.User()
	fmt.Printf("%s, %s\n", wisdom.Greeting(timeOfDay), user.Name)

	quote := wisdom.QuoteAt(ctx.Clock)
	fmt.Printf("\n  \"%s\"\n  — %s\n", quote.Text, quote.Author)

	habits := ctx.Store.Habits()
	if len(habits) == 0 {
		fmt.Println("\nNo habits yet. Add one with 'soluna habit add'.")
		return nil
	}

	today := string(dates.Today(ctx.Clock))
	var remaining []string
	completed := 0
	for _, h := range habits {
		if h.CompletedOn(today) {
			completed++
		} else {
			remaining = append(remaining, fmt.Sprintf("%s %s", h.Emoji, h.Title))
		}
	}

	fmt.Printf("\nToday: %d/%d completed\n", completed, len(habits))
	if len(remaining) > 0 {
		fmt.Println("Still open:")
		for _, r := range remaining {
			fmt.Printf("  • %s\n", r)
		}
	}

	fmt.Printf("\n%s\n", retention.Nudge(ctx.Clock))
	return nil
}
