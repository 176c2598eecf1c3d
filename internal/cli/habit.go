package cli

import (
	"errors"
	"fmt"

	"github.com/solunahq/soluna/internal/dates"
)

type HabitAddCmd struct {
	Title    string `arg:"" help:"Habit title."`
	Emoji    string `short:"e" help:"Emoji for the habit. Picked from the title when omitted."`
	Category string `short:"c" help:"Category." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.loadStore(); err != nil {
		return err
	}

	if !ctx.Store.CanAddHabit() {
		return fmt.Errorf("free tier is limited to %d habits; run 'soluna premium plans' to upgrade", ctx.Store.HabitLimit())
	}

	if !ctx.Store.AddHabit(c.Title, c.Emoji, c.Category) {
		if msg := ctx.Store.Err(); msg != "" {
			return errors.New(msg)
		}
		return fmt.Errorf("could not add habit %q", c.Title)
	}

	habits := ctx.Store.Habits()
	added := habits[len(habits)-1]
	fmt.Printf("Added habit: %s %s (ID: %s)\n", added.Emoji, added.Title, added.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.loadStore(); err != nil {
		return err
	}

	habits := ctx.Store.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'soluna habit add'.")
		return nil
	}

	today := string(dates.Today(ctx.Clock))
	fmt.Println("Habits:")
	for _, h := range habits {
		mark := " "
		if h.CompletedOn(today) {
			mark = "✓"
		}
		fmt.Printf("  [%s] %s %s - streak %s, best %d, total %d (%s)\n",
			mark, h.Emoji, h.Title, formatStreak(h.Streak), h.BestStreak, h.TotalCompletions, h.Category)
		fmt.Printf("      ID: %s\n", h.ID)
	}
	return nil
}

type HabitDoneCmd struct {
	Habit string `arg:"" help:"Habit ID or title prefix."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	if err := ctx.loadStore(); err != nil {
		return err
	}

	h, err := ctx.findHabit(c.Habit)
	if err != nil {
		return err
	}

	wasCompleted := h.CompletedOn(string(dates.Today(ctx.Clock)))
	ctx.Store.ToggleHabit(h.ID)
	if msg := ctx.Store.Err(); msg != "" {
		return errors.New(msg)
	}

	updated, err := ctx.findHabit(h.ID)
	if err != nil {
		return err
	}
	if wasCompleted {
		fmt.Printf("Unmarked %s %s (streak %s)\n", updated.Emoji, updated.Title, formatStreak(updated.Streak))
	} else {
		fmt.Printf("Completed %s %s (streak %s)\n", updated.Emoji, updated.Title, formatStreak(updated.Streak))
	}
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit ID or title prefix."`
	Yes   bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.loadStore(); err != nil {
		return err
	}

	h, err := ctx.findHabit(c.Habit)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := confirm(fmt.Sprintf("Delete habit %q and its history?", h.Title))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	ctx.Store.DeleteHabit(h.ID)
	if msg := ctx.Store.Err(); msg != "" {
		return errors.New(msg)
	}
	fmt.Printf("Deleted habit: %s\n", h.Title)
	return nil
}
