package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/solunahq/soluna/internal/dates"
	"github.com/solunahq/soluna/internal/models"
	"github.com/solunahq/soluna/internal/payment"
	"github.com/solunahq/soluna/internal/storage"
	"github.com/solunahq/soluna/internal/store"
)

type Context struct {
	Store       *store.Store
	Storage     storage.Provider
	Payment     payment.Provider
	Clock       dates.Clock
	StoragePath string
}

// loadStore initializes the store and converts its error field into a
// returned error so commands can bail out early.
func (c *Context) loadStore() error {
	c.Store.Initialize()
	if msg := c.Store.Err(); msg != "" {
		return errors.New(msg)
	}
	return nil
}

// findHabit resolves a habit by ID or by case-insensitive title prefix.
func (c *Context) findHabit(ref string) (models.Habit, error) {
	habits := c.Store.Habits()
	for _, h := range habits {
		if h.ID == ref {
			return h, nil
		}
	}

	lower := strings.ToLower(ref)
	var matches []models.Habit
	for _, h := range habits {
		if strings.HasPrefix(strings.ToLower(h.Title), lower) {
			matches = append(matches, h)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Habit{}, fmt.Errorf("no habit matching %q", ref)
	default:
		var names []string
		for _, h := range matches {
			names = append(names, h.Title)
		}
		return models.Habit{}, fmt.Errorf("ambiguous habit %q: matches %s", ref, strings.Join(names, ", "))
	}
}

// confirm prompts on stdin and returns true for y/yes.
func confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

func formatStreak(streak int) string {
	if streak == 0 {
		return "-"
	}
	return fmt.Sprintf("%d🔥", streak)
}
