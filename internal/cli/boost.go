package cli

import (
	"fmt"

	"github.com/solunahq/soluna/internal/insight"
	"github.com/solunahq/soluna/internal/store"
)

type BoostCmd struct {
	Tips bool `short:"t" help:"Include coaching recommendations."`
}

func (c *BoostCmd) Run(ctx *Context) error {
	if err := ctx.loadStore(); err != nil {
		return err
	}

	if !ctx.Store.UseAIBoost() {
		return fmt.Errorf("no AI boosts left today; they reset tomorrow, or run 'soluna premium plans' for %d/day", store.DailyAIBoostsPremium)
	}

	result := insight.Generate(ctx.Store.Habits(), ctx.Clock)
	fmt.Printf("✨ %s\n", result.Title)
	fmt.Printf("%s\n", result.Content)
	fmt.Printf("(%s, confidence %d%%, impact %d/10)\n", result.Type, result.Confidence, result.Impact)

	if c.Tips {
		fmt.Println("\nRecommendations:")
		for _, tip := range insight.Recommendations(ctx.Clock) {
			fmt.Printf("  • %s\n", tip)
		}
	}

	fmt.Printf("\nBoosts remaining today: %d\n", ctx.Store.DailyAIBoosts())
	return nil
}
