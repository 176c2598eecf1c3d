package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/solunahq/soluna/internal/payment"
)

type PremiumPlansCmd struct{}

func (c *PremiumPlansCmd) Run(ctx *Context) error {
	fmt.Println("Soluna Premium plans:")
	for _, plan := range payment.Plans() {
		marker := ""
		if plan.Popular {
			marker = "  ⭐ most popular"
		}
		fmt.Printf("\n  %s ($%.2f/%s)%s\n", plan.Name, plan.Price, plan.Interval, marker)
		for _, feature := range plan.Features {
			fmt.Printf("    • %s\n", feature)
		}
		fmt.Printf("    Upgrade with: soluna premium upgrade %s\n", plan.ID)
	}
	return nil
}

type PremiumUpgradeCmd struct {
	Plan string `arg:"" help:"Plan ID (monthly|yearly)."`
}

func (c *PremiumUpgradeCmd) Run(ctx *Context) error {
	if err := ctx.loadStore(); err != nil {
		return err
	}

	plan, ok := payment.PlanByID(c.Plan)
	if !ok {
		return fmt.Errorf("unknown plan %q; run 'soluna premium plans'", c.Plan)
	}

	user := ctx.Store.User()
	if user.IsPremium {
		fmt.Println("Already premium.")
		return nil
	}

	result, err := ctx.Payment.CreateSubscription(context.Background(), plan.ID, user.Email, user.ID)
	if err != nil {
		return fmt.Errorf("subscription failed: %w", err)
	}

	ctx.Store.UpgradeToPremium(result.SubscriptionID, result.CustomerID)
	if msg := ctx.Store.Err(); msg != "" {
		return errors.New(msg)
	}

	fmt.Printf("✓ Upgraded to %s!\n", plan.Name)
	fmt.Printf("Subscription: %s\n", result.SubscriptionID)
	return nil
}

type PremiumStatusCmd struct{}

func (c *PremiumStatusCmd) Run(ctx *Context) error {
	if err := ctx.loadStore(); err != nil {
		return err
	}

	user := ctx.Store.User()
	if !user.IsPremium {
		fmt.Println("Free tier. Run 'soluna premium plans' to see upgrade options.")
		return nil
	}

	status, err := ctx.Payment.SubscriptionStatus(context.Background(), user.CustomerID)
	if err != nil {
		return fmt.Errorf("could not fetch subscription status: %w", err)
	}

	if !status.Active {
		fmt.Println("Premium flag set but no active subscription found.")
		return nil
	}
	fmt.Printf("Premium active (%s plan)\n", status.PlanID)
	fmt.Printf("Renews: %s\n", status.ExpiresAt.Format("2006-01-02"))
	return nil
}

type PremiumCancelCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *PremiumCancelCmd) Run(ctx *Context) error {
	if err := ctx.loadStore(); err != nil {
		return err
	}

	user := ctx.Store.User()
	if !user.IsPremium || user.SubscriptionID == "" {
		fmt.Println("No active subscription to cancel.")
		return nil
	}

	if !c.Yes {
		ok, err := confirm("Cancel your premium subscription?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancel aborted.")
			return nil
		}
	}

	if err := ctx.Payment.CancelSubscription(context.Background(), user.SubscriptionID); err != nil {
		return fmt.Errorf("cancellation failed: %w", err)
	}
	fmt.Println("Subscription cancelled. Premium features remain until the end of the billing period.")
	return nil
}

type PremiumRestoreCmd struct{}

func (c *PremiumRestoreCmd) Run(ctx *Context) error {
	if err := ctx.loadStore(); err != nil {
		return err
	}

	user := ctx.Store.User()
	result, err := ctx.Payment.RestorePurchases(context.Background(), user.Email)
	if errors.Is(err, payment.ErrNoActiveSubscription) {
		fmt.Println("No previous purchases found for this account.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	ctx.Store.UpgradeToPremium(result.SubscriptionID, result.CustomerID)
	if msg := ctx.Store.Err(); msg != "" {
		return errors.New(msg)
	}
	fmt.Println("✓ Purchases restored. Premium is active again.")
	return nil
}
