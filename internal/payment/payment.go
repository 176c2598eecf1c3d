// Package payment abstracts the subscription billing backend. The reachable
// implementation is a sandbox fake; a real processor can be dropped in behind
// the same interface without touching callers.
package payment

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// EnvProvider selects the backend implementation (see FromEnv).
const EnvProvider = "SOLUNA_PAYMENT_PROVIDER"

// ErrNoActiveSubscription is returned by RestorePurchases when the account
// has nothing to restore.
var ErrNoActiveSubscription = errors.New("no active subscriptions found for this account")

// Result identifies a created or restored subscription.
type Result struct {
	SubscriptionID string
	CustomerID     string
}

type SubscriptionStatus struct {
	Active    bool
	ExpiresAt *time.Time
	PlanID    string
}

// Provider defines the interface for subscription billing operations.
// This abstraction allows swapping the sandbox fake with a real payment
// processor without refactoring.
type Provider interface {
	CreateSubscription(ctx context.Context, planID, email, userID string) (Result, error)
	CancelSubscription(ctx context.Context, subscriptionID string) error
	SubscriptionStatus(ctx context.Context, customerID string) (SubscriptionStatus, error)
	RestorePurchases(ctx context.Context, email string) (Result, error)
}

// FromEnv selects a Provider by the SOLUNA_PAYMENT_PROVIDER variable.
// The sandbox is the default; there is no embedded fallback fabrication
// anywhere else.
func FromEnv(getenv func(string) string) (Provider, error) {
	switch name := getenv(EnvProvider); name {
	case "", "sandbox":
		return NewSandbox(), nil
	default:
		return nil, fmt.Errorf("unknown payment provider: %s", name)
	}
}
