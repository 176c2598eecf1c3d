package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/solunahq/soluna/internal/dates"
)

// subscription is the sandbox's in-memory billing record.
type subscription struct {
	planID     string
	email      string
	customerID string
	createdAt  time.Time
}

// Sandbox is a test/demo Provider. It keeps subscriptions in memory for the
// lifetime of the process, so restore and status behave deterministically
// instead of fabricating random outcomes.
type Sandbox struct {
	clock dates.Clock
	subs  map[string]subscription // subscriptionID -> record
}

func NewSandbox() *Sandbox {
	return &Sandbox{
		clock: dates.System(),
		subs:  make(map[string]subscription),
	}
}

// NewSandboxAt returns a Sandbox with a fixed clock. Intended for tests.
func NewSandboxAt(clock dates.Clock) *Sandbox {
	return &Sandbox{
		clock: clock,
		subs:  make(map[string]subscription),
	}
}

func (s *Sandbox) CreateSubscription(ctx context.Context, planID, email, userID string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if _, ok := PlanByID(planID); !ok {
		return Result{}, fmt.Errorf("unknown plan: %s", planID)
	}

	sub := subscription{
		planID:     planID,
		email:      email,
		customerID: "sandbox_cus_" + uuid.New().String(),
		createdAt:  s.clock.Now(),
	}
	subID := fmt.Sprintf("sandbox_sub_%s_%s", planID, uuid.New().String())
	s.subs[subID] = sub

	return Result{SubscriptionID: subID, CustomerID: sub.customerID}, nil
}

func (s *Sandbox) CancelSubscription(ctx context.Context, subscriptionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := s.subs[subscriptionID]; !ok {
		return fmt.Errorf("unknown subscription: %s", subscriptionID)
	}
	delete(s.subs, subscriptionID)
	return nil
}

func (s *Sandbox) SubscriptionStatus(ctx context.Context, customerID string) (SubscriptionStatus, error) {
	if err := ctx.Err(); err != nil {
		return SubscriptionStatus{}, err
	}

	for _, sub := range s.subs {
		if sub.customerID == customerID {
			expires := s.expiry(sub)
			return SubscriptionStatus{Active: true, ExpiresAt: &expires, PlanID: sub.planID}, nil
		}
	}
	return SubscriptionStatus{Active: false}, nil
}

func (s *Sandbox) RestorePurchases(ctx context.Context, email string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	for subID, sub := range s.subs {
		if sub.email == email {
			return Result{SubscriptionID: subID, CustomerID: sub.customerID}, nil
		}
	}
	return Result{}, ErrNoActiveSubscription
}

func (s *Sandbox) expiry(sub subscription) time.Time {
	if plan, ok := PlanByID(sub.planID); ok && plan.Interval == IntervalYear {
		return sub.createdAt.AddDate(1, 0, 0)
	}
	return sub.createdAt.AddDate(0, 1, 0)
}
