package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/solunahq/soluna/internal/dates"
)

var sandboxClock = dates.At(time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC))

func TestPlans(t *testing.T) {
	all := Plans()
	if len(all) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(all))
	}

	monthly, ok := PlanByID("monthly")
	if !ok || monthly.Price != 9.99 || monthly.Interval != IntervalMonth {
		t.Errorf("monthly plan = %+v", monthly)
	}
	yearly, ok := PlanByID("yearly")
	if !ok || yearly.Price != 59.99 || !yearly.Popular {
		t.Errorf("yearly plan = %+v", yearly)
	}
	if _, ok := PlanByID("lifetime"); ok {
		t.Error("unknown plan id should not resolve")
	}
}

func TestSandboxCreateSubscription(t *testing.T) {
	s := NewSandboxAt(sandboxClock)

	result, err := s.CreateSubscription(context.Background(), "monthly", "a@b.c", "1")
	if err != nil {
		t.Fatalf("CreateSubscription failed: %v", err)
	}
	if result.SubscriptionID == "" || result.CustomerID == "" {
		t.Errorf("result missing ids: %+v", result)
	}

	if _, err := s.CreateSubscription(context.Background(), "lifetime", "a@b.c", "1"); err == nil {
		t.Error("unknown plan should fail")
	}
}

func TestSandboxStatusAndCancel(t *testing.T) {
	s := NewSandboxAt(sandboxClock)
	result, err := s.CreateSubscription(context.Background(), "yearly", "a@b.c", "1")
	if err != nil {
		t.Fatalf("CreateSubscription failed: %v", err)
	}

	status, err := s.SubscriptionStatus(context.Background(), result.CustomerID)
	if err != nil {
		t.Fatalf("SubscriptionStatus failed: %v", err)
	}
	if !status.Active || status.PlanID != "yearly" {
		t.Errorf("status = %+v", status)
	}
	wantExpiry := sandboxClock.Now().AddDate(1, 0, 0)
	if status.ExpiresAt == nil || !status.ExpiresAt.Equal(wantExpiry) {
		t.Errorf("ExpiresAt = %v, want %v", status.ExpiresAt, wantExpiry)
	}

	if err := s.CancelSubscription(context.Background(), result.SubscriptionID); err != nil {
		t.Fatalf("CancelSubscription failed: %v", err)
	}
	status, _ = s.SubscriptionStatus(context.Background(), result.CustomerID)
	if status.Active {
		t.Error("status should be inactive after cancel")
	}
	if err := s.CancelSubscription(context.Background(), result.SubscriptionID); err == nil {
		t.Error("cancelling twice should fail")
	}
}

func TestSandboxRestorePurchases(t *testing.T) {
	s := NewSandboxAt(sandboxClock)

	if _, err := s.RestorePurchases(context.Background(), "a@b.c"); !errors.Is(err, ErrNoActiveSubscription) {
		t.Errorf("restore with no purchases = %v, want ErrNoActiveSubscription", err)
	}

	created, err := s.CreateSubscription(context.Background(), "monthly", "a@b.c", "1")
	if err != nil {
		t.Fatalf("CreateSubscription failed: %v", err)
	}

	restored, err := s.RestorePurchases(context.Background(), "a@b.c")
	if err != nil {
		t.Fatalf("RestorePurchases failed: %v", err)
	}
	if restored.SubscriptionID != created.SubscriptionID {
		t.Errorf("restored %+v, want %+v", restored, created)
	}
}

func TestFromEnv(t *testing.T) {
	provider, err := FromEnv(func(string) string { return "" })
	if err != nil {
		t.Fatalf("FromEnv default failed: %v", err)
	}
	if _, ok := provider.(*Sandbox); !ok {
		t.Errorf("default provider = %T, want *Sandbox", provider)
	}

	if _, err := FromEnv(func(string) string { return "stripe-live" }); err == nil {
		t.Error("unknown provider name should fail")
	}
}

func TestSandboxHonorsContextCancellation(t *testing.T) {
	s := NewSandboxAt(sandboxClock)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.CreateSubscription(ctx, "monthly", "a@b.c", "1"); err == nil {
		t.Error("cancelled context should abort CreateSubscription")
	}
}
