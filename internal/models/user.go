package models

import "time"

type Lifestyle string

const (
	LifestyleStudent      Lifestyle = "student"
	LifestyleProfessional Lifestyle = "professional"
	LifestyleEntrepreneur Lifestyle = "entrepreneur"
	LifestyleParent       Lifestyle = "parent"
	LifestyleRetiree      Lifestyle = "retiree"
)

type IncomeBand string

const (
	IncomeUnder50k  IncomeBand = "under50k"
	Income50kTo100k IncomeBand = "50k-100k"
	Income100kTo200k IncomeBand = "100k-200k"
	IncomeOver200k  IncomeBand = "over200k"
)

type ChurnRisk string

const (
	ChurnRiskLow    ChurnRisk = "low"
	ChurnRiskMedium ChurnRisk = "medium"
	ChurnRiskHigh   ChurnRisk = "high"
)

// User is the single per-installation account record. It is never nil: a
// fresh install starts from DefaultUser.
type User struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Avatar           string     `json:"avatar,omitempty"` // opaque URI
	IsPremium        bool       `json:"is_premium"`
	PremiumExpiresAt *time.Time `json:"premium_expires_at,omitempty"`
	SubscriptionID   string     `json:"subscription_id,omitempty"`
	CustomerID       string     `json:"customer_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	JoinedAt         string     `json:"joined_at"` // YYYY-MM-DD format
	DailyAIBoosts    int        `json:"daily_ai_boosts"`
	LastAIBoostReset string     `json:"last_ai_boost_reset"` // YYYY-MM-DD format

	// Onboarding profile
	Age                    int        `json:"age,omitempty"`
	Goals                  []string   `json:"goals,omitempty"`
	Motivations            []string   `json:"motivations,omitempty"`
	Lifestyle              Lifestyle  `json:"lifestyle,omitempty"`
	Income                 IncomeBand `json:"income,omitempty"`
	HasCompletedOnboarding bool       `json:"has_completed_onboarding"`

	ReferralCode     string    `json:"referral_code,omitempty"`
	ReferredBy       string    `json:"referred_by,omitempty"`
	TotalSpent       float64   `json:"total_spent"`
	LifetimeValue    float64   `json:"lifetime_value"`
	ChurnRisk        ChurnRisk `json:"churn_risk"`
	LastActiveAt     time.Time `json:"last_active_at"`
	StreakRecord     int       `json:"streak_record"`
	AchievementCount int       `json:"achievement_count"`
}

// DefaultUser returns the record used for a fresh or signed-out install.
func DefaultUser(now time.Time) User {
	return User{
		ID:               "1",
		Name:             "User",
		Email:            "user@example.com",
		IsPremium:        false,
		CreatedAt:        now,
		JoinedAt:         now.Format("2006-01-02"),
		DailyAIBoosts:    3,
		LastAIBoostReset: now.Format("2006-01-02"),
		ChurnRisk:        ChurnRiskLow,
		LastActiveAt:     now,
	}
}
