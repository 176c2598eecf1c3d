// Package store is the single source of truth for the user record and the
// habit collection. It loads state from a storage.Provider, exposes the
// mutation operations the UI layers call, and converts storage failures into
// an observable error field instead of returning them up the stack.
package store

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/solunahq/soluna/internal/analytics"
	"github.com/solunahq/soluna/internal/cache"
	"github.com/solunahq/soluna/internal/dates"
	"github.com/solunahq/soluna/internal/emoji"
	"github.com/solunahq/soluna/internal/models"
	"github.com/solunahq/soluna/internal/storage"
)

// Storage keys. The suffix versions each entry's schema so a future format
// change can migrate key-by-key.
const (
	KeyUser      = "soluna_user_v3"
	KeyHabits    = "soluna_habits_v3"
	KeyAIBoosts  = "soluna_ai_boosts_v3"
	KeyLastReset = "soluna_last_reset_v3"
)

// Free-tier policy.
const (
	HabitLimitFree       = 6
	DailyAIBoostsFree    = 3
	DailyAIBoostsPremium = 50
)

// Initial-load retry policy.
const (
	initMaxAttempts = 3
	initBackoffBase = 100 * time.Millisecond
)

// DefaultCategory is assigned when a habit is added without one.
const DefaultCategory = "Personal"

const (
	analyticsCacheKey = "analytics"
	analyticsCacheTTL = 5 * time.Second
)

type Option func(*Store)

// WithWriteDelay coalesces rapid habit-collection writes into one I/O
// operation after the given delay. State is visible in memory immediately;
// durability lags by at most the delay. Zero keeps writes synchronous.
func WithWriteDelay(d time.Duration) Option {
	return func(s *Store) {
		s.writes = cache.NewDebouncer(d)
	}
}

// Store owns the User and Habit collections.
//
// Concurrency note: Store is not safe for concurrent use by multiple
// goroutines without external synchronization. All operations are expected to
// run on a single logical flow of control.
type Store struct {
	storage storage.Provider
	clock   dates.Clock
	log     *zap.Logger
	writes  *cache.Debouncer
	snaps   *cache.Cache[analytics.Snapshot]

	user          models.User
	habits        []models.Habit
	dailyAIBoosts int
	loading       bool
	errMsg        string
}

func New(provider storage.Provider, clock dates.Clock, log *zap.Logger, opts ...Option) *Store {
	s := &Store{
		storage:       provider,
		clock:         clock,
		log:           log,
		writes:        cache.NewDebouncer(0),
		snaps:         cache.New[analytics.Snapshot](analyticsCacheTTL, clock),
		user:          models.DefaultUser(clock.Now()),
		dailyAIBoosts: DailyAIBoostsFree,
		loading:       true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the four persisted entries and performs the daily AI-boost
// reset. It never returns an error: storage failures are retried with
// exponential backoff and, past the attempt cap, surface through Err().
// A parse failure on a single entry degrades that entry to its default.
func (s *Store) Initialize() {
	defer func() { s.loading = false }()

	var err error
	for attempt := 0; attempt < initMaxAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(initBackoffBase << (attempt - 1))
		}
		if err = s.storage.Load(); err == nil {
			break
		}
		if errors.Is(err, storage.ErrNotInitialized) {
			s.errMsg = err.Error()
			return
		}
		s.log.Warn("storage load failed", zap.Int("attempt", attempt+1), zap.Error(err))
	}
	if err != nil {
		s.errMsg = "Failed to load your data. Please restart the app."
		return
	}

	s.user = s.loadUser()
	s.habits = s.loadHabits()
	s.dailyAIBoosts = s.loadBoosts()
}

func (s *Store) loadUser() models.User {
	raw, ok, err := s.storage.Get(KeyUser)
	if err != nil {
		s.log.Warn("failed to read user entry", zap.Error(err))
	}
	if !ok || raw == "" {
		return models.DefaultUser(s.clock.Now())
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warn("corrupt user entry, using default", zap.Error(err))
		return models.DefaultUser(s.clock.Now())
	}
	if user.JoinedAt == "" {
		user.JoinedAt = user.CreatedAt.Format(dates.DayFormat)
	}
	return user
}

func (s *Store) loadHabits() []models.Habit {
	raw, ok, err := s.storage.Get(KeyHabits)
	if err != nil {
		s.log.Warn("failed to read habits entry", zap.Error(err))
	}
	if !ok || raw == "" {
		return []models.Habit{}
	}

	var habits []models.Habit
	if err := json.Unmarshal([]byte(raw), &habits); err != nil {
		s.log.Warn("corrupt habits entry, using empty collection", zap.Error(err))
		return []models.Habit{}
	}
	return habits
}

// loadBoosts restores the AI-boost counter, resetting it to the tier quota
// when the last-reset marker is not today. Counter and marker are persisted
// together so they can never drift apart.
func (s *Store) loadBoosts() int {
	today := string(dates.Today(s.clock))

	lastReset, _, err := s.storage.Get(KeyLastReset)
	if err != nil {
		s.log.Warn("failed to read last-reset entry", zap.Error(err))
	}

	if lastReset != today {
		quota := s.boostQuota()
		if err := s.storage.SetMany(map[string]string{
			KeyAIBoosts:  strconv.Itoa(quota),
			KeyLastReset: today,
		}); err != nil {
			s.setError("Failed to save AI boost reset.", err)
		}
		return quota
	}

	raw, ok, err := s.storage.Get(KeyAIBoosts)
	if err != nil {
		s.log.Warn("failed to read AI boosts entry", zap.Error(err))
	}
	if !ok {
		return s.boostQuota()
	}
	boosts, err := strconv.Atoi(raw)
	if err != nil || boosts < 0 {
		s.log.Warn("corrupt AI boosts entry, using quota", zap.String("value", raw))
		return s.boostQuota()
	}
	return boosts
}

func (s *Store) boostQuota() int {
	if s.user.IsPremium {
		return DailyAIBoostsPremium
	}
	return DailyAIBoostsFree
}

// AddHabit appends a new habit and returns false without mutating state when
// a non-premium user is at the free-tier limit. A missing emoji is derived
// from the title; a missing category defaults to DefaultCategory.
func (s *Store) AddHabit(title, habitEmoji, category string) bool {
	if !s.user.IsPremium && len(s.habits) >= HabitLimitFree {
		return false
	}

	if habitEmoji == "" {
		habitEmoji = emoji.ForTitle(title)
	}
	if category == "" {
		category = DefaultCategory
	}

	habit := models.Habit{
		ID:             uuid.New().String(),
		Title:          strings.TrimSpace(title),
		Emoji:          habitEmoji,
		Category:       category,
		Streak:         0,
		CompletedDates: []string{},
		CreatedAt:      s.clock.Now(),
		IsCompleted:    false,
	}

	s.saveHabits(append(s.copyHabits(), habit))
	return true
}

// ToggleHabit flips today's completion state for the habit. Completing
// extends the streak when yesterday was completed, otherwise starts a new
// one; uncompleting reverses that. BestStreak tracks the maximum ever seen.
func (s *Store) ToggleHabit(id string) {
	today := string(dates.Today(s.clock))
	yesterday := string(dates.Yesterday(s.clock))

	habits := s.copyHabits()
	for i, habit := range habits {
		if habit.ID != id {
			continue
		}

		wasCompletedYesterday := habit.CompletedOn(yesterday)

		if habit.CompletedOn(today) {
			// Uncomplete
			kept := make([]string, 0, len(habit.CompletedDates))
			for _, d := range habit.CompletedDates {
				if d != today {
					kept = append(kept, d)
				}
			}
			habit.CompletedDates = kept
			if wasCompletedYesterday {
				habit.Streak = max(0, habit.Streak-1)
			} else {
				habit.Streak = 0
			}
			habit.TotalCompletions = max(0, habit.TotalCompletions-1)
			habit.IsCompleted = false
			habit.LastCompletedAt = nil
		} else {
			// Complete
			habit.CompletedDates = append(habit.CompletedDates, today)
			if wasCompletedYesterday {
				habit.Streak++
			} else {
				habit.Streak = 1
			}
			habit.TotalCompletions++
			habit.IsCompleted = true
			now := s.clock.Now()
			habit.LastCompletedAt = &now
		}

		habit.BestStreak = max(habit.BestStreak, habit.Streak)
		habits[i] = habit
		s.saveHabits(habits)
		return
	}
}

// DeleteHabit removes the habit by id. Removal is final.
func (s *Store) DeleteHabit(id string) {
	habits := make([]models.Habit, 0, len(s.habits))
	for _, habit := range s.habits {
		if habit.ID != id {
			habits = append(habits, habit)
		}
	}
	s.saveHabits(habits)
}

// CanAddHabit reports whether the add-habit quota allows another habit.
func (s *Store) CanAddHabit() bool {
	return s.user.IsPremium || len(s.habits) < HabitLimitFree
}

// HabitLimit returns the habit cap for the current tier; -1 means unlimited.
func (s *Store) HabitLimit() int {
	if s.user.IsPremium {
		return -1
	}
	return HabitLimitFree
}

// UseAIBoost consumes one AI boost. It returns false, mutating nothing, when
// the counter is exhausted.
func (s *Store) UseAIBoost() bool {
	if s.dailyAIBoosts <= 0 {
		return false
	}

	s.dailyAIBoosts--
	if err := s.storage.Set(KeyAIBoosts, strconv.Itoa(s.dailyAIBoosts)); err != nil {
		s.setError("Failed to use AI boost.", err)
	}
	return true
}

func (s *Store) UpdateUserAvatar(avatarURI string) {
	user := s.user
	user.Avatar = avatarURI
	s.saveUser(user)
}

func (s *Store) UpdateUserName(name string) {
	user := s.user
	user.Name = strings.TrimSpace(name)
	s.saveUser(user)
}

// CompleteOnboarding records the profile collected during onboarding.
func (s *Store) CompleteOnboarding(age int, goals, motivations []string, lifestyle models.Lifestyle, income models.IncomeBand) {
	user := s.user
	user.Age = age
	user.Goals = goals
	user.Motivations = motivations
	user.Lifestyle = lifestyle
	user.Income = income
	user.HasCompletedOnboarding = true
	s.saveUser(user)
}

// UpgradeToPremium marks the user premium and immediately resets the AI-boost
// counter to the premium quota rather than waiting for the next daily reset.
func (s *Store) UpgradeToPremium(subscriptionID, customerID string) {
	user := s.user
	user.IsPremium = true
	user.SubscriptionID = subscriptionID
	user.CustomerID = customerID
	s.saveUser(user)

	s.dailyAIBoosts = DailyAIBoostsPremium
	if err := s.storage.Set(KeyAIBoosts, strconv.Itoa(s.dailyAIBoosts)); err != nil {
		s.setError("Failed to upgrade account.", err)
	}
}

// SignOut erases all persisted entries and resets in-memory state to
// defaults. It reports whether the erase succeeded.
func (s *Store) SignOut() bool {
	return s.ResetUserData()
}

// ResetUserData erases all persisted entries and resets in-memory state.
func (s *Store) ResetUserData() bool {
	s.writes.Flush()

	if err := s.storage.Remove(KeyUser, KeyHabits, KeyAIBoosts, KeyLastReset); err != nil {
		s.setError("Failed to reset user data.", err)
		return false
	}

	s.user = models.DefaultUser(s.clock.Now())
	s.habits = []models.Habit{}
	s.dailyAIBoosts = DailyAIBoostsFree
	s.errMsg = ""
	s.snaps.Invalidate(analyticsCacheKey)
	return true
}

// Analytics returns the derived snapshot for the current habit collection.
// Results are memoized briefly; every mutation invalidates the memo.
func (s *Store) Analytics() analytics.Snapshot {
	if snap, ok := s.snaps.Get(analyticsCacheKey); ok {
		return snap
	}
	snap := analytics.Compute(s.habits, s.clock)
	s.snaps.Set(analyticsCacheKey, snap)
	return snap
}

// Accessors. Habits returns a copy so callers cannot mutate store state.

func (s *Store) User() models.User { return s.user }

func (s *Store) Habits() []models.Habit { return s.copyHabits() }

func (s *Store) DailyAIBoosts() int { return s.dailyAIBoosts }

func (s *Store) IsLoading() bool { return s.loading }

// Err returns the current operation error message, empty when none.
func (s *Store) Err() string { return s.errMsg }

func (s *Store) ClearError() { s.errMsg = "" }

// Flush forces any debounced write to storage.
func (s *Store) Flush() { s.writes.Flush() }

// Close flushes pending writes and releases the storage provider.
func (s *Store) Close() error {
	s.writes.Flush()
	return s.storage.Close()
}

func (s *Store) copyHabits() []models.Habit {
	habits := make([]models.Habit, len(s.habits))
	copy(habits, s.habits)
	return habits
}

// saveHabits installs the new collection in memory, then persists it whole.
// On write failure the in-memory collection stays authoritative; the failure
// is logged and surfaced through Err().
func (s *Store) saveHabits(habits []models.Habit) {
	s.habits = habits
	s.snaps.Invalidate(analyticsCacheKey)

	data, err := json.Marshal(habits)
	if err != nil {
		s.setError("Failed to save habits.", err)
		return
	}
	s.writes.Do(func() {
		if err := s.storage.Set(KeyHabits, string(data)); err != nil {
			s.setError("Failed to save habits.", err)
		}
	})
}

func (s *Store) saveUser(user models.User) {
	s.user = user

	data, err := json.Marshal(user)
	if err != nil {
		s.setError("Failed to save user data.", err)
		return
	}
	if err := s.storage.Set(KeyUser, string(data)); err != nil {
		s.setError("Failed to save user data.", err)
	}
}

func (s *Store) setError(msg string, err error) {
	s.errMsg = msg
	s.log.Error(msg, zap.Error(err))
}
