package storage

import (
	"path/filepath"
	"testing"
)

// newProviders returns a fresh, initialized instance of each Provider
// implementation backed by a temp directory.
func newProviders(t *testing.T) map[string]Provider {
	t.Helper()

	jsonStore := NewJSONStore(filepath.Join(t.TempDir(), "soluna.json"))
	if err := jsonStore.Init(); err != nil {
		t.Fatalf("failed to init JSON store: %v", err)
	}

	sqliteStore := NewSQLiteStore(filepath.Join(t.TempDir(), "soluna.db"))
	if err := sqliteStore.Init(); err != nil {
		t.Fatalf("failed to init SQLite store: %v", err)
	}
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]Provider{
		"json":   jsonStore,
		"sqlite": sqliteStore,
	}
}

func TestGetMissingKey(t *testing.T) {
	for name, store := range newProviders(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := store.Get("soluna_user_v3")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if ok {
				t.Error("expected missing key, got ok=true")
			}
		})
	}
}

func TestSetGetRoundtrip(t *testing.T) {
	for name, store := range newProviders(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Set("soluna_ai_boosts_v3", "3"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			value, ok, err := store.Get("soluna_ai_boosts_v3")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if !ok {
				t.Fatal("expected key to exist")
			}
			if value != "3" {
				t.Errorf("value = %q, want %q", value, "3")
			}
		})
	}
}

func TestSetOverwrites(t *testing.T) {
	for name, store := range newProviders(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Set("k", "first"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := store.Set("k", "second"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			value, _, err := store.Get("k")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if value != "second" {
				t.Errorf("value = %q, want %q", value, "second")
			}
		})
	}
}

func TestSetMany(t *testing.T) {
	for name, store := range newProviders(t) {
		t.Run(name, func(t *testing.T) {
			pairs := map[string]string{
				"soluna_ai_boosts_v3":  "50",
				"soluna_last_reset_v3": "2025-07-10",
			}
			if err := store.SetMany(pairs); err != nil {
				t.Fatalf("SetMany failed: %v", err)
			}

			for key, want := range pairs {
				value, ok, err := store.Get(key)
				if err != nil || !ok {
					t.Fatalf("Get(%s) = %v, ok=%v", key, err, ok)
				}
				if value != want {
					t.Errorf("Get(%s) = %q, want %q", key, value, want)
				}
			}
		})
	}
}

func TestRemove(t *testing.T) {
	for name, store := range newProviders(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Set("a", "1"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := store.Set("b", "2"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			if err := store.Remove("a", "b", "never-existed"); err != nil {
				t.Fatalf("Remove failed: %v", err)
			}

			for _, key := range []string{"a", "b"} {
				if _, ok, _ := store.Get(key); ok {
					t.Errorf("key %s still present after Remove", key)
				}
			}
		})
	}
}

func TestJSONStoreLoadNotInitialized(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil {
		t.Error("expected error loading uninitialized storage")
	}
}

func TestJSONStoreInitTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soluna.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("expected error initializing twice")
	}
}

func TestJSONStorePersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soluna.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Set("soluna_user_v3", `{"id":"1"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	value, ok, err := reopened.Get("soluna_user_v3")
	if err != nil || !ok {
		t.Fatalf("Get = %v, ok=%v", err, ok)
	}
	if value != `{"id":"1"}` {
		t.Errorf("value = %q", value)
	}
}

func TestSQLiteStorePersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soluna.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Set("soluna_habits_v3", "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get("soluna_habits_v3")
	if err != nil || !ok {
		t.Fatalf("Get = %v, ok=%v", err, ok)
	}
	if value != "[]" {
		t.Errorf("value = %q, want []", value)
	}
}
