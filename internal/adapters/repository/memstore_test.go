package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/mergington/activities/internal/domain/model"
)

func seed() model.Activities {
	return model.Activities{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 2,
			Participants:    []string{"michael@mergington.edu"},
		},
		"Art Club": {
			Description:     "Explore painting",
			Schedule:        "Wednesdays",
			MaxParticipants: 15,
			Participants:    []string{"a@mergington.edu", "b@mergington.edu", "c@mergington.edu"},
		},
	}
}

func TestMemoryStore_List(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(seed())

	got := store.List(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(got))
	}
	if count := store.Count(ctx); count != 2 {
		t.Errorf("expected count 2, got %d", count)
	}

	// Mutating the snapshot must not leak into the store.
	chess := got["Chess Club"]
	chess.Participants[0] = "mutated@mergington.edu"
	if p := store.List(ctx)["Chess Club"].Participants[0]; p != "michael@mergington.edu" {
		t.Errorf("store leaked internal state, got %q", p)
	}
}

func TestMemoryStore_SeedIsCopied(t *testing.T) {
	ctx := context.Background()
	s := seed()
	store := NewMemoryStore(s)

	if _, err := store.Signup(ctx, "Chess Club", "new@mergington.edu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s["Chess Club"].Participants) != 1 {
		t.Errorf("seed was mutated: %v", s["Chess Club"].Participants)
	}
}

func TestMemoryStore_Get(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(seed())

	a, err := store.Get(ctx, "Chess Club")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.MaxParticipants != 2 {
		t.Errorf("expected max 2, got %d", a.MaxParticipants)
	}

	if _, err := store.Get(ctx, "Nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_Signup(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(seed())

	a, err := store.Signup(ctx, "Chess Club", "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"michael@mergington.edu", "test@example.com"}
	if fmt.Sprint(a.Participants) != fmt.Sprint(want) {
		t.Errorf("expected %v, got %v", want, a.Participants)
	}
	if !store.List(ctx)["Chess Club"].Has("test@example.com") {
		t.Error("signup not visible in list")
	}

	if _, err := store.Signup(ctx, "Chess Club", "test@example.com"); !errors.Is(err, ErrAlreadySignedUp) {
		t.Errorf("expected ErrAlreadySignedUp, got %v", err)
	}
	if _, err := store.Signup(ctx, "NonExistent", "test@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_SignupIgnoresCapacityByDefault(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(seed())

	for i := range 5 {
		if _, err := store.Signup(ctx, "Chess Club", fmt.Sprintf("s%d@mergington.edu", i)); err != nil {
			t.Fatalf("signup %d: unexpected error: %v", i, err)
		}
	}
	if n := len(store.List(ctx)["Chess Club"].Participants); n != 6 {
		t.Errorf("expected 6 participants, got %d", n)
	}
}

func TestMemoryStore_SignupEnforcesCapacity(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(seed(), WithCapacityEnforcement(true))

	if _, err := store.Signup(ctx, "Chess Club", "second@mergington.edu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Signup(ctx, "Chess Club", "third@mergington.edu"); !errors.Is(err, ErrActivityFull) {
		t.Errorf("expected ErrActivityFull, got %v", err)
	}
	// Duplicate check runs before the capacity check.
	if _, err := store.Signup(ctx, "Chess Club", "second@mergington.edu"); !errors.Is(err, ErrAlreadySignedUp) {
		t.Errorf("expected ErrAlreadySignedUp, got %v", err)
	}
}

func TestMemoryStore_Unregister(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(seed())

	a, err := store.Unregister(ctx, "Art Club", "b@mergington.edu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a@mergington.edu", "c@mergington.edu"}
	if fmt.Sprint(a.Participants) != fmt.Sprint(want) {
		t.Errorf("order not preserved: expected %v, got %v", want, a.Participants)
	}

	if _, err := store.Unregister(ctx, "Art Club", "b@mergington.edu"); !errors.Is(err, ErrNotSignedUp) {
		t.Errorf("expected ErrNotSignedUp, got %v", err)
	}
	if _, err := store.Unregister(ctx, "NonExistent", "a@mergington.edu"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_SnapshotSurvivesUnregister(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(seed())

	before := store.List(ctx)
	if _, err := store.Unregister(ctx, "Art Club", "a@mergington.edu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a@mergington.edu", "b@mergington.edu", "c@mergington.edu"}
	if fmt.Sprint(before["Art Club"].Participants) != fmt.Sprint(want) {
		t.Errorf("snapshot changed after unregister: %v", before["Art Club"].Participants)
	}
}

func TestMemoryStore_ConcurrentSignups(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(seed())

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan error, n*2)
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("student%d@mergington.edu", i)
			if _, err := store.Signup(ctx, "Art Club", email); err != nil {
				errs <- err
			}
			// Same email again must be rejected regardless of interleaving.
			if _, err := store.Signup(ctx, "Art Club", email); !errors.Is(err, ErrAlreadySignedUp) {
				errs <- fmt.Errorf("duplicate accepted for %s: %v", email, err)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	roster := store.List(ctx)["Art Club"].Participants
	if len(roster) != n+3 {
		t.Fatalf("expected %d participants, got %d", n+3, len(roster))
	}
	seen := make(map[string]bool, len(roster))
	for _, p := range roster {
		if seen[p] {
			t.Errorf("duplicate participant %s", p)
		}
		seen[p] = true
	}
}
