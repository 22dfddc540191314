package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.SaveRun(RunRecord{Variant: "snakebird", Score: 10, EndReason: "collision"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := b.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("second store sees %d runs, expected 0", len(runs))
	}
}

func TestSaveRunAssignsIdentifiers(t *testing.T) {
	store := openTestStore(t)

	r, err := store.SaveRun(RunRecord{Variant: "portals", Score: 42, Frogs: 3, Portals: 1, EndReason: "timeout", DurationSecs: 12.5})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if r.ID == 0 {
		t.Error("ID should be assigned")
	}
	if _, err := uuid.Parse(r.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", r.RunID, err)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	got, err := store.RunByID(r.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if *got != r {
		t.Errorf("RunByID() = %+v, expected %+v", *got, r)
	}

	if _, err := store.RunByID(uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Errorf("RunByID(unknown) = %v, expected ErrNotFound", err)
	}
}

func TestTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []RunRecord{
		{Variant: "classic", Score: 100},
		{Variant: "classic", Score: 50},
		{Variant: "classic", Score: 200},
		{Variant: "snakebird", Score: 500},
	} {
		r.EndReason = "collision"
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	for i, want := range []int{200, 100, 50} {
		if runs[i].Score != want {
			t.Errorf("runs[%d].Score = %d, expected %d", i, runs[i].Score, want)
		}
	}

	all, err := store.TopRuns("", 2)
	if err != nil {
		t.Fatalf("TopRuns(all) failed: %v", err)
	}
	if len(all) != 2 || all[0].Score != 500 || all[0].Variant != "snakebird" {
		t.Errorf("TopRuns(all, 2) = %+v, expected snakebird 500 first", all)
	}
}

func TestBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("frogs")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestScore() = %d with no runs, expected 0", best)
	}

	for _, score := range []int{30, 70, 10} {
		if _, err := store.SaveRun(RunRecord{Variant: "frogs", Score: score, EndReason: "collision"}); err != nil {
			t.Fatal(err)
		}
	}
	if best, _ = store.BestScore("frogs"); best != 70 {
		t.Errorf("BestScore() = %d, expected 70", best)
	}
}

func TestRecentRunsAndStats(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	runs := []RunRecord{
		{Variant: "portals", Score: 10, Frogs: 1, Portals: 0, EndReason: "collision", CreatedAt: base},
		{Variant: "portals", Score: 30, Frogs: 2, Portals: 2, EndReason: "timeout", CreatedAt: base.Add(time.Minute)},
		{Variant: "classic", Score: 5, EndReason: "quit", CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Variant != "classic" {
		t.Errorf("RecentRuns(2) = %+v, expected classic first", recent)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	p := stats["portals"]
	if p == nil {
		t.Fatal("missing portals stats")
	}
	if p.Runs != 2 || p.BestScore != 30 || p.AvgScore != 20 || p.TotalFrogs != 3 || p.TotalPortals != 2 {
		t.Errorf("portals stats = %+v", *p)
	}
	if !p.LastPlayed.Equal(base.Add(time.Minute)) {
		t.Errorf("LastPlayed = %v, expected %v", p.LastPlayed, base.Add(time.Minute))
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if stats, _ := store.Stats(); len(stats) != 0 {
		t.Errorf("Stats() after Clear = %d entries, expected 0", len(stats))
	}
}
