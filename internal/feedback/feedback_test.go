package feedback

import (
	"path/filepath"
	"testing"
)

func TestOpenMissingFile(t *testing.T) {
	t.Parallel()

	store, err := Open(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file must yield an empty store, got error: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected an empty store, got %d entries", store.Len())
	}
}

func TestRecordAndRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "feedback.json")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("opening: %v", err)
	}

	store.Record("a|b", VerdictLike, 0.8, "Casual")
	store.Record("c|d", VerdictDislike, 0.3, "Athletic")

	if err := store.Save(); err != nil {
		t.Fatalf("saving: %v", err)
	}

	reloaded, err := Open(path)
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	if reloaded.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", reloaded.Len())
	}

	entry := reloaded.Get("a|b")
	if entry == nil {
		t.Fatalf("expected entry for a|b")
	}
	if entry.Verdict != VerdictLike {
		t.Fatalf("expected like, got %q", entry.Verdict)
	}
	if entry.Score != 0.8 || entry.Style != "Casual" {
		t.Fatalf("unexpected entry context: %+v", entry)
	}
	if entry.RecordedAt.IsZero() {
		t.Fatalf("expected a recorded-at timestamp")
	}
}

func TestRecordReplacesVerdict(t *testing.T) {
	t.Parallel()

	store, err := Open(filepath.Join(t.TempDir(), "feedback.json"))
	if err != nil {
		t.Fatalf("opening: %v", err)
	}

	store.Record("a|b", VerdictLike, 0.8, "Casual")
	store.Record("a|b", VerdictDislike, 0.8, "Casual")

	if store.Len() != 1 {
		t.Fatalf("expected one entry per outfit key, got %d", store.Len())
	}
	if store.Get("a|b").Verdict != VerdictDislike {
		t.Fatalf("expected the later verdict to win")
	}
}
