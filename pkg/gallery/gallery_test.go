package gallery

import (
	"context"
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/andreaperaltro/camo/pkg/pattern"
)

func testEntry(family string, seed int64) *Entry {
	opts := pattern.Options{
		Scale:      30,
		Complexity: 50,
		Contrast:   50,
		Sharpness:  50,
		Colors:     []color.RGBA{{R: 0x44, G: 0x5C, B: 0x2B, A: 0xFF}},
		Seed:       seed,
	}
	return NewEntry(family, opts, true, []byte{0x89, 'P', 'N', 'G'})
}

func TestNewEntry(t *testing.T) {
	e := testEntry("woodland", 42)
	if e.ID == "" {
		t.Error("entry has no ID")
	}
	if e.CreatedAt.IsZero() {
		t.Error("entry has no timestamp")
	}
	if other := testEntry("woodland", 42); other.ID == e.ID {
		t.Error("two entries share an ID")
	}
}

// runStoreTests exercises the Store contract shared by all backends.
func runStoreTests(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing: err = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete missing: err = %v, want ErrNotFound", err)
	}

	first := testEntry("woodland", 1)
	second := testEntry("flecktarn", 2)
	second.CreatedAt = first.CreatedAt.Add(time.Second)

	for _, e := range []*Entry{first, second} {
		if err := store.Put(ctx, e); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}

	got, err := store.Get(ctx, first.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Family != "woodland" || got.Options.Seed != 1 || !got.Seamless {
		t.Errorf("roundtrip mismatch: %+v", got)
	}
	if string(got.PNG) != string(first.PNG) {
		t.Error("PNG bytes lost in roundtrip")
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("List returned %d entries, want 2", len(list))
	}
	if list[0].ID != second.ID {
		t.Error("List not sorted newest first")
	}

	if err := store.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("entry survived delete: err = %v", err)
	}

	if err := store.Close(ctx); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	runStoreTests(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	runStoreTests(t, store)
}

func TestMemoryStoreIsolatesEntries(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	e := testEntry("urban", 3)
	if err := store.Put(ctx, e); err != nil {
		t.Fatalf("Put: %v", err)
	}
	e.Family = "mutated"

	got, err := store.Get(ctx, e.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Family != "urban" {
		t.Error("store entry aliased caller's struct")
	}
}
