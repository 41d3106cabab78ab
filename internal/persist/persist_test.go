package persist

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandeepkv93/tasktick/internal/model"
)

func TestRoundTripPreservesOrderAndDoneFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")

	now := time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC)
	in := []model.Task{
		{ID: "1", Title: "Write report", Done: false, CreatedAt: now},
		{ID: "2", Title: "Call client", Done: true, CreatedAt: now.Add(time.Minute)},
		{ID: "3", Title: "Call client", Done: false, CreatedAt: now.Add(2 * time.Minute)},
	}
	if err := Save(path, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d tasks, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i].Title != in[i].Title || out[i].Done != in[i].Done {
			t.Fatalf("task %d mismatch: got {%s %v}, want {%s %v}",
				i, out[i].Title, out[i].Done, in[i].Title, in[i].Done)
		}
		if out[i].CreatedAt.IsZero() {
			t.Fatalf("task %d lost created_at", i)
		}
	}
}

func TestLoadMissingFileYieldsEmptyList(t *testing.T) {
	out, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty list, got %d tasks", len(out))
	}
}

func TestLoadMalformedFileYieldsEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out, err := Load(path)
	if err == nil {
		t.Fatal("expected a diagnostic error for malformed json")
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("malformed file must still yield a usable empty list, got %v", out)
	}
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tasks.json")
	if err := Save(path, nil); err != nil {
		t.Fatalf("save into nested dir: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty list, got %d", len(out))
	}
}

func TestLoadSkipsBlankTitles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	raw := `[{"title":"  ","done":false,"created_at":0},{"title":"keep","done":true,"created_at":1756000000.5}]`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0].Title != "keep" || !out[0].Done {
		t.Fatalf("unexpected tasks: %+v", out)
	}
}
