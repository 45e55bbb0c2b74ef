package repositories

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"train-consist-service/internal/domain"
	"train-consist-service/internal/ports"
)

func sampleTrain(t *testing.T) *domain.Train {
	t.Helper()
	s, err := domain.NewWagon(100, 40, domain.Sitting)
	if err != nil {
		t.Fatalf("new wagon: %v", err)
	}
	l, err := domain.NewWagon(30, 30, domain.Luxury)
	if err != nil {
		t.Fatalf("new wagon: %v", err)
	}
	return domain.NewTrain(s, domain.Wagon{}, l)
}

// Behaviour shared by every TrainRepository implementation.
func exerciseRepository(t *testing.T, repo ports.TrainRepository) {
	ctx := context.Background()
	want := sampleTrain(t)

	if _, err := repo.Load(ctx, "express"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before save, got %v", err)
	}

	if err := repo.Save(ctx, "express", want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, "coastal", domain.NewTrain()); err != nil {
		t.Fatalf("save empty: %v", err)
	}

	got, err := repo.Load(ctx, "express")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("loaded train differs: got %v, want %v", got.Wagons(), want.Wagons())
	}

	// The loaded copy is independent of the stored one.
	w, _ := got.At(0)
	if err := w.Board(10); err != nil {
		t.Fatalf("board: %v", err)
	}
	again, err := repo.Load(ctx, "express")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !again.Equal(want) {
		t.Fatalf("stored train changed through a loaded copy")
	}

	names, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 2 || names[0] != "coastal" || names[1] != "express" {
		t.Fatalf("expected [coastal express], got %v", names)
	}

	if err := repo.Delete(ctx, "express"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "express"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if !domain.IsKind(repo.Delete(ctx, "express"), domain.KindNotFound) {
		t.Fatalf("expected not_found kind")
	}

	if err := repo.Save(ctx, "../escape", want); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for bad name, got %v", err)
	}
	if err := repo.Save(ctx, "nil-train", nil); err == nil {
		t.Fatalf("expected error saving nil train")
	}
}

func TestMemoryTrainRepository(t *testing.T) {
	exerciseRepository(t, NewMemoryTrainRepository())
}

func TestFileTrainRepository(t *testing.T) {
	exerciseRepository(t, NewFileTrainRepository(t.TempDir()))
}

func TestFileTrainRepositoryWritesTextForm(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileTrainRepository(dir)

	if err := repo.Save(context.Background(), "express", sampleTrain(t)); err != nil {
		t.Fatalf("save: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "express.train"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "3\n100\n40\n0\n0\n0\n3\n30\n30\n2\n"
	if string(b) != want {
		t.Fatalf("unexpected file contents:\n%q\nwant\n%q", string(b), want)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the train file, found %d entries", len(entries))
	}
}

func TestFileTrainRepositoryListSkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"notes.txt", "bad name.train", "ok.train"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("0\n"), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.train"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	names, err := NewFileTrainRepository(dir).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 1 || names[0] != "ok" {
		t.Fatalf("expected [ok], got %v", names)
	}
}

func TestFileTrainRepositoryMissingDir(t *testing.T) {
	repo := NewFileTrainRepository(filepath.Join(t.TempDir(), "absent"))
	names, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("expected no trains, got %v", names)
	}
}

func TestFileTrainRepositoryCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.train"), []byte("2\n100 40 0\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := NewFileTrainRepository(dir).Load(context.Background(), "broken")
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("corrupt file must not be reported as missing: %v", err)
	}
}

func TestRepositoryHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, repo := range []ports.TrainRepository{NewMemoryTrainRepository(), NewFileTrainRepository(t.TempDir())} {
		if _, err := repo.List(ctx); !errors.Is(err, context.Canceled) {
			t.Fatalf("%T: expected context.Canceled, got %v", repo, err)
		}
	}
}

func TestInitDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "trains")
	if err := InitDataDir(dir); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := InitDataDir(dir); err != nil {
		t.Fatalf("init twice: %v", err)
	}

	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := InitDataDir(file); err == nil {
		t.Fatalf("expected error for a regular file")
	}
	if err := InitDataDir("  "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
