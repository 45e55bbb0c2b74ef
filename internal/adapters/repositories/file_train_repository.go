package repositories

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"train-consist-service/internal/adapters/textstream"
	"train-consist-service/internal/domain"
	"train-consist-service/internal/ports"
)

const trainFileExt = ".train"

// File-backed implementation of the TrainRepository port. Each train is one
// <name>.train file in Dir holding the compact text form.
type FileTrainRepository struct{ Dir string }

var _ ports.TrainRepository = (*FileTrainRepository)(nil)

func NewFileTrainRepository(dir string) *FileTrainRepository {
	return &FileTrainRepository{Dir: dir}
}

func (r *FileTrainRepository) path(name string) string {
	return filepath.Join(r.Dir, name+trainFileExt)
}

// Read and decode the named train.
func (r *FileTrainRepository) Load(ctx context.Context, name string) (*domain.Train, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := domain.ValidateTrainName(name); err != nil {
		return nil, fmt.Errorf("load train: %w", err)
	}

	path := r.path(name)
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.NotFound("load train", name)
	}
	if err != nil {
		return nil, fmt.Errorf("load train: read %q: %w", path, err)
	}

	t, err := textstream.NewDecoder(bytes.NewReader(b)).DecodeTrain()
	if err != nil {
		return nil, fmt.Errorf("load train: decode %q: %w", path, err)
	}
	return t, nil
}

// Encode the train and replace the named file. The file is written next to
// the target and renamed into place, so readers never see a partial train.
func (r *FileTrainRepository) Save(ctx context.Context, name string, t *domain.Train) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := domain.ValidateTrainName(name); err != nil {
		return fmt.Errorf("save train: %w", err)
	}
	if t == nil {
		return errors.New("save train: train is nil")
	}

	var buf bytes.Buffer
	if err := textstream.NewEncoder(&buf).EncodeTrain(t); err != nil {
		return fmt.Errorf("save train: encode %q: %w", name, err)
	}

	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return fmt.Errorf("save train: create dir %q: %w", r.Dir, err)
	}

	tmp, err := os.CreateTemp(r.Dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("save train: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("save train: write %q: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save train: close %q: %w", tmpName, err)
	}

	path := r.path(name)
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("save train: rename to %q: %w", path, err)
	}
	return nil
}

// Return the names of all .train files in ascending order. A missing
// directory holds no trains.
func (r *FileTrainRepository) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(r.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list trains: read dir %q: %w", r.Dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), trainFileExt) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), trainFileExt)
		if domain.ValidateTrainName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (r *FileTrainRepository) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := domain.ValidateTrainName(name); err != nil {
		return fmt.Errorf("delete train: %w", err)
	}

	path := r.path(name)
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NotFound("delete train", name)
	}
	if err != nil {
		return fmt.Errorf("delete train: remove %q: %w", path, err)
	}
	return nil
}
