// Package manifest reads YAML consist manifests: a named train described as
// an ordered list of wagons.
//
//	name: express
//	place_restaurant: true
//	wagons:
//	  - type: sitting
//	    occupied: 40
//	  - type: luxury
//	    capacity: 30
//	    occupied: 12
package manifest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"train-consist-service/internal/domain"
	"train-consist-service/internal/ports"

	"gopkg.in/yaml.v3"
)

type Manifest struct {
	Name            string       `yaml:"name"`
	PlaceRestaurant bool         `yaml:"place_restaurant"`
	Wagons          []WagonEntry `yaml:"wagons"`
}

// WagonEntry is one wagon of a manifest. A nil Capacity means the canonical
// capacity of Type.
type WagonEntry struct {
	Type     string `yaml:"type"`
	Capacity *int   `yaml:"capacity,omitempty"`
	Occupied int    `yaml:"occupied,omitempty"`
}

// Parse decodes a manifest. Unknown keys are rejected.
func Parse(b []byte) (Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return Manifest{}, errors.New("parse manifest: document is empty")
		}
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	m.Name = strings.TrimSpace(m.Name)
	return m, nil
}

// Load reads and parses the manifest at path.
func Load(path string) (Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("load manifest: read %q: %w", path, err)
	}
	m, err := Parse(b)
	if err != nil {
		return Manifest{}, fmt.Errorf("load manifest %q: %w", path, err)
	}
	return m, nil
}

// Build validates the manifest and assembles its train. Errors name the
// offending wagon by its 0-based position, as used by the wagon commands.
func (m Manifest) Build() (*domain.Train, error) {
	if err := domain.ValidateTrainName(m.Name); err != nil {
		return nil, fmt.Errorf("build manifest: %w", err)
	}

	t := domain.NewTrain()
	if err := t.SetCapacity(len(m.Wagons)); err != nil {
		return nil, fmt.Errorf("build manifest %q: %w", m.Name, err)
	}
	for i, e := range m.Wagons {
		w, err := e.wagon()
		if err != nil {
			return nil, fmt.Errorf("build manifest %q: wagon #%d: %w", m.Name, i, err)
		}
		t.Append(w)
	}

	if m.PlaceRestaurant {
		t.PlaceRestaurant()
	}
	return t, nil
}

func (e WagonEntry) wagon() (domain.Wagon, error) {
	wt, err := domain.ParseWagonType(e.Type)
	if err != nil {
		return domain.Wagon{}, err
	}
	if wt == domain.Restaurant && (e.Occupied != 0 || (e.Capacity != nil && *e.Capacity != 0)) {
		return domain.Wagon{}, fmt.Errorf("restaurant wagons carry no seats: %w", domain.ErrInvalidArgument)
	}
	capacity := wt.CanonicalCapacity()
	if e.Capacity != nil {
		capacity = *e.Capacity
	}
	return domain.NewWagon(capacity, e.Occupied, wt)
}

// Marshal renders t as a manifest named name. Every wagon carries its
// explicit capacity.
func Marshal(name string, t *domain.Train) ([]byte, error) {
	m := Manifest{Name: name, Wagons: make([]WagonEntry, 0, t.Len())}
	for _, w := range t.Wagons() {
		capacity := w.MaxCapacity()
		m.Wagons = append(m.Wagons, WagonEntry{
			Type:     strings.ToLower(w.Type().String()),
			Capacity: &capacity,
			Occupied: w.OccupiedSeats(),
		})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("marshal manifest %q: %w", name, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal manifest %q: %w", name, err)
	}
	return buf.Bytes(), nil
}

// SeedFromYAML loads the manifest at path, builds its train and stores it
// under the manifest name. It returns that name.
func SeedFromYAML(ctx context.Context, repo ports.TrainRepository, path string) (string, error) {
	m, err := Load(path)
	if err != nil {
		return "", fmt.Errorf("seed trains: %w", err)
	}
	t, err := m.Build()
	if err != nil {
		return "", fmt.Errorf("seed trains: %q: %w", path, err)
	}
	if err := repo.Save(ctx, m.Name, t); err != nil {
		return "", fmt.Errorf("seed trains: %w", err)
	}
	return m.Name, nil
}

// SeedDir seeds every *.yaml and *.yml manifest in dir, in file name order,
// and returns the stored train names. It stops at the first failure.
func SeedDir(ctx context.Context, repo ports.TrainRepository, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("seed trains: read dir %q: %w", dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	names := make([]string, 0, len(paths))
	for _, p := range paths {
		name, err := SeedFromYAML(ctx, repo, p)
		if err != nil {
			return names, err
		}
		names = append(names, name)
	}
	return names, nil
}
