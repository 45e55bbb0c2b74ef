package manifest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"train-consist-service/internal/adapters/repositories"
	"train-consist-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expressYAML = `
name: express
wagons:
  - type: sitting
    occupied: 40
  - type: Economy
    capacity: 60
    occupied: 55
  - type: luxury
`

func TestParseAndBuild(t *testing.T) {
	m, err := Parse([]byte(expressYAML))
	require.NoError(t, err)
	assert.Equal(t, "express", m.Name)
	require.Len(t, m.Wagons, 3)

	tr, err := m.Build()
	require.NoError(t, err)
	require.Equal(t, 3, tr.Len())
	assert.Equal(t, 3, tr.Capacity())

	w0, _ := tr.Wagon(0)
	assert.Equal(t, domain.SittingCapacity, w0.MaxCapacity())
	assert.Equal(t, 40, w0.OccupiedSeats())

	w1, _ := tr.Wagon(1)
	assert.Equal(t, domain.Economy, w1.Type())
	assert.Equal(t, 60, w1.MaxCapacity())

	w2, _ := tr.Wagon(2)
	assert.Equal(t, domain.LuxuryCapacity, w2.MaxCapacity())
	assert.Equal(t, 0, w2.OccupiedSeats())
}

func TestBuildPlacesRestaurant(t *testing.T) {
	m, err := Parse([]byte(`
name: dining
place_restaurant: true
wagons:
  - {type: sitting, occupied: 50}
  - {type: sitting, occupied: 30}
  - {type: sitting, occupied: 20}
`))
	require.NoError(t, err)

	tr, err := m.Build()
	require.NoError(t, err)
	require.Equal(t, 4, tr.Len())
	w, _ := tr.Wagon(1)
	assert.Equal(t, domain.Restaurant, w.Type())
}

func TestBuildErrorsNameTheWagon(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown type", "name: x\nwagons:\n  - type: sleeper\n", "wagon #0:"},
		{"overfull", "name: x\nwagons:\n  - type: sitting\n  - type: luxury\n    occupied: 31\n", "wagon #1:"},
		{"restaurant with seats", "name: x\nwagons:\n  - type: restaurant\n    capacity: 10\n", "wagon #0:"},
		{"negative capacity", "name: x\nwagons:\n  - type: economy\n    capacity: -1\n", "wagon #0:"},
		{"bad name", "name: 'two words'\nwagons: []\n", "must match"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Parse([]byte(tc.yaml))
			require.NoError(t, err)
			_, err = m.Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
			assert.True(t, errors.Is(err, domain.ErrInvalidArgument), "got %v", err)
		})
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("name: x\nwagon: []\n"))
	require.Error(t, err)

	_, err = Parse([]byte(""))
	require.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	m, err := Parse([]byte(expressYAML))
	require.NoError(t, err)
	want, err := m.Build()
	require.NoError(t, err)

	b, err := Marshal("express", want)
	require.NoError(t, err)

	back, err := Parse(b)
	require.NoError(t, err)
	got, err := back.Build()
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "round trip differs:\n%s", b)
}

func TestSeedFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "express.yaml")
	require.NoError(t, os.WriteFile(path, []byte(expressYAML), 0o600))

	repo := repositories.NewMemoryTrainRepository()
	name, err := SeedFromYAML(context.Background(), repo, path)
	require.NoError(t, err)
	assert.Equal(t, "express", name)

	tr, err := repo.Load(context.Background(), "express")
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Len())

	_, err = SeedFromYAML(context.Background(), repo, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSeedDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(expressYAML), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yml"), []byte("name: coastal\nwagons:\n  - type: economy\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	repo := repositories.NewMemoryTrainRepository()
	names, err := SeedDir(context.Background(), repo, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"coastal", "express"}, names)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.yaml"), []byte("name: broken\nwagons:\n  - type: sleeper\n"), 0o600))
	names, err = SeedDir(context.Background(), repo, dir)
	require.Error(t, err)
	assert.Equal(t, []string{"coastal", "express"}, names)
}
