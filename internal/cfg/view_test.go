package cfg

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roc "github.com/jamesainslie/go-roc"
	"github.com/jamesainslie/go-roc/dataset"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestViewOptionsDefaults(t *testing.T) {
	s := Defaults()
	opts, err := s.ViewOptions(discard())
	require.NoError(t, err)

	v, err := roc.New(opts...)
	require.NoError(t, err)
	assert.Equal(t, dataset.Separated, v.Dataset())
	assert.Equal(t, 50.0, v.Threshold())
}

func TestViewOptionsPrevalenceAndJitter(t *testing.T) {
	s := Defaults()
	s.Dataset = dataset.Imbalanced
	p := 35
	s.Prevalence = &p
	s.Jitter = true

	opts, err := s.ViewOptions(discard())
	require.NoError(t, err)

	v, err := roc.New(opts...)
	require.NoError(t, err)
	assert.Equal(t, 35, v.Samples().Positives())
}

func TestViewOptionsSamplesDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clinic.csv"), []byte("90,1\n20,0\n"), 0o600))

	s := Defaults()
	s.SamplesDir = dir
	opts, err := s.ViewOptions(discard())
	require.NoError(t, err)

	v, err := roc.New(opts...)
	require.NoError(t, err)
	assert.Equal(t, "clinic", v.Dataset(), "falls back to the first dataset")
	assert.Equal(t, 2, v.Samples().Len())
}

func TestViewOptionsCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("datasets: [{name: mine, positive: [70], negative: [30]}]\n"), 0o600))

	s := Defaults()
	s.CatalogPath = path
	s.Dataset = "mine"
	opts, err := s.ViewOptions(discard())
	require.NoError(t, err)

	v, err := roc.New(opts...)
	require.NoError(t, err)
	assert.Equal(t, "mine", v.Dataset())

	s.CatalogPath = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = s.ViewOptions(discard())
	assert.Error(t, err)
}

func TestViewOptionsExplicitMissingDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("datasets: [{name: mine, positive: [70], negative: [30]}]\n"), 0o600))

	s := Defaults()
	s.CatalogPath = path
	s.Dataset = "other"
	opts, err := s.ViewOptions(discard())
	require.NoError(t, err)

	_, err = roc.New(opts...)
	assert.ErrorIs(t, err, roc.ErrUnknownDataset)
}

func TestViewOptionsEmptySamplesDir(t *testing.T) {
	s := Defaults()
	s.SamplesDir = t.TempDir()
	_, err := s.ViewOptions(discard())
	assert.ErrorContains(t, err, "no datasets")
}

func TestGeneratorJitter(t *testing.T) {
	s := Defaults()
	plain, err := s.Generator()
	require.NoError(t, err)
	base, err := plain.Generate(dataset.Imbalanced, 50)
	require.NoError(t, err)

	s.Jitter = true
	s.Seed = 7
	first, err := s.Generator()
	require.NoError(t, err)
	jittered, err := first.Generate(dataset.Imbalanced, 50)
	require.NoError(t, err)
	assert.NotEqual(t, base, jittered)
	assert.Equal(t, base.Positives(), jittered.Positives())

	second, err := s.Generator()
	require.NoError(t, err)
	again, err := second.Generate(dataset.Imbalanced, 50)
	require.NoError(t, err)
	assert.Equal(t, jittered, again, "same seed, same samples")
}
