package dhash_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/theflywheel/dhash"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dhash.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
capacity = 101
hasher = "xxhash"
max_load_factor = 0.75
`)

	cfg, err := dhash.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, dhash.Config{Capacity: 101, Hasher: dhash.HasherXXHash, MaxLoadFactor: 0.75}, cfg)

	opts, err := cfg.Options()
	require.NoError(t, err)

	table, err := dhash.New(opts...)
	require.NoError(t, err)
	require.Equal(t, 101, table.Cap())
	require.NoError(t, table.Insert("k", "v"))
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := dhash.LoadConfig(writeConfig(t, "hasher = \"polynomial\"\n"))
	require.NoError(t, err)
	require.Equal(t, dhash.DefaultConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		err     error
	}{
		{"Bad_Capacity", "capacity = 0\n", dhash.ErrInvalidCapacity},
		{"Bad_Load_Factor", "max_load_factor = 1.5\n", dhash.ErrInvalidLoadFactor},
		{"Unknown_Hasher", "hasher = \"md5\"\n", dhash.ErrUnknownHasher},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dhash.LoadConfig(writeConfig(t, tc.content))
			require.ErrorIs(t, err, tc.err)
		})
	}

	_, err := dhash.LoadConfig(writeConfig(t, "capacity = \"many\"\n"))
	require.Error(t, err)

	_, err = dhash.LoadConfig(writeConfig(t, "buckets = 7\n"))
	require.ErrorContains(t, err, "unknown keys")

	_, err = dhash.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
