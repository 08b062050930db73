package dhash_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/theflywheel/dhash"
)

func TestBasicOperations(t *testing.T) {
	table, err := dhash.New()
	require.NoError(t, err)
	defer table.Destroy()

	require.Equal(t, dhash.DefaultCapacity, table.Cap())
	require.Equal(t, 0, table.Len())

	for i := 0; i < 20; i++ {
		key := fmt.Sprintf("key-%d", i)
		value := fmt.Sprintf("value-%d", i*100)
		require.NoError(t, table.Insert(key, value), "insert %s", key)

		got, found := table.Search(key)
		require.True(t, found, "key %s not found immediately after insertion", key)
		require.Equal(t, value, got)
	}
	require.Equal(t, 20, table.Len())

	for i := 0; i < 20; i++ {
		got, found := table.Search(fmt.Sprintf("key-%d", i))
		require.True(t, found)
		require.Equal(t, fmt.Sprintf("value-%d", i*100), got)
	}

	_, found := table.Search("missing")
	require.False(t, found)
}

func TestConcreteScenario(t *testing.T) {
	table, err := dhash.New(dhash.WithCapacity(53))
	require.NoError(t, err)

	require.NoError(t, table.Insert("cat", "1"))
	require.NoError(t, table.Insert("dog", "2"))
	require.NoError(t, table.Insert("bird", "3"))

	v, found := table.Search("dog")
	require.True(t, found)
	require.Equal(t, "2", v)

	table.Delete("cat")
	_, found = table.Search("cat")
	require.False(t, found)
	require.Equal(t, 2, table.Len())
}

// TestOverwrite tests that inserting an existing key replaces its value
func TestOverwrite(t *testing.T) {
	table, err := dhash.New()
	require.NoError(t, err)

	require.NoError(t, table.Insert("answer", "41"))
	require.Equal(t, 1, table.Len())

	require.NoError(t, table.Insert("answer", "42"))
	require.Equal(t, 1, table.Len(), "count changed on update")

	v, found := table.Search("answer")
	require.True(t, found)
	require.Equal(t, "42", v)
}

func TestDeleteThenSearch(t *testing.T) {
	table, err := dhash.New()
	require.NoError(t, err)

	require.NoError(t, table.Insert("k", "v"))
	table.Delete("k")

	_, found := table.Search("k")
	require.False(t, found)
	require.Equal(t, 0, table.Len())
	require.Equal(t, 1, table.Stats().Tombstones)
}

func TestDeleteAbsentKey(t *testing.T) {
	table, err := dhash.New()
	require.NoError(t, err)

	require.NoError(t, table.Insert("a", "1"))
	require.NoError(t, table.Insert("b", "2"))

	table.Delete("c")
	require.Equal(t, 2, table.Len())

	table.Delete("a")
	table.Delete("a")
	require.Equal(t, 1, table.Len())

	v, found := table.Search("b")
	require.True(t, found)
	require.Equal(t, "2", v)
}

func TestCallerStringsAreIndependent(t *testing.T) {
	table, err := dhash.New()
	require.NoError(t, err)

	buf := []byte("mutable")
	require.NoError(t, table.Insert(string(buf), string(buf)))
	copy(buf, "changed")

	v, found := table.Search("mutable")
	require.True(t, found)
	require.Equal(t, "mutable", v)
}

func TestDestroy(t *testing.T) {
	table, err := dhash.New()
	require.NoError(t, err)

	require.NoError(t, table.Insert("a", "1"))
	table.Delete("a")
	require.NoError(t, table.Insert("b", "2"))

	table.Destroy()
	require.Equal(t, 0, table.Len())
	require.Equal(t, 0, table.Cap())

	_, found := table.Search("b")
	require.False(t, found)
	table.Delete("b")
	require.ErrorIs(t, table.Insert("c", "3"), dhash.ErrDestroyed)

	// Destroy is idempotent.
	table.Destroy()
}

func TestNewInvalidOptions(t *testing.T) {
	testCases := []struct {
		name string
		opts []dhash.Option
		err  error
	}{
		{"Zero_Capacity", []dhash.Option{dhash.WithCapacity(0)}, dhash.ErrInvalidCapacity},
		{"Negative_Capacity", []dhash.Option{dhash.WithCapacity(-5)}, dhash.ErrInvalidCapacity},
		{"Nil_Hasher", []dhash.Option{dhash.WithHasher(nil)}, dhash.ErrNilHasher},
		{"Load_Factor_One", []dhash.Option{dhash.WithMaxLoadFactor(1)}, dhash.ErrInvalidLoadFactor},
		{"Negative_Load_Factor", []dhash.Option{dhash.WithMaxLoadFactor(-0.1)}, dhash.ErrInvalidLoadFactor},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			table, err := dhash.New(tc.opts...)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, table)
		})
	}
}
