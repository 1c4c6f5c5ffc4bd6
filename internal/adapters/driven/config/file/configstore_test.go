package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DoesNotCreateDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "primer")

	_, err := NewConfigStore(dir)
	require.NoError(t, err)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "directory should only be created on save")
}

func TestConfigStore_Set_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "primer")
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("demo.a", 7))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("demo.a", 7))
	require.NoError(t, store.Set("demo.message", "racecar"))
	require.NoError(t, store.Set("demo.numbers", []int{3, 1, 4}))
	require.NoError(t, store.Set("output.color", false))

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 7, reloaded.GetInt("demo.a"))
	assert.Equal(t, "racecar", reloaded.GetString("demo.message"))
	assert.Equal(t, []int{3, 1, 4}, reloaded.GetIntSlice("demo.numbers"))
	assert.False(t, reloaded.GetBool("output.color"))
	_, ok := reloaded.Get("output.color")
	assert.True(t, ok)
}

func TestConfigStore_Save_WritesNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("demo.a", 7))
	require.NoError(t, store.Set("output.precision", 2))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "[demo]")
	assert.Contains(t, content, "[output]")
	assert.NotContains(t, content, "demo.a")
}

func TestConfigStore_Load_HandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := []byte(`[demo]
a = 20
b = 0
message = "Never odd or even"
numbers = [9, 8, 7]

[output]
precision = 3
`)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), content, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 20, store.GetInt("demo.a"))
	assert.Equal(t, 0, store.GetInt("demo.b"))
	assert.Equal(t, "Never odd or even", store.GetString("demo.message"))
	assert.Equal(t, []int{9, 8, 7}, store.GetIntSlice("demo.numbers"))
	assert.Equal(t, 3, store.GetInt("output.precision"))
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	val, ok := store.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
	assert.Equal(t, "", store.GetString("nonexistent"))
	assert.Equal(t, 0, store.GetInt("nonexistent"))
	assert.False(t, store.GetBool("nonexistent"))
	assert.Nil(t, store.GetIntSlice("nonexistent"))
}

func TestConfigStore_WrongTypes(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("str", "hello"))

	assert.Equal(t, 0, store.GetInt("str"))
	assert.False(t, store.GetBool("str"))
	assert.Nil(t, store.GetIntSlice("str"))
}

func TestConfigStore_Delete(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("demo.a", 1))
	require.NoError(t, store.Set("demo.b", 2))
	require.NoError(t, store.Delete("demo.a"))
	require.NoError(t, store.Delete("demo.missing"))

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := reloaded.Get("demo.a")
	assert.False(t, ok)
	assert.Equal(t, 2, reloaded.GetInt("demo.b"))
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()

	corruptedContent := []byte("this is not valid TOML {{{[[")
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), corruptedContent, 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_Save_WriteFileError(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	// Replace the file with a directory to cause write error
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	err = store.Set("another", "value")
	assert.Error(t, err)
}

func TestConfigStore_SetWithUnmarshallableValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	// Channels cannot be marshaled to TOML
	err = store.Set("channel", make(chan int))

	assert.Error(t, err)
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"demo": map[string]any{
			"a":     int64(1),
			"inner": map[string]any{"x": "y"},
		},
		"top": true,
	}

	flat := flattenMap(nested, "")

	assert.Equal(t, map[string]any{
		"demo.a":       int64(1),
		"demo.inner.x": "y",
		"top":          true,
	}, flat)
}

func TestNestMap(t *testing.T) {
	flat := map[string]any{
		"demo.a":       1,
		"demo.inner.x": "y",
		"top":          true,
	}

	nested := nestMap(flat)

	assert.Equal(t, map[string]any{
		"demo": map[string]any{
			"a":     1,
			"inner": map[string]any{"x": "y"},
		},
		"top": true,
	}, nested)
	assert.Equal(t, flat, flattenMap(nested, ""))
}

func TestNestMap_EmptySegmentKeptWhole(t *testing.T) {
	nested := nestMap(map[string]any{"a..b": 1})

	assert.Equal(t, map[string]any{"a..b": 1}, nested)
}
