package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	body := "# comment\n\nTEXT2OBJ_TEST_A=plain\nexport TEXT2OBJ_TEST_B=\"quoted value\"\nTEXT2OBJ_TEST_C='single'\nnoequals\n=novalue\nTEXT2OBJ_TEST_KEEP=fromfile\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	t.Setenv("TEXT2OBJ_TEST_KEEP", "fromenv")
	for _, k := range []string{"TEXT2OBJ_TEST_A", "TEXT2OBJ_TEST_B", "TEXT2OBJ_TEST_C"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	set, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"TEXT2OBJ_TEST_A", "TEXT2OBJ_TEST_B", "TEXT2OBJ_TEST_C"}, set)
	assert.Equal(t, "plain", os.Getenv("TEXT2OBJ_TEST_A"))
	assert.Equal(t, "quoted value", os.Getenv("TEXT2OBJ_TEST_B"))
	assert.Equal(t, "single", os.Getenv("TEXT2OBJ_TEST_C"))
	assert.Equal(t, "fromenv", os.Getenv("TEXT2OBJ_TEST_KEEP"))
}

func TestLoadMissingFile(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.NoError(t, err)
	assert.Empty(t, set)
}

func TestGet(t *testing.T) {
	t.Setenv("TEXT2OBJ_TEST_GET", "  ")
	assert.Equal(t, "fallback", Get("TEXT2OBJ_TEST_GET", "fallback"))
	t.Setenv("TEXT2OBJ_TEST_GET", "set")
	assert.Equal(t, "set", Get("TEXT2OBJ_TEST_GET", "fallback"))
}
