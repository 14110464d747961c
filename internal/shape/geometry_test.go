package shape

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	defs := BuiltinDefaults()

	g := Resolve(Decode("box 2 3 4 #035efc"), defs)
	assert.Equal(t, Box, g.Kind)
	assert.Equal(t, [3]float32{2, 3, 4}, g.Size)
	assert.Equal(t, [4]uint8{0x03, 0x5e, 0xfc, 255}, g.Color)
	assert.Equal(t, 32, g.Segments)
	assert.InDelta(t, 0.8, g.Roughness, 1e-6)
	assert.True(t, g.Visible())

	g = Resolve(Decode("sphere 5"), defs)
	assert.Equal(t, [3]float32{5, 0, 0}, g.Size)

	g = Resolve(Decode("torus 3 1"), defs)
	assert.Equal(t, [3]float32{3, 1, 0}, g.Size)
	assert.Equal(t, [3]float32{4, 4, 1}, g.Extent())

	g = Resolve(Description{Kind: Box, Dimensions: []float64{0, -2}}, defs)
	assert.Equal(t, [3]float32{1, 1, 1}, g.Size)
	assert.Equal(t, [3]float32{0.5, 0.5, 0.5}, g.Extent())
}

func TestResolveUnknownIsPlaceholder(t *testing.T) {
	g := Resolve(Decode("nothing here 3"), BuiltinDefaults())
	assert.False(t, g.Visible())
	assert.Equal(t, [3]float32{}, g.Size)
	assert.Equal(t, [3]float32{}, g.Extent())
	assert.Equal(t, [4]uint8{255, 255, 255, 255}, g.Color)
}

func TestResolveClampsMaterial(t *testing.T) {
	defs := Defaults{Sphere: {Type: Sphere, Segments: 8, Roughness: 3, Metalness: 0.25}}
	g := Resolve(Decode("sphere"), defs)
	assert.Equal(t, 8, g.Segments)
	assert.Equal(t, float32(1), g.Roughness)
	assert.Equal(t, float32(0.25), g.Metalness)
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
	}
	write("sphere.yaml", "type: sphere\nsegments: 12\nroughness: 0.3\n")
	write("torus.yml", "type: Torus\nsegments: 48\n")
	write("readme.txt", "not yaml")

	defs, err := LoadDefaults(dir)
	require.NoError(t, err)
	assert.Equal(t, 12, defs.Def(Sphere).Segments)
	assert.Equal(t, float32(0.3), defs.Def(Sphere).Roughness)
	assert.Equal(t, float32(0.8), defs.Def(Sphere).Metalness)
	assert.Equal(t, 48, defs.Def(Torus).Segments)
	assert.Equal(t, 32, defs.Def(Box).Segments)
}

func TestLoadDefaultsReportsBadFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("type: cone\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("type: [\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.yaml"), []byte("type: box\nsegments: 4\n"), 0644))

	defs, err := LoadDefaults(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.yaml")
	assert.Contains(t, err.Error(), "b.yaml")
	assert.Equal(t, 4, defs.Def(Box).Segments)
}

func TestLoadDefaultsMissingDir(t *testing.T) {
	defs, err := LoadDefaults(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Equal(t, BuiltinDefaults(), defs)
}

func TestRest(t *testing.T) {
	defs := BuiltinDefaults()
	tests := []struct {
		text string
		want float32
	}{
		{"box 2 3 4", 1.5},
		{"sphere 5", 5},
		{"torus 3 1", 4},
		{"torus 1 3", 4},
		{"box", 0.5},
		{"hello", 0},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(Decode(tt.text), defs).Rest())
		})
	}
}
