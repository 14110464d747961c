package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#035efc", Color{0x03, 0x5e, 0xfc}, true},
		{"FF0000", Color{0xff, 0, 0}, true},
		{"#abc", Color{0xaa, 0xbb, 0xcc}, true},
		{" #000000 ", Color{}, true},
		{"#12345", White, false},
		{"#gggggg", White, false},
		{"", White, false},
	}
	for _, tt := range tests {
		got, ok := ParseHexColor(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "#ffffff", White.String())
	assert.Equal(t, "#0a0b0c", Color{10, 11, 12}.String())
	assert.Equal(t, [4]uint8{10, 11, 12, 255}, Color{10, 11, 12}.RGBA())
}

func TestColorText(t *testing.T) {
	var c Color
	assert.NoError(t, c.UnmarshalText([]byte("#222")))
	assert.Equal(t, Color{0x22, 0x22, 0x22}, c)
	assert.Error(t, c.UnmarshalText([]byte("black")))

	b, err := c.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "#222222", string(b))
}
