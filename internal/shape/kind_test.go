package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	assert.Equal(t, Box, ParseKind("Box"))
	assert.Equal(t, Sphere, ParseKind(" SPHERE "))
	assert.Equal(t, Torus, ParseKind("torus"))
	assert.Equal(t, Unknown, ParseKind("porsche"))
	assert.Equal(t, Unknown, ParseKind(""))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "box", Box.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestKindRequired(t *testing.T) {
	assert.Equal(t, 3, Box.Required())
	assert.Equal(t, 1, Sphere.Required())
	assert.Equal(t, 2, Torus.Required())
	assert.Equal(t, 0, Unknown.Required())
}
