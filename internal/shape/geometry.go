package shape

import "github.com/chewxy/math32"

// Geometry is a Description resolved into everything needed to build a mesh.
// Size holds width/height/depth for a box, radius for a sphere and radius/tube for a torus;
// unused slots are zero.
type Geometry struct {
	Kind      Kind
	Size      [3]float32
	Segments  int
	Color     [4]uint8
	Roughness float32
	Metalness float32
}

// Visible reports whether the geometry produces a mesh. Unknown is an empty placeholder.
func (g Geometry) Visible() bool {
	return g.Kind != Unknown
}

// Resolve fills in a Geometry from d using defs for mesh resolution and material.
// Missing or non-positive dimensions become 1.
func Resolve(d Description, defs Defaults) Geometry {
	g := Geometry{Kind: d.Kind, Color: d.Color.RGBA()}
	if d.Kind == Unknown {
		return g
	}
	def := defs.Def(d.Kind)
	g.Segments = def.Segments
	g.Roughness = clamp01(def.Roughness)
	g.Metalness = clamp01(def.Metalness)
	for i := 0; i < d.Kind.Required(); i++ {
		g.Size[i] = float32(d.Dimension(i))
	}
	return g
}

// Extent is the half-size of the geometry's bounding box, used to rest it on the ground.
func (g Geometry) Extent() [3]float32 {
	switch g.Kind {
	case Box:
		return [3]float32{g.Size[0] / 2, g.Size[1] / 2, g.Size[2] / 2}
	case Sphere:
		r := g.Size[0]
		return [3]float32{r, r, r}
	case Torus:
		// Torus lies in the XY plane: outer radius on X/Y, tube on Z.
		outer := g.Size[0] + g.Size[1]
		return [3]float32{outer, outer, g.Size[1]}
	}
	return [3]float32{}
}

// Rest is the height to lift the geometry by so its lowest point touches the ground plane.
func (g Geometry) Rest() float32 {
	return g.Extent()[1]
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}
