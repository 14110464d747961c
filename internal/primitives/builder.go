package primitives

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"text2obj/internal/shape"
)

// minSegments is the smallest ring/slice count raylib generates a mesh for.
const minSegments = 3

// Lighting is the light rig applied to every lit draw. Colors are premultiplied by intensity
// except LightColor, which is scaled by LightIntensity in the shader.
type Lighting struct {
	Ambient        [3]float32
	LightDir       [3]float32 // direction to the light, normalized
	LightColor     [3]float32
	LightIntensity float32
}

// NewLighting builds a Lighting from an ambient color/intensity and a directional light shining
// from position toward the origin.
func NewLighting(ambient shape.Color, ambientIntensity float32, light shape.Color, lightIntensity float32, position [3]float32) Lighting {
	return Lighting{
		Ambient:        scaleColor(ambient, ambientIntensity),
		LightDir:       normalize(position),
		LightColor:     scaleColor(light, 1),
		LightIntensity: lightIntensity,
	}
}

func scaleColor(c shape.Color, k float32) [3]float32 {
	return [3]float32{float32(c.R) / 255 * k, float32(c.G) / 255 * k, float32(c.B) / 255 * k}
}

func normalize(v [3]float32) [3]float32 {
	l := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l == 0 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}

// Object is one built primitive. An Object for an Unknown geometry holds no mesh and draws nothing.
type Object struct {
	geom    shape.Geometry
	mesh    rl.Mesh
	hasMesh bool

	// data backs mesh's vertex pointers for meshes generated in Go.
	data shape.MeshData

	Position [3]float32
}

// Visible reports whether drawing the object produces anything.
func (o *Object) Visible() bool {
	return o != nil && o.hasMesh
}

// Builder turns geometries into GPU meshes and draws them with one shared lit material.
// The shader and material are created on first Build so GPU resources are allocated after the
// window/OpenGL context exists.
type Builder struct {
	mtl      rl.Material
	locs     shaderLocs
	ready    bool
	viewPos  [3]float32
	lighting Lighting
}

// NewBuilder returns a builder lit from above-right until SetLighting is called.
func NewBuilder() *Builder {
	return &Builder{
		lighting: Lighting{
			Ambient:        [3]float32{0.2, 0.2, 0.2},
			LightDir:       normalize([3]float32{0.5, 1, 0.5}),
			LightColor:     [3]float32{1, 1, 1},
			LightIntensity: 1,
		},
	}
}

// SetLighting replaces the light rig.
func (b *Builder) SetLighting(l Lighting) {
	b.lighting = l
}

// SetView sets the camera position for this frame's highlights. Call once per frame before Draw.
func (b *Builder) SetView(viewPos [3]float32) {
	b.viewPos = viewPos
}

func (b *Builder) ensureMaterial() {
	if b.ready {
		return
	}
	b.mtl = rl.LoadMaterialDefault()
	shader, locs := loadLitShader()
	if rl.IsShaderValid(shader) {
		b.mtl.Shader = shader
	}
	b.locs = locs
	b.ready = true
}

// Build generates the mesh for g. Unknown geometry yields an empty placeholder without touching the GPU.
func (b *Builder) Build(g shape.Geometry) *Object {
	o := &Object{geom: g}
	if !g.Visible() {
		return o
	}
	b.ensureMaterial()
	segs := max(g.Segments, minSegments)
	switch g.Kind {
	case shape.Box:
		o.mesh = rl.GenMeshCube(g.Size[0], g.Size[1], g.Size[2])
	case shape.Sphere:
		o.mesh = rl.GenMeshSphere(g.Size[0], segs, segs)
	case shape.Torus:
		o.data = shape.TorusMesh(g.Size[0], g.Size[1], segs, segs)
		o.mesh = upload(o.data)
	}
	o.hasMesh = o.mesh.VertexCount > 0
	return o
}

// upload sends Go-generated vertex data to the GPU. The returned mesh points into data's slices,
// so the caller must hold on to data for as long as the mesh lives.
func upload(data shape.MeshData) rl.Mesh {
	var mesh rl.Mesh
	if data.VertexCount() == 0 {
		return mesh
	}
	mesh.VertexCount = int32(data.VertexCount())
	mesh.TriangleCount = int32(data.TriangleCount())
	mesh.Vertices = &data.Vertices[0]
	mesh.Normals = &data.Normals[0]
	mesh.Texcoords = &data.Texcoords[0]
	mesh.Indices = &data.Indices[0]
	rl.UploadMesh(&mesh, false)
	return mesh
}

// Draw draws o with its color and material. Must be called between BeginMode3D and EndMode3D.
func (b *Builder) Draw(o *Object) {
	if !o.Visible() || !b.ready {
		return
	}
	shader := b.mtl.Shader
	if rl.IsShaderValid(shader) {
		setVec3(shader, b.locs.viewPos, b.viewPos)
		setVec3(shader, b.locs.lightDir, b.lighting.LightDir)
		setVec3(shader, b.locs.ambient, b.lighting.Ambient)
		setVec3(shader, b.locs.lightColor, b.lighting.LightColor)
		setFloat(shader, b.locs.lightIntensity, b.lighting.LightIntensity)
		setFloat(shader, b.locs.roughness, o.geom.Roughness)
		setFloat(shader, b.locs.metalness, o.geom.Metalness)
	}
	if albedo := b.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		c := o.geom.Color
		albedo.Color = rl.NewColor(c[0], c[1], c[2], c[3])
	}
	transform := rl.MatrixTranslate(o.Position[0], o.Position[1], o.Position[2])
	rl.DrawMesh(o.mesh, b.mtl, transform)
}

// Release frees o's GPU mesh. The object draws nothing afterwards.
func (b *Builder) Release(o *Object) {
	if o == nil || !o.hasMesh {
		return
	}
	rl.UnloadMesh(&o.mesh)
	o.hasMesh = false
	o.data = shape.MeshData{}
}

// Unload frees the shared material and shader. Call before the window closes.
func (b *Builder) Unload() {
	if !b.ready {
		return
	}
	rl.UnloadMaterial(b.mtl)
	b.ready = false
}
