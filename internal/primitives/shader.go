package primitives

import rl "github.com/gen2brain/raylib-go/raylib"

// Lit shader: one directional light plus ambient, with a Blinn-Phong highlight whose size and
// strength follow the material's roughness and metalness.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec3 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float roughness;
uniform float metalness;
out vec4 finalColor;
void main() {
  vec3 base = colDiffuse.rgb;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = base * (1.0 - 0.5 * metalness) * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient * base * (1.0 - 0.5 * metalness);
  vec3 H = normalize(L + V);
  float power = mix(128.0, 4.0, roughness);
  float strength = mix(0.04, 1.0, metalness) * (1.0 - 0.5 * roughness);
  vec3 specTint = mix(vec3(1.0), base, metalness);
  float spec = pow(max(dot(N, H), 0.0), power) * strength;
  vec3 specular = specTint * lightColor * lightIntensity * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, colDiffuse.a);
}
`
)

// shaderLocs caches uniform locations so Draw doesn't look them up every frame.
type shaderLocs struct {
	viewPos, lightDir, ambient, lightColor, lightIntensity, roughness, metalness int32
}

func loadLitShader() (rl.Shader, shaderLocs) {
	shader := rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(shader) {
		return shader, shaderLocs{-1, -1, -1, -1, -1, -1, -1}
	}
	return shader, shaderLocs{
		viewPos:        rl.GetShaderLocation(shader, "viewPos"),
		lightDir:       rl.GetShaderLocation(shader, "lightDir"),
		ambient:        rl.GetShaderLocation(shader, "ambient"),
		lightColor:     rl.GetShaderLocation(shader, "lightColor"),
		lightIntensity: rl.GetShaderLocation(shader, "lightIntensity"),
		roughness:      rl.GetShaderLocation(shader, "roughness"),
		metalness:      rl.GetShaderLocation(shader, "metalness"),
	}
}

func setVec3(shader rl.Shader, loc int32, v [3]float32) {
	if loc < 0 {
		return
	}
	vals := []float32{v[0], v[1], v[2]}
	rl.SetShaderValueV(shader, loc, vals, rl.ShaderUniformVec3, 1)
}

func setFloat(shader rl.Shader, loc int32, v float32) {
	if loc < 0 {
		return
	}
	rl.SetShaderValue(shader, loc, []float32{v}, rl.ShaderUniformFloat)
}
