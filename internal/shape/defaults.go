package shape

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultsDir is where primitive defaults live, relative to the working directory.
const DefaultsDir = "assets/primitives"

const (
	defaultSegments  = 32
	defaultRoughness = float32(0.8)
	defaultMetalness = float32(0.8)
)

// Def is the YAML definition of a primitive's mesh resolution and material
// (e.g. assets/primitives/sphere.yaml). Zero fields keep the built-in value.
type Def struct {
	Type      Kind    `yaml:"type"`
	Segments  int     `yaml:"segments,omitempty"`
	Roughness float32 `yaml:"roughness,omitempty"`
	Metalness float32 `yaml:"metalness,omitempty"`
}

// Defaults maps each kind to its Def.
type Defaults map[Kind]Def

// BuiltinDefaults returns the defaults used when no YAML overrides a kind.
func BuiltinDefaults() Defaults {
	d := make(Defaults, 3)
	for _, k := range []Kind{Box, Sphere, Torus} {
		d[k] = Def{Type: k, Segments: defaultSegments, Roughness: defaultRoughness, Metalness: defaultMetalness}
	}
	return d
}

// Def returns the definition for k, falling back to built-in values for anything unset.
func (d Defaults) Def(k Kind) Def {
	out := Def{Type: k, Segments: defaultSegments, Roughness: defaultRoughness, Metalness: defaultMetalness}
	v, ok := d[k]
	if !ok {
		return out
	}
	if v.Segments > 0 {
		out.Segments = v.Segments
	}
	if v.Roughness > 0 {
		out.Roughness = v.Roughness
	}
	if v.Metalness > 0 {
		out.Metalness = v.Metalness
	}
	return out
}

// LoadDefaults reads every *.yaml / *.yml file in dir on top of BuiltinDefaults.
// A missing dir is not an error. Files that fail to parse or name no known type are skipped and
// reported in the returned error; the defaults that did load are still returned.
func LoadDefaults(dir string) (Defaults, error) {
	defs := BuiltinDefaults()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return defs, nil
		}
		return defs, fmt.Errorf("primitive defaults: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		var def Def
		if err := yaml.Unmarshal(data, &def); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		if def.Type == Unknown {
			errs = append(errs, fmt.Errorf("%s: unknown primitive type", name))
			continue
		}
		defs[def.Type] = def
	}
	if len(errs) > 0 {
		return defs, fmt.Errorf("primitive defaults: %w", errors.Join(errs...))
	}
	return defs, nil
}
