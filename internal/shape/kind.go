package shape

import "strings"

// Kind is the primitive selected by a shape keyword.
type Kind int

const (
	Unknown Kind = iota
	Box
	Sphere
	Torus
)

var kindNames = [...]string{
	Unknown: "unknown",
	Box:     "box",
	Sphere:  "sphere",
	Torus:   "torus",
}

// String returns the lowercase keyword for k ("unknown" for Unknown or out-of-range values).
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[Unknown]
	}
	return kindNames[k]
}

// ParseKind maps a keyword (any case) to its Kind. Anything else is Unknown.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "box":
		return Box
	case "sphere":
		return Sphere
	case "torus":
		return Torus
	}
	return Unknown
}

// Required is how many dimensions the kind reads: 3 for a box, 1 for a sphere, 2 for a torus.
func (k Kind) Required() int {
	switch k {
	case Box:
		return 3
	case Sphere:
		return 1
	case Torus:
		return 2
	}
	return 0
}

// MarshalText lets Kind appear by name in YAML files.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText accepts the keyword form written by MarshalText.
func (k *Kind) UnmarshalText(b []byte) error {
	*k = ParseKind(string(b))
	return nil
}
