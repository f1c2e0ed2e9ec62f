package geom

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed paths.yaml
var defaultPathsYAML []byte

// pathFile mirrors the external polyline data format: a list of paths,
// each a flat list of floats in consecutive x,y,z triples.
type pathFile struct {
	Paths [][]float64 `yaml:"paths"`
}

// LoadPaths parses polyline data in the external flat-triple format and
// returns the curves it defines. Degenerate paths contribute nothing.
func LoadPaths(data []byte) ([]*Curve, error) {
	var pf pathFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing path data: %w", err)
	}
	return CurvesFromFlat(pf.Paths), nil
}

// DefaultPaths returns the embedded anatomical flow paths.
func DefaultPaths() []*Curve {
	curves, err := LoadPaths(defaultPathsYAML)
	if err != nil {
		panic(fmt.Sprintf("geom: embedded path data invalid: %v", err))
	}
	return curves
}
