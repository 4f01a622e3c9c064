package tree

import (
	"errors"
	"fmt"
	"strings"
)

// Species identifies one of the built-in branching recipes. The set is
// closed: presets are looked up by value and never mutated.
type Species uint8

const (
	Classic Species = iota
	Asymmetric
	Bushy
	Willow
	Oak
	Pine
	speciesCount
)

// Params is one immutable branching recipe.
type Params struct {
	AngleLeft       float64 // degrees off the parent heading
	AngleRight      float64
	LengthFactor    float64 // child length = parent length × factor
	ThicknessFactor float64 // stroke width scales with remaining depth
	Branches        int     // children per node; 2 uses the left/right angles
	DroopFactor     float64 // >1 bends branches downward near the crown
	MinLength       float64 // recursion floor in pixels
}

var presets = [speciesCount]Params{
	Classic:    {AngleLeft: 25, AngleRight: 25, LengthFactor: 0.7, ThicknessFactor: 0.8, Branches: 2, DroopFactor: 1, MinLength: 3},
	Asymmetric: {AngleLeft: 30, AngleRight: 20, LengthFactor: 0.75, ThicknessFactor: 0.9, Branches: 2, DroopFactor: 1, MinLength: 2.5},
	Bushy:      {AngleLeft: 20, AngleRight: 20, LengthFactor: 0.6, ThicknessFactor: 0.7, Branches: 3, DroopFactor: 1, MinLength: 2},
	Willow:     {AngleLeft: 15, AngleRight: 15, LengthFactor: 0.8, ThicknessFactor: 0.9, Branches: 2, DroopFactor: 1.5, MinLength: 4},
	Oak:        {AngleLeft: 35, AngleRight: 35, LengthFactor: 0.65, ThicknessFactor: 1.2, Branches: 2, DroopFactor: 1, MinLength: 3.5},
	Pine:       {AngleLeft: 15, AngleRight: 15, LengthFactor: 0.8, ThicknessFactor: 0.6, Branches: 2, DroopFactor: 1, MinLength: 2},
}

var speciesNames = [speciesCount]string{"classic", "asymmetric", "bushy", "willow", "oak", "pine"}

// ErrUnknownSpecies rejects names outside the species enum.
var ErrUnknownSpecies = errors.New("tree: unknown species")

// Preset returns the parameter record for a species. Out-of-range
// values fall back to the classic recipe.
func (s Species) Preset() Params {
	if s >= speciesCount {
		return presets[Classic]
	}
	return presets[s]
}

func (s Species) String() string {
	if s >= speciesCount {
		return fmt.Sprintf("species(%d)", uint8(s))
	}
	return speciesNames[s]
}

// ParseSpecies resolves a case-insensitive species name.
func ParseSpecies(name string) (Species, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range speciesNames {
		if s == n {
			return Species(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSpecies, name)
}

// Next cycles to the following species, wrapping at the end.
func (s Species) Next() Species {
	return (s + 1) % speciesCount
}

// Season selects a seasonal styling.
type Season uint8

const (
	Summer Season = iota
	Spring
	Autumn
	Winter
	seasonCount
)

var seasonNames = [seasonCount]string{"summer", "spring", "autumn", "winter"}

func (s Season) String() string {
	if s >= seasonCount {
		return fmt.Sprintf("season(%d)", uint8(s))
	}
	return seasonNames[s]
}

// ParseSeason resolves a case-insensitive season name.
func ParseSeason(name string) (Season, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range seasonNames {
		if s == n {
			return Season(i), nil
		}
	}
	return 0, fmt.Errorf("tree: unknown season %q", name)
}

// Next cycles to the following season, wrapping at the end.
func (s Season) Next() Season {
	return (s + 1) % seasonCount
}
