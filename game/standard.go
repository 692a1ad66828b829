package game

import "fmt"

const StandardPatternSize = 5

// StandardRules is the base game: 5x5 patterns of none and influence.
type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

func (sr *StandardRules) Name() string {
	return "standard"
}

func (sr *StandardRules) PatternSize() int {
	return StandardPatternSize
}

func (sr *StandardRules) Allows(s Symbol) bool {
	return s == Empty || s == Influence
}

// VariantRules adds upgrade and devalue symbols and allows larger patterns.
type VariantRules struct {
	Size int
}

func NewVariantRules(size int) (*VariantRules, error) {
	if size < StandardPatternSize || size%2 == 0 {
		return nil, fmt.Errorf("%w: variant pattern size %d must be odd and at least %d", ErrInvalidRules, size, StandardPatternSize)
	}
	return &VariantRules{Size: size}, nil
}

func (vr *VariantRules) Name() string {
	return fmt.Sprintf("variant-%d", vr.Size)
}

func (vr *VariantRules) PatternSize() int {
	return vr.Size
}

func (vr *VariantRules) Allows(s Symbol) bool {
	switch s {
	case Empty, Influence, Upgrade, Devalue:
		return true
	}
	return false
}
