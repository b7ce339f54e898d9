package sampler

import "brightplay/internal/catalog"

// Kind is the closed set of question formats the mini-games present.
type Kind string

const (
	// KindMultipleChoice shows one target item among distractors.
	KindMultipleChoice Kind = "multiple-choice"
	// KindSelectAll asks the player to pick every item that fits.
	KindSelectAll Kind = "select-all"
	// KindOddOneOut mixes category members with one outsider to find.
	KindOddOneOut Kind = "odd-one-out"
	// KindDragClassify asks the player to sort items into "fits" / "doesn't".
	KindDragClassify Kind = "drag-classify"
)

// Valid reports whether k is a known round kind.
func (k Kind) Valid() bool {
	switch k {
	case KindMultipleChoice, KindSelectAll, KindOddOneOut, KindDragClassify:
		return true
	}
	return false
}

// RoundDescriptor is one question instance. It is immutable once created.
//
// CorrectKeys are members of the named category; DistractorKeys are
// guaranteed not to be, so no distractor can double as a correct answer.
type RoundDescriptor struct {
	Kind           Kind              `json:"kind"`
	Dimension      catalog.Dimension `json:"dimension"`
	CategoryKey    string            `json:"categoryKey"`
	Prompt         string            `json:"prompt"`
	CorrectKeys    []string          `json:"correctKeys"`
	DistractorKeys []string          `json:"distractorKeys"`
}
