package game

import (
	"brightplay/internal/catalog"
	"brightplay/internal/sampler"
)

// Definition describes one mini-game: which question format it uses, which
// dimension it trains, and the shape of every round in a session.
type Definition struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Kind        sampler.Kind      `json:"kind"`
	Dimension   catalog.Dimension `json:"dimension"`
	Rounds      int               `json:"rounds"`
	Correct     int               `json:"correct"`
	Distractors int               `json:"distractors"`
}

// The ten games all run on the same engine; they differ only in round
// shape, dimension, and the presentation built on top (out of scope here).
var definitions = []Definition{
	{ID: "snack-snap", Title: "Snack Snap", Kind: sampler.KindMultipleChoice, Dimension: catalog.DimensionFunction, Rounds: 8, Correct: 1, Distractors: 3},
	{ID: "busy-hands", Title: "Busy Hands", Kind: sampler.KindSelectAll, Dimension: catalog.DimensionFunction, Rounds: 6, Correct: 3, Distractors: 3},
	{ID: "action-sort", Title: "Action Sort", Kind: sampler.KindDragClassify, Dimension: catalog.DimensionFunction, Rounds: 5, Correct: 3, Distractors: 3},
	{ID: "look-closer", Title: "Look Closer", Kind: sampler.KindMultipleChoice, Dimension: catalog.DimensionFeature, Rounds: 8, Correct: 1, Distractors: 3},
	{ID: "feature-hunt", Title: "Feature Hunt", Kind: sampler.KindSelectAll, Dimension: catalog.DimensionFeature, Rounds: 5, Correct: 2, Distractors: 3},
	{ID: "sneaky-stranger", Title: "Sneaky Stranger", Kind: sampler.KindOddOneOut, Dimension: catalog.DimensionFeature, Rounds: 5, Correct: 3, Distractors: 1},
	{ID: "odd-one-out", Title: "Odd One Out", Kind: sampler.KindOddOneOut, Dimension: catalog.DimensionClass, Rounds: 8, Correct: 3, Distractors: 1},
	{ID: "family-finder", Title: "Family Finder", Kind: sampler.KindMultipleChoice, Dimension: catalog.DimensionClass, Rounds: 8, Correct: 1, Distractors: 3},
	{ID: "group-grab", Title: "Group Grab", Kind: sampler.KindSelectAll, Dimension: catalog.DimensionClass, Rounds: 6, Correct: 3, Distractors: 3},
	{ID: "sorting-day", Title: "Sorting Day", Kind: sampler.KindDragClassify, Dimension: catalog.DimensionClass, Rounds: 5, Correct: 4, Distractors: 4},
}

// Games returns every game definition.
func Games() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup finds a game definition by id.
func Lookup(id string) (Definition, bool) {
	for _, def := range definitions {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}
