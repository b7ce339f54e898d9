package game

import (
	"math/rand"
	"testing"

	"brightplay/internal/catalog"
	"brightplay/internal/sampler"
)

func TestRegistryShape(t *testing.T) {
	games := Games()
	if len(games) != 10 {
		t.Fatalf("expected 10 games, got %d", len(games))
	}

	seen := make(map[string]bool)
	kinds := make(map[sampler.Kind]bool)
	dims := make(map[catalog.Dimension]bool)

	for _, def := range games {
		if seen[def.ID] {
			t.Errorf("duplicate game id %s", def.ID)
		}
		seen[def.ID] = true
		kinds[def.Kind] = true
		dims[def.Dimension] = true

		if def.Title == "" {
			t.Errorf("game %s has no title", def.ID)
		}
		if !def.Kind.Valid() {
			t.Errorf("game %s has invalid kind %s", def.ID, def.Kind)
		}
		if !def.Dimension.Valid() {
			t.Errorf("game %s has invalid dimension %s", def.ID, def.Dimension)
		}
		if def.Rounds < 1 || def.Correct < 1 || def.Distractors < 0 {
			t.Errorf("game %s has a bad shape: %+v", def.ID, def)
		}
	}

	// The set of games covers every question format and every dimension.
	for _, kind := range []sampler.Kind{sampler.KindMultipleChoice, sampler.KindSelectAll, sampler.KindOddOneOut, sampler.KindDragClassify} {
		if !kinds[kind] {
			t.Errorf("no game uses kind %s", kind)
		}
	}
	for _, dim := range catalog.Dimensions() {
		if !dims[dim] {
			t.Errorf("no game trains dimension %s", dim)
		}
	}
}

func TestRegistrySatisfiableAgainstDefaultCatalog(t *testing.T) {
	// Every shipped game must be able to fill a full session from the
	// built-in catalog; a short pool here means the tables shrank too far.
	c := catalog.Default()

	for _, def := range Games() {
		t.Run(def.ID, func(t *testing.T) {
			for seed := int64(0); seed < 10; seed++ {
				s := sampler.New(c, rand.New(rand.NewSource(seed)))
				pool := s.SampleMany(def.Dimension, def.Kind, def.Rounds, def.Correct, def.Distractors)
				if len(pool) != def.Rounds {
					t.Fatalf("seed %d: pool of %d rounds, want %d", seed, len(pool), def.Rounds)
				}
			}
		})
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("snack-snap"); !ok {
		t.Error("snack-snap should exist")
	}
	if _, ok := Lookup("no-such-game"); ok {
		t.Error("unknown id should not resolve")
	}
}
