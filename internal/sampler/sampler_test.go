package sampler

import (
	"math/rand"
	"testing"

	"brightplay/internal/catalog"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// mealCatalog has two disjoint function categories, mirroring the simplest
// real catalog shape: "eat" with four members, "drink" with two.
func mealCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		map[string]string{
			"cookies": "Cookies", "chips": "Chips", "fries": "Fries",
			"apple": "Apple", "milk": "Milk", "tea": "Tea",
		},
		map[catalog.Dimension][]catalog.Category{
			catalog.DimensionFunction: {
				{Key: "eat", Name: "eat", Members: []string{"cookies", "chips", "fries", "apple"}},
				{Key: "drink", Name: "drink", Members: []string{"milk", "tea"}},
			},
		},
	)
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}
	return c
}

func TestSampleUniqueMealScenario(t *testing.T) {
	c := mealCatalog(t)
	eatMembers := map[string]bool{"cookies": true, "chips": true, "fries": true, "apple": true}
	drinkMembers := map[string]bool{"milk": true, "tea": true}

	// Either category can satisfy 2 correct + 2 distractors. Run many seeds
	// and check the invariants for whichever category was drawn.
	for seed := int64(0); seed < 50; seed++ {
		s := New(c, rand.New(rand.NewSource(seed)))
		round, ok := s.SampleUnique(catalog.DimensionFunction, KindSelectAll, 2, 2)
		if !ok {
			t.Fatalf("seed %d: expected a round", seed)
		}

		if len(round.CorrectKeys) != 2 || len(round.DistractorKeys) != 2 {
			t.Fatalf("seed %d: got %d correct / %d distractors", seed,
				len(round.CorrectKeys), len(round.DistractorKeys))
		}

		switch round.CategoryKey {
		case "eat":
			for _, key := range round.CorrectKeys {
				if !eatMembers[key] {
					t.Errorf("seed %d: correct key %s not an eat member", seed, key)
				}
			}
			for _, key := range round.DistractorKeys {
				if !drinkMembers[key] {
					t.Errorf("seed %d: distractor %s should come from drink", seed, key)
				}
				if eatMembers[key] {
					t.Errorf("seed %d: distractor %s is also eaten", seed, key)
				}
			}
		case "drink":
			for _, key := range round.CorrectKeys {
				if !drinkMembers[key] {
					t.Errorf("seed %d: correct key %s not a drink member", seed, key)
				}
			}
			for _, key := range round.DistractorKeys {
				if !eatMembers[key] {
					t.Errorf("seed %d: distractor %s should come from eat", seed, key)
				}
			}
		default:
			t.Fatalf("seed %d: unexpected category %s", seed, round.CategoryKey)
		}
	}
}

func TestSampleUniqueNonOverlapInvariant(t *testing.T) {
	c := catalog.Default()
	s := New(c, testRand())

	shapes := []struct{ correct, distractors int }{
		{1, 3}, {2, 2}, {3, 3}, {4, 4}, {3, 1},
	}

	for _, dim := range catalog.Dimensions() {
		for _, shape := range shapes {
			for i := 0; i < 40; i++ {
				round, ok := s.SampleUnique(dim, KindMultipleChoice, shape.correct, shape.distractors)
				if !ok {
					t.Fatalf("%s %+v: expected a round from the default catalog", dim, shape)
				}

				correctSet := make(map[string]bool)
				for _, key := range round.CorrectKeys {
					if correctSet[key] {
						t.Errorf("%s: duplicate correct key %s", dim, key)
					}
					correctSet[key] = true
					if !c.Contains(dim, round.CategoryKey, key) {
						t.Errorf("%s: correct key %s not in category %s", dim, key, round.CategoryKey)
					}
				}

				seen := make(map[string]bool)
				for _, key := range round.DistractorKeys {
					if correctSet[key] {
						t.Errorf("%s: key %s is both correct and distractor", dim, key)
					}
					if seen[key] {
						t.Errorf("%s: duplicate distractor %s", dim, key)
					}
					seen[key] = true
					if c.Contains(dim, round.CategoryKey, key) {
						t.Errorf("%s: distractor %s belongs to target category %s",
							dim, key, round.CategoryKey)
					}
				}
			}
		}
	}
}

func TestSampleUniqueExhaustion(t *testing.T) {
	c := mealCatalog(t)
	s := New(c, testRand())

	// No function category has ten members.
	if _, ok := s.SampleUnique(catalog.DimensionFunction, KindSelectAll, 10, 1); ok {
		t.Error("expected no round for an unsatisfiable correct count")
	}

	// Distractor pools top out at four (eat as target leaves milk+tea;
	// drink as target leaves the four eat items).
	if _, ok := s.SampleUnique(catalog.DimensionFunction, KindSelectAll, 1, 5); ok {
		t.Error("expected no round for an unsatisfiable distractor count")
	}

	// Unknown dimension behaves like an empty catalog.
	if _, ok := s.SampleUnique(catalog.Dimension("color"), KindMultipleChoice, 1, 1); ok {
		t.Error("expected no round for an unknown dimension")
	}
}

func TestSampleUniqueRejectsBadShape(t *testing.T) {
	s := New(mealCatalog(t), testRand())

	if _, ok := s.SampleUnique(catalog.DimensionFunction, Kind("essay"), 1, 1); ok {
		t.Error("unknown kind should not sample")
	}
	if _, ok := s.SampleUnique(catalog.DimensionFunction, KindMultipleChoice, 0, 1); ok {
		t.Error("zero correct should not sample")
	}
	if _, ok := s.SampleUnique(catalog.DimensionFunction, KindMultipleChoice, 1, -1); ok {
		t.Error("negative distractors should not sample")
	}
}

func TestSampleManyBatchUniqueness(t *testing.T) {
	c := catalog.Default()

	for seed := int64(0); seed < 20; seed++ {
		s := New(c, rand.New(rand.NewSource(seed)))
		rounds := s.SampleMany(catalog.DimensionClass, KindMultipleChoice, 8, 1, 3)
		if len(rounds) == 0 {
			t.Fatalf("seed %d: empty batch", seed)
		}

		used := make(map[string]bool)
		for _, round := range rounds {
			if used[round.CategoryKey] {
				t.Errorf("seed %d: category %s sampled twice in one batch", seed, round.CategoryKey)
			}
			used[round.CategoryKey] = true
		}
	}
}

func TestSampleManyShortPoolOnExhaustion(t *testing.T) {
	c := mealCatalog(t)
	s := New(c, testRand())

	// Two categories exist, so a request for five rounds with per-batch
	// category uniqueness caps out at two.
	rounds := s.SampleMany(catalog.DimensionFunction, KindMultipleChoice, 5, 1, 2)
	if len(rounds) != 2 {
		t.Fatalf("got %d rounds, want 2", len(rounds))
	}

	// A shape only one category satisfies yields a single round.
	rounds = s.SampleMany(catalog.DimensionFunction, KindSelectAll, 5, 3, 2)
	if len(rounds) != 1 {
		t.Fatalf("got %d rounds, want 1", len(rounds))
	}
	if rounds[0].CategoryKey != "eat" {
		t.Errorf("got category %s, want eat", rounds[0].CategoryKey)
	}

	// Fully unsatisfiable: empty, and the attempt guard keeps this bounded.
	rounds = s.SampleMany(catalog.DimensionFunction, KindSelectAll, 5, 20, 2)
	if len(rounds) != 0 {
		t.Fatalf("got %d rounds, want 0", len(rounds))
	}
}

func TestSampleUniqueDeterministicWithSeed(t *testing.T) {
	c := catalog.Default()

	a := New(c, rand.New(rand.NewSource(7)))
	b := New(c, rand.New(rand.NewSource(7)))

	for i := 0; i < 10; i++ {
		ra, okA := a.SampleUnique(catalog.DimensionFunction, KindMultipleChoice, 1, 3)
		rb, okB := b.SampleUnique(catalog.DimensionFunction, KindMultipleChoice, 1, 3)
		if okA != okB {
			t.Fatal("seeded samplers diverged on ok")
		}
		if ra.CategoryKey != rb.CategoryKey {
			t.Fatalf("seeded samplers diverged: %s vs %s", ra.CategoryKey, rb.CategoryKey)
		}
		for j := range ra.CorrectKeys {
			if ra.CorrectKeys[j] != rb.CorrectKeys[j] {
				t.Fatal("seeded samplers diverged on correct keys")
			}
		}
	}
}

func TestPrompts(t *testing.T) {
	c := catalog.Default()
	s := New(c, testRand())

	tests := []struct {
		dim  catalog.Dimension
		kind Kind
	}{
		{catalog.DimensionFunction, KindMultipleChoice},
		{catalog.DimensionFunction, KindSelectAll},
		{catalog.DimensionFeature, KindOddOneOut},
		{catalog.DimensionFeature, KindDragClassify},
		{catalog.DimensionClass, KindSelectAll},
		{catalog.DimensionClass, KindMultipleChoice},
	}

	for _, tt := range tests {
		round, ok := s.SampleUnique(tt.dim, tt.kind, 1, 1)
		if !ok {
			t.Fatalf("%s/%s: expected a round", tt.dim, tt.kind)
		}
		if round.Prompt == "" {
			t.Errorf("%s/%s: empty prompt", tt.dim, tt.kind)
		}
		name, _ := c.CategoryName(tt.dim, round.CategoryKey)
		if name == "" {
			t.Fatalf("%s: category %s missing name", tt.dim, round.CategoryKey)
		}
	}
}
