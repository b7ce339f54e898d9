package sampler

import (
	"fmt"
	"math/rand"
	"time"

	"brightplay/internal/catalog"
)

// attemptFactor bounds the batch sampling loop at count*attemptFactor
// candidate draws. Small or heavily overlapping catalogs can run out of
// usable categories long before the requested count; the bound keeps that
// case a short result instead of a spin.
const attemptFactor = 20

// Sampler draws round descriptors from a catalog. All randomness flows
// through the one rand.Rand, so tests can pass a fixed seed and assert
// exact outcomes.
type Sampler struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
}

// New creates a sampler. A nil rng gets a time-seeded source.
func New(c *catalog.Catalog, rng *rand.Rand) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler{catalog: c, rng: rng}
}

// SampleUnique draws one round: wantCorrect members of some category in the
// dimension plus wantDistractor items that belong to other categories but
// never to the chosen one. Categories are tried in uniform shuffle order;
// any that cannot supply the requested counts are skipped. Returns ok=false
// when no category qualifies, which is an expected condition for sparse
// catalogs, not an error.
func (s *Sampler) SampleUnique(dim catalog.Dimension, kind Kind, wantCorrect, wantDistractor int) (*RoundDescriptor, bool) {
	return s.sample(dim, kind, wantCorrect, wantDistractor, nil)
}

// SampleMany draws up to count rounds, never using the same category twice
// within the batch. The result is shorter than count when the catalog is
// exhausted or the attempt bound is hit; callers must accept short pools.
func (s *Sampler) SampleMany(dim catalog.Dimension, kind Kind, count, wantCorrect, wantDistractor int) []*RoundDescriptor {
	rounds := make([]*RoundDescriptor, 0, count)
	used := make(map[string]bool)

	for attempts := 0; len(rounds) < count && attempts < count*attemptFactor; attempts++ {
		round, ok := s.sample(dim, kind, wantCorrect, wantDistractor, used)
		if !ok {
			// Exclusions only grow, so once nothing qualifies nothing will.
			break
		}
		used[round.CategoryKey] = true
		rounds = append(rounds, round)
	}

	return rounds
}

func (s *Sampler) sample(dim catalog.Dimension, kind Kind, wantCorrect, wantDistractor int, exclude map[string]bool) (*RoundDescriptor, bool) {
	if !dim.Valid() || !kind.Valid() || wantCorrect < 1 || wantDistractor < 0 {
		return nil, false
	}

	candidates := s.catalog.CategoryKeys(dim)
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, key := range candidates {
		if exclude[key] {
			continue
		}

		pool := s.catalog.ItemsFor(dim, key)
		if len(pool) < wantCorrect {
			continue
		}

		distractors := s.distractorCandidates(dim, key)
		if len(distractors) < wantDistractor {
			continue
		}

		round := &RoundDescriptor{
			Kind:           kind,
			Dimension:      dim,
			CategoryKey:    key,
			Prompt:         s.prompt(dim, key, kind),
			CorrectKeys:    s.draw(pool, wantCorrect),
			DistractorKeys: s.draw(distractors, wantDistractor),
		}
		return round, true
	}

	return nil, false
}

// distractorCandidates collects every item in the dimension's other
// categories that is not also a member of the target category. Excluding
// shared members is what keeps a round unambiguous: an item that is both
// "eaten" and drawn as a distractor for "eat" would have two right answers.
func (s *Sampler) distractorCandidates(dim catalog.Dimension, targetKey string) []string {
	seen := make(map[string]bool)
	var candidates []string

	for _, key := range s.catalog.CategoryKeys(dim) {
		if key == targetKey {
			continue
		}
		for _, item := range s.catalog.ItemsFor(dim, key) {
			if seen[item] || s.catalog.Contains(dim, targetKey, item) {
				continue
			}
			seen[item] = true
			candidates = append(candidates, item)
		}
	}

	return candidates
}

// draw picks n items uniformly without replacement.
func (s *Sampler) draw(pool []string, n int) []string {
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

// prompt builds the question text from the category's display name, phrased
// per dimension and adjusted for the round format.
func (s *Sampler) prompt(dim catalog.Dimension, categoryKey string, kind Kind) string {
	name, _ := s.catalog.CategoryName(dim, categoryKey)

	switch dim {
	case catalog.DimensionFunction:
		switch kind {
		case KindSelectAll:
			return fmt.Sprintf("Pick all the things you %s!", name)
		case KindOddOneOut:
			return fmt.Sprintf("Which one is not something you %s?", name)
		case KindDragClassify:
			return fmt.Sprintf("Sort them: things you %s and things you don't!", name)
		default:
			return fmt.Sprintf("Which one do you %s?", name)
		}
	case catalog.DimensionFeature:
		// Feature names are plural predicates ("are red", "have wheels").
		switch kind {
		case KindSelectAll:
			return fmt.Sprintf("Pick all the ones that %s!", name)
		case KindOddOneOut:
			return fmt.Sprintf("Which one does not belong with things that %s?", name)
		case KindDragClassify:
			return fmt.Sprintf("Sort them: which ones %s?", name)
		default:
			return fmt.Sprintf("Which of these %s?", name)
		}
	default: // class
		switch kind {
		case KindSelectAll:
			return fmt.Sprintf("Pick all the %s!", name)
		case KindOddOneOut:
			return fmt.Sprintf("Which one is not one of the %s?", name)
		case KindDragClassify:
			return fmt.Sprintf("Sort them: %s or not!", name)
		default:
			return fmt.Sprintf("Which one belongs with the %s?", name)
		}
	}
}
