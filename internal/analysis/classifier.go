package analysis

import (
	"math/rand"
	"sync"

	"grc-docengine/internal/catalog"
)

// Classifier decides how well a document covers one requirement. The engine
// runs without a content-understanding backend in the common case, so the
// default classifier is a declared placeholder policy; production deployments
// swap in a real extraction step while keeping the same contract: one status
// per requirement, in requirement order.
type Classifier interface {
	Classify(moduleType catalog.ModuleType, documentName, content, requirement string) Status
}

// randomClassifier draws uniformly in [0,1): >0.6 complete, >0.3 partial,
// else missing. The randomness stands in for a real model and is part of the
// documented behavior, not a bug.
type randomClassifier struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newRandomClassifier(seed int64) *randomClassifier {
	return &randomClassifier{rng: rand.New(rand.NewSource(seed))}
}

func (c *randomClassifier) Classify(catalog.ModuleType, string, string, string) Status {
	c.mu.Lock()
	v := c.rng.Float64()
	c.mu.Unlock()

	switch {
	case v > 0.6:
		return StatusComplete
	case v > 0.3:
		return StatusPartial
	default:
		return StatusMissing
	}
}

// FixedClassifier returns a predetermined status sequence, cycling when
// exhausted. Tests use it to make the score formula deterministic.
type FixedClassifier struct {
	Statuses []Status
	next     int
}

func (c *FixedClassifier) Classify(catalog.ModuleType, string, string, string) Status {
	if len(c.Statuses) == 0 {
		return StatusComplete
	}
	s := c.Statuses[c.next%len(c.Statuses)]
	c.next++
	return s
}
