// Package leetcode serves a fixed catalog of interview practice problems
// and draws random practice sets from it.
package leetcode

import (
	"math/rand"
	"strings"
	"sync"
)

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

type Problem struct {
	ID         int        `json:"id"`
	Title      string     `json:"title"`
	Difficulty Difficulty `json:"difficulty"`
	Acceptance float64    `json:"acceptance"`
	URL        string     `json:"url"`
}

// Catalog draws from a fixed problem list. The rand source is injectable
// so draws are reproducible in tests. *rand.Rand is not safe for
// concurrent use, so mu serializes every draw.
type Catalog struct {
	problems []Problem
	mu       sync.Mutex
	rng      *rand.Rand
}

func NewCatalog(rng *rand.Rand) *Catalog {
	return &Catalog{problems: problems, rng: rng}
}

// All returns the catalog, optionally filtered by difficulty
// (case-insensitive; empty means no filter).
func (c *Catalog) All(difficulty string) []Problem {
	if difficulty == "" {
		out := make([]Problem, len(c.problems))
		copy(out, c.problems)
		return out
	}
	out := []Problem{}
	for _, p := range c.problems {
		if strings.EqualFold(string(p.Difficulty), difficulty) {
			out = append(out, p)
		}
	}
	return out
}

// Random draws n distinct problems uniformly, optionally restricted to one
// difficulty. Fewer than n candidates returns them all, shuffled.
func (c *Catalog) Random(n int, difficulty string) []Problem {
	pool := c.All(difficulty)
	if n < 1 {
		n = 1
	}

	shuffle := func(i, j int) { pool[i], pool[j] = pool[j], pool[i] }
	c.mu.Lock()
	if c.rng != nil {
		c.rng.Shuffle(len(pool), shuffle)
	} else {
		rand.Shuffle(len(pool), shuffle)
	}
	c.mu.Unlock()

	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}
