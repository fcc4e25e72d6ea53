package leetcode

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShape(t *testing.T) {
	c := NewCatalog(rand.New(rand.NewSource(1)))

	assert.Len(t, c.All(""), 90)
	assert.Len(t, c.All("Easy"), 30)
	assert.Len(t, c.All("Medium"), 40)
	assert.Len(t, c.All("Hard"), 20)
	assert.Len(t, c.All("easy"), 30, "difficulty filter is case-insensitive")

	for _, p := range c.All("") {
		assert.NotZero(t, p.ID)
		assert.NotEmpty(t, p.Title)
		assert.Contains(t, p.URL, "https://leetcode.com/problems/")
		assert.Greater(t, p.Acceptance, 0.0)
	}
}

func TestRandomDrawsDistinct(t *testing.T) {
	c := NewCatalog(rand.New(rand.NewSource(42)))

	got := c.Random(3, "")
	require.Len(t, got, 3)
	seen := map[int]bool{}
	for _, p := range got {
		assert.False(t, seen[p.ID], "draws must be distinct")
		seen[p.ID] = true
	}
}

func TestRandomRespectsDifficulty(t *testing.T) {
	c := NewCatalog(rand.New(rand.NewSource(7)))

	for _, p := range c.Random(5, "Hard") {
		assert.Equal(t, Hard, p.Difficulty)
	}
}

func TestRandomClampsToPoolSize(t *testing.T) {
	c := NewCatalog(rand.New(rand.NewSource(7)))

	assert.Len(t, c.Random(500, "Hard"), 20)
	assert.Len(t, c.Random(0, ""), 1, "non-positive count draws one")
}

func TestRandomDeterministicWithSeed(t *testing.T) {
	a := NewCatalog(rand.New(rand.NewSource(99))).Random(3, "")
	b := NewCatalog(rand.New(rand.NewSource(99))).Random(3, "")
	assert.Equal(t, a, b)
}

// One catalog serves every HTTP request, so concurrent draws must be safe.
func TestRandomConcurrentDraws(t *testing.T) {
	c := NewCatalog(rand.New(rand.NewSource(7)))

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				assert.Len(t, c.Random(3, ""), 3)
			}
		}()
	}
	wg.Wait()
}

func TestHTTPList(t *testing.T) {
	h := NewHandler(NewCatalog(rand.New(rand.NewSource(1))))

	req := httptest.NewRequest(http.MethodGet, "/api/leetcode/problems?difficulty=Easy", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Problems []Problem `json:"problems"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Problems, 30)
}

// The query parameter is folded the same way the catalog filter is.
func TestHTTPListLowercaseDifficulty(t *testing.T) {
	h := NewHandler(NewCatalog(rand.New(rand.NewSource(1))))

	req := httptest.NewRequest(http.MethodGet, "/api/leetcode/problems?difficulty=easy", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Problems []Problem `json:"problems"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Problems, 30)
}

func TestHTTPRandomDefaults(t *testing.T) {
	h := NewHandler(NewCatalog(rand.New(rand.NewSource(1))))

	req := httptest.NewRequest(http.MethodGet, "/api/leetcode/random", nil)
	rec := httptest.NewRecorder()
	h.Random(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Problems []Problem `json:"problems"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Problems, 3)
}

func TestHTTPRejectsBadInput(t *testing.T) {
	h := NewHandler(NewCatalog(rand.New(rand.NewSource(1))))

	req := httptest.NewRequest(http.MethodGet, "/api/leetcode/random?count=zero", nil)
	rec := httptest.NewRecorder()
	h.Random(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/leetcode/problems?difficulty=Impossible", nil)
	rec = httptest.NewRecorder()
	h.List(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
