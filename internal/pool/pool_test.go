package pool

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/fractiz/internal/catalog"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestSampleSubset(t *testing.T) {
	easy := catalog.Default().Tier(catalog.TierEasy)
	rng := testRand()

	got := SampleSubset(easy, 5, rng)
	require.Len(t, got, 5)

	seen := map[string]bool{}
	for _, q := range got {
		assert.False(t, seen[q.ID], "duplicate %s", q.ID)
		seen[q.ID] = true
		assert.Equal(t, catalog.TierEasy, q.Tier())
	}

	assert.Len(t, SampleSubset(easy, 50, rng), len(easy))
	assert.Empty(t, SampleSubset(easy, -1, rng))
}

func TestSampleSubset_DoesNotReorderSource(t *testing.T) {
	easy := catalog.Default().Tier(catalog.TierEasy)
	first := easy[0].ID
	_ = SampleSubset(easy, 10, testRand())
	assert.Equal(t, first, easy[0].ID)
}

func TestInitializeThenDraw_DistinctFromWorkingSet(t *testing.T) {
	rng := testRand()
	s := Initialize(catalog.Default().Tier(catalog.TierEasy), catalog.TierEasy, 5, rng)
	require.Len(t, s.Working, 5)
	assert.Empty(t, s.Used)

	working := map[string]bool{}
	for _, q := range s.Working {
		working[q.ID] = true
	}

	drawn := map[string]bool{}
	for i := 0; i < 5; i++ {
		var q catalog.Question
		var out Outcome
		q, s, out = Draw(s, rng)
		require.True(t, out.OK)
		assert.False(t, out.Refilled, "draw %d refilled early", i)
		assert.True(t, working[q.ID], "%s not in working set", q.ID)
		assert.False(t, drawn[q.ID], "%s drawn twice", q.ID)
		drawn[q.ID] = true
	}
	assert.Len(t, drawn, 5)
	assert.Equal(t, 0, s.Remaining())
}

func TestDraw_IsPure(t *testing.T) {
	rng := testRand()
	s := Initialize(catalog.Default().Tier(catalog.TierHard), catalog.TierHard, 5, rng)

	_, next, _ := Draw(s, rng)
	assert.Empty(t, s.Used, "input state was mutated")
	assert.Len(t, next.Used, 1)
	assert.Equal(t, 5, s.Remaining())
	assert.Equal(t, 4, next.Remaining())
}

func TestDraw_RefillsWhenExhausted(t *testing.T) {
	rng := testRand()
	s := Initialize(catalog.Default().Tier(catalog.TierNormal), catalog.TierNormal, 2, rng)

	_, s, _ = Draw(s, rng)
	_, s, _ = Draw(s, rng)
	require.Equal(t, 0, s.Remaining())

	q, s, out := Draw(s, rng)
	assert.True(t, out.OK)
	assert.True(t, out.Refilled)
	assert.Equal(t, catalog.TierNormal, q.Tier())
	assert.Len(t, s.Working, 2)
	assert.Len(t, s.Used, 1)
}

func TestDraw_EmptySource(t *testing.T) {
	_, _, out := Draw(State{}, testRand())
	assert.False(t, out.OK)
}

func TestDraw_ZeroValueStateWithSourceRefills(t *testing.T) {
	s := State{Source: catalog.Default().Tier(catalog.TierEasy)}
	q, next, out := Draw(s, testRand())
	require.True(t, out.OK)
	assert.True(t, out.Refilled)
	assert.NotEmpty(t, q.ID)
	assert.Len(t, next.Working, DefaultWorkingSize)
}
