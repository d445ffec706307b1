package search

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderCrossover(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, n := range []int{1, 2, 3, 10, 31} {
		for range 50 {
			parent1 := rng.Perm(n)
			parent2 := rng.Perm(n)

			child1 := make([]int, n)
			child2 := make([]int, n)

			orderCrossover(parent1, parent2, child1, child2, rng)

			require.True(t, isPermutation(child1), "%v", child1)
			require.True(t, isPermutation(child2), "%v", child2)
		}
	}

	t.Run(
		"1. identical parents reproduce themselves",
		func(t *testing.T) {
			parent := []int{3, 1, 4, 0, 2}

			child1 := make([]int, 5)
			child2 := make([]int, 5)

			orderCrossover(parent, parent, child1, child2, rng)

			require.Equal(t, parent, child1)
			require.Equal(t, parent, child2)
		},
	)
}

func TestSwapMutation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for range 100 {
		ordering := rng.Perm(8)
		before := slices.Clone(ordering)

		swapMutation(ordering, rng)

		require.True(t, isPermutation(ordering))

		var changed int
		for ix := range ordering {
			if ordering[ix] != before[ix] {
				changed++
			}
		}

		require.Equal(t, 2, changed)
	}

	single := []int{0}
	swapMutation(single, rng)
	require.Equal(t, []int{0}, single)
}

func TestBinaryTournament(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	scores := []Objectives{
		{Makespan: 5, Dissatisfaction: 1},
		{Makespan: 9, Dissatisfaction: 9},
	}

	var winsDominating int

	// index 1 only wins when drawn twice, a quarter of the rounds
	for range 400 {
		if binaryTournament(scores, rng) == 0 {
			winsDominating++
		}
	}

	require.Greater(t, winsDominating, 250)
}
