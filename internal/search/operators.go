package search

import "math/rand"

// binaryTournament picks two random individuals and keeps the dominating one.
// Mutually non-dominated picks are resolved at random.
func binaryTournament(scores []Objectives, rng *rand.Rand) int {
	first := rng.Intn(len(scores))
	second := rng.Intn(len(scores))

	if scores[first].Dominates(scores[second]) {
		return first
	}

	if scores[second].Dominates(scores[first]) {
		return second
	}

	return ternary(rng.Intn(2) == 0, first, second)
}

// orderCrossover copies a random segment [a, b) of one parent and fills the
// remaining positions with the genes of the other parent, in its order
// starting after the segment. Both children remain permutations.
func orderCrossover(parent1, parent2, child1, child2 []int, rng *rand.Rand) {
	n := len(parent1)

	a := rng.Intn(n)
	b := rng.Intn(n)

	if a > b {
		a, b = b, a
	}

	if a == b {
		b = (a + 1) % n

		if a > b {
			a, b = b, a
		}
	}

	fillChild(parent1, parent2, child1, a, b)
	fillChild(parent2, parent1, child2, a, b)
}

func fillChild(donor, filler, child []int, a, b int) {
	n := len(donor)
	used := make([]bool, n)

	for ix := range child {
		child[ix] = -1
	}

	for ix := a; ix < b; ix++ {
		child[ix] = donor[ix]
		used[donor[ix]] = true
	}

	position := b % n

	for ix := range n {
		gene := filler[(b+ix)%n]
		if used[gene] {
			continue
		}

		for child[position] != -1 {
			position = (position + 1) % n
		}

		child[position] = gene
		used[gene] = true
	}
}

// swapMutation exchanges two distinct positions.
func swapMutation(ordering []int, rng *rand.Rand) {
	if len(ordering) < 2 {
		return
	}

	i := rng.Intn(len(ordering))
	j := rng.Intn(len(ordering) - 1)

	if j >= i {
		j++
	}

	ordering[i], ordering[j] = ordering[j], ordering[i]
}
