package scheduler

import (
	"cmp"
	"slices"
)

// BaselineOrdering sorts task positions by release date, then duration,
// keeping the original position order on ties.
func BaselineOrdering(instance *Instance) []int {
	result := make([]int, len(instance.tasks))

	for ix := range result {
		result[ix] = ix
	}

	slices.SortStableFunc(
		result,
		func(a, b int) int {
			taskA := &instance.tasks[a]
			taskB := &instance.tasks[b]

			if taskA.ReleaseDate != taskB.ReleaseDate {
				return cmp.Compare(taskA.ReleaseDate, taskB.ReleaseDate)
			}

			return cmp.Compare(taskA.Duration, taskB.Duration)
		},
	)

	return result
}

// SolveBaseline decodes the baseline ordering, no search involved.
func SolveBaseline(instance *Instance) (*Schedule, error) {
	if instance == nil {
		return Decode(nil, nil)
	}

	return Decode(
		BaselineOrdering(instance),
		instance,
	)
}
