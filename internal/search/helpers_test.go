package search

import (
	"math/rand"
	"testing"

	scheduler "github.com/TudorHulban/tasks-assignment"
	"github.com/stretchr/testify/require"
)

// testInstance has precedence only towards lower IDs and one employee
// covering every requirement, so every permutation decodes.
func testInstance(t *testing.T, numberTasks int, seed int64) *scheduler.Instance {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))

	tasks := make([]scheduler.Task, numberTasks)

	for ix := range tasks {
		var predecessors []scheduler.TaskID

		for candidate := range ix {
			if rng.Intn(5) == 0 {
				predecessors = append(predecessors, scheduler.TaskID(candidate))
			}
		}

		tasks[ix] = scheduler.Task{
			ID:           scheduler.TaskID(ix),
			Duration:     int64(1 + rng.Intn(6)),
			ReleaseDate:  int64(rng.Intn(8)),
			Predecessors: predecessors,
			RequiredSkills: []float64{
				float64(rng.Intn(3)),
				float64(rng.Intn(3)),
			},
		}
	}

	instance, errCr := scheduler.NewInstance(
		&scheduler.ParamsNewInstance{
			Tasks: tasks,
			Employees: []scheduler.Employee{
				{ID: 1, Skills: []float64{2, 1}, AvailableTime: 10},
				{ID: 2, Skills: []float64{1, 2}, AvailableTime: 10},
				{ID: 3, Skills: []float64{3, 3}, AvailableTime: 15},
			},
			Alpha:       []float64{1, 0.5},
			LambdaOver:  2,
			LambdaOverq: 1,
		},
	)
	require.NoError(t, errCr)

	return instance
}

func testEvaluator(t *testing.T, instance *scheduler.Instance) *Evaluator {
	t.Helper()

	evaluator, errCr := NewEvaluator(
		&ParamsNewEvaluator{
			Instance: instance,
			Workers:  4,
		},
	)
	require.NoError(t, errCr)

	return evaluator
}

func isPermutation(ordering []int) bool {
	seen := make([]bool, len(ordering))

	for _, index := range ordering {
		if index < 0 || index >= len(ordering) || seen[index] {
			return false
		}

		seen[index] = true
	}

	return true
}
