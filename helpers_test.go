package scheduler

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// chainInstance is a two task chain served by one employee.
func chainInstance(t *testing.T) *Instance {
	t.Helper()

	instance, errCr := NewInstance(
		&ParamsNewInstance{
			Tasks: []Task{
				{
					ID:             0,
					Duration:       3,
					RequiredSkills: []float64{1},
				},
				{
					ID:             1,
					Duration:       2,
					Predecessors:   []TaskID{0},
					RequiredSkills: []float64{0, 1},
				},
			},
			Employees: []Employee{
				{
					ID:            0,
					Skills:        []float64{1, 1},
					AvailableTime: 10,
				},
			},
			Alpha:       []float64{1},
			LambdaOver:  1,
			LambdaOverq: 1,
		},
	)
	require.NoError(t, errCr)
	require.NotNil(t, instance)

	return instance
}

type paramsRandomInstance struct {
	NumberTasks     int
	NumberEmployees int
	NumberSkills    int

	Seed int64
}

// randomInstance builds an acyclic instance, predecessors always have a lower ID.
// The last employee masters every skill so each task has a qualified employee.
func randomInstance(t *testing.T, params *paramsRandomInstance) *Instance {
	t.Helper()

	rng := rand.New(rand.NewSource(params.Seed))

	tasks := make([]Task, params.NumberTasks)

	for ix := range tasks {
		var predecessors []TaskID

		for candidate := 0; candidate < ix; candidate++ {
			if rng.Intn(4) == 0 {
				predecessors = append(predecessors, TaskID(candidate))
			}
		}

		required := make([]float64, params.NumberSkills)
		for k := range required {
			if rng.Intn(2) == 0 {
				required[k] = float64(1 + rng.Intn(3))
			}
		}

		tasks[ix] = Task{
			ID:             TaskID(ix),
			Duration:       int64(1 + rng.Intn(9)),
			ReleaseDate:    int64(rng.Intn(12)),
			Predecessors:   predecessors,
			RequiredSkills: required,
		}
	}

	employees := make([]Employee, params.NumberEmployees)

	for ix := range employees {
		skills := make([]float64, params.NumberSkills)
		for k := range skills {
			skills[k] = float64(rng.Intn(5))

			if ix == params.NumberEmployees-1 {
				skills[k] = 5
			}
		}

		employees[ix] = Employee{
			ID:            EmployeeID(100 + ix),
			Skills:        skills,
			AvailableTime: int64(5 + rng.Intn(20)),
		}
	}

	alpha := make([]float64, params.NumberSkills)
	for k := range alpha {
		alpha[k] = 0.5 + rng.Float64()
	}

	instance, errCr := NewInstance(
		&ParamsNewInstance{
			Tasks:       tasks,
			Employees:   employees,
			Alpha:       alpha,
			LambdaOver:  2,
			LambdaOverq: 1,
		},
	)
	require.NoError(t, errCr)

	return instance
}

func randomOrdering(n int, rng *rand.Rand) []int {
	return rng.Perm(n)
}
