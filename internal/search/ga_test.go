package search

import (
	"context"
	"testing"

	scheduler "github.com/TudorHulban/tasks-assignment"
	"github.com/stretchr/testify/require"
)

func TestErrorsGA(t *testing.T) {
	evaluator := testEvaluator(t, testInstance(t, 6, 1))

	tests := []struct {
		name   string
		params *ParamsNewGA
	}{
		{
			name:   "1. nil params",
			params: nil,
		},
		{
			name: "2. no evaluator",
			params: &ParamsNewGA{
				Population:  10,
				Generations: 5,
			},
		},
		{
			name: "3. population too small",
			params: &ParamsNewGA{
				Evaluator:   evaluator,
				Population:  1,
				Generations: 5,
			},
		},
		{
			name: "4. negative generations",
			params: &ParamsNewGA{
				Evaluator:   evaluator,
				Population:  10,
				Generations: -1,
			},
		},
		{
			name: "5. crossover rate above one",
			params: &ParamsNewGA{
				Evaluator:     evaluator,
				Population:    10,
				Generations:   5,
				CrossoverRate: 1.5,
			},
		},
		{
			name: "6. negative mutation rate",
			params: &ParamsNewGA{
				Evaluator:    evaluator,
				Population:   10,
				Generations:  5,
				MutationRate: -0.1,
			},
		},
		{
			name: "7. initial ordering not a permutation",
			params: &ParamsNewGA{
				Evaluator:        evaluator,
				Population:       10,
				Generations:      5,
				InitialOrderings: [][]int{{0, 1, 2}},
			},
		},
		{
			name: "8. more initial orderings than population",
			params: &ParamsNewGA{
				Evaluator:   evaluator,
				Population:  2,
				Generations: 5,
				InitialOrderings: [][]int{
					{0, 1, 2, 3, 4, 5},
					{5, 4, 3, 2, 1, 0},
					{0, 1, 2, 3, 5, 4},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				ga, errCr := NewGA(tt.params)
				require.Error(t, errCr)
				require.Nil(t, ga)
			},
		)
	}
}

func newTestGA(t *testing.T, instance *scheduler.Instance, seed int64) *GA {
	t.Helper()

	ga, errCr := NewGA(
		&ParamsNewGA{
			Evaluator: testEvaluator(t, instance),

			InitialOrderings: [][]int{
				scheduler.BaselineOrdering(instance),
			},

			Population:    20,
			Generations:   15,
			CrossoverRate: 0.9,
			MutationRate:  0.2,

			Seed: seed,
		},
	)
	require.NoError(t, errCr)

	return ga
}

func TestGARun(t *testing.T) {
	instance := testInstance(t, 18, 4)

	baseline, errBaseline := scheduler.SolveBaseline(instance)
	require.NoError(t, errBaseline)

	baselineObjectives := objectivesOf(baseline)

	result, errRun := newTestGA(t, instance, 42).Run(context.Background())
	require.NoError(t, errRun)
	require.NotEmpty(t, result.Front)
	require.Equal(t, 15, result.Generations)
	require.Positive(t, result.Decodes)

	var coversBaseline bool

	for ix, member := range result.Front {
		require.True(t, isPermutation(member.Ordering))

		schedule, errDecode := scheduler.Decode(member.Ordering, instance)
		require.NoError(t, errDecode)
		require.Equal(t, objectivesOf(schedule), member.Objectives)

		for jx, other := range result.Front {
			if ix != jx {
				require.False(t, other.Objectives.Dominates(member.Objectives))
			}
		}

		if member.Objectives == baselineObjectives || member.Objectives.Dominates(baselineObjectives) {
			coversBaseline = true
		}

		if ix > 0 {
			require.GreaterOrEqual(t, member.Objectives.Makespan, result.Front[ix-1].Objectives.Makespan)
		}
	}

	require.True(t, coversBaseline)

	t.Run(
		"1. same seed same front",
		func(t *testing.T) {
			again, errAgain := newTestGA(t, instance, 42).Run(context.Background())
			require.NoError(t, errAgain)
			require.Equal(t, result.Front, again.Front)
		},
	)

	t.Run(
		"2. zero generations keeps the initial front",
		func(t *testing.T) {
			ga, errCr := NewGA(
				&ParamsNewGA{
					Evaluator: testEvaluator(t, instance),

					InitialOrderings: [][]int{
						scheduler.BaselineOrdering(instance),
					},

					Population: 4,
					Seed:       3,
				},
			)
			require.NoError(t, errCr)

			initialOnly, errRun := ga.Run(context.Background())
			require.NoError(t, errRun)
			require.Zero(t, initialOnly.Generations)
			require.NotEmpty(t, initialOnly.Front)
			require.LessOrEqual(t, initialOnly.Decodes, int64(4))

			var coversBaseline bool

			for _, member := range initialOnly.Front {
				if member.Objectives == baselineObjectives || member.Objectives.Dominates(baselineObjectives) {
					coversBaseline = true
				}
			}

			require.True(t, coversBaseline)
		},
	)

	t.Run(
		"3. cancelled context",
		func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, errCancelled := newTestGA(t, instance, 1).Run(ctx)
			require.ErrorIs(t, errCancelled, context.Canceled)
		},
	)
}
