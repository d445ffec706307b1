package search

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"slices"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	scheduler "github.com/TudorHulban/tasks-assignment"
	"github.com/asaskevich/govalidator"
)

type GA struct {
	evaluator *Evaluator
	logger    *slog.Logger
	rng       *rand.Rand

	initial [][]int

	population    int
	generations   int
	crossoverRate float64
	mutationRate  float64
}

type ParamsNewGA struct {
	Evaluator *Evaluator   `valid:"required"`
	Logger    *slog.Logger // optional, discards when nil

	// InitialOrderings seed the first population, e.g. the baseline ordering.
	// The rest is filled with random permutations.
	InitialOrderings [][]int

	Population int `valid:"required"`

	// Generations may be zero, the front then comes from the initial population.
	Generations int

	CrossoverRate float64
	MutationRate  float64

	Seed int64
}

func (params *ParamsNewGA) IsValid() error {
	if params == nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewGA",
			Issue: goerrors.ErrNilInput{
				InputName: "params",
			},
		}
	}

	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return goerrors.ErrServiceValidation{
			ServiceName: "Search",
			Caller:      "NewGA",
			Issue:       errValidation,
		}
	}

	if params.Population < 2 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewGA",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "Population",
				InputValue: params.Population,
				Issue:      errors.New("population needs at least two individuals"),
			},
		}
	}

	if params.Generations < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewGA",
			Issue: goerrors.ErrNegativeInput{
				InputName: "Generations",
			},
		}
	}

	if params.CrossoverRate < 0 || params.CrossoverRate > 1 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewGA",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "CrossoverRate",
				InputValue: params.CrossoverRate,
				Issue:      errors.New("rate outside [0, 1]"),
			},
		}
	}

	if params.MutationRate < 0 || params.MutationRate > 1 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewGA",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "MutationRate",
				InputValue: params.MutationRate,
				Issue:      errors.New("rate outside [0, 1]"),
			},
		}
	}

	if len(params.InitialOrderings) > params.Population {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewGA",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "InitialOrderings",
				InputValue: len(params.InitialOrderings),
				Issue:      errors.New("more initial orderings than population"),
			},
		}
	}

	numberTasks := params.Evaluator.Instance().NumberOfTasks()

	for _, ordering := range params.InitialOrderings {
		if errOrdering := scheduler.ValidateOrdering(ordering, numberTasks); errOrdering != nil {
			return goerrors.ErrValidation{
				Caller: "IsValid - ParamsNewGA",
				Issue:  errOrdering,
			}
		}
	}

	return nil
}

func NewGA(params *ParamsNewGA) (*GA, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	initial := make([][]int, len(params.InitialOrderings))
	for ix, ordering := range params.InitialOrderings {
		initial[ix] = slices.Clone(ordering)
	}

	return &GA{
			evaluator: params.Evaluator,
			logger: ternary(
				params.Logger == nil,

				slog.New(slog.DiscardHandler),
				params.Logger,
			),
			rng: rand.New(rand.NewSource(params.Seed)),

			initial: initial,

			population:    params.Population,
			generations:   params.Generations,
			crossoverRate: params.CrossoverRate,
			mutationRate:  params.MutationRate,
		},
		nil
}

type Result struct {
	Front []Member

	Decodes     int64
	Generations int
	Duration    time.Duration
}

// Run evolves the population and returns the archive of non-dominated
// orderings. On context cancellation the partial front is returned
// together with the context error.
// A GA is not safe for concurrent Run calls, it owns its random source.
func (ga *GA) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	decodesBefore := ga.evaluator.Decodes()

	archive := NewArchive()

	result := func(generations int) *Result {
		return &Result{
			Front: archive.Front(),

			Decodes:     ga.evaluator.Decodes() - decodesBefore,
			Generations: generations,
			Duration:    time.Since(start),
		}
	}

	numberTasks := ga.evaluator.Instance().NumberOfTasks()

	population := make([][]int, ga.population)

	for ix := range population {
		if ix < len(ga.initial) {
			population[ix] = slices.Clone(ga.initial[ix])

			continue
		}

		population[ix] = ga.rng.Perm(numberTasks)
	}

	scores, errEval := ga.evaluator.EvaluatePopulation(ctx, population)
	if errEval != nil {
		return nil,
			errEval
	}

	ga.offer(archive, population, scores)

	for generation := range ga.generations {
		if errCtx := ctx.Err(); errCtx != nil {
			return result(generation),
				errCtx
		}

		offspring := ga.breed(population, scores)

		offspringScores, errOffspring := ga.evaluator.EvaluatePopulation(ctx, offspring)
		if errOffspring != nil {
			if ctx.Err() != nil {
				return result(generation),
					errOffspring
			}

			return nil,
				errOffspring
		}

		ga.offer(archive, offspring, offspringScores)

		population, scores = survivors(
			slices.Concat(population, offspring),
			slices.Concat(scores, offspringScores),
			ga.population,
		)

		ga.logger.Debug(
			"generation done",
			slog.Int("generation", generation+1),
			slog.Int("front", archive.Len()),
			slog.Int64("bestMakespan", scores[0].Makespan),
		)
	}

	ga.logger.Info(
		"search done",
		slog.Int("generations", ga.generations),
		slog.Int("front", archive.Len()),
		slog.Int64("decodes", ga.evaluator.Decodes()-decodesBefore),
		slog.Int64("cacheHits", ga.evaluator.CacheHits()),
	)

	return result(ga.generations),
		nil
}

func (ga *GA) offer(archive *Archive, orderings [][]int, scores []Objectives) {
	for ix := range orderings {
		archive.Offer(orderings[ix], scores[ix])
	}
}

func (ga *GA) breed(population [][]int, scores []Objectives) [][]int {
	numberTasks := len(population[0])
	result := make([][]int, 0, ga.population)

	for len(result) < ga.population {
		parent1 := population[binaryTournament(scores, ga.rng)]
		parent2 := population[binaryTournament(scores, ga.rng)]

		child1 := make([]int, numberTasks)
		child2 := make([]int, numberTasks)

		if numberTasks > 0 && ga.rng.Float64() < ga.crossoverRate {
			orderCrossover(parent1, parent2, child1, child2, ga.rng)
		} else {
			copy(child1, parent1)
			copy(child2, parent2)
		}

		for _, child := range [][]int{child1, child2} {
			if ga.rng.Float64() < ga.mutationRate {
				swapMutation(child, ga.rng)
			}
		}

		result = append(result, child1)

		if len(result) < ga.population {
			result = append(result, child2)
		}
	}

	return result
}

// survivors keeps the size individuals dominated by the fewest others,
// ties broken by makespan then dissatisfaction.
func survivors(orderings [][]int, scores []Objectives, size int) ([][]int, []Objectives) {
	dominatedBy := make([]int, len(scores))

	for i := range scores {
		for j := range scores {
			if i != j && scores[j].Dominates(scores[i]) {
				dominatedBy[i]++
			}
		}
	}

	ranking := make([]int, len(scores))
	for ix := range ranking {
		ranking[ix] = ix
	}

	slices.SortStableFunc(
		ranking,
		func(a, b int) int {
			if dominatedBy[a] != dominatedBy[b] {
				return dominatedBy[a] - dominatedBy[b]
			}

			return compareObjectives(scores[a], scores[b])
		},
	)

	resultOrderings := make([][]int, size)
	resultScores := make([]Objectives, size)

	for ix := range size {
		resultOrderings[ix] = orderings[ranking[ix]]
		resultScores[ix] = scores[ranking[ix]]
	}

	return resultOrderings,
		resultScores
}
