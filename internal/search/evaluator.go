package search

import (
	"context"
	"runtime"
	"strconv"
	"sync/atomic"

	goerrors "github.com/TudorHulban/go-errors"
	scheduler "github.com/TudorHulban/tasks-assignment"
	"github.com/asaskevich/govalidator"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultCacheSize = 4096
)

// Evaluator decodes orderings into objectives and memoizes the result per ordering.
// Safe for concurrent use.
type Evaluator struct {
	instance *scheduler.Instance
	cache    *lru.Cache[string, Objectives]

	workers int

	decodes   atomic.Int64
	cacheHits atomic.Int64
}

type ParamsNewEvaluator struct {
	Instance *scheduler.Instance `valid:"required"`

	CacheSize int // defaults to DefaultCacheSize
	Workers   int // defaults to GOMAXPROCS
}

func (params *ParamsNewEvaluator) IsValid() error {
	if params == nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewEvaluator",
			Issue: goerrors.ErrNilInput{
				InputName: "params",
			},
		}
	}

	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return goerrors.ErrServiceValidation{
			ServiceName: "Search",
			Caller:      "NewEvaluator",
			Issue:       errValidation,
		}
	}

	if params.CacheSize < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewEvaluator",
			Issue: goerrors.ErrNegativeInput{
				InputName: "CacheSize",
			},
		}
	}

	if params.Workers < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewEvaluator",
			Issue: goerrors.ErrNegativeInput{
				InputName: "Workers",
			},
		}
	}

	return nil
}

func NewEvaluator(params *ParamsNewEvaluator) (*Evaluator, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	cache, errCache := lru.New[string, Objectives](
		ternary(params.CacheSize == 0, DefaultCacheSize, params.CacheSize),
	)
	if errCache != nil {
		return nil,
			errCache
	}

	return &Evaluator{
			instance: params.Instance,
			cache:    cache,

			workers: ternary(params.Workers == 0, runtime.GOMAXPROCS(0), params.Workers),
		},
		nil
}

func (e *Evaluator) Instance() *scheduler.Instance {
	return e.instance
}

// Decodes counts actual decoder runs, cache hits excluded.
func (e *Evaluator) Decodes() int64 {
	return e.decodes.Load()
}

func (e *Evaluator) CacheHits() int64 {
	return e.cacheHits.Load()
}

func (e *Evaluator) Evaluate(ordering []int) (Objectives, error) {
	key := orderingKey(ordering)

	if cached, hit := e.cache.Get(key); hit {
		e.cacheHits.Add(1)

		return cached,
			nil
	}

	schedule, errDecode := scheduler.Decode(ordering, e.instance)
	if errDecode != nil {
		return Objectives{},
			errDecode
	}

	e.decodes.Add(1)

	result := objectivesOf(schedule)
	e.cache.Add(key, result)

	return result,
		nil
}

// EvaluatePopulation evaluates the orderings on at most Workers goroutines.
// Results keep the input order. The first decode error cancels the rest.
func (e *Evaluator) EvaluatePopulation(ctx context.Context, orderings [][]int) ([]Objectives, error) {
	result := make([]Objectives, len(orderings))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for ix := range orderings {
		g.Go(
			func() error {
				if errCtx := gctx.Err(); errCtx != nil {
					return errCtx
				}

				objectives, errEval := e.Evaluate(orderings[ix])
				if errEval != nil {
					return errEval
				}

				result[ix] = objectives

				return nil
			},
		)
	}

	if errWait := g.Wait(); errWait != nil {
		return nil,
			errWait
	}

	return result,
		nil
}

func orderingKey(ordering []int) string {
	buf := make([]byte, 0, len(ordering)*4)

	for ix, index := range ordering {
		if ix > 0 {
			buf = append(buf, ',')
		}

		buf = strconv.AppendInt(buf, int64(index), 10)
	}

	return string(buf)
}
