package search

import (
	"fmt"

	scheduler "github.com/TudorHulban/tasks-assignment"
)

// Objectives are both minimized.
type Objectives struct {
	Makespan        int64
	Dissatisfaction float64
}

func objectivesOf(schedule *scheduler.Schedule) Objectives {
	return Objectives{
		Makespan:        schedule.Makespan(),
		Dissatisfaction: schedule.Dissatisfaction(),
	}
}

// Dominates reports Pareto dominance: no worse in both objectives
// and strictly better in at least one.
func (o Objectives) Dominates(other Objectives) bool {
	if o.Makespan > other.Makespan || o.Dissatisfaction > other.Dissatisfaction {
		return false
	}

	return o.Makespan < other.Makespan || o.Dissatisfaction < other.Dissatisfaction
}

func (o Objectives) String() string {
	return fmt.Sprintf(
		"makespan %d, dissatisfaction %.4f",
		o.Makespan,
		o.Dissatisfaction,
	)
}
