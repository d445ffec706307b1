package scheduler

import (
	"fmt"
	"strings"
)

// ErrInvalidIndex is a caller bug: an ordering entry or a positional lookup
// falls outside [0, Length).
type ErrInvalidIndex struct {
	Position int
	Index    int
	Length   int
}

func (e ErrInvalidIndex) Error() string {
	return fmt.Sprintf(
		"position %d holds index %d outside [0, %d)",
		e.Position,
		e.Index,
		e.Length,
	)
}

type ErrDuplicateIndex struct {
	Position int
	Index    int
}

func (e ErrDuplicateIndex) Error() string {
	return fmt.Sprintf(
		"ordering position %d repeats task index %d",
		e.Position,
		e.Index,
	)
}

type ErrOrderingLength struct {
	Expected int
	Got      int
}

func (e ErrOrderingLength) Error() string {
	return fmt.Sprintf(
		"ordering length must be %d (got %d)",
		e.Expected,
		e.Got,
	)
}

// ErrInfeasible marks an instance defect: no employee has the skills the task requires.
type ErrInfeasible struct {
	TaskID TaskID
}

func (e ErrInfeasible) Error() string {
	return fmt.Sprintf(
		"no employee qualifies for task %d",
		e.TaskID,
	)
}

// ErrStalled is returned when a full pass over the ordering placed no task.
type ErrStalled struct {
	Scheduled int
	Total     int
}

func (e ErrStalled) Error() string {
	return fmt.Sprintf(
		"decoder stalled with %d of %d tasks scheduled, check precedence relation",
		e.Scheduled,
		e.Total,
	)
}

type ErrCyclicPrecedence struct {
	TaskIDs []TaskID
}

func (e ErrCyclicPrecedence) Error() string {
	ids := make([]string, len(e.TaskIDs))

	for ix, id := range e.TaskIDs {
		ids[ix] = fmt.Sprint(id)
	}

	return fmt.Sprintf(
		"precedence relation has a cycle, tasks never ready: [%s]",
		strings.Join(ids, ", "),
	)
}

type ErrUnknownTask struct {
	TaskID TaskID
}

func (e ErrUnknownTask) Error() string {
	return fmt.Sprintf("task %d not found", e.TaskID)
}

type ErrUnknownEmployee struct {
	EmployeeID EmployeeID
}

func (e ErrUnknownEmployee) Error() string {
	return fmt.Sprintf("employee %d not found", e.EmployeeID)
}
