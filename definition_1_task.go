package scheduler

import (
	"fmt"

	goerrors "github.com/TudorHulban/go-errors"
)

type TaskID int64

type Task struct {
	Name           string
	Predecessors   []TaskID
	RequiredSkills []float64 // level per skill dimension, zero means not required

	ID          TaskID
	Duration    int64
	ReleaseDate int64
}

func (t *Task) IsValid() error {
	if t.ID < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - Task",
			Issue: goerrors.ErrNegativeInput{
				InputName: "ID",
			},
		}
	}

	if t.Duration <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - Task",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "Duration",
				InputValue: t.Duration,
			},
		}
	}

	if t.ReleaseDate < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - Task",
			Issue: goerrors.ErrNegativeInput{
				InputName: "ReleaseDate",
			},
		}
	}

	for _, level := range t.RequiredSkills {
		if level < 0 {
			return goerrors.ErrValidation{
				Caller: "IsValid - Task",
				Issue: goerrors.ErrNegativeInput{
					InputName: "RequiredSkills",
				},
			}
		}
	}

	for _, predecessorID := range t.Predecessors {
		if predecessorID == t.ID {
			return goerrors.ErrValidation{
				Caller: "IsValid - Task",
				Issue: goerrors.ErrInvalidInput{
					InputName:  "Predecessors",
					InputValue: predecessorID,
					Issue: fmt.Errorf(
						"task %d lists itself as predecessor",
						t.ID,
					),
				},
			}
		}
	}

	return nil
}

// RequiredSkill returns zero for dimensions past the requirement vector.
func (t *Task) RequiredSkill(k int) float64 {
	return skillAt(t.RequiredSkills, k)
}

func (t Task) clone(skillDimensions int) Task {
	return Task{
		Name:           t.Name,
		Predecessors:   append([]TaskID{}, t.Predecessors...),
		RequiredSkills: padded(t.RequiredSkills, skillDimensions),

		ID:          t.ID,
		Duration:    t.Duration,
		ReleaseDate: t.ReleaseDate,
	}
}
