package scheduler

import (
	goerrors "github.com/TudorHulban/go-errors"
)

type EmployeeID int64

// Employee capacity is a work-time budget, not a wall-clock deadline.
// Assigned work above AvailableTime is priced as overload.
type Employee struct {
	Name   string
	Skills []float64

	ID            EmployeeID
	AvailableTime int64
}

func (e *Employee) IsValid() error {
	if e.ID < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - Employee",
			Issue: goerrors.ErrNegativeInput{
				InputName: "ID",
			},
		}
	}

	if e.AvailableTime < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - Employee",
			Issue: goerrors.ErrNegativeInput{
				InputName: "AvailableTime",
			},
		}
	}

	for _, level := range e.Skills {
		if level < 0 {
			return goerrors.ErrValidation{
				Caller: "IsValid - Employee",
				Issue: goerrors.ErrNegativeInput{
					InputName: "Skills",
				},
			}
		}
	}

	return nil
}

func (e *Employee) Skill(k int) float64 {
	return skillAt(e.Skills, k)
}

// Qualifies reports whether the employee meets every positive requirement.
func (e *Employee) Qualifies(task *Task) bool {
	return qualifies(e.Skills, task.RequiredSkills)
}

func (e Employee) clone(skillDimensions int) Employee {
	return Employee{
		Name:   e.Name,
		Skills: padded(e.Skills, skillDimensions),

		ID:            e.ID,
		AvailableTime: e.AvailableTime,
	}
}
