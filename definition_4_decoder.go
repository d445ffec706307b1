package scheduler

import (
	"math"

	goerrors "github.com/TudorHulban/go-errors"
)

// ValidateOrdering checks the ordering is a permutation of [0, n).
// Out of range entries are reported first, then a wrong length, then repeats.
func ValidateOrdering(ordering []int, n int) error {
	for position, index := range ordering {
		if index < 0 || index >= n {
			return ErrInvalidIndex{
				Position: position,
				Index:    index,
				Length:   n,
			}
		}
	}

	if len(ordering) != n {
		return ErrOrderingLength{
			Expected: n,
			Got:      len(ordering),
		}
	}

	seen := make([]bool, n)

	for position, index := range ordering {
		if seen[index] {
			return ErrDuplicateIndex{
				Position: position,
				Index:    index,
			}
		}

		seen[index] = true
	}

	return nil
}

type employeeChoice struct {
	employeePosition int

	start  int64
	finish int64
	cost   float64
}

type paramsSelectEmployee struct {
	Schedule        *Schedule
	EmployeeCursors []int64

	TaskPosition  int
	EarliestStart int64
}

// selectEmployee returns the qualified employee with the lowest local cost.
// On exact ties the lowest employee position wins.
func (inst *Instance) selectEmployee(params *paramsSelectEmployee) (*employeeChoice, error) {
	task := &inst.tasks[params.TaskPosition]

	best := employeeChoice{
		employeePosition: -1,
		cost:             math.Inf(1),
	}

	for employeePosition := range inst.employees {
		employee := &inst.employees[employeePosition]

		if !qualifies(employee.Skills, task.RequiredSkills) {
			continue
		}

		start := max(params.EarliestStart, params.EmployeeCursors[employeePosition])
		finish := start + task.Duration

		loadAfterAssignment := params.Schedule.loadOf(employeePosition) + task.Duration

		cost := float64(finish) +
			inst.lambdaOver*overload(loadAfterAssignment, employee.AvailableTime) +
			inst.lambdaOverq*overqualification(employee.Skills, task.RequiredSkills, inst.alpha)

		if cost < best.cost {
			best = employeeChoice{
				employeePosition: employeePosition,

				start:  start,
				finish: finish,
				cost:   cost,
			}
		}
	}

	if best.employeePosition == -1 {
		return nil,
			ErrInfeasible{
				TaskID: task.ID,
			}
	}

	return &best,
		nil
}

// earliestStart returns false while any predecessor is unscheduled.
func (inst *Instance) earliestStart(schedule *Schedule, taskPosition int) (int64, bool) {
	result := inst.tasks[taskPosition].ReleaseDate

	for _, predecessorPosition := range inst.predecessorPositions[taskPosition] {
		if !schedule.isAssigned(predecessorPosition) {
			return 0, false
		}

		result = max(result, schedule.assignments[predecessorPosition].Finish)
	}

	return result, true
}

// Decode turns a task ordering into a feasible schedule by repeated list
// scheduling passes over the ordering. A task whose predecessors are not yet
// placed is retried on the next pass.
//
// The ordering must be a permutation of task positions [0, n).
// Decode is deterministic and keeps all mutable state local to the call,
// so it may run concurrently on a shared instance.
func Decode(ordering []int, instance *Instance) (*Schedule, error) {
	if instance == nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "Decode",
				Issue: goerrors.ErrNilInput{
					InputName: "instance",
				},
			}
	}

	numberTasks := len(instance.tasks)

	if errOrdering := ValidateOrdering(ordering, numberTasks); errOrdering != nil {
		return nil,
			errOrdering
	}

	schedule := newSchedule(instance)
	employeeCursors := make([]int64, len(instance.employees))

	var scheduledCount int

	for scheduledCount < numberTasks {
		var progress bool

		for _, taskPosition := range ordering {
			if schedule.isAssigned(taskPosition) {
				continue
			}

			earliestStart, isReady := instance.earliestStart(schedule, taskPosition)
			if !isReady {
				continue
			}

			choice, errSelect := instance.selectEmployee(
				&paramsSelectEmployee{
					Schedule:        schedule,
					EmployeeCursors: employeeCursors,

					TaskPosition:  taskPosition,
					EarliestStart: earliestStart,
				},
			)
			if errSelect != nil {
				return nil,
					errSelect
			}

			schedule.assign(
				&paramsAssign{
					TaskPosition:     taskPosition,
					EmployeePosition: choice.employeePosition,

					Start:  choice.start,
					Finish: choice.finish,
				},
			)

			employeeCursors[choice.employeePosition] = choice.finish

			scheduledCount++
			progress = true
		}

		if !progress {
			return nil,
				ErrStalled{
					Scheduled: scheduledCount,
					Total:     numberTasks,
				}
		}
	}

	schedule.recomputeObjectives()

	return schedule,
		nil
}
