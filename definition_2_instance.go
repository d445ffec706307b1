package scheduler

import (
	"fmt"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// Instance is read-only after NewInstance and safe to share between
// concurrent Decode calls.
type Instance struct {
	tasks     []Task
	employees []Employee
	alpha     []float64

	positionByTaskID     map[TaskID]int
	positionByEmployeeID map[EmployeeID]int
	predecessorPositions [][]int

	lambdaOver  float64
	lambdaOverq float64

	skillDimensions int
}

type ParamsNewInstance struct {
	Tasks     []Task     `valid:"required"`
	Employees []Employee `valid:"required"`

	// Alpha prices overqualification per skill dimension.
	Alpha []float64

	LambdaOver  float64
	LambdaOverq float64
}

func (params *ParamsNewInstance) IsValid() error {
	if params == nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewInstance",
			Issue: goerrors.ErrNilInput{
				InputName: "params",
			},
		}
	}

	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return goerrors.ErrServiceValidation{
			ServiceName: "Scheduler",
			Caller:      "NewInstance",
			Issue:       errValidation,
		}
	}

	if params.LambdaOver < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewInstance",
			Issue: goerrors.ErrNegativeInput{
				InputName: "LambdaOver",
			},
		}
	}

	if params.LambdaOverq < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewInstance",
			Issue: goerrors.ErrNegativeInput{
				InputName: "LambdaOverq",
			},
		}
	}

	for _, weight := range params.Alpha {
		if weight < 0 {
			return goerrors.ErrValidation{
				Caller: "IsValid - ParamsNewInstance",
				Issue: goerrors.ErrNegativeInput{
					InputName: "Alpha",
				},
			}
		}
	}

	for ix := range params.Tasks {
		if errTask := params.Tasks[ix].IsValid(); errTask != nil {
			return errTask
		}
	}

	for ix := range params.Employees {
		if errEmployee := params.Employees[ix].IsValid(); errEmployee != nil {
			return errEmployee
		}
	}

	return nil
}

// NewInstance fixes the skill dimension count to the longest of alpha and all
// skill vectors, zero padding the shorter ones.
// Precedence acyclicity and skill coverage are not checked here,
// see ValidatePrecedence and ValidateSkillCoverage.
func NewInstance(params *ParamsNewInstance) (*Instance, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	skillDimensions := len(params.Alpha)

	for _, task := range params.Tasks {
		skillDimensions = max(skillDimensions, len(task.RequiredSkills))
	}

	for _, employee := range params.Employees {
		skillDimensions = max(skillDimensions, len(employee.Skills))
	}

	result := Instance{
		tasks:     make([]Task, len(params.Tasks)),
		employees: make([]Employee, len(params.Employees)),
		alpha:     padded(params.Alpha, skillDimensions),

		positionByTaskID:     make(map[TaskID]int, len(params.Tasks)),
		positionByEmployeeID: make(map[EmployeeID]int, len(params.Employees)),
		predecessorPositions: make([][]int, len(params.Tasks)),

		lambdaOver:  params.LambdaOver,
		lambdaOverq: params.LambdaOverq,

		skillDimensions: skillDimensions,
	}

	for position, task := range params.Tasks {
		if _, exists := result.positionByTaskID[task.ID]; exists {
			return nil,
				goerrors.ErrInvalidInput{
					Caller:     "NewInstance",
					InputName:  "Tasks",
					InputValue: task.ID,
					Issue: fmt.Errorf(
						"duplicate task ID %d",
						task.ID,
					),
				}
		}

		result.positionByTaskID[task.ID] = position
		result.tasks[position] = task.clone(skillDimensions)
	}

	for position, employee := range params.Employees {
		if _, exists := result.positionByEmployeeID[employee.ID]; exists {
			return nil,
				goerrors.ErrInvalidInput{
					Caller:     "NewInstance",
					InputName:  "Employees",
					InputValue: employee.ID,
					Issue: fmt.Errorf(
						"duplicate employee ID %d",
						employee.ID,
					),
				}
		}

		result.positionByEmployeeID[employee.ID] = position
		result.employees[position] = employee.clone(skillDimensions)
	}

	for position, task := range result.tasks {
		predecessors := make([]int, 0, len(task.Predecessors))

		for _, predecessorID := range task.Predecessors {
			predecessorPosition, exists := result.positionByTaskID[predecessorID]
			if !exists {
				return nil,
					goerrors.ErrInvalidInput{
						Caller:     "NewInstance",
						InputName:  "Predecessors",
						InputValue: predecessorID,
						Issue: fmt.Errorf(
							"task %d references unknown predecessor %d",
							task.ID,
							predecessorID,
						),
					}
			}

			predecessors = append(predecessors, predecessorPosition)
		}

		result.predecessorPositions[position] = predecessors
	}

	return &result,
		nil
}

func (inst *Instance) NumberOfTasks() int {
	return len(inst.tasks)
}

func (inst *Instance) NumberOfEmployees() int {
	return len(inst.employees)
}

func (inst *Instance) NumberOfSkills() int {
	return inst.skillDimensions
}

func (inst *Instance) LambdaOver() float64 {
	return inst.lambdaOver
}

func (inst *Instance) LambdaOverq() float64 {
	return inst.lambdaOverq
}

func (inst *Instance) Alpha() []float64 {
	return append([]float64{}, inst.alpha...)
}

func (inst *Instance) AlphaAt(k int) float64 {
	return skillAt(inst.alpha, k)
}

// Task returns a copy of the task at the given ordering position.
func (inst *Instance) Task(position int) (Task, error) {
	if position < 0 || position >= len(inst.tasks) {
		return Task{},
			ErrInvalidIndex{
				Position: position,
				Index:    position,
				Length:   len(inst.tasks),
			}
	}

	return inst.tasks[position].clone(inst.skillDimensions),
		nil
}

func (inst *Instance) TaskByID(id TaskID) (Task, error) {
	position, exists := inst.positionByTaskID[id]
	if !exists {
		return Task{},
			ErrUnknownTask{
				TaskID: id,
			}
	}

	return inst.tasks[position].clone(inst.skillDimensions),
		nil
}

// TaskPosition maps a task ID to its index in the task list.
func (inst *Instance) TaskPosition(id TaskID) (int, bool) {
	position, exists := inst.positionByTaskID[id]

	return position, exists
}

func (inst *Instance) Tasks() []Task {
	result := make([]Task, len(inst.tasks))

	for ix, task := range inst.tasks {
		result[ix] = task.clone(inst.skillDimensions)
	}

	return result
}

func (inst *Instance) Employee(position int) (Employee, error) {
	if position < 0 || position >= len(inst.employees) {
		return Employee{},
			ErrInvalidIndex{
				Position: position,
				Index:    position,
				Length:   len(inst.employees),
			}
	}

	return inst.employees[position].clone(inst.skillDimensions),
		nil
}

func (inst *Instance) EmployeeByID(id EmployeeID) (Employee, error) {
	position, exists := inst.positionByEmployeeID[id]
	if !exists {
		return Employee{},
			ErrUnknownEmployee{
				EmployeeID: id,
			}
	}

	return inst.employees[position].clone(inst.skillDimensions),
		nil
}

func (inst *Instance) Employees() []Employee {
	result := make([]Employee, len(inst.employees))

	for ix, employee := range inst.employees {
		result[ix] = employee.clone(inst.skillDimensions)
	}

	return result
}
