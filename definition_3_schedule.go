package scheduler

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

type Assignment struct {
	TaskID     TaskID
	EmployeeID EmployeeID

	Start  int64
	Finish int64

	// Sequence is the commit order of the assignment within its decode call.
	Sequence int
}

// Schedule is produced by Decode and is read-only afterwards.
type Schedule struct {
	instance *Instance

	assignments       []Assignment // per task position
	assigned          []bool
	employeePositions []int   // per task position
	loads             []int64 // per employee position

	committed int

	makespan        int64
	dissatisfaction float64
}

func newSchedule(instance *Instance) *Schedule {
	return &Schedule{
		instance: instance,

		assignments:       make([]Assignment, len(instance.tasks)),
		assigned:          make([]bool, len(instance.tasks)),
		employeePositions: make([]int, len(instance.tasks)),
		loads:             make([]int64, len(instance.employees)),
	}
}

type paramsAssign struct {
	TaskPosition     int
	EmployeePosition int

	Start  int64
	Finish int64
}

func (s *Schedule) assign(params *paramsAssign) {
	task := &s.instance.tasks[params.TaskPosition]

	s.assignments[params.TaskPosition] = Assignment{
		TaskID:     task.ID,
		EmployeeID: s.instance.employees[params.EmployeePosition].ID,

		Start:  params.Start,
		Finish: params.Finish,

		Sequence: s.committed,
	}

	s.assigned[params.TaskPosition] = true
	s.employeePositions[params.TaskPosition] = params.EmployeePosition
	s.loads[params.EmployeePosition] = s.loads[params.EmployeePosition] + task.Duration

	s.committed++
}

func (s *Schedule) isAssigned(taskPosition int) bool {
	return s.assigned[taskPosition]
}

func (s *Schedule) loadOf(employeePosition int) int64 {
	return s.loads[employeePosition]
}

// recomputeObjectives derives both objectives from the complete assignment,
// independent of the local costs used while placing tasks.
func (s *Schedule) recomputeObjectives() {
	var makespan int64

	for position, assignment := range s.assignments {
		if !s.assigned[position] {
			continue
		}

		makespan = max(makespan, assignment.Finish)
	}

	s.makespan = makespan
	s.dissatisfaction = s.computeDissatisfaction()
}

func (s *Schedule) computeDissatisfaction() float64 {
	overqualifications := make([]float64, len(s.instance.employees))
	loads := make([]int64, len(s.instance.employees))

	for taskPosition, task := range s.instance.tasks {
		if !s.assigned[taskPosition] {
			continue
		}

		employeePosition := s.employeePositions[taskPosition]

		loads[employeePosition] = loads[employeePosition] + task.Duration
		overqualifications[employeePosition] = overqualifications[employeePosition] +
			overqualification(
				s.instance.employees[employeePosition].Skills,
				task.RequiredSkills,
				s.instance.alpha,
			)
	}

	var result float64

	for employeePosition, employee := range s.instance.employees {
		result = result +
			s.instance.lambdaOver*overload(loads[employeePosition], employee.AvailableTime) +
			s.instance.lambdaOverq*overqualifications[employeePosition]
	}

	return result
}

func (s *Schedule) Makespan() int64 {
	return s.makespan
}

func (s *Schedule) Dissatisfaction() float64 {
	return s.dissatisfaction
}

// Objectives returns makespan and dissatisfaction, in this order.
func (s *Schedule) Objectives() [2]float64 {
	return [2]float64{
		float64(s.makespan),
		s.dissatisfaction,
	}
}

func (s *Schedule) GetAssignment(taskID TaskID) (*Assignment, error) {
	position, exists := s.instance.positionByTaskID[taskID]
	if !exists || !s.assigned[position] {
		return nil,
			ErrUnknownTask{
				TaskID: taskID,
			}
	}

	result := s.assignments[position]

	return &result,
		nil
}

func (s *Schedule) GetStart(taskID TaskID) (int64, error) {
	assignment, errGet := s.GetAssignment(taskID)
	if errGet != nil {
		return 0,
			errGet
	}

	return assignment.Start,
		nil
}

func (s *Schedule) GetFinish(taskID TaskID) (int64, error) {
	assignment, errGet := s.GetAssignment(taskID)
	if errGet != nil {
		return 0,
			errGet
	}

	return assignment.Finish,
		nil
}

func (s *Schedule) GetEmployeeOfTask(taskID TaskID) (EmployeeID, error) {
	assignment, errGet := s.GetAssignment(taskID)
	if errGet != nil {
		return 0,
			errGet
	}

	return assignment.EmployeeID,
		nil
}

// GetEmployeeLoad returns the cumulative duration assigned to the employee.
func (s *Schedule) GetEmployeeLoad(employeeID EmployeeID) (int64, error) {
	position, exists := s.instance.positionByEmployeeID[employeeID]
	if !exists {
		return 0,
			ErrUnknownEmployee{
				EmployeeID: employeeID,
			}
	}

	return s.loads[position],
		nil
}

// GetTasksOf returns the assignments of the employee ordered by start time.
func (s *Schedule) GetTasksOf(employeeID EmployeeID) ([]Assignment, error) {
	employeePosition, exists := s.instance.positionByEmployeeID[employeeID]
	if !exists {
		return nil,
			ErrUnknownEmployee{
				EmployeeID: employeeID,
			}
	}

	result := make([]Assignment, 0)

	for taskPosition, assignment := range s.assignments {
		if s.assigned[taskPosition] && s.employeePositions[taskPosition] == employeePosition {
			result = append(result, assignment)
		}
	}

	slices.SortFunc(
		result,
		func(a, b Assignment) int {
			if a.Start != b.Start {
				return cmp.Compare(a.Start, b.Start)
			}

			return cmp.Compare(a.Sequence, b.Sequence)
		},
	)

	return result,
		nil
}

// Assignments returns one entry per task, indexed by task position.
func (s *Schedule) Assignments() []Assignment {
	return append([]Assignment{}, s.assignments...)
}

func (s *Schedule) String() string {
	var sb strings.Builder

	sb.WriteString("Schedule:\n")
	sb.WriteString(fmt.Sprintf("Makespan: %d\n", s.makespan))
	sb.WriteString(fmt.Sprintf("Dissatisfaction: %.4f\n", s.dissatisfaction))

	for position, employee := range s.instance.employees {
		sb.WriteString(
			fmt.Sprintf(
				"- Employee %d, load %d / %d\n",

				employee.ID,
				s.loads[position],
				employee.AvailableTime,
			),
		)

		assignments, _ := s.GetTasksOf(employee.ID)

		sb.WriteString(
			ternary(
				len(assignments) == 0,

				"  (no tasks)\n",
				"",
			),
		)

		for _, assignment := range assignments {
			task := s.instance.tasks[s.instance.positionByTaskID[assignment.TaskID]]

			sb.WriteString(
				fmt.Sprintf(
					"  [%d-%d) → Task %d (duration %d)\n",

					assignment.Start,
					assignment.Finish,
					assignment.TaskID,
					task.Duration,
				),
			)
		}
	}

	return sb.String()
}
