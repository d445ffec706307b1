package scheduler

import "slices"

// ValidatePrecedence reports a cycle in the predecessor relation.
// Decode does not call it, a cyclic instance surfaces there as ErrStalled.
func (inst *Instance) ValidatePrecedence() error {
	pendingPredecessors := make([]int, len(inst.tasks))
	successors := make([][]int, len(inst.tasks))

	for position, predecessors := range inst.predecessorPositions {
		pendingPredecessors[position] = len(predecessors)

		for _, predecessorPosition := range predecessors {
			successors[predecessorPosition] = append(successors[predecessorPosition], position)
		}
	}

	queue := make([]int, 0, len(inst.tasks))

	for position, pending := range pendingPredecessors {
		if pending == 0 {
			queue = append(queue, position)
		}
	}

	var visited int

	for len(queue) > 0 {
		position := queue[0]
		queue = queue[1:]

		visited++

		for _, successor := range successors[position] {
			pendingPredecessors[successor]--

			if pendingPredecessors[successor] == 0 {
				queue = append(queue, successor)
			}
		}
	}

	if visited == len(inst.tasks) {
		return nil
	}

	var blocked []TaskID

	for position, pending := range pendingPredecessors {
		if pending > 0 {
			blocked = append(blocked, inst.tasks[position].ID)
		}
	}

	slices.Sort(blocked)

	return ErrCyclicPrecedence{
		TaskIDs: blocked,
	}
}

// ValidateSkillCoverage returns ErrInfeasible for the first task,
// in task order, that no employee qualifies for.
func (inst *Instance) ValidateSkillCoverage() error {
	for position := range inst.tasks {
		task := &inst.tasks[position]

		if !slices.ContainsFunc(
			inst.employees,
			func(employee Employee) bool {
				return qualifies(employee.Skills, task.RequiredSkills)
			},
		) {
			return ErrInfeasible{
				TaskID: task.ID,
			}
		}
	}

	return nil
}
