package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScheduleQueries(t *testing.T) {
	instance, errCr := NewInstance(
		&ParamsNewInstance{
			Tasks: []Task{
				{ID: 1, Duration: 2},
				{ID: 2, Duration: 3},
				{ID: 3, Duration: 1, Predecessors: []TaskID{1, 2}},
			},
			Employees: []Employee{
				{ID: 7, AvailableTime: 4},
				{ID: 8, AvailableTime: 4},
				{ID: 9, AvailableTime: 4},
			},
			LambdaOver: 1,
		},
	)
	require.NoError(t, errCr)

	// 1 on 7 [0-2), 2 on 8 [0-3), 3 waits for 2 and lands on 7 [3-4)
	schedule, errDecode := Decode([]int{0, 1, 2}, instance)
	require.NoError(t, errDecode)

	t.Run(
		"1. per task queries",
		func(t *testing.T) {
			start, errStart := schedule.GetStart(3)
			require.NoError(t, errStart)
			require.EqualValues(t, 3, start)

			finish, errFinish := schedule.GetFinish(3)
			require.NoError(t, errFinish)
			require.EqualValues(t, 4, finish)

			employeeID, errEmployee := schedule.GetEmployeeOfTask(3)
			require.NoError(t, errEmployee)
			require.EqualValues(t, 7, employeeID)
		},
	)

	t.Run(
		"2. per employee queries",
		func(t *testing.T) {
			assignments, errGet := schedule.GetTasksOf(7)
			require.NoError(t, errGet)
			require.Len(t, assignments, 2)
			require.EqualValues(t, 1, assignments[0].TaskID)
			require.EqualValues(t, 3, assignments[1].TaskID)

			load, errLoad := schedule.GetEmployeeLoad(7)
			require.NoError(t, errLoad)
			require.EqualValues(t, 3, load)

			idle, errIdle := schedule.GetTasksOf(9)
			require.NoError(t, errIdle)
			require.Empty(t, idle)
		},
	)

	t.Run(
		"3. unknown identifiers",
		func(t *testing.T) {
			_, errTask := schedule.GetStart(99)

			var errUnknownTask ErrUnknownTask
			require.True(t, errors.As(errTask, &errUnknownTask))

			_, errEmployee := schedule.GetTasksOf(99)

			var errUnknownEmployee ErrUnknownEmployee
			require.True(t, errors.As(errEmployee, &errUnknownEmployee))

			_, errLoad := schedule.GetEmployeeLoad(99)
			require.Error(t, errLoad)
		},
	)

	t.Run(
		"4. objectives",
		func(t *testing.T) {
			require.EqualValues(t, 4, schedule.Makespan())
			require.Zero(t, schedule.Dissatisfaction())
			require.Equal(t, [2]float64{4, 0}, schedule.Objectives())
		},
	)

	t.Run(
		"5. rendering",
		func(t *testing.T) {
			rendered := schedule.String()

			require.Contains(t, rendered, "Makespan: 4")
			require.Contains(t, rendered, "- Employee 7, load 3 / 4")
			require.Contains(t, rendered, "[3-4) → Task 3 (duration 1)")
			require.Contains(t, rendered, "(no tasks)")
		},
	)

	t.Run(
		"6. assignments are copies",
		func(t *testing.T) {
			assignments := schedule.Assignments()
			assignments[0].Start = 100

			start, _ := schedule.GetStart(1)
			require.Zero(t, start)
		},
	)
}
