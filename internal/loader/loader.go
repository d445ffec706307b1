package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	goerrors "github.com/TudorHulban/go-errors"
	scheduler "github.com/TudorHulban/tasks-assignment"
)

// DefaultSkillOrder maps named skills to vector dimensions when the document
// carries no skillOrder of its own.
var DefaultSkillOrder = []string{
	"csharp_dotnet9",
	"blazor_mudblazor_apexcharts",
	"pwa",
	"ms_sql",
	"visual_studio",
}

type document struct {
	SkillOrder        []string  `json:"skillOrder"`
	SkillWeightsAlpha []float64 `json:"skillWeightsAlpha"`
	LambdaOver        float64   `json:"lambdaOver"`
	LambdaOverq       float64   `json:"lambdaOverq"`

	Tasks     []taskDocument     `json:"tasks"`
	Employees []employeeDocument `json:"employees"`
}

type taskDocument struct {
	Name           string             `json:"name"`
	Predecessors   []int64            `json:"predecessors"`
	RequiredSkills map[string]float64 `json:"requiredSkills"`

	ID          int64 `json:"id"`
	Duration    int64 `json:"duration"`
	ReleaseDate int64 `json:"releaseDate"`
}

type employeeDocument struct {
	Name   string             `json:"name"`
	Skills map[string]float64 `json:"skills"`

	ID            int64 `json:"id"`
	AvailableTime int64 `json:"availableTime"`
}

type ParamsLoad struct {
	// SkillOrder overrides both the document order and DefaultSkillOrder.
	SkillOrder []string

	// Strict additionally rejects cyclic precedence and tasks no employee covers.
	Strict bool
}

func (params *ParamsLoad) skillOrder(doc *document) []string {
	if params != nil && len(params.SkillOrder) > 0 {
		return params.SkillOrder
	}

	if len(doc.SkillOrder) > 0 {
		return doc.SkillOrder
	}

	return DefaultSkillOrder
}

func LoadFile(path string, params *ParamsLoad) (*scheduler.Instance, error) {
	f, errOpen := os.Open(path)
	if errOpen != nil {
		return nil,
			fmt.Errorf("open instance %s: %w", path, errOpen)
	}
	defer f.Close()

	instance, errLoad := Load(f, params)
	if errLoad != nil {
		return nil,
			fmt.Errorf("load instance %s: %w", path, errLoad)
	}

	return instance,
		nil
}

// Load decodes a JSON instance document. Skill maps are projected onto the
// skill order, names absent from a map count as zero and names outside the
// order are rejected.
func Load(r io.Reader, params *ParamsLoad) (*scheduler.Instance, error) {
	if r == nil {
		return nil,
			goerrors.ErrNilInput{
				InputName: "reader",
			}
	}

	var doc document

	if errDecode := json.NewDecoder(r).Decode(&doc); errDecode != nil {
		return nil,
			fmt.Errorf("decode instance document: %w", errDecode)
	}

	order := params.skillOrder(&doc)

	if errOrder := validateSkillOrder(order); errOrder != nil {
		return nil,
			errOrder
	}

	tasks := make([]scheduler.Task, len(doc.Tasks))

	for ix, task := range doc.Tasks {
		required, errVector := skillVector(order, task.RequiredSkills)
		if errVector != nil {
			return nil,
				fmt.Errorf("task %d: %w", task.ID, errVector)
		}

		predecessors := make([]scheduler.TaskID, len(task.Predecessors))
		for px, predecessorID := range task.Predecessors {
			predecessors[px] = scheduler.TaskID(predecessorID)
		}

		tasks[ix] = scheduler.Task{
			Name:           task.Name,
			Predecessors:   predecessors,
			RequiredSkills: required,

			ID:          scheduler.TaskID(task.ID),
			Duration:    task.Duration,
			ReleaseDate: task.ReleaseDate,
		}
	}

	employees := make([]scheduler.Employee, len(doc.Employees))

	for ix, employee := range doc.Employees {
		skills, errVector := skillVector(order, employee.Skills)
		if errVector != nil {
			return nil,
				fmt.Errorf("employee %d: %w", employee.ID, errVector)
		}

		employees[ix] = scheduler.Employee{
			Name:   employee.Name,
			Skills: skills,

			ID:            scheduler.EmployeeID(employee.ID),
			AvailableTime: employee.AvailableTime,
		}
	}

	instance, errCr := scheduler.NewInstance(
		&scheduler.ParamsNewInstance{
			Tasks:     tasks,
			Employees: employees,
			Alpha:     doc.SkillWeightsAlpha,

			LambdaOver:  doc.LambdaOver,
			LambdaOverq: doc.LambdaOverq,
		},
	)
	if errCr != nil {
		return nil,
			errCr
	}

	if params != nil && params.Strict {
		if errPrecedence := instance.ValidatePrecedence(); errPrecedence != nil {
			return nil,
				errPrecedence
		}

		if errCoverage := instance.ValidateSkillCoverage(); errCoverage != nil {
			return nil,
				errCoverage
		}
	}

	return instance,
		nil
}

func validateSkillOrder(order []string) error {
	for ix, name := range order {
		if len(name) == 0 {
			return goerrors.ErrInvalidInput{
				Caller:     "Load",
				InputName:  "skillOrder",
				InputValue: ix,
				Issue:      fmt.Errorf("empty skill name at position %d", ix),
			}
		}

		if slices.Index(order, name) != ix {
			return goerrors.ErrInvalidInput{
				Caller:     "Load",
				InputName:  "skillOrder",
				InputValue: name,
				Issue:      fmt.Errorf("skill %q listed twice", name),
			}
		}
	}

	return nil
}

// skillVector reports the alphabetically first unknown name.
func skillVector(order []string, byName map[string]float64) ([]float64, error) {
	result := make([]float64, len(order))

	for _, name := range slices.Sorted(maps.Keys(byName)) {
		dimension := slices.Index(order, name)
		if dimension == -1 {
			return nil,
				ErrUnknownSkill{
					Name: name,
				}
		}

		result[dimension] = byName[name]
	}

	return result,
		nil
}
