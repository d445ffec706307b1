package loader

import "fmt"

type ErrUnknownSkill struct {
	Name string
}

func (e ErrUnknownSkill) Error() string {
	return fmt.Sprintf("skill %q is not part of the skill order", e.Name)
}
