package search

import (
	"cmp"
	"slices"
)

type Member struct {
	Ordering   []int
	Objectives Objectives
}

// Archive keeps the non-dominated orderings seen so far.
// Not safe for concurrent use.
type Archive struct {
	members []Member
}

func NewArchive() *Archive {
	return &Archive{}
}

// Offer inserts the candidate unless an archived member dominates it or has
// equal objectives. Members the candidate dominates are evicted.
func (a *Archive) Offer(ordering []int, objectives Objectives) bool {
	for _, member := range a.members {
		if member.Objectives == objectives || member.Objectives.Dominates(objectives) {
			return false
		}
	}

	a.members = slices.DeleteFunc(
		a.members,
		func(member Member) bool {
			return objectives.Dominates(member.Objectives)
		},
	)

	a.members = append(
		a.members,
		Member{
			Ordering:   slices.Clone(ordering),
			Objectives: objectives,
		},
	)

	return true
}

func (a *Archive) Len() int {
	return len(a.members)
}

// Front returns copies of the members sorted by makespan, then dissatisfaction.
func (a *Archive) Front() []Member {
	result := make([]Member, len(a.members))

	for ix, member := range a.members {
		result[ix] = Member{
			Ordering:   slices.Clone(member.Ordering),
			Objectives: member.Objectives,
		}
	}

	slices.SortFunc(
		result,
		func(m1, m2 Member) int {
			return compareObjectives(m1.Objectives, m2.Objectives)
		},
	)

	return result
}

func compareObjectives(o1, o2 Objectives) int {
	if o1.Makespan != o2.Makespan {
		return cmp.Compare(o1.Makespan, o2.Makespan)
	}

	return cmp.Compare(o1.Dissatisfaction, o2.Dissatisfaction)
}
