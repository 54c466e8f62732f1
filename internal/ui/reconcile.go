package ui

import "webcal/internal/models"

type MutationOp int

const (
	OpCreate MutationOp = iota
	OpUpdate
	OpDelete
)

// ApplyMutation folds a mutation response into the local event list,
// keyed by id equality. It is pure: the input slice is left alone and a
// new one is returned.
func ApplyMutation(list []models.Event, result models.Event, op MutationOp) []models.Event {
	switch op {
	case OpCreate:
		out := make([]models.Event, 0, len(list)+1)
		out = append(out, list...)
		return append(out, result)

	case OpUpdate:
		out := make([]models.Event, len(list))
		for i, e := range list {
			if e.ID == result.ID {
				out[i] = result
			} else {
				out[i] = e
			}
		}
		return out

	case OpDelete:
		out := make([]models.Event, 0, len(list))
		for _, e := range list {
			if e.ID != result.ID {
				out = append(out, e)
			}
		}
		return out
	}
	return list
}
