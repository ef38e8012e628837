package app

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/daybook/pkg/entity"
)

// ErrAmbiguous is returned when an id prefix matches more than one entity.
var ErrAmbiguous = errors.New("app: ambiguous id")

// Resolve expands ref, a full id or a unique id prefix, to the id of an
// entity of kind k.
func (c *Controller) Resolve(k entity.Kind, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrNotFound
	}
	var ids []string
	switch k {
	case entity.KindNote:
		for _, n := range c.State.Notes {
			ids = append(ids, n.ID)
		}
	case entity.KindTask:
		for _, t := range c.State.Tasks {
			ids = append(ids, t.ID)
		}
	case entity.KindHabit:
		for _, h := range c.State.Habits {
			ids = append(ids, h.ID)
		}
	default:
		return "", fmt.Errorf("app: unknown kind %q", k)
	}

	var match string
	for _, id := range ids {
		if id == ref {
			return id, nil
		}
		if strings.HasPrefix(id, ref) {
			if match != "" {
				return "", fmt.Errorf("%w: %q", ErrAmbiguous, ref)
			}
			match = id
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s %q", ErrNotFound, k, ref)
	}
	return match, nil
}

// Toggle flips a task's completion or a habit's done-today mark. Notes
// cannot be toggled.
func (c *Controller) Toggle(k entity.Kind, id string) error {
	var err error
	switch k {
	case entity.KindTask:
		_, err = c.ToggleTask(id)
	case entity.KindHabit:
		_, err = c.ToggleHabit(id)
	default:
		err = fmt.Errorf("app: %s cannot be toggled", k)
	}
	return err
}

// Delete removes an entity of kind k after confirmation.
func (c *Controller) Delete(k entity.Kind, id string) (bool, error) {
	switch k {
	case entity.KindNote:
		return c.DeleteNote(id)
	case entity.KindTask:
		return c.DeleteTask(id)
	case entity.KindHabit:
		return c.DeleteHabit(id)
	default:
		return false, fmt.Errorf("app: unknown kind %q", k)
	}
}
