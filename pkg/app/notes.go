package app

import (
	"tableflip.dev/daybook/pkg/entity"
)

// NoteInput carries the form fields of a new note.
type NoteInput struct {
	Title    string
	Content  string
	Category entity.Category
}

// NotePatch lists the note fields to change; nil fields are left alone.
type NotePatch struct {
	Title    *string
	Content  *string
	Category *entity.Category
}

// Note returns a copy of the note with id.
func (c *Controller) Note(id string) (entity.Note, bool) {
	i := c.State.NoteIndex(id)
	if i < 0 {
		return entity.Note{}, false
	}
	return c.State.Notes[i], true
}

// AddNote prepends a new note.
func (c *Controller) AddNote(in NoteInput) (entity.Note, error) {
	n := entity.NewNote(in.Title, in.Content, categoryOrDefault(in.Category), c.now())
	c.State.Notes = append([]entity.Note{n}, c.State.Notes...)
	return n, c.commit("note.add")
}

// EditNote merges p into the note and stamps UpdatedAt.
func (c *Controller) EditNote(id string, p NotePatch) (entity.Note, error) {
	i := c.State.NoteIndex(id)
	if i < 0 {
		return entity.Note{}, ErrNotFound
	}
	n := &c.State.Notes[i]
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Category != nil {
		n.Category = *p.Category
	}
	n.UpdatedAt = &entity.Timestamp{Time: c.now()}
	return *n, c.commit("note.edit")
}

// DeleteNote removes the note after confirmation. It reports whether
// anything was removed; a missing id or a declined prompt is not an error.
func (c *Controller) DeleteNote(id string) (bool, error) {
	i := c.State.NoteIndex(id)
	if i < 0 {
		return false, nil
	}
	if !c.confirm("Delete note %q?", c.State.Notes[i].Title) {
		return false, nil
	}
	c.State.Notes = append(c.State.Notes[:i:i], c.State.Notes[i+1:]...)
	return true, c.commit("note.delete")
}

func categoryOrDefault(cat entity.Category) entity.Category {
	if cat == "" {
		return entity.Personal
	}
	return cat
}
