package app

import (
	"strings"

	"tableflip.dev/daybook/pkg/entity"
)

// TaskInput carries the form fields of a new task.
type TaskInput struct {
	Title    string
	Category entity.Category
	Priority entity.Priority
	DueDate  string
}

// TaskPatch lists the task fields to change; nil fields are left alone.
type TaskPatch struct {
	Title    *string
	Category *entity.Category
	Priority *entity.Priority
	DueDate  *string
}

// Task returns a copy of the task with id.
func (c *Controller) Task(id string) (entity.Task, bool) {
	i := c.State.TaskIndex(id)
	if i < 0 {
		return entity.Task{}, false
	}
	return c.State.Tasks[i], true
}

// AddTask prepends a new open task.
func (c *Controller) AddTask(in TaskInput) (entity.Task, error) {
	prio := in.Priority
	if prio == "" {
		prio = entity.Medium
	}
	t := entity.NewTask(in.Title, categoryOrDefault(in.Category), prio, in.DueDate, c.now())
	c.State.Tasks = append([]entity.Task{t}, c.State.Tasks...)
	return t, c.commit("task.add")
}

// EditTask merges p into the task. Moving the due date re-arms its reminder.
func (c *Controller) EditTask(id string, p TaskPatch) (entity.Task, error) {
	i := c.State.TaskIndex(id)
	if i < 0 {
		return entity.Task{}, ErrNotFound
	}
	t := &c.State.Tasks[i]
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		due := strings.TrimSpace(*p.DueDate)
		if due != t.DueDate {
			t.DueDate = due
			t.ReminderSent = false
		}
	}
	return *t, c.commit("task.edit")
}

// ToggleTask flips completion.
func (c *Controller) ToggleTask(id string) (entity.Task, error) {
	i := c.State.TaskIndex(id)
	if i < 0 {
		return entity.Task{}, ErrNotFound
	}
	t := &c.State.Tasks[i]
	t.Completed = !t.Completed
	return *t, c.commit("task.toggle")
}

// DeleteTask removes the task after confirmation. It reports whether
// anything was removed.
func (c *Controller) DeleteTask(id string) (bool, error) {
	i := c.State.TaskIndex(id)
	if i < 0 {
		return false, nil
	}
	if !c.confirm("Delete task %q?", c.State.Tasks[i].Title) {
		return false, nil
	}
	c.State.Tasks = append(c.State.Tasks[:i:i], c.State.Tasks[i+1:]...)
	return true, c.commit("task.delete")
}
