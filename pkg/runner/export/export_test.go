package export

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/store"
)

func controller(t *testing.T) *app.Controller {
	t.Helper()
	now := time.Date(2024, 1, 2, 8, 0, 0, 0, time.Local)
	c := app.New(store.NewMemory(), app.Options{Now: func() time.Time { return now }})
	require.NoError(t, c.Load())
	_, err := c.AddNote(app.NoteInput{Title: "groceries", Content: "milk"})
	require.NoError(t, err)
	_, err = c.AddTask(app.TaskInput{Title: "Pay rent", DueDate: "2024-01-03T09:00"})
	require.NoError(t, err)
	_, err = c.AddHabit(app.HabitInput{Title: "read"})
	require.NoError(t, err)
	return c
}

func TestExportJSON(t *testing.T) {
	var out bytes.Buffer
	e := Export{Output: "json", Controller: controller(t), Out: &out}
	require.NoError(t, e.Do(context.Background()))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "light", doc["theme"])
	assert.Len(t, doc["notes"], 1)
	assert.Len(t, doc["tasks"], 1)
	assert.Len(t, doc["habits"], 1)
}

func TestExportYAML(t *testing.T) {
	var out bytes.Buffer
	e := Export{Controller: controller(t), Out: &out}
	require.NoError(t, e.Do(context.Background()))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "light", doc["theme"])
	assert.Contains(t, out.String(), "Pay rent")
}

func TestExportUnknownOutput(t *testing.T) {
	e := Export{Output: "xml", Controller: controller(t), Out: &bytes.Buffer{}}
	assert.EqualError(t, e.Do(context.Background()), `export: unknown output "xml"`)
}
