package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/notify"
	"tableflip.dev/daybook/pkg/state"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/viewmodel"
)

var (
	equateTimestamps = cmp.Comparer(func(a, b entity.Timestamp) bool { return a.Equal(b.Time) })
	fixedNow         = time.Date(2024, 1, 2, 8, 0, 0, 0, time.Local)
)

type recordingNotifier struct {
	sent []notify.Notification
	err  error
}

func (r *recordingNotifier) Notify(_ context.Context, n notify.Notification) error {
	r.sent = append(r.sent, n)
	return r.err
}

type failingStorage struct {
	*store.Memory
}

func (failingStorage) Write(string, []byte) error { return errors.New("disk full") }

type harness struct {
	c       *Controller
	kv      *store.Memory
	renders []viewmodel.View
	prompts []string
	confirm bool
	notes   *recordingNotifier
	now     time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{kv: store.NewMemory(), confirm: true, notes: &recordingNotifier{}, now: fixedNow}
	h.c = New(h.kv, Options{
		Renderer: RenderFunc(func(v viewmodel.View) { h.renders = append(h.renders, v) }),
		Confirmer: ConfirmFunc(func(p string) bool {
			h.prompts = append(h.prompts, p)
			return h.confirm
		}),
		Notifier: h.notes,
		Now:      func() time.Time { return h.now },
	})
	if err := h.c.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	return h
}

// assertMirrored checks that storage holds exactly what the controller holds.
func (h *harness) assertMirrored(t *testing.T) {
	t.Helper()
	stored := state.New(nil)
	stored.Load(h.kv, h.now)
	opts := []cmp.Option{equateTimestamps, cmpopts.EquateEmpty()}
	if diff := cmp.Diff(h.c.State.Notes, stored.Notes, opts...); diff != "" {
		t.Fatalf("notes not mirrored (-mem +stored):\n%s", diff)
	}
	if diff := cmp.Diff(h.c.State.Tasks, stored.Tasks, opts...); diff != "" {
		t.Fatalf("tasks not mirrored (-mem +stored):\n%s", diff)
	}
	if diff := cmp.Diff(h.c.State.Habits, stored.Habits, opts...); diff != "" {
		t.Fatalf("habits not mirrored (-mem +stored):\n%s", diff)
	}
}

func ptr[T any](v T) *T { return &v }

func TestCRUDKeepsMirror(t *testing.T) {
	h := newHarness(t)

	n, err := h.c.AddNote(NoteInput{Title: "Groceries", Content: "milk", Category: entity.Personal})
	if err != nil {
		t.Fatalf("add note: %v", err)
	}
	h.assertMirrored(t)
	if _, err := h.c.EditNote(n.ID, NotePatch{Content: ptr("milk, eggs")}); err != nil {
		t.Fatalf("edit note: %v", err)
	}
	h.assertMirrored(t)

	task, err := h.c.AddTask(TaskInput{Title: "Ship", Category: entity.Work})
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	h.assertMirrored(t)
	if _, err := h.c.EditTask(task.ID, TaskPatch{Priority: ptr(entity.High)}); err != nil {
		t.Fatalf("edit task: %v", err)
	}
	h.assertMirrored(t)

	habit, err := h.c.AddHabit(HabitInput{Title: "Walk"})
	if err != nil {
		t.Fatalf("add habit: %v", err)
	}
	h.assertMirrored(t)
	if _, err := h.c.EditHabit(habit.ID, HabitPatch{Category: ptr(entity.Study)}); err != nil {
		t.Fatalf("edit habit: %v", err)
	}
	h.assertMirrored(t)

	for _, del := range []func() (bool, error){
		func() (bool, error) { return h.c.DeleteNote(n.ID) },
		func() (bool, error) { return h.c.DeleteTask(task.ID) },
		func() (bool, error) { return h.c.DeleteHabit(habit.ID) },
	} {
		ok, err := del()
		if err != nil || !ok {
			t.Fatalf("delete: %v, %v", ok, err)
		}
		h.assertMirrored(t)
	}
	if len(h.c.State.Notes)+len(h.c.State.Tasks)+len(h.c.State.Habits) != 0 {
		t.Fatalf("expected empty collections")
	}
}

func TestEditNoteMergesAndStamps(t *testing.T) {
	h := newHarness(t)
	n, _ := h.c.AddNote(NoteInput{Title: "Standup", Content: "notes", Category: entity.Work})
	h.now = fixedNow.Add(time.Hour)
	got, err := h.c.EditNote(n.ID, NotePatch{Title: ptr("Retro")})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got.Title != "Retro" || got.Content != "notes" || got.Category != entity.Work {
		t.Fatalf("unexpected merge %+v", got)
	}
	if got.UpdatedAt == nil || !got.UpdatedAt.Equal(h.now) {
		t.Fatalf("expected updatedAt stamped, got %v", got.UpdatedAt)
	}
}

func TestDeleteMissingIsNoop(t *testing.T) {
	h := newHarness(t)
	if _, err := h.c.AddNote(NoteInput{Title: "keep"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	writes, renders := h.kv.Writes(), len(h.renders)

	for _, k := range entity.Kinds() {
		ok, err := h.c.Delete(k, "missing")
		if err != nil || ok {
			t.Fatalf("delete missing %s: %v, %v", k, ok, err)
		}
	}
	if h.kv.Writes() != writes || len(h.renders) != renders || len(h.prompts) != 0 {
		t.Fatalf("delete of missing id must not save, render or prompt")
	}
	if len(h.c.State.Notes) != 1 {
		t.Fatalf("state mutated")
	}
}

func TestDeclinedDeleteKeepsEntity(t *testing.T) {
	h := newHarness(t)
	task, _ := h.c.AddTask(TaskInput{Title: "Pay rent"})
	h.confirm = false
	writes := h.kv.Writes()
	ok, err := h.c.DeleteTask(task.ID)
	if err != nil || ok {
		t.Fatalf("declined delete: %v, %v", ok, err)
	}
	if len(h.prompts) != 1 || h.prompts[0] != `Delete task "Pay rent"?` {
		t.Fatalf("unexpected prompts %q", h.prompts)
	}
	if h.kv.Writes() != writes || len(h.c.State.Tasks) != 1 {
		t.Fatalf("declined delete must not mutate")
	}
}

func TestEditAndToggleMissingReturnNotFound(t *testing.T) {
	h := newHarness(t)
	if _, err := h.c.EditNote("x", NotePatch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("edit note: %v", err)
	}
	if _, err := h.c.EditTask("x", TaskPatch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("edit task: %v", err)
	}
	if _, err := h.c.EditHabit("x", HabitPatch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("edit habit: %v", err)
	}
	if _, err := h.c.ToggleTask("x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("toggle task: %v", err)
	}
	if _, err := h.c.ToggleHabit("x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("toggle habit: %v", err)
	}
	if err := h.c.Toggle(entity.KindNote, "x"); err == nil {
		t.Fatalf("notes cannot be toggled")
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	h := newHarness(t)
	task, _ := h.c.AddTask(TaskInput{Title: "Ship"})
	if _, err := h.c.ToggleTask(task.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	got, err := h.c.ToggleTask(task.ID)
	if err != nil || got.Completed != task.Completed {
		t.Fatalf("expected completed restored, got %+v, %v", got, err)
	}

	habit, _ := h.c.AddHabit(HabitInput{Title: "Walk"})
	h.c.State.Habits[0].Streak = 3
	first, err := h.c.ToggleHabit(habit.ID)
	if err != nil || first.Streak != 4 || !first.History["2024-01-02"] {
		t.Fatalf("expected marked done, got %+v, %v", first, err)
	}
	second, err := h.c.ToggleHabit(habit.ID)
	if err != nil || second.Streak != 3 {
		t.Fatalf("expected streak restored, got %+v, %v", second, err)
	}
	if _, ok := second.History["2024-01-02"]; ok {
		t.Fatalf("expected today's history entry removed")
	}
	if !first.History["2024-01-02"] {
		t.Fatalf("returned habits must not share history")
	}
	h.assertMirrored(t)
}

func TestHabitStreakFloorAndGapNaive(t *testing.T) {
	h := newHarness(t)
	habit, _ := h.c.AddHabit(HabitInput{Title: "Read"})
	h.c.State.Habits[0].History["2024-01-02"] = true
	got, _ := h.c.ToggleHabit(habit.ID)
	if got.Streak != 0 {
		t.Fatalf("streak must not go below zero, got %d", got.Streak)
	}

	if _, err := h.c.ToggleHabit(habit.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	h.now = fixedNow.AddDate(0, 0, 5)
	got, _ = h.c.ToggleHabit(habit.ID)
	if got.Streak != 2 {
		t.Fatalf("missed days do not reset the streak, got %d", got.Streak)
	}
}

func TestFilterAndEmptyView(t *testing.T) {
	h := newHarness(t)
	h.c.AddNote(NoteInput{Title: "Groceries", Content: "milk"})
	h.c.AddNote(NoteInput{Title: "Standup", Content: "blockers"})

	h.c.SetFilter("")
	last := h.renders[len(h.renders)-1]
	if len(last.Items) != 2 || last.Empty {
		t.Fatalf("empty filter should show all, got %+v", last)
	}
	h.c.SetFilter("BLOCK")
	last = h.renders[len(h.renders)-1]
	if len(last.Items) != 1 || last.Items[0].Title != "Standup" {
		t.Fatalf("expected content match, got %+v", last.Items)
	}
	h.c.SetFilter("nowhere")
	last = h.renders[len(h.renders)-1]
	if !last.Empty {
		t.Fatalf("expected empty-state view")
	}
}

func TestTaskOrderIncompleteFirst(t *testing.T) {
	h := newHarness(t)
	var ids []string
	for _, title := range []string{"a", "b", "c", "d"} {
		task, _ := h.c.AddTask(TaskInput{Title: title})
		ids = append(ids, task.ID)
	}
	// Newest first: d c b a. Complete c and a.
	h.c.ToggleTask(ids[2])
	h.c.ToggleTask(ids[0])
	h.c.SwitchTab(state.TabTasks)

	last := h.renders[len(h.renders)-1]
	var got []string
	for _, it := range last.Items {
		got = append(got, it.Title)
	}
	if diff := cmp.Diff([]string{"d", "b", "c", "a"}, got); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestCreateTaskExample(t *testing.T) {
	h := newHarness(t)
	existing, _ := h.c.AddTask(TaskInput{Title: "Older"})
	task, err := h.c.AddTask(TaskInput{
		Title:    "Pay rent",
		Category: entity.Personal,
		Priority: entity.High,
		DueDate:  "2024-01-01T09:00",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if task.Completed || task.ReminderSent || task.ID == "" || task.ID == existing.ID {
		t.Fatalf("unexpected task %+v", task)
	}
	if h.c.State.Tasks[0].ID != task.ID {
		t.Fatalf("new task should be first")
	}
	if task.Priority != entity.High || task.Category != entity.Personal || task.DueDate != "2024-01-01T09:00" {
		t.Fatalf("fields not kept: %+v", task)
	}
}

func TestAddDefaults(t *testing.T) {
	h := newHarness(t)
	task, _ := h.c.AddTask(TaskInput{Title: "x"})
	if task.Priority != entity.Medium || task.Category != entity.Personal {
		t.Fatalf("unexpected defaults %+v", task)
	}
	habit, _ := h.c.AddHabit(HabitInput{Title: "y"})
	if habit.Streak != 0 || habit.History == nil || len(habit.History) != 0 {
		t.Fatalf("unexpected habit defaults %+v", habit)
	}
}

func TestRemindersFireOnce(t *testing.T) {
	h := newHarness(t)
	due, _ := h.c.AddTask(TaskInput{Title: "Pay rent", DueDate: "2024-01-01T09:00"})
	h.c.AddTask(TaskInput{Title: "Later", DueDate: "2024-02-01T09:00"})

	fired, err := h.c.ScanReminders(context.Background())
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(fired) != 1 || fired[0].ID != due.ID || len(h.notes.sent) != 1 {
		t.Fatalf("expected one reminder, got %+v / %+v", fired, h.notes.sent)
	}
	h.assertMirrored(t)

	writes := h.kv.Writes()
	fired, err = h.c.ScanReminders(context.Background())
	if err != nil || len(fired) != 0 || len(h.notes.sent) != 1 {
		t.Fatalf("second scan must not fire: %+v, %v", fired, err)
	}
	if h.kv.Writes() != writes {
		t.Fatalf("quiet scan must not save")
	}
}

func TestReminderRearmedByDueChange(t *testing.T) {
	h := newHarness(t)
	task, _ := h.c.AddTask(TaskInput{Title: "Call", DueDate: "2024-01-01T09:00"})
	h.c.ScanReminders(context.Background())

	same, _ := h.c.EditTask(task.ID, TaskPatch{DueDate: ptr("2024-01-01T09:00"), Title: ptr("Call mom")})
	if !same.ReminderSent {
		t.Fatalf("unchanged due date keeps the flag")
	}
	moved, _ := h.c.EditTask(task.ID, TaskPatch{DueDate: ptr("2024-01-02T07:00")})
	if moved.ReminderSent {
		t.Fatalf("moved due date must re-arm the reminder")
	}
	fired, _ := h.c.ScanReminders(context.Background())
	if len(fired) != 1 {
		t.Fatalf("expected re-armed reminder to fire")
	}
}

func TestReminderNotifyErrorStillMarks(t *testing.T) {
	h := newHarness(t)
	h.notes.err = errors.New("no display")
	h.c.AddTask(TaskInput{Title: "Pay rent", DueDate: "2024-01-01T09:00"})
	if _, err := h.c.ScanReminders(context.Background()); err != nil {
		t.Fatalf("notify errors must not fail the scan: %v", err)
	}
	if !h.c.State.Tasks[0].ReminderSent {
		t.Fatalf("expected reminder marked")
	}
}

func TestSaveErrorIsWrapped(t *testing.T) {
	kv := failingStorage{store.NewMemory()}
	renders := 0
	c := New(kv, Options{Renderer: RenderFunc(func(viewmodel.View) { renders++ }), Now: func() time.Time { return fixedNow }})
	_, err := c.AddNote(NoteInput{Title: "x"})
	if err == nil || err.Error() != "app: save: disk full" {
		t.Fatalf("expected wrapped save error, got %v", err)
	}
	if renders != 1 || len(c.State.Notes) != 1 {
		t.Fatalf("expected render of in-memory state after failed save")
	}
}

func TestThemeToggleAndPIN(t *testing.T) {
	h := newHarness(t)
	theme, err := h.c.ToggleTheme()
	if err != nil || theme != state.ThemeDark {
		t.Fatalf("toggle theme: %v, %v", theme, err)
	}
	if v, _ := h.kv.Read(store.KeyTheme); string(v) != "dark" {
		t.Fatalf("theme not persisted: %q", v)
	}
	if _, err := h.c.SetTheme("neon"); err == nil {
		t.Fatalf("expected unknown theme error")
	}

	if err := h.c.SetPIN("4321"); err != nil {
		t.Fatalf("set pin: %v", err)
	}
	if !h.c.Locked() || h.c.Unlock("4321") != nil || h.c.Unlock("1111") == nil {
		t.Fatalf("unexpected PIN behaviour")
	}
	if err := h.c.ClearPIN(); err != nil || h.c.Locked() {
		t.Fatalf("clear pin: %v", err)
	}
}

func TestResolvePrefix(t *testing.T) {
	h := newHarness(t)
	h.c.State.Notes = []entity.Note{{ID: "abc123"}, {ID: "abd456"}, {ID: "xyz"}}
	if id, err := h.c.Resolve(entity.KindNote, "abc"); err != nil || id != "abc123" {
		t.Fatalf("resolve: %q, %v", id, err)
	}
	if _, err := h.c.Resolve(entity.KindNote, "ab"); !errors.Is(err, ErrAmbiguous) {
		t.Fatalf("expected ambiguous, got %v", err)
	}
	if _, err := h.c.Resolve(entity.KindNote, "q"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestShiftMonth(t *testing.T) {
	h := newHarness(t)
	h.c.SwitchTab(state.TabCalendar)
	h.c.ShiftMonth(1)
	last := h.renders[len(h.renders)-1]
	if last.Calendar == nil || last.Calendar.Title != "February 2024" {
		t.Fatalf("expected February, got %+v", last.Calendar)
	}
	h.c.ShiftMonth(0)
	last = h.renders[len(h.renders)-1]
	if last.Calendar.Title != "January 2024" {
		t.Fatalf("expected current month, got %q", last.Calendar.Title)
	}
}

func TestReportGroupsByCategory(t *testing.T) {
	h := newHarness(t)
	h.c.State.Tasks = []entity.Task{
		{ID: "1", Title: "Ship", Category: entity.Work, DueDate: "2024-01-01T10:00", Completed: true},
		{ID: "2", Title: "Rent", Category: entity.Personal, DueDate: "2024-01-01T09:00"},
		{ID: "3", Title: "Old", Category: entity.Work, DueDate: "2023-06-01T09:00"},
	}
	h.c.State.Habits = []entity.Habit{
		{ID: "h", Title: "Walk", Category: entity.Personal, History: map[string]bool{"2023-12-31": true, "2024-01-01": true, "2023-01-01": true}},
	}
	res := h.c.Report(fixedNow, fixedNow.AddDate(0, 0, -7))
	if res.Since.After(res.Until) {
		t.Fatalf("bounds should be ordered")
	}
	if len(res.Sections) != 2 || res.Sections[0].Category != entity.Personal || res.Sections[1].Category != entity.Work {
		t.Fatalf("unexpected sections %+v", res.Sections)
	}
	if res.Completed != 1 || res.CheckIns != 2 {
		t.Fatalf("unexpected totals %+v", res)
	}
	if res.Sections[0].Habits[0].Days != 2 || len(res.Sections[1].Tasks) != 1 {
		t.Fatalf("unexpected section content %+v", res.Sections)
	}
}

func TestReportOrdersTasksByPriority(t *testing.T) {
	h := newHarness(t)
	h.c.State.Tasks = []entity.Task{
		{ID: "low", Category: entity.Work, Priority: entity.Low, DueDate: "2024-01-01T08:00"},
		{ID: "med", Category: entity.Work, Priority: entity.Medium, DueDate: "2024-01-01T09:00"},
		{ID: "high", Category: entity.Work, Priority: entity.High, DueDate: "2024-01-01T10:00"},
		{ID: "unset", Category: entity.Work, DueDate: "2024-01-01T11:00"},
	}
	res := h.c.Report(fixedNow.AddDate(0, 0, -7), fixedNow)
	if len(res.Sections) != 1 {
		t.Fatalf("unexpected sections %+v", res.Sections)
	}
	var got []string
	for _, task := range res.Sections[0].Tasks {
		got = append(got, task.ID)
	}
	want := []string{"high", "med", "unset", "low"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}
