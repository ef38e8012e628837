// Package tui hosts the Bubble Tea program for the daybook terminal UI.
//
// All mutation happens in Update. Slow capabilities (desktop notification,
// speech recognition) run as commands whose results come back as messages.
// Timers carry a generation or token so a tick scheduled before a reset is
// dropped.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/focus"
	"tableflip.dev/daybook/pkg/gesture"
	"tableflip.dev/daybook/pkg/notify"
	"tableflip.dev/daybook/pkg/reminder"
	"tableflip.dev/daybook/pkg/state"
	"tableflip.dev/daybook/pkg/timeutil"
	"tableflip.dev/daybook/pkg/viewmodel"
	"tableflip.dev/daybook/pkg/voice"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeForm
	modeConfirm
	modeLocked
	modeHelp
)

const (
	headerRows = 3
	footerRows = 3
)

type (
	reminderTickMsg struct{ gen int }
	focusTickMsg    struct{ gen int }
	longPressMsg    struct{ token int }
	sentMsg         struct{ err error }
	dictationMsg    struct {
		form  *form
		field field
		text  string
		err   error
	}
)

// Options configures the terminal UI.
type Options struct {
	Controller *app.Controller
	// Center delivers desktop notifications; nil disables them.
	Center *notify.Center
	Voice  voice.Recognizer

	ReminderInterval time.Duration
	FocusDuration    time.Duration
	Gesture          gesture.Config
	Log              *zap.Logger
}

type pendingDelete struct {
	kind  entity.Kind
	id    string
	title string
}

// Model contains UI state. It installs itself as the controller's renderer,
// confirmer and notifier.
type Model struct {
	c      *app.Controller
	center *notify.Center
	voice  voice.Recognizer
	log    *zap.Logger
	ctx    context.Context

	keys  keyMap
	help  help.Model
	theme Theme

	view          viewmodel.View
	mode          mode
	width, height int
	cursor        int
	offset        int

	search   textinput.Model
	pin      textinput.Model
	form     *form
	pending  *pendingDelete
	approved bool

	// alerts are shown as modals; outbox holds desktop sends not yet
	// scheduled.
	alerts []notify.Notification
	outbox []notify.Notification

	interval    time.Duration
	reminderGen int

	focus   *focus.Session
	gesture *gesture.Recognizer

	status    string
	statusErr bool
}

var _ tea.Model = (*Model)(nil)

// New builds the model over a loaded controller.
func New(ctx context.Context, o Options) *Model {
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
	if o.ReminderInterval <= 0 {
		o.ReminderInterval = reminder.DefaultInterval
	}
	m := &Model{
		c:        o.Controller,
		center:   o.Center,
		voice:    o.Voice,
		log:      o.Log,
		ctx:      ctx,
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    80,
		height:   24,
		interval: o.ReminderInterval,
		focus:    focus.New(o.FocusDuration),
		gesture:  gesture.New(o.Gesture),
	}

	m.search = textinput.New()
	m.search.Prompt = "/ "
	m.search.Placeholder = "search"

	m.pin = textinput.New()
	m.pin.Prompt = "PIN: "
	m.pin.EchoMode = textinput.EchoPassword
	m.pin.EchoCharacter = '•'

	m.c.SetRenderer(app.RenderFunc(m.render))
	m.c.SetConfirmer(app.ConfirmFunc(func(string) bool { return m.approved }))
	m.c.SetNotifier(queue{m})
	m.render(m.c.View())

	if m.c.Locked() {
		m.mode = modeLocked
		m.pin.Focus()
	}
	return m
}

// queue collects notifications raised inside Update.
type queue struct{ m *Model }

func (q queue) Notify(_ context.Context, n notify.Notification) error {
	q.m.alerts = append(q.m.alerts, n)
	q.m.outbox = append(q.m.outbox, n)
	return nil
}

func (m *Model) render(v viewmodel.View) {
	m.view = v
	if m.theme.Name != v.Theme {
		m.theme = ThemeFor(v.Theme)
	}
	m.clamp()
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.scheduleReminder(0)}
	if m.mode == modeLocked {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.clamp()
		return m, nil

	case reminderTickMsg:
		return m, m.scanReminders(msg.gen)

	case focusTickMsg:
		return m, m.tickFocus(msg.gen)

	case longPressMsg:
		return m, m.applyGesture(m.gesture.LongPressElapsed(msg.token))

	case sentMsg:
		if msg.err != nil {
			m.log.Debug("desktop notification failed", zap.Error(msg.err))
		}
		return m, nil

	case dictationMsg:
		m.finishDictation(msg)
		return m, nil

	case tea.MouseMsg:
		return m, m.updateMouse(msg)

	case tea.KeyMsg:
		return m, m.updateKey(msg)
	}

	switch m.mode {
	case modeSearch:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	case modeLocked:
		var cmd tea.Cmd
		m.pin, cmd = m.pin.Update(msg)
		return m, cmd
	case modeForm:
		return m, m.form.Update(msg)
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if m.mode == modeLocked {
		return m.updateLocked(msg)
	}
	if len(m.alerts) > 0 {
		if key.Matches(msg, m.keys.Dismiss) {
			m.alerts = m.alerts[1:]
		}
		return nil
	}
	switch m.mode {
	case modeSearch:
		return m.updateSearch(msg)
	case modeForm:
		return m.updateForm(msg)
	case modeConfirm:
		m.updateConfirm(msg)
		return nil
	case modeHelp:
		m.mode = modeList
		return nil
	}
	return m.updateList(msg)
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
		return nil
	case key.Matches(msg, m.keys.NextTab):
		m.shiftTab(1)
		return nil
	case key.Matches(msg, m.keys.PrevTab):
		m.shiftTab(-1)
		return nil
	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.search.SetValue(m.view.Filter)
		m.search.CursorEnd()
		return m.search.Focus()
	case key.Matches(msg, m.keys.Theme):
		if _, err := m.c.ToggleTheme(); err != nil {
			m.setError(err)
		}
		return nil
	case key.Matches(msg, m.keys.Focus):
		return m.toggleFocus()
	case key.Matches(msg, m.keys.Reset):
		m.focus.Reset()
		m.setStatus("focus reset")
		return nil
	case key.Matches(msg, m.keys.Lock):
		if !m.c.Locked() {
			m.setStatus("no PIN set; run daybook lock set")
			return nil
		}
		return m.lock()
	}

	switch msg.String() {
	case "1", "2", "3", "4":
		m.switchTab(state.Tabs()[int(msg.String()[0]-'1')])
		return nil
	}

	if m.view.Tab == state.TabCalendar {
		switch {
		case key.Matches(msg, m.keys.PrevMon):
			m.c.ShiftMonth(-1)
		case key.Matches(msg, m.keys.NextMon):
			m.c.ShiftMonth(1)
		case key.Matches(msg, m.keys.ThisMon):
			m.c.ShiftMonth(0)
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Add):
		return m.openAdd()
	case key.Matches(msg, m.keys.Edit):
		if it, ok := m.selected(); ok {
			return m.openEdit(it.ID)
		}
	case key.Matches(msg, m.keys.Toggle):
		if it, ok := m.selected(); ok {
			m.toggle(it)
		}
	case key.Matches(msg, m.keys.Delete):
		if it, ok := m.selected(); ok {
			m.askDelete(it)
		}
	}
	return nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.search.SetValue("")
		m.search.Blur()
		m.mode = modeList
		m.c.SetFilter("")
		return nil
	case tea.KeyEnter:
		m.search.Blur()
		m.mode = modeList
		return nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.view.Filter {
		m.c.SetFilter(v)
	}
	return cmd
}

func (m *Model) updateLocked(msg tea.KeyMsg) tea.Cmd {
	if msg.Type != tea.KeyEnter {
		var cmd tea.Cmd
		m.pin, cmd = m.pin.Update(msg)
		return cmd
	}
	if err := m.c.Unlock(m.pin.Value()); err != nil {
		m.pin.SetValue("")
		m.setError(err)
		return nil
	}
	m.pin.SetValue("")
	m.pin.Blur()
	m.mode = modeList
	m.setStatus("")
	m.reminderGen++
	return m.scheduleReminder(0)
}

// lock hides everything behind the PIN screen and stops the reminder loop.
func (m *Model) lock() tea.Cmd {
	m.mode = modeLocked
	m.form = nil
	m.pending = nil
	m.gesture.Cancel()
	m.reminderGen++
	m.pin.SetValue("")
	return m.pin.Focus()
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	f := m.form
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeForm()
		return nil
	case key.Matches(msg, m.keys.Submit),
		msg.Type == tea.KeyEnter && f.current() != fieldContent:
		return m.submitForm()
	case key.Matches(msg, m.keys.Dictate):
		return m.dictate()
	case msg.Type == tea.KeyTab:
		return f.move(1)
	case msg.Type == tea.KeyShiftTab:
		return f.move(-1)
	case (msg.Type == tea.KeyDown || msg.Type == tea.KeyUp) && f.current() != fieldContent:
		if msg.Type == tea.KeyDown {
			return f.move(1)
		}
		return f.move(-1)
	case !f.textField() && key.Matches(msg, m.keys.CycleFwd):
		f.cycle(1)
		return nil
	case !f.textField() && key.Matches(msg, m.keys.CycleBck):
		f.cycle(-1)
		return nil
	}
	return f.Update(msg)
}

func (m *Model) updateConfirm(msg tea.KeyMsg) {
	p := m.pending
	switch {
	case key.Matches(msg, m.keys.Confirm), msg.Type == tea.KeyEnter:
		m.approved = true
		removed, err := m.c.Delete(p.kind, p.id)
		m.approved = false
		switch {
		case err != nil:
			m.setError(err)
		case removed:
			m.setStatus(fmt.Sprintf("deleted %q", p.title))
		}
	case key.Matches(msg, m.keys.Decline):
		m.setStatus(fmt.Sprintf("kept %q", p.title))
	default:
		return
	}
	m.pending = nil
	m.mode = modeList
}

func (m *Model) updateMouse(msg tea.MouseMsg) tea.Cmd {
	if m.mode != modeList || len(m.alerts) > 0 {
		return nil
	}
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.moveCursor(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.moveCursor(1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if msg.Y == 0 {
			m.clickTab(msg.X)
			return nil
		}
		idx, ok := m.rowAt(msg.Y)
		if !ok {
			m.gesture.Cancel()
			return nil
		}
		it := m.view.Items[idx]
		token := m.gesture.Press(gesture.Target{ID: it.ID, AllowToggle: it.Kind == entity.KindTask}, msg.X, msg.Y)
		return tea.Tick(m.gesture.Config().LongPress, func(time.Time) tea.Msg {
			return longPressMsg{token: token}
		})
	case msg.Action == tea.MouseActionMotion:
		m.gesture.Move(msg.X, msg.Y)
	case msg.Action == tea.MouseActionRelease:
		return m.applyGesture(m.gesture.Release(msg.X, msg.Y))
	}
	return nil
}

func (m *Model) applyGesture(ev gesture.Event) tea.Cmd {
	if ev.Action == gesture.None || ev.Action == gesture.Reset {
		return nil
	}
	idx := m.indexOf(ev.Target.ID)
	if idx < 0 {
		return nil
	}
	it := m.view.Items[idx]
	switch ev.Action {
	case gesture.Tap:
		m.cursor = idx
		m.clamp()
	case gesture.Edit:
		m.cursor = idx
		return m.openEdit(it.ID)
	case gesture.Delete:
		m.askDelete(it)
	case gesture.Toggle:
		m.toggle(it)
	}
	return nil
}

func (m *Model) openAdd() tea.Cmd {
	kind, ok := kindFor(m.view.Tab)
	if !ok {
		return nil
	}
	m.form = newForm(kind, m.width)
	m.mode = modeForm
	return m.form.Focus()
}

func (m *Model) openEdit(id string) tea.Cmd {
	kind, ok := kindFor(m.view.Tab)
	if !ok {
		return nil
	}
	var f *form
	switch kind {
	case entity.KindNote:
		if n, ok := m.c.Note(id); ok {
			f = editNote(n, m.width)
		}
	case entity.KindTask:
		if t, ok := m.c.Task(id); ok {
			f = editTask(t, m.width)
		}
	case entity.KindHabit:
		if h, ok := m.c.Habit(id); ok {
			f = editHabit(h, m.width)
		}
	}
	if f == nil {
		return nil
	}
	m.form = f
	m.mode = modeForm
	return f.Focus()
}

func (m *Model) closeForm() {
	m.form = nil
	m.mode = modeList
}

func (m *Model) submitForm() tea.Cmd {
	f := m.form
	if err := f.validate(); err != nil {
		f.err = err.Error()
		return nil
	}
	kind, verb := f.kind, "added"
	if f.id != "" {
		verb = "updated"
	}
	err := f.submit(m.c)
	m.closeForm()
	if err != nil {
		m.setError(err)
		return nil
	}
	if f.id == "" {
		m.cursor = 0
		m.offset = 0
	}
	m.setStatus(fmt.Sprintf("%s %s", kind, verb))
	return nil
}

func (m *Model) dictate() tea.Cmd {
	f := m.form
	if !f.textField() || f.listening {
		return nil
	}
	f.listening = true
	f.err = ""
	fl, r, ctx := f.current(), m.voice, m.ctx
	return func() tea.Msg {
		if r == nil {
			return dictationMsg{form: f, field: fl, err: voice.ErrUnsupported}
		}
		text, err := r.Recognize(ctx)
		return dictationMsg{form: f, field: fl, text: text, err: err}
	}
}

// finishDictation appends the transcript to the field it was started from,
// if that form is still open.
func (m *Model) finishDictation(msg dictationMsg) {
	if m.form == nil || m.form != msg.form {
		return
	}
	f := m.form
	f.listening = false
	if msg.err != nil {
		if errors.Is(msg.err, voice.ErrUnsupported) {
			f.err = "voice input is not available"
		} else {
			f.err = "voice input failed: " + msg.err.Error()
		}
		return
	}
	f.setValue(msg.field, voice.Append(f.value(msg.field), msg.text))
}

func (m *Model) toggle(it viewmodel.Item) {
	if it.Kind == entity.KindNote {
		return
	}
	if err := m.c.Toggle(it.Kind, it.ID); err != nil {
		m.setError(err)
	}
}

func (m *Model) askDelete(it viewmodel.Item) {
	m.pending = &pendingDelete{kind: it.Kind, id: it.ID, title: it.Title}
	m.mode = modeConfirm
}

func (m *Model) scheduleReminder(d time.Duration) tea.Cmd {
	gen := m.reminderGen
	return tea.Tick(d, func(time.Time) tea.Msg { return reminderTickMsg{gen: gen} })
}

func (m *Model) scanReminders(gen int) tea.Cmd {
	if gen != m.reminderGen || m.mode == modeLocked {
		return nil
	}
	fired, err := m.c.ScanReminders(m.ctx)
	if err != nil {
		m.setError(err)
	}
	if len(fired) > 0 {
		m.log.Debug("reminders fired", zap.Int("count", len(fired)))
	}
	return tea.Batch(m.flush(), m.scheduleReminder(m.interval))
}

// flush hands queued desktop notifications to the notification center.
func (m *Model) flush() tea.Cmd {
	if len(m.outbox) == 0 {
		return nil
	}
	out := m.outbox
	m.outbox = nil
	if m.center == nil {
		return nil
	}
	center, ctx := m.center, m.ctx
	cmds := make([]tea.Cmd, 0, len(out))
	for _, n := range out {
		cmds = append(cmds, func() tea.Msg {
			return sentMsg{err: center.Send(ctx, n)}
		})
	}
	return tea.Batch(cmds...)
}

func (m *Model) scheduleFocus(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return focusTickMsg{gen: gen} })
}

func (m *Model) toggleFocus() tea.Cmd {
	now := m.c.Now()
	switch m.focus.Status() {
	case focus.Running:
		m.focus.Pause(now)
		m.setStatus("focus paused")
		return nil
	case focus.Paused:
		return m.scheduleFocus(m.focus.Resume(now))
	default:
		m.setStatus("focus " + timeutil.FormatDuration(m.focus.Duration()))
		return m.scheduleFocus(m.focus.Start(now))
	}
}

func (m *Model) tickFocus(gen int) tea.Cmd {
	if m.focus.Tick(gen, m.c.Now()) {
		n := notify.Notification{
			Title: "Focus session complete",
			Body:  fmt.Sprintf("%s of focus finished. Take a break.", timeutil.FormatDuration(m.focus.Duration())),
		}
		_ = queue{m}.Notify(m.ctx, n)
		return m.flush()
	}
	if gen == m.focus.Gen() && m.focus.Status() == focus.Running {
		return m.scheduleFocus(gen)
	}
	return nil
}

func (m *Model) switchTab(tab state.Tab) {
	if tab == m.view.Tab {
		return
	}
	m.gesture.Cancel()
	m.cursor, m.offset = 0, 0
	m.c.SwitchTab(tab)
}

func (m *Model) shiftTab(delta int) {
	tabs := state.Tabs()
	for i, t := range tabs {
		if t == m.view.Tab {
			m.switchTab(tabs[(i+delta+len(tabs))%len(tabs)])
			return
		}
	}
	m.switchTab(tabs[0])
}

func (m *Model) clickTab(x int) {
	pos := 0
	for _, t := range state.Tabs() {
		w := tabWidth(m.theme, t, t == m.view.Tab)
		if x >= pos && x < pos+w {
			m.switchTab(t)
			return
		}
		pos += w
	}
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clamp()
}

// clamp keeps the cursor on an item and the item on screen.
func (m *Model) clamp() {
	n := len(m.view.Items)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset > n-h {
		m.offset = n - h
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) listHeight() int {
	h := m.height - headerRows - footerRows
	if h < 1 {
		return 1
	}
	return h
}

// rowAt maps a screen line to an item index.
func (m *Model) rowAt(y int) (int, bool) {
	if m.view.Tab == state.TabCalendar || y < headerRows || y >= headerRows+m.listHeight() {
		return 0, false
	}
	i := y - headerRows + m.offset
	if i >= len(m.view.Items) {
		return 0, false
	}
	return i, true
}

func (m *Model) indexOf(id string) int {
	for i, it := range m.view.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (m *Model) selected() (viewmodel.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Items) {
		return viewmodel.Item{}, false
	}
	return m.view.Items[m.cursor], true
}

func (m *Model) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) setError(err error) {
	m.log.Warn("ui", zap.Error(err))
	m.status, m.statusErr = err.Error(), true
}

func kindFor(t state.Tab) (entity.Kind, bool) {
	switch t {
	case state.TabNotes:
		return entity.KindNote, true
	case state.TabTasks:
		return entity.KindTask, true
	case state.TabHabits:
		return entity.KindHabit, true
	}
	return "", false
}

// Run starts the program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, o Options) error {
	m := New(ctx, o)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
