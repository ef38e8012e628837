// Package glyph holds the symbols used to mark list rows.
package glyph

import (
	"fmt"

	"tableflip.dev/daybook/pkg/entity"
)

// Glyph is a symbol with the key used to refer to it and what it means.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	// Signifier glyphs annotate a row; the others lead it.
	Signifier bool
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// Mark is a leading row symbol.
type Mark int

const (
	Task Mark = iota
	Completed
	Note
	Habit
	HabitDone
	// signifiers
	High
	Medium
	Low
	Overdue
	None
)

func DefaultGlyphs() []Glyph {
	return []Glyph{
		Task:      {Key: "t", Symbol: "○", Meaning: "task"},
		Completed: {Key: "x", Symbol: "✔", Meaning: "task completed"},
		Note:      {Key: "n", Symbol: "⁃", Meaning: "note"},
		Habit:     {Key: "h", Symbol: "◇", Meaning: "habit"},
		HabitDone: {Key: "d", Symbol: "◆", Meaning: "habit done today"},
		High:      {Key: "*", Symbol: "✷", Meaning: "high priority", Signifier: true},
		Medium:    {Key: "+", Symbol: "·", Meaning: "medium priority", Signifier: true},
		Low:       {Key: "-", Symbol: " ", Meaning: "low priority", Signifier: true},
		Overdue:   {Key: "!", Symbol: "!", Meaning: "overdue", Signifier: true},
		None:      {Key: " ", Symbol: " ", Meaning: "none", Signifier: true},
	}
}

func (m Mark) Glyph() Glyph {
	g := DefaultGlyphs()
	if m < 0 || int(m) >= len(g) {
		return g[None]
	}
	return g[m]
}

func (m Mark) String() string {
	return m.Glyph().Symbol
}

// ForPriority maps a task priority to its signifier. Unknown priorities read
// as medium.
func ForPriority(p entity.Priority) Mark {
	switch p {
	case entity.High:
		return High
	case entity.Low:
		return Low
	default:
		return Medium
	}
}

// ForKind returns the open mark of an entity kind.
func ForKind(k entity.Kind) Mark {
	switch k {
	case entity.KindTask:
		return Task
	case entity.KindHabit:
		return Habit
	default:
		return Note
	}
}
