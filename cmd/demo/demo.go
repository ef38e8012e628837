// Command demo fills a daybook with sample entries and prints each tab.
package main

import (
	"flag"
	"log"
	"time"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/config"
	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/state"
	"tableflip.dev/daybook/pkg/store"
)

func main() {
	path := flag.String("path", "", "Daybook directory; defaults to the configured path.")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	opts := cfg.StoreOptions()
	if *path != "" {
		opts.Path = *path
	}
	kv, err := store.Open(opts)
	if err != nil {
		log.Fatalf("opening store: %v", err)
	}
	defer kv.Close()

	c := app.New(kv, app.Options{})
	if err := c.Load(); err != nil {
		log.Fatalf("loading daybook: %v", err)
	}
	if err := seed(c, time.Now()); err != nil {
		log.Fatalf("seeding: %v", err)
	}

	c.SetRenderer(printers.New(false))
	for _, tab := range []state.Tab{state.TabNotes, state.TabTasks, state.TabHabits} {
		c.SwitchTab(tab)
	}
}

func seed(c *app.Controller, now time.Time) error {
	due := func(d time.Duration) string {
		return now.Add(d).Format(entity.DueLayout)
	}
	notes := []app.NoteInput{
		{Title: "Reading list", Content: "The Pragmatic Programmer\nA Philosophy of Software Design", Category: entity.Study},
		{Title: "Gift ideas", Content: "Board game, plant, concert tickets", Category: entity.Personal},
		{Title: "Offsite agenda", Content: "Roadmap review, then hack day", Category: entity.Work},
	}
	tasks := []app.TaskInput{
		{Title: "Pay rent", Category: entity.Personal, Priority: entity.High, DueDate: due(-2 * time.Hour)},
		{Title: "Review pull requests", Category: entity.Work, Priority: entity.Medium, DueDate: due(3 * time.Hour)},
		{Title: "Sketch the logo", Category: entity.Ideas, Priority: entity.Low},
	}
	habits := []app.HabitInput{
		{Title: "Read 20 pages", Category: entity.Study},
		{Title: "Walk", Category: entity.Personal},
	}

	for _, n := range notes {
		if _, err := c.AddNote(n); err != nil {
			return err
		}
	}
	for _, t := range tasks {
		if _, err := c.AddTask(t); err != nil {
			return err
		}
	}
	for i, h := range habits {
		added, err := c.AddHabit(h)
		if err != nil {
			return err
		}
		if i == 0 {
			if _, err := c.ToggleHabit(added.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
