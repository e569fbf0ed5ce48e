package view

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/ui"
)

// Item adapts a rendered todo to bubbles/list.Item.
type Item struct {
	ID      int
	Text    string
	Checked bool
}

func (i Item) Title() string {
	box := ui.Current().BoxUnchecked
	if i.Checked {
		box = ui.Current().BoxChecked
	}
	return fmt.Sprintf("%s %s", box, i.Text)
}

// Implement list.Item interface
func (i Item) Description() string { return "" }
func (i Item) FilterValue() string { return i.Text }

// Items returns the rendered todos as list items, front-first.
func (l *List) Items() []list.Item {
	out := make([]list.Item, 0, len(l.order))
	for _, h := range l.Handles() {
		out = append(out, Item{ID: h.ID(), Text: h.Label(), Checked: h.Checked()})
	}
	return out
}

// Stats counts done and pending rendered items.
func (l *List) Stats() (done, pending int) {
	todos := make([]model.Todo, 0, len(l.order))
	for _, h := range l.Handles() {
		todos = append(todos, h.Todo())
	}
	return model.Stats(todos)
}

// Delegate renders one Item per line: "> ☑ Buy milk (Leanne)".
type Delegate struct{}

func (d Delegate) Height() int                               { return 1 }
func (d Delegate) Spacing() int                              { return 0 }
func (d Delegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d Delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(Item)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Current().Selected.Render(">") + " "
	}
	fmt.Fprintln(w, prefix+line(it))
}

func line(it Item) string {
	t := ui.Current()
	if it.Checked {
		return t.Success.Render(t.BoxChecked) + " " + t.Done.Render(it.Text)
	}
	return t.Muted.Render(t.BoxUnchecked) + " " + it.Text
}

// Lines renders the list for non-interactive output. With group set,
// pending items come first under their own heading, then done items.
func (l *List) Lines(group bool) []string {
	t := ui.Current()
	items := l.Items()
	if !group {
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, line(it.(Item)))
		}
		return out
	}

	var pending, done []string
	for _, it := range items {
		it := it.(Item)
		if it.Checked {
			done = append(done, "  "+line(it))
		} else {
			pending = append(pending, "  "+line(it))
		}
	}
	out := []string{t.Pending.Render("Pending")}
	out = append(out, pending...)
	out = append(out, t.Success.Render("Done"))
	return append(out, done...)
}
