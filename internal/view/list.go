package view

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/idilsaglam/todos/internal/model"
)

// ErrNotRendered is returned when an operation names an id that has no
// rendered item.
var ErrNotRendered = errors.New("todo is not rendered")

// NameLookup resolves a user id to the name shown next to a todo.
type NameLookup func(userID int) string

// Label is the text of a rendered todo, e.g. "Buy milk (Leanne)".
func Label(title, userName string) string {
	return fmt.Sprintf("%s (%s)", title, userName)
}

// Handle is the render reference of one todo. It owns a context that is
// cancelled, and a set of disposers that are run, when the item is removed.
type Handle struct {
	todo  model.Todo
	label string

	ctx       context.Context
	cancel    context.CancelFunc
	disposers []func()
	disposed  bool
}

func (h *Handle) ID() int        { return h.todo.ID }
func (h *Handle) Label() string  { return h.label }
func (h *Handle) Checked() bool  { return h.todo.Completed }
func (h *Handle) Disposed() bool { return h.disposed }

// Todo returns the record the item was rendered from, with Completed
// reflecting the current checkbox state.
func (h *Handle) Todo() model.Todo { return h.todo }

// Context is cancelled when the item is removed.
func (h *Handle) Context() context.Context { return h.ctx }

// OnDispose registers fn to run when the item is removed. On an item that
// is already removed fn runs immediately.
func (h *Handle) OnDispose(fn func()) {
	if h.disposed {
		fn()
		return
	}
	h.disposers = append(h.disposers, fn)
}

func (h *Handle) dispose() {
	if h.disposed {
		return
	}
	h.disposed = true
	for i := len(h.disposers) - 1; i >= 0; i-- {
		h.disposers[i]()
	}
	h.disposers = nil
	h.cancel()
}

// Option is one entry of the user selector.
type Option struct {
	Value int
	Label string
}

// List is the rendered to-do list plus the user selector options. Items are
// kept front-first; the most recently rendered todo is at index 0.
type List struct {
	root    context.Context
	order   []int
	handles map[int]*Handle
	options []Option
}

// New returns an empty list whose item contexts derive from ctx.
func New(ctx context.Context) *List {
	return &List{
		root:    ctx,
		handles: make(map[int]*Handle),
	}
}

// RenderTodo builds an item for t and inserts it at the front. An item
// already rendered under the same id is disposed and replaced.
func (l *List) RenderTodo(t model.Todo, lookup NameLookup) *Handle {
	if old, ok := l.handles[t.ID]; ok {
		old.dispose()
		l.order = slices.DeleteFunc(l.order, func(id int) bool { return id == t.ID })
	}

	ctx, cancel := context.WithCancel(l.root)
	h := &Handle{
		todo:   t,
		label:  Label(t.Title, lookup(t.UserID)),
		ctx:    ctx,
		cancel: cancel,
	}
	l.handles[t.ID] = h
	l.order = slices.Insert(l.order, 0, t.ID)
	return h
}

// RenderUserOption appends an option for u, in call order.
func (l *List) RenderUserOption(u model.User) {
	l.options = append(l.options, Option{Value: u.ID, Label: u.Name})
}

// RemoveTodo disposes the item rendered for id and drops it from the list.
func (l *List) RemoveTodo(id int) error {
	h, ok := l.handles[id]
	if !ok {
		return ErrNotRendered
	}
	h.dispose()
	delete(l.handles, id)
	l.order = slices.DeleteFunc(l.order, func(v int) bool { return v == id })
	return nil
}

// SetChecked changes the checkbox state of a rendered item.
func (l *List) SetChecked(id int, checked bool) error {
	h, ok := l.handles[id]
	if !ok {
		return ErrNotRendered
	}
	h.todo.Completed = checked
	return nil
}

func (l *List) Lookup(id int) (*Handle, bool) {
	h, ok := l.handles[id]
	return h, ok
}

func (l *List) Len() int { return len(l.order) }

// Handles returns the rendered items in visual order.
func (l *List) Handles() []*Handle {
	out := make([]*Handle, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.handles[id])
	}
	return out
}

func (l *List) Options() []Option { return slices.Clone(l.options) }

// Reset disposes every item and clears both the list and the options.
func (l *List) Reset() {
	for _, h := range l.handles {
		h.dispose()
	}
	l.order = nil
	l.handles = make(map[int]*Handle)
	l.options = nil
}
