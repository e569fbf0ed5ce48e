// Package app sequences user actions against the to-do service and keeps
// the local mirrors and the rendered list in step.
//
// Every action is split in two. The request half returns a tea.Cmd that
// only performs network I/O and reports back with a message; the apply half
// (Handle) runs on the UI goroutine and is the only code that mutates the
// mirrors or the view.
package app

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/idilsaglam/todos/internal/api"
	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/validator"
	"github.com/idilsaglam/todos/internal/view"
)

// Notifier surfaces an error to the user.
type Notifier interface {
	Notify(err error)
}

// NotifyFunc adapts a function to Notifier.
type NotifyFunc func(err error)

func (f NotifyFunc) Notify(err error) { f(err) }

type Options struct {
	// RollbackToggle reverts the checkbox when the PATCH fails.
	RollbackToggle bool
}

type Controller struct {
	svc    api.Service
	view   *view.List
	notify Notifier
	log    zerolog.Logger
	opts   Options

	todos []model.Todo
	users []model.User
	ready bool
}

func New(svc api.Service, v *view.List, n Notifier, log zerolog.Logger, opts Options) *Controller {
	return &Controller{
		svc:    svc,
		view:   v,
		notify: n,
		log:    log,
		opts:   opts,
	}
}

// Load fetches todos and users concurrently and reports both in a single
// LoadedMsg, so nothing is rendered until both requests are done.
func (c *Controller) Load(ctx context.Context) tea.Cmd {
	svc := c.svc
	return func() tea.Msg {
		var (
			msg LoadedMsg
			g   errgroup.Group
		)
		g.Go(func() error {
			msg.Todos, msg.TodosErr = svc.ListTodos(ctx)
			return msg.TodosErr
		})
		g.Go(func() error {
			msg.Users, msg.UsersErr = svc.ListUsers(ctx)
			return msg.UsersErr
		})
		// each error is kept on the message and handled on its own
		_ = g.Wait()
		return msg
	}
}

// Submit turns the add form into a draft and returns the create request.
// Invalid input is notified and yields a nil command.
func (c *Controller) Submit(ctx context.Context, userValue, title string) tea.Cmd {
	userID, err := strconv.Atoi(strings.TrimSpace(userValue))
	if err != nil {
		c.notify.Notify(&validator.Error{Message: "select a user"})
		return nil
	}
	draft := model.NewDraft(userID, strings.TrimSpace(title))
	if err := validator.ValidateStruct(&draft); err != nil {
		c.notify.Notify(err)
		return nil
	}

	svc := c.svc
	return func() tea.Msg {
		todo, err := svc.CreateTodo(ctx, draft)
		return CreatedMsg{Draft: draft, Todo: todo, Err: err}
	}
}

// Toggle checks or unchecks the item right away and returns the PATCH.
func (c *Controller) Toggle(id int, completed bool) tea.Cmd {
	h, ok := c.view.Lookup(id)
	if !ok {
		c.log.Warn().Int("id", id).Msg("toggle on a todo that is not rendered")
		return nil
	}
	previous := h.Checked()
	c.setCompleted(id, completed)

	svc, ctx := c.svc, h.Context()
	return func() tea.Msg {
		err := svc.SetCompleted(ctx, id, completed)
		return ToggledMsg{ID: id, Completed: completed, Previous: previous, Err: err}
	}
}

// Delete returns the DELETE request. The item stays until it succeeds.
func (c *Controller) Delete(id int) tea.Cmd {
	h, ok := c.view.Lookup(id)
	if !ok {
		c.log.Warn().Int("id", id).Msg("delete on a todo that is not rendered")
		return nil
	}

	svc, ctx := c.svc, h.Context()
	return func() tea.Msg {
		return DeletedMsg{ID: id, Err: svc.DeleteTodo(ctx, id)}
	}
}

// Handle applies a result message. It reports whether msg was one of ours.
func (c *Controller) Handle(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case LoadedMsg:
		c.applyLoaded(msg)
	case CreatedMsg:
		c.applyCreated(msg)
	case ToggledMsg:
		c.applyToggled(msg)
	case DeletedMsg:
		c.applyDeleted(msg)
	default:
		return false
	}
	return true
}

// Do runs cmd to completion and applies its message. A nil cmd is a no-op.
func (c *Controller) Do(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	c.Handle(cmd())
}

func (c *Controller) applyLoaded(msg LoadedMsg) {
	c.view.Reset()
	c.todos, c.users = nil, nil

	if msg.UsersErr != nil {
		c.fail("load users", msg.UsersErr)
	} else {
		c.users = msg.Users
		for _, u := range c.users {
			c.view.RenderUserOption(u)
		}
	}

	if msg.TodosErr != nil {
		c.fail("load todos", msg.TodosErr)
	} else {
		for _, t := range msg.Todos {
			c.upsert(t)
			c.view.RenderTodo(t, c.UserName)
		}
	}

	c.ready = true
	c.log.Debug().Int("todos", len(c.todos)).Int("users", len(c.users)).Msg("loaded")
}

func (c *Controller) applyCreated(msg CreatedMsg) {
	if msg.Err != nil {
		c.fail("create todo", msg.Err)
		return
	}
	c.upsert(msg.Todo)
	c.view.RenderTodo(msg.Todo, c.UserName)
	c.log.Info().Int("id", msg.Todo.ID).Str("title", msg.Todo.Title).Msg("todo created")
}

func (c *Controller) applyToggled(msg ToggledMsg) {
	if msg.Err == nil {
		c.log.Info().Int("id", msg.ID).Bool("completed", msg.Completed).Msg("todo updated")
		return
	}
	if _, ok := c.view.Lookup(msg.ID); !ok {
		c.log.Debug().Err(msg.Err).Int("id", msg.ID).Msg("toggle finished after removal")
		return
	}
	c.fail("update todo", msg.Err)
	if c.opts.RollbackToggle {
		c.setCompleted(msg.ID, msg.Previous)
	}
}

func (c *Controller) applyDeleted(msg DeletedMsg) {
	if msg.Err != nil {
		if _, ok := c.view.Lookup(msg.ID); !ok {
			c.log.Debug().Err(msg.Err).Int("id", msg.ID).Msg("delete finished after removal")
			return
		}
		c.fail("delete todo", msg.Err)
		return
	}
	c.todos = slices.DeleteFunc(c.todos, func(t model.Todo) bool { return t.ID == msg.ID })
	if err := c.view.RemoveTodo(msg.ID); err != nil {
		c.log.Debug().Err(err).Int("id", msg.ID).Msg("remove")
	}
	c.log.Info().Int("id", msg.ID).Msg("todo deleted")
}

// UserName resolves a user id against the user mirror. Unknown ids get a
// placeholder rather than failing the render.
func (c *Controller) UserName(userID int) string {
	i := slices.IndexFunc(c.users, func(u model.User) bool { return u.ID == userID })
	if i < 0 {
		c.log.Warn().Int("userId", userID).Msg("todo references an unknown user")
		return fmt.Sprintf("unknown user #%d", userID)
	}
	return c.users[i].Name
}

func (c *Controller) upsert(t model.Todo) {
	if i := slices.IndexFunc(c.todos, func(m model.Todo) bool { return m.ID == t.ID }); i >= 0 {
		c.todos = slices.Delete(c.todos, i, i+1)
	}
	c.todos = append(c.todos, t)
}

func (c *Controller) setCompleted(id int, completed bool) {
	_ = c.view.SetChecked(id, completed)
	if i := slices.IndexFunc(c.todos, func(t model.Todo) bool { return t.ID == id }); i >= 0 {
		c.todos[i].Completed = completed
	}
}

func (c *Controller) fail(op string, err error) {
	c.log.Error().Err(err).Str("op", op).Msg("request failed")
	c.notify.Notify(errors.WithMessage(err, op))
}

// Todos returns a copy of the todo mirror in fetch/creation order.
func (c *Controller) Todos() []model.Todo { return slices.Clone(c.todos) }

func (c *Controller) Users() []model.User { return slices.Clone(c.users) }

// Ready reports whether the first load has been applied.
func (c *Controller) Ready() bool { return c.ready }

func (c *Controller) View() *view.List { return c.view }
