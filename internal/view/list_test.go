package view_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/ui"
	"github.com/idilsaglam/todos/internal/view"
)

func names(m map[int]string) view.NameLookup {
	return func(id int) string { return m[id] }
}

func ids(l *view.List) []int {
	var out []int
	for _, h := range l.Handles() {
		out = append(out, h.ID())
	}
	return out
}

func TestRenderTodo_FrontInsertion(t *testing.T) {
	l := view.New(context.Background())
	lookup := names(map[int]string{1: "Leanne", 2: "Ervin"})

	l.RenderTodo(model.Todo{ID: 1, UserID: 1, Title: "A"}, lookup)
	l.RenderTodo(model.Todo{ID: 2, UserID: 2, Title: "B", Completed: true}, lookup)
	l.RenderTodo(model.Todo{ID: 3, UserID: 1, Title: "C"}, lookup)

	assert.Equal(t, []int{3, 2, 1}, ids(l))

	h, ok := l.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, "B (Ervin)", h.Label())
	assert.True(t, h.Checked())
}

func TestRenderTodo_ReplacesSameID(t *testing.T) {
	l := view.New(context.Background())
	lookup := names(map[int]string{1: "Leanne"})

	first := l.RenderTodo(model.Todo{ID: 201, UserID: 1, Title: "first"}, lookup)
	l.RenderTodo(model.Todo{ID: 1, UserID: 1, Title: "other"}, lookup)
	second := l.RenderTodo(model.Todo{ID: 201, UserID: 1, Title: "second"}, lookup)

	assert.True(t, first.Disposed())
	assert.False(t, second.Disposed())
	assert.Equal(t, []int{201, 1}, ids(l))
	assert.Equal(t, 2, l.Len())
}

func TestRenderUserOption_FetchOrder(t *testing.T) {
	l := view.New(context.Background())
	l.RenderUserOption(model.User{ID: 1, Name: "Leanne"})
	l.RenderUserOption(model.User{ID: 2, Name: "Ervin"})

	assert.Equal(t, []view.Option{{Value: 1, Label: "Leanne"}, {Value: 2, Label: "Ervin"}}, l.Options())
}

func TestRemoveTodo_RunsDisposers(t *testing.T) {
	l := view.New(context.Background())
	h := l.RenderTodo(model.Todo{ID: 5, UserID: 1, Title: "A"}, names(nil))

	var calls []string
	h.OnDispose(func() { calls = append(calls, "first") })
	h.OnDispose(func() { calls = append(calls, "second") })

	require.NoError(t, l.RemoveTodo(5))
	assert.Equal(t, []string{"second", "first"}, calls)
	assert.ErrorIs(t, h.Context().Err(), context.Canceled)
	assert.Zero(t, l.Len())

	_, ok := l.Lookup(5)
	assert.False(t, ok)

	h.OnDispose(func() { calls = append(calls, "late") })
	assert.Equal(t, "late", calls[2])
}

func TestRemoveTodo_NotRendered(t *testing.T) {
	l := view.New(context.Background())
	l.RenderTodo(model.Todo{ID: 1, Title: "A"}, names(nil))

	assert.ErrorIs(t, l.RemoveTodo(2), view.ErrNotRendered)
	assert.Equal(t, 1, l.Len())
}

func TestSetChecked(t *testing.T) {
	l := view.New(context.Background())
	l.RenderTodo(model.Todo{ID: 1, Title: "A"}, names(nil))

	require.NoError(t, l.SetChecked(1, true))
	h, _ := l.Lookup(1)
	assert.True(t, h.Todo().Completed)
	assert.ErrorIs(t, l.SetChecked(9, true), view.ErrNotRendered)
}

func TestReset(t *testing.T) {
	l := view.New(context.Background())
	h := l.RenderTodo(model.Todo{ID: 1, Title: "A"}, names(nil))
	l.RenderUserOption(model.User{ID: 1, Name: "Leanne"})

	l.Reset()
	assert.True(t, h.Disposed())
	assert.Zero(t, l.Len())
	assert.Empty(t, l.Options())
}

func TestLines(t *testing.T) {
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })

	l := view.New(context.Background())
	lookup := names(map[int]string{1: "Leanne"})
	l.RenderTodo(model.Todo{ID: 1, UserID: 1, Title: "A"}, lookup)
	l.RenderTodo(model.Todo{ID: 2, UserID: 1, Title: "B", Completed: true}, lookup)

	assert.Equal(t, []string{"[x] B (Leanne)", "[ ] A (Leanne)"}, l.Lines(false))
	assert.Equal(t, []string{"Pending", "  [ ] A (Leanne)", "Done", "  [x] B (Leanne)"}, l.Lines(true))

	done, pending := l.Stats()
	assert.Equal(t, 1, done)
	assert.Equal(t, 1, pending)
}
