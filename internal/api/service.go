package api

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"

	"github.com/idilsaglam/todos/internal/model"
)

// Service is the set of calls the controller makes against the remote
// to-do API. Every method blocks until the round-trip completes.
type Service interface {
	ListTodos(ctx context.Context) ([]model.Todo, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateTodo(ctx context.Context, draft model.Draft) (model.Todo, error)
	SetCompleted(ctx context.Context, id int, completed bool) error
	DeleteTodo(ctx context.Context, id int) error
}
