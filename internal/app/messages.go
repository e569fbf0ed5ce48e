package app

import "github.com/idilsaglam/todos/internal/model"

// LoadedMsg carries both startup collections once both requests finished.
type LoadedMsg struct {
	Todos    []model.Todo
	Users    []model.User
	TodosErr error
	UsersErr error
}

type CreatedMsg struct {
	Draft model.Draft
	Todo  model.Todo
	Err   error
}

// ToggledMsg reports a completion PATCH. Previous is the checkbox state
// before the toggle was applied locally.
type ToggledMsg struct {
	ID        int
	Completed bool
	Previous  bool
	Err       error
}

type DeletedMsg struct {
	ID  int
	Err error
}
