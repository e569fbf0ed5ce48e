package model

// Todo is a to-do record owned by the remote service.
type Todo struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// User is read-only from the client's side.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Draft is a Todo before the service assigns it an id.
type Draft struct {
	UserID    int    `json:"userId" validate:"gt=0"`
	Title     string `json:"title" validate:"required,max=200"`
	Completed bool   `json:"completed"`
}

// NewDraft returns a pending draft for userID.
func NewDraft(userID int, title string) Draft {
	return Draft{UserID: userID, Title: title}
}

// Completion is the PATCH body used to flip a todo.
type Completion struct {
	Completed bool `json:"completed"`
}

// Stats counts done and pending todos.
func Stats(todos []Todo) (done, pending int) {
	for _, t := range todos {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
