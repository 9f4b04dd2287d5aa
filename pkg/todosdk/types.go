package todosdk

import "time"

// Todo is the wire form of a todo record. CompletedAt is a unix-millisecond
// timestamp, null unless the todo is completed.
type Todo struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Completed   bool      `json:"completed"`
	CompletedAt *int64    `json:"completedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TodoListResponse wraps GET /todos.
type TodoListResponse struct {
	Todos []Todo `json:"todos"`
}

// CreateTodoRequest is the body of POST /todos.
type CreateTodoRequest struct {
	Text string `json:"text"`
}

// UpdateTodoRequest is the body of PATCH /todos/{id}. Absent fields are left
// untouched.
type UpdateTodoRequest struct {
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// UserProfile is the public view of a user.
type UserProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// RegisterRequest is the body of POST /users.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the livez and readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
