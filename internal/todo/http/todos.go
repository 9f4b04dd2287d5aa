package http

import (
	"errors"
	"net/http"

	"github.com/bitmarsh/ticklist/internal/todo/service"
	"github.com/bitmarsh/ticklist/pkg/httpx"
	"github.com/bitmarsh/ticklist/pkg/slogx"
	"github.com/bitmarsh/ticklist/pkg/todosdk"
)

type TodosHandler struct {
	TodoService *service.TodoService
}

// HandleCreate godoc
//
//	@Summary		Create a todo
//	@Description	Creates a todo from a required text field. Nothing is stored when validation fails.
//	@Tags			Todos
//	@Accept			json
//	@Produce		json
//	@Param			body	body		todosdk.CreateTodoRequest	true	"Todo text"
//	@Success		200		{object}	todosdk.Todo				"The created todo"
//	@Failure		400		{object}	todosdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	todosdk.ErrorResponse		"error, error_description"
//	@Router			/todos [post].
func (h *TodosHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req todosdk.CreateTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, todosdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	created, err := h.TodoService.CreateTodo(ctx, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrEmptyText) {
			writeError(w, http.StatusBadRequest, todosdk.ErrorCodeEmptyText, "text is required")
			return
		}
		log.Error("failed to create todo", "err", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, mapTodo(created))
}

// HandleList godoc
//
//	@Summary		List todos
//	@Description	Returns all todos in creation order.
//	@Tags			Todos
//	@Produce		json
//	@Success		200	{object}	todosdk.TodoListResponse	"todos"
//	@Failure		500	{object}	todosdk.ErrorResponse		"error, error_description"
//	@Router			/todos [get].
func (h *TodosHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	todos, err := h.TodoService.ListTodos(ctx)
	if err != nil {
		log.Error("failed to list todos", "err", err)
		writeServerError(w)
		return
	}

	out := make([]todosdk.Todo, 0, len(todos))
	for _, t := range todos {
		out = append(out, mapTodo(t))
	}
	httpx.WriteJSON(w, http.StatusOK, todosdk.TodoListResponse{Todos: out})
}

// HandleGet godoc
//
//	@Summary		Get a todo
//	@Description	Returns one todo by id. Malformed and unknown ids both answer 404.
//	@Tags			Todos
//	@Produce		json
//	@Param			id	path		string					true	"Todo id (ULID)"
//	@Success		200	{object}	todosdk.Todo			"The todo"
//	@Failure		404	{object}	todosdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	todosdk.ErrorResponse	"error, error_description"
//	@Router			/todos/{id} [get].
func (h *TodosHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	t, err := h.TodoService.GetTodoByID(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			writeNotFound(w)
			return
		}
		log.Error("failed to get todo", "err", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, mapTodo(t))
}

// HandleUpdate godoc
//
//	@Summary		Update a todo
//	@Description	Applies a partial update to text and/or completed. The server
//	@Description	derives completedAt: set on transition to completed, cleared otherwise.
//	@Tags			Todos
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Todo id (ULID)"
//	@Param			body	body		todosdk.UpdateTodoRequest	true	"Fields to update"
//	@Success		200		{object}	todosdk.Todo				"The updated todo"
//	@Failure		400		{object}	todosdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	todosdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	todosdk.ErrorResponse		"error, error_description"
//	@Router			/todos/{id} [patch].
func (h *TodosHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req todosdk.UpdateTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, todosdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	updated, err := h.TodoService.UpdateTodo(ctx, r.PathValue("id"), service.TodoPatch{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTodoNotFound):
			writeNotFound(w)
		case errors.Is(err, service.ErrEmptyText):
			writeError(w, http.StatusBadRequest, todosdk.ErrorCodeEmptyText, "text must not be blank")
		default:
			log.Error("failed to update todo", "err", err)
			writeServerError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, mapTodo(updated))
}

// HandleDelete godoc
//
//	@Summary		Delete a todo
//	@Description	Removes a todo by id and returns the deleted record.
//	@Tags			Todos
//	@Produce		json
//	@Param			id	path		string					true	"Todo id (ULID)"
//	@Success		200	{object}	todosdk.Todo			"The deleted todo"
//	@Failure		404	{object}	todosdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	todosdk.ErrorResponse	"error, error_description"
//	@Router			/todos/{id} [delete].
func (h *TodosHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	deleted, err := h.TodoService.DeleteTodo(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			writeNotFound(w)
			return
		}
		log.Error("failed to delete todo", "err", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, mapTodo(deleted))
}
