package dto

import "time"

type CreateTodoRequest struct {
	Title string `json:"title" binding:"required,min=1,max=128"`
}

// UpdateTodoRequest is a partial update: nil = не менять, значение = поставить.
type UpdateTodoRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=1,max=128"`
	Completed *bool   `json:"completed"`
}

type TodoResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

