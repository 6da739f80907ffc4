package domain

import "time"

// Domain entity: бизнес-объект (истина).
// Не зависит от Gin, Postgres, Redis.
type Todo struct {
	ID        int64
	Title     string
	Completed bool
	UserID    int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
