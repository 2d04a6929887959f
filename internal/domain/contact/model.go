package contact

import (
	"context"
	"time"
)

type Status string

const (
	StatusNew     Status = "new"
	StatusRead    Status = "read"
	StatusReplied Status = "replied"
)

// Message is a support submission from the contact form.
type Message struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	Status    Status
	CreatedAt time.Time
}

// Repository describes contact message persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, m Message) (Message, error)
}
