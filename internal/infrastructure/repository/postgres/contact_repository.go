package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/contact"
	qb "github.com/riskibarqy/fantasy-cricket/internal/platform/querybuilder"
)

type contactMessageTableModel struct {
	ID        int64          `db:"id"`
	Name      string         `db:"name"`
	Email     string         `db:"email"`
	Subject   sql.NullString `db:"subject"`
	Message   string         `db:"message"`
	Status    string         `db:"status"`
	CreatedAt time.Time      `db:"created_at"`
}

type contactMessageInsertModel struct {
	Name    string         `db:"name"`
	Email   string         `db:"email"`
	Subject sql.NullString `db:"subject"`
	Message string         `db:"message"`
	Status  string         `db:"status"`
}

var contactMessageSelectColumns = []string{
	"id",
	"name",
	"email",
	"subject",
	"message",
	"status",
	"created_at",
}

type ContactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, m contact.Message) (contact.Message, error) {
	status := m.Status
	if status == "" {
		status = contact.StatusNew
	}

	query, args, err := qb.InsertModel("contact_messages", contactMessageInsertModel{
		Name:    m.Name,
		Email:   m.Email,
		Subject: nullString(m.Subject),
		Message: m.Message,
		Status:  string(status),
	}, "RETURNING "+strings.Join(contactMessageSelectColumns, ", "))
	if err != nil {
		return contact.Message{}, fmt.Errorf("build insert contact message query: %w", err)
	}

	var row contactMessageTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return contact.Message{}, fmt.Errorf("insert contact message: %w", err)
	}

	return contact.Message{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Subject:   row.Subject.String,
		Message:   row.Message,
		Status:    contact.Status(row.Status),
		CreatedAt: row.CreatedAt,
	}, nil
}
