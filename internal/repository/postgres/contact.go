package postgres

import (
	"context"
	"database/sql"
	"time"

	"greystone-backend/internal/domain"
	"greystone-backend/internal/repository"
)

type contactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, m *domain.ContactMessage) error {
	query := `INSERT INTO contact_messages (name, email, subject, message, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	m.CreatedAt = time.Now()
	return r.db.QueryRowContext(ctx, query, m.Name, m.Email, m.Subject, m.Message, m.CreatedAt).Scan(&m.ID)
}
