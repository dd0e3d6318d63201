package postgres

import (
	"context"
	"database/sql"

	"greystone-backend/internal/domain"
	"greystone-backend/internal/repository"
)

type toolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

const toolColumns = `id, part_number, name, COALESCE(description, ''), daily_price, daily_price_8_30, available_qty`

func (r *toolRepository) GetByID(ctx context.Context, id int32) (*domain.Tool, error) {
	t := &domain.Tool{}
	query := `SELECT ` + toolColumns + ` FROM tools WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.PartNumber, &t.Name, &t.Description, &t.DailyPrice, &t.DailyPriceLong, &t.AvailableQty)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *toolRepository) List(ctx context.Context, order repository.ToolOrder) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools`
	switch order {
	case repository.ToolOrderNameAsc:
		query += ` ORDER BY name ASC`
	default:
		query += ` ORDER BY id DESC`
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		var t domain.Tool
		if err := rows.Scan(&t.ID, &t.PartNumber, &t.Name, &t.Description, &t.DailyPrice, &t.DailyPriceLong, &t.AvailableQty); err != nil {
			return nil, err
		}
		tools = append(tools, t)
	}
	return tools, rows.Err()
}
