package postgres

import (
	"context"
	"database/sql"

	"greystone-backend/internal/domain"
	"greystone-backend/internal/repository"
)

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetByPartNumber(ctx context.Context, partNumber string) (*domain.Product, error) {
	p := &domain.Product{}
	query := `SELECT id, part_number, description, COALESCE(uom, ''), unit_price FROM products WHERE part_number = $1`
	err := r.db.QueryRowContext(ctx, query, partNumber).Scan(&p.ID, &p.PartNumber, &p.Description, &p.UOM, &p.UnitPrice)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT id, part_number, description, COALESCE(uom, ''), unit_price FROM products ORDER BY part_number ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.PartNumber, &p.Description, &p.UOM, &p.UnitPrice); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
