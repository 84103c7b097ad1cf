package catalog

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// PostgresRepository loads the catalog from the `catalog_product` table.
// Attribute columns (colors / style / occasion / season) are text[] and are
// scanned through pq.Array.
type PostgresRepository struct {
	db *sql.DB
}

const listCatalogQuery = `
	SELECT sku_id, title, brand, category, image_url, price, gender, colors, style, occasion, season
	FROM catalog_product
	ORDER BY sku_id
`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Load() (*Store, error) {
	rows, err := r.db.Query(listCatalogQuery)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		var (
			p      Product
			img    sql.NullString
			price  sql.NullInt64
			gender sql.NullString
		)
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Brand,
			&p.Category,
			&img,
			&price,
			&gender,
			pq.Array(&p.Colors),
			pq.Array(&p.Style),
			pq.Array(&p.Occasion),
			pq.Array(&p.Season),
		); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		if img.Valid {
			p.ImageURL = &img.String
		}
		if price.Valid {
			p.Price = int(price.Int64)
		}
		if gender.Valid {
			p.Gender = gender.String
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog rows: %w", err)
	}
	return NewStore(out), nil
}
