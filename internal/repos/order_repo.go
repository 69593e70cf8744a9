package repos

import (
	"afterschool/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// Summary row for listings; items are not joined in.
type OrderSummary struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Phone     string `db:"phone"`
	Email     string `db:"email"`
	ItemCount int    `db:"item_count"`
	CreatedAt string `db:"created_at"`
}

// Create inserts a new order header.
func (r *OrderRepo) Create(orderID, name, phone, email string) error {
	_, err := r.db.Exec(`
	  INSERT INTO orders(id, name, phone, email, created_at)
	  VALUES(?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, orderID, name, phone, email)
	return err
}

// InsertItem inserts a single line item.
func (r *OrderRepo) InsertItem(orderID string, lessonID int64, spaces int) error {
	_, err := r.db.Exec(`
	  INSERT INTO order_items(order_id, lesson_id, spaces)
	  VALUES(?, ?, ?)
	`, orderID, lessonID, spaces)
	return err
}

// Get returns one order with its line items.
func (r *OrderRepo) Get(orderID string) (domain.Order, error) {
	var o domain.Order
	if err := r.db.Get(&o, `
	  SELECT id, name, phone, COALESCE(email,'') AS email,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM orders
	  WHERE id = ?
	`, orderID); err != nil {
		return domain.Order{}, err
	}

	if err := r.db.Select(&o.Items, `
	  SELECT lesson_id, spaces
	  FROM order_items
	  WHERE order_id = ?
	  ORDER BY lesson_id
	`, orderID); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

func (r *OrderRepo) ListLatest(limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []OrderSummary
	err := r.db.Select(&out, `
	  SELECT o.id, o.name, o.phone, COALESCE(o.email,'') AS email,
	         COUNT(oi.order_id) AS item_count, o.created_at
	  FROM orders o
	  LEFT JOIN order_items oi ON oi.order_id = o.id
	  GROUP BY o.id
	  ORDER BY datetime(o.created_at) DESC
	  LIMIT ?
	`, limit)
	return out, err
}

// ListAll returns every order with items, oldest first. Used by the export tool.
func (r *OrderRepo) ListAll() ([]domain.Order, error) {
	var orders []domain.Order
	if err := r.db.Select(&orders, `
	  SELECT id, name, phone, COALESCE(email,'') AS email,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM orders
	  ORDER BY datetime(created_at), id
	`); err != nil {
		return nil, err
	}

	for i := range orders {
		if err := r.db.Select(&orders[i].Items, `
		  SELECT lesson_id, spaces
		  FROM order_items
		  WHERE order_id = ?
		  ORDER BY lesson_id
		`, orders[i].ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}
