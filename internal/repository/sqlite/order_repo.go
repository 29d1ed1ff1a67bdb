package sqlite

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"warung-pos/internal/models"
)

const createdAtLayout = "2006-01-02 15:04:05"

type OrderStoreRepo struct {
	db  *gorm.DB
	now func() time.Time
}

type Option func(*OrderStoreRepo)

// WithNow overrides the clock used for created_at stamps and order-number
// dates.
func WithNow(now func() time.Time) Option {
	return func(r *OrderStoreRepo) { r.now = now }
}

func NewOrderStore(db *gorm.DB, opts ...Option) *OrderStoreRepo {
	r := &OrderStoreRepo{db: db, now: time.Now}
	for _, o := range opts {
		o(r)
	}
	return r
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		order_no TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL,
		total INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		order_id INTEGER NOT NULL,
		item_name TEXT NOT NULL,
		price INTEGER NOT NULL,
		qty INTEGER NOT NULL,
		note TEXT,
		subtotal INTEGER NOT NULL,
		FOREIGN KEY(order_id) REFERENCES orders(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS order_counters (
		day TEXT PRIMARY KEY,
		seq INTEGER NOT NULL
	)`,
}

// InitSchema creates the tables if they are absent. Safe to call on every
// start.
func (r *OrderStoreRepo) InitSchema() error {
	for _, stmt := range schema {
		if err := r.db.Exec(stmt).Error; err != nil {
			return errors.Wrap(err, "init schema")
		}
	}
	return nil
}

// nextSeq bumps the per-day counter row and returns the new value. Counter
// rows are never reset or reused, so deleting today's latest order cannot
// hand out a duplicate number.
func nextSeq(tx *gorm.DB, day string) (int64, error) {
	err := tx.Exec(
		`INSERT INTO order_counters(day, seq) VALUES(?, 1)
		 ON CONFLICT(day) DO UPDATE SET seq = seq + 1`, day).Error
	if err != nil {
		return 0, errors.Wrap(err, "bump day counter")
	}

	var seq int64
	row := tx.Raw(`SELECT seq FROM order_counters WHERE day = ?`, day).Row()
	if err := row.Scan(&seq); err != nil {
		return 0, errors.Wrap(err, "read day counter")
	}
	return seq, nil
}

// Create inserts the order and all its items in one transaction. The order
// number is ORD-YYYYMMDD-SSS with the sequence taken from the same day's
// counter inside the transaction, so a rolled-back create releases its
// number along with its rows. Past 999 orders in a day the suffix simply
// grows wider.
func (r *OrderStoreRepo) Create(items []models.OrderItem) (int64, string, error) {
	now := r.now()
	day := now.Format("20060102")
	createdAt := now.Format(createdAtLayout)

	var (
		orderID int64
		orderNo string
	)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		seq, err := nextSeq(tx, day)
		if err != nil {
			return err
		}
		orderNo = fmt.Sprintf("ORD-%s-%03d", day, seq)

		var total int64
		for _, it := range items {
			total += it.Price * it.Qty
		}

		res, err := tx.CommonDB().Exec(
			`INSERT INTO orders(order_no, created_at, total) VALUES(?, ?, ?)`,
			orderNo, createdAt, total,
		)
		if err != nil {
			return errors.Wrap(err, "insert order")
		}
		orderID, err = res.LastInsertId()
		if err != nil {
			return errors.Wrap(err, "order id")
		}

		for _, it := range items {
			_, err := tx.CommonDB().Exec(
				`INSERT INTO order_items(order_id, item_name, price, qty, note, subtotal)
				 VALUES(?, ?, ?, ?, ?, ?)`,
				orderID, it.ItemName, it.Price, it.Qty, it.Note, it.Price*it.Qty,
			)
			if err != nil {
				return errors.Wrap(err, "insert order item")
			}
		}
		return nil
	})
	if err != nil {
		return 0, "", err
	}
	return orderID, orderNo, nil
}

// Get reports absence through the bool, not through an error.
func (r *OrderStoreRepo) Get(id int64) (models.Order, bool, error) {
	var ord models.Order
	err := r.db.Where("id = ?", id).First(&ord).Error
	if gorm.IsRecordNotFoundError(err) {
		return models.Order{}, false, nil
	}
	if err != nil {
		return models.Order{}, false, errors.Wrap(err, "get order")
	}
	return ord, true, nil
}

// List returns all orders, newest first.
func (r *OrderStoreRepo) List() ([]models.Order, error) {
	var out []models.Order
	if err := r.db.Order("id DESC").Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return out, nil
}

// ListItems returns the order's lines in insertion order. An unknown id
// yields an empty slice, not an error.
func (r *OrderStoreRepo) ListItems(orderID int64) ([]models.OrderItem, error) {
	var out []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Order("id ASC").Find(&out).Error
	if err != nil {
		return nil, errors.Wrap(err, "list order items")
	}
	return out, nil
}

// MonthlySales sums order totals per day of month for the given month and
// year, ascending by day. Days with no orders are omitted.
func (r *OrderStoreRepo) MonthlySales(month, year int) ([]models.DailySale, error) {
	rows, err := r.db.Raw(
		`SELECT CAST(strftime('%d', created_at) AS INTEGER) AS day,
		        SUM(total) AS total
		 FROM orders
		 WHERE strftime('%Y', created_at) = ?
		   AND strftime('%m', created_at) = ?
		 GROUP BY day
		 ORDER BY day`,
		fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month),
	).Rows()
	if err != nil {
		return nil, errors.Wrap(err, "monthly sales query")
	}
	defer rows.Close()

	var out []models.DailySale
	for rows.Next() {
		var s models.DailySale
		if err := rows.Scan(&s.Day, &s.Total); err != nil {
			return nil, errors.Wrap(err, "scan daily total")
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes the order row; the ON DELETE CASCADE constraint takes the
// items with it. Reports false when no such order existed.
func (r *OrderStoreRepo) Delete(id int64) (bool, error) {
	deleted := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&models.Order{})
		if res.Error != nil {
			return errors.Wrap(res.Error, "delete order")
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
