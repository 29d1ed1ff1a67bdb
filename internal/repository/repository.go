package repository

import (
	"warung-pos/internal/models"
	"warung-pos/internal/repository/cache"
	"warung-pos/internal/repository/sqlite"

	"github.com/jinzhu/gorm"
)

type OrderStore interface {
	InitSchema() error
	Create(items []models.OrderItem) (int64, string, error)
	Get(id int64) (models.Order, bool, error)
	List() ([]models.Order, error)
	ListItems(orderID int64) ([]models.OrderItem, error)
	MonthlySales(month, year int) ([]models.DailySale, error)
	Delete(id int64) (bool, error)
}

type OrderCache interface {
	PutOrder(ord models.Order)
	GetOrder(id int64) (models.Order, bool)
	DeleteOrder(id int64)
}

type Repository struct {
	OrderStore
	OrderCache
}

func NewRepository(db *gorm.DB, cacheOpts ...cache.Option) *Repository {
	return &Repository{
		OrderStore: sqlite.NewOrderStore(db),
		OrderCache: cache.NewOrderCache(cache.New(cacheOpts...)),
	}
}
