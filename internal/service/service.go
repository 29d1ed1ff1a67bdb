package service

import (
	"github.com/go-playground/validator/v10"

	"warung-pos/internal/models"
	"warung-pos/internal/repository"
)

// Order is the contract the order-entry, history and receipt screens consume.
type Order interface {
	Create(items []models.ItemRequest) (int64, string, error)
	Get(id int64) (models.Order, bool, error)
	List() ([]models.Order, error)
	ListItems(orderID int64) ([]models.OrderItem, error)
	MonthlySales(month, year int) ([]models.DailySale, error)
	Delete(id int64) (bool, error)

	WarmCache() error
}

type Service struct {
	store repository.OrderStore
	cache repository.OrderCache
	v     *validator.Validate
}

func NewService(repo *repository.Repository) *Service {
	return &Service{
		store: repo.OrderStore,
		cache: repo.OrderCache,
		v:     validator.New(),
	}
}
