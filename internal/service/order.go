package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"warung-pos/internal/models"
)

// Create validates and coerces the raw line items from the entry form, then
// hands them to the store in one shot. Nothing is written unless every line
// is valid.
func (s *Service) Create(reqs []models.ItemRequest) (int64, string, error) {
	if len(reqs) == 0 {
		return 0, "", fmt.Errorf("%w: empty item list", ErrValidation)
	}

	items := make([]models.OrderItem, 0, len(reqs))
	for i, req := range reqs {
		if err := s.v.Struct(req); err != nil {
			return 0, "", fmt.Errorf("%w: item %d: %v", ErrValidation, i, err)
		}
		price, err := strconv.ParseInt(strings.TrimSpace(req.Price), 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("%w: item %d: price %q is not a number", ErrValidation, i, req.Price)
		}
		qty, err := strconv.ParseInt(strings.TrimSpace(req.Qty), 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("%w: item %d: qty %q is not a number", ErrValidation, i, req.Qty)
		}
		items = append(items, models.OrderItem{
			ItemName: req.Name,
			Price:    price,
			Qty:      qty,
			Note:     strings.TrimSpace(req.Note),
		})
	}

	id, orderNo, err := s.store.Create(items)
	if err != nil {
		return 0, "", err
	}

	if ord, ok, err := s.store.Get(id); err == nil && ok {
		s.cache.PutOrder(ord)
	} else if err != nil {
		logrus.WithError(err).WithField("id", id).Debug("skip cache prime for new order")
	}
	return id, orderNo, nil
}

// Get serves from the read cache when it can and falls back to the store,
// priming the cache on the way out.
func (s *Service) Get(id int64) (models.Order, bool, error) {
	if ord, ok := s.cache.GetOrder(id); ok {
		return ord, true, nil
	}
	ord, ok, err := s.store.Get(id)
	if err != nil || !ok {
		return models.Order{}, false, err
	}
	s.cache.PutOrder(ord)
	return ord, true, nil
}

// List always reads the store: the cache is an unordered map and the history
// screen wants newest-first.
func (s *Service) List() ([]models.Order, error) {
	return s.store.List()
}

func (s *Service) ListItems(orderID int64) ([]models.OrderItem, error) {
	return s.store.ListItems(orderID)
}

func (s *Service) MonthlySales(month, year int) ([]models.DailySale, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d out of range", ErrValidation, month)
	}
	if year < 1000 || year > 9999 {
		return nil, fmt.Errorf("%w: year %d is not four digits", ErrValidation, year)
	}
	return s.store.MonthlySales(month, year)
}

// Delete reports whether an order was actually removed, so the caller can
// tell a successful delete from a no-op on an unknown id.
func (s *Service) Delete(id int64) (bool, error) {
	deleted, err := s.store.Delete(id)
	if err != nil {
		return false, err
	}
	s.cache.DeleteOrder(id)
	return deleted, nil
}

// WarmCache loads every stored order into the read cache. The shell calls
// this once after the schema is ready.
func (s *Service) WarmCache() error {
	orders, err := s.store.List()
	if err != nil {
		return err
	}
	for _, ord := range orders {
		s.cache.PutOrder(ord)
	}
	logrus.WithField("orders", len(orders)).Info("order cache warmed")
	return nil
}
