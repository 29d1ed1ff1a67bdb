package cache

import "warung-pos/internal/models"

type OrderCacheRepo struct {
	kv KV
}

func NewOrderCache(kv KV) *OrderCacheRepo {
	return &OrderCacheRepo{kv: kv}
}

func (o *OrderCacheRepo) PutOrder(ord models.Order) {
	o.kv.Put(ord.ID, ord)
}

func (o *OrderCacheRepo) GetOrder(id int64) (models.Order, bool) {
	return o.kv.Get(id)
}

func (o *OrderCacheRepo) DeleteOrder(id int64) {
	o.kv.Delete(id)
}
