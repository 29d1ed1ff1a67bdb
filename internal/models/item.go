package models

// OrderItem is one line within an order. Price is a snapshot of the menu
// price at order time and Subtotal is computed once at creation, so later
// menu changes never rewrite a historical receipt.
type OrderItem struct {
	ID       int64  `json:"id"        gorm:"column:id;primary_key"`
	OrderID  int64  `json:"order_id"  gorm:"column:order_id"`
	ItemName string `json:"item_name" gorm:"column:item_name"`
	Price    int64  `json:"price"     gorm:"column:price"`
	Qty      int64  `json:"qty"       gorm:"column:qty"`
	Note     string `json:"note"      gorm:"column:note"`
	Subtotal int64  `json:"subtotal"  gorm:"column:subtotal"`
}

func (OrderItem) TableName() string { return "order_items" }

// ItemRequest is one line of a create request exactly as the order-entry
// form hands it over: price and qty arrive as strings and are coerced to
// integers by the service before anything is written.
type ItemRequest struct {
	Name  string `json:"name"  validate:"required"`
	Price string `json:"price" validate:"required"`
	Qty   string `json:"qty"   validate:"required"`
	Note  string `json:"note"`
}
