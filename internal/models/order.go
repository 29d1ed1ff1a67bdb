package models

// Order is one customer transaction. CreatedAt holds a sortable
// "YYYY-MM-DD HH:MM:SS" text stamp so ordering by string matches ordering
// by time. Total is frozen at creation; no operation updates it afterwards.
type Order struct {
	ID        int64  `json:"id"         gorm:"column:id;primary_key"`
	OrderNo   string `json:"order_no"   gorm:"column:order_no"`
	CreatedAt string `json:"created_at" gorm:"column:created_at"`
	Total     int64  `json:"total"      gorm:"column:total"`
}

func (Order) TableName() string { return "orders" }

// DailySale is one row of the monthly aggregate: summed order totals for a
// single day of month. Days without orders produce no row.
type DailySale struct {
	Day   int   `json:"day"`
	Total int64 `json:"total"`
}
