package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
)

// IsValid melaporkan apakah s termasuk status yang dikenal.
// Transisi antar status sengaja tidak dibatasi (kompatibilitas dengan client lama).
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted:
		return true
	}
	return false
}

// Order adalah satu pesanan (tabel "pesanan"). TotalAmount selalu dihitung
// server-side, tidak pernah dipercaya dari client.
type Order struct {
	ID            int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName  string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	MejaID        int64       `gorm:"not null;index" json:"meja_id"`
	PaymentMethod string      `gorm:"type:varchar(50);not null;default:'tunai'" json:"payment_method"`
	Status        OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalAmount   float64     `gorm:"not null" json:"total_amount"`
	CreatedAt     time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`

	Meja  *Meja       `gorm:"foreignKey:MejaID" json:"meja,omitempty"`
	Items []OrderItem `gorm:"foreignKey:PesananID" json:"order_items,omitempty"`
}

func (Order) TableName() string { return "pesanan" }
