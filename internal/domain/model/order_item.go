package model

// OrderItem adalah satu baris produk dalam pesanan. Immutable setelah dibuat;
// seluruh item satu pesanan di-insert sebagai satu batch.
type OrderItem struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	PesananID int64 `gorm:"not null;index" json:"-"`
	ProductID int64 `gorm:"not null;index" json:"-"`
	Quantity  int64 `gorm:"not null" json:"quantity"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItem) TableName() string { return "order_items" }
