package model

import "time"

// Meja adalah satu meja fisik di kedai. nomor_meja unik supaya
// lookup-or-create saat order tidak menghasilkan duplikat.
type Meja struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	NomorMeja string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"nomor_meja"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
}

func (Meja) TableName() string { return "meja" }
