package models

import "time"

type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

type Booking struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	ItemID    uint          `gorm:"not null;index" json:"item_id"`
	BookerID  uint          `gorm:"not null;index" json:"booker_id"`
	Start     time.Time     `gorm:"column:start_date;not null" json:"start"`
	End       time.Time     `gorm:"column:end_date;not null" json:"end"`
	Status    BookingStatus `gorm:"type:varchar(20);not null;default:'WAITING'" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	Item   *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Booker *User `gorm:"foreignKey:BookerID" json:"booker,omitempty"`
}
