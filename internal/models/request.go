package models

import "time"

// ItemRequest is a wish posted by a user looking for an item to borrow.
// Items created in answer to it reference it through Item.RequestID.
type ItemRequest struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RequesterID uint      `gorm:"not null;index" json:"requester_id"`
	Description string    `gorm:"not null" json:"description"`
	CreatedAt   time.Time `json:"created"`
}
