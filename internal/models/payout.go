package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type PayoutStatus string

const (
	PayoutRequested  PayoutStatus = "REQUESTED"
	PayoutProcessing PayoutStatus = "PROCESSING"
	PayoutPaid       PayoutStatus = "PAID"
	PayoutFailed     PayoutStatus = "FAILED"
)

func ValidPayoutStatus(s PayoutStatus) bool {
	switch s {
	case PayoutRequested, PayoutProcessing, PayoutPaid, PayoutFailed:
		return true
	}
	return false
}

type Payout struct {
	gorm.Model
	UserID      uint         `gorm:"not null;index"`
	User        User         `gorm:"foreignKey:UserID"`
	AmountCents int64        `gorm:"not null"`
	Status      PayoutStatus `gorm:"not null;default:REQUESTED;index"`
}

func (p Payout) MarshalJSON() ([]byte, error) {
	var user *UserSummary
	if p.User.ID != 0 {
		s := p.User.Summary()
		user = &s
	}

	return json.Marshal(&struct {
		ID          uint         `json:"id"`
		UserID      uint         `json:"userId"`
		AmountCents int64        `json:"amountCents"`
		Status      PayoutStatus `json:"status"`
		CreatedAt   time.Time    `json:"createdAt"`
		User        *UserSummary `json:"user,omitempty"`
	}{
		ID:          p.ID,
		UserID:      p.UserID,
		AmountCents: p.AmountCents,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		User:        user,
	})
}
