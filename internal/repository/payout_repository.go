package repository

import (
	"errors"

	"github.com/Karlyle101/tip-me-api/internal/models"
	"gorm.io/gorm"
)

type PayoutRepository struct {
	db *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) *PayoutRepository {
	return &PayoutRepository{db: db}
}

func (r *PayoutRepository) Create(payout *models.Payout) error {
	return r.db.Create(payout).Error
}

func (r *PayoutRepository) FindByID(id uint) (*models.Payout, error) {
	var payout models.Payout
	err := r.db.First(&payout, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payout, nil
}

func (r *PayoutRepository) UpdateStatus(payout *models.Payout, status models.PayoutStatus) error {
	payout.Status = status
	return r.db.Save(payout).Error
}

func (r *PayoutRepository) FindByUserID(userID uint) ([]models.Payout, error) {
	var payouts []models.Payout
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payouts).Error
	return payouts, err
}

func (r *PayoutRepository) FindAll() ([]models.Payout, error) {
	var payouts []models.Payout
	err := r.db.
		Preload("User").
		Order("created_at DESC").
		Find(&payouts).Error
	return payouts, err
}
