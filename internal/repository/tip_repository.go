package repository

import (
	"errors"

	"github.com/Karlyle101/tip-me-api/internal/models"
	"gorm.io/gorm"
)

type TipRepository struct {
	db *gorm.DB
}

func NewTipRepository(db *gorm.DB) *TipRepository {
	return &TipRepository{db: db}
}

func (r *TipRepository) Create(tip *models.Tip) error {
	return r.db.Create(tip).Error
}

func (r *TipRepository) FindByID(id uint) (*models.Tip, error) {
	var tip models.Tip
	err := r.db.First(&tip, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tip, nil
}

func (r *TipRepository) UpdateStatus(tip *models.Tip, status models.TipStatus) error {
	tip.Status = status
	return r.db.Save(tip).Error
}

func (r *TipRepository) FindIncoming(userID uint) ([]models.Tip, error) {
	var tips []models.Tip
	err := r.db.
		Where("to_user_id = ?", userID).
		Order("created_at DESC").
		Find(&tips).Error
	return tips, err
}

func (r *TipRepository) FindOutgoing(userID uint) ([]models.Tip, error) {
	var tips []models.Tip
	err := r.db.
		Where("from_user_id = ?", userID).
		Order("created_at DESC").
		Find(&tips).Error
	return tips, err
}

// FindAll returns every tip with recipient and sender preloaded, optionally
// filtered by status. An empty status means no filter.
func (r *TipRepository) FindAll(status models.TipStatus) ([]models.Tip, error) {
	var tips []models.Tip
	query := r.db.
		Preload("ToUser").
		Preload("FromUser").
		Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&tips).Error
	return tips, err
}
