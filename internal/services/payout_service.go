package services

import (
	"errors"

	"github.com/Karlyle101/tip-me-api/internal/models"
	"github.com/Karlyle101/tip-me-api/internal/repository"
)

const MaxPayoutAmountCents = 10_000_000

var (
	ErrInvalidPayoutAmount = errors.New("amountCents must be a positive integer up to 10000000")
	ErrPayoutNotFound      = errors.New("payout not found")
	ErrInvalidPayoutStatus = errors.New("invalid payout status")
)

type PayoutService struct {
	payoutRepo *repository.PayoutRepository
}

func NewPayoutService(payoutRepo *repository.PayoutRepository) *PayoutService {
	return &PayoutService{payoutRepo: payoutRepo}
}

// Request creates a REQUESTED payout for the caller. There is no check
// against accrued tips; balance reconciliation is out of scope.
func (s *PayoutService) Request(userID uint, amountCents int64) (*models.Payout, error) {
	if amountCents <= 0 || amountCents > MaxPayoutAmountCents {
		return nil, ErrInvalidPayoutAmount
	}

	payout := &models.Payout{
		UserID:      userID,
		AmountCents: amountCents,
		Status:      models.PayoutRequested,
	}
	if err := s.payoutRepo.Create(payout); err != nil {
		return nil, err
	}
	return payout, nil
}

func (s *PayoutService) ListMine(userID uint) ([]models.Payout, error) {
	return s.payoutRepo.FindByUserID(userID)
}

func (s *PayoutService) ListAll() ([]models.Payout, error) {
	return s.payoutRepo.FindAll()
}

// UpdateStatus is the admin override, same contract as the tip one.
func (s *PayoutService) UpdateStatus(id uint, status models.PayoutStatus) (*models.Payout, error) {
	if !models.ValidPayoutStatus(status) {
		return nil, ErrInvalidPayoutStatus
	}

	payout, err := s.payoutRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if payout == nil {
		return nil, ErrPayoutNotFound
	}

	if err := s.payoutRepo.UpdateStatus(payout, status); err != nil {
		return nil, err
	}
	return payout, nil
}
