package services

import (
	"errors"
	"net/mail"

	"github.com/Karlyle101/tip-me-api/internal/models"
	"github.com/Karlyle101/tip-me-api/internal/repository"
)

const (
	MaxTipAmountCents = 1_000_000
	MaxTipMessageLen  = 280
)

var (
	ErrInvalidTipAmount  = errors.New("amountCents must be a positive integer up to 1000000")
	ErrMessageTooLong    = errors.New("message must be at most 280 characters")
	ErrInvalidFromEmail  = errors.New("fromEmail is not a valid email address")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrTipNotFound       = errors.New("tip not found")
	ErrInvalidTipStatus  = errors.New("invalid tip status")
)

type TipService struct {
	tipRepo  *repository.TipRepository
	userRepo *repository.UserRepository
	capture  PaymentCapture
	feeBps   int64
}

func NewTipService(tipRepo *repository.TipRepository, userRepo *repository.UserRepository, capture PaymentCapture, feeBps int64) *TipService {
	return &TipService{
		tipRepo:  tipRepo,
		userRepo: userRepo,
		capture:  capture,
		feeBps:   feeBps,
	}
}

// SplitFee computes the service fee in cents, rounded down.
func SplitFee(amountCents, feeBps int64) (feeCents, netCents int64) {
	feeCents = amountCents * feeBps / 10000
	return feeCents, amountCents - feeCents
}

// Create records a tip to the handle's owner, PENDING first, then advanced by
// the payment capture. fromUserID is nil for anonymous tippers.
func (s *TipService) Create(toHandle string, amountCents int64, message, fromEmail string, fromUserID *uint) (*models.Tip, error) {
	if amountCents <= 0 || amountCents > MaxTipAmountCents {
		return nil, ErrInvalidTipAmount
	}
	if len(message) > MaxTipMessageLen {
		return nil, ErrMessageTooLong
	}
	if fromEmail != "" {
		if _, err := mail.ParseAddress(fromEmail); err != nil {
			return nil, ErrInvalidFromEmail
		}
	}

	toUser, err := s.userRepo.FindByHandle(toHandle)
	if err != nil {
		return nil, err
	}
	if toUser == nil {
		return nil, ErrRecipientNotFound
	}

	feeCents, netCents := SplitFee(amountCents, s.feeBps)

	tip := &models.Tip{
		ToUserID:    toUser.ID,
		FromUserID:  fromUserID,
		AmountCents: amountCents,
		FeeCents:    feeCents,
		NetCents:    netCents,
		Status:      models.TipPending,
	}
	if message != "" {
		tip.Message = &message
	}
	if fromEmail != "" {
		tip.FromEmail = &fromEmail
	}

	if err := s.tipRepo.Create(tip); err != nil {
		return nil, err
	}

	status, err := s.capture.Capture(tip)
	if err != nil {
		status = models.TipFailed
	}
	if err := s.tipRepo.UpdateStatus(tip, status); err != nil {
		return nil, err
	}

	return tip, nil
}

func (s *TipService) ListIncoming(userID uint) ([]models.Tip, error) {
	return s.tipRepo.FindIncoming(userID)
}

func (s *TipService) ListOutgoing(userID uint) ([]models.Tip, error) {
	return s.tipRepo.FindOutgoing(userID)
}

// ListAll is the admin projection, optionally filtered by status.
func (s *TipService) ListAll(status models.TipStatus) ([]models.Tip, error) {
	if status != "" && !models.ValidTipStatus(status) {
		return nil, ErrInvalidTipStatus
	}
	return s.tipRepo.FindAll(status)
}

// UpdateStatus is the admin override. Any of the three values can be forced,
// there is no transition guard.
func (s *TipService) UpdateStatus(id uint, status models.TipStatus) (*models.Tip, error) {
	if !models.ValidTipStatus(status) {
		return nil, ErrInvalidTipStatus
	}

	tip, err := s.tipRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if tip == nil {
		return nil, ErrTipNotFound
	}

	if err := s.tipRepo.UpdateStatus(tip, status); err != nil {
		return nil, err
	}
	return tip, nil
}
