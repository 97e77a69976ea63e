package service

import (
	"context"
	"errors"

	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"
)

type AddUIDCardRequest struct {
	UID     string `json:"uid" binding:"required"`
	AddedBy string `json:"addedBy"`
}

// UIDCardService manages the provisioned card inventory
type UIDCardService interface {
	Add(ctx context.Context, req AddUIDCardRequest) (*model.UIDCard, error)
	List(ctx context.Context, onlyAvailable bool) ([]model.UIDCard, error)
}

type uidCardService struct {
	cardRepo repository.UIDCardRepository
}

// NewUIDCardService returns a new instance of UIDCardService
func NewUIDCardService(cardRepo repository.UIDCardRepository) UIDCardService {
	return &uidCardService{cardRepo: cardRepo}
}

func (s *uidCardService) Add(ctx context.Context, req AddUIDCardRequest) (*model.UIDCard, error) {
	cleanUID := NormalizeUID(req.UID)
	if cleanUID == "" {
		return nil, errors.New("UID required")
	}

	if _, err := s.cardRepo.GetByUID(ctx, cleanUID); err == nil {
		return nil, errors.New("UID already exists in inventory")
	}

	addedBy := req.AddedBy
	if addedBy == "" {
		addedBy = "Admin"
	}

	card := &model.UIDCard{UID: cleanUID, AddedBy: addedBy}
	if err := s.cardRepo.Create(ctx, card); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, errors.New("UID already exists in inventory")
		}
		return nil, err
	}
	return card, nil
}

func (s *uidCardService) List(ctx context.Context, onlyAvailable bool) ([]model.UIDCard, error) {
	return s.cardRepo.List(ctx, onlyAvailable)
}
