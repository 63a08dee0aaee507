package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/everafter/planner-api/internal/core/domain"
	"github.com/everafter/planner-api/internal/core/ports"
)

// CostService implements owner-scoped budget management.
type CostService struct {
	repo   ports.CostRepository
	logger zerolog.Logger
}

func NewCostService(repo ports.CostRepository, logger zerolog.Logger) *CostService {
	return &CostService{repo: repo, logger: logger}
}

func (s *CostService) Create(ctx context.Context, ownerID int64, in ports.CreateCostInput) (*domain.Cost, error) {
	if in.Name == "" {
		return nil, domain.MissingField("name")
	}
	if in.Amount == nil {
		return nil, domain.MissingField("amount")
	}

	paid, err := parseDate("payment_date", in.PaymentDate)
	if err != nil {
		return nil, err
	}

	category := in.Category
	if category == "" {
		category = domain.CostCategoryDefault
	}
	status := in.Status
	if status == "" {
		status = domain.CostPlanned
	}

	now := time.Now().UTC()
	cost := &domain.Cost{
		OwnerID:     ownerID,
		Name:        in.Name,
		Description: in.Description,
		Category:    category,
		Amount:      *in.Amount,
		Status:      status,
		PaymentDate: paid,
		Vendor:      in.Vendor,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, cost)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("cost_id", created.ID).Int64("owner_id", ownerID).Str("status", created.Status).Msg("cost created")
	return created, nil
}

func (s *CostService) List(ctx context.Context, ownerID int64, f ports.CostFilter) ([]domain.Cost, error) {
	return s.repo.List(ctx, ownerID, f)
}

func (s *CostService) Update(ctx context.Context, ownerID, costID int64, in ports.UpdateCostInput) (*domain.Cost, error) {
	cost, err := s.repo.FindOwned(ctx, ownerID, costID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		cost.Name = *in.Name
	}
	if in.Description != nil {
		cost.Description = *in.Description
	}
	if in.Category != nil {
		cost.Category = *in.Category
	}
	if in.Amount != nil {
		cost.Amount = *in.Amount
	}
	if in.Status != nil {
		cost.Status = *in.Status
	}
	if in.PaymentDate != nil {
		paid, err := parseDate("payment_date", *in.PaymentDate)
		if err != nil {
			return nil, err
		}
		cost.PaymentDate = paid
	}
	if in.Vendor != nil {
		cost.Vendor = *in.Vendor
	}
	if in.Notes != nil {
		cost.Notes = *in.Notes
	}

	cost.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, cost); err != nil {
		return nil, err
	}
	return cost, nil
}

func (s *CostService) Delete(ctx context.Context, ownerID, costID int64) error {
	return s.repo.DeleteOwned(ctx, ownerID, costID)
}
