package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/everafter/planner-api/internal/core/domain"
	"github.com/everafter/planner-api/internal/core/ports"
)

type stubCostRepo struct {
	byID   map[int64]*domain.Cost
	nextID int64
}

func newStubCostRepo() *stubCostRepo {
	return &stubCostRepo{byID: make(map[int64]*domain.Cost), nextID: 1}
}

func cloneCost(c *domain.Cost) *domain.Cost {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCostRepo) Create(_ context.Context, c *domain.Cost) (*domain.Cost, error) {
	copy := cloneCost(c)
	copy.ID = r.nextID
	r.nextID++
	r.byID[copy.ID] = cloneCost(copy)
	return cloneCost(copy), nil
}

func (r *stubCostRepo) FindOwned(_ context.Context, ownerID, id int64) (*domain.Cost, error) {
	c, ok := r.byID[id]
	if !ok || c.OwnerID != ownerID {
		return nil, domain.ErrCostNotFound
	}
	return cloneCost(c), nil
}

func (r *stubCostRepo) Update(_ context.Context, c *domain.Cost) error {
	existing, ok := r.byID[c.ID]
	if !ok || existing.OwnerID != c.OwnerID {
		return domain.ErrCostNotFound
	}
	r.byID[c.ID] = cloneCost(c)
	return nil
}

func (r *stubCostRepo) DeleteOwned(_ context.Context, ownerID, id int64) error {
	c, ok := r.byID[id]
	if !ok || c.OwnerID != ownerID {
		return domain.ErrCostNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubCostRepo) List(_ context.Context, ownerID int64, f ports.CostFilter) ([]domain.Cost, error) {
	var out []domain.Cost
	for _, c := range r.byID {
		if c.OwnerID != ownerID {
			continue
		}
		if f.Category != "" && c.Category != f.Category {
			continue
		}
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		out = append(out, *cloneCost(c))
	}
	return out, nil
}

func amount(v float64) *float64 { return &v }

func TestCostService_Create_Defaults(t *testing.T) {
	svc := NewCostService(newStubCostRepo(), zerolog.Nop())

	cost, err := svc.Create(context.Background(), 1, ports.CreateCostInput{Name: "Flowers", Amount: amount(450)})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if cost.Category != domain.CostCategoryDefault {
		t.Fatalf("expected default category, got %q", cost.Category)
	}
	if cost.Status != domain.CostPlanned {
		t.Fatalf("expected default status planned, got %q", cost.Status)
	}
	if cost.Amount != 450 {
		t.Fatalf("amount lost: %v", cost.Amount)
	}
}

func TestCostService_Create_RequiredFields(t *testing.T) {
	svc := NewCostService(newStubCostRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), 1, ports.CreateCostInput{Amount: amount(1)})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Field != "name" {
		t.Fatalf("expected ValidationError on name, got %v", err)
	}

	// A zero amount is valid; only a missing one is rejected.
	if _, err := svc.Create(context.Background(), 1, ports.CreateCostInput{Name: "Gift", Amount: amount(0)}); err != nil {
		t.Fatalf("zero amount rejected: %v", err)
	}
	_, err = svc.Create(context.Background(), 1, ports.CreateCostInput{Name: "Gift"})
	if !errors.As(err, &verr) || verr.Field != "amount" {
		t.Fatalf("expected ValidationError on amount, got %v", err)
	}
}

func TestCostService_Create_PaymentDate(t *testing.T) {
	svc := NewCostService(newStubCostRepo(), zerolog.Nop())

	cost, err := svc.Create(context.Background(), 1, ports.CreateCostInput{
		Name:        "Catering deposit",
		Amount:      amount(1200),
		Status:      domain.CostPaid,
		PaymentDate: "2026-03-01",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if cost.PaymentDate == nil || !cost.PaymentDate.Equal(want) {
		t.Fatalf("payment date parsed to %v, want %v", cost.PaymentDate, want)
	}

	_, err = svc.Create(context.Background(), 1, ports.CreateCostInput{Name: "x", Amount: amount(1), PaymentDate: "bad"})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Field != "payment_date" {
		t.Fatalf("expected ValidationError on payment_date, got %v", err)
	}
}

func TestCostService_Update_Partial(t *testing.T) {
	svc := NewCostService(newStubCostRepo(), zerolog.Nop())

	cost, _ := svc.Create(context.Background(), 1, ports.CreateCostInput{Name: "Band", Amount: amount(800), PaymentDate: "2026-05-01"})

	status := domain.CostPaid
	updated, err := svc.Update(context.Background(), 1, cost.ID, ports.UpdateCostInput{Status: &status})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Status != domain.CostPaid {
		t.Fatalf("status not applied: %+v", updated)
	}
	if updated.Name != "Band" || updated.Amount != 800 {
		t.Fatalf("partial update clobbered fields: %+v", updated)
	}

	// A non-nil empty payment_date clears the date.
	empty := ""
	updated, err = svc.Update(context.Background(), 1, cost.ID, ports.UpdateCostInput{PaymentDate: &empty})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.PaymentDate != nil {
		t.Fatalf("empty payment_date must clear the date, got %v", updated.PaymentDate)
	}
}

func TestCostService_OwnershipScope(t *testing.T) {
	svc := NewCostService(newStubCostRepo(), zerolog.Nop())

	cost, _ := svc.Create(context.Background(), 1, ports.CreateCostInput{Name: "Venue", Amount: amount(5000)})

	if _, err := svc.Update(context.Background(), 2, cost.ID, ports.UpdateCostInput{}); !errors.Is(err, domain.ErrCostNotFound) {
		t.Fatalf("expected ErrCostNotFound for foreign owner, got %v", err)
	}
	if err := svc.Delete(context.Background(), 2, cost.ID); !errors.Is(err, domain.ErrCostNotFound) {
		t.Fatalf("expected ErrCostNotFound for foreign delete, got %v", err)
	}
}
