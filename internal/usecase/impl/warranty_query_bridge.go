package impl

import (
	"context"
	"strings"
	"sync"
	"time"

	"ewarrants/internal/domain/constants"
	"ewarrants/internal/domain/entity"
	"ewarrants/internal/domain/expiry"
	"ewarrants/internal/domain/repository"
	"ewarrants/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// warrantyQueryBridge answers getWarranties calls for one owner and records
// what it returned so the chat response can carry the same records.
type warrantyQueryBridge struct {
	repo  repository.WarrantyRepository
	owner uuid.UUID
	today time.Time

	mu     sync.Mutex
	called bool
	sorted bool
	result []*entity.Warranty
}

func newWarrantyQueryBridge(repo repository.WarrantyRepository, owner uuid.UUID, today time.Time) *warrantyQueryBridge {
	return &warrantyQueryBridge{repo: repo, owner: owner, today: today}
}

// GetWarranties applies the expiry window whenever expiringWithinDays is set
// and non-zero, and otherwise filters by category and sorts by purchase date.
// A negative window ends before today, so it matches nothing.
func (b *warrantyQueryBridge) GetWarranties(ctx context.Context, q service.WarrantyQuery) ([]*entity.Warranty, error) {
	var (
		warranties []*entity.Warranty
		err        error
	)
	if q.ExpiringWithinDays != nil && *q.ExpiringWithinDays != 0 {
		warranties, err = b.repo.FindExpiringWithin(ctx, b.owner, b.today, expiry.AddDays(b.today, *q.ExpiringWithinDays))
	} else {
		warranties, err = b.repo.ListByOwner(ctx, b.owner, repository.ListOptions{
			Category:      q.Category,
			SortAscending: strings.EqualFold(q.SortBy, constants.SortPurchaseDateAsc),
		})
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to query warranties")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.called = true
	b.sorted = q.SortBy != ""
	b.result = warranties

	return warranties, nil
}

// Data is the record list returned to the client: empty when the model made
// no call, only the first record when sortBy was given.
func (b *warrantyQueryBridge) Data() []*entity.Warranty {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.called || len(b.result) == 0 {
		return []*entity.Warranty{}
	}
	if b.sorted {
		return b.result[:1]
	}

	return b.result
}
