package catalog

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ortholab/depisto_backend/internal/ide"
	"github.com/ortholab/depisto_backend/internal/repo"
	enttest "github.com/ortholab/depisto_backend/internal/repo/test"
	entitem "github.com/ortholab/depisto_backend/internal/repo/testitem"
)

// applicableCountTTL bounds staleness of the cached per-age item counts.
// The catalog only changes on reseeding, so a long TTL is fine.
const applicableCountTTL = 12 * time.Hour

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// ActiveIDETest returns the active IDE test definition.
	ActiveIDETest(ctx context.Context) (*repo.Test, error)
	GetTest(ctx context.Context, id uuid.UUID) (*repo.Test, error)

	// Items returns every active item of a test, grid order.
	Items(ctx context.Context, testID uuid.UUID) ([]ide.Item, error)
	ItemsForPart(ctx context.Context, testID uuid.UUID, part ide.Part) ([]ide.Item, error)
	ItemsForDomain(ctx context.Context, testID uuid.UUID, domain ide.Domain) ([]ide.Item, error)
	ItemsForAge(ctx context.Context, testID uuid.UUID, ageMonths int) ([]ide.Item, error)
	DGItems(ctx context.Context, testID uuid.UUID) ([]ide.Item, error)

	// ApplicableCount returns the number of active items applicable at the
	// given age, cached in redis per (test, age).
	ApplicableCount(ctx context.Context, testID uuid.UUID, ageMonths int) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	db  *repo.Client
	rdb *redis.Client
}

func New(db *repo.Client, rdb *redis.Client) Service {
	return &service{db: db, rdb: rdb}
}

func (s *service) ActiveIDETest(ctx context.Context) (*repo.Test, error) {
	t, err := s.db.Test.Query().
		Where(enttest.KindEQ(enttest.KindIDE), enttest.IsActive(true)).
		First(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("get IDE test: %w", err)
	}
	return t, nil
}

func (s *service) GetTest(ctx context.Context, id uuid.UUID) (*repo.Test, error) {
	t, err := s.db.Test.Query().
		Where(enttest.ID(id), enttest.IsActive(true)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("get test: %w", err)
	}
	return t, nil
}

func (s *service) Items(ctx context.Context, testID uuid.UUID) ([]ide.Item, error) {
	rows, err := s.db.TestItem.Query().
		Where(entitem.TestID(testID), entitem.IsActive(true)).
		Order(entitem.ByPart(), entitem.ByItemOrder()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return itemsFromRows(rows), nil
}

func (s *service) ItemsForPart(ctx context.Context, testID uuid.UUID, part ide.Part) ([]ide.Item, error) {
	rows, err := s.db.TestItem.Query().
		Where(entitem.TestID(testID), entitem.Part(string(part)), entitem.IsActive(true)).
		Order(entitem.ByItemOrder()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items for part %s: %w", part, err)
	}
	return itemsFromRows(rows), nil
}

func (s *service) ItemsForDomain(ctx context.Context, testID uuid.UUID, domain ide.Domain) ([]ide.Item, error) {
	rows, err := s.db.TestItem.Query().
		Where(entitem.TestID(testID), entitem.Domain(string(domain)), entitem.IsActive(true)).
		Order(entitem.ByPart(), entitem.ByItemOrder()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items for domain %s: %w", domain, err)
	}
	return itemsFromRows(rows), nil
}

func (s *service) ItemsForAge(ctx context.Context, testID uuid.UUID, ageMonths int) ([]ide.Item, error) {
	rows, err := s.db.TestItem.Query().
		Where(
			entitem.TestID(testID),
			entitem.IsActive(true),
			entitem.Or(entitem.AgeMinMonthsIsNil(), entitem.AgeMinMonthsLTE(ageMonths)),
			entitem.Or(entitem.AgeMaxMonthsIsNil(), entitem.AgeMaxMonthsGTE(ageMonths)),
		).
		Order(entitem.ByPart(), entitem.ByItemOrder()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items for age %d: %w", ageMonths, err)
	}
	return itemsFromRows(rows), nil
}

func (s *service) DGItems(ctx context.Context, testID uuid.UUID) ([]ide.Item, error) {
	rows, err := s.db.TestItem.Query().
		Where(entitem.TestID(testID), entitem.CountsDg(true), entitem.IsActive(true)).
		Order(entitem.ByPart(), entitem.ByItemOrder()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list DG items: %w", err)
	}
	return itemsFromRows(rows), nil
}

func (s *service) ApplicableCount(ctx context.Context, testID uuid.UUID, ageMonths int) (int, error) {
	key := fmt.Sprintf("catalog:applicable:%s:%d", testID, ageMonths)

	if s.rdb != nil {
		if v, err := s.rdb.Get(ctx, key).Result(); err == nil {
			if n, err := strconv.Atoi(v); err == nil {
				return n, nil
			}
		}
	}

	n, err := s.db.TestItem.Query().
		Where(
			entitem.TestID(testID),
			entitem.IsActive(true),
			entitem.Or(entitem.AgeMinMonthsIsNil(), entitem.AgeMinMonthsLTE(ageMonths)),
			entitem.Or(entitem.AgeMaxMonthsIsNil(), entitem.AgeMaxMonthsGTE(ageMonths)),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count applicable items: %w", err)
	}

	if s.rdb != nil {
		_ = s.rdb.Set(ctx, key, strconv.Itoa(n), applicableCountTTL).Err()
	}

	return n, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func itemsFromRows(rows []*repo.TestItem) []ide.Item {
	items := make([]ide.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, itemFromRow(r))
	}
	return items
}

func itemFromRow(r *repo.TestItem) ide.Item {
	it := ide.Item{
		Part:     ide.Part(r.Part),
		Domain:   ide.Domain(r.Domain),
		Order:    r.ItemOrder,
		Text:     r.Text,
		CountsDG: r.CountsDg,
		Active:   r.IsActive,
	}
	if r.AgeMinMonths != nil {
		it.AgeMinMonths = *r.AgeMinMonths
	}
	if r.AgeMaxMonths != nil {
		it.AgeMaxMonths = *r.AgeMaxMonths
	}
	return it
}
