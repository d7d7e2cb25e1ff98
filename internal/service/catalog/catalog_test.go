package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ortholab/depisto_backend/internal/ide"
	"github.com/ortholab/depisto_backend/internal/repo"
	"github.com/ortholab/depisto_backend/internal/repo/enttest"
)

type fixture struct {
	client *repo.Client
	svc    Service
	test   *repo.Test
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()
	test, err := client.Test.Create().
		SetName("Inventaire du Développement de l'Enfant").
		Save(ctx)
	if err != nil {
		t.Fatalf("create test: %v", err)
	}

	items := []struct {
		part     string
		domain   string
		order    int
		countsDG bool
		active   bool
		ageMin   *int
		ageMax   *int
	}{
		{"A", "SO", 1, true, true, nil, nil},
		{"A", "SO", 2, false, true, nil, nil},
		{"A", "MG", 3, false, true, intp(36), nil},
		{"B", "LEX", 1, true, true, nil, intp(24)},
		{"B", "LEX", 2, false, false, nil, nil},
	}
	for _, it := range items {
		if _, err := client.TestItem.Create().
			SetTestID(test.ID).
			SetPart(it.part).
			SetDomain(it.domain).
			SetItemOrder(it.order).
			SetText("item").
			SetCountsDg(it.countsDG).
			SetIsActive(it.active).
			SetNillableAgeMinMonths(it.ageMin).
			SetNillableAgeMaxMonths(it.ageMax).
			Save(ctx); err != nil {
			t.Fatalf("create item: %v", err)
		}
	}

	return &fixture{
		client: client,
		svc:    New(client, nil),
		test:   test,
	}
}

func intp(n int) *int { return &n }

func TestActiveIDETest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got, err := f.svc.ActiveIDETest(ctx)
	if err != nil {
		t.Fatalf("ActiveIDETest() error = %v", err)
	}
	if got.ID != f.test.ID {
		t.Errorf("test id = %s, want %s", got.ID, f.test.ID)
	}
}

func TestActiveIDETestNone(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	svc := New(client, nil)
	if _, err := svc.ActiveIDETest(context.Background()); !errors.Is(err, ErrTestNotFound) {
		t.Errorf("ActiveIDETest() error = %v, want ErrTestNotFound", err)
	}
}

func TestGetTest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.GetTest(ctx, f.test.ID); err != nil {
		t.Errorf("GetTest() error = %v", err)
	}
	if _, err := f.svc.GetTest(ctx, uuid.New()); !errors.Is(err, ErrTestNotFound) {
		t.Errorf("GetTest(unknown) error = %v, want ErrTestNotFound", err)
	}

	// Deactivated tests disappear from the catalog.
	if _, err := f.client.Test.UpdateOneID(f.test.ID).SetIsActive(false).Save(ctx); err != nil {
		t.Fatalf("deactivate test: %v", err)
	}
	if _, err := f.svc.GetTest(ctx, f.test.ID); !errors.Is(err, ErrTestNotFound) {
		t.Errorf("GetTest(inactive) error = %v, want ErrTestNotFound", err)
	}
}

func TestItems(t *testing.T) {
	f := newFixture(t)

	items, err := f.svc.Items(context.Background(), f.test.ID)
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("len(items) = %d, want 4 (inactive excluded)", len(items))
	}

	wantKeys := []string{"A:SO:1", "A:SO:2", "A:MG:3", "B:LEX:1"}
	for i, want := range wantKeys {
		if got := items[i].Key().String(); got != want {
			t.Errorf("items[%d] = %s, want %s", i, got, want)
		}
	}
}

func TestItemsForPart(t *testing.T) {
	f := newFixture(t)

	items, err := f.svc.ItemsForPart(context.Background(), f.test.ID, ide.PartA)
	if err != nil {
		t.Fatalf("ItemsForPart() error = %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	for _, it := range items {
		if it.Part != ide.PartA {
			t.Errorf("item %s is not in part A", it.Key())
		}
	}
}

func TestItemsForDomain(t *testing.T) {
	f := newFixture(t)

	items, err := f.svc.ItemsForDomain(context.Background(), f.test.ID, ide.DomainSO)
	if err != nil {
		t.Fatalf("ItemsForDomain() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	for _, it := range items {
		if it.Domain != ide.DomainSO {
			t.Errorf("item %s is not in domain SO", it.Key())
		}
	}
}

func TestItemsForAge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// At 30 months: the 36+ item and the capped-at-24 item drop out.
	items, err := f.svc.ItemsForAge(ctx, f.test.ID, 30)
	if err != nil {
		t.Fatalf("ItemsForAge() error = %v", err)
	}
	if len(items) != 2 {
		t.Errorf("at 30 months len(items) = %d, want 2", len(items))
	}

	// At 20 months only the 36+ item drops out.
	items, err = f.svc.ItemsForAge(ctx, f.test.ID, 20)
	if err != nil {
		t.Fatalf("ItemsForAge() error = %v", err)
	}
	if len(items) != 3 {
		t.Errorf("at 20 months len(items) = %d, want 3", len(items))
	}
}

func TestDGItems(t *testing.T) {
	f := newFixture(t)

	items, err := f.svc.DGItems(context.Background(), f.test.ID)
	if err != nil {
		t.Fatalf("DGItems() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	for _, it := range items {
		if !it.CountsDG {
			t.Errorf("item %s does not count toward DG", it.Key())
		}
	}
}

func TestApplicableCount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		age  int
		want int
	}{
		{30, 2},
		{20, 3},
		{40, 3},
	}
	for _, tt := range tests {
		got, err := f.svc.ApplicableCount(ctx, f.test.ID, tt.age)
		if err != nil {
			t.Fatalf("ApplicableCount(%d) error = %v", tt.age, err)
		}
		if got != tt.want {
			t.Errorf("ApplicableCount(%d) = %d, want %d", tt.age, got, tt.want)
		}
	}
}
