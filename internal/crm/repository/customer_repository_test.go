package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/testutil"
	"github.com/google/uuid"
)

func TestGenerateCodeSequential(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	first, err := repo.GenerateCode(ctx)
	if err != nil {
		t.Fatalf("GenerateCode: %v", err)
	}
	second, err := repo.GenerateCode(ctx)
	if err != nil {
		t.Fatalf("GenerateCode: %v", err)
	}

	if !strings.HasPrefix(first, "CUS-") || !strings.HasPrefix(second, "CUS-") {
		t.Fatalf("Expected CUS- prefix, got %q and %q", first, second)
	}
	if first == second {
		t.Errorf("Expected distinct codes, got %q twice", first)
	}
}

func TestGenerateCodeConcurrentCreates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	showroom := testutil.SeedShowroom(t, db, "MG Road")
	repo := NewCustomerRepository(db)

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	codes := make(chan string, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ctx := context.Background()

			code, err := repo.GenerateCode(ctx)
			if err != nil {
				errs <- fmt.Errorf("worker %d generate: %w", n, err)
				return
			}
			customer := &entity.Customer{
				ID:           uuid.New().String(),
				CustomerCode: code,
				Name:         fmt.Sprintf("Customer %d", n),
				ShowroomID:   showroom.ID,
				LeadStatus:   entity.LeadStatusNew,
			}
			if err := repo.Create(ctx, customer); err != nil {
				errs <- fmt.Errorf("worker %d create: %w", n, err)
				return
			}
			codes <- code
		}(i)
	}
	wg.Wait()
	close(errs)
	close(codes)

	for err := range errs {
		t.Errorf("concurrent create failed: %v", err)
	}

	seen := make(map[string]bool)
	for code := range codes {
		if seen[code] {
			t.Errorf("duplicate customer code %q under concurrency", code)
		}
		seen[code] = true
	}
	if len(seen) != workers {
		t.Errorf("Expected %d distinct codes, got %d", workers, len(seen))
	}
}
