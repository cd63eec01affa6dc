package users

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/server/models"
)

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()

	created, err := repo.Create(context.Background(), &models.User{
		UserName: "alice",
		Salt:     []byte("salt"),
		Verifier: []byte("verifier"),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated ID")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	got, err := repo.GetUserByLogin(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetUserByLogin error: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("ID mismatch: got %q want %q", got.ID, created.ID)
	}
}

func TestInMemoryRepository_DuplicateUsername(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()

	if _, err := repo.Create(context.Background(), &models.User{UserName: "alice"}); err != nil {
		t.Fatalf("first Create error: %v", err)
	}

	_, err := repo.Create(context.Background(), &models.User{UserName: "alice"})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("expected common.ErrorAlreadyExists, got %v", err)
	}
	if repo.Count() != 1 {
		t.Fatalf("expected exactly one user, got %d", repo.Count())
	}
}

func TestInMemoryRepository_GetMissing(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()

	_, err := repo.GetUserByLogin(context.Background(), "nobody")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestInMemoryRepository_ConcurrentRegistrationsOfSameName(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()

	const goroutines = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(context.Background(), &models.User{UserName: "alice"})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if succeeded != 1 {
		t.Fatalf("exactly one concurrent registration must win, got %d", succeeded)
	}
	if repo.Count() != 1 {
		t.Fatalf("expected one stored user, got %d", repo.Count())
	}
}
