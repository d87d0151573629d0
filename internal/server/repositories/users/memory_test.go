package users

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/adergachev/recipevault/internal/common"
	"github.com/adergachev/recipevault/internal/server/models"
)

func newUser(email, name string) *models.User {
	return &models.User{
		Email:        email,
		UserName:     name,
		Salt:         []byte("salt"),
		PasswordHash: []byte("digest"),
	}
}

func TestCreate_AssignsIDAndTimestamp(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newUser("a@x.com", "alice"))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected creation timestamp")
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, newUser("a@x.com", "alice")); err != nil {
		t.Fatalf("first Create error: %v", err)
	}

	_, err := repo.Create(ctx, newUser("a@x.com", "bob"))
	if !errors.Is(err, common.ErrorDuplicateEmail) {
		t.Fatalf("expected ErrorDuplicateEmail, got %v", err)
	}
}

func TestCreate_DuplicateUsername(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, newUser("a@x.com", "alice")); err != nil {
		t.Fatalf("first Create error: %v", err)
	}

	_, err := repo.Create(ctx, newUser("b@x.com", "alice"))
	if !errors.Is(err, common.ErrorDuplicateUsername) {
		t.Fatalf("expected ErrorDuplicateUsername, got %v", err)
	}
}

func TestLookups(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newUser("a@x.com", "alice"))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	if err != nil || byEmail.ID != created.ID {
		t.Fatalf("GetByEmail: user=%v err=%v", byEmail, err)
	}
	byName, err := repo.GetByUserName(ctx, "alice")
	if err != nil || byName.ID != created.ID {
		t.Fatalf("GetByUserName: user=%v err=%v", byName, err)
	}
	byID, err := repo.GetByID(ctx, created.ID)
	if err != nil || byID.Email != "a@x.com" {
		t.Fatalf("GetByID: user=%v err=%v", byID, err)
	}

	for _, lookup := range []func() (*models.User, error){
		func() (*models.User, error) { return repo.GetByEmail(ctx, "nope@x.com") },
		func() (*models.User, error) { return repo.GetByUserName(ctx, "nobody") },
		func() (*models.User, error) { return repo.GetByID(ctx, "missing") },
	} {
		if _, err := lookup(); !errors.Is(err, common.ErrorNotFound) {
			t.Fatalf("expected ErrorNotFound, got %v", err)
		}
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newUser("a@x.com", "alice"))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, _ := repo.GetByID(ctx, created.ID)
	got.Email = "tampered@x.com"
	got.Salt[0] = 'X'

	again, _ := repo.GetByID(ctx, created.ID)
	if again.Email != "a@x.com" || again.Salt[0] != 's' {
		t.Fatalf("mutating a returned record must not affect the store")
	}
}

func TestCreate_ConcurrentSameEmail(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	var successes atomic.Int64

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := newUser("race@x.com", "user-"+string(rune('a'+i%26))+string(rune('a'+i/26)))
			if _, err := repo.Create(ctx, u); err == nil {
				successes.Add(1)
			}
		}(i)
	}
	wg.Wait()

	if successes.Load() != 1 {
		t.Fatalf("exactly one registration with a contested email must win, got %d", successes.Load())
	}
}
