package auth

import (
	"context"
	"errors"
	"sync"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

const MinPasswordLength = 8

var ErrWeakPassword = errors.New("password must be at least 8 characters long")

// Hasher - bcrypt с ограничением числа одновременных вычислений.
// bcrypt нагружает CPU, поэтому пул ограничен семафором.
type Hasher struct {
	cost int
	sem  *semaphore.Weighted

	dummyOnce sync.Once
	dummyHash []byte
}

func NewHasher(cost int, concurrency int64) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Hasher{
		cost: cost,
		sem:  semaphore.NewWeighted(concurrency),
	}
}

// Hash создает bcrypt хеш пароля
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Compare проверяет пароль против хеша. Ошибка возвращается только
// при отмене контекста, несовпадение - это false.
func (h *Hasher) Compare(ctx context.Context, hash, password string) (bool, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer h.sem.Release(1)

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil, nil
}

// CompareDummy тратит столько же времени, сколько настоящая проверка.
// Вызывается, когда пользователь не найден.
func (h *Hasher) CompareDummy(ctx context.Context, password string) error {
	h.dummyOnce.Do(func() {
		h.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), h.cost)
	})
	_, err := h.Compare(ctx, string(h.dummyHash), password)
	return err
}

// ValidatePassword проверяет сложность пароля
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}
