// Package fixture implements the gateway interfaces against seeded
// in-memory data, so the service runs fully standalone when the remote
// backend is unreachable or not yet provisioned. Credentials are checked
// with the same hasher as production and tokens are real signed JWTs, so
// the session and guard paths behave identically against both backends.
package fixture

import (
	"context"
	"strings"
	"sync"
	"time"

	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/gateway"
	"marketfront/internal/domain/service"
)

// Fixture holds the seeded marketplace state shared by the per-resource
// gateway implementations. All access goes through the mutex.
type Fixture struct {
	mu sync.RWMutex

	hasher service.PasswordHasher
	tokens service.TokenService

	users      []*entity.User
	passwords  map[int64]string // user ID -> bcrypt hash
	vendors    []*entity.VendorProfile
	categories []entity.Category
	products   []entity.Product
	reviews    map[int64][]entity.Review // product ID -> reviews

	carts     map[int64]*entity.Cart          // user ID -> cart
	wishlists map[int64][]entity.WishlistItem // user ID -> wishlist
	orders    map[int64][]entity.Order        // user ID -> orders

	seq int64
}

// NewFixture seeds the marketplace state and returns the shared core.
func NewFixture(hasher service.PasswordHasher, tokens service.TokenService) (*Fixture, error) {
	f := &Fixture{
		hasher:    hasher,
		tokens:    tokens,
		passwords: make(map[int64]string),
		reviews:   make(map[int64][]entity.Review),
		carts:     make(map[int64]*entity.Cart),
		wishlists: make(map[int64][]entity.WishlistItem),
		orders:    make(map[int64][]entity.Order),
		seq:       1000,
	}
	if err := f.seed(); err != nil {
		return nil, err
	}

	return f, nil
}

// nextID hands out identifiers above the seeded range. Callers must hold
// the write lock.
func (f *Fixture) nextID() int64 {
	f.seq++

	return f.seq
}

// actingUser resolves the bearer token on the context to a seeded user.
func (f *Fixture) actingUser(ctx context.Context) (*entity.User, error) {
	token := gateway.TokenFromContext(ctx)
	if token == "" {
		return nil, gateway.ErrUnauthorized
	}

	claimed, err := f.tokens.Inspect(token)
	if err != nil {
		return nil, gateway.ErrUnauthorized
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, u := range f.users {
		if u.ID == claimed.ID {
			return u, nil
		}
	}

	return nil, gateway.ErrUnauthorized
}

// findUser matches a login identifier against seeded accounts. Email
// matching is case-insensitive, usernames are exact.
func (f *Fixture) findUser(email, username string) *entity.User {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, u := range f.users {
		if email != "" && strings.EqualFold(u.Email, email) {
			return u
		}
		if username != "" && u.Username == username {
			return u
		}
	}

	return nil
}

func (f *Fixture) vendorByUserID(userID int64) *entity.VendorProfile {
	for _, v := range f.vendors {
		if v.UserID == userID {
			return v
		}
	}

	return nil
}

func (f *Fixture) productByID(id int64) *entity.Product {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i]
		}
	}

	return nil
}

func daysAgo(n int) time.Time {
	return time.Now().AddDate(0, 0, -n).Truncate(time.Second)
}
