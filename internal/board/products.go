package board

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/toastboard/internal/core/catalog"
	"github.com/colonyops/toastboard/internal/core/eventbus"
	"github.com/colonyops/toastboard/internal/core/logging"
	"github.com/colonyops/toastboard/internal/core/validate"
)

// Authenticator resolves session tokens to users.
type Authenticator interface {
	Authenticate(token string) (catalog.User, error)
}

// ProductService manages the in-memory product catalog. Mutations require
// an authenticated session and publish their outcome on the event bus.
type ProductService struct {
	auth Authenticator
	bus  *eventbus.EventBus
	log  zerolog.Logger
	now  func() time.Time

	mu       sync.RWMutex
	products map[string]catalog.Product
}

// NewProductService creates a ProductService.
func NewProductService(auth Authenticator, bus *eventbus.EventBus, log zerolog.Logger) *ProductService {
	return &ProductService{
		auth:     auth,
		bus:      bus,
		log:      log.With().Str("component", "product-service").Logger(),
		now:      time.Now,
		products: make(map[string]catalog.Product),
	}
}

// List returns all products ordered by creation time, oldest first.
func (s *ProductService) List(_ context.Context) []catalog.Product {
	s.mu.RLock()
	out := make([]catalog.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b catalog.Product) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Get returns the product with id.
func (s *ProductService) Get(_ context.Context, id string) (catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return catalog.Product{}, fmt.Errorf("product %s: %w", id, catalog.ErrNotFound)
	}
	return p, nil
}

// Save creates p when its ID is empty or temporary, otherwise updates the
// existing product. The boolean reports whether a product was created.
func (s *ProductService) Save(ctx context.Context, token string, p catalog.Product) (catalog.Product, bool, error) {
	ctx = logging.WithOperation(ctx, "product.save")

	saved, created, err := s.save(ctx, token, p)
	if err != nil {
		s.log.Warn().Ctx(ctx).Err(err).Str("product_id", p.ID).Msg("save product failed")
		if s.bus != nil {
			s.bus.PublishProductSaveFailed(eventbus.ProductSaveFailedPayload{Product: p, Err: err})
		}
		return catalog.Product{}, false, err
	}

	s.log.Info().Ctx(ctx).Str("product_id", saved.ID).Bool("created", created).Msg("product saved")
	if s.bus != nil {
		s.bus.PublishProductSaved(eventbus.ProductSavedPayload{Product: saved, Created: created})
	}
	return saved, created, nil
}

func (s *ProductService) save(ctx context.Context, token string, p catalog.Product) (catalog.Product, bool, error) {
	user, err := s.auth.Authenticate(token)
	if err != nil {
		return catalog.Product{}, false, err
	}
	s.log.Debug().Ctx(logging.WithUser(ctx, user.Email)).Msg("authenticated")

	if err := validate.Product(p.Name, p.Price); err != nil {
		return catalog.Product{}, false, errors.Join(catalog.ErrValidation, err)
	}

	p.Name = strings.TrimSpace(p.Name)
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if p.IsNew() {
		p.ID = uuid.NewString()
		p.CreatedAt = now
		p.UpdatedAt = now
		s.products[p.ID] = p
		return p, true, nil
	}

	existing, ok := s.products[p.ID]
	if !ok {
		return catalog.Product{}, false, fmt.Errorf("product %s: %w", p.ID, catalog.ErrNotFound)
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = now
	s.products[p.ID] = p
	return p, false, nil
}

// Delete removes the product with id.
func (s *ProductService) Delete(ctx context.Context, token, id string) error {
	ctx = logging.WithOperation(ctx, "product.delete")

	err := s.delete(token, id)
	if err != nil {
		s.log.Warn().Ctx(ctx).Err(err).Str("product_id", id).Msg("delete product failed")
		if s.bus != nil {
			s.bus.PublishProductDeleteFailed(eventbus.ProductDeleteFailedPayload{ProductID: id, Err: err})
		}
		return err
	}

	s.log.Info().Ctx(ctx).Str("product_id", id).Msg("product deleted")
	if s.bus != nil {
		s.bus.PublishProductDeleted(eventbus.ProductDeletedPayload{ProductID: id})
	}
	return nil
}

func (s *ProductService) delete(token, id string) error {
	if _, err := s.auth.Authenticate(token); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return fmt.Errorf("product %s: %w", id, catalog.ErrNotFound)
	}
	delete(s.products, id)
	return nil
}

// Seed inserts products without authentication or events. Products keep
// their IDs when set; empty IDs get a fresh one.
func (s *ProductService) Seed(products ...catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for i, p := range products {
		if p.IsNew() {
			p.ID = uuid.NewString()
		}
		if p.CreatedAt.IsZero() {
			// Preserve seed order in List.
			p.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
			p.UpdatedAt = p.CreatedAt
		}
		s.products[p.ID] = p
	}
}
