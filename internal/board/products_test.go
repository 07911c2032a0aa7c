package board

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/colonyops/toastboard/internal/core/catalog"
	"github.com/colonyops/toastboard/internal/core/eventbus"
	"github.com/colonyops/toastboard/internal/core/eventbus/testbus"
)

func newProducts(t *testing.T) (*ProductService, string, *testbus.Bus) {
	t.Helper()
	tb := testbus.New(t)
	accounts := NewAccountService(nil, zerolog.Nop(), bcrypt.MinCost)
	ctx := context.Background()
	require.NoError(t, accounts.Register(ctx, "Ada", "ada@example.com", "secret1"))
	token, err := accounts.Login(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)
	return NewProductService(accounts, tb.EventBus, zerolog.Nop()), token, tb
}

func TestProductService_Save_creates_for_temp_id(t *testing.T) {
	svc, token, tb := newProducts(t)

	saved, created, err := svc.Save(context.Background(), token, catalog.Product{ID: "temp_1", Name: "Widget", Price: 3})
	require.NoError(t, err)

	assert.True(t, created)
	assert.False(t, strings.HasPrefix(saved.ID, catalog.TempIDPrefix))
	assert.False(t, saved.CreatedAt.IsZero())

	tb.AssertPublished(t, eventbus.EventProductSaved)
	p := tb.Payloads(eventbus.EventProductSaved)[0].(eventbus.ProductSavedPayload)
	assert.True(t, p.Created)
	assert.Equal(t, saved.ID, p.Product.ID)
}

func TestProductService_Save_updates_existing(t *testing.T) {
	svc, token, _ := newProducts(t)
	ctx := context.Background()

	first, _, err := svc.Save(ctx, token, catalog.Product{Name: "Widget", Price: 3})
	require.NoError(t, err)

	first.Price = 4
	updated, created, err := svc.Save(ctx, token, first)
	require.NoError(t, err)

	assert.False(t, created)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, first.CreatedAt, updated.CreatedAt)

	got, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got.Price, 0.0001)
}

func TestProductService_Save_failures(t *testing.T) {
	tests := []struct {
		name    string
		token   func(valid string) string
		product catalog.Product
		wantErr error
	}{
		{
			name:    "unauthorized",
			token:   func(string) string { return "bogus" },
			product: catalog.Product{Name: "Widget"},
			wantErr: catalog.ErrUnauthorized,
		},
		{
			name:    "missing name",
			token:   func(v string) string { return v },
			product: catalog.Product{Price: 1},
			wantErr: catalog.ErrValidation,
		},
		{
			name:    "negative price",
			token:   func(v string) string { return v },
			product: catalog.Product{Name: "Widget", Price: -1},
			wantErr: catalog.ErrValidation,
		},
		{
			name:    "unknown id",
			token:   func(v string) string { return v },
			product: catalog.Product{ID: "missing", Name: "Widget"},
			wantErr: catalog.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, token, tb := newProducts(t)

			_, _, err := svc.Save(context.Background(), tt.token(token), tt.product)

			require.ErrorIs(t, err, tt.wantErr)
			tb.AssertPublished(t, eventbus.EventProductSaveFailed)
			assert.Empty(t, svc.List(context.Background()))
		})
	}
}

func TestProductService_Delete(t *testing.T) {
	svc, token, tb := newProducts(t)
	ctx := context.Background()

	p, _, err := svc.Save(ctx, token, catalog.Product{Name: "Widget"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, "", p.ID), catalog.ErrUnauthorized)
	tb.AssertPublished(t, eventbus.EventProductDeleteFailed)

	require.NoError(t, svc.Delete(ctx, token, p.ID))
	tb.AssertPublished(t, eventbus.EventProductDeleted)

	require.ErrorIs(t, svc.Delete(ctx, token, p.ID), catalog.ErrNotFound)
	assert.Empty(t, svc.List(ctx))
}

func TestProductService_Seed_preserves_order(t *testing.T) {
	svc, _, _ := newProducts(t)

	svc.Seed(SampleProducts()...)

	list := svc.List(context.Background())
	require.Len(t, list, len(sampleProducts))
	for i, p := range list {
		assert.Equal(t, sampleProducts[i].Name, p.Name)
		assert.NotEmpty(t, p.ID)
	}
}
