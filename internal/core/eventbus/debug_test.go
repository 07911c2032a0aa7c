package eventbus_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/colonyops/toastboard/internal/core/catalog"
	"github.com/colonyops/toastboard/internal/core/eventbus"
	"github.com/colonyops/toastboard/internal/core/eventbus/testbus"
)

func TestRegisterDebugLogger(t *testing.T) {
	tb := testbus.New(t)

	// Register with a nop logger; verifies no panic.
	eventbus.RegisterDebugLogger(tb.EventBus, zerolog.Nop())

	// Publish a few events to exercise all subscriber paths.
	tb.PublishProductSaved(eventbus.ProductSavedPayload{
		Product: catalog.Product{ID: "p1", Name: "Widget"},
	})
	tb.PublishTuiStarted(eventbus.TUIStartedPayload{})
	tb.PublishProductDeleted(eventbus.ProductDeletedPayload{ProductID: "p1"})

	// Wait for last event to confirm all dispatched without panic.
	tb.AssertPublished(t, eventbus.EventProductDeleted)
}
