// Package eventbus provides a typed publish/subscribe event bus for
// cross-component communication within toastboard.
package eventbus

import (
	"github.com/colonyops/toastboard/internal/core/catalog"
	"github.com/colonyops/toastboard/internal/core/config"
)

// Event identifies a published event type.
type Event string

const (
	// Keep list sorted A-Z
	EventAccountRegisterFailed Event = "account.register-failed"
	EventAccountRegistered     Event = "account.registered"
	EventConfigReloaded        Event = "config.reloaded"
	EventProductDeleteFailed   Event = "product.delete-failed"
	EventProductDeleted        Event = "product.deleted"
	EventProductSaveFailed     Event = "product.save-failed"
	EventProductSaved          Event = "product.saved"
	EventTuiStarted            Event = "tui.started"
	EventTuiStopped            Event = "tui.stopped"
)

// Events maps every event type to its payload struct.
var Events = map[Event]any{
	EventAccountRegisterFailed: AccountRegisterFailedPayload{},
	EventAccountRegistered:     AccountRegisteredPayload{},
	EventConfigReloaded:        ConfigReloadedPayload{},
	EventProductDeleteFailed:   ProductDeleteFailedPayload{},
	EventProductDeleted:        ProductDeletedPayload{},
	EventProductSaveFailed:     ProductSaveFailedPayload{},
	EventProductSaved:          ProductSavedPayload{},
	EventTuiStarted:            TUIStartedPayload{},
	EventTuiStopped:            TUIStoppedPayload{},
}

// ProductSavedPayload is emitted when a product is created or updated.
type ProductSavedPayload struct {
	Product catalog.Product
	Created bool
}

// ProductSaveFailedPayload is emitted when saving a product fails.
type ProductSaveFailedPayload struct {
	Product catalog.Product
	Err     error
}

// ProductDeletedPayload is emitted when a product is deleted.
type ProductDeletedPayload struct {
	ProductID string
}

// ProductDeleteFailedPayload is emitted when deleting a product fails.
type ProductDeleteFailedPayload struct {
	ProductID string
	Err       error
}

// AccountRegisteredPayload is emitted when an account is created.
type AccountRegisteredPayload struct {
	UserID string
	Name   string
	Email  string
}

// AccountRegisterFailedPayload is emitted when registration fails.
type AccountRegisterFailedPayload struct {
	Email string
	Err   error
}

// TUIStartedPayload is emitted when the TUI starts.
type TUIStartedPayload struct{}

// TUIStoppedPayload is emitted when the TUI stops.
type TUIStoppedPayload struct{}

// ConfigReloadedPayload is emitted when configuration is reloaded.
type ConfigReloadedPayload struct {
	Config *config.Config
}
