package eventbus

import (
	"errors"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/toastboard/internal/core/catalog"
	"github.com/colonyops/toastboard/internal/core/toast"
	"github.com/colonyops/toastboard/internal/core/validate"
)

// User-facing toast messages.
const (
	MsgProductAdded        = "Product added successfully"
	MsgProductUpdated      = "Product updated successfully"
	MsgProductDeleted      = "Product deleted successfully"
	MsgFillRequired        = "Please fill all required fields"
	MsgNotAuthorized       = "You are not authorized to perform this action"
	MsgNotAuthorizedDelete = "You are not authorized to delete this product"
	MsgSaveFailed          = "Failed to save product. Please try again."
	MsgDeleteFailed        = "Failed to delete product. Please try again."
	MsgAccountCreated      = "Account created successfully! You can now log in."
	MsgEmailExists         = "An account with this email already exists"
	MsgInvalidEmail        = "Please enter a valid email address"
	MsgPasswordTooShort    = "Password must be at least 6 characters long"
	MsgRegisterFailed      = "Failed to create account. Please try again."
	MsgConfigReloaded      = "Configuration reloaded"
)

// Notifier is the subset of the toast manager the router needs.
type Notifier interface {
	Success(message string, opts ...toast.NotifyOption) string
	Error(message string, opts ...toast.NotifyOption) string
	Warning(message string, opts ...toast.NotifyOption) string
	Info(message string, opts ...toast.NotifyOption) string
}

// NotificationRouter maps domain events to user-facing toasts.
type NotificationRouter struct {
	bus    *EventBus
	toasts Notifier
}

// NewNotificationRouter constructs a router for event-to-toast mappings.
func NewNotificationRouter(bus *EventBus, toasts Notifier) *NotificationRouter {
	return &NotificationRouter{bus: bus, toasts: toasts}
}

// Register subscribes all supported event mappings.
func (r *NotificationRouter) Register() {
	if r == nil || r.bus == nil || r.toasts == nil {
		return
	}

	r.bus.SubscribeProductSaved(func(p ProductSavedPayload) {
		if p.Created {
			r.toasts.Success(MsgProductAdded)
			return
		}
		r.toasts.Success(MsgProductUpdated)
	})

	r.bus.SubscribeProductSaveFailed(func(p ProductSaveFailedPayload) {
		r.toasts.Error(saveFailureMessage(p.Err))
	})

	r.bus.SubscribeProductDeleted(func(ProductDeletedPayload) {
		r.toasts.Success(MsgProductDeleted)
	})

	r.bus.SubscribeProductDeleteFailed(func(p ProductDeleteFailedPayload) {
		if errors.Is(p.Err, catalog.ErrUnauthorized) {
			r.toasts.Error(MsgNotAuthorizedDelete)
			return
		}
		r.toasts.Error(MsgDeleteFailed)
	})

	r.bus.SubscribeAccountRegistered(func(AccountRegisteredPayload) {
		r.toasts.Success(MsgAccountCreated)
	})

	r.bus.SubscribeAccountRegisterFailed(func(p AccountRegisterFailedPayload) {
		r.toasts.Error(registerFailureMessage(p.Err))
	})

	r.bus.SubscribeConfigReloaded(func(ConfigReloadedPayload) {
		r.toasts.Info(MsgConfigReloaded)
	})
}

func saveFailureMessage(err error) string {
	var fieldErrs criterio.FieldErrors
	switch {
	case errors.Is(err, catalog.ErrValidation), errors.As(err, &fieldErrs):
		return MsgFillRequired
	case errors.Is(err, catalog.ErrUnauthorized):
		return MsgNotAuthorized
	default:
		return MsgSaveFailed
	}
}

// registerFailureMessage reports the first applicable problem: missing
// fields, then email shape, then password length.
func registerFailureMessage(err error) string {
	if errors.Is(err, catalog.ErrEmailExists) {
		return MsgEmailExists
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return MsgRegisterFailed
	}
	if validate.HasRequired(err) {
		return MsgFillRequired
	}
	for _, fe := range fieldErrs {
		if errors.Is(fe.Err, validate.ErrInvalidEmail) {
			return MsgInvalidEmail
		}
	}
	for _, fe := range fieldErrs {
		if errors.Is(fe.Err, validate.ErrPasswordTooShort) {
			return MsgPasswordTooShort
		}
	}
	return MsgRegisterFailed
}
