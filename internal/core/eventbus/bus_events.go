package eventbus

// PublishAccountRegisterFailed publishes an account.register-failed event.
func (bus *EventBus) PublishAccountRegisterFailed(p AccountRegisterFailedPayload) {
	bus.send(EventAccountRegisterFailed, p)
}

// SubscribeAccountRegisterFailed registers fn for account.register-failed events.
func (bus *EventBus) SubscribeAccountRegisterFailed(fn func(AccountRegisterFailedPayload)) {
	bus.subscribe(EventAccountRegisterFailed, func(v any) { fn(v.(AccountRegisterFailedPayload)) })
}

// PublishAccountRegistered publishes an account.registered event.
func (bus *EventBus) PublishAccountRegistered(p AccountRegisteredPayload) {
	bus.send(EventAccountRegistered, p)
}

// SubscribeAccountRegistered registers fn for account.registered events.
func (bus *EventBus) SubscribeAccountRegistered(fn func(AccountRegisteredPayload)) {
	bus.subscribe(EventAccountRegistered, func(v any) { fn(v.(AccountRegisteredPayload)) })
}

// PublishConfigReloaded publishes a config.reloaded event.
func (bus *EventBus) PublishConfigReloaded(p ConfigReloadedPayload) {
	bus.send(EventConfigReloaded, p)
}

// SubscribeConfigReloaded registers fn for config.reloaded events.
func (bus *EventBus) SubscribeConfigReloaded(fn func(ConfigReloadedPayload)) {
	bus.subscribe(EventConfigReloaded, func(v any) { fn(v.(ConfigReloadedPayload)) })
}

// PublishProductDeleteFailed publishes a product.delete-failed event.
func (bus *EventBus) PublishProductDeleteFailed(p ProductDeleteFailedPayload) {
	bus.send(EventProductDeleteFailed, p)
}

// SubscribeProductDeleteFailed registers fn for product.delete-failed events.
func (bus *EventBus) SubscribeProductDeleteFailed(fn func(ProductDeleteFailedPayload)) {
	bus.subscribe(EventProductDeleteFailed, func(v any) { fn(v.(ProductDeleteFailedPayload)) })
}

// PublishProductDeleted publishes a product.deleted event.
func (bus *EventBus) PublishProductDeleted(p ProductDeletedPayload) {
	bus.send(EventProductDeleted, p)
}

// SubscribeProductDeleted registers fn for product.deleted events.
func (bus *EventBus) SubscribeProductDeleted(fn func(ProductDeletedPayload)) {
	bus.subscribe(EventProductDeleted, func(v any) { fn(v.(ProductDeletedPayload)) })
}

// PublishProductSaveFailed publishes a product.save-failed event.
func (bus *EventBus) PublishProductSaveFailed(p ProductSaveFailedPayload) {
	bus.send(EventProductSaveFailed, p)
}

// SubscribeProductSaveFailed registers fn for product.save-failed events.
func (bus *EventBus) SubscribeProductSaveFailed(fn func(ProductSaveFailedPayload)) {
	bus.subscribe(EventProductSaveFailed, func(v any) { fn(v.(ProductSaveFailedPayload)) })
}

// PublishProductSaved publishes a product.saved event.
func (bus *EventBus) PublishProductSaved(p ProductSavedPayload) {
	bus.send(EventProductSaved, p)
}

// SubscribeProductSaved registers fn for product.saved events.
func (bus *EventBus) SubscribeProductSaved(fn func(ProductSavedPayload)) {
	bus.subscribe(EventProductSaved, func(v any) { fn(v.(ProductSavedPayload)) })
}

// PublishTuiStarted publishes a tui.started event.
func (bus *EventBus) PublishTuiStarted(p TUIStartedPayload) {
	bus.send(EventTuiStarted, p)
}

// SubscribeTuiStarted registers fn for tui.started events.
func (bus *EventBus) SubscribeTuiStarted(fn func(TUIStartedPayload)) {
	bus.subscribe(EventTuiStarted, func(v any) { fn(v.(TUIStartedPayload)) })
}

// PublishTuiStopped publishes a tui.stopped event.
func (bus *EventBus) PublishTuiStopped(p TUIStoppedPayload) {
	bus.send(EventTuiStopped, p)
}

// SubscribeTuiStopped registers fn for tui.stopped events.
func (bus *EventBus) SubscribeTuiStopped(fn func(TUIStoppedPayload)) {
	bus.subscribe(EventTuiStopped, func(v any) { fn(v.(TUIStoppedPayload)) })
}
