package eventbus_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/toastboard/internal/core/catalog"
	"github.com/colonyops/toastboard/internal/core/eventbus"
	"github.com/colonyops/toastboard/internal/core/eventbus/testbus"
	"github.com/colonyops/toastboard/internal/core/notify"
	"github.com/colonyops/toastboard/internal/core/toast"
	"github.com/colonyops/toastboard/internal/core/validate"
)

type shownToast struct {
	Severity notify.Severity
	Message  string
}

type recordingNotifier struct {
	mu    sync.Mutex
	shown []shownToast
}

func (n *recordingNotifier) add(sev notify.Severity, msg string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.shown = append(n.shown, shownToast{Severity: sev, Message: msg})
	return "id"
}

func (n *recordingNotifier) Success(m string, _ ...toast.NotifyOption) string {
	return n.add(notify.SeveritySuccess, m)
}

func (n *recordingNotifier) Error(m string, _ ...toast.NotifyOption) string {
	return n.add(notify.SeverityError, m)
}

func (n *recordingNotifier) Warning(m string, _ ...toast.NotifyOption) string {
	return n.add(notify.SeverityWarning, m)
}

func (n *recordingNotifier) Info(m string, _ ...toast.NotifyOption) string {
	return n.add(notify.SeverityInfo, m)
}

func (n *recordingNotifier) latest(t *testing.T) shownToast {
	t.Helper()
	var got shownToast
	assert.Eventually(t, func() bool {
		n.mu.Lock()
		defer n.mu.Unlock()
		if len(n.shown) == 0 {
			return false
		}
		got = n.shown[len(n.shown)-1]
		return true
	}, time.Second, 5*time.Millisecond)
	return got
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.shown)
}

func newRouted(t *testing.T) (*testbus.Bus, *recordingNotifier) {
	t.Helper()
	tb := testbus.New(t)
	n := &recordingNotifier{}
	eventbus.NewNotificationRouter(tb.EventBus, n).Register()
	return tb, n
}

func TestNotificationRouter_ProductSaved(t *testing.T) {
	tests := []struct {
		name    string
		created bool
		want    string
	}{
		{"created", true, eventbus.MsgProductAdded},
		{"updated", false, eventbus.MsgProductUpdated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb, n := newRouted(t)

			tb.PublishProductSaved(eventbus.ProductSavedPayload{Product: catalog.Product{Name: "Widget"}, Created: tt.created})

			got := n.latest(t)
			assert.Equal(t, notify.SeveritySuccess, got.Severity)
			assert.Equal(t, tt.want, got.Message)
		})
	}
}

func TestNotificationRouter_ProductSaveFailed(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation", validate.Product("", 1), eventbus.MsgFillRequired},
		{"unauthorized", catalog.ErrUnauthorized, eventbus.MsgNotAuthorized},
		{"other", errors.New("disk on fire"), eventbus.MsgSaveFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb, n := newRouted(t)

			tb.PublishProductSaveFailed(eventbus.ProductSaveFailedPayload{Err: tt.err})

			got := n.latest(t)
			assert.Equal(t, notify.SeverityError, got.Severity)
			assert.Equal(t, tt.want, got.Message)
		})
	}
}

func TestNotificationRouter_ProductDeleted(t *testing.T) {
	tb, n := newRouted(t)

	tb.PublishProductDeleted(eventbus.ProductDeletedPayload{ProductID: "p1"})

	got := n.latest(t)
	assert.Equal(t, notify.SeveritySuccess, got.Severity)
	assert.Equal(t, eventbus.MsgProductDeleted, got.Message)
}

func TestNotificationRouter_ProductDeleteFailed(t *testing.T) {
	tb, n := newRouted(t)
	tb.PublishProductDeleteFailed(eventbus.ProductDeleteFailedPayload{ProductID: "p1", Err: catalog.ErrUnauthorized})
	assert.Equal(t, eventbus.MsgNotAuthorizedDelete, n.latest(t).Message)

	tb2, n2 := newRouted(t)
	tb2.PublishProductDeleteFailed(eventbus.ProductDeleteFailedPayload{ProductID: "p1", Err: catalog.ErrNotFound})
	assert.Equal(t, eventbus.MsgDeleteFailed, n2.latest(t).Message)
}

func TestNotificationRouter_AccountRegistered(t *testing.T) {
	tb, n := newRouted(t)

	tb.PublishAccountRegistered(eventbus.AccountRegisteredPayload{Email: "ada@example.com"})

	got := n.latest(t)
	assert.Equal(t, notify.SeveritySuccess, got.Severity)
	assert.Equal(t, eventbus.MsgAccountCreated, got.Message)
}

func TestNotificationRouter_AccountRegisterFailed(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"duplicate", catalog.ErrEmailExists, eventbus.MsgEmailExists},
		{"missing fields", validate.SignUp("", "ada", "1"), eventbus.MsgFillRequired},
		{"bad email", validate.SignUp("Ada", "ada", "123"), eventbus.MsgInvalidEmail},
		{"short password", validate.SignUp("Ada", "ada@example.com", "123"), eventbus.MsgPasswordTooShort},
		{"other", errors.New("boom"), eventbus.MsgRegisterFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb, n := newRouted(t)

			tb.PublishAccountRegisterFailed(eventbus.AccountRegisterFailedPayload{Err: tt.err})

			got := n.latest(t)
			assert.Equal(t, notify.SeverityError, got.Severity)
			assert.Equal(t, tt.want, got.Message)
		})
	}
}

func TestNotificationRouter_TuiEvents_doNotNotify(t *testing.T) {
	tb, n := newRouted(t)

	tb.PublishTuiStarted(eventbus.TUIStartedPayload{})
	tb.PublishTuiStopped(eventbus.TUIStoppedPayload{})

	tb.AssertPublished(t, eventbus.EventTuiStopped)
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, n.count())
}
