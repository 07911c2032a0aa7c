// Package tui implements the Bubble Tea dashboard for toastboard.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/toastboard/internal/board"
	"github.com/colonyops/toastboard/internal/core/catalog"
	"github.com/colonyops/toastboard/internal/core/eventbus"
	"github.com/colonyops/toastboard/internal/core/logging"
	"github.com/colonyops/toastboard/internal/core/toast"
	"github.com/colonyops/toastboard/pkg/randid"
)

// Opts configures the dashboard.
type Opts struct {
	Token      string           // session token of an already logged-in user
	PlainIcons bool             // ASCII icons instead of nerd font glyphs
	Now        func() time.Time // clock used for countdowns; nil uses time.Now
}

// Model is the dashboard's Bubble Tea model.
type Model struct {
	ctx    context.Context
	app    *board.App
	log    zerolog.Logger
	keys   KeyMap
	help   help.Model
	buffer *SnapshotBuffer

	toastController *ToastController
	toastView       *ToastView

	products []catalog.Product
	cursor   int
	token    string
	added    int

	width    int
	height   int
	quitting bool
}

// New creates a dashboard model. buffer must be subscribed to the app's
// toast manager by the caller.
func New(ctx context.Context, app *board.App, buffer *SnapshotBuffer, opts Opts) Model {
	controller := NewToastController()
	return Model{
		ctx:             ctx,
		app:             app,
		log:             logging.Component("tui"),
		keys:            DefaultKeyMap(),
		help:            help.New(),
		buffer:          buffer,
		toastController: controller,
		toastView:       NewToastView(controller, opts.Now, opts.PlainIcons),
		products:        app.Products.List(ctx),
		token:           opts.Token,
	}
}

// Run subscribes a dashboard to app's toasts and runs it until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, app *board.App, opts Opts, progOpts ...tea.ProgramOption) error {
	buffer := NewSnapshotBuffer()
	unsubscribe := app.Toasts.Subscribe(buffer.Push)
	defer unsubscribe()
	buffer.Push(app.Toasts.List())

	app.Bus.PublishTuiStarted(eventbus.TUIStartedPayload{})
	defer app.Bus.PublishTuiStopped(eventbus.TUIStoppedPayload{})

	m := New(ctx, app, buffer, opts)
	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithContext(ctx)}, progOpts...)...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// Init starts listening for toast snapshots.
func (m Model) Init() tea.Cmd {
	return m.buffer.WaitForSignal()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)
		return m, nil
	case drainSnapshotsMsg:
		return m.handleSnapshots()
	case toastTickMsg:
		if m.toastController.HasCountdown() {
			return m, scheduleToastTick(m.tick())
		}
		m.toastController.SetTicking(false)
		return m, nil
	case loginResultMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("demo login failed")
			m.app.Toasts.Error("Login failed: " + msg.err.Error())
			return m, nil
		}
		m.token = msg.token
		m.app.Toasts.Info("Logged in as " + board.DemoEmail)
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleSnapshots() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.buffer.WaitForSignal()}
	if snapshot, ok := m.buffer.Drain(); ok {
		m.toastController.Set(snapshot)
	}
	if m.toastController.HasCountdown() && !m.toastController.Ticking() {
		m.toastController.SetTicking(true)
		cmds = append(cmds, scheduleToastTick(m.tick()))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.products)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Add):
		m.added++
		_, _, _ = m.app.Products.Save(m.ctx, m.token, catalog.Product{
			ID:       catalog.TempIDPrefix + randid.Generate(8),
			Name:     fmt.Sprintf("Sample Product %d", m.added),
			Price:    float64(m.added) * 9.5,
			Category: "Samples",
		})
		m.reload()
	case key.Matches(msg, m.keys.Edit):
		if p, ok := m.selected(); ok {
			p.Price += 1
			_, _, _ = m.app.Products.Save(m.ctx, m.token, p)
			m.reload()
		}
	case key.Matches(msg, m.keys.Invalid):
		_, _, _ = m.app.Products.Save(m.ctx, m.token, catalog.Product{
			ID:    catalog.TempIDPrefix + randid.Generate(8),
			Price: -1,
		})
	case key.Matches(msg, m.keys.Delete):
		if p, ok := m.selected(); ok {
			_ = m.app.Products.Delete(m.ctx, m.token, p.ID)
			m.reload()
		}
	case key.Matches(msg, m.keys.Login):
		if m.token != "" {
			m.app.Accounts.Logout(m.token)
			m.token = ""
			m.app.Toasts.Warning("Logged out. Changes will be rejected until you log in again.")
			return m, nil
		}
		return m, m.login()
	case key.Matches(msg, m.keys.Sticky):
		m.app.Toasts.Info("This toast stays until you dismiss it (x)", toast.Sticky())
	case key.Matches(msg, m.keys.Dismiss):
		m.app.Toasts.DismissNewest()
	case key.Matches(msg, m.keys.DismissAll):
		m.app.Toasts.DismissAll()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) login() tea.Cmd {
	ctx, app := m.ctx, m.app
	return func() tea.Msg {
		token, err := app.DemoLogin(ctx)
		return loginResultMsg{token: token, err: err}
	}
}

func (m *Model) reload() {
	m.products = m.app.Products.List(m.ctx)
	if m.cursor >= len(m.products) {
		m.cursor = max(len(m.products)-1, 0)
	}
}

func (m Model) selected() (catalog.Product, bool) {
	if m.cursor < 0 || m.cursor >= len(m.products) {
		return catalog.Product{}, false
	}
	return m.products[m.cursor], true
}

func (m Model) tick() time.Duration {
	if cfg := m.app.Config(); cfg != nil && cfg.TUI.Tick > 0 {
		return cfg.TUI.Tick
	}
	return defaultToastTick
}

// LoggedIn reports whether the dashboard holds a session token.
func (m Model) LoggedIn() bool {
	return m.token != ""
}
