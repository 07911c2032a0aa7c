package board

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/colonyops/toastboard/internal/core/config"
	"github.com/colonyops/toastboard/internal/core/eventbus"
	"github.com/colonyops/toastboard/internal/core/expiry"
	"github.com/colonyops/toastboard/internal/core/logging"
	"github.com/colonyops/toastboard/internal/core/notify"
	"github.com/colonyops/toastboard/internal/core/styles"
	"github.com/colonyops/toastboard/internal/core/toast"
	"github.com/colonyops/toastboard/pkg/clock"
)

const defaultBusBuffer = 256

// Options tunes App construction. The zero value is production ready.
type Options struct {
	Clock      clock.Clock // nil uses the real clock
	BcryptCost int         // 0 uses bcrypt.DefaultCost
	BusBuffer  int
	SkipSeed   bool
}

// App is the central entry point for all toastboard operations.
// Commands and TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Store     *notify.Store
	Scheduler *expiry.Scheduler
	Toasts    *toast.Manager
	Bus       *eventbus.EventBus
	Accounts  *AccountService
	Products  *ProductService

	cfg       atomic.Pointer[config.Config]
	log       zerolog.Logger
	cancel    context.CancelFunc
	busDone   chan struct{}
	closeOnce sync.Once
}

// New builds an App from cfg and starts its event bus. Close must be
// called to stop the bus and release pending timers.
func New(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("new app: config is required")
	}

	clk := opts.Clock
	if clk == nil {
		clk = clock.Real()
	}
	buffer := opts.BusBuffer
	if buffer <= 0 {
		buffer = defaultBusBuffer
	}

	store := notify.NewStore(notify.StoreOptions{
		Capacity: cfg.Toasts.Capacity,
		Order:    cfg.Toasts.Order,
		Now:      clk.Now,
	})
	scheduler := expiry.New(clk)
	manager := toast.NewManager(store, scheduler,
		toast.WithDefaults(cfg.Toasts.Durations),
		toast.WithLogger(logging.Component("toast")),
	)

	bus := eventbus.New(buffer)
	eventbus.RegisterDebugLogger(bus, logging.Component("eventbus"))
	eventbus.NewNotificationRouter(bus, manager).Register()

	log := logging.Component("board")
	accounts := NewAccountService(bus, log, opts.BcryptCost)
	accounts.now = clk.Now
	products := NewProductService(accounts, bus, log)
	products.now = clk.Now

	app := &App{
		Store:     store,
		Scheduler: scheduler,
		Toasts:    manager,
		Bus:       bus,
		Accounts:  accounts,
		Products:  products,
		log:       log,
		busDone:   make(chan struct{}),
	}
	app.cfg.Store(cfg)
	styles.UseTheme(cfg.TUI.Theme)

	bus.SubscribeConfigReloaded(func(p eventbus.ConfigReloadedPayload) {
		app.ApplyConfig(p.Config)
	})

	if !opts.SkipSeed {
		if err := app.seed(); err != nil {
			return nil, err
		}
	}

	busCtx, cancel := context.WithCancel(ctx)
	app.cancel = cancel
	go func() {
		defer close(app.busDone)
		bus.Start(busCtx)
	}()

	return app, nil
}

// Config returns the active configuration.
func (a *App) Config() *config.Config {
	return a.cfg.Load()
}

// ApplyConfig swaps in a reloaded configuration: toast lifetimes, capacity,
// order and theme take effect immediately. Visible toasts keep their
// lifetimes.
func (a *App) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	a.Toasts.Configure(cfg.Toasts.Durations)
	a.Toasts.SetLimits(cfg.Toasts.Capacity, cfg.Toasts.Order)
	if !styles.UseTheme(cfg.TUI.Theme) {
		a.log.Warn().Str("theme", cfg.TUI.Theme).Msg("unknown theme; keeping current")
	}
	a.cfg.Store(cfg)
	a.log.Info().
		Int("capacity", cfg.Toasts.Capacity).
		Str("order", string(cfg.Toasts.Order)).
		Msg("config applied")
}

// DemoLogin logs in as the seeded demo account.
func (a *App) DemoLogin(ctx context.Context) (string, error) {
	return a.Accounts.Login(ctx, DemoEmail, DemoPassword)
}

// Close stops the event bus and cancels every pending toast expiry. It is
// safe to call more than once.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		if a.cancel != nil {
			a.cancel()
			<-a.busDone
		}
		a.Toasts.Close()
	})
}
