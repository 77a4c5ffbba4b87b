package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dvelkova/splitwise/internal/config"
	"github.com/dvelkova/splitwise/internal/dispatch"
	"github.com/dvelkova/splitwise/internal/ledger"
	"github.com/dvelkova/splitwise/internal/ops"
	"github.com/dvelkova/splitwise/internal/repo"
	"github.com/dvelkova/splitwise/internal/router"
	"github.com/dvelkova/splitwise/pkg/auth"
	"github.com/dvelkova/splitwise/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

// Application is the service registry: every collaborator is constructed
// once here and passed by reference, never reached through globals.
type Application struct {
	cfg        *config.Config
	repo       *repo.Repositories
	ledger     *ledger.Ledger
	router     *router.Router
	dispatcher *dispatch.Dispatcher

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("can't create data directory: %w", err)
	}

	a.cfg = cfg
	a.repo = repo.New(cfg.DataDir)
	if err := a.repo.Load(); err != nil {
		zap.L().Error("loading record stores failed", zap.Error(err))
		return fmt.Errorf("can't load record stores: %w", err)
	}

	a.ledger = ledger.New(a.repo.Users, a.repo.Groups, a.repo.Notifications, a.repo.DebtLog)
	if err := a.ledger.Replay(ctx); err != nil {
		zap.L().Error("ledger replay failed", zap.Error(err))
		return fmt.Errorf("can't replay ledger state: %w", err)
	}

	a.router = router.New(a.repo.Users, a.repo.Friends, a.repo.Groups, a.repo.Notifications, a.ledger, auth.NewHasher())
	a.dispatcher = dispatch.New(a.router)

	if err := a.startDispatcher(ctx); err != nil {
		return fmt.Errorf("can't start dispatcher: %w", err)
	}
	if err := a.startOpsServer(ctx); err != nil {
		return fmt.Errorf("can't start ops server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) startDispatcher(ctx context.Context) error {
	lis, err := net.Listen("tcp", a.cfg.Address)
	if err != nil {
		return fmt.Errorf("can't listen on %s: %w", a.cfg.Address, err)
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.dispatcher.Serve(ctx, lis); err != nil {
			a.errCh <- fmt.Errorf("dispatcher exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startOpsServer(ctx context.Context) error {
	rtr := chi.NewRouter()
	ops.New(a).InitRoutes(rtr)
	server := http.Server{
		Addr:    a.cfg.OpsAddress,
		Handler: rtr,
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting ops http server", zap.String("addr", a.cfg.OpsAddress))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("ops server exited with error: %w", err)
		}
	}()

	return nil
}

// StatsSource for the ops endpoints.

func (a *Application) UserCount() int { return a.repo.Users.Count() }
func (a *Application) EdgeCount() int { return a.ledger.EdgeCount() }
func (a *Application) ConnCount() int { return a.dispatcher.ConnCount() }

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
