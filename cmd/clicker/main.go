package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/vedantwpatil/Auto-Clicker/internal/config"
	"github.com/vedantwpatil/Auto-Clicker/internal/input"
	"github.com/vedantwpatil/Auto-Clicker/internal/logging"
	"github.com/vedantwpatil/Auto-Clicker/internal/playback"
	"github.com/vedantwpatil/Auto-Clicker/internal/tracking"
)

const hookDrainTimeout = 2 * time.Second

type Application struct {
	config  *config.Config
	logger  *zap.Logger
	hotkeys *input.HookListener
	driver  *playback.Driver
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewApplication(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	recordKey, err := input.ParseCombo(cfg.Hotkeys.Record)
	if err != nil {
		return nil, fmt.Errorf("invalid record hotkey: %w", err)
	}
	startKey, err := input.ParseCombo(cfg.Hotkeys.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start hotkey: %w", err)
	}

	hotkeys := input.NewHookListener(logger)
	driver := playback.NewDriver(playback.Config{
		Schedule: tracking.Schedule{
			Iterations: cfg.Playback.Iterations,
			Interval:   playback.Millis(cfg.Playback.IntervalMs),
			Pause:      playback.Millis(cfg.Playback.PauseMs),
		},
		Profile:   cfg.Playback.Profile,
		RecordKey: recordKey,
		StartKey:  startKey,
	}, hotkeys, input.NewRobotPointer(), logger)

	ctx, cancel := context.WithCancel(context.Background())
	return &Application{
		config:  cfg,
		logger:  logger,
		hotkeys: hotkeys,
		driver:  driver,
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

func (app *Application) Run() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go app.handleSignals(sigChan)
	defer app.cleanup()

	app.logger.Info("waiting for the clicker to be initialized ...",
		zap.Int("iterations", app.config.Playback.Iterations),
		zap.Int("interval_ms", app.config.Playback.IntervalMs),
		zap.Int("pause_ms", app.config.Playback.PauseMs),
		zap.Bool("profile", app.config.Playback.Profile),
	)
	return app.driver.Run(app.ctx)
}

// handleSignals cancels the run on the first signal and exits on the second.
func (app *Application) handleSignals(sigChan chan os.Signal) {
	select {
	case sig := <-sigChan:
		app.logger.Info("received signal, stopping", zap.Stringer("signal", sig), zap.Stringer("state", app.driver.State()))
		app.cancel()
	case <-app.ctx.Done():
		return
	}

	sig := <-sigChan
	app.logger.Warn("received second signal, exiting", zap.Stringer("signal", sig))
	_ = app.logger.Sync()
	os.Exit(1)
}

func (app *Application) cleanup() {
	app.hotkeys.Stop()
	app.cancel()

	if !waitStopped(app.hotkeys.Done(), hookDrainTimeout) {
		app.logger.Warn("hook process did not stop in time", zap.Duration("timeout", hookDrainTimeout))
	}
}

// waitStopped reports whether done closed within timeout.
func waitStopped(done <-chan struct{}, timeout time.Duration) bool {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		return true
	case <-timer.C:
		return false
	}
}

func main() {
	cfg, fs, err := config.Parse("clicker", os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		if errors.Is(err, config.ErrInvalid) {
			fmt.Fprintf(os.Stderr, "%v\nUsage of clicker:\n", err)
			fs.PrintDefaults()
		}
		os.Exit(2)
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Debug:  cfg.Logging.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	app, err := NewApplication(cfg, logger)
	if err != nil {
		logger.Fatal("failed to set up clicker", zap.Error(err))
	}
	if err := app.Run(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("clicker stopped", zap.Error(err))
	}
}
