package input

import (
	"sync"

	hook "github.com/robotn/gohook"
	"go.uber.org/zap"
)

// HookListener registers global hotkeys with gohook. Bindings live until the
// listener is stopped.
type HookListener struct {
	logger  *zap.Logger
	once    sync.Once
	stopped chan struct{}
}

func NewHookListener(logger *zap.Logger) *HookListener {
	return &HookListener{logger: logger, stopped: make(chan struct{})}
}

func (l *HookListener) Bind(combo Combo, fn func()) {
	hook.Register(hook.KeyDown, combo.Keys, func(e hook.Event) {
		l.logger.Debug("hotkey pressed", zap.Stringer("combo", combo))
		fn()
	})
}

// Start begins processing events in the background.
func (l *HookListener) Start() {
	evChan := hook.Start()
	l.logger.Debug("hook process started, waiting for events")

	go func() {
		// Blocks until hook.End() is called
		<-hook.Process(evChan)
		l.logger.Debug("hook process stopped")
		close(l.stopped)
	}()
}

func (l *HookListener) Stop() {
	l.once.Do(hook.End)
}

// Done is closed once the event loop has exited.
func (l *HookListener) Done() <-chan struct{} {
	return l.stopped
}
