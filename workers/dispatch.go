package workers

import (
	"go.uber.org/zap"
)

// Dispatch runs fn on its own goroutine. Nothing joins it: the error, if any,
// goes to the logger and nowhere else. This is the only way logging work is
// started from a request handler, so the request path can never block on it.
func Dispatch(log *zap.SugaredLogger, name string, fn func() error) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("detached task panicked", "task", name, "panic", r)
			}
		}()
		if err := fn(); err != nil {
			log.Errorw("detached task failed", "task", name, "error", err)
		}
	}()
}
