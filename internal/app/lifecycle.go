package app

import (
	"sync"

	"snapview/internal/host"
	"snapview/internal/logger"
)

// Lifecycle closes the shell's windows once on shutdown.
type Lifecycle struct {
	host   host.Host
	logger logger.Logger
	once   sync.Once
}

func NewLifecycle(h host.Host, log logger.Logger) *Lifecycle {
	return &Lifecycle{host: h, logger: log}
}

func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		labels := l.host.Labels()
		l.logger.Info("Lifecycle", "shutdown sequence initiated", map[string]interface{}{
			"windows": len(labels),
		})

		for _, label := range labels {
			if w, ok := l.host.Window(label); ok {
				w.Close()
			}
		}

		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	})
}
