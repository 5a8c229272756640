package host

import (
	"sync"

	"snapview/internal/menu"
)

// Dispatcher fans menu events out to subscribed handlers. Application-scope
// handlers see events from every window; window-scope handlers only see
// events raised by their own window. Handlers run synchronously in
// subscription order.
type Dispatcher struct {
	mu       sync.Mutex
	app      []Handler
	byWindow map[string][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{byWindow: make(map[string][]Handler)}
}

func (d *Dispatcher) Subscribe(scope Scope, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if scope.IsApp() {
		d.app = append(d.app, handler)
		return
	}
	d.byWindow[scope.Window] = append(d.byWindow[scope.Window], handler)
}

// Forget drops the window-scope handlers of a closed window.
func (d *Dispatcher) Forget(label string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.byWindow, label)
}

// Dispatch delivers ev and reports how many handlers received it.
func (d *Dispatcher) Dispatch(ev menu.Event) int {
	d.mu.Lock()
	handlers := make([]Handler, 0, len(d.app)+len(d.byWindow[ev.Window]))
	handlers = append(handlers, d.app...)
	handlers = append(handlers, d.byWindow[ev.Window]...)
	d.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
	return len(handlers)
}
