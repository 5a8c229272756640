package shell

import (
	"snapview/internal/host"
	"snapview/internal/logger"
	"snapview/internal/menu"
)

// Action runs when its command is activated.
type Action func(ev menu.Event) error

// Router matches menu events to actions by command identifier. Every
// matching event runs its action once; failures are logged and never
// retried.
type Router struct {
	routes map[string]Action
	log    logger.Logger
}

func NewRouter(log logger.Logger) *Router {
	return &Router{routes: make(map[string]Action), log: log}
}

func (r *Router) Route(id string, action Action) {
	r.routes[id] = action
}

// RouteSpawn binds the "New Window" command to spawning the named template.
func (r *Router) RouteSpawn(f *Factory, template string) {
	r.Route(menu.NewWindowID, func(menu.Event) error {
		_, err := f.Spawn(template)
		return err
	})
}

// Handle runs the action bound to ev.ID, if any, and reports whether one
// matched.
func (r *Router) Handle(ev menu.Event) bool {
	action, ok := r.routes[ev.ID]
	if !ok {
		r.log.Debug("Router", "unrouted menu event", map[string]interface{}{
			"id":     ev.ID,
			"window": ev.Window,
		})
		return false
	}
	if err := action(ev); err != nil {
		r.log.Error("Router", err, map[string]interface{}{
			"id":     ev.ID,
			"window": ev.Window,
		})
	}
	return true
}

// Attach subscribes the router to the host at the given scope.
func (r *Router) Attach(h host.Host, scope host.Scope) {
	h.Subscribe(scope, func(ev menu.Event) { r.Handle(ev) })
	r.log.Debug("Router", "subscribed to menu events", map[string]interface{}{
		"scope":  scope.String(),
		"routes": len(r.routes),
	})
}
