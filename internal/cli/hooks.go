package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/folio/pkg/observability"
)

// logHooks reports deck activity through the CLI logger.
type logHooks struct {
	logger *log.Logger
}

func installLogHooks(l *log.Logger) {
	h := logHooks{logger: l.WithPrefix("hooks")}
	observability.SetNavigationHooks(h)
	observability.SetInputHooks(h)
	observability.SetSessionHooks(h)
}

func (h logHooks) OnTransitionRequested(_ context.Context, from, to string) {
	h.logger.Debug("transition requested", "from", from, "to", to)
}

func (h logHooks) OnTransitionDropped(_ context.Context, target, reason string) {
	h.logger.Debug("transition dropped", "target", target, "reason", reason)
}

func (h logHooks) OnTransitionCommitted(_ context.Context, from, to string, settle time.Duration) {
	h.logger.Debug("transition committed", "from", from, "to", to, "settle", settle)
}

func (h logHooks) OnIntercept(_ context.Context, kind, section string) {
	h.logger.Debug("input intercepted", "kind", kind, "section", section)
}

func (h logHooks) OnSessionStart(_ context.Context, id string, touchPrimary bool) {
	h.logger.Debug("session start", "id", id, "touch", touchPrimary)
}

func (h logHooks) OnSessionEnd(_ context.Context, id string, lifetime time.Duration) {
	h.logger.Debug("session end", "id", id, "lifetime", lifetime.Round(time.Millisecond))
}
