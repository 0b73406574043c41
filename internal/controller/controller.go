// Package controller owns the in-memory registers, keeps them in sync with
// persistence when a user is logged in, and re-renders the views.
//
// Direct method calls return every error to the caller. Errors raised while
// handling an observer notification for a known action are logged and
// counted, then dropped, so a failed write never interrupts the UI.
// Unknown action and payload combinations return errs.ErrUnsupportedAction.
package controller

import (
	"context"
	"log/slog"

	"github.com/jask/pantrypal/internal/metrics"
	"github.com/jask/pantrypal/internal/observer"
	"github.com/jask/pantrypal/internal/session"
)

// Deps is shared by every controller.
type Deps struct {
	Session *session.Session
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// Loader is a controller whose state depends on the logged in user.
type Loader interface {
	Load(ctx context.Context) error
	Reset()
}

type base struct {
	name    string
	session *session.Session
	log     *slog.Logger
	metrics *metrics.Metrics
}

func newBase(name string, d Deps) base {
	if d.Session == nil {
		d.Session = session.New("")
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return base{name: name, session: d.Session, log: d.Logger.With("controller", name), metrics: d.Metrics}
}

func (b *base) user() string { return b.session.UserName() }

func (b *base) online() bool { return b.session.LoggedIn() }

// swallow drops err after logging and counting it.
func (b *base) swallow(action observer.Action, err error) error {
	if err == nil {
		return nil
	}
	b.log.Warn("action failed", "action", string(action), "user", b.user(), "error", err)
	b.metrics.Swallowed(b.name, string(action))
	return nil
}

// dispatchCtx is the context used for work started by a notification.
func dispatchCtx() context.Context { return context.Background() }
