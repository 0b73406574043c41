package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jask/pantrypal/internal/errs"
	"github.com/jask/pantrypal/internal/observer"
)

// UserStore creates users on first login.
type UserStore interface {
	Ensure(ctx context.Context, name string) error
}

type LoginRenderer interface {
	Render(user string)
}

// LoginController switches the session between guest mode and a user.
type LoginController struct {
	base
	users   UserStore
	view    LoginRenderer
	loaders []Loader
	// Remember, when set, stores the user to log in automatically next
	// time. It gets "" on logout.
	Remember func(user string) error
}

func NewLoginController(d Deps, users UserStore, v LoginRenderer, loaders ...Loader) *LoginController {
	return &LoginController{base: newBase("login", d), users: users, view: v, loaders: loaders}
}

func (c *LoginController) render() {
	if c.view != nil {
		c.view.Render(c.user())
	}
}

// LogIn makes name the current user and reloads every loader from
// persistence. Guest state is discarded.
func (c *LoginController) LogIn(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.Invalid("user name is required")
	}
	if err := c.users.Ensure(ctx, name); err != nil {
		return fmt.Errorf("log in %q: %w", name, err)
	}
	c.session.LogIn(name)
	var errList []error
	for _, l := range c.loaders {
		l.Reset()
		if err := l.Load(ctx); err != nil {
			errList = append(errList, err)
		}
	}
	if c.Remember != nil {
		if err := c.Remember(name); err != nil {
			errList = append(errList, fmt.Errorf("remember user: %w", err))
		}
	}
	c.render()
	c.log.Info("logged in", "user", name)
	return errors.Join(errList...)
}

// LogOut returns to guest mode with empty state.
func (c *LoginController) LogOut(ctx context.Context) error {
	user := c.user()
	c.session.LogOut()
	for _, l := range c.loaders {
		l.Reset()
	}
	c.render()
	if user != "" {
		c.log.Info("logged out", "user", user)
	}
	if c.Remember != nil {
		if err := c.Remember(""); err != nil {
			return fmt.Errorf("forget user: %w", err)
		}
	}
	return nil
}

// Update reports login failures to the caller instead of dropping them.
func (c *LoginController) Update(action observer.Action, payload any) error {
	if name, ok := payload.(string); ok && action == observer.LogIn {
		return c.LogIn(dispatchCtx(), name)
	}
	return errs.Unsupported("login cannot handle %s with %T", action, payload)
}

func (c *LoginController) Signal(action observer.Action) error {
	if action == observer.LogOut {
		return c.LogOut(dispatchCtx())
	}
	return errs.Unsupported("login cannot handle %s", action)
}

// UserName is the logged in user, "" in guest mode.
func (c *LoginController) UserName() string { return c.user() }
