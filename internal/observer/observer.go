// Package observer connects views to controllers. Views own an Observable
// and notify it on user actions; controllers implement Observer.
package observer

import (
	"errors"
	"slices"

	"github.com/jask/pantrypal/internal/errs"
)

// Action is the kind of user interaction being reported.
type Action string

const (
	Add               Action = "add"
	Remove            Action = "remove"
	Edit              Action = "edit"
	Check             Action = "check"
	Favorite          Action = "favorite"
	Search            Action = "search"
	LogIn             Action = "log_in"
	LogOut            Action = "log_out"
	AddToPantry       Action = "add_to_pantry"
	AddToShoppingList Action = "add_to_shopping_list"
)

// Observer receives actions. Update carries a payload, Signal does not.
// Implementations return errs.ErrUnsupportedAction for combinations they do
// not handle.
type Observer interface {
	Update(action Action, payload any) error
	Signal(action Action) error
}

type subscription struct {
	obs     Observer
	actions []Action // empty means every action
}

func (s subscription) wants(a Action) bool {
	return len(s.actions) == 0 || slices.Contains(s.actions, a)
}

// Observable keeps a per-instance list of observers. The zero value is ready
// to use.
type Observable struct {
	subs []subscription
}

// Subscribe registers obs for every action.
func (o *Observable) Subscribe(obs Observer) error {
	return o.SubscribeTo(obs)
}

// SubscribeTo registers obs for the listed actions only. Subscribing an
// observer again replaces its action filter.
func (o *Observable) SubscribeTo(obs Observer, actions ...Action) error {
	if obs == nil {
		return errs.Null("Observer")
	}
	sub := subscription{obs: obs, actions: slices.Clone(actions)}
	for i := range o.subs {
		if o.subs[i].obs == obs {
			o.subs[i] = sub
			return nil
		}
	}
	o.subs = append(o.subs, sub)
	return nil
}

func (o *Observable) Unsubscribe(obs Observer) error {
	if obs == nil {
		return errs.Null("Observer")
	}
	o.subs = slices.DeleteFunc(o.subs, func(s subscription) bool { return s.obs == obs })
	return nil
}

// Observers returns the current subscribers in subscription order.
func (o *Observable) Observers() []Observer {
	out := make([]Observer, 0, len(o.subs))
	for _, s := range o.subs {
		out = append(out, s.obs)
	}
	return out
}

// Notify delivers action and payload to every interested observer
// subscribed at call time and joins their errors.
func (o *Observable) Notify(action Action, payload any) error {
	var errList []error
	for _, s := range slices.Clone(o.subs) {
		if !s.wants(action) {
			continue
		}
		if err := s.obs.Update(action, payload); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

// NotifySignal is Notify without a payload.
func (o *Observable) NotifySignal(action Action) error {
	var errList []error
	for _, s := range slices.Clone(o.subs) {
		if !s.wants(action) {
			continue
		}
		if err := s.obs.Signal(action); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
