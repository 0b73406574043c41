package observer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/pantrypal/internal/errs"
)

type recorder struct {
	updates []Action
	signals []Action
	fail    bool
}

func (r *recorder) Update(a Action, _ any) error {
	r.updates = append(r.updates, a)
	if r.fail {
		return errs.Unsupported("nope")
	}
	return nil
}

func (r *recorder) Signal(a Action) error {
	r.signals = append(r.signals, a)
	return nil
}

func TestObservableIsPerInstance(t *testing.T) {
	var a, b Observable
	rec := &recorder{}
	require.NoError(t, a.Subscribe(rec))

	require.NoError(t, b.Notify(Add, nil))
	require.Empty(t, rec.updates)

	require.NoError(t, a.Notify(Add, "x"))
	require.NoError(t, a.NotifySignal(AddToPantry))
	require.Equal(t, []Action{Add}, rec.updates)
	require.Equal(t, []Action{AddToPantry}, rec.signals)
}

func TestSubscribeTwiceDeliversOnce(t *testing.T) {
	var o Observable
	rec := &recorder{}
	require.NoError(t, o.Subscribe(rec))
	require.NoError(t, o.Subscribe(rec))
	require.NoError(t, o.Notify(Remove, nil))
	require.Len(t, rec.updates, 1)
}

func TestUnsubscribe(t *testing.T) {
	var o Observable
	rec := &recorder{}
	require.NoError(t, o.Subscribe(rec))
	require.NoError(t, o.Unsubscribe(rec))
	require.NoError(t, o.Notify(Add, nil))
	require.Empty(t, rec.updates)
	require.Empty(t, o.Observers())
}

func TestNilObserver(t *testing.T) {
	var o Observable
	require.ErrorIs(t, o.Subscribe(nil), errs.ErrNullArgument)
	require.ErrorIs(t, o.Unsubscribe(nil), errs.ErrNullArgument)
}

func TestNotifyJoinsErrors(t *testing.T) {
	var o Observable
	bad := &recorder{fail: true}
	good := &recorder{}
	require.NoError(t, o.Subscribe(bad))
	require.NoError(t, o.Subscribe(good))

	err := o.Notify(Edit, nil)
	require.ErrorIs(t, err, errs.ErrUnsupportedAction)
	require.Len(t, good.updates, 1)
}

func TestSubscribeToFiltersActions(t *testing.T) {
	var o Observable
	all := &recorder{}
	pantryOnly := &recorder{}
	require.NoError(t, o.Subscribe(all))
	require.NoError(t, o.SubscribeTo(pantryOnly, AddToPantry))

	require.NoError(t, o.Notify(Add, "milk"))
	require.NoError(t, o.NotifySignal(AddToPantry))

	require.Equal(t, []Action{Add}, all.updates)
	require.Equal(t, []Action{AddToPantry}, all.signals)
	require.Empty(t, pantryOnly.updates)
	require.Equal(t, []Action{AddToPantry}, pantryOnly.signals)

	require.NoError(t, o.Subscribe(pantryOnly))
	require.NoError(t, o.Notify(Remove, nil))
	require.Equal(t, []Action{Remove}, pantryOnly.updates)
	require.Len(t, o.Observers(), 2)
}
