package dispatcher

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lumenchat/hotkeys/internal/action"
	"github.com/lumenchat/hotkeys/internal/config"
	"github.com/lumenchat/hotkeys/internal/config/notify"
	"github.com/lumenchat/hotkeys/internal/input/key"
)

// Dispatcher errors.
var (
	ErrNilCallback   = errors.New("nil callback")
	ErrUnknownAction = errors.New("unknown action")
)

// Callback is invoked when a registration's binding matches an event.
type Callback func(ev key.Event)

// Registration is one action's live subscription on the dispatcher.
type Registration struct {
	id       string
	actionID action.ID
	opts     Options
	callback Callback
	d        *Dispatcher
}

// ID returns the registration's unique identifier.
func (r *Registration) ID() string { return r.id }

// ActionID returns the action this registration dispatches.
func (r *Registration) ActionID() action.ID { return r.actionID }

// Options returns the registration's gate options.
func (r *Registration) Options() Options { return r.opts }

// Cancel tears the registration down. Safe to call more than once; after
// Cancel the registration never fires again.
func (r *Registration) Cancel() {
	if r.d != nil {
		r.d.cancel(r.id)
	}
}

// Stats counts dispatcher activity.
type Stats struct {
	// EventsHandled is the number of events with at least one firing
	// registration.
	EventsHandled uint64

	// CallbacksFired is the total number of callback invocations.
	CallbacksFired uint64

	// CallbackPanics is the number of recovered callback panics.
	CallbackPanics uint64
}

// Dispatcher owns the registration table and the store subscription. It
// re-resolves every effective binding whenever the store reports a change.
type Dispatcher struct {
	mu       sync.RWMutex
	platform key.Platform
	store    config.Store
	log      logrus.FieldLogger

	ctx    Context
	regs   []*Registration
	chords map[action.ID]key.Chord // enabled actions only

	storeSub *notify.Subscription

	eventsHandled  atomic.Uint64
	callbacksFired atomic.Uint64
	callbackPanics atomic.Uint64
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithPlatform overrides the platform convention (default: the running
// OS's convention).
func WithPlatform(p key.Platform) DispatcherOption {
	return func(d *Dispatcher) { d.platform = p }
}

// WithLogger sets the dispatcher's logger.
func WithLogger(log logrus.FieldLogger) DispatcherOption {
	return func(d *Dispatcher) { d.log = log }
}

// New creates a dispatcher over a settings store, resolves the initial
// effective bindings, and subscribes to store changes.
func New(store config.Store, opts ...DispatcherOption) (*Dispatcher, error) {
	d := &Dispatcher{
		platform: key.CurrentPlatform(),
		store:    store,
		log:      logrus.StandardLogger().WithField("component", "dispatcher"),
		chords:   make(map[action.ID]key.Chord),
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.refresh(); err != nil {
		return nil, err
	}

	d.storeSub = store.Subscribe(func(notify.Change) {
		// Full re-resolution on every change; no partial invalidation.
		if err := d.refresh(); err != nil {
			d.log.WithError(err).Warn("cannot re-resolve bindings")
		}
	})

	return d, nil
}

// refresh re-reads the store snapshot and rebuilds the chord table.
func (d *Dispatcher) refresh() error {
	overrides, err := d.store.Overrides()
	if err != nil {
		return fmt.Errorf("reading overrides: %w", err)
	}

	chords := make(map[action.ID]key.Chord, action.Count())
	for id, eff := range config.ResolveAll(overrides) {
		if eff.Disabled {
			continue
		}
		if chord, ok := eff.Chord(); ok {
			chords[id] = chord
		}
	}

	d.mu.Lock()
	d.chords = chords
	d.mu.Unlock()
	return nil
}

// SetContext updates the ambient UI context. Gating is evaluated per event
// against the latest context; nothing is cached across transitions.
func (d *Dispatcher) SetContext(ctx Context) {
	d.mu.Lock()
	d.ctx = ctx
	d.mu.Unlock()
}

// Context returns the current ambient context.
func (d *Dispatcher) Context() Context {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.ctx
}

// Register subscribes a callback for an action. Options start from
// DefaultOptions. The returned registration lives until Cancel.
func (d *Dispatcher) Register(id action.ID, cb Callback, opts ...Option) (*Registration, error) {
	if cb == nil {
		return nil, ErrNilCallback
	}
	if !action.Known(id) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, id)
	}

	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	reg := &Registration{
		id:       uuid.NewString(),
		actionID: id,
		opts:     options,
		callback: cb,
		d:        d,
	}

	d.mu.Lock()
	d.regs = append(d.regs, reg)
	d.mu.Unlock()
	return reg, nil
}

func (d *Dispatcher) cancel(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, reg := range d.regs {
		if reg.id == id {
			d.regs = append(d.regs[:i], d.regs[i+1:]...)
			return
		}
	}
}

// HandleEvent runs one input event against the registration table. Every
// gated, matching registration fires in registration order. It returns
// true when at least one registration fired, in which case the host
// suppresses the event's default behavior.
func (d *Dispatcher) HandleEvent(ev key.Event) bool {
	d.mu.RLock()
	ctx := d.ctx
	regs := make([]*Registration, len(d.regs))
	copy(regs, d.regs)
	chords := d.chords
	d.mu.RUnlock()

	handled := false
	for _, reg := range regs {
		if !reg.opts.EnabledIn(ctx) {
			continue
		}
		chord, ok := chords[reg.actionID]
		if !ok {
			// Disabled or unresolvable; never fires.
			continue
		}
		if !d.platform.MatchChord(ev, chord) {
			continue
		}

		handled = true
		d.callbacksFired.Add(1)
		d.invoke(reg, ev)
	}

	if handled {
		d.eventsHandled.Add(1)
	}
	return handled
}

// invoke runs one callback with panic isolation.
func (d *Dispatcher) invoke(reg *Registration, ev key.Event) {
	defer func() {
		if r := recover(); r != nil {
			d.callbackPanics.Add(1)
			d.log.WithFields(logrus.Fields{
				"action":       reg.actionID,
				"registration": reg.id,
				"panic":        r,
			}).Error("shortcut callback panicked")
		}
	}()
	reg.callback(ev)
}

// Registrations returns the number of live registrations.
func (d *Dispatcher) Registrations() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.regs)
}

// Stats returns a snapshot of dispatch counters.
func (d *Dispatcher) Stats() Stats {
	return Stats{
		EventsHandled:  d.eventsHandled.Load(),
		CallbacksFired: d.callbacksFired.Load(),
		CallbackPanics: d.callbackPanics.Load(),
	}
}

// Close drops the store subscription and all registrations.
func (d *Dispatcher) Close() {
	if d.storeSub != nil {
		d.storeSub.Unsubscribe()
	}
	d.mu.Lock()
	d.regs = nil
	d.mu.Unlock()
}
