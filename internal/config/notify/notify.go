// Package notify provides change notification for shortcut overrides.
//
// Stores emit a Change on every write; consumers subscribe to re-resolve
// effective bindings. Observers may subscribe globally or per action.
package notify

import (
	"sync"

	"github.com/lumenchat/hotkeys/internal/action"
)

// ChangeType represents the type of override change.
type ChangeType int

const (
	// ChangeSet indicates an override was set or updated.
	ChangeSet ChangeType = iota

	// ChangeClear indicates an override was removed.
	ChangeClear

	// ChangeReset indicates every override was replaced at once.
	ChangeReset

	// ChangeReload indicates the backing store was reloaded externally.
	ChangeReload
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeSet:
		return "set"
	case ChangeClear:
		return "clear"
	case ChangeReset:
		return "reset"
	case ChangeReload:
		return "reload"
	default:
		return "unknown"
	}
}

// Change represents one override change event.
type Change struct {
	// ID is the affected action. Empty for reset and reload events.
	ID action.ID

	// Type is the type of change.
	Type ChangeType

	// Source identifies where the change came from, e.g. "ui", "file".
	Source string
}

// Observer is called when override changes occur.
type Observer func(change Change)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// Notifier manages override change subscriptions.
type Notifier struct {
	mu sync.RWMutex

	// Global observers receive all changes.
	globalObservers map[uint64]Observer

	// Per-action observers receive Set/Clear changes for their action
	// plus every Reset/Reload.
	actionObservers map[action.ID]map[uint64]Observer

	nextID uint64

	// Async delivery
	async  bool
	buffer chan Change
	done   chan struct{}
	wg     sync.WaitGroup
	closed bool
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithAsync enables asynchronous notification delivery with the given
// buffer size. Synchronous delivery is the default; nothing in the engine
// blocks inside an observer, so async is only needed when observers do.
func WithAsync(bufferSize int) Option {
	return func(n *Notifier) {
		if bufferSize > 0 {
			n.async = true
			n.buffer = make(chan Change, bufferSize)
		}
	}
}

// New creates a new Notifier.
func New(opts ...Option) *Notifier {
	n := &Notifier{
		globalObservers: make(map[uint64]Observer),
		actionObservers: make(map[action.ID]map[uint64]Observer),
		done:            make(chan struct{}),
	}

	for _, opt := range opts {
		opt(n)
	}

	if n.async {
		n.wg.Add(1)
		go n.processAsync()
	}

	return n
}

// Subscribe registers an observer for all changes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.globalObservers[id] = observer

	return &Subscription{id: id, notifier: n}
}

// SubscribeAction registers an observer for one action's changes. The
// observer also receives Reset and Reload changes, since those affect
// every action.
func (n *Notifier) SubscribeAction(id action.ID, observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	subID := n.nextID
	n.nextID++

	if n.actionObservers[id] == nil {
		n.actionObservers[id] = make(map[uint64]Observer)
	}
	n.actionObservers[id][subID] = observer

	return &Subscription{id: subID, notifier: n}
}

// Notify delivers a change to matching observers.
func (n *Notifier) Notify(change Change) {
	if n.async {
		n.mu.RLock()
		closed := n.closed
		n.mu.RUnlock()
		if closed {
			return
		}
		select {
		case n.buffer <- change:
		case <-n.done:
		}
		return
	}

	n.deliver(change)
}

func (n *Notifier) deliver(change Change) {
	n.mu.RLock()
	observers := make([]Observer, 0, len(n.globalObservers))
	for _, obs := range n.globalObservers {
		observers = append(observers, obs)
	}

	broadcast := change.Type == ChangeReset || change.Type == ChangeReload
	for id, obsMap := range n.actionObservers {
		if !broadcast && id != change.ID {
			continue
		}
		for _, obs := range obsMap {
			observers = append(observers, obs)
		}
	}
	n.mu.RUnlock()

	for _, obs := range observers {
		obs(change)
	}
}

func (n *Notifier) processAsync() {
	defer n.wg.Done()
	for {
		select {
		case change := <-n.buffer:
			n.deliver(change)
		case <-n.done:
			// Drain remaining buffered changes.
			for {
				select {
				case change := <-n.buffer:
					n.deliver(change)
				default:
					return
				}
			}
		}
	}
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.globalObservers, id)
	for actionID, obsMap := range n.actionObservers {
		delete(obsMap, id)
		if len(obsMap) == 0 {
			delete(n.actionObservers, actionID)
		}
	}
}

// Close shuts down async delivery. Idempotent.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	n.mu.Unlock()

	close(n.done)
	if n.async {
		n.wg.Wait()
	}
}
