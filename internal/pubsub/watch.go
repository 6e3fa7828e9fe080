package pubsub

import (
	"errors"
	"sync"
)

// Watch is a Publisher that always holds a value. A subscriber receives the current value as
// soon as it is added and then every published value, in publication order. Delivery is
// synchronous: PublishEvent returns once every subscriber has consumed the value. Subscribers
// must not call back into the Watch from ConsumeEvent.
type Watch[E Event] struct {
	current     E
	subscribers map[int]Subscriber[E]
	order       []int
	nextID      int

	// mu serialises publications and subscriptions so no subscriber sees values out of order.
	mu sync.Mutex
}

var _ Publisher[int] = &Watch[int]{}

func NewWatch[E Event](initial E) *Watch[E] {
	return &Watch[E]{
		current:     initial,
		subscribers: make(map[int]Subscriber[E]),
	}
}

// Current returns the most recently published value.
func (w *Watch[E]) Current() E {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// PublishEvent replaces the current value and hands it to every subscriber. Every subscriber
// is called even if an earlier one fails; the joined errors are returned.
func (w *Watch[E]) PublishEvent(e E) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.current = e

	var errs []error
	for _, id := range w.order {
		if err := w.subscribers[id].ConsumeEvent(e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (w *Watch[E]) AddSubscriber(s Subscriber[E]) {
	_, _ = w.Subscribe(s)
}

// Subscribe adds s, replays the current value to it, and returns a function removing it again.
// The error is the one returned by s while consuming the replayed value.
func (w *Watch[E]) Subscribe(s Subscriber[E]) (func(), error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	w.subscribers[id] = s
	w.order = append(w.order, id)

	err := s.ConsumeEvent(w.current)

	return func() { w.unsubscribe(id) }, err
}

func (w *Watch[E]) unsubscribe(id int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.subscribers[id]; !ok {
		return
	}
	delete(w.subscribers, id)
	for i, o := range w.order {
		if o == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}
