package pubsub

type Event interface {
}

type Publisher[E Event] interface {
	PublishEvent(E) error
	AddSubscriber(Subscriber[E])
}

type Subscriber[E Event] interface {
	ConsumeEvent(E) error
}

// SubscriberFunc adapts a plain function to the Subscriber interface.
type SubscriberFunc[E Event] func(E) error

func (f SubscriberFunc[E]) ConsumeEvent(e E) error {
	return f(e)
}
