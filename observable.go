package nxncube

// Observable is a list of callbacks notified in registration order.
type Observable[T any] struct {
	observers []*Observer[T]
}

// Observer is a registered callback. Pass it to Remove to unsubscribe.
type Observer[T any] struct {
	fn func(T)
}

// Add registers fn and returns a handle for Remove.
func (o *Observable[T]) Add(fn func(T)) *Observer[T] {
	obs := &Observer[T]{fn: fn}
	o.observers = append(o.observers, obs)
	return obs
}

// Remove unregisters obs. It reports whether obs was registered.
func (o *Observable[T]) Remove(obs *Observer[T]) bool {
	for i, cur := range o.observers {
		if cur == obs {
			o.observers = append(o.observers[:i:i], o.observers[i+1:]...)
			return true
		}
	}
	return false
}

// Notify calls every observer with v. Observers added or removed during
// delivery take effect on the next Notify.
func (o *Observable[T]) Notify(v T) {
	snapshot := o.observers
	for _, obs := range snapshot {
		obs.fn(v)
	}
}

// Clear removes every observer.
func (o *Observable[T]) Clear() {
	o.observers = nil
}

// Len returns the number of registered observers.
func (o *Observable[T]) Len() int {
	return len(o.observers)
}
