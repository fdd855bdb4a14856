package sorted

// Handler is notified about every change of a List.
// Handlers are called synchronously after the change is applied.
type Handler[T any] interface {
	// OnAdd is called with the position the value was inserted at.
	OnAdd(index int, value Value[T])
	// OnRemove is called with the position the value was removed from.
	OnRemove(index int, value Value[T])
	// OnClear is called with amount of values dropped by Clear.
	OnClear(count int)
}
