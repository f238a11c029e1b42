package orderstatus

// Notifier sends one changed-order update downstream.
type Notifier interface {
	Notify(Update)
}

// Notifiers fans an update out to multiple notifiers.
type Notifiers []Notifier

func (n Notifiers) Notify(update Update) {
	for _, l := range n {
		l.Notify(update)
	}
}
