package tui

// Alerts queues errors until the user dismisses them. It implements
// app.Notifier and is only touched from the Bubble Tea update loop.
type Alerts struct {
	queue []error
}

func NewAlerts() *Alerts { return &Alerts{} }

func (a *Alerts) Notify(err error) {
	if err != nil {
		a.queue = append(a.queue, err)
	}
}

// Current returns the alert on screen, or nil.
func (a *Alerts) Current() error {
	if len(a.queue) == 0 {
		return nil
	}
	return a.queue[0]
}

func (a *Alerts) Dismiss() {
	if len(a.queue) > 0 {
		a.queue = a.queue[1:]
	}
}

func (a *Alerts) Len() int { return len(a.queue) }
