package editor

import "time"

type (
	// Alert is a transient user-facing message. The editor core raises very
	// few of these; the GUI shows the highest-priority live alert.
	Alert struct {
		Message  string
		Priority AlertPriority
		Duration time.Duration
	}

	AlertPriority int

	// Alerts collects the live alerts. Expired alerts are pruned whenever
	// the collection is queried.
	Alerts struct {
		alerts []alertEntry
		now    func() time.Time // replaceable in tests
	}

	alertEntry struct {
		alert    Alert
		deadline time.Time
	}
)

const (
	Info AlertPriority = iota
	Warning
	Error
)

const defaultAlertDuration = 5 * time.Second

func NewAlerts() *Alerts {
	return &Alerts{now: time.Now}
}

// Add adds an alert with the default duration.
func (a *Alerts) Add(message string, priority AlertPriority) {
	a.AddAlert(Alert{Message: message, Priority: priority, Duration: defaultAlertDuration})
}

func (a *Alerts) AddAlert(alert Alert) {
	a.alerts = append(a.alerts, alertEntry{alert: alert, deadline: a.now().Add(alert.Duration)})
}

// Current returns the highest-priority alert still alive.
func (a *Alerts) Current() (Alert, bool) {
	a.prune()
	found := false
	var best Alert
	for _, e := range a.alerts {
		if !found || e.alert.Priority > best.Priority {
			best, found = e.alert, true
		}
	}
	return best, found
}

func (a *Alerts) prune() {
	now := a.now()
	live := a.alerts[:0]
	for _, e := range a.alerts {
		if e.deadline.After(now) {
			live = append(live, e)
		}
	}
	a.alerts = live
}
