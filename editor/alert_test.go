package editor

import (
	"testing"
	"time"
)

func TestAlertsCurrentPicksHighestPriority(t *testing.T) {
	a := NewAlerts()
	a.Add("info", Info)
	a.Add("warning", Warning)
	a.Add("late info", Info)
	alert, ok := a.Current()
	if !ok {
		t.Fatal("expected a live alert")
	}
	if alert.Message != "warning" || alert.Priority != Warning {
		t.Errorf("Current = %+v, want the warning", alert)
	}
}

func TestAlertsExpire(t *testing.T) {
	now := time.Unix(100, 0)
	a := NewAlerts()
	a.now = func() time.Time { return now }
	a.Add("short lived", Error)
	if _, ok := a.Current(); !ok {
		t.Fatal("alert should be live right after Add")
	}
	now = now.Add(defaultAlertDuration + time.Second)
	if alert, ok := a.Current(); ok {
		t.Errorf("alert %+v should have expired", alert)
	}
	if len(a.alerts) != 0 {
		t.Error("expired alerts should be pruned")
	}
}

func TestAlertsCustomDuration(t *testing.T) {
	now := time.Unix(100, 0)
	a := NewAlerts()
	a.now = func() time.Time { return now }
	a.AddAlert(Alert{Message: "sticky", Priority: Info, Duration: time.Minute})
	now = now.Add(30 * time.Second)
	if _, ok := a.Current(); !ok {
		t.Error("a minute-long alert must survive 30 seconds")
	}
}
