// Package notify is the user-facing notification collaborator. Every
// mutating case operation emits one notification describing itself; the
// backend decides where it surfaces.
package notify

import "log"

// Notifier receives one notification per mutating case operation.
type Notifier interface {
	Notify(title, description string)
}

// LogNotifier writes notifications to the process log. It is the default
// backend.
type LogNotifier struct{}

func (LogNotifier) Notify(title, description string) {
	log.Printf("NOTIFY: %s | %s", title, description)
}

// MultiNotifier fans a notification out to several backends.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(title, description string) {
	for _, n := range m {
		n.Notify(title, description)
	}
}
