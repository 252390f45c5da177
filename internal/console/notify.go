package console

import "log"

// Notifier is the operator-facing toast surface. Every transition outcome
// goes through it; nothing fails silently.
type Notifier interface {
	Success(action, message string)
	Failure(action, message string)
}

// LogNotifier writes notifications to the process log. It is the default
// when no UI toast layer is attached.
type LogNotifier struct{}

func (LogNotifier) Success(action, message string) {
	log.Printf("%s: %s", action, message)
}

func (LogNotifier) Failure(action, message string) {
	log.Printf("%s failed: %s", action, message)
}
