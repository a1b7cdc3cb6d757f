package services

import "fmt"

// Warnings collects the recoverable problems of one run so they can be
// summarized at the end instead of failing the conversion.
type Warnings struct {
	msgs []string
}

func (w *Warnings) Addf(format string, args ...any) {
	w.msgs = append(w.msgs, fmt.Sprintf(format, args...))
}

func (w *Warnings) Append(msgs ...string) {
	w.msgs = append(w.msgs, msgs...)
}

func (w *Warnings) Len() int {
	return len(w.msgs)
}

func (w *Warnings) Messages() []string {
	return w.msgs
}
