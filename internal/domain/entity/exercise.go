package entity

import "time"

// Exercise is the accounting period for one business day. It is opened and
// closed upstream; this service only ever reads it.
type Exercise struct {
	ID       int64
	Date     time.Time
	Active   bool
	OpenedAt *time.Time
	ClosedAt *time.Time
	Notes    string
}
