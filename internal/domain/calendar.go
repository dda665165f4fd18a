package domain

// DeadlineStatus is the sentinel status carried by deadline-derived
// calendar events. It is not part of the status catalog; clients fall
// back to a neutral color for it.
const DeadlineStatus = "Deadline"

// CalendarEvent is a derived, never-persisted event on the calendar
// view. History-derived events carry their numeric ledger id as a
// string; deadline events use a "deadline-<jobID>" id so the two
// sources never collide when merged client-side.
type CalendarEvent struct {
	ID            string `json:"id"`
	JobID         uint   `json:"jobId"`
	Company       string `json:"company"`
	JobTitle      string `json:"jobTitle"`
	Status        string `json:"status"`
	Date          string `json:"date"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Note          string `json:"note,omitempty"`
}

// CalendarView is the full calendar response: merged events plus a
// status name to color lookup built from the live catalog. Unmapped
// status names (including DeadlineStatus and free-text statuses) are
// resolved to a neutral color by the renderer, not here.
type CalendarView struct {
	Events   []CalendarEvent   `json:"events"`
	ColorMap map[string]string `json:"colorMap"`
}
