package domain

// Status is one stage of the application lifecycle catalog. The catalog
// is user-editable; jobs and history entries reference statuses by name,
// not by id, so a row here can be renamed without rewriting history.
type Status struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:text;not null" json:"name"`
	Color     string `gorm:"type:text;not null" json:"color"`
	SortOrder int    `gorm:"column:sort_order;not null" json:"sortOrder"`
}

// TableName returns the database table name for Status.
func (Status) TableName() string {
	return "statuses"
}

// DefaultStatuses is the catalog seeded into a fresh database.
var DefaultStatuses = []Status{
	{Name: "Saved", Color: "#94a3b8", SortOrder: 0},
	{Name: "Applied", Color: "#3b82f6", SortOrder: 1},
	{Name: "Resume Screened", Color: "#8b5cf6", SortOrder: 2},
	{Name: "Phone Screen", Color: "#a855f7", SortOrder: 3},
	{Name: "First Interview", Color: "#f59e0b", SortOrder: 4},
	{Name: "Technical Interview", Color: "#f97316", SortOrder: 5},
	{Name: "Final Interview", Color: "#ef4444", SortOrder: 6},
	{Name: "Offer Received", Color: "#22c55e", SortOrder: 7},
	{Name: "Accepted", Color: "#10b981", SortOrder: 8},
	{Name: "Rejected", Color: "#6b7280", SortOrder: 9},
	{Name: "Withdrawn", Color: "#9ca3af", SortOrder: 10},
}
