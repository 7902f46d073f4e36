package lead

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Sort fields accepted by the list endpoint. Anything else falls back to
// the creation date.
const (
	SortByName        = "name"
	SortByStatus      = "status"
	SortBySource      = "source"
	SortByCreatedDate = "createdDate"
	SortByOwner       = "owner"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Owner filter values with reserved meaning; any other non-empty value
// filters by team instead.
const (
	OwnerMe         = "Me"
	OwnerUnassigned = "Unassigned"
)

// Date filter values, evaluated against createdAt with calendar-day
// boundaries in server-local time. The week starts on Sunday.
const (
	DateToday     = "Today"
	DateYesterday = "Yesterday"
	DateThisWeek  = "This week"
	DateThisMonth = "This month"
)

var sortColumns = map[string]string{
	SortByName:        "name",
	SortByStatus:      "status",
	SortBySource:      "source",
	SortByCreatedDate: "created_at",
	SortByOwner:       "owner",
}

// ListQuery is one parameterized list request: search, filters, sort and
// page window. CurrentUser is the caller's display name for the "Me" owner
// filter, passed explicitly with the request.
type ListQuery struct {
	Page  int
	Limit int

	Search string
	Status string
	Source string
	Owner  string
	Date   string

	SortField     string
	SortDirection string

	CurrentUser string
}

// Normalize applies the documented defaults: page 1, limit 10, newest first.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if _, ok := sortColumns[q.SortField]; !ok {
		q.SortField = SortByCreatedDate
	}
	if q.SortDirection != SortAsc && q.SortDirection != SortDesc {
		q.SortDirection = SortDesc
	}
}

// Offset returns the record offset of the requested page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// apply narrows db to the rows matching the query's predicate. Search is
// ORed across name, email and leadId; everything else is ANDed on top.
func (q ListQuery) apply(db *gorm.DB, now time.Time) *gorm.DB {
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		db = db.Where("name LIKE ? OR email LIKE ? OR lead_id LIKE ?", pattern, pattern, pattern)
	}

	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}

	if q.Source != "" {
		db = db.Where("source = ?", q.Source)
	}

	if q.Owner != "" {
		switch q.Owner {
		case OwnerMe:
			db = db.Where("owner = ?", q.CurrentUser)
		case OwnerUnassigned:
			db = db.Where("owner IS NULL OR owner = ''")
		default:
			// non-reserved values double as a team filter
			db = db.Where("team = ?", q.Owner)
		}
	}

	if q.Date != "" {
		today := startOfDay(now)
		switch q.Date {
		case DateToday:
			db = db.Where("created_at >= ?", today)
		case DateYesterday:
			db = db.Where("created_at >= ? AND created_at < ?", today.AddDate(0, 0, -1), today)
		case DateThisWeek:
			db = db.Where("created_at >= ?", today.AddDate(0, 0, -int(today.Weekday())))
		case DateThisMonth:
			db = db.Where("created_at >= ?", time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()))
		}
		// unrecognized values apply no date restriction
	}

	return db
}

// orderClause resolves the sort key plus an id tie-break in the same
// direction, so identical key values still order deterministically and
// asc/desc produce exact reverses.
func (q ListQuery) orderClause() string {
	column := sortColumns[q.SortField]
	return fmt.Sprintf("%s %s, id %s", column, q.SortDirection, q.SortDirection)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// TotalPages computes ceil(total/limit); 0 when nothing matches.
func TotalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
