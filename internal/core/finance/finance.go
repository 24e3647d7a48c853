// Package finance computes filtered, sorted views and summary statistics
// over an in-memory transaction set. Every function is pure: callers pass
// the reference time explicitly, so identical inputs always produce
// identical outputs.
package finance

import (
	"sort"
	"strings"
	"time"

	"github.com/beautiflow/dashboard-api/internal/core/domain"
)

// DateRange selects the date window a filter applies.
type DateRange string

const (
	RangeAll       DateRange = "all"
	RangeToday     DateRange = "today"
	RangeThisWeek  DateRange = "this_week"
	RangeThisMonth DateRange = "this_month"
	RangeCustom    DateRange = "custom"
)

// Status selects transactions by paid flag.
type Status string

const (
	StatusAll     Status = "all"
	StatusPaid    Status = "paid"
	StatusPending Status = "pending"
)

// SortKey identifies the field transactions are ordered by.
type SortKey string

const (
	SortByDate        SortKey = "date"
	SortByAmount      SortKey = "amount"
	SortByClientName  SortKey = "client_name"
	SortByServiceName SortKey = "service_name"
)

// SortOrder is ascending or descending.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Filter carries the date and status criteria for a transaction view.
// From/To are only consulted when Range is RangeCustom; the custom window is
// inclusive of both endpoint days.
type Filter struct {
	Range  DateRange
	From   time.Time
	To     time.Time
	Status Status
}

// Stats are the summary figures shown on the dashboard, always computed
// over the unfiltered full set. Revenue figures count paid transactions
// only; pending figures count unpaid only.
type Stats struct {
	TodayRevenue  float64 `json:"today_revenue"`
	WeekRevenue   float64 `json:"week_revenue"`
	MonthRevenue  float64 `json:"month_revenue"`
	PendingAmount float64 `json:"pending_amount"`
	PendingCount  int     `json:"pending_count"`
	PaidCount     int     `json:"paid_count"`
	TotalCount    int     `json:"total_count"`
	PaymentRate   float64 `json:"payment_rate"`
}

const upcomingWindow = 7 * 24 * time.Hour
const upcomingLimit = 5

// Apply returns the transactions matching f relative to now. The input
// slice is never modified and relative input order is preserved.
func Apply(txs []domain.Transaction, f Filter, now time.Time) []domain.Transaction {
	from, to, bounded := window(f, now)

	out := make([]domain.Transaction, 0, len(txs))
	for _, t := range txs {
		if bounded && (t.CreatedAt.Before(from) || t.CreatedAt.After(to)) {
			continue
		}
		switch f.Status {
		case StatusPaid:
			if !t.IsPaid {
				continue
			}
		case StatusPending:
			if t.IsPaid {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// window resolves the filter's date bounds. bounded is false for RangeAll
// and for an unrecognised range.
func window(f Filter, now time.Time) (from, to time.Time, bounded bool) {
	switch f.Range {
	case RangeToday:
		return startOfDay(now), endOfDay(now), true
	case RangeThisWeek:
		return startOfWeek(now), endOfDay(now), true
	case RangeThisMonth:
		return startOfMonth(now), endOfDay(now), true
	case RangeCustom:
		return startOfDay(f.From), endOfDay(f.To), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// Sort returns a new slice ordered by key and order. The sort is stable:
// ties keep their input order, so sorting an already-sorted slice is a
// no-op.
func Sort(txs []domain.Transaction, key SortKey, order SortOrder) []domain.Transaction {
	out := make([]domain.Transaction, len(txs))
	copy(out, txs)

	less := lessFunc(key)
	if order == OrderDesc {
		inner := less
		less = func(a, b domain.Transaction) bool { return inner(b, a) }
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func lessFunc(key SortKey) func(a, b domain.Transaction) bool {
	switch key {
	case SortByAmount:
		return func(a, b domain.Transaction) bool { return a.Amount < b.Amount }
	case SortByClientName:
		return func(a, b domain.Transaction) bool {
			return strings.ToLower(a.ClientName) < strings.ToLower(b.ClientName)
		}
	case SortByServiceName:
		return func(a, b domain.Transaction) bool {
			return strings.ToLower(a.ServiceName) < strings.ToLower(b.ServiceName)
		}
	default: // SortByDate
		return func(a, b domain.Transaction) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}
}

// Summarize computes the dashboard statistics over the full, unfiltered set.
// PaymentRate is 0 when the set is empty.
func Summarize(txs []domain.Transaction, now time.Time) Stats {
	var s Stats
	dayStart := startOfDay(now)
	weekStart := startOfWeek(now)
	monthStart := startOfMonth(now)

	for _, t := range txs {
		s.TotalCount++
		if !t.IsPaid {
			s.PendingCount++
			s.PendingAmount += t.Amount
			continue
		}
		s.PaidCount++
		if !t.CreatedAt.Before(dayStart) {
			s.TodayRevenue += t.Amount
		}
		if !t.CreatedAt.Before(weekStart) {
			s.WeekRevenue += t.Amount
		}
		if !t.CreatedAt.Before(monthStart) {
			s.MonthRevenue += t.Amount
		}
	}

	if s.TotalCount > 0 {
		s.PaymentRate = float64(s.PaidCount) / float64(s.TotalCount)
	}
	return s
}

// Upcoming returns at most five unpaid transactions whose due date falls
// within the next seven days, ascending by due date. Transactions without a
// due date never qualify.
func Upcoming(txs []domain.Transaction, now time.Time) []domain.Transaction {
	horizon := now.Add(upcomingWindow)

	var due []domain.Transaction
	for _, t := range txs {
		if t.IsPaid || t.DueDate == nil {
			continue
		}
		if t.DueDate.After(horizon) {
			continue
		}
		due = append(due, t)
	}

	sort.SliceStable(due, func(i, j int) bool { return due[i].DueDate.Before(*due[j].DueDate) })

	if len(due) > upcomingLimit {
		due = due[:upcomingLimit]
	}
	return due
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// startOfWeek treats Monday as the first day of the week.
func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return startOfDay(t.AddDate(0, 0, -(weekday - 1)))
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
