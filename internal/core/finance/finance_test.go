package finance

import (
	"reflect"
	"testing"
	"time"

	"github.com/beautiflow/dashboard-api/internal/core/domain"
)

// now is a fixed reference point: Wednesday 2024-03-13 15:00 UTC.
var now = time.Date(2024, time.March, 13, 15, 0, 0, 0, time.UTC)

func tx(id string, created time.Time, amount float64, paid bool) domain.Transaction {
	return domain.Transaction{
		ID:        id,
		Amount:    amount,
		IsPaid:    paid,
		CreatedAt: created,
	}
}

func ids(txs []domain.Transaction) []string {
	out := make([]string, len(txs))
	for i, t := range txs {
		out[i] = t.ID
	}
	return out
}

func TestApply_CustomRangeInclusive(t *testing.T) {
	from := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)

	txs := []domain.Transaction{
		tx("before", time.Date(2024, time.March, 9, 23, 59, 59, 0, time.UTC), 10, true),
		tx("on-from", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), 10, true),
		tx("middle", time.Date(2024, time.March, 11, 12, 0, 0, 0, time.UTC), 10, true),
		tx("on-to", time.Date(2024, time.March, 12, 23, 59, 59, 0, time.UTC), 10, true),
		tx("after", time.Date(2024, time.March, 13, 0, 0, 0, 0, time.UTC), 10, true),
	}

	got := Apply(txs, Filter{Range: RangeCustom, From: from, To: to, Status: StatusAll}, now)
	want := []string{"on-from", "middle", "on-to"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("custom range: got %v, want %v", ids(got), want)
	}
}

func TestApply_TodayAndStatus(t *testing.T) {
	txs := []domain.Transaction{
		tx("today-paid", now.Add(-2*time.Hour), 10, true),
		tx("today-pending", now.Add(-1*time.Hour), 10, false),
		tx("yesterday", now.AddDate(0, 0, -1), 10, true),
	}

	got := Apply(txs, Filter{Range: RangeToday, Status: StatusPending}, now)
	if !reflect.DeepEqual(ids(got), []string{"today-pending"}) {
		t.Fatalf("today+pending: got %v", ids(got))
	}

	got = Apply(txs, Filter{Range: RangeToday, Status: StatusPaid}, now)
	if !reflect.DeepEqual(ids(got), []string{"today-paid"}) {
		t.Fatalf("today+paid: got %v", ids(got))
	}
}

func TestApply_WeekStartsMonday(t *testing.T) {
	// now is Wednesday; Monday the 11th is in this week, Sunday the 10th
	// is not.
	txs := []domain.Transaction{
		tx("sunday", time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC), 10, true),
		tx("monday", time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), 10, true),
	}

	got := Apply(txs, Filter{Range: RangeThisWeek, Status: StatusAll}, now)
	if !reflect.DeepEqual(ids(got), []string{"monday"}) {
		t.Fatalf("this_week: got %v, want [monday]", ids(got))
	}
}

func TestApply_AllRangeKeepsOrderAndInput(t *testing.T) {
	txs := []domain.Transaction{
		tx("b", now.Add(-time.Hour), 2, true),
		tx("a", now.Add(-2*time.Hour), 1, false),
	}
	snapshot := make([]domain.Transaction, len(txs))
	copy(snapshot, txs)

	got := Apply(txs, Filter{Range: RangeAll, Status: StatusAll}, now)
	if !reflect.DeepEqual(ids(got), []string{"b", "a"}) {
		t.Fatalf("order changed: %v", ids(got))
	}
	if !reflect.DeepEqual(txs, snapshot) {
		t.Fatalf("input slice was modified")
	}
}

func TestSort_StableAndIdempotent(t *testing.T) {
	txs := []domain.Transaction{
		{ID: "1", Amount: 50, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "2", Amount: 20, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "3", Amount: 50, CreatedAt: now.Add(-1 * time.Hour)},
	}

	once := Sort(txs, SortByAmount, OrderDesc)
	if !reflect.DeepEqual(ids(once), []string{"1", "3", "2"}) {
		t.Fatalf("desc amount: got %v", ids(once))
	}

	// Equal keys keep their order, so a second pass changes nothing.
	twice := Sort(once, SortByAmount, OrderDesc)
	if !reflect.DeepEqual(ids(twice), ids(once)) {
		t.Fatalf("sort not idempotent: %v then %v", ids(once), ids(twice))
	}
}

func TestSort_ClientNameCaseInsensitive(t *testing.T) {
	txs := []domain.Transaction{
		{ID: "1", ClientName: "zoe"},
		{ID: "2", ClientName: "Anna"},
		{ID: "3", ClientName: "maria"},
	}
	got := Sort(txs, SortByClientName, OrderAsc)
	if !reflect.DeepEqual(ids(got), []string{"2", "3", "1"}) {
		t.Fatalf("client_name asc: got %v", ids(got))
	}
}

func TestSort_DoesNotModifyInput(t *testing.T) {
	txs := []domain.Transaction{
		{ID: "1", Amount: 2},
		{ID: "2", Amount: 1},
	}
	_ = Sort(txs, SortByAmount, OrderAsc)
	if txs[0].ID != "1" || txs[1].ID != "2" {
		t.Fatalf("input slice was reordered")
	}
}

func TestSummarize(t *testing.T) {
	txs := []domain.Transaction{
		tx("today", now.Add(-time.Hour), 100, true),
		tx("this-week", now.AddDate(0, 0, -2), 50, true), // Monday
		tx("this-month", now.AddDate(0, 0, -10), 25, true),
		tx("last-month", now.AddDate(0, -1, 0), 500, true),
		tx("pending-1", now.Add(-time.Hour), 40, false),
		tx("pending-2", now.AddDate(0, 0, -20), 60, false),
	}

	s := Summarize(txs, now)

	if s.TodayRevenue != 100 {
		t.Fatalf("today revenue: got %v, want 100", s.TodayRevenue)
	}
	if s.WeekRevenue != 150 {
		t.Fatalf("week revenue: got %v, want 150", s.WeekRevenue)
	}
	if s.MonthRevenue != 175 {
		t.Fatalf("month revenue: got %v, want 175", s.MonthRevenue)
	}
	if s.PendingAmount != 100 || s.PendingCount != 2 {
		t.Fatalf("pending: got %v/%d, want 100/2", s.PendingAmount, s.PendingCount)
	}
	if s.PaidCount != 4 || s.TotalCount != 6 {
		t.Fatalf("counts: got %d paid / %d total", s.PaidCount, s.TotalCount)
	}
	if want := 4.0 / 6.0; s.PaymentRate != want {
		t.Fatalf("payment rate: got %v, want %v", s.PaymentRate, want)
	}
}

func TestSummarize_EmptySet(t *testing.T) {
	s := Summarize(nil, now)
	if s.PaymentRate != 0 {
		t.Fatalf("payment rate on empty set: got %v, want 0", s.PaymentRate)
	}
	if s.TotalCount != 0 || s.PendingAmount != 0 {
		t.Fatalf("empty set produced non-zero stats: %+v", s)
	}
}

func TestSummarize_AllPaidRateIsOne(t *testing.T) {
	txs := []domain.Transaction{
		tx("a", now.Add(-time.Hour), 10, true),
		tx("b", now.AddDate(0, 0, -3), 20, true),
	}
	s := Summarize(txs, now)
	if s.PaymentRate != 1 {
		t.Fatalf("payment rate with all paid: got %v, want 1", s.PaymentRate)
	}
	if s.PendingCount != 0 || s.PendingAmount != 0 {
		t.Fatalf("pending figures should be zero: %+v", s)
	}
}

func TestSummarize_PendingExcludedFromRevenue(t *testing.T) {
	txs := []domain.Transaction{
		tx("pending-today", now.Add(-time.Minute), 999, false),
	}
	s := Summarize(txs, now)
	if s.TodayRevenue != 0 || s.WeekRevenue != 0 || s.MonthRevenue != 0 {
		t.Fatalf("unpaid amounts leaked into revenue: %+v", s)
	}
}

func TestUpcoming(t *testing.T) {
	due := func(d time.Duration) *time.Time {
		dt := now.Add(d)
		return &dt
	}

	txs := []domain.Transaction{
		{ID: "no-due", IsPaid: false},
		{ID: "paid", IsPaid: true, DueDate: due(24 * time.Hour)},
		{ID: "far", IsPaid: false, DueDate: due(8 * 24 * time.Hour)},
		{ID: "in-3d", IsPaid: false, DueDate: due(3 * 24 * time.Hour)},
		{ID: "overdue", IsPaid: false, DueDate: due(-24 * time.Hour)},
		{ID: "in-1d", IsPaid: false, DueDate: due(24 * time.Hour)},
	}

	got := Upcoming(txs, now)
	want := []string{"overdue", "in-1d", "in-3d"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("upcoming: got %v, want %v", ids(got), want)
	}
}

func TestUpcoming_CapsAtFive(t *testing.T) {
	var txs []domain.Transaction
	for i := 0; i < 8; i++ {
		dt := now.Add(time.Duration(i+1) * time.Hour)
		txs = append(txs, domain.Transaction{ID: string(rune('a' + i)), DueDate: &dt})
	}

	got := Upcoming(txs, now)
	if len(got) != 5 {
		t.Fatalf("expected 5 upcoming, got %d", len(got))
	}
	if !reflect.DeepEqual(ids(got), []string{"a", "b", "c", "d", "e"}) {
		t.Fatalf("expected the five soonest, got %v", ids(got))
	}
}
