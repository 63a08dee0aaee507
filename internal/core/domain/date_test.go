package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestDate_MarshalsCalendarDateOnly(t *testing.T) {
	due := NewDate(time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC))
	stamp := time.Date(2026, time.April, 20, 9, 30, 15, 0, time.UTC)
	task := Task{ID: 1, OwnerID: 1, Title: "Book venue", DueDate: &due, CreatedAt: stamp, UpdatedAt: stamp}

	body, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("marshal task: %v", err)
	}
	if !strings.Contains(string(body), `"due_date":"2026-05-01"`) {
		t.Fatalf("due_date not serialized as a calendar date: %s", body)
	}
	if strings.Contains(string(body), "T00:00:00") {
		t.Fatalf("due_date leaked a time component: %s", body)
	}

	paid := NewDate(time.Date(2026, time.March, 2, 15, 4, 5, 0, time.UTC))
	cost := Cost{ID: 1, OwnerID: 1, Name: "Catering", PaymentDate: &paid}
	body, err = json.Marshal(cost)
	if err != nil {
		t.Fatalf("marshal cost: %v", err)
	}
	if !strings.Contains(string(body), `"payment_date":"2026-03-02"`) {
		t.Fatalf("payment_date not serialized as a calendar date: %s", body)
	}
}

func TestDate_RoundTrip(t *testing.T) {
	// A date read from a response must be accepted verbatim on the next
	// update request.
	due := NewDate(time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC))
	body, err := json.Marshal(Task{Title: "x", DueDate: &due})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var echoed struct {
		DueDate string `json:"due_date"`
	}
	if err := json.Unmarshal(body, &echoed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if echoed.DueDate != "2026-05-01" {
		t.Fatalf("wire form = %q, want %q", echoed.DueDate, "2026-05-01")
	}
	if _, err := ParseDate(echoed.DueDate); err != nil {
		t.Fatalf("own wire form rejected: %v", err)
	}

	var back Date
	if err := json.Unmarshal([]byte(`"2026-05-01"`), &back); err != nil {
		t.Fatalf("unmarshal date: %v", err)
	}
	if !back.Equal(due.Time) {
		t.Fatalf("round trip changed the date: %v != %v", back, due)
	}
}

func TestDate_UnmarshalRejectsBadInput(t *testing.T) {
	for _, raw := range []string{`"15/09/2026"`, `"2026-05-01T00:00:00Z"`, `12345`, `""`} {
		var d Date
		if err := json.Unmarshal([]byte(raw), &d); err == nil {
			t.Errorf("unmarshal %s: expected error", raw)
		}
	}
}

func TestDate_ScanAndValue(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2026, time.May, 1, 13, 30, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if d.String() != "2026-05-01" {
		t.Fatalf("scanned date = %q, want 2026-05-01", d.String())
	}

	v, err := d.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	got, ok := v.(time.Time)
	if !ok || !got.Equal(d.Time) {
		t.Fatalf("value = %v, want %v", v, d.Time)
	}

	if err := d.Scan(42); err == nil {
		t.Fatal("scan int: expected error")
	}
}
