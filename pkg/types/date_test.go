package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2025-03-10 ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d.String() != "2025-03-10" {
		t.Fatalf("unexpected date: %s", d)
	}

	if _, err := ParseDate("10/03/2025"); err == nil {
		t.Fatal("expected unsupported layout to fail")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.March, 10)

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2025-03-10"` {
		t.Fatalf("unexpected payload: %s", raw)
	}

	var parsed Date
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !parsed.Equal(d.Time) {
		t.Fatalf("round trip mismatch: %s != %s", parsed, d)
	}
}

func TestDateJSONZeroAndNull(t *testing.T) {
	raw, err := json.Marshal(Date{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "null" {
		t.Fatalf("expected null for zero date, got %s", raw)
	}

	var parsed Date
	if err := json.Unmarshal([]byte("null"), &parsed); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !parsed.IsZero() {
		t.Fatalf("expected zero date, got %s", parsed)
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2025, time.March, 10, 13, 45, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time: %v", err)
	}
	if d.String() != "2025-03-10" {
		t.Fatalf("expected time truncated to date, got %s", d)
	}

	// sqlite hands back full timestamp strings
	if err := d.Scan("2025-04-01 00:00:00+00:00"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if d.String() != "2025-04-01" {
		t.Fatalf("unexpected date: %s", d)
	}

	if err := d.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if !d.IsZero() {
		t.Fatal("expected nil to reset the date")
	}

	if err := d.Scan(42); err == nil {
		t.Fatal("expected unsupported source to fail")
	}
}

func TestDateOrdering(t *testing.T) {
	earlier := NewDate(2025, time.January, 1)
	later := NewDate(2025, time.February, 1)

	if !earlier.Before(later) || earlier.After(later) {
		t.Fatal("expected strict ordering")
	}
	if earlier.Before(earlier) || earlier.After(earlier) {
		t.Fatal("expected equality to order neither way")
	}
}
