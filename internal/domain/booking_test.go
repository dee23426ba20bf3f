package domain

import (
	"testing"
	"time"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return ts
}

func TestBookingOverlaps(t *testing.T) {
	b := &Booking{
		StartAt: mustParse(t, "2026-03-10T10:00:00Z"),
		EndAt:   mustParse(t, "2026-03-10T12:00:00Z"),
	}

	cases := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"identical interval", "2026-03-10T10:00:00Z", "2026-03-10T12:00:00Z", true},
		{"partial overlap at start", "2026-03-10T09:00:00Z", "2026-03-10T11:00:00Z", true},
		{"partial overlap at end", "2026-03-10T11:00:00Z", "2026-03-10T13:00:00Z", true},
		{"fully inside", "2026-03-10T10:30:00Z", "2026-03-10T11:30:00Z", true},
		{"fully containing", "2026-03-10T09:00:00Z", "2026-03-10T13:00:00Z", true},
		{"back-to-back after", "2026-03-10T12:00:00Z", "2026-03-10T14:00:00Z", false},
		{"back-to-back before", "2026-03-10T08:00:00Z", "2026-03-10T10:00:00Z", false},
		{"completely before", "2026-03-10T06:00:00Z", "2026-03-10T08:00:00Z", false},
		{"completely after", "2026-03-10T13:00:00Z", "2026-03-10T14:00:00Z", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := b.Overlaps(mustParse(t, tc.start), mustParse(t, tc.end))
			if got != tc.want {
				t.Fatalf("Overlaps(%s, %s) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestBookingCovers(t *testing.T) {
	b := &Booking{
		StartAt: mustParse(t, "2026-03-10T10:00:00Z"),
		EndAt:   mustParse(t, "2026-03-10T12:00:00Z"),
	}

	if !b.Covers(mustParse(t, "2026-03-10T10:00:00Z")) {
		t.Fatal("start moment must be covered")
	}
	if b.Covers(mustParse(t, "2026-03-10T12:00:00Z")) {
		t.Fatal("end moment must not be covered (half-open interval)")
	}
	if !b.Covers(mustParse(t, "2026-03-10T11:00:00Z")) {
		t.Fatal("midpoint must be covered")
	}
	if b.Covers(mustParse(t, "2026-03-10T09:59:59Z")) {
		t.Fatal("moment before start must not be covered")
	}
}

func TestBookingStatusPredicates(t *testing.T) {
	cases := []struct {
		status      BookingStatus
		active      bool
		cancellable bool
		updatable   bool
	}{
		{BookingConfirmed, true, true, true},
		{BookingCheckedIn, true, false, false},
		{BookingCheckedOut, false, false, false},
		{BookingCancelled, false, false, false},
	}

	for _, tc := range cases {
		b := &Booking{Status: tc.status}
		if got := b.IsActive(); got != tc.active {
			t.Fatalf("%s: IsActive = %v, want %v", tc.status, got, tc.active)
		}
		if got := b.CanBeCancelled(); got != tc.cancellable {
			t.Fatalf("%s: CanBeCancelled = %v, want %v", tc.status, got, tc.cancellable)
		}
		if got := b.CanBeUpdated(); got != tc.updatable {
			t.Fatalf("%s: CanBeUpdated = %v, want %v", tc.status, got, tc.updatable)
		}
	}
}
