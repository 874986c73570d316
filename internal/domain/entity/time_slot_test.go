package entity

import (
	"testing"
	"time"
)

func TestSlotOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	slot := &AvailableTimeSlot{StartTime: base, EndTime: base.Add(time.Hour)}

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical", base, base.Add(time.Hour), true},
		{"contained", base.Add(10 * time.Minute), base.Add(20 * time.Minute), true},
		{"straddles start", base.Add(-10 * time.Minute), base.Add(10 * time.Minute), true},
		{"straddles end", base.Add(50 * time.Minute), base.Add(70 * time.Minute), true},
		{"covers", base.Add(-time.Hour), base.Add(2 * time.Hour), true},
		{"before", base.Add(-2 * time.Hour), base.Add(-time.Hour), false},
		{"after", base.Add(2 * time.Hour), base.Add(3 * time.Hour), false},
		{"touching start", base.Add(-time.Hour), base, false},
		{"touching end", base.Add(time.Hour), base.Add(2 * time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := slot.Overlaps(tc.start, tc.end); got != tc.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestAppointmentTransitions(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusScheduled}
	if !a.IsScheduled() || a.IsTerminal() {
		t.Fatalf("new appointment should be scheduled and non-terminal")
	}

	a.Complete()
	if a.Status != AppointmentStatusCompleted || !a.IsTerminal() {
		t.Fatalf("complete should move to completed")
	}

	b := &Appointment{Status: AppointmentStatusScheduled}
	b.Cancel()
	if b.Status != AppointmentStatusCanceled {
		t.Fatalf("cancel should move to canceled")
	}
	if b.PatientID != nil {
		t.Fatalf("cancel should unlink the patient")
	}
}
