package availability

import (
	"reflect"
	"testing"
)

func TestSubtractReservedCarvesMiddle(t *testing.T) {
	// 09:00-12:00 minus 10:00-11:00 leaves 09:00-10:00 and 11:00-12:00.
	windows := []interval{{start: 540, end: 720}}
	reserved := []interval{{start: 600, end: 660}}

	got := subtractReserved(windows, reserved)
	want := []interval{{start: 540, end: 600}, {start: 660, end: 720}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("subtractReserved = %v, want %v", got, want)
	}
}

func TestSubtractReservedFullyBooked(t *testing.T) {
	windows := []interval{{start: 540, end: 660}}
	reserved := []interval{{start: 540, end: 660}}

	if got := subtractReserved(windows, reserved); len(got) != 0 {
		t.Errorf("subtractReserved = %v, want empty", got)
	}
}

func TestSubtractReservedUnsortedReservations(t *testing.T) {
	windows := []interval{{start: 480, end: 720}}
	reserved := []interval{{start: 600, end: 630}, {start: 510, end: 540}}

	got := subtractReserved(windows, reserved)
	want := []interval{
		{start: 480, end: 510},
		{start: 540, end: 600},
		{start: 630, end: 720},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("subtractReserved = %v, want %v", got, want)
	}
}

func TestSubtractReservedIgnoresOtherWindows(t *testing.T) {
	// A reservation outside every window leaves the windows untouched.
	windows := []interval{{start: 540, end: 660}}
	reserved := []interval{{start: 720, end: 780}}

	got := subtractReserved(windows, reserved)
	if !reflect.DeepEqual(got, windows) {
		t.Errorf("subtractReserved = %v, want %v", got, windows)
	}
}

func TestContains(t *testing.T) {
	windows := []interval{{start: 540, end: 720}}
	reserved := []interval{{start: 600, end: 660}}

	cases := []struct {
		name       string
		start, end int
		want       bool
	}{
		{"free window before reservation", 540, 600, true},
		{"free window after reservation", 660, 720, true},
		{"overlaps reservation", 630, 690, false},
		{"inside reservation", 610, 650, false},
		{"outside every window", 720, 780, false},
		{"straddles window edge", 510, 570, false},
	}
	for _, tc := range cases {
		if got := contains(windows, reserved, tc.start, tc.end); got != tc.want {
			t.Errorf("%s: contains(%d, %d) = %v, want %v", tc.name, tc.start, tc.end, got, tc.want)
		}
	}
}
