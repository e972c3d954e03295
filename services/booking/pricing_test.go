package booking

import (
	"testing"

	"alabraar/models"
)

func TestHourlyRate(t *testing.T) {
	if rate, err := HourlyRate(models.PackageBasic); err != nil || rate != 8.0 {
		t.Errorf("HourlyRate(basic) = %v, %v", rate, err)
	}
	if rate, err := HourlyRate(models.PackageComplete); err != nil || rate != 12.0 {
		t.Errorf("HourlyRate(complete) = %v, %v", rate, err)
	}
	if _, err := HourlyRate("premium"); err == nil {
		t.Error("HourlyRate accepted unknown package")
	}
}

func TestCalculateTotalAmount(t *testing.T) {
	cases := []struct {
		pkg                          string
		hoursPerDay, daysPerWeek, mo int
		want                         float64
	}{
		// 8 x 1h x 2d x 4w = 64 per month
		{models.PackageBasic, 1, 2, 1, 64},
		{models.PackageBasic, 1, 2, 3, 192},
		// 12 x 2h x 5d x 4w = 480 per month
		{models.PackageComplete, 2, 5, 1, 480},
		{models.PackageComplete, 2, 5, 12, 5760},
	}
	for _, tc := range cases {
		got, err := CalculateTotalAmount(tc.pkg, tc.hoursPerDay, tc.daysPerWeek, tc.mo)
		if err != nil {
			t.Fatalf("CalculateTotalAmount(%s, %d, %d, %d): %v", tc.pkg, tc.hoursPerDay, tc.daysPerWeek, tc.mo, err)
		}
		if got != tc.want {
			t.Errorf("CalculateTotalAmount(%s, %d, %d, %d) = %v, want %v",
				tc.pkg, tc.hoursPerDay, tc.daysPerWeek, tc.mo, got, tc.want)
		}
	}
}

func TestCalculateTotalAmountUnknownPackage(t *testing.T) {
	if _, err := CalculateTotalAmount("gold", 1, 1, 1); err == nil {
		t.Error("CalculateTotalAmount accepted unknown package")
	}
}
