package booking

import (
	"fmt"

	"alabraar/models"
)

// Hourly rates per package, USD. basic covers Qur'an & Tajweed; complete is
// the full curriculum.
const (
	basicHourlyRate    = 8.0
	completeHourlyRate = 12.0

	weeksPerMonth = 4
)

// HourlyRate returns the per-hour rate for a package type.
func HourlyRate(packageType string) (float64, error) {
	switch packageType {
	case models.PackageBasic:
		return basicHourlyRate, nil
	case models.PackageComplete:
		return completeHourlyRate, nil
	default:
		return 0, fmt.Errorf("unknown package type %q", packageType)
	}
}

// CalculateTotalAmount computes the subscription total for a booking:
// rate x hoursPerDay x daysPerWeek x weeks over the subscription months.
func CalculateTotalAmount(packageType string, hoursPerDay, daysPerWeek, subscriptionMonths int) (float64, error) {
	rate, err := HourlyRate(packageType)
	if err != nil {
		return 0, err
	}
	weeks := subscriptionMonths * weeksPerMonth
	return rate * float64(hoursPerDay) * float64(daysPerWeek) * float64(weeks), nil
}
