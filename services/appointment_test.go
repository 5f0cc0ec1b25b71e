package services

import (
	"testing"
	"time"

	"medwebcare/models"
	"medwebcare/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBooking_MissingDateOrTime(t *testing.T) {
	now := time.Now()

	_, err := ValidateBooking(BookingInput{DoctorID: "d1", Time: "09:00"}, now)
	assert.EqualError(t, err, util.MISSING_DATE_OR_TIME)

	_, err = ValidateBooking(BookingInput{DoctorID: "d1", Date: "2030-05-01"}, now)
	assert.EqualError(t, err, util.MISSING_DATE_OR_TIME)

	_, err = ValidateBooking(BookingInput{DoctorID: "d1"}, now)
	assert.EqualError(t, err, util.MISSING_DATE_OR_TIME)
}

func TestValidateBooking_RejectsUnknownSlot(t *testing.T) {
	_, err := ValidateBooking(BookingInput{DoctorID: "d1", Date: "2030-05-01", Time: "12:00"}, time.Now())
	assert.EqualError(t, err, util.INVALID_TIME_SLOT)

	_, err = ValidateBooking(BookingInput{DoctorID: "d1", Date: "2030-05-01", Time: "9:00"}, time.Now())
	assert.EqualError(t, err, util.INVALID_TIME_SLOT)
}

func TestValidateBooking_RejectsPastDates(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

	_, err := ValidateBooking(BookingInput{DoctorID: "d1", Date: "2026-08-31", Time: "09:00"}, now)
	assert.EqualError(t, err, util.DATE_IN_PAST)

	// today stays bookable even for a slot earlier in the day
	when, err := ValidateBooking(BookingInput{DoctorID: "d1", Date: "2026-09-01", Time: "09:00"}, now)
	require.NoError(t, err)
	assert.Equal(t, 2026, when.Year())
}

func TestCombineDateTime(t *testing.T) {
	when, err := CombineDateTime("2026-09-15", "14:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 14, 30, 0, 0, time.Local), when)

	_, err = CombineDateTime("15-09-2026", "14:30")
	assert.Error(t, err)
}

func TestTimeSlots_FixedCandidateList(t *testing.T) {
	assert.Len(t, models.TimeSlots, 12)
	assert.True(t, models.ValidTimeSlot("09:00"))
	assert.True(t, models.ValidTimeSlot("16:30"))
	assert.False(t, models.ValidTimeSlot("12:00"))
	assert.False(t, models.ValidTimeSlot("17:00"))
	assert.False(t, models.ValidTimeSlot(""))
}

func TestComputeDoctorStats(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	mk := func(patient string, when time.Time, status models.AppointmentStatus) models.AppointmentView {
		return models.AppointmentView{Appointment: models.Appointment{
			PatientID:       patient,
			AppointmentDate: when,
			Status:          status,
		}}
	}

	appointments := []models.AppointmentView{
		mk("p1", now.Add(2*time.Hour), models.StatusPending),    // today + upcoming
		mk("p1", now.Add(-3*time.Hour), models.StatusCompleted), // today, completed
		mk("p2", now.AddDate(0, 0, 3), models.StatusPending),    // upcoming
		mk("p3", now.AddDate(0, 0, -10), models.StatusCompleted),
	}

	stats := ComputeDoctorStats(appointments, now)
	assert.Equal(t, 2, stats.TodayAppointments)
	assert.Equal(t, 3, stats.TotalPatients)
	assert.Equal(t, 2, stats.Upcoming)
	assert.Equal(t, 2, stats.Completed)
}

func TestComputeDoctorStats_Empty(t *testing.T) {
	stats := ComputeDoctorStats(nil, time.Now())
	assert.Equal(t, models.DoctorStats{}, stats)
}
