package services

import (
	"errors"
	"log"
	"time"

	"medwebcare/config/db"
	"medwebcare/models"
	"medwebcare/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const bookingDateLayout = "2006-01-02"

type BookingInput struct {
	DoctorID string `json:"doctor_id" validate:"required"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Notes    string `json:"notes" validate:"max=2000"`
}

/*
* Reject a booking with no date or time before anything else happens
* The time must come from the fixed candidate list
* The date must not be before today
 */
func ValidateBooking(input BookingInput, now time.Time) (time.Time, error) {
	if input.Date == "" || input.Time == "" {
		return time.Time{}, errors.New(util.MISSING_DATE_OR_TIME)
	}
	if !models.ValidTimeSlot(input.Time) {
		return time.Time{}, errors.New(util.INVALID_TIME_SLOT)
	}
	when, err := CombineDateTime(input.Date, input.Time)
	if err != nil {
		return time.Time{}, err
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if when.Before(today) {
		return time.Time{}, errors.New(util.DATE_IN_PAST)
	}
	return when, nil
}

/*
* Combine the calendar date and the chosen slot into one timestamp
 */
func CombineDateTime(date, slot string) (time.Time, error) {
	return time.ParseInLocation(bookingDateLayout+" 15:04", date+" "+slot, time.Local)
}

/*
* Validate the booking form
* Check the doctor exists before linking to it
* Insert a pending appointment for the caller
* No overlap or double-booking check is made
 */
func BookAppointment(c *gin.Context, input BookingInput) (*models.Appointment, error) {
	patientID, err := getUserID(c)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		log.Println("Error from booking validation:", err)
		return nil, err
	}
	when, err := ValidateBooking(input, time.Now())
	if err != nil {
		return nil, err
	}

	if _, err := FetchDoctorProfile(c, input.DoctorID); err != nil {
		log.Println("Error while verifying doctor for booking:", err)
		return nil, err
	}

	appointment := models.Appointment{
		PatientID:       patientID,
		DoctorID:        input.DoctorID,
		AppointmentDate: when,
		Notes:           input.Notes,
		Status:          models.StatusPending,
		CreatedAt:       time.Now(),
	}
	result, err := db.OpenCollection(util.AppointmentCollection).InsertOne(c, &appointment)
	if err != nil {
		log.Println("Error while creating appointment:", err)
		return nil, err
	}
	log.Println("Appointment inserted:", result.InsertedID)
	return &appointment, nil
}

func fetchAppointments(c *gin.Context, filter bson.M) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "appointment_date", Value: 1}})
	cursor, err := db.OpenCollection(util.AppointmentCollection).Find(c, filter, opts)
	if err != nil {
		log.Println("Error while fetching appointments:", err)
		return nil, err
	}
	var appointments []models.Appointment
	if err := cursor.All(c, &appointments); err != nil {
		log.Println("Error while decoding appointments:", err)
		return nil, err
	}
	return appointments, nil
}

func doctorDisplay(c *gin.Context, doctorID string) *models.DoctorDisplay {
	var profile models.Profile
	err := db.OpenCollection(util.ProfileCollection).
		FindOne(c, bson.M{"user_id": doctorID}).Decode(&profile)
	if err != nil {
		log.Println("Error while fetching doctor display data:", err)
		return nil
	}
	display := &models.DoctorDisplay{FullName: profile.FullName}
	if doc, err := FetchDoctorProfile(c, doctorID); err == nil {
		display.Specialization = doc.Specialization
	}
	return display
}

func patientDisplay(c *gin.Context, patientID string) *models.PatientDisplay {
	var profile models.Profile
	err := db.OpenCollection(util.ProfileCollection).
		FindOne(c, bson.M{"user_id": patientID}).Decode(&profile)
	if err != nil {
		log.Println("Error while fetching patient display data:", err)
		return nil
	}
	return &models.PatientDisplay{FullName: profile.FullName, Email: profile.Email}
}

/*
* Own-as-patient appointments with the doctor's name and specialization
 */
func FetchPatientAppointments(c *gin.Context, patientID string) ([]models.AppointmentView, error) {
	appointments, err := fetchAppointments(c, bson.M{"patient_id": patientID})
	if err != nil {
		return nil, err
	}
	views := make([]models.AppointmentView, 0, len(appointments))
	for _, a := range appointments {
		views = append(views, models.AppointmentView{
			Appointment: a,
			Doctor:      doctorDisplay(c, a.DoctorID),
		})
	}
	return views, nil
}

/*
* Own-as-doctor appointments with the patient's name and email
 */
func FetchDoctorAppointments(c *gin.Context, doctorID string) ([]models.AppointmentView, error) {
	appointments, err := fetchAppointments(c, bson.M{"doctor_id": doctorID})
	if err != nil {
		return nil, err
	}
	views := make([]models.AppointmentView, 0, len(appointments))
	for _, a := range appointments {
		views = append(views, models.AppointmentView{
			Appointment: a,
			Patient:     patientDisplay(c, a.PatientID),
		})
	}
	return views, nil
}

/*
* Role-scoped listing, the caller only ever sees its own side
 */
func FetchAppointments(c *gin.Context) ([]models.AppointmentView, error) {
	userID, err := getUserID(c)
	if err != nil {
		return nil, err
	}
	if models.Role(c.GetString("role")) == models.RoleDoctor {
		return FetchDoctorAppointments(c, userID)
	}
	return FetchPatientAppointments(c, userID)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

/*
* The four dashboard cards: today, distinct patients, upcoming, completed
 */
func ComputeDoctorStats(appointments []models.AppointmentView, now time.Time) models.DoctorStats {
	stats := models.DoctorStats{}
	patients := make(map[string]struct{})
	for _, a := range appointments {
		patients[a.PatientID] = struct{}{}
		if sameDay(a.AppointmentDate, now) {
			stats.TodayAppointments++
		}
		if a.AppointmentDate.After(now) {
			stats.Upcoming++
		}
		if a.Status == models.StatusCompleted {
			stats.Completed++
		}
	}
	stats.TotalPatients = len(patients)
	return stats
}
