package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AppointmentStatus is the closed set of appointment states. Booking
// only ever writes StatusPending; StatusCompleted is read and counted
// but not assigned anywhere in this service.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusCompleted AppointmentStatus = "completed"
)

// TimeSlots is the fixed candidate list offered by the booking form:
// 09:00-11:30 and 14:00-16:30 in 30-minute steps.
var TimeSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
}

// ValidTimeSlot reports whether t is one of the fixed candidate slots.
func ValidTimeSlot(t string) bool {
	for _, s := range TimeSlots {
		if s == t {
			return true
		}
	}
	return false
}

type Appointment struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PatientID       string             `json:"patient_id" bson:"patient_id"`
	DoctorID        string             `json:"doctor_id" bson:"doctor_id"`
	AppointmentDate time.Time          `json:"appointment_date" bson:"appointment_date"`
	Notes           string             `json:"notes" bson:"notes"`
	Status          AppointmentStatus  `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
}

// AppointmentView is an appointment joined with the counterpart's
// display data: the patient's dashboard shows the doctor, the doctor's
// dashboard shows the patient.
type AppointmentView struct {
	Appointment `bson:",inline"`
	Patient     *PatientDisplay `json:"patient,omitempty" bson:"patient,omitempty"`
	Doctor      *DoctorDisplay  `json:"doctor,omitempty" bson:"doctor,omitempty"`
}

type PatientDisplay struct {
	FullName string `json:"full_name" bson:"full_name"`
	Email    string `json:"email" bson:"email"`
}

type DoctorDisplay struct {
	FullName       string `json:"full_name" bson:"full_name"`
	Specialization string `json:"specialization" bson:"specialization"`
}

// DoctorStats are the four dashboard cards.
type DoctorStats struct {
	TodayAppointments int `json:"today_appointments"`
	TotalPatients     int `json:"total_patients"`
	Upcoming          int `json:"upcoming"`
	Completed         int `json:"completed"`
}
