package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Weekday is the closed set accepted by the doctor availability form.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (w Weekday) Valid() bool {
	for _, d := range Weekdays {
		if w == d {
			return true
		}
	}
	return false
}

// DoctorProfile is keyed by the doctor's identity id and created exactly
// once through the mandatory setup form.
type DoctorProfile struct {
	ID                primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UserID            string             `json:"id" bson:"user_id"`
	Specialization    string             `json:"specialization" bson:"specialization"`
	LicenseNumber     string             `json:"license_number" bson:"license_number"`
	YearsOfExperience int                `json:"years_of_experience" bson:"years_of_experience"`
	Bio               string             `json:"bio" bson:"bio"`
	ConsultationFee   float64            `json:"consultation_fee" bson:"consultation_fee"`
	AvailableDays     []Weekday          `json:"available_days" bson:"available_days"`
	AvailableHours    string             `json:"available_hours" bson:"available_hours"`
	Verified          bool               `json:"verified" bson:"verified"`
	// Payment details filled in by back-office staff, never by the setup
	// form. Directory reads project them out along with license_number.
	BankName      *string `json:"bank_name,omitempty" bson:"bank_name,omitempty"`
	AccountNumber *string `json:"account_number,omitempty" bson:"account_number,omitempty"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
}

// PublicProfile is the nested display object the directory groups under
// each doctor.
type PublicProfile struct {
	ID        string  `json:"id"`
	FullName  string  `json:"full_name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// DoctorPublicInfo is the restricted projection of a doctor exposed to
// the directory. License number and bank details never enter this shape,
// they are excluded from the read itself.
type DoctorPublicInfo struct {
	ID                string        `json:"id"`
	Bio               string        `json:"bio"`
	Specialization    string        `json:"specialization"`
	YearsOfExperience int           `json:"years_of_experience"`
	ConsultationFee   float64       `json:"consultation_fee"`
	Verified          bool          `json:"verified"`
	AvailableDays     []Weekday     `json:"available_days"`
	AvailableHours    string        `json:"available_hours"`
	Profile           PublicProfile `json:"profile"`
}
