package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role designates which dashboard and data scope a session may access.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

func (r Role) Valid() bool {
	return r == RolePatient || r == RoleDoctor
}

// DashboardRoute is the client route a freshly resolved session of this
// role should land on.
func (r Role) DashboardRoute() string {
	if r == RoleDoctor {
		return "/dashboard/doctor"
	}
	return "/dashboard/patient"
}

// Counterpart returns the other role's designation.
func (r Role) Counterpart() Role {
	if r == RoleDoctor {
		return RolePatient
	}
	return RoleDoctor
}

// Profile is the per-identity row created at sign-up, one per identity.
// Vitals and history fields are optional and absent until the settings
// form fills them in.
type Profile struct {
	ID             primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UserID         string             `json:"id" bson:"user_id"`
	Role           Role               `json:"role" bson:"role"`
	FullName       string             `json:"full_name" bson:"full_name"`
	Email          string             `json:"email" bson:"email"`
	Phone          string             `json:"phone" bson:"phone"`
	AvatarURL      *string            `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	BloodType      *string            `json:"blood_type,omitempty" bson:"blood_type,omitempty"`
	HeightCm       *float64           `json:"height_cm,omitempty" bson:"height_cm,omitempty"`
	WeightKg       *float64           `json:"weight_kg,omitempty" bson:"weight_kg,omitempty"`
	Allergies      *string            `json:"allergies,omitempty" bson:"allergies,omitempty"`
	Conditions     *string            `json:"conditions,omitempty" bson:"conditions,omitempty"`
	Medications    *string            `json:"medications,omitempty" bson:"medications,omitempty"`
	MedicalHistory *string            `json:"medical_history,omitempty" bson:"medical_history,omitempty"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}

// UserRole mirrors the identity-to-role row consulted at sign-in.
type UserRole struct {
	ID     primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UserID string             `json:"user_id" bson:"user_id"`
	Role   Role               `json:"role" bson:"role"`
}

// Login holds the credential row for an identity. Guest identities have
// no credentials and never appear here.
type Login struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UserID    string             `json:"user_id" bson:"user_id"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	IsActive  bool               `json:"is_active" bson:"is_active"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
