package services

import (
	"errors"
	"log"
	"time"

	"medwebcare/config/cache"
	"medwebcare/config/db"
	"medwebcare/models"
	"medwebcare/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNoProfile signals that the authenticated identity has no profile
// row; callers route back to the sign-in screen rather than erroring.
var ErrNoProfile = errors.New(util.PROFILE_NOT_FOUND)

/*
* Get the authenticated user id from the context
 */
func getUserID(c *gin.Context) (string, error) {
	userID := c.GetString("userId")
	if userID == "" {
		log.Println("Unable to get user id from context")
		return "", errors.New(util.UNABLE_TO_FETCH_CODE_FROM_CONTEXT)
	}
	return userID, nil
}

/*
* Fetch a profile by identity id, cache first then mongo
* A cache failure only logs, the database stays authoritative
 */
func FetchProfile(c *gin.Context, userID string) (*models.Profile, error) {
	key := util.ProfileKey + userID

	var cached models.Profile
	if err := cache.GetCache(c, key, &cached); err == nil {
		return &cached, nil
	}

	var profile models.Profile
	err := db.OpenCollection(util.ProfileCollection).
		FindOne(c, bson.M{"user_id": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoProfile
		}
		log.Println("Error while fetching profile:", err)
		return nil, err
	}
	if err := cache.SetCache(c, key, profile); err != nil && err != cache.ErrCacheDisabled {
		log.Println("Error while caching profile:", err)
	}
	return &profile, nil
}

type ProfileUpdateInput struct {
	FullName       string   `json:"full_name" validate:"required,min=2,max=100"`
	Phone          string   `json:"phone" validate:"max=32"`
	BloodType      *string  `json:"blood_type"`
	HeightCm       *float64 `json:"height_cm"`
	WeightKg       *float64 `json:"weight_kg"`
	Allergies      *string  `json:"allergies"`
	Conditions     *string  `json:"conditions"`
	Medications    *string  `json:"medications"`
	MedicalHistory *string  `json:"medical_history"`
}

/*
* Update the caller's profile from the settings form
* Optional vitals only change when the field was sent
* Refresh the cached copy afterwards
 */
func UpdateProfile(c *gin.Context, input ProfileUpdateInput) (*models.Profile, error) {
	userID, err := getUserID(c)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		log.Println("Error from profile update validation:", err)
		return nil, err
	}

	set := bson.M{
		"full_name":  input.FullName,
		"phone":      input.Phone,
		"updated_at": time.Now(),
	}
	if input.BloodType != nil {
		set["blood_type"] = *input.BloodType
	}
	if input.HeightCm != nil {
		set["height_cm"] = *input.HeightCm
	}
	if input.WeightKg != nil {
		set["weight_kg"] = *input.WeightKg
	}
	if input.Allergies != nil {
		set["allergies"] = *input.Allergies
	}
	if input.Conditions != nil {
		set["conditions"] = *input.Conditions
	}
	if input.Medications != nil {
		set["medications"] = *input.Medications
	}
	if input.MedicalHistory != nil {
		set["medical_history"] = *input.MedicalHistory
	}

	coll := db.OpenCollection(util.ProfileCollection)
	filter := bson.M{"user_id": userID}
	if _, err := coll.UpdateOne(c, filter, bson.M{"$set": set}); err != nil {
		log.Println("Error while updating profile:", err)
		return nil, err
	}

	var updated models.Profile
	if err := coll.FindOne(c, filter).Decode(&updated); err != nil {
		log.Println("Error while fetching updated profile:", err)
		return nil, err
	}

	key := util.ProfileKey + userID
	if err := cache.DeleteCache(c, key); err != nil && err != cache.ErrCacheDisabled {
		log.Println("Error while deleting cached profile:", err)
	}
	if err := cache.SetCache(c, key, updated); err != nil && err != cache.ErrCacheDisabled {
		log.Println("Error while caching updated profile:", err)
	}
	return &updated, nil
}

// PatientDashboard bundles what the patient landing screen shows.
type PatientDashboard struct {
	Profile      *models.Profile          `json:"profile"`
	Appointments []models.AppointmentView `json:"appointments"`
}

// DoctorDashboard bundles what the doctor landing screen shows. When the
// doctor has no DoctorProfile yet, NeedsProfileSetup is true and the
// client shows the setup form instead of the dashboard.
type DoctorDashboard struct {
	Profile           *models.Profile          `json:"profile"`
	DoctorProfile     *models.DoctorProfile    `json:"doctor_profile,omitempty"`
	NeedsProfileSetup bool                     `json:"needs_profile_setup"`
	Stats             models.DoctorStats       `json:"stats"`
	Appointments      []models.AppointmentView `json:"appointments"`
}

/*
* Resolve the caller's profile and own-as-patient appointments
 */
func FetchPatientDashboard(c *gin.Context) (*PatientDashboard, error) {
	userID, err := getUserID(c)
	if err != nil {
		return nil, err
	}
	profile, err := FetchProfile(c, userID)
	if err != nil {
		return nil, err
	}
	appointments, err := FetchPatientAppointments(c, userID)
	if err != nil {
		return nil, err
	}
	return &PatientDashboard{Profile: profile, Appointments: appointments}, nil
}

/*
* Assemble the doctor dashboard from what was resolved
* No doctor profile means the setup form shows instead of the dashboard
 */
func buildDoctorDashboard(profile *models.Profile, docProfile *models.DoctorProfile,
	appointments []models.AppointmentView, now time.Time) *DoctorDashboard {
	dash := &DoctorDashboard{Profile: profile}
	if docProfile == nil {
		dash.NeedsProfileSetup = true
		return dash
	}
	dash.DoctorProfile = docProfile
	dash.Appointments = appointments
	dash.Stats = ComputeDoctorStats(appointments, now)
	return dash
}

/*
* Resolve the caller's profile, doctor profile and appointment stats
* A missing doctor profile flips the setup flag instead of failing
 */
func FetchDoctorDashboard(c *gin.Context) (*DoctorDashboard, error) {
	userID, err := getUserID(c)
	if err != nil {
		return nil, err
	}
	profile, err := FetchProfile(c, userID)
	if err != nil {
		return nil, err
	}

	docProfile, err := FetchDoctorProfile(c, userID)
	if err != nil {
		if !errors.Is(err, ErrNoDoctorProfile) {
			return nil, err
		}
		return buildDoctorDashboard(profile, nil, nil, time.Now()), nil
	}

	appointments, err := FetchDoctorAppointments(c, userID)
	if err != nil {
		return nil, err
	}
	return buildDoctorDashboard(profile, docProfile, appointments, time.Now()), nil
}
