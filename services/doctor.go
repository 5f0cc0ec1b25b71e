package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"medwebcare/config/db"
	"medwebcare/models"
	"medwebcare/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func findProjection(p bson.M) *options.FindOptions {
	return options.Find().SetProjection(p)
}

// ErrNoDoctorProfile signals that the doctor has not completed the
// mandatory setup form yet.
var ErrNoDoctorProfile = errors.New(util.DOCTOR_PROFILE_NOT_FOUND)

// doctorPublicProjection whitelists the public-safe doctor fields. The
// license number and bank details are excluded from the read itself, not
// hidden afterwards.
var doctorPublicProjection = bson.M{
	"user_id":             1,
	"bio":                 1,
	"specialization":      1,
	"years_of_experience": 1,
	"consultation_fee":    1,
	"verified":            1,
	"available_days":      1,
	"available_hours":     1,
}

/*
* Fetch a doctor profile by identity id
 */
func FetchDoctorProfile(c *gin.Context, userID string) (*models.DoctorProfile, error) {
	var profile models.DoctorProfile
	err := db.OpenCollection(util.DoctorProfileCollection).
		FindOne(c, bson.M{"user_id": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoDoctorProfile
		}
		log.Println("Error while fetching doctor profile:", err)
		return nil, err
	}
	return &profile, nil
}

// Database touchpoints of the setup form, swappable in tests.
var (
	countDoctorProfiles = func(c *gin.Context, userID string) (int64, error) {
		return db.OpenCollection(util.DoctorProfileCollection).
			CountDocuments(c, bson.M{"user_id": userID})
	}
	insertDoctorProfile = func(c *gin.Context, profile *models.DoctorProfile) error {
		_, err := db.OpenCollection(util.DoctorProfileCollection).InsertOne(c, profile)
		return err
	}
)

type DoctorProfileInput struct {
	Specialization    string   `json:"specialization" validate:"required,min=2,max=100"`
	LicenseNumber     string   `json:"license_number" validate:"required,min=2,max=64"`
	YearsOfExperience int      `json:"years_of_experience" validate:"gte=0,lte=80"`
	Bio               string   `json:"bio" validate:"max=2000"`
	ConsultationFee   float64  `json:"consultation_fee" validate:"gte=0"`
	AvailableDays     []string `json:"available_days"`
	AvailableHours    string   `json:"available_hours" validate:"max=200"`
}

/*
* Create the one-time doctor profile from the setup form
* Days outside the fixed weekday set are rejected
* A second setup attempt for the same doctor fails
 */
func CreateDoctorProfile(c *gin.Context, input DoctorProfileInput) (*models.DoctorProfile, error) {
	userID, err := getUserID(c)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		log.Println("Error from doctor profile validation:", err)
		return nil, err
	}

	days := make([]models.Weekday, 0, len(input.AvailableDays))
	for _, d := range input.AvailableDays {
		day := models.Weekday(d)
		if !day.Valid() {
			return nil, errors.New(util.INVALID_AVAILABLE_DAY)
		}
		days = append(days, day)
	}

	count, err := countDoctorProfiles(c, userID)
	if err != nil {
		log.Println("Error while counting doctor profiles:", err)
		return nil, err
	}
	if count > 0 {
		return nil, errors.New(util.DOCTOR_PROFILE_ALREADY_EXISTS)
	}

	profile := models.DoctorProfile{
		UserID:            userID,
		Specialization:    input.Specialization,
		LicenseNumber:     input.LicenseNumber,
		YearsOfExperience: input.YearsOfExperience,
		Bio:               input.Bio,
		ConsultationFee:   input.ConsultationFee,
		AvailableDays:     days,
		AvailableHours:    input.AvailableHours,
		CreatedAt:         time.Now(),
	}
	if err := insertDoctorProfile(c, &profile); err != nil {
		log.Println("Error while creating doctor profile:", err)
		return nil, err
	}
	return &profile, nil
}

/*
* Fetch every doctor through the public projection and group the display
* fields under a nested profile object
 */
func FetchDoctorDirectory(c *gin.Context) ([]models.DoctorPublicInfo, error) {
	coll := db.OpenCollection(util.DoctorProfileCollection)
	cursor, err := coll.Find(c, bson.M{}, findProjection(doctorPublicProjection))
	if err != nil {
		log.Println("Error while fetching doctor directory:", err)
		return nil, err
	}
	var docs []models.DoctorProfile
	if err := cursor.All(c, &docs); err != nil {
		log.Println("Error while decoding doctor directory:", err)
		return nil, err
	}

	doctors := make([]models.DoctorPublicInfo, 0, len(docs))
	for _, doc := range docs {
		var profile models.Profile
		err := db.OpenCollection(util.ProfileCollection).
			FindOne(c, bson.M{"user_id": doc.UserID}).Decode(&profile)
		if err != nil {
			log.Println("Error while fetching doctor display profile:", err)
			continue
		}
		doctors = append(doctors, models.DoctorPublicInfo{
			ID:                doc.UserID,
			Bio:               doc.Bio,
			Specialization:    doc.Specialization,
			YearsOfExperience: doc.YearsOfExperience,
			ConsultationFee:   doc.ConsultationFee,
			Verified:          doc.Verified,
			AvailableDays:     doc.AvailableDays,
			AvailableHours:    doc.AvailableHours,
			Profile: models.PublicProfile{
				ID:        doc.UserID,
				FullName:  profile.FullName,
				AvatarURL: profile.AvatarURL,
			},
		})
	}
	return doctors, nil
}

/*
* Case-insensitive substring match on name or specialization over the
* full in-memory list
 */
func FilterDoctors(doctors []models.DoctorPublicInfo, query string) []models.DoctorPublicInfo {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return doctors
	}
	filtered := make([]models.DoctorPublicInfo, 0, len(doctors))
	for _, d := range doctors {
		if strings.Contains(strings.ToLower(d.Profile.FullName), q) ||
			strings.Contains(strings.ToLower(d.Specialization), q) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}
