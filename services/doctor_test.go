package services

import (
	"net/http/httptest"
	"testing"
	"time"

	"medwebcare/models"
	"medwebcare/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func directory() []models.DoctorPublicInfo {
	return []models.DoctorPublicInfo{
		{Specialization: "Cardiology", Profile: models.PublicProfile{ID: "a", FullName: "Ada"}},
		{Specialization: "Dermatology", Profile: models.PublicProfile{ID: "b", FullName: "Bo"}},
	}
}

func TestFilterDoctors_MatchesSpecialization(t *testing.T) {
	filtered := FilterDoctors(directory(), "derm")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Bo", filtered[0].Profile.FullName)
}

func TestFilterDoctors_MatchesName(t *testing.T) {
	filtered := FilterDoctors(directory(), "ADA")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Ada", filtered[0].Profile.FullName)
}

func TestFilterDoctors_NoMatch(t *testing.T) {
	assert.Empty(t, FilterDoctors(directory(), "neurology"))
}

func TestFilterDoctors_EmptyQueryReturnsAll(t *testing.T) {
	assert.Len(t, FilterDoctors(directory(), ""), 2)
	assert.Len(t, FilterDoctors(directory(), "   "), 2)
}

// The directory guarantee: sensitive fields are excluded from the fetch
// itself, not hidden afterwards.
func TestDoctorPublicProjection_ExcludesSensitiveFields(t *testing.T) {
	assert.NotContains(t, doctorPublicProjection, "license_number")
	assert.NotContains(t, doctorPublicProjection, "bank_name")
	assert.NotContains(t, doctorPublicProjection, "account_number")

	assert.Contains(t, doctorPublicProjection, "specialization")
	assert.Contains(t, doctorPublicProjection, "consultation_fee")
	assert.Contains(t, doctorPublicProjection, "verified")
	assert.Contains(t, doctorPublicProjection, "available_days")
}

func doctorContext(userID string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("userId", userID)
	c.Set("role", "doctor")
	return c
}

// A doctor with no profile row gets the setup form; once the row exists
// the dashboard stops prompting.
func TestDoctorDashboard_SetupFlagFollowsProfile(t *testing.T) {
	profile := &models.Profile{UserID: "d1", Role: models.RoleDoctor, FullName: "Ada"}

	dash := buildDoctorDashboard(profile, nil, nil, time.Now())
	assert.True(t, dash.NeedsProfileSetup)
	assert.Nil(t, dash.DoctorProfile)

	docProfile := &models.DoctorProfile{UserID: "d1", Specialization: "Cardiology"}
	dash = buildDoctorDashboard(profile, docProfile, nil, time.Now())
	assert.False(t, dash.NeedsProfileSetup)
	assert.Equal(t, docProfile, dash.DoctorProfile)
}

func TestCreateDoctorProfile_OncePerDoctor(t *testing.T) {
	var stored []*models.DoctorProfile
	origCount, origInsert := countDoctorProfiles, insertDoctorProfile
	defer func() { countDoctorProfiles, insertDoctorProfile = origCount, origInsert }()

	countDoctorProfiles = func(c *gin.Context, userID string) (int64, error) {
		return int64(len(stored)), nil
	}
	insertDoctorProfile = func(c *gin.Context, profile *models.DoctorProfile) error {
		stored = append(stored, profile)
		return nil
	}

	input := DoctorProfileInput{
		Specialization:    "Cardiology",
		LicenseNumber:     "LIC-42",
		YearsOfExperience: 10,
		ConsultationFee:   150,
		AvailableDays:     []string{"Monday", "Friday"},
	}

	created, err := CreateDoctorProfile(doctorContext("d1"), input)
	require.NoError(t, err)
	assert.Equal(t, "d1", created.UserID)
	assert.Equal(t, []models.Weekday{models.Monday, models.Friday}, created.AvailableDays)
	require.Len(t, stored, 1)

	_, err = CreateDoctorProfile(doctorContext("d1"), input)
	assert.EqualError(t, err, util.DOCTOR_PROFILE_ALREADY_EXISTS)
	assert.Len(t, stored, 1)
}

func TestCreateDoctorProfile_RejectsUnknownDay(t *testing.T) {
	origCount, origInsert := countDoctorProfiles, insertDoctorProfile
	defer func() { countDoctorProfiles, insertDoctorProfile = origCount, origInsert }()
	countDoctorProfiles = func(c *gin.Context, userID string) (int64, error) { return 0, nil }
	insertDoctorProfile = func(c *gin.Context, profile *models.DoctorProfile) error {
		t.Fatal("insert must not happen for an invalid day")
		return nil
	}

	_, err := CreateDoctorProfile(doctorContext("d1"), DoctorProfileInput{
		Specialization: "Cardiology",
		LicenseNumber:  "LIC-42",
		AvailableDays:  []string{"Someday"},
	})
	assert.EqualError(t, err, util.INVALID_AVAILABLE_DAY)
}

func TestWeekday_ClosedSet(t *testing.T) {
	assert.True(t, models.Weekday("Monday").Valid())
	assert.True(t, models.Weekday("Sunday").Valid())
	assert.False(t, models.Weekday("monday").Valid())
	assert.False(t, models.Weekday("Someday").Valid())
}
