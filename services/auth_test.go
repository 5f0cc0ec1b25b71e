package services

import (
	"testing"

	"medwebcare/models"
	"medwebcare/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifiesRoundTrip(t *testing.T) {
	hash, err := HashPassword("Sup3r$ecret")
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3r$ecret", hash)

	assert.NoError(t, verifyPassword(hash, "Sup3r$ecret"))
	assert.EqualError(t, verifyPassword(hash, "wrong"), util.INVALID_CREDENTIALS)
	assert.EqualError(t, verifyPassword("  ", "anything"), util.INVALID_CREDENTIALS)
}

func TestSignUpInput_Validation(t *testing.T) {
	valid := SignUpInput{
		Email:    "ada@example.com",
		Password: "longenough",
		FullName: "Ada Lovelace",
		Role:     "patient",
	}
	assert.NoError(t, validate.Struct(valid))

	cases := []struct {
		name  string
		mut   func(*SignUpInput)
	}{
		{"bad email", func(i *SignUpInput) { i.Email = "not-an-email" }},
		{"short password", func(i *SignUpInput) { i.Password = "short" }},
		{"short name", func(i *SignUpInput) { i.FullName = "A" }},
		{"unknown role", func(i *SignUpInput) { i.Role = "admin" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mut(&input)
			assert.Error(t, validate.Struct(input))
		})
	}
}

func TestSignInInput_Validation(t *testing.T) {
	assert.NoError(t, validate.Struct(SignInInput{Email: "a@b.com", Password: "secret"}))
	assert.Error(t, validate.Struct(SignInInput{Email: "a@b.com", Password: "12345"}))
	assert.Error(t, validate.Struct(SignInInput{Email: "", Password: "secret"}))
}

func TestRole_DashboardRoutes(t *testing.T) {
	assert.Equal(t, util.DoctorDashboardRoute, models.RoleDoctor.DashboardRoute())
	assert.Equal(t, util.PatientDashboardRoute, models.RolePatient.DashboardRoute())
	assert.Equal(t, models.RolePatient, models.RoleDoctor.Counterpart())
	assert.Equal(t, models.RoleDoctor, models.RolePatient.Counterpart())

	assert.True(t, models.RolePatient.Valid())
	assert.False(t, models.Role("admin").Valid())
}
