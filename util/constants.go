package util

// Collection names.
const (
	ProfileCollection       = "profiles"
	DoctorProfileCollection = "doctor_profiles"
	AppointmentCollection   = "appointments"
	MedicalRecordCollection = "medical_records"
	UserRoleCollection      = "user_roles"
	LoginCollection         = "logins"
)

// MedicalFilesBucket is the GridFS bucket holding uploaded record files.
const MedicalFilesBucket = "medical-files"

// Cache key prefixes.
const (
	ProfileKey = "PROFILE:"
)

// Client-facing routes used as redirect targets.
const (
	AuthRoute             = "/auth"
	PatientDashboardRoute = "/dashboard/patient"
	DoctorDashboardRoute  = "/dashboard/doctor"
)

// Error messages.
const (
	NOT_AUTHENTICATED                 = "not authenticated"
	PROFILE_NOT_FOUND                 = "profile not found"
	MISSING_DATE_OR_TIME              = "please select a date and time"
	DATE_IN_PAST                      = "appointment date cannot be in the past"
	INVALID_TIME_SLOT                 = "selected time is not an available slot"
	MISSING_PATIENT                   = "please select a patient"
	MISSING_TITLE                     = "record title is required"
	PATIENT_NOT_IN_APPOINTMENTS       = "patient not found in your appointment history"
	DOCTOR_PROFILE_ALREADY_EXISTS     = "doctor profile already exists"
	DOCTOR_PROFILE_NOT_FOUND          = "doctor profile not found"
	INVALID_AVAILABLE_DAY             = "invalid available day"
	INVALID_CREDENTIALS               = "invalid email or password"
	EMAIL_ALREADY_REGISTERED          = "email already registered"
	RECORD_NOT_FOUND                  = "record not found"
	RECORD_HAS_NO_FILE                = "record has no attached file"
	INVALID_USER_TO_ACCESS            = "this user does not have access"
	MEDIA_DEVICE_ACCESS_DENIED        = "unable to access camera or microphone"
	CALL_SESSION_NOT_FOUND            = "call session not found"
	UNABLE_TO_FETCH_CODE_FROM_CONTEXT = "unable to fetch user id from context"
)
