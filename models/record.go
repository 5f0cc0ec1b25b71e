package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MedicalRecord is created by a doctor for a patient drawn from the
// doctor's own appointment history. FileURL is the storage key inside
// the medical-files bucket and is null when no file was attached.
type MedicalRecord struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PatientID    string             `json:"patient_id" bson:"patient_id"`
	DoctorID     string             `json:"doctor_id" bson:"doctor_id"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description" bson:"description"`
	Diagnosis    string             `json:"diagnosis" bson:"diagnosis"`
	Prescription string             `json:"prescription" bson:"prescription"`
	FileURL      *string            `json:"file_url" bson:"file_url"`
	FileType     *string            `json:"file_type" bson:"file_type"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}

// MedicalRecordView joins a record with both participants' display data
// for the listing screen.
type MedicalRecordView struct {
	MedicalRecord `bson:",inline"`
	Patient       *PatientDisplay `json:"patient,omitempty" bson:"patient,omitempty"`
	Doctor        *DoctorDisplay  `json:"doctor,omitempty" bson:"doctor,omitempty"`
}

// RecordPatient is one entry of the doctor's patient selector.
type RecordPatient struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

// StoredFile is the GridFS file document shape the orphan sweep reads.
type StoredFile struct {
	ID         primitive.ObjectID `bson:"_id"`
	Name       string             `bson:"filename"`
	Length     int64              `bson:"length"`
	UploadDate time.Time          `bson:"uploadDate"`
}
