package services

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"medwebcare/config/db"
	"medwebcare/models"
	"medwebcare/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
* Distinct patient ids from the doctor's own appointment history
 */
func fetchDoctorPatientIDs(c *gin.Context, doctorID string) ([]string, error) {
	raw, err := db.OpenCollection(util.AppointmentCollection).
		Distinct(c, "patient_id", bson.M{"doctor_id": doctorID})
	if err != nil {
		log.Println("Error while fetching distinct patients:", err)
		return nil, err
	}
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

/*
* Populate the upload form's patient selector from the caller's
* appointment history
 */
func FetchRecordPatients(c *gin.Context) ([]models.RecordPatient, error) {
	doctorID, err := getUserID(c)
	if err != nil {
		return nil, err
	}
	ids, err := fetchDoctorPatientIDs(c, doctorID)
	if err != nil {
		return nil, err
	}

	patients := make([]models.RecordPatient, 0, len(ids))
	cursor, err := db.OpenCollection(util.ProfileCollection).
		Find(c, bson.M{"user_id": bson.M{"$in": ids}})
	if err != nil {
		log.Println("Error while fetching patient profiles:", err)
		return nil, err
	}
	var profiles []models.Profile
	if err := cursor.All(c, &profiles); err != nil {
		log.Println("Error while decoding patient profiles:", err)
		return nil, err
	}
	for _, p := range profiles {
		patients = append(patients, models.RecordPatient{ID: p.UserID, FullName: p.FullName})
	}
	return patients, nil
}

/*
* Storage key for an uploaded file, namespaced by the uploader and the
* upload instant: {uploaderId}/{millis}.{ext}
 */
func BuildStorageKey(uploaderID, filename string, now time.Time) string {
	ext := filename
	if i := strings.LastIndex(filename, "."); i >= 0 {
		ext = filename[i+1:]
	}
	return fmt.Sprintf("%s/%d.%s", uploaderID, now.UnixMilli(), ext)
}

/*
* Decide the stored reference for an upload
* A missing or zero-byte file yields a null file_url and file_type
* Otherwise the key is namespaced under the uploader
 */
func recordFileReference(uploaderID string, file *multipart.FileHeader, now time.Time) (fileURL, fileType *string) {
	if file == nil || file.Size == 0 {
		return nil, nil
	}
	key := BuildStorageKey(uploaderID, file.Filename, now)
	fileURL = &key
	if contentType := file.Header.Get("Content-Type"); contentType != "" {
		fileType = &contentType
	}
	return fileURL, fileType
}

type UploadRecordInput struct {
	PatientID    string
	Title        string
	Description  string
	Diagnosis    string
	Prescription string
	File         *multipart.FileHeader
}

/*
* Require a selected patient and a title
* The patient must appear in the caller's appointment history
* Store the file first when one was attached, then insert the record
* A missing or zero-byte file still succeeds with a null file_url
 */
func UploadRecord(c *gin.Context, input UploadRecordInput) (*models.MedicalRecord, error) {
	doctorID, err := getUserID(c)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.PatientID) == "" {
		return nil, errors.New(util.MISSING_PATIENT)
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.New(util.MISSING_TITLE)
	}

	ids, err := fetchDoctorPatientIDs(c, doctorID)
	if err != nil {
		return nil, err
	}
	known := false
	for _, id := range ids {
		if id == input.PatientID {
			known = true
			break
		}
	}
	if !known {
		return nil, errors.New(util.PATIENT_NOT_IN_APPOINTMENTS)
	}

	fileURL, fileType := recordFileReference(doctorID, input.File, time.Now())
	if fileURL != nil {
		contentType := ""
		if fileType != nil {
			contentType = *fileType
		}
		if err := storeFile(c, *fileURL, contentType, input.File); err != nil {
			log.Println("Error while storing record file:", err)
			return nil, err
		}
	}

	record := models.MedicalRecord{
		PatientID:    input.PatientID,
		DoctorID:     doctorID,
		Title:        input.Title,
		Description:  input.Description,
		Diagnosis:    input.Diagnosis,
		Prescription: input.Prescription,
		FileURL:      fileURL,
		FileType:     fileType,
		CreatedAt:    time.Now(),
	}
	result, err := db.OpenCollection(util.MedicalRecordCollection).InsertOne(c, &record)
	if err != nil {
		log.Println("Error while creating medical record:", err)
		return nil, err
	}
	log.Println("Medical record inserted:", result.InsertedID)
	return &record, nil
}

func storeFile(c *gin.Context, key, contentType string, header *multipart.FileHeader) error {
	bucket, err := db.MedicalFilesBucket()
	if err != nil {
		return err
	}
	src, err := header.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	opts := options.GridFSUpload().SetMetadata(bson.M{"content_type": contentType})
	stream, err := bucket.OpenUploadStream(key, opts)
	if err != nil {
		return err
	}
	if _, err := io.Copy(stream, src); err != nil {
		stream.Close()
		return err
	}
	return stream.Close()
}

/*
* Records joined with both participants' display data, newest first,
* then scoped to the caller's side by resolved role
 */
func FetchRecords(c *gin.Context) ([]models.MedicalRecordView, error) {
	userID, err := getUserID(c)
	if err != nil {
		return nil, err
	}
	profile, err := FetchProfile(c, userID)
	if err != nil {
		return nil, err
	}

	filter := bson.M{}
	if profile.Role == models.RoleDoctor {
		filter["doctor_id"] = userID
	} else {
		filter["patient_id"] = userID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := db.OpenCollection(util.MedicalRecordCollection).Find(c, filter, opts)
	if err != nil {
		log.Println("Error while fetching medical records:", err)
		return nil, err
	}
	var records []models.MedicalRecord
	if err := cursor.All(c, &records); err != nil {
		log.Println("Error while decoding medical records:", err)
		return nil, err
	}

	views := make([]models.MedicalRecordView, 0, len(records))
	for _, r := range records {
		views = append(views, models.MedicalRecordView{
			MedicalRecord: r,
			Patient:       patientDisplay(c, r.PatientID),
			Doctor:        doctorDisplay(c, r.DoctorID),
		})
	}
	return views, nil
}

// RecordFile is an opened download of a stored record file.
type RecordFile struct {
	Stream      *gridfs.DownloadStream
	Length      int64
	ContentType string
	Title       string
}

/*
* Re-fetch the stored blob for a record the caller participates in
 */
func DownloadRecordFile(c *gin.Context, recordID string) (*RecordFile, error) {
	userID, err := getUserID(c)
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return nil, errors.New(util.RECORD_NOT_FOUND)
	}
	var record models.MedicalRecord
	err = db.OpenCollection(util.MedicalRecordCollection).
		FindOne(c, bson.M{"_id": oid}).Decode(&record)
	if err != nil {
		log.Println("Error while fetching record for download:", err)
		return nil, errors.New(util.RECORD_NOT_FOUND)
	}
	if record.PatientID != userID && record.DoctorID != userID {
		return nil, errors.New(util.INVALID_USER_TO_ACCESS)
	}
	if record.FileURL == nil {
		return nil, errors.New(util.RECORD_HAS_NO_FILE)
	}

	bucket, err := db.MedicalFilesBucket()
	if err != nil {
		return nil, err
	}
	stream, err := bucket.OpenDownloadStreamByName(*record.FileURL)
	if err != nil {
		log.Println("Error while opening download stream:", err)
		return nil, err
	}

	contentType := "application/octet-stream"
	if record.FileType != nil {
		contentType = *record.FileType
	}
	return &RecordFile{
		Stream:      stream,
		Length:      stream.GetFile().Length,
		ContentType: contentType,
		Title:       record.Title,
	}, nil
}
