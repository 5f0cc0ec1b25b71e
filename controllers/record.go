package controllers

import (
	"fmt"
	"net/http"

	"medwebcare/config/authorization"
	"medwebcare/services"
	"medwebcare/util"

	"github.com/gin-gonic/gin"
)

func MedicalRecord(router *gin.Engine) {
	records := router.Group("records")
	{
		records.GET("", FetchRecords)
		records.GET("/patients", authorization.RequireRole("doctor"), FetchRecordPatients)
		records.POST("", authorization.RequireRole("doctor"), UploadRecord)
		records.GET("/:recordId/file", DownloadRecordFile)
	}
}

func FetchRecords(c *gin.Context) {
	records, err := services.FetchRecords(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(records))
}

/*
* Patient selector entries from the caller's appointment history
 */
func FetchRecordPatients(c *gin.Context) {
	patients, err := services.FetchRecordPatients(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(patients))
}

/*
* Multipart upload: form fields plus an optional file
 */
func UploadRecord(c *gin.Context) {
	input := services.UploadRecordInput{
		PatientID:    c.PostForm("patient_id"),
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		Diagnosis:    c.PostForm("diagnosis"),
		Prescription: c.PostForm("prescription"),
	}
	if file, err := c.FormFile("file"); err == nil {
		input.File = file
	}
	record, err := services.UploadRecord(c, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(record))
}

/*
* Stream the stored blob with its recorded media type
 */
func DownloadRecordFile(c *gin.Context) {
	file, err := services.DownloadRecordFile(c, c.Param("recordId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	defer file.Stream.Close()

	headers := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", file.Title),
	}
	c.DataFromReader(http.StatusOK, file.Length, file.ContentType, file.Stream, headers)
}
