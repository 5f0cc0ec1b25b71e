package controllers

import (
	"net/http"

	"medwebcare/config/authorization"
	"medwebcare/services"
	"medwebcare/util"

	"github.com/gin-gonic/gin"
)

func Doctor(router *gin.Engine) {
	doctors := router.Group("doctors")
	{
		doctors.GET("", FetchDoctors)
		doctors.POST("/profile", authorization.RequireRole("doctor"), CreateDoctorProfile)
	}
}

/*
* Fetch the public directory and apply the optional substring query
 */
func FetchDoctors(c *gin.Context) {
	doctors, err := services.FetchDoctorDirectory(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	filtered := services.FilterDoctors(doctors, c.Query("q"))
	c.JSON(http.StatusOK, util.SuccessResponse(filtered))
}

/*
* Bind the setup form and pass to the service
 */
func CreateDoctorProfile(c *gin.Context) {
	var input services.DoctorProfileInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	profile, err := services.CreateDoctorProfile(c, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(profile))
}
