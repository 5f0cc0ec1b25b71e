package controllers

import (
	"errors"
	"net/http"

	"medwebcare/config/authorization"
	"medwebcare/services"
	"medwebcare/util"

	"github.com/gin-gonic/gin"
)

func Profile(router *gin.Engine) {
	router.PATCH("/profile", UpdateProfile)
	router.GET("/dashboard/patient", authorization.RequireRole("patient"), FetchPatientDashboard)
	router.GET("/dashboard/doctor", authorization.RequireRole("doctor"), FetchDoctorDashboard)
}

/*
* An identity without a profile row routes back to sign-in instead of
* surfacing an error
 */
func redirectIfNoProfile(c *gin.Context, err error) bool {
	if errors.Is(err, services.ErrNoProfile) {
		c.Redirect(http.StatusTemporaryRedirect, util.AuthRoute)
		c.Abort()
		return true
	}
	return false
}

/*
* Bind the settings form and pass to the service
 */
func UpdateProfile(c *gin.Context) {
	var input services.ProfileUpdateInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	updated, err := services.UpdateProfile(c, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(updated))
}

func FetchPatientDashboard(c *gin.Context) {
	dashboard, err := services.FetchPatientDashboard(c)
	if err != nil {
		if redirectIfNoProfile(c, err) {
			return
		}
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(dashboard))
}

func FetchDoctorDashboard(c *gin.Context) {
	dashboard, err := services.FetchDoctorDashboard(c)
	if err != nil {
		if redirectIfNoProfile(c, err) {
			return
		}
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(dashboard))
}
