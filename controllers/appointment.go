package controllers

import (
	"net/http"

	"medwebcare/config/authorization"
	"medwebcare/services"
	"medwebcare/util"

	"github.com/gin-gonic/gin"
)

func Appointment(router *gin.Engine) {
	appointments := router.Group("appointments")
	{
		appointments.POST("", authorization.RequireRole("patient"), BookAppointment)
		appointments.GET("", FetchAppointments)
	}
}

/*
* Bind the booking form and pass to the service
* Validation failures never reach the database
 */
func BookAppointment(c *gin.Context) {
	var input services.BookingInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	appointment, err := services.BookAppointment(c, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appointment))
}

/*
* Role-scoped listing, pass to the service
 */
func FetchAppointments(c *gin.Context) {
	appointments, err := services.FetchAppointments(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appointments))
}
