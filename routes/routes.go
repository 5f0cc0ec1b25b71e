package routes

import (
	"medwebcare/config/authorization"
	"medwebcare/controllers"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	//public
	controllers.Auth(r)
	//privateroutes
	r.Use(authorization.JWTAuth())
	controllers.Profile(r)
	controllers.Doctor(r)
	controllers.Appointment(r)
	controllers.MedicalRecord(r)
	controllers.VideoCall(r)
}
