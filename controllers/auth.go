package controllers

import (
	"net/http"

	"medwebcare/config/authorization"
	"medwebcare/services"
	"medwebcare/util"

	"github.com/gin-gonic/gin"
)

func Auth(router *gin.Engine) {
	router.POST("/auth/signup", SignUp)
	router.POST("/auth/signin", SignIn)
	router.POST("/auth/guest", GuestSignIn)
	router.POST("/auth/signout", authorization.JWTAuth(), SignOut)
}

/*
* Bind the sign-up fields and pass to the service
 */
func SignUp(c *gin.Context) {
	var input services.SignUpInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	result, err := services.SignUp(c, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(result))
}

/*
* Bind the sign-in fields and pass to the service
 */
func SignIn(c *gin.Context) {
	var input services.SignInInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	result, err := services.SignIn(c, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(result))
}

/*
* Anonymous browsing lands on the patient dashboard
 */
func GuestSignIn(c *gin.Context) {
	result, err := services.GuestSignIn(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(result))
}

func SignOut(c *gin.Context) {
	if err := services.SignOut(c); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	services.Calls.EndAll(c.GetString("userId"))
	c.JSON(http.StatusOK, util.SuccessResponse("signed out"))
}
