package controllers

import (
	"net/http"

	"medwebcare/services"
	"medwebcare/util"

	"github.com/gin-gonic/gin"
)

func VideoCall(router *gin.Engine) {
	call := router.Group("call")
	{
		call.POST("/start", StartCall)
		call.POST("/:sessionId/mute", ToggleMute)
		call.POST("/:sessionId/video", ToggleVideo)
		call.POST("/:sessionId/messages", SendCallMessage)
		call.GET("/:sessionId/messages", FetchCallMessages)
		call.POST("/:sessionId/end", EndCall)
	}
}

/*
* Acquire camera and microphone for a new session
* A device error surfaces as a failure with no retained stream
 */
func StartCall(c *gin.Context) {
	session, err := services.Calls.Start(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(session))
}

func ToggleMute(c *gin.Context) {
	session, err := services.Calls.ToggleMute(c.GetString("userId"), c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(session))
}

func ToggleVideo(c *gin.Context) {
	session, err := services.Calls.ToggleVideo(c.GetString("userId"), c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(session))
}

type callMessageInput struct {
	Text   string `json:"text" binding:"required"`
	Sender string `json:"sender"`
}

func SendCallMessage(c *gin.Context) {
	var input callMessageInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	message, err := services.Calls.SendMessage(
		c.GetString("userId"), c.Param("sessionId"), input.Text, input.Sender)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(message))
}

func FetchCallMessages(c *gin.Context) {
	messages, err := services.Calls.Messages(c.GetString("userId"), c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(messages))
}

/*
* Close the session, every track is released on this path
 */
func EndCall(c *gin.Context) {
	if err := services.Calls.End(c.GetString("userId"), c.Param("sessionId")); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("call ended"))
}
