package util

import "github.com/gin-gonic/gin"

/*
* Standard success envelope for every controller response
 */
func SuccessResponse(data interface{}) gin.H {
	return gin.H{
		"status": "success",
		"data":   data,
	}
}

/*
* Standard failure envelope, carries the backend error text as-is
 */
func FailedResponse(err error) gin.H {
	return gin.H{
		"status": "failed",
		"error":  err.Error(),
	}
}
