package utils

import "github.com/gin-gonic/gin"

// ErrorBody is the JSON shape of every non-2xx response.
type ErrorBody struct {
	Error string `json:"error"`
}

func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}
