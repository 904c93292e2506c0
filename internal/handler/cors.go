package handler

import "github.com/gin-gonic/gin"

// CORS sets the headers the browser upload flow needs on every
// response from the upload group. Preflight requests are answered by
// the explicit OPTIONS routes.
func CORS(allowOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowOrigin)
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Next()
	}
}
