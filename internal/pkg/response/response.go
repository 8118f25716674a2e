package response

import "github.com/gin-gonic/gin"

func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error emits the failure shape every endpoint shares: a JSON body with a
// single message field.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
