package response

import "github.com/gin-gonic/gin"

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"status_code"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, APIResponse{
		Success:    true,
		StatusCode: status,
		Data:       data,
	})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, APIResponse{
		Success:    false,
		StatusCode: status,
		Error:      message,
	})
}

// AbortError writes the error envelope and stops the handler chain. Used
// by middleware so its rejections are byte-identical to handler rejections.
func AbortError(c *gin.Context, status int, message string) {
	c.Abort()
	Error(c, status, message)
}
