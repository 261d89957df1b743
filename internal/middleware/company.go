package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CompanyMiddleware extracts the company ID from headers.
// SECURITY: No default company fallback - requests without company context are rejected
// NOTE: First checks if company_id was already set by the auth middleware
func CompanyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := c.GetUint("company_id")

		// If not set by auth, try the X-Company-ID header
		if companyID == 0 {
			header := c.GetHeader("X-Company-ID")
			if header != "" {
				parsed, err := strconv.ParseUint(header, 10, 64)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{
						"success": false,
						"error": gin.H{
							"code":    "INVALID_COMPANY_ID",
							"message": "X-Company-ID header must be a numeric company ID.",
						},
					})
					c.Abort()
					return
				}
				companyID = uint(parsed)
			}
		}

		// SECURITY: No default fallback - fail closed
		if companyID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "COMPANY_REQUIRED",
					"message": "Company ID is required. Include the X-Company-ID header.",
				},
			})
			c.Abort()
			return
		}

		c.Set("company_id", companyID)
		c.Next()
	}
}

// GetCompanyID retrieves the company ID from gin context
func GetCompanyID(c *gin.Context) uint {
	return c.GetUint("company_id")
}
