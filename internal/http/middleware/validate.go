package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/fleetsvc/internal/validation"
)

// ValidateBody runs an endpoint's declarative rule set over the JSON
// request body before the handler sees it. Every failing rule is
// accumulated; a non-empty error list halts the pipeline with a single
// structured 400 and the handler is never invoked. The body is restored
// so the handler can bind it again.
func ValidateBody(rules validation.RuleSet) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "could not read request body"})
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))

		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "request body must be valid JSON"})
			c.Abort()
			return
		}

		if errs := rules.Validate(body); len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "validation failed",
				"errors":  errs,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// ValidateIDParam rejects requests whose :id path parameter is not a
// positive integer.
func ValidateIDParam() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !validation.ValidID(c.Param("id")) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "validation failed",
				"errors": []validation.FieldError{{
					Field:   "id",
					Rule:    "integerMin",
					Message: "must be a positive integer",
				}},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
