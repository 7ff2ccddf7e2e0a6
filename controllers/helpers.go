package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// parseDate accepts "2006-01-02" or RFC3339 in the server's location.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// respondNotFoundOrError collapses ownership misses and absence into one 404
// so existence is never confirmed to a non-owner.
func respondNotFoundOrError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": notFoundMsg})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
}
