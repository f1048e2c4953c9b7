package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"alcyxob/fitness-coach/internal/schedule"
)

const monthLayout = "2006-01"

// calendarRange reads the requested date range from the query string:
// from/to as YYYY-MM-DD, or month as YYYY-MM. With neither, the month that
// contains the client's today is used.
func calendarRange(c *gin.Context, today func(context.Context) (time.Time, error)) (time.Time, time.Time, bool) {
	fromStr, toStr, monthStr := c.Query("from"), c.Query("to"), c.Query("month")

	switch {
	case fromStr != "" || toStr != "":
		if fromStr == "" || toStr == "" {
			abortWithError(c, http.StatusBadRequest, "Both from and to are required (YYYY-MM-DD).")
			return time.Time{}, time.Time{}, false
		}
		from, err := schedule.ParseDate(fromStr)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD.")
			return time.Time{}, time.Time{}, false
		}
		to, err := schedule.ParseDate(toStr)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD.")
			return time.Time{}, time.Time{}, false
		}
		return from, to, true

	case monthStr != "":
		m, err := time.Parse(monthLayout, monthStr)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid month, expected YYYY-MM.")
			return time.Time{}, time.Time{}, false
		}
		from, to := schedule.MonthRange(m.Year(), m.Month())
		return from, to, true

	default:
		t, err := today(c.Request.Context())
		if err != nil {
			respondError(c, err, "Failed to resolve the current date.")
			return time.Time{}, time.Time{}, false
		}
		from, to := schedule.MonthRange(t.Year(), t.Month())
		return from, to, true
	}
}

// optionalDate parses an optional YYYY-MM-DD value. Empty yields the zero time.
func optionalDate(c *gin.Context, field, value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	d, err := schedule.ParseDate(value)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+field+", expected YYYY-MM-DD.")
		return time.Time{}, false
	}
	return d, true
}
