package auth

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// XStudentIDHeader carries the authenticated caller identity. The gateway
// validates credentials and installs the header; this service only enforces
// ownership on top of it.
const XStudentIDHeader = "X-Student-Id"

const studentIDKey = "studentID"

var ErrStudentID = errors.New("student id is required")

func MiddlewareStudentID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(XStudentIDHeader)
		if raw == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, ErrStudentID.Error())
		}
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid student id")
		}
		c.Set(studentIDKey, id)
		return next(c)
	}
}

func GetStudentID(c echo.Context) (int, error) {
	id, ok := c.Get(studentIDKey).(int)
	if !ok {
		return 0, ErrStudentID
	}
	return id, nil
}
