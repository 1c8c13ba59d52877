package api

import (
	"github.com/labstack/echo/v4"

	"github.com/tidepool-org/dieticians/auth"
)

func getAuthUserId(ec echo.Context) *string {
	data := auth.GetAuthData(ec.Request().Context())
	if data == nil || data.SubjectId == "" {
		return nil
	}

	subjectId := data.SubjectId
	return &subjectId
}
