package errors

import (
	"errors"

	"github.com/labstack/echo/v4"
)

func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		respond(c, c.JSON(BadRequest.Code, validationErr.Fields))
		return
	}

	var messageErr MessageError
	if errors.As(err, &messageErr) {
		respond(c, c.JSON(messageErr.Code, ErrorResponse{Message: messageErr.Message}))
		return
	}

	e := HttpError{}
	if errors.As(err, &e) {
		respond(c, c.NoContent(e.Code))
		return
	}

	c.Echo().DefaultHTTPErrorHandler(err, c)
}

func respond(c echo.Context, err error) {
	if err != nil {
		c.Logger().Error(err)
	}
}
