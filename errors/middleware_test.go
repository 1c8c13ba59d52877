package errors_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/dieticians/errors"
)

var _ = Describe("CustomHTTPErrorHandler", func() {
	var e *echo.Echo
	var rec *httptest.ResponseRecorder
	var ec echo.Context

	BeforeEach(func() {
		e = echo.New()
		rec = httptest.NewRecorder()
		ec = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	})

	It("renders wrapped http errors without a body", func() {
		errors.CustomHTTPErrorHandler(fmt.Errorf("dietician %w", errors.NotFound), ec)
		Expect(rec.Code).To(Equal(http.StatusNotFound))
		Expect(rec.Body.Len()).To(BeZero())
	})

	It("renders message errors with a message body", func() {
		err := errors.NewMessageError(errors.Duplicate, "email already in use.")
		errors.CustomHTTPErrorHandler(err, ec)
		Expect(rec.Code).To(Equal(http.StatusConflict))
		Expect(rec.Body.String()).To(MatchJSON(`{"message":"email already in use."}`))
	})

	It("renders validation errors as a field map", func() {
		err := errors.NewValidationError()
		err.Add("firstName", "is required")
		err.Add("email", "must be a valid email address")
		errors.CustomHTTPErrorHandler(fmt.Errorf("invalid dietician: %w", err), ec)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(rec.Body.String()).To(MatchJSON(`{"firstName":"is required","email":"must be a valid email address"}`))
	})

	It("keeps the first reason reported for a field", func() {
		err := errors.NewValidationError()
		err.Add("email", "is required")
		err.Add("email", "must be a valid email address")
		Expect(err.Fields).To(HaveKeyWithValue("email", "is required"))
		Expect(err.Error()).To(Equal("validation failed: email: is required"))
	})

	It("falls back to the default handler for unknown errors", func() {
		errors.CustomHTTPErrorHandler(fmt.Errorf("connection reset"), ec)
		Expect(rec.Code).To(Equal(http.StatusInternalServerError))
	})
})
