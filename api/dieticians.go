package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tidepool-org/dieticians/deletions"
	"github.com/tidepool-org/dieticians/dieticians"
	"github.com/tidepool-org/dieticians/errors"
)

func (h *Handler) ListDieticians(ec echo.Context) error {
	if !h.authorizer.HasAdminAccess(ec.Request()) {
		return errors.Forbidden
	}

	list, err := h.dieticians.List(ec.Request().Context())
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewDieticiansDto(list))
}

func (h *Handler) CreateDietician(ec echo.Context) error {
	dto := CreateDieticianJSONRequestBody{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}
	if err := ec.Validate(&dto); err != nil {
		return err
	}

	if !h.authorizer.HasAdminAccess(ec.Request()) {
		return errors.Forbidden
	}

	created, err := h.dieticians.Create(ec.Request().Context(), NewDietician(dto))
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusCreated, NewDieticianDto(created))
}

func (h *Handler) GetDietician(ec echo.Context, dieticianId DieticianId) error {
	dietician, err := h.getAccessibleDietician(ec, dieticianId)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewDieticianDto(dietician))
}

func (h *Handler) UpdateDietician(ec echo.Context, dieticianId DieticianId) error {
	current, err := h.getAccessibleDietician(ec, dieticianId)
	if err != nil {
		return err
	}

	// The path parameter must not be bound into the patch
	patch := UpdateDieticianJSONRequestBody{}
	if err := (&echo.DefaultBinder{}).BindBody(ec, &patch); err != nil {
		return err
	}

	updated, err := h.dieticians.Update(ec.Request().Context(), current, NewPatch(patch))
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewDieticianDto(updated))
}

func (h *Handler) DeleteDietician(ec echo.Context, dieticianId DieticianId) error {
	current, err := h.getAccessibleDietician(ec, dieticianId)
	if err != nil {
		return err
	}

	metadata := deletions.Metadata{DeletedByUserId: getAuthUserId(ec)}
	if err := h.dieticians.Delete(ec.Request().Context(), current, metadata); err != nil {
		return err
	}

	return ec.NoContent(http.StatusNoContent)
}

// getAccessibleDietician returns not found before checking whether the caller may access the dietician
func (h *Handler) getAccessibleDietician(ec echo.Context, dieticianId DieticianId) (*dieticians.Dietician, error) {
	dietician, err := h.dieticians.Get(ec.Request().Context(), dieticianId)
	if err != nil {
		return nil, err
	}
	if !h.authorizer.HasDieticianAccess(ec.Request(), dietician) {
		h.logger.Infow("dietician access denied", "dieticianId", dieticianId, "userId", getAuthUserId(ec))
		return nil, errors.Forbidden
	}

	return dietician, nil
}
