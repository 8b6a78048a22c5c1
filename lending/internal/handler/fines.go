package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/lending-service/lending/internal/model"
)

func (h *Handler) RequestFinePayment(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	res, err := h.lendingSvc.RequestFinePayment(c.Request().Context(), caller)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) DecideFinePayment(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	var req model.DecideFineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.lendingSvc.DecideFinePayment(c.Request().Context(), caller, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) FineSummary(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	sum, err := h.lendingSvc.FineSummary(c.Request().Context(), caller)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, sum)
}
