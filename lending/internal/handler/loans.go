package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/lending-service/lending/internal/model"
)

func (h *Handler) RequestBorrow(c echo.Context) error {
	return h.request(c, h.lendingSvc.RequestBorrow)
}

func (h *Handler) RequestReturn(c echo.Context) error {
	return h.request(c, h.lendingSvc.RequestReturn)
}

type requestFunc func(ctx context.Context, caller model.Caller, req model.BookRequest) (model.Confirmation, error)

func (h *Handler) request(c echo.Context, fn requestFunc) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	var req model.BookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	conf, err := fn(c.Request().Context(), caller, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, conf)
}

func (h *Handler) BorrowConfirm(c echo.Context) error {
	return h.confirm(c, http.StatusCreated, h.lendingSvc.BorrowConfirm)
}

func (h *Handler) ReturnConfirm(c echo.Context) error {
	return h.confirm(c, http.StatusOK, h.lendingSvc.ReturnConfirm)
}

type confirmFunc func(ctx context.Context, caller model.Caller, req model.ConfirmRequest) (model.Loan, error)

func (h *Handler) confirm(c echo.Context, status int, fn confirmFunc) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	var req model.ConfirmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	loan, err := fn(c.Request().Context(), caller, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(status, loan)
}

func (h *Handler) ListLoans(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	loans, err := h.lendingSvc.ListLoans(c.Request().Context(), caller)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) ListUserLoans(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	loans, err := h.lendingSvc.ListUserLoans(c.Request().Context(), caller)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}
