package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/lending-service/lending/internal/model"
)

func (h *Handler) ListBooks(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	filter := model.BookFilter{
		Query:    c.QueryParam("query"),
		Category: c.QueryParam("category"),
	}
	books, err := h.lendingSvc.ListBooks(c.Request().Context(), caller, filter)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) Categories(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	categories, err := h.lendingSvc.Categories(c.Request().Context(), caller)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *Handler) AddBook(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.lendingSvc.AddBook(c.Request().Context(), caller, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) EditBook(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	id, err := bookIDParam(c)
	if err != nil {
		return err
	}
	var req model.EditBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.ID = id
	book, err := h.lendingSvc.EditBook(c.Request().Context(), caller, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	id, err := bookIDParam(c)
	if err != nil {
		return err
	}
	if err := h.lendingSvc.DeleteBook(c.Request().Context(), caller, id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
