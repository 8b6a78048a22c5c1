package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/pkg/auth"
	md "github.com/Astemirdum/lending-service/pkg/middleware"
	"github.com/Astemirdum/lending-service/pkg/validate"
)

type Handler struct {
	lendingSvc LendingService
	secret     []byte
	log        *zap.Logger
}

func New(lendingSvc LendingService, log *zap.Logger, authCfg auth.Config) *Handler {
	return &Handler{
		lendingSvc: lendingSvc,
		secret:     []byte(authCfg.Secret),
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestID(),
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.NewRateLimiter(apiRPS),
		md.JwtAuthentication(h.secret),
	)

	api.GET("/books", h.ListBooks)
	api.POST("/books", h.AddBook)
	api.PATCH("/books/:bookId", h.EditBook)
	api.DELETE("/books/:bookId", h.DeleteBook)
	api.GET("/categories", h.Categories)

	api.POST("/borrow/request", h.RequestBorrow)
	api.POST("/borrow/confirm", h.BorrowConfirm)
	api.POST("/return/request", h.RequestReturn)
	api.POST("/return/confirm", h.ReturnConfirm)

	api.GET("/transactions", h.ListLoans)
	api.GET("/user/transactions", h.ListUserLoans)
	api.GET("/user/fines", h.FineSummary)
	api.POST("/fines/request", h.RequestFinePayment)
	api.POST("/fines/decide", h.DecideFinePayment)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func callerFrom(c echo.Context) (model.Caller, error) {
	id, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return model.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return model.Caller{ID: id.UserID, Role: model.Role(id.Role)}, nil
}

func bookIDParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("bookId"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "bookId is invalid")
	}
	return id, nil
}

// httpError maps service error kinds to status codes.
func (h *Handler) httpError(err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrUnavailable):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidInput):
		code = http.StatusBadRequest
	default:
		h.log.Error("internal", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
	return echo.NewHTTPError(code, err.Error())
}
