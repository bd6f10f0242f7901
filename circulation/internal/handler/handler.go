package handler

import (
	"net/http"
	"strconv"

	md "github.com/JoshikaMadhu/Student-Resource-Distribution-System/pkg/middleware"

	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/errs"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/model"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/pkg/auth"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	circulationSvc CirculationService
	log            *zap.Logger
}

func New(circulationSvc CirculationService, log *zap.Logger) *Handler {
	return &Handler{
		circulationSvc: circulationSvc,
		log:            log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		auth.MiddlewareStudentID,
	)

	api.GET("/resources", h.GetResources)
	api.POST("/resources", h.AddResource)
	api.GET("/categories", h.GetCategories)

	api.POST("/requests", h.SubmitRequest)
	api.GET("/requests", h.GetRequests)

	api.GET("/transactions", h.GetTransactions)
	api.POST("/transactions/:transactionId/return", h.ReturnTransaction)

	api.GET("/fines", h.GetFines)
	api.POST("/fines/:fineId/pay", h.PayFine)

	api.GET("/notifications", h.GetNotifications)
	api.POST("/notifications/:notificationId/read", h.MarkNotificationRead)

	api.GET("/dashboard", h.GetDashboard)
	api.GET("/stats", h.GetStats)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) SubmitRequest(c echo.Context) error {
	studentID, err := auth.GetStudentID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.SubmitRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.circulationSvc.SubmitRequest(c.Request().Context(), studentID, req.ResourceID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetRequests(c echo.Context) error {
	studentID, err := auth.GetStudentID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	items, err := h.circulationSvc.ListRequests(c.Request().Context(), studentID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ReturnTransaction(c echo.Context) error {
	studentID, err := auth.GetStudentID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	transactionID, err := strconv.Atoi(c.Param("transactionId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("transactionId is invalid").Error())
	}

	resp, err := h.circulationSvc.ReturnItem(c.Request().Context(), transactionID, studentID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetTransactions(c echo.Context) error {
	studentID, err := auth.GetStudentID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	items, err := h.circulationSvc.ListTransactions(c.Request().Context(), studentID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) PayFine(c echo.Context) error {
	studentID, err := auth.GetStudentID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	fineID, err := strconv.Atoi(c.Param("fineId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("fineId is invalid").Error())
	}

	fine, err := h.circulationSvc.PayFine(c.Request().Context(), fineID, studentID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, fine)
}

func (h *Handler) GetFines(c echo.Context) error {
	studentID, err := auth.GetStudentID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	info, err := h.circulationSvc.ListFines(c.Request().Context(), studentID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, info)
}

func (h *Handler) GetNotifications(c echo.Context) error {
	studentID, err := auth.GetStudentID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	items, err := h.circulationSvc.ListNotifications(c.Request().Context(), studentID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) MarkNotificationRead(c echo.Context) error {
	studentID, err := auth.GetStudentID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	notificationID, err := strconv.Atoi(c.Param("notificationId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("notificationId is invalid").Error())
	}

	if err := h.circulationSvc.MarkNotificationRead(c.Request().Context(), notificationID, studentID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) GetResources(c echo.Context) error {
	if _, err := auth.GetStudentID(c); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	filter := model.ResourceFilter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
	}
	if availableParam := c.QueryParam("availableOnly"); availableParam != "" {
		availableOnly, err := strconv.ParseBool(availableParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("availableOnly is invalid").Error())
		}
		filter.AvailableOnly = availableOnly
	}

	items, err := h.circulationSvc.ListResources(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) AddResource(c echo.Context) error {
	studentID, err := auth.GetStudentID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.AddResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.circulationSvc.AddResource(c.Request().Context(), studentID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) GetCategories(c echo.Context) error {
	items, err := h.circulationSvc.ListCategories(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetDashboard(c echo.Context) error {
	studentID, err := auth.GetStudentID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	info, err := h.circulationSvc.Dashboard(c.Request().Context(), studentID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, info)
}

func (h *Handler) GetStats(c echo.Context) error {
	info, err := h.circulationSvc.Stats(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, info)
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrResourceUnavailable):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrResourceNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrAlreadyReturned), errors.Is(err, errs.ErrAlreadyPaid):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
