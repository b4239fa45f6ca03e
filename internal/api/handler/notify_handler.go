package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/animationlms/platform-api/internal/core/domain"
	"github.com/animationlms/platform-api/internal/core/ports"
	"github.com/animationlms/platform-api/internal/core/service"
)

// NotifyHandler serves the public notification-signup surface. Response
// envelopes match the original website contract: {"success": ..., and
// either "message" or "data"+"count"}.
type NotifyHandler struct {
	signups ports.SignupService
}

func NewNotifyHandler(signups ports.SignupService) *NotifyHandler {
	return &NotifyHandler{signups: signups}
}

type notifyRequest struct {
	Email     string `json:"email" validate:"required"`
	Phone     string `json:"phone"`
	Timestamp string `json:"timestamp"`
}

type notifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type notifyListResponse struct {
	Success bool                  `json:"success"`
	Data    []domain.SignupRecord `json:"data"`
	Count   int                   `json:"count"`
}

// Create handles POST /notify — stores one signup stamped with the
// "Website" source.
//
// @Summary      Submit a notification signup
// @Tags         notify
// @Accept       json
// @Produce      json
// @Param        body  body      notifyRequest  true  "Signup details"
// @Success      200   {object}  notifyResponse
// @Failure      400   {object}  notifyResponse
// @Failure      500   {object}  notifyResponse
// @Router       /notify [post]
func (h *NotifyHandler) Create(c echo.Context) error {
	var req notifyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, notifyResponse{Success: false, Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, notifyResponse{Success: false, Message: err.Error()})
	}

	err := h.signups.Ingest(c.Request().Context(), ports.SignupInput{
		Email:     req.Email,
		Phone:     req.Phone,
		Timestamp: req.Timestamp,
		Source:    service.DefaultSignupSource,
	})
	if err != nil {
		// The raw store error text is the contract here; the admin UI
		// surfaces it verbatim.
		return c.JSON(http.StatusInternalServerError, notifyResponse{Success: false, Message: err.Error()})
	}

	return c.JSON(http.StatusOK, notifyResponse{
		Success: true,
		Message: "Successfully added to notification list",
	})
}

// List handles GET /notify — the full, unfiltered record set.
//
// @Summary      List notification signups
// @Tags         notify
// @Produce      json
// @Success      200  {object}  notifyListResponse
// @Failure      500  {object}  notifyResponse
// @Router       /notify [get]
func (h *NotifyHandler) List(c echo.Context) error {
	recs, err := h.signups.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, notifyResponse{Success: false, Message: err.Error()})
	}

	return c.JSON(http.StatusOK, notifyListResponse{
		Success: true,
		Data:    recs,
		Count:   len(recs),
	})
}
