package handler

import (
	"encoding/csv"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/animationlms/platform-api/internal/core/domain"
	"github.com/animationlms/platform-api/internal/core/ports"
)

// AdminHandler serves the super_user-only management surface: the account
// listing and the CSV export of notification signups.
type AdminHandler struct {
	credentials ports.CredentialRepository
	signups     ports.SignupService
}

func NewAdminHandler(credentials ports.CredentialRepository, signups ports.SignupService) *AdminHandler {
	return &AdminHandler{credentials: credentials, signups: signups}
}

type userListResponse struct {
	Users []domain.User `json:"users"`
	Count int           `json:"count"`
}

// ListUsers handles GET /admin/users. Password hashes never leave the
// credential store.
//
// @Summary      List accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userListResponse
// @Failure      403  {object}  map[string]string
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.credentials.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userListResponse{Users: users, Count: len(users)})
}

// ExportSignups handles GET /admin/notifications/export, streaming the full
// signup list as a CSV download.
//
// @Summary      Export signups as CSV
// @Tags         admin
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string  "CSV file"
// @Failure      403  {object}  map[string]string
// @Router       /admin/notifications/export [get]
func (h *AdminHandler) ExportSignups(c echo.Context) error {
	recs, err := h.signups.List(c.Request().Context())
	if err != nil {
		return err
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="notification-signups.csv"`)
	res.WriteHeader(http.StatusOK)

	w := csv.NewWriter(res)
	if err := w.Write([]string{"Email", "Phone", "Signup Date", "Source"}); err != nil {
		return err
	}
	for _, rec := range recs {
		if err := w.Write([]string{rec.Email, rec.Phone, rec.Timestamp, rec.Source}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
