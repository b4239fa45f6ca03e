package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/animationlms/platform-api/internal/core/domain"
	"github.com/animationlms/platform-api/internal/core/ports"
)

// SheetsHandler preserves the legacy bulk-import surface that predates the
// document store (it originally targeted a spreadsheet). It writes the same
// collection as /notify but keeps its historical response shapes, with
// errors under "error" instead of "message".
type SheetsHandler struct {
	signups ports.SignupService
}

func NewSheetsHandler(signups ports.SignupService) *SheetsHandler {
	return &SheetsHandler{signups: signups}
}

type sheetsErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type sheetsListResponse struct {
	Success       bool                  `json:"success"`
	Notifications []domain.SignupRecord `json:"notifications"`
}

type sheetsInsertResponse struct {
	Success  bool `json:"success"`
	Inserted int  `json:"inserted"`
}

type sheetsRecord struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
}

// List handles GET /sheets-setup.
//
// @Summary      List signups (legacy surface)
// @Tags         sheets-setup
// @Produce      json
// @Success      200  {object}  sheetsListResponse
// @Failure      500  {object}  sheetsErrorResponse
// @Router       /sheets-setup [get]
func (h *SheetsHandler) List(c echo.Context) error {
	recs, err := h.signups.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, sheetsErrorResponse{Success: false, Error: err.Error()})
	}

	return c.JSON(http.StatusOK, sheetsListResponse{Success: true, Notifications: recs})
}

// BulkInsert handles POST /sheets-setup. The body may be a single record or
// an array of records; both forms are stored in one batch.
//
// @Summary      Bulk-import signups (legacy surface)
// @Tags         sheets-setup
// @Accept       json
// @Produce      json
// @Param        body  body      []sheetsRecord  true  "One record or an array of records"
// @Success      200   {object}  sheetsInsertResponse
// @Failure      400   {object}  sheetsErrorResponse
// @Failure      500   {object}  sheetsErrorResponse
// @Router       /sheets-setup [post]
func (h *SheetsHandler) BulkInsert(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, sheetsErrorResponse{Success: false, Error: "invalid payload"})
	}

	records, err := decodeRecords(body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, sheetsErrorResponse{Success: false, Error: "invalid payload"})
	}

	inputs := make([]ports.SignupInput, 0, len(records))
	for _, rec := range records {
		inputs = append(inputs, ports.SignupInput{
			Email:     rec.Email,
			Phone:     rec.Phone,
			Timestamp: rec.Timestamp,
			Source:    rec.Source,
		})
	}

	inserted, err := h.signups.IngestBatch(c.Request().Context(), inputs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, sheetsErrorResponse{Success: false, Error: err.Error()})
	}

	return c.JSON(http.StatusOK, sheetsInsertResponse{Success: true, Inserted: inserted})
}

// decodeRecords accepts either a JSON object or a JSON array of objects,
// mirroring the original endpoint's lenient contract.
func decodeRecords(body []byte) ([]sheetsRecord, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []sheetsRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		return records, nil
	}

	var rec sheetsRecord
	if err := json.Unmarshal(trimmed, &rec); err != nil {
		return nil, err
	}
	return []sheetsRecord{rec}, nil
}
