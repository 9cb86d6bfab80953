package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TrainingHandler holds the training service dependency.
type TrainingHandler struct {
	trainingService service.TrainingService
	locale          domain.Locale // used when the request has no ?lang=
}

// NewTrainingHandler creates a new TrainingHandler.
func NewTrainingHandler(trainingService service.TrainingService, locale domain.Locale) *TrainingHandler {
	return &TrainingHandler{trainingService: trainingService, locale: locale}
}

// --- DTOs for API (Data Transfer Objects) ---

// TrainingPackageRequest is one sensor packet, e.g. {"type":"RUN","data":[15000,1,75]}.
type TrainingPackageRequest struct {
	Type string    `json:"type" binding:"required"`
	Data []float64 `json:"data" binding:"required"`
}

// BatchRequest wraps several packets processed in order.
type BatchRequest struct {
	Packages []TrainingPackageRequest `json:"packages" binding:"required,dive"`
}

// TrainingInfoResponse is the DTO for one computed summary.
type TrainingInfoResponse struct {
	ID           string  `json:"id"`
	TrainingType string  `json:"trainingType"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
	Message      string  `json:"message"`
}

// BatchItemResponse holds either a summary or the reason the packet was rejected.
type BatchItemResponse struct {
	Type  string                `json:"type"`
	Info  *TrainingInfoResponse `json:"info,omitempty"`
	Error string                `json:"error,omitempty"`
}

// MapInfoToResponse converts a domain.InfoMessage to TrainingInfoResponse DTO.
func MapInfoToResponse(info *domain.InfoMessage, locale domain.Locale) TrainingInfoResponse {
	if info == nil {
		return TrainingInfoResponse{}
	}
	return TrainingInfoResponse{
		ID:           uuid.NewString(),
		TrainingType: info.TrainingType,
		Duration:     info.Duration,
		Distance:     info.Distance,
		Speed:        info.Speed,
		Calories:     info.Calories,
		Message:      info.Format(locale),
	}
}

// MapResultsToResponse converts batch results to response items, keeping their order.
func MapResultsToResponse(results []service.Result, locale domain.Locale) []BatchItemResponse {
	items := make([]BatchItemResponse, 0, len(results))
	for _, r := range results {
		item := BatchItemResponse{Type: r.Package.WorkoutType}
		if r.Err != nil {
			item.Error = r.Err.Error()
		} else {
			resp := MapInfoToResponse(r.Info, locale)
			item.Info = &resp
		}
		items = append(items, item)
	}
	return items
}

func (r TrainingPackageRequest) toDomain() domain.Package {
	return domain.Package{WorkoutType: r.Type, Data: r.Data}
}

// --- Handler Methods ---

// GetTrainingInfo computes the summary of one packet.
// POST /api/v1/trainings/info[?lang=ru]
func (h *TrainingHandler) GetTrainingInfo(c *gin.Context) {
	locale, ok := h.requestLocale(c)
	if !ok {
		return
	}

	var req TrainingPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	info, err := h.trainingService.ShowTrainingInfo(c.Request.Context(), req.toDomain())
	if err != nil {
		abortWithError(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, MapInfoToResponse(info, locale))
}

// GetBatchTrainingInfo computes summaries for several packets in order.
// With a skipping service a rejected packet's item carries the error; otherwise
// the first rejected packet fails the whole request.
// POST /api/v1/trainings/batch[?lang=ru]
func (h *TrainingHandler) GetBatchTrainingInfo(c *gin.Context) {
	locale, ok := h.requestLocale(c)
	if !ok {
		return
	}

	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	pkgs := make([]domain.Package, 0, len(req.Packages))
	for _, p := range req.Packages {
		pkgs = append(pkgs, p.toDomain())
	}

	results, err := h.trainingService.ProcessPackages(c.Request.Context(), pkgs)
	if err != nil {
		if c.Request.Context().Err() != nil {
			abortWithError(c, http.StatusServiceUnavailable, "Request cancelled.")
			return
		}
		abortWithError(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": MapResultsToResponse(results, locale)})
}

func (h *TrainingHandler) requestLocale(c *gin.Context) (domain.Locale, bool) {
	lang := c.Query("lang")
	if lang == "" {
		return h.locale, true
	}
	locale, err := domain.ParseLocale(lang)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return "", false
	}
	return locale, true
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownWorkoutType), errors.Is(err, domain.ErrInvalidPackage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
