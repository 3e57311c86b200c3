package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"content-planner/config"
	"content-planner/dto"
	"content-planner/export"
	"content-planner/logger"
	"content-planner/models"
	"content-planner/planner"
	"content-planner/store"
)

const sessionCookie = "planner_session"

// sessionID returns the caller's session identifier, minting one when the
// cookie is absent.
func sessionID(c *gin.Context) string {
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	return id
}

// OptionsHandler godoc
// @Summary      List planner options
// @Description  Selectable frequencies, weekdays, platforms, tones and models
// @Tags         plans
// @Produce      json
// @Success      200  {object}  dto.OptionsDTO
// @Router       /options [get]
func OptionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := config.GetConfig()

		frequencies := make([]string, 0, len(models.Frequencies))
		for _, f := range models.Frequencies {
			frequencies = append(frequencies, string(f))
		}

		c.JSON(http.StatusOK, dto.OptionsDTO{
			Frequencies: frequencies,
			WeekDays:    models.WeekDays,
			Platforms:   cfg.Planner.Platforms,
			Tones:       cfg.Planner.Tones,
			Models:      cfg.Planner.Models,
		})
	}
}

// GeneratePlanHandler godoc
// @Summary      Generate a content plan
// @Description  Computes the posting schedule, fills each slot with an idea and stores the plan as the session's current plan
// @Tags         plans
// @Accept       json
// @Param        request  body  dto.GeneratePlanRequestDTO  true  "Plan inputs"
// @Produce      json
// @Success      201  {object}  dto.PlanDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /plans [post]
func GeneratePlanHandler(svc *planner.Service, plans *store.PlanStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.GeneratePlanRequestDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		req, err := in.ToPlanRequest()
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		progress := func(done, total int) {
			logger.Log.Debugf("generating plan rows %d/%d", done, total)
		}

		plan, err := svc.BuildPlan(c.Request.Context(), req, progress)
		if err != nil {
			if isValidationError(err) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_generate_plan"})
			return
		}

		plans.Replace(sessionID(c), plan)
		c.JSON(http.StatusCreated, dto.NewPlanDTO(*plan))
	}
}

// GetCurrentPlanHandler godoc
// @Summary      Get the current plan
// @Description  Returns the plan retained for this session
// @Tags         plans
// @Produce      json
// @Success      200  {object}  dto.PlanDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /plans/current [get]
func GetCurrentPlanHandler(plans *store.PlanStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		plan, ok := plans.Current(sessionID(c))
		if !ok {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "no_plan_generated"})
			return
		}
		c.JSON(http.StatusOK, dto.NewPlanDTO(*plan))
	}
}

// ExportPlanHandler godoc
// @Summary      Download the current plan
// @Description  Serializes the session's plan as CSV or XLSX
// @Tags         plans
// @Param        format  query  string  false  "csv (default) or xlsx"
// @Produce      octet-stream
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /plans/current/export [get]
func ExportPlanHandler(plans *store.PlanStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		plan, ok := plans.Current(sessionID(c))
		if !ok {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "no_plan_generated"})
			return
		}

		switch c.DefaultQuery("format", "csv") {
		case "csv":
			data, err := export.ToCSVBytes(plan)
			if err != nil {
				c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "export_failed"})
				return
			}
			c.Header("Content-Disposition", `attachment; filename="content_calendar.csv"`)
			c.Data(http.StatusOK, "text/csv; charset=utf-8", data)

		case "xlsx":
			data, err := export.ToXLSXBytes(plan)
			if err != nil {
				logger.Log.Errorf("xlsx export failed: %v", err)
				c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "export_failed"})
				return
			}
			c.Header("Content-Disposition", `attachment; filename="content_calendar.xlsx"`)
			c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)

		default:
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "unsupported_format"})
		}
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, planner.ErrMissingTopic) ||
		errors.Is(err, planner.ErrMissingAudience) ||
		errors.Is(err, planner.ErrNoPlatforms) ||
		errors.Is(err, planner.ErrInvalidDuration) ||
		errors.Is(err, planner.ErrBadFrequency)
}
