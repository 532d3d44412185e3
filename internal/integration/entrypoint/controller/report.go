package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opsboard/backend/internal/application/usecase/report"
	domainerror "github.com/opsboard/backend/internal/domain/error"
	"github.com/opsboard/backend/internal/integration/entrypoint/dto"
)

// ReportController handles expense report endpoints.
type ReportController struct {
	getDailyReportUseCase  *report.GetDailyReportUseCase
	getPeriodReportUseCase *report.GetPeriodReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	getDailyReportUseCase *report.GetDailyReportUseCase,
	getPeriodReportUseCase *report.GetPeriodReportUseCase,
) *ReportController {
	return &ReportController{
		getDailyReportUseCase:  getDailyReportUseCase,
		getPeriodReportUseCase: getPeriodReportUseCase,
	}
}

// GetDaily handles GET /reports/daily requests. exercise_id, date and
// category_id are all optional; with neither exercise_id nor date, upstream
// resolves the active exercise.
func (c *ReportController) GetDaily(ctx *gin.Context) {
	input := report.GetDailyReportInput{}

	if raw := ctx.Query("exercise_id"); raw != "" {
		exerciseID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "exercise_id must be an integer",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.ExerciseID = &exerciseID
	}

	if raw := ctx.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.Date = &date
	}

	categoryID, ok := parseOptionalID(ctx, "category_id")
	if !ok {
		return
	}
	input.CategoryID = categoryID

	output, err := c.getDailyReportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domainerror.ErrReportNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "No report for the requested day",
				Code:  string(domainerror.ErrCodeReportNotFound),
			})
			return
		}
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: "Failed to fetch daily report",
			Code:  string(domainerror.ErrCodeReportInternalError),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailyReportResponse(output))
}

// GetPeriod handles GET /reports/period requests. start_date and end_date
// are required, at most 90 days apart.
func (c *ReportController) GetPeriod(ctx *gin.Context) {
	start, end, ok := parseDateRange(ctx)
	if !ok {
		return
	}

	categoryID, ok := parseOptionalID(ctx, "category_id")
	if !ok {
		return
	}

	output, err := c.getPeriodReportUseCase.Execute(ctx.Request.Context(), report.GetPeriodReportInput{
		Start:      start,
		End:        end,
		CategoryID: categoryID,
	})
	if err != nil {
		var reportErr *domainerror.ReportError
		if errors.As(err, &reportErr) && reportErr.Code != domainerror.ErrCodeReportInternalError {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: reportErr.Message,
				Code:  string(reportErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: "Failed to fetch period reports",
			Code:  string(domainerror.ErrCodeReportInternalError),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPeriodReportResponse(output))
}

// parseOptionalID reads an optional integer query parameter. On a malformed
// value it writes the error response and reports false.
func parseOptionalID(ctx *gin.Context, name string) (*int64, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: name + " must be an integer",
			Code:  string(domainerror.ErrCodeInvalidCategoryID),
		})
		return nil, false
	}
	return &id, true
}

// parseDateRange reads the required start_date/end_date query parameters.
func parseDateRange(ctx *gin.Context) (time.Time, time.Time, bool) {
	startRaw := ctx.Query("start_date")
	endRaw := ctx.Query("end_date")

	if startRaw == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start_date is required",
			Code:  string(domainerror.ErrCodeMissingStartDate),
		})
		return time.Time{}, time.Time{}, false
	}
	if endRaw == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "end_date is required",
			Code:  string(domainerror.ErrCodeMissingEndDate),
		})
		return time.Time{}, time.Time{}, false
	}

	start, err := time.Parse("2006-01-02", startRaw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("2006-01-02", endRaw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
