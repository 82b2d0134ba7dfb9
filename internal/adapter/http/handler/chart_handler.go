package handler

import (
	"strconv"
	"strings"

	"chronos-wallet/internal/adapter/http/dto"
	"chronos-wallet/internal/core/ports"
	"chronos-wallet/pkg/apperror"
	"chronos-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// ChartHandler handles price chart endpoints.
type ChartHandler struct {
	chartSvc ports.ChartService
}

// NewChartHandler creates a new ChartHandler.
func NewChartHandler(chartSvc ports.ChartService) *ChartHandler {
	return &ChartHandler{chartSvc: chartSvc}
}

// GetChart handles GET /api/v1/tokens/:symbol/chart?window=N.
func (h *ChartHandler) GetChart(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))

	windowDays := 1
	if raw := c.Query("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, apperror.Validation("window must be an integer number of days"))
			return
		}
		windowDays = parsed
	}

	result, err := h.chartSvc.GetChart(c.Request.Context(), symbol, windowDays)
	if err != nil {
		response.Error(c, err)
		return
	}

	points := make([]dto.PricePointResponse, 0, len(result.Points))
	for _, p := range result.Points {
		points = append(points, dto.PricePointResponse{
			Timestamp: p.Timestamp,
			Price:     p.Price,
		})
	}

	response.OK(c, dto.ChartResponse{
		Symbol:     result.Symbol,
		WindowDays: result.Window,
		Points:     points,
		Stats: dto.MarketStatsResponse{
			High24h:   result.Stats.High24h,
			Low24h:    result.Stats.Low24h,
			MarketCap: result.Stats.MarketCap,
			Volume24h: result.Stats.Volume24h,
		},
		Source: result.Source,
	})
}
