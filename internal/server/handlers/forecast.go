package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/weathermux/weathermux/internal/forecast"
	"github.com/weathermux/weathermux/internal/provider"
	"github.com/weathermux/weathermux/internal/server/utils"
	"go.uber.org/zap"
)

// ForecastService is the slice of the aggregator the HTTP surface needs.
type ForecastService interface {
	Names() []string
	Has(name string) bool
	FetchAll(ctx context.Context, lat, lon float64, names ...string) map[string]provider.Result
	FetchAllByPostcode(ctx context.Context, countryCode, postcode string, names ...string) (map[string]provider.Result, error)
	FetchAllByCityCountry(ctx context.Context, city, country string, names ...string) (map[string]provider.Result, error)
}

type ForecastHandler struct {
	svc    ForecastService
	logger *zap.Logger
}

func NewForecastHandler(svc ForecastService, logger *zap.Logger) *ForecastHandler {
	return &ForecastHandler{
		svc:    svc,
		logger: logger,
	}
}

func (h *ForecastHandler) ByCoordinate(c *gin.Context) {
	ctx := utils.GetContextFromGinContext(c)
	reqLogger := h.requestLogger(c)

	var req CoordinateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		reqLogger.Warn("Invalid request parameters", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request parameters",
			Code:    "INVALID_PARAMS",
			Details: err.Error(),
		})
		return
	}

	if verrs := utils.ValidateStruct(req); len(verrs) > 0 {
		reqLogger.Warn("Coordinate validation failed", zap.Any("errors", verrs))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid coordinates",
			Code:    "INVALID_COORDINATES",
			Details: verrs[0].Message,
		})
		return
	}

	names, ok := h.providerNames(c, req.Providers)
	if !ok {
		return
	}

	reqLogger.Info("Processing forecast request",
		zap.Float64("lat", req.Lat),
		zap.Float64("lon", req.Lon))

	results := h.svc.FetchAll(ctx, req.Lat, req.Lon, names...)
	c.JSON(http.StatusOK, ForecastResponse(results))
}

func (h *ForecastHandler) ByPostcode(c *gin.Context) {
	ctx := utils.GetContextFromGinContext(c)
	reqLogger := h.requestLogger(c)

	var req PostcodeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		reqLogger.Warn("Invalid request parameters", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request parameters",
			Code:    "INVALID_PARAMS",
			Details: err.Error(),
		})
		return
	}

	names, ok := h.providerNames(c, req.Providers)
	if !ok {
		return
	}

	reqLogger.Info("Processing postcode forecast request",
		zap.String("country", req.Country),
		zap.String("postcode", req.Postcode))

	results, err := h.svc.FetchAllByPostcode(ctx, req.Country, req.Postcode, names...)
	if err != nil {
		h.writeResolutionError(c, reqLogger, err)
		return
	}
	c.JSON(http.StatusOK, ForecastResponse(results))
}

func (h *ForecastHandler) ByCityCountry(c *gin.Context) {
	ctx := utils.GetContextFromGinContext(c)
	reqLogger := h.requestLogger(c)

	var req CityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		reqLogger.Warn("Invalid request parameters", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request parameters",
			Code:    "INVALID_PARAMS",
			Details: err.Error(),
		})
		return
	}

	names, ok := h.providerNames(c, req.Providers)
	if !ok {
		return
	}

	reqLogger.Info("Processing city forecast request",
		zap.String("city", req.City),
		zap.String("country", req.Country))

	results, err := h.svc.FetchAllByCityCountry(ctx, req.City, req.Country, names...)
	if err != nil {
		h.writeResolutionError(c, reqLogger, err)
		return
	}
	c.JSON(http.StatusOK, ForecastResponse(results))
}

// Providers lists the registered provider identifiers so callers can
// request a named subset.
func (h *ForecastHandler) Providers(c *gin.Context) {
	c.JSON(http.StatusOK, ProvidersResponse{Providers: h.svc.Names()})
}

func (h *ForecastHandler) requestLogger(c *gin.Context) *zap.Logger {
	if requestID := utils.GetRequestIDFromGinContext(c); requestID != "" {
		return h.logger.With(zap.String("request_id", requestID))
	}
	return h.logger
}

// providerNames parses the optional providers= filter and rejects
// unknown identifiers. The bool reports whether handling may continue.
func (h *ForecastHandler) providerNames(c *gin.Context, raw string) ([]string, bool) {
	if raw == "" {
		return nil, true
	}

	var names []string
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !h.svc.Has(name) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Unknown provider",
				Code:    "UNKNOWN_PROVIDER",
				Details: name,
			})
			return nil, false
		}
		names = append(names, name)
	}
	return names, true
}

func (h *ForecastHandler) writeResolutionError(c *gin.Context, logger *zap.Logger, err error) {
	logger.Warn("Location resolution failed", zap.Error(err))

	status := http.StatusBadGateway
	code := "RESOLUTION_ERROR"

	var fe *forecast.Error
	if errors.As(err, &fe) {
		code = string(fe.Kind)
		switch fe.Kind {
		case forecast.KindInvalidCountryCode:
			status = http.StatusBadRequest
		case forecast.KindPostcodeNotFound, forecast.KindPlaceNotFound:
			status = http.StatusNotFound
		}
	}

	c.JSON(status, ErrorResponse{
		Error:   "Failed to resolve location",
		Code:    code,
		Details: err.Error(),
	})
}
