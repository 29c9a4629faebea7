package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/orbitln/orbithub/api"
	"github.com/orbitln/orbithub/config"
	"github.com/orbitln/orbithub/constants"
	"github.com/orbitln/orbithub/history"
	"github.com/orbitln/orbithub/ledger"
	"github.com/orbitln/orbithub/logger"
)

type jwtCustomClaims struct {
	jwt.RegisteredClaims
}

type HttpService struct {
	api api.API
	cfg *config.AppConfig
}

func NewHttpService(api api.API, cfg *config.AppConfig) *HttpService {
	return &HttpService{
		api: api,
		cfg: cfg,
	}
}

func (httpSvc *HttpService) RegisterSharedRoutes(e *echo.Echo) {
	e.HideBanner = true

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "no-referrer",
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogRemoteIP:  true,
		LogUserAgent: true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, values middleware.RequestLoggerValues) error {
			logger.HttpLogger.Info().
				Str("uri", values.URI).
				Int("status", values.Status).
				Str("remote_ip", values.RemoteIP).
				Str("user_agent", values.UserAgent).
				Str("request_id", values.RequestID).
				Msg("handled API request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.GET("/api/health", httpSvc.healthHandler)

	// allow one auth attempt per second
	authRateLimiter := middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(1))
	e.POST("/api/auth", httpSvc.authHandler, authRateLimiter)

	restricted := e.Group("/api", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(httpSvc.cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return &jwtCustomClaims{}
		},
	}))

	restricted.GET("/history", httpSvc.listHistoryHandler)
	restricted.POST("/history/sync", httpSvc.syncHistoryHandler)
	restricted.GET("/liquidity/options", httpSvc.listLiquidityOptionsHandler)
	restricted.GET("/liquidity/options/:id/fee", httpSvc.estimateLiquidityFeeHandler)
}

func (httpSvc *HttpService) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, httpSvc.api.Health())
}

func (httpSvc *HttpService) authHandler(c echo.Context) error {
	var authRequest api.AuthRequest
	if err := c.Bind(&authRequest); err != nil {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Code:    constants.ERROR_BAD_REQUEST,
			Message: "Failed to parse auth request",
		})
	}

	if httpSvc.cfg.UnlockPassword == "" || authRequest.UnlockPassword != httpSvc.cfg.UnlockPassword {
		return c.JSON(http.StatusUnauthorized, api.ErrorResponse{
			Code:    constants.ERROR_UNAUTHORIZED,
			Message: "Invalid unlock password",
		})
	}

	claims := &jwtCustomClaims{
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(httpSvc.cfg.JWTSecret))
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to sign auth token")
		return c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Code:    constants.ERROR_INTERNAL,
			Message: "Failed to sign token",
		})
	}

	return c.JSON(http.StatusOK, api.AuthTokenResponse{Token: signedToken})
}

func (httpSvc *HttpService) listHistoryHandler(c echo.Context) error {
	filter := history.Filter{}

	if onchain := c.QueryParam("onchain"); onchain != "" {
		onChainOnly, err := strconv.ParseBool(onchain)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Code:    constants.ERROR_BAD_REQUEST,
				Message: "Invalid onchain filter",
			})
		}
		filter.OnChainOnly = onChainOnly
	}
	if flowParam := c.QueryParam("flow"); flowParam != "" {
		flow, err := ledger.ParseFlow(flowParam)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Code:    constants.ERROR_BAD_REQUEST,
				Message: err.Error(),
			})
		}
		filter.Flow = &flow
	}
	if statusParam := c.QueryParam("status"); statusParam != "" {
		status, err := ledger.ParseStatus(statusParam)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Code:    constants.ERROR_BAD_REQUEST,
				Message: err.Error(),
			})
		}
		filter.Status = &status
	}

	return c.JSON(http.StatusOK, httpSvc.api.ListHistory(filter))
}

func (httpSvc *HttpService) syncHistoryHandler(c echo.Context) error {
	var syncHistoryRequest api.SyncHistoryRequest
	if err := c.Bind(&syncHistoryRequest); err != nil {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Code:    constants.ERROR_BAD_REQUEST,
			Message: "Failed to parse sync request",
		})
	}

	response, err := httpSvc.api.SyncHistory(&syncHistoryRequest)
	if err != nil {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Code:    constants.ERROR_BAD_REQUEST,
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, response)
}

func (httpSvc *HttpService) listLiquidityOptionsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, httpSvc.api.ListLiquidityOptions())
}

func (httpSvc *HttpService) estimateLiquidityFeeHandler(c echo.Context) error {
	amountSat, err := strconv.ParseInt(c.QueryParam("amount_sat"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Code:    constants.ERROR_BAD_REQUEST,
			Message: "Invalid amount_sat",
		})
	}

	response, err := httpSvc.api.EstimateLiquidityFee(c.Param("id"), amountSat)
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidAmount) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Code:    constants.ERROR_BAD_REQUEST,
				Message: err.Error(),
			})
		}
		return c.JSON(http.StatusNotFound, api.ErrorResponse{
			Code:    constants.ERROR_NOT_FOUND,
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, response)
}
