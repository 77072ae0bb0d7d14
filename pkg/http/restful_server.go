package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
	"github.com/falahh6/weather-api/pkg/weather"
)

type RestfulServer struct {
	Server           *gin.Engine
	Weather          *weather.Weather
	Policy           *weather.Policy
	RateLimiterStore *weather.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(clientKey string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(clientKey)
	}
}

func (rs *RestfulServer) CheckClientLimiter(clientKey string) bool {
	limiter := rs.GetLimiter(clientKey)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(clientKey string, clientRate float64, clientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(clientKey, rate.Limit(clientRate), clientBurst)
}

func (rs *RestfulServer) policy() *weather.Policy {
	if rs.Policy == nil {
		rs.Policy = weather.DefaultPolicy()
	}
	return rs.Policy
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := rs.Server.Group("/api")
	{
		api.GET("/weather", rs.GetWeather)
		api.GET("/alerts", rs.GetAlerts)
		api.GET("/alerts/:city", rs.GetCityAlerts)
		api.POST("/limiter/:client", rs.PostLimiter)
	}
}
