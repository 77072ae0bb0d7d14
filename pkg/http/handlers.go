package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/falahh6/weather-api/pkg/common"
	"github.com/falahh6/weather-api/pkg/models"
)

type AlertResponse struct {
	City      string `json:"city"`
	AlertType string `json:"alertType"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
}

// GetWeather triggers an ingestion cycle for every configured city. Cities
// that fail are reported alongside the successes; the request only fails as a
// whole when nothing could be ingested.
func (rs *RestfulServer) GetWeather(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	report, err := rs.Weather.Ingest.IngestAll(c.Request.Context(), rs.policy())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch or store weather data"})
		return
	}
	if len(report.Data) == 0 {
		// every city failed; nothing worth a 200
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch or store weather data"})
		return
	}

	resp := gin.H{
		"message": "Weather data saved successfully",
		"data":    report.Data,
	}
	if len(report.Failed) > 0 {
		resp["failed"] = report.Failed
	}

	c.JSON(http.StatusOK, resp)
}

// GetAlerts runs the alert evaluation sweep over all stored summaries.
func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	alerts, err := rs.Weather.Alert.EvaluateAndStoreAlerts(rs.policy())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate alerts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Alerts generated successfully",
		"alerts": common.Mapper(alerts, func(alert models.Alert) AlertResponse {
			return AlertResponse{
				City:      alert.City,
				AlertType: alert.Type,
				Severity:  string(alert.Severity),
				Message:   alert.Message,
			}
		}),
	})
}

func (rs *RestfulServer) GetCityAlerts(c *gin.Context) {
	city := c.Param("city")

	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var alerts []models.Alert
	var err error
	if alerts, err = rs.Weather.Alert.GetCityAlerts(city); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch alerts"})
		return
	}

	c.JSON(http.StatusOK, alerts)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	client := c.Param("client")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(client, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
