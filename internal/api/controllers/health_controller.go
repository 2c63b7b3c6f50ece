package controllers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck pings one backing dependency.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type HealthController struct {
	checks []HealthCheck
}

func NewHealthController(checks []HealthCheck) *HealthController {
	sorted := append([]HealthCheck(nil), checks...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return &HealthController{checks: sorted}
}

// Health godoc
// @Summary Service health
// @Description Reports each backing dependency; 503 when any of them is down
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status, code := "ok", http.StatusOK
	deps := gin.H{}
	for _, hc := range h.checks {
		if err := hc.Check(ctx); err != nil {
			deps[hc.Name] = "error: " + err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
			continue
		}
		deps[hc.Name] = "ok"
	}

	c.JSON(code, gin.H{
		"status":       status,
		"service":      "Globe Trotter API",
		"dependencies": deps,
	})
}
