package http

import (
	"net/http"
	"time"

	"github.com/skillforge/backend/pkg/httpx"
)

type HealthHandler struct {
	StartTime time.Time
	Version   string
}

type healthData struct {
	Uptime    string    `json:"uptime"`
	Version   string    `json:"version,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httpx.WriteDataMessage(w, http.StatusOK, "SkillForge API is running", healthData{
		Uptime:    time.Since(h.StartTime).Round(time.Second).String(),
		Version:   h.Version,
		Timestamp: time.Now().UTC(),
	})
}
