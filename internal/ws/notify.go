package ws

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type JobPostedEvent struct {
	Type        string `json:"type"`
	JobID       string `json:"job_id"`
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Timestamp   string `json:"timestamp"`
}

// NotifyJobPosted announces a newly published job to every open connection.
func (h *Hub) NotifyJobPosted(jobID uuid.UUID, title, companyName string) {
	if h == nil || jobID == uuid.Nil {
		return
	}

	evt := JobPostedEvent{
		Type:        "job_posted",
		JobID:       jobID.String(),
		Title:       strings.TrimSpace(title),
		CompanyName: strings.TrimSpace(companyName),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		h.logger.Warn("ws job_posted marshal failed", zap.Error(err))
		return
	}

	h.Broadcast(b)
}
