package http

import (
	"strings"

	"clinic-support-router/internal/router"
)

const maxQueryLen = 2000

// --- Request DTOs ---

type queryReq struct {
	Query string `json:"query" binding:"required"`
}

func (r *queryReq) validate() error {
	r.Query = strings.TrimSpace(r.Query)
	if r.Query == "" {
		return errQueryRequired
	}
	if len([]rune(r.Query)) > maxQueryLen {
		return errQueryTooLong
	}
	return nil
}

// --- Response DTOs ---

type classificationResp struct {
	Intent    string `json:"intent"`
	Source    string `json:"source"`
	Valid     bool   `json:"valid"`
	Raw       string `json:"raw,omitempty"`
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

type routeResp struct {
	Answer         string             `json:"answer"`
	Intent         string             `json:"intent"`
	Source         string             `json:"source"`
	Classification classificationResp `json:"classification"`
}

func (h *handler) newClassificationResp(c router.Classification) classificationResp {
	resp := classificationResp{
		Intent:    string(c.Intent),
		Source:    string(c.Source),
		Valid:     c.Valid,
		Raw:       c.Raw,
		LatencyMs: c.Latency.Milliseconds(),
	}
	if c.Err != nil {
		resp.Error = c.Err.Error()
	}
	return resp
}

func (h *handler) newRouteResp(o router.Output) routeResp {
	return routeResp{
		Answer:         o.Answer,
		Intent:         string(o.Intent),
		Source:         string(o.Source),
		Classification: h.newClassificationResp(o.Classification),
	}
}
