package server

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/domain"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/benchmarks"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/history"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/rates"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/report"
)

// auditRequest is the body of POST /api/audit. Profile carries the raw
// survey fields; UsageBreakdown is optional and skips the inference call
// when the caller already has a prediction.
type auditRequest struct {
	Profile        domain.HomeProfile      `json:"profile"`
	UsageBreakdown *domain.UsageBreakdown  `json:"usage_breakdown,omitempty"`
	AvgMonthlyBill float64                 `json:"avg_monthly_bill,omitempty"`
	CustomRates    map[string]float64      `json:"custom_rates,omitempty"`
}

// actualUsageRequest is the body of POST /api/audit/{id}/actual.
type actualUsageRequest struct {
	ActualKBTU float64 `json:"actual_kbtu"`
}

// handleAudit runs the full audit pipeline for one home.
func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	var req auditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Profile) == 0 {
		s.writeError(w, http.StatusBadRequest, "profile is required")
		return
	}

	utilityRates := rates.Resolve(req.Profile.Division(), req.CustomRates)

	var usage domain.UsageBreakdown
	if req.UsageBreakdown != nil && req.UsageBreakdown.Total > 0 {
		usage = *req.UsageBreakdown
	} else {
		predicted, err := s.inference.PredictUsage(r.Context(), req.Profile)
		if err != nil {
			s.log.Error().Err(err).Msg("Usage prediction failed")
			s.writeError(w, http.StatusBadGateway, "usage prediction unavailable: "+err.Error())
			return
		}
		usage = predicted
	}

	usage = report.BlendWithBill(usage, req.AvgMonthlyBill, utilityRates)

	candidates := s.engine.GenerateRecommendations(req.Profile, usage, usage.Total, utilityRates)
	recs := s.formatter.FormatAll(candidates)
	rep := s.assembler.Build(req.Profile, usage, recs, utilityRates)

	s.persistAudit(rep, req.Profile, usage)

	s.writeJSON(w, http.StatusOK, rep)
}

// persistAudit stores the summary row and prediction record. Storage
// failures are logged but never fail the audit response.
func (s *Server) persistAudit(rep report.FullReport, profile domain.HomeProfile, usage domain.UsageBreakdown) {
	if s.history != nil {
		_, err := s.history.Save(history.AuditSummary{
			UUID:                rep.AuditID,
			Division:            profile.Division(),
			Sqft:                profile.SquareFootage(),
			TotalKBTU:           usage.Total,
			EnergyScore:         rep.EnergyScore.Overall,
			Grade:               rep.EnergyScore.Grade,
			RecommendationCount: len(rep.Recommendations),
			TotalAnnualSavings:  float64(rep.Financial.TotalAnnualSavings),
		})
		if err != nil {
			s.log.Error().Err(err).Msg("Failed to store audit summary")
		}
	}

	if s.accuracy != nil {
		if _, err := s.accuracy.Record(rep.AuditID, usage.Total); err != nil {
			s.log.Error().Err(err).Msg("Failed to record prediction")
		}
	}
}

// handleReportActual attaches a homeowner-reported annual usage figure to
// an earlier audit's prediction.
func (s *Server) handleReportActual(w http.ResponseWriter, r *http.Request) {
	auditID := chi.URLParam(r, "id")

	var req actualUsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.ActualKBTU <= 0 {
		s.writeError(w, http.StatusBadRequest, "actual_kbtu must be positive")
		return
	}

	if err := s.accuracy.ReportActual(auditID, req.ActualKBTU); err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}

// handleRates returns the resolved rate set for a division. Query params:
// division (free-form census division string).
func (s *Server) handleRates(w http.ResponseWriter, r *http.Request) {
	division := r.URL.Query().Get("division")
	s.writeJSON(w, http.StatusOK, rates.Resolve(division, nil).All())
}

// handleBenchmarks returns the regional EUI benchmark table.
func (s *Server) handleBenchmarks(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"eui":          benchmarks.All(),
		"net_zero_eui": benchmarks.NetZeroEUI,
	})
}

// handleHistory lists recent audit summaries.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.history.Recent(50)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to load audit history")
		s.writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	if summaries == nil {
		summaries = []history.AuditSummary{}
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":  len(summaries),
		"audits": summaries,
	})
}

// handleAccuracy returns rolling prediction accuracy metrics.
func (s *Server) handleAccuracy(w http.ResponseWriter, r *http.Request) {
	metrics, err := s.tracker.Summary()
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to compute accuracy summary")
		s.writeError(w, http.StatusInternalServerError, "failed to compute accuracy")
		return
	}
	s.writeJSON(w, http.StatusOK, metrics)
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":  "healthy",
		"version": "1.0.0",
		"service": "energy-audit",
	}

	s.writeJSON(w, http.StatusOK, response)
}

// handleSystemStatus handles system status requests
func (s *Server) handleSystemStatus(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	inferenceUp := false
	if s.inference != nil {
		inferenceUp = s.inference.Healthy(r.Context())
	}

	response := map[string]interface{}{
		"status":            "running",
		"uptime_seconds":    int(time.Since(s.startedAt).Seconds()),
		"inference_service": inferenceUp,
		"memory": map[string]interface{}{
			"alloc_mb":       m.Alloc / 1024 / 1024,
			"total_alloc_mb": m.TotalAlloc / 1024 / 1024,
			"sys_mb":         m.Sys / 1024 / 1024,
			"num_gc":         m.NumGC,
		},
		"goroutines": runtime.NumGoroutine(),
	}

	s.writeJSON(w, http.StatusOK, response)
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
