// Package handlers implements the HTTP handlers for the emotion analysis API.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/SinlessRook/BayMax-Backend/internal/server/response"
	"github.com/SinlessRook/BayMax-Backend/pkg/chatparse"
	"github.com/SinlessRook/BayMax-Backend/pkg/emotion"
	"github.com/SinlessRook/BayMax-Backend/pkg/logger"
)

// PredictHandler serves the emotion prediction endpoints
type PredictHandler struct {
	analyzer *emotion.Analyzer
	logger   *logger.Logger
}

// NewPredictHandler creates a new predict handler
func NewPredictHandler(analyzer *emotion.Analyzer, log *logger.Logger) *PredictHandler {
	if log == nil {
		log = logger.GetDefault()
	}
	return &PredictHandler{
		analyzer: analyzer,
		logger:   log,
	}
}

// predictRequest is the request body for POST /predict
type predictRequest struct {
	Text     string `json:"text"`
	Person   string `json:"person"`
	Platform string `json:"platform"`
}

// Home handles GET / as a liveness banner
func (h *PredictHandler) Home(w http.ResponseWriter, r *http.Request) {
	// ServeMux routes every unmatched path here; only the root is valid.
	if r.URL.Path != "/" {
		response.WriteError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodGet {
		response.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	response.WriteMessage(w, http.StatusOK, "Flask API is running!")
}

// Predict handles POST /predict. Transcript platforms return the aggregate
// analysis; the chat platform returns a single templated reply.
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		response.WriteError(w, http.StatusBadRequest, "No text provided")
		return
	}

	platform, err := chatparse.ParsePlatform(req.Platform)
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	log := h.logger.WithContext(r.Context()).WithField("platform", string(platform))

	if platform == chatparse.PlatformChat {
		reply, err := h.analyzer.AnalyzeUtterance(r.Context(), text)
		if err != nil {
			log.WithField("error", err.Error()).Error("utterance analysis failed")
			response.WriteError(w, http.StatusInternalServerError, "emotion analysis failed")
			return
		}

		response.WriteText(w, http.StatusOK, reply)
		return
	}

	result, err := h.analyzer.AnalyzeTranscript(r.Context(), &emotion.TranscriptInput{
		Text:     req.Text,
		Person:   strings.TrimSpace(req.Person),
		Platform: string(platform),
	})
	if err != nil {
		log.WithField("error", err.Error()).Error("transcript analysis failed")
		response.WriteError(w, http.StatusInternalServerError, "emotion analysis failed")
		return
	}

	log.WithFields(map[string]interface{}{
		"messages": result.MessageCount,
		"score":    result.Score,
		"emotion":  string(result.Emotion),
	}).Info("transcript analyzed")

	response.WriteJSON(w, http.StatusOK, result)
}

// Metrics handles GET on the metrics path with analyzer counters
func (h *PredictHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	response.WriteJSON(w, http.StatusOK, h.analyzer.Metrics())
}
