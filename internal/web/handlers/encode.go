package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jusunglee/nameencoder/internal/encoder"
	"github.com/jusunglee/nameencoder/internal/metrics"
	"github.com/samber/lo"
)

const (
	maxWordLength = 256
	maxBodyBytes  = 1 << 20
)

type EncodeHandler struct {
	ruleset  string
	pipeline *encoder.Pipeline
	workers  int
	maxBatch int
	log      *slog.Logger
}

func NewEncodeHandler(ruleset string, pipeline *encoder.Pipeline, workers, maxBatch int, log *slog.Logger) *EncodeHandler {
	return &EncodeHandler{
		ruleset:  ruleset,
		pipeline: pipeline,
		workers:  workers,
		maxBatch: maxBatch,
		log:      log,
	}
}

type encodeResponse struct {
	Word string   `json:"word"`
	Code string   `json:"code"`
	Path []string `json:"path,omitempty"`
}

type batchRequest struct {
	Words []string `json:"words"`
	Path  bool     `json:"path"`
}

type batchResponse struct {
	RuleSet string           `json:"ruleset"`
	Results []encodeResponse `json:"results"`
}

type equalResponse struct {
	A     string `json:"a"`
	B     string `json:"b"`
	CodeA string `json:"code_a"`
	CodeB string `json:"code_b"`
	Equal bool   `json:"equal"`
}

func toEncodeResponse(r encoder.Result, withPath bool) encodeResponse {
	resp := encodeResponse{Word: r.Word(), Code: r.Code()}
	if withPath {
		resp.Path = r.Path()
	}
	return resp
}

// Encode handles GET /api/v1/encode?word=...&path=true.
func (h *EncodeHandler) Encode(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	word := q.Get("word")
	if !q.Has("word") {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}
	if len(word) > maxWordLength {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("word must be %d bytes or fewer", maxWordLength))
		return
	}
	withPath, _ := strconv.ParseBool(q.Get("path"))

	result := h.pipeline.Encode(word)
	metrics.WordsEncoded.WithLabelValues(h.ruleset).Inc()

	writeJSON(w, http.StatusOK, toEncodeResponse(result, withPath))
}

// EncodeBatch handles POST /api/v1/encode with a JSON body {"words": [...]}.
func (h *EncodeHandler) EncodeBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Words) == 0 {
		writeError(w, http.StatusBadRequest, "words is required")
		return
	}
	if len(req.Words) > h.maxBatch {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("at most %d words per request", h.maxBatch))
		return
	}
	if _, tooLong := lo.Find(req.Words, func(word string) bool { return len(word) > maxWordLength }); tooLong {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("words must be %d bytes or fewer", maxWordLength))
		return
	}

	start := time.Now()
	results, err := encoder.EncodeAll(r.Context(), h.pipeline, req.Words, h.workers)
	if err != nil {
		h.log.WarnContext(r.Context(), "batch encode aborted", "words", len(req.Words), "error", err)
		writeError(w, http.StatusServiceUnavailable, "request canceled")
		return
	}
	metrics.BatchDuration.WithLabelValues(h.ruleset).Observe(time.Since(start).Seconds())
	metrics.BatchSize.Observe(float64(len(req.Words)))
	metrics.WordsEncoded.WithLabelValues(h.ruleset).Add(float64(len(results)))

	writeJSON(w, http.StatusOK, batchResponse{
		RuleSet: h.ruleset,
		Results: lo.Map(results, func(res encoder.Result, _ int) encodeResponse {
			return toEncodeResponse(res, req.Path)
		}),
	})
}

// Equal handles GET /api/v1/equal?a=...&b=...
func (h *EncodeHandler) Equal(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	a, b := q.Get("a"), q.Get("b")
	if !q.Has("a") || !q.Has("b") {
		writeError(w, http.StatusBadRequest, "a and b are required")
		return
	}
	if len(a) > maxWordLength || len(b) > maxWordLength {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("words must be %d bytes or fewer", maxWordLength))
		return
	}

	codeA := h.pipeline.EncodedName(a)
	codeB := h.pipeline.EncodedName(b)
	metrics.WordsEncoded.WithLabelValues(h.ruleset).Add(2)

	writeJSON(w, http.StatusOK, equalResponse{
		A:     a,
		B:     b,
		CodeA: codeA,
		CodeB: codeB,
		Equal: codeA == codeB,
	})
}
