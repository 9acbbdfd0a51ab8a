// Package server exposes the simulation engine over HTTP: a JSON API plus
// an embedded interactive page, taking over the role of the original
// interactive front end.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/WouterdeVisser/LangeTermijnBeleggen/internal/config"
	"github.com/WouterdeVisser/LangeTermijnBeleggen/internal/domain"
	"github.com/WouterdeVisser/LangeTermijnBeleggen/internal/logging"
	"github.com/WouterdeVisser/LangeTermijnBeleggen/internal/simulation"
)

//go:embed static/*
var staticFiles embed.FS

const maxRequestBody = 1 << 20 // parameter documents are tiny

type handler struct {
	logger       *zap.Logger
	engine       *simulation.Engine
	parser       *config.InputParser
	maxScenarios int
}

// NewHandler constructs the HTTP handler serving the web UI and the
// simulation API.
func NewHandler(logger *zap.Logger, maxScenarios int) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxScenarios <= 0 {
		maxScenarios = DefaultMaxScenarios
	}

	engine := simulation.NewEngine()
	engine.SetLogger(logging.NewEngineLogger(logger))

	h := &handler{
		logger:       logger,
		engine:       engine,
		parser:       config.NewInputParser(),
		maxScenarios: maxScenarios,
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/simulate", h.handleSimulate).Methods(http.MethodPost)
	r.HandleFunc("/api/defaults", h.handleDefaults).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.handleHealth).Methods(http.MethodGet)

	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	r.PathPrefix("/").Handler(http.FileServer(http.FS(sub)))

	return r
}

type simulateResponse struct {
	*domain.SimulationResult
	Duration string `json:"duration"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var params domain.Parameters
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := decoder.Decode(&params); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	h.parser.ApplyDefaults(&params)

	if params.NumScenarios > h.maxScenarios {
		h.logger.Warn("clamping scenario count",
			zap.Int("requested", params.NumScenarios),
			zap.Int("max", h.maxScenarios),
		)
		params.NumScenarios = h.maxScenarios
	}

	result, err := h.engine.Run(&params)
	if err != nil {
		status := http.StatusInternalServerError
		if isPreconditionError(err) {
			status = http.StatusBadRequest
		}
		h.writeError(w, status, err)
		return
	}

	h.logger.Info("simulation served",
		zap.Int("scenarios", result.NumScenarios),
		zap.Int("years", result.TotalYears),
		zap.Duration("duration", time.Since(start)),
	)
	h.writeJSON(w, http.StatusOK, simulateResponse{
		SimulationResult: result,
		Duration:         time.Since(start).String(),
	})
}

// handleDefaults returns the example parameter set so the UI can seed its
// controls.
func (h *handler) handleDefaults(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.parser.CreateExampleParameters())
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *handler) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
	} else {
		h.logger.Debug("request rejected", zap.Error(err))
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func isPreconditionError(err error) bool {
	return errors.Is(err, domain.ErrInvalidSchedule) ||
		errors.Is(err, domain.ErrInvalidDistribution) ||
		errors.Is(err, domain.ErrInvalidPercentileRequest) ||
		errors.Is(err, domain.ErrEmptyResultSet)
}

// ListenAndServe runs the server until SIGINT/SIGTERM, then shuts down
// gracefully.
func ListenAndServe(cfg *Config, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      NewHandler(logger, cfg.MaxScenarios),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("address", cfg.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
