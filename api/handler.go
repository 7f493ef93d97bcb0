package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/mn2tech/studiocmd/command"
	"github.com/mn2tech/studiocmd/listener/middleware"
	"github.com/mn2tech/studiocmd/session"
)

type inputRequest struct {
	Input string `json:"input"`
}

type helpResponse struct {
	HelpText string                       `json:"helpText"`
	Lines    []string                     `json:"lines"`
	Blocks   map[string]command.BlockType `json:"blocks"`
}

type parseResponse struct {
	Command command.Wire `json:"command"`
}

type executeResponse struct {
	Overrides *command.Overrides `json:"overrides,omitempty"`
	HelpText  string             `json:"helpText,omitempty"`
	Command   command.Wire       `json:"command"`
}

type overridesResponse struct {
	Overrides command.Overrides `json:"overrides"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handler struct {
	store  *session.Store
	logger *slog.Logger
}

// NewHandler builds the API routes over store and wraps them in the
// middleware chain described by cfg.
func NewHandler(cfg Config, store *session.Store, logger *slog.Logger) (http.Handler, error) {
	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	h := &handler{store: store, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.health)
	mux.HandleFunc("GET /v1/commands/help", h.help)
	mux.HandleFunc("POST /v1/commands/parse", h.parse)
	mux.HandleFunc("POST /v1/sessions/{id}/commands", h.execute)
	mux.HandleFunc("GET /v1/sessions/{id}/overrides", h.getOverrides)
	mux.HandleFunc("PUT /v1/sessions/{id}/overrides", h.putOverrides)
	mux.HandleFunc("DELETE /v1/sessions/{id}", h.deleteSession)

	chain := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.Logging(logger),
		middleware.Recovery(),
	}

	if len(cfg.CORSOrigins) > 0 {
		chain = append(chain, middleware.CORS(cfg.CORSOrigins...))
	}

	if cfg.RateLimit > 0 {
		chain = append(chain, middleware.RateLimit(cfg.RateLimit, cfg.RateBurst))
	}

	chain = append(chain, middleware.MaxRequestSize(cfg.MaxBodyBytes), middleware.Timeout(cfg.Timeout))

	return middleware.Chain(mux, chain...), nil
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

func (h *handler) help(w http.ResponseWriter, _ *http.Request) {
	blocks := make(map[string]command.BlockType)
	for _, alias := range command.Blocks() {
		blocks[alias.Alias] = alias.Block
	}

	h.writeJSON(w, http.StatusOK, helpResponse{
		HelpText: command.HelpText(),
		Lines:    command.HelpLines(),
		Blocks:   blocks,
	})
}

func (h *handler) parse(w http.ResponseWriter, r *http.Request) {
	var req inputRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.writeJSON(w, http.StatusOK, parseResponse{Command: command.Describe(command.Parse(req.Input))})
}

func (h *handler) execute(w http.ResponseWriter, r *http.Request) {
	var req inputRequest
	if !h.decode(w, r, &req) {
		return
	}

	outcome, err := h.store.Execute(r.Context(), r.PathValue("id"), req.Input)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())

		return
	}

	if outcome.Result.Failed() {
		h.writeError(w, http.StatusUnprocessableEntity, outcome.Result.Err)

		return
	}

	h.writeJSON(w, http.StatusOK, executeResponse{
		Overrides: outcome.Result.Overrides,
		HelpText:  outcome.Result.HelpText,
		Command:   command.Describe(outcome.Command),
	})
}

func (h *handler) getOverrides(w http.ResponseWriter, r *http.Request) {
	overrides, _ := h.store.Get(r.PathValue("id"))

	h.writeJSON(w, http.StatusOK, overridesResponse{Overrides: overrides})
}

func (h *handler) putOverrides(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeBodyError(w, err)

		return
	}

	overrides, err := command.ValidateOverridesJSON(body)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())

		return
	}

	err = h.store.Put(r.PathValue("id"), overrides)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())

		return
	}

	h.writeJSON(w, http.StatusOK, overridesResponse{Overrides: overrides})
}

func (h *handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	if h.store.Delete(r.PathValue("id")) {
		h.logger.InfoContext(r.Context(), "session deleted", "session", r.PathValue("id"))
	}

	w.WriteHeader(http.StatusNoContent)
}

// decode reads a JSON body into v and answers 400 or 413 on failure.
func (h *handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil {
		h.writeBodyError(w, err)

		return false
	}

	return true
}

func (h *handler) writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")

		return
	}

	h.writeError(w, http.StatusBadRequest, "malformed JSON body: "+err.Error())
}

func (h *handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}
