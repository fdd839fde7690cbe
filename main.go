package main

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/orian/stringlab/models"
)

// Server handles HTTP requests and coordinates the analyzer, the
// query interpreter and the record store.
type Server struct {
	storage models.Storage
	log     *zap.SugaredLogger
}

func NewServer(storage models.Storage, log *zap.SugaredLogger) *Server {
	return &Server{
		storage: storage,
		log:     log,
	}
}

func (s *Server) handleCreateString(w http.ResponseWriter, r *http.Request) {
	value, err := parseCreateRequest(r.Body)
	if err != nil {
		writeError(w, statusForError(err), err)
		return
	}

	record := models.Analyze(value)
	if err := s.storage.Create(record); err != nil {
		writeError(w, statusForError(err), err)
		return
	}

	s.log.Infow("analyzed string",
		"fingerprint", shortID(record.Fingerprint),
		"length", record.Properties.Length,
		"palindrome", record.Properties.IsPalindrome,
	)
	writeJSON(w, http.StatusCreated, record)
}

func (s *Server) handleGetString(w http.ResponseWriter, r *http.Request) {
	key := storeKey(r)

	record, ok := s.storage.Get(key)
	if !ok {
		writeError(w, http.StatusNotFound, errors.Wrapf(models.ErrNotFound, "value %q", key))
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleListStrings(w http.ResponseWriter, r *http.Request) {
	filters, err := parseListFilters(r.URL.Query())
	if err != nil {
		writeError(w, statusForError(err), err)
		return
	}

	records := filters.Apply(s.storage.List())
	writeJSON(w, http.StatusOK, buildListResponse(records, filters))
}

func (s *Server) handleQueryStrings(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "invalid JSON body"))
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, errors.Wrapf(models.ErrMissingQuery, "field %q is required", "query"))
		return
	}

	filters, err := models.Interpret(req.Query)
	if err != nil {
		if errors.Is(err, models.ErrConflictingFilters) {
			// Show the (empty) parsed result so the caller sees that
			// interpretation happened but produced an impossible window.
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":         err.Error(),
				"parsedFilters": &models.FilterSet{},
				"originalQuery": req.Query,
			})
			return
		}
		writeError(w, statusForError(err), err)
		return
	}

	records := filters.Apply(s.storage.List())
	s.log.Infow("interpreted query", "query", req.Query, "matches", len(records))
	writeJSON(w, http.StatusOK, buildQueryResponse(records, filters, req.Query))
}

func (s *Server) handleDeleteString(w http.ResponseWriter, r *http.Request) {
	key := storeKey(r)

	if err := s.storage.Delete(key); err != nil {
		writeError(w, statusForError(err), err)
		return
	}

	s.log.Infow("deleted record", "value", key)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, computeStats(s.storage.List()))
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"records":   s.storage.Count(),
		"timestamp": time.Now().Unix(),
	})
}

// storeKey extracts the record key from the URL path. Keys are raw
// trimmed values, so callers URL-escape them; chi hands the segment
// back still escaped.
func storeKey(r *http.Request) string {
	raw := chi.URLParam(r, "value")
	if key, err := url.PathUnescape(raw); err == nil {
		return key
	}
	return raw
}

// statusForError maps the shared error vocabulary onto HTTP status
// codes. Everything unrecognized is treated as client input.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// shortID truncates a fingerprint to 8 characters for logging.
func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// NewRouter wires the API routes with the standard middleware stack.
func NewRouter(server *Server) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Route("/api", func(r chi.Router) {
		r.Route("/strings", func(r chi.Router) {
			r.Get("/", server.handleListStrings)
			r.Post("/", server.handleCreateString)
			r.Post("/query", server.handleQueryStrings)
			r.Get("/{value}", server.handleGetString)
			r.Delete("/{value}", server.handleDeleteString)
		})

		r.Get("/stats", server.handleStats)
		r.Get("/server/ping", server.handlePing)
	})

	return r
}

func newLogger(dev bool) (*zap.SugaredLogger, error) {
	if dev {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		return logger.Sugar(), nil
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func run(cmd *cobra.Command, args []string) error {
	log, err := newLogger(viper.GetBool("dev"))
	if err != nil {
		return errors.Wrap(err, "failed to build logger")
	}
	defer log.Sync()

	storage := NewMemoryStorage()
	defer storage.Close()

	server := NewServer(storage, log)
	addr := viper.GetString("addr")

	log.Infow("starting server", "addr", addr)
	if err := http.ListenAndServe(addr, NewRouter(server)); err != nil {
		return errors.Wrap(err, "server failed")
	}
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "stringlab",
		Short: "String analysis HTTP service",
		Long:  "stringlab analyzes text strings and serves their derived properties from an in-memory store.",
		RunE:  run,
	}

	rootCmd.Flags().String("addr", ":8080", "HTTP listen address")
	rootCmd.Flags().Bool("dev", false, "Human-readable console logs")

	viper.SetEnvPrefix("STRINGLAB")
	viper.AutomaticEnv()
	viper.BindPFlag("addr", rootCmd.Flags().Lookup("addr"))
	viper.BindPFlag("dev", rootCmd.Flags().Lookup("dev"))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
