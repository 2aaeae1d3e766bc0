package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/app"
	"github.com/CleanExpo/RestoreAssist-sub016/internal/domain"
)

// APIHandler serves the REST surface of the interview service.
type APIHandler struct {
	service *app.InterviewService
}

func NewAPIHandler(service *app.InterviewService) *APIHandler {
	return &APIHandler{service: service}
}

// Router assembles the versioned REST API plus the websocket endpoint.
func Router(service *app.InterviewService) http.Handler {
	api := NewAPIHandler(service)
	ws := NewWSHandler(service)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", api.handleHealth)
	r.Get("/ws", ws.ServeWS)

	r.Route("/api/v1", func(r chi.Router) {
		// Interview connections on /ws stay open for the whole walkthrough,
		// so the request timeout applies to the REST surface only.
		r.Use(middleware.Timeout(60 * time.Second))
		r.Get("/plans", api.handlePlan)
		r.Route("/interviews", func(r chi.Router) {
			r.Post("/", api.handleStart)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", api.handleDescribe)
				r.Delete("/", api.handleAbandon)
				r.Post("/answers", api.handleAnswer)
				r.Get("/next", api.handleNext)
				r.Get("/populations", api.handlePopulations)
			})
		})
	})

	return r
}

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: false,
		Error:   &apiError{Code: code, Message: message},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("encode error response: %v", err)
	}
}

func (h *APIHandler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *APIHandler) handlePlan(w http.ResponseWriter, r *http.Request) {
	interview, err := interviewContextFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	plan, err := h.service.Plan(r.Context(), interview)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, plan)
}

func (h *APIHandler) handleStart(w http.ResponseWriter, r *http.Request) {
	var interview domain.InterviewContext
	if err := json.NewDecoder(r.Body).Decode(&interview); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if interview.JobType == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "jobType is required")
		return
	}
	if interview.UserTier == "" {
		interview.UserTier = domain.TierStandard
	}

	started, err := h.service.Start(r.Context(), interview)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, started)
}

type answerRequest struct {
	QuestionID string             `json:"questionId"`
	Value      domain.AnswerValue `json:"value"`
}

func (h *APIHandler) handleAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.QuestionID == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "questionId is required")
		return
	}

	result, err := h.service.SubmitAnswer(r.Context(), sessionID, req.QuestionID, req.Value)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *APIHandler) handleNext(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	question, err := h.service.NextQuestion(r.Context(), sessionID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nextPayload{Completed: question == nil, Question: question})
}

func (h *APIHandler) handleDescribe(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	view, err := h.service.Describe(r.Context(), sessionID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (h *APIHandler) handlePopulations(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	populations, err := h.service.Populations(r.Context(), sessionID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, populations)
}

func (h *APIHandler) handleAbandon(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if err := h.service.Abandon(r.Context(), sessionID); err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *APIHandler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "session_not_found", err.Error())
	case errors.Is(err, domain.ErrQuestionNotFound):
		respondError(w, http.StatusNotFound, "question_not_found", err.Error())
	case errors.Is(err, domain.ErrSessionCompleted):
		respondError(w, http.StatusConflict, "session_completed", err.Error())
	case errors.Is(err, domain.ErrUnknownJobType):
		respondError(w, http.StatusBadRequest, "unknown_job_type", err.Error())
	case errors.Is(err, domain.ErrLibraryNotFound):
		log.Printf("library missing: %v", err)
		respondError(w, http.StatusInternalServerError, "library_unavailable", "question library is not seeded")
	case errors.Is(err, domain.ErrInvalidLibrary):
		log.Printf("library rejected: %v", err)
		respondError(w, http.StatusInternalServerError, "invalid_library", "question library failed validation")
	default:
		log.Printf("interview api error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "unexpected error")
	}
}

// interviewContextFromQuery builds the job context shared by the plan
// endpoint and the websocket handshake. The tier defaults to standard;
// postcode and userId ride along untouched.
func interviewContextFromQuery(r *http.Request) (domain.InterviewContext, error) {
	q := r.URL.Query()
	jobType := domain.JobType(q.Get("jobType"))
	if jobType == "" {
		return domain.InterviewContext{}, errors.New("missing jobType")
	}
	tier := domain.SubscriptionTier(q.Get("tier"))
	if tier == "" {
		tier = domain.TierStandard
	}
	return domain.InterviewContext{
		JobType:  jobType,
		Postcode: q.Get("postcode"),
		UserTier: tier,
		UserID:   q.Get("userId"),
	}, nil
}
