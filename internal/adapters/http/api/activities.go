package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mergington/activities/pkg/logger"
)

var errMissingEmail = errors.New("email query parameter is required")

// ActivitiesHandler serves the activity directory and roster mutations.
type ActivitiesHandler struct {
	deps   ActivityDependencies
	logger logger.Logger
}

// NewActivitiesHandler creates a new activities handler.
func NewActivitiesHandler(deps ActivityDependencies, log logger.Logger) *ActivitiesHandler {
	return &ActivitiesHandler{deps: deps, logger: log}
}

// HandleList handles GET /activities.
func (h *ActivitiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_activities"
	acts, err := h.deps.ListActivities(r.Context())
	if err != nil {
		h.fail(w, r, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, acts)
}

// HandleGet handles GET /activities/{name}.
func (h *ActivitiesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_activity"
	a, err := h.deps.GetActivity(r.Context(), r.PathValue("name"))
	if err != nil {
		h.fail(w, r, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// HandleSignup handles POST /activities/{name}/signup?email=E.
func (h *ActivitiesHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	const op = "api.signup"
	email, err := emailParam(op, r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	msg, err := h.deps.Signup(r.Context(), r.PathValue("name"), email)
	if err != nil {
		h.fail(w, r, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

// HandleUnregister handles DELETE /activities/{name}/unregister?email=E.
func (h *ActivitiesHandler) HandleUnregister(w http.ResponseWriter, r *http.Request) {
	const op = "api.unregister"
	email, err := emailParam(op, r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	msg, err := h.deps.Unregister(r.Context(), r.PathValue("name"), email)
	if err != nil {
		h.fail(w, r, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

// emailParam returns the email query parameter. Blank values are rejected.
func emailParam(op string, r *http.Request) (string, error) {
	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		return "", WrapKind(op, ErrValidation, errMissingEmail)
	}
	return email, nil
}

func (h *ActivitiesHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(r.Context(), "request failed", logger.Error(err), logger.String("path", r.URL.Path))
	} else {
		h.logger.Debug(r.Context(), "request rejected", logger.Error(err), logger.Int("status", status))
	}
	writeError(w, status, detail)
}
