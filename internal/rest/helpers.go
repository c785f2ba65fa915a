package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goliatone/go-langlink/internal/content"
)

var errInvalidID = errors.New("rest: item id must be a positive integer")

type errorResponse struct {
	Error   string                    `json:"error"`
	Message string                    `json:"message,omitempty"`
	Issues  []content.ValidationIssue `json:"issues,omitempty"`
}

func joinPath(base, suffix string) string {
	trimmedBase := strings.TrimSpace(base)
	trimmedSuffix := strings.TrimSpace(suffix)
	if trimmedBase == "" {
		if trimmedSuffix == "" {
			return "/"
		}
		return "/" + strings.Trim(trimmedSuffix, "/")
	}
	baseClean := "/" + strings.Trim(trimmedBase, "/")
	if trimmedSuffix == "" {
		return baseClean
	}
	if baseClean == "/" {
		return "/" + strings.Trim(trimmedSuffix, "/")
	}
	return baseClean + "/" + strings.Trim(trimmedSuffix, "/")
}

func decodeJSON(r *http.Request, target any) error {
	if r == nil || r.Body == nil {
		return io.EOF
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	return decoder.Decode(target)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status, payload := mapError(err)
	writeJSON(w, status, payload)
}

func mapError(err error) (int, errorResponse) {
	if err == nil {
		return http.StatusInternalServerError, errorResponse{Error: "unknown_error"}
	}

	var notFound *content.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound, errorResponse{Error: "not_found", Message: notFound.Error()}
	}
	if errors.Is(err, content.ErrContentTypeRequired) || errors.Is(err, ErrUnknownContentType) {
		return http.StatusNotFound, errorResponse{Error: "unknown_type", Message: err.Error()}
	}
	if errors.Is(err, content.ErrSlugExists) {
		return http.StatusConflict, errorResponse{Error: "conflict", Message: err.Error()}
	}
	if errors.Is(err, content.ErrSchemaValidation) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
			Issues:  content.Issues(err),
		}
	}
	if errors.Is(err, content.ErrTitleRequired) ||
		errors.Is(err, content.ErrSlugInvalid) ||
		errors.Is(err, content.ErrItemIDRequired) ||
		errors.Is(err, errInvalidBody) ||
		errors.Is(err, errInvalidID) {
		return http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()}
	}

	return http.StatusInternalServerError, errorResponse{Error: "internal_error", Message: err.Error()}
}

func parseID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func parseIntQuery(value string, defaultValue int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed < 0 {
		return defaultValue
	}
	return parsed
}
