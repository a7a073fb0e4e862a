package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

var (
	ErrUnauthorized = errors.New("missing or invalid session token")
	ErrForbidden    = errors.New("token does not grant access to this game session")
)

func SendJSON(w http.ResponseWriter, statusCode int, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return w.Write(payload)
}

func sendJSONOrLog(w http.ResponseWriter, logger *slog.Logger, statusCode int, v any) {
	_, err := SendJSON(w, statusCode, v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error(
			"unable to send response",
			slog.Any("response", v),
			slog.Any("error", err),
		)
	}
}

func sendErrorOrLog(w http.ResponseWriter, logger *slog.Logger, statusCode int, e error) {
	sendJSONOrLog(w, logger, statusCode, wrapError(e))
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}

func Health(w http.ResponseWriter, r *http.Request) {
	SendJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
