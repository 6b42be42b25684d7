// Package respond writes the uniform response envelope. Every endpoint,
// including failures, answers HTTP 200; problems travel in the envelope's
// error and warnings fields instead of status codes.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/ots-platform/ibe-mock/internal/model"
)

// Envelope builds the base response shape. The payload's keys are merged at
// the top level next to error/warnings/rules/banners.
func Envelope(err *model.ErrorObject, warnings []model.Warning, payload map[string]any) map[string]any {
	if warnings == nil {
		warnings = []model.Warning{}
	}
	out := map[string]any{
		"error":    err,
		"warnings": warnings,
		"rules":    []any{},
		"banners":  []any{},
	}
	for k, v := range payload {
		out[k] = v
	}
	return out
}

func write(w http.ResponseWriter, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response envelope")
	}
}

// WriteOK writes a success envelope with the payload merged in.
func WriteOK(w http.ResponseWriter, payload map[string]any, warnings []model.Warning) {
	write(w, Envelope(nil, warnings, payload))
}

// WriteUnexpected writes the UNEXPECTED_ERROR envelope. Still HTTP 200: the
// clients of this mock read the error object, not the status line.
func WriteUnexpected(w http.ResponseWriter, message string) {
	write(w, Envelope(&model.ErrorObject{
		Code:    model.ErrUnexpected,
		Message: message,
	}, nil, nil))
}
