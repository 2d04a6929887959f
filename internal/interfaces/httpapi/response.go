package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/store"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

const (
	apiVersion  = "2.0"
	errorDomain = "fantasy-cricket"

	internalErrorMessage = "internal server error"
)

// dataEnvelope has no omitempty on Data: a null result is still sent as "data":null.
type dataEnvelope struct {
	APIVersion string `json:"apiVersion"`
	Data       any    `json:"data"`
}

type errorEnvelope struct {
	APIVersion string    `json:"apiVersion"`
	Error      errorBody `json:"error"`
}

type errorBody struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Status  string        `json:"status"`
	Errors  []errorDetail `json:"errors,omitempty"`
}

type errorDetail struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type errorClass struct {
	code   int
	reason string
	status string
}

var (
	internalClass = errorClass{http.StatusInternalServerError, "internalError", "INTERNAL"}

	// errorClasses is matched in order; the first sentinel found in the chain wins.
	errorClasses = []struct {
		target error
		class  errorClass
	}{
		{usecase.ErrInvalidInput, errorClass{http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"}},
		{usecase.ErrUnauthorized, errorClass{http.StatusUnauthorized, "unauthorized", "UNAUTHENTICATED"}},
		{usecase.ErrForbidden, errorClass{http.StatusForbidden, "forbidden", "PERMISSION_DENIED"}},
		{usecase.ErrNotFound, errorClass{http.StatusNotFound, "notFound", "NOT_FOUND"}},
		{usecase.ErrConflict, errorClass{http.StatusConflict, "conflict", "ABORTED"}},
		{store.ErrUnavailable, errorClass{http.StatusServiceUnavailable, "storeUnavailable", "UNAVAILABLE"}},
		{usecase.ErrDependencyUnavailable, errorClass{http.StatusServiceUnavailable, "dependencyUnavailable", "UNAVAILABLE"}},
	}
)

func classify(err error) errorClass {
	for _, c := range errorClasses {
		if errors.Is(err, c.target) {
			return c.class
		}
	}
	return internalClass
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, dataEnvelope{APIVersion: apiVersion, Data: data})
}

// writeError renders err as an error envelope. Unclassified errors keep their
// text out of the response.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	class := classify(err)
	message := internalErrorMessage
	if class != internalClass {
		message = err.Error()
	}

	writeJSON(ctx, w, class.code, errorEnvelope{
		APIVersion: apiVersion,
		Error: errorBody{
			Code:    class.code,
			Message: message,
			Status:  class.status,
			Errors:  []errorDetail{{Domain: errorDomain, Reason: class.reason, Message: message}},
		},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeError(ctx, w, errors.New(internalErrorMessage))
}
