package personalization

import (
	"net/http"

	"github.com/Abraxas-365/conecta/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("PERSONALIZATION")

// Error codes
var (
	CodeInvalidEvent   = ErrRegistry.Register("INVALID_EVENT", errx.TypeValidation, http.StatusBadRequest, "Invalid behavior event")
	CodeInvalidPayload = ErrRegistry.Register("INVALID_PAYLOAD", errx.TypeValidation, http.StatusBadRequest, "Invalid request payload")
	CodeQueueFailure   = ErrRegistry.Register("QUEUE_FAILURE", errx.TypeInternal, http.StatusInternalServerError, "Failed to enqueue behavior event")
	CodeStoreFailure   = ErrRegistry.Register("STORE_FAILURE", errx.TypeInternal, http.StatusInternalServerError, "Failed to access personalization store")
)

// Helper functions
func ErrInvalidEvent() *errx.Error {
	return ErrRegistry.New(CodeInvalidEvent)
}

func ErrInvalidPayload() *errx.Error {
	return ErrRegistry.New(CodeInvalidPayload)
}

func ErrQueueFailure() *errx.Error {
	return ErrRegistry.New(CodeQueueFailure)
}

func ErrStoreFailure() *errx.Error {
	return ErrRegistry.New(CodeStoreFailure)
}
