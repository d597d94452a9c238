package matching

import (
	"net/http"

	"github.com/Abraxas-365/conecta/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("MATCHING")

// Error codes
var (
	CodeCandidateNotFound = ErrRegistry.Register("CANDIDATE_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Candidate not found")
	CodeJobNotFound       = ErrRegistry.Register("JOB_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found")
	CodeJobNotPublished   = ErrRegistry.Register("JOB_NOT_PUBLISHED", errx.TypeBusiness, http.StatusConflict, "Job is not published")
	CodeInvalidPayload    = ErrRegistry.Register("INVALID_PAYLOAD", errx.TypeValidation, http.StatusBadRequest, "Invalid request payload")
)

// Helper functions
func ErrCandidateNotFound() *errx.Error {
	return ErrRegistry.New(CodeCandidateNotFound)
}

func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrJobNotPublished() *errx.Error {
	return ErrRegistry.New(CodeJobNotPublished)
}

func ErrInvalidPayload() *errx.Error {
	return ErrRegistry.New(CodeInvalidPayload)
}
