package favorite

import (
	"net/http"

	"github.com/openhire/jobportal/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("FAVORITE")

// Error codes
var (
	CodeFavoriteNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job is not in favorites")
	CodeAlreadyFavorited = ErrRegistry.Register("ALREADY_FAVORITED", errx.TypeConflict, http.StatusConflict, "Job is already in favorites")
)

// Helper functions
func ErrFavoriteNotFound() *errx.Error {
	return ErrRegistry.New(CodeFavoriteNotFound)
}

func ErrAlreadyFavorited() *errx.Error {
	return ErrRegistry.New(CodeAlreadyFavorited)
}
