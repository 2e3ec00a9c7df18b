package utils

import (
	"io"

	"github.com/rangekit/rangefetch/internal/log"
)

// CloseOrWarn closes the given resource and logs a warning on failure.
func CloseOrWarn(file io.Closer) {
	if err := file.Close(); err != nil {
		log.Warnf("Failed to close file: %v", err)
	}
}
