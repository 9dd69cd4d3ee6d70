package download

import "errors"

// Domain errors for model retrieval.
var (
	// ErrInvalidURL indicates a malformed or non-HTTP model URL.
	ErrInvalidURL = errors.New("invalid model url")

	// ErrUnsupportedType indicates a model file that is not STL or 3MF.
	ErrUnsupportedType = errors.New("only STL/3MF supported")

	// ErrModelTooLarge indicates the model exceeds the configured size cap.
	ErrModelTooLarge = errors.New("model too large")

	// ErrDownloadFailed indicates a transport or upstream status failure.
	ErrDownloadFailed = errors.New("model download failed")
)
