package errors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// ErrorType represents different types of errors
type ErrorType string

const (
	// ErrorTypeMissingContext means no signed-in user or no dog reference;
	// no write is ever attempted for these.
	ErrorTypeMissingContext ErrorType = "missing_context"
	// ErrorTypeValidation means a required field was absent or non-numeric.
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeStoreWrite means the record store rejected a write.
	ErrorTypeStoreWrite ErrorType = "store_write"
	// ErrorTypePartialWrite means the private history write succeeded but
	// the public leaderboard write failed. Reported distinctly so a retry
	// path can be built; never retried automatically.
	ErrorTypePartialWrite ErrorType = "partial_write"
	// ErrorTypeSourceUnavailable means an optional device capability (step
	// source, notification sink) is absent; callers degrade silently.
	ErrorTypeSourceUnavailable ErrorType = "source_unavailable"
	ErrorTypeExternal          ErrorType = "external_api"
	ErrorTypeInternal          ErrorType = "internal"
)

// AppError represents an application error with additional context
type AppError struct {
	Type     ErrorType
	Message  string
	Code     string
	Internal error
	Context  map[string]interface{}
	Source   string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the internal error
func (e *AppError) Unwrap() error {
	return e.Internal
}

// Is checks if the error matches the target
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Type == t.Type && e.Code == t.Code
	}
	return errors.Is(e.Internal, target)
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// LogFields returns structured logging fields
func (e *AppError) LogFields() []interface{} {
	fields := []interface{}{
		"error_type", e.Type,
		"error_code", e.Code,
		"error_message", e.Message,
		"source", e.Source,
	}

	if e.Internal != nil {
		fields = append(fields, "internal_error", e.Internal.Error())
	}

	for k, v := range e.Context {
		fields = append(fields, k, v)
	}

	return fields
}

// New creates a new AppError
func New(errorType ErrorType, code, message string) *AppError {
	_, file, line, _ := runtime.Caller(1)
	source := fmt.Sprintf("%s:%d", file, line)

	return &AppError{
		Type:    errorType,
		Code:    code,
		Message: message,
		Source:  source,
		Context: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error into AppError
func Wrap(err error, errorType ErrorType, code, message string) *AppError {
	_, file, line, _ := runtime.Caller(1)
	source := fmt.Sprintf("%s:%d", file, line)

	return &AppError{
		Type:     errorType,
		Code:     code,
		Message:  message,
		Internal: err,
		Source:   source,
		Context:  make(map[string]interface{}),
	}
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// Handler provides error handling strategies
type Handler struct {
	logger *slog.Logger
}

// NewHandler creates a new error handler
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle processes an error according to its type
func (h *Handler) Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		h.handleAppError(ctx, appErr)
	} else {
		h.handleGenericError(ctx, err)
	}
}

// handleAppError handles AppError instances
func (h *Handler) handleAppError(ctx context.Context, err *AppError) {
	switch err.Type {
	case ErrorTypeMissingContext, ErrorTypeValidation:
		h.logger.WarnContext(ctx, "Rejected before write", err.LogFields()...)
	case ErrorTypeSourceUnavailable:
		h.logger.InfoContext(ctx, "Optional capability absent", err.LogFields()...)
	case ErrorTypePartialWrite:
		h.logger.ErrorContext(ctx, "Partial dual write", err.LogFields()...)
	case ErrorTypeStoreWrite, ErrorTypeExternal, ErrorTypeInternal:
		h.logger.ErrorContext(ctx, "Critical error", err.LogFields()...)
	default:
		h.logger.ErrorContext(ctx, "Unknown error type", err.LogFields()...)
	}
}

// handleGenericError handles generic errors
func (h *Handler) handleGenericError(ctx context.Context, err error) {
	h.logger.ErrorContext(ctx, "Unhandled error", "error", err.Error())
}

// LogAndReturn logs an error and returns it
func (h *Handler) LogAndReturn(ctx context.Context, err error) error {
	h.Handle(ctx, err)
	return err
}

// Convenience constructors for the walk domain
func NewMissingContextError(message string) *AppError {
	return New(ErrorTypeMissingContext, "MISSING_CONTEXT", message)
}

func NewValidationError(message string) *AppError {
	return New(ErrorTypeValidation, "VALIDATION", message)
}

func NewStoreWriteError(err error, collection string) *AppError {
	return Wrap(err, ErrorTypeStoreWrite, "STORE_WRITE", "Record store write failed").
		WithContext("collection", collection)
}

func NewPartialWriteError(err error) *AppError {
	return Wrap(err, ErrorTypePartialWrite, "PARTIAL_WRITE",
		"Private history saved but leaderboard write failed")
}

func NewSourceUnavailableError(source string) *AppError {
	return New(ErrorTypeSourceUnavailable, "SOURCE_UNAVAILABLE",
		fmt.Sprintf("%s is not available on this device", source)).
		WithContext("source", source)
}

func NewInternalError(err error) *AppError {
	return Wrap(err, ErrorTypeInternal, "INTERNAL", "Internal error")
}
