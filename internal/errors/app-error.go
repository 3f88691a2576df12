package app_errors

// AppError is the single error currency of the core: a coarse code, a stable
// type tag, an i18n message key and optional per-field details.
type AppError struct {
	Code       int          // coarse HTTP-style code, kept for the UI layer
	Type       string       // VALIDATION_ERROR, NOT_FOUND, usw
	MessageKey string       // i18n key
	Details    []FieldError // optional (validation)
	Err        error        // original error (internal only)
}

const (
	ErrValidation   = "VALIDATION_ERROR"
	ErrInvalidBody  = "INVALID_BODY"
	ErrInvalidParam = "INVALID_PARAM"
	ErrForbidden    = "FORBIDDEN"
	ErrNotFound     = "NOT_FOUND"
	ErrConflict     = "CONFLICT"
	ErrInternal     = "INTERNAL_ERROR"
)

const (
	CodeBadRequest = 400
	CodeForbidden  = 403
	CodeNotFound   = 404
	CodeConflict   = 409
	CodeInternal   = 500
)

type FieldError struct {
	Field      string         `json:"field"`
	Reason     string         `json:"reason"`
	MessageKey string         `json:"message_key"`
	Params     map[string]any `json:"params,omitempty"`
}

func NewAppError(code int, errType string, messageKey string, err error) *AppError {
	return &AppError{
		Code:       code,
		Type:       errType,
		MessageKey: messageKey,
		Err:        err,
	}
}

func NewValidationError(details []FieldError) *AppError {
	return &AppError{
		Code:       CodeBadRequest,
		Type:       ErrValidation,
		MessageKey: "invalid_request",
		Details:    details,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.MessageKey
}

// Localizer renders a message key in a target language. Satisfied by the
// i18n service; declared here so the errors package stays leaf-level.
type Localizer interface {
	T(lang string, key string, params map[string]any) string
}

// Messages renders the error as the human-readable list the UI surfaces.
// Validation errors expand to one message per failed field, anything else to
// a single message.
func (e *AppError) Messages(t Localizer, lang string) []string {
	if len(e.Details) == 0 {
		return []string{t.T(lang, e.MessageKey, nil)}
	}

	out := make([]string, 0, len(e.Details))
	for _, fe := range e.Details {
		out = append(out, t.T(lang, fe.MessageKey, fe.Params))
	}
	return out
}
