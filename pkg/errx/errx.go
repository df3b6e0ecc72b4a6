package errx

import (
	"fmt"
	"net/http"
)

// Type classifies errors for transport mapping and logging
type Type string

const (
	TypeValidation    Type = "VALIDATION"
	TypeNotFound      Type = "NOT_FOUND"
	TypeConflict      Type = "CONFLICT"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeBusiness      Type = "BUSINESS"
	TypeInternal      Type = "INTERNAL"
	TypeExternal      Type = "EXTERNAL"
)

// Code is the full registered error code (prefix + suffix)
type Code string

type definition struct {
	errType    Type
	httpStatus int
	message    string
}

// Registry holds the error definitions of one domain package
type Registry struct {
	prefix string
	defs   map[Code]definition
}

// NewRegistry creates an error registry with a domain prefix (e.g. "JOB")
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		defs:   make(map[Code]definition),
	}
}

// Register adds an error definition and returns its code
func (r *Registry) Register(suffix string, errType Type, httpStatus int, message string) Code {
	code := Code(r.prefix + "_" + suffix)
	r.defs[code] = definition{
		errType:    errType,
		httpStatus: httpStatus,
		message:    message,
	}
	return code
}

// New creates an error instance for a registered code
func (r *Registry) New(code Code) *Error {
	def, ok := r.defs[code]
	if !ok {
		return &Error{
			Code:       string(code),
			Type:       TypeInternal,
			Message:    "unregistered error code",
			HTTPStatus: http.StatusInternalServerError,
		}
	}
	return &Error{
		Code:       string(code),
		Type:       def.errType,
		Message:    def.message,
		HTTPStatus: def.httpStatus,
	}
}

// NewWithCause creates an error instance wrapping an underlying cause
func (r *Registry) NewWithCause(code Code, cause error) *Error {
	e := r.New(code)
	e.cause = cause
	return e
}

// Error is a typed, transport-mappable error
type Error struct {
	Code       string         `json:"code"`
	Type       Type           `json:"type"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is/As
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetail attaches a single key/value detail and returns the error
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails attaches a map of details and returns the error
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// ToHTTPResponse renders the error as a JSON-serializable body
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"code":    e.Code,
		"type":    e.Type,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// Wrap converts an arbitrary error into an *Error of the given type
func Wrap(err error, message string, errType Type) *Error {
	if err == nil {
		return nil
	}
	// Already typed: keep the original classification
	if e, ok := err.(*Error); ok {
		return e
	}
	status := http.StatusInternalServerError
	if errType == TypeExternal {
		status = http.StatusBadGateway
	}
	return &Error{
		Code:       string(errType),
		Type:       errType,
		Message:    message,
		HTTPStatus: status,
		cause:      err,
	}
}

// IsType reports whether err is an *Error of the given type
func IsType(err error, errType Type) bool {
	e, ok := err.(*Error)
	return ok && e.Type == errType
}

// IsCode reports whether err is an *Error with the given code
func IsCode(err error, code Code) bool {
	e, ok := err.(*Error)
	return ok && e.Code == string(code)
}
