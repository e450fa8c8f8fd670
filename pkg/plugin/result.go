package plugin

// Result status values. Every plugin call resolves to exactly one of these.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusTimeout = "timeout"
)

// Well-known error codes surfaced in Result.Error.Code.
const (
	CodePluginExecuteError = "plugin_execute_error"
	CodeProviderError      = "provider_error"
	CodeTimeout            = "timeout"
	CodeOutputTooLarge     = "output_too_large"
	CodeOutputValidation   = "output_validation_error"
)

// Result is the structured return value of every plugin call.
// Its JSON serialization is stable: tool-result messages embed it verbatim
// in the LLM conversation.
type Result struct {
	Status    string           `json:"status"`
	Data      map[string]any   `json:"data,omitempty"`
	Error     *ErrorDetail     `json:"error,omitempty"`
	Warnings  []string         `json:"warnings,omitempty"`
	Citations []map[string]any `json:"citations,omitempty"`
}

// ErrorDetail describes a failed plugin call.
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// OK builds a success result.
func OK(data map[string]any) *Result {
	return &Result{Status: StatusSuccess, Data: data}
}

// Err builds an error result.
func Err(message, code string) *Result {
	return &Result{
		Status: StatusError,
		Error:  &ErrorDetail{Code: code, Message: message},
	}
}

// ErrWithDetails builds an error result carrying structured details.
func ErrWithDetails(message, code string, details map[string]any) *Result {
	return &Result{
		Status: StatusError,
		Error:  &ErrorDetail{Code: code, Message: message, Details: details},
	}
}

// Timeout builds a timeout result.
func Timeout(message string) *Result {
	return &Result{
		Status: StatusTimeout,
		Error:  &ErrorDetail{Code: CodeTimeout, Message: message},
	}
}

// IsSuccess reports whether the result completed successfully.
func (r *Result) IsSuccess() bool { return r != nil && r.Status == StatusSuccess }
