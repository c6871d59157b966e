// Package cli implements the claudia command-line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// jsonOutput is set by the root --json flag.
var jsonOutput bool

// Response is the envelope every JSON-mode invocation prints, success or
// failure. Exactly one of Data and Error is populated.
type Response struct {
	OK       bool        `json:"ok"`
	Data     interface{} `json:"data,omitempty"`
	Error    *ErrorInfo  `json:"error,omitempty"`
	Warnings []Warning   `json:"warnings,omitempty"`
	Meta     *Meta       `json:"meta,omitempty"`
}

// ErrorInfo contains structured error information.
type ErrorInfo struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// Warning represents a non-fatal warning, typically a command file that
// failed to load during a scan.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// Meta carries response metadata: result counts and how long the
// filesystem scan took.
type Meta struct {
	Count       int   `json:"count,omitempty"`
	QueryTimeMs int64 `json:"query_time_ms,omitempty"`
}

// isJSONOutput reports whether --json was given.
func isJSONOutput() bool {
	return jsonOutput
}

func writeResponse(resp Response) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

// outputSuccess prints a success envelope carrying data.
func outputSuccess(data interface{}, meta *Meta) {
	writeResponse(Response{OK: true, Data: data, Meta: meta})
}

// outputSuccessWithWarnings prints a success envelope that also carries
// non-fatal scan warnings.
func outputSuccessWithWarnings(data interface{}, warnings []Warning, meta *Meta) {
	writeResponse(Response{OK: true, Data: data, Warnings: warnings, Meta: meta})
}

// outputError prints a failure envelope.
func outputError(code, message string, details interface{}, suggestion string) {
	writeResponse(Response{
		OK: false,
		Error: &ErrorInfo{
			Code:       code,
			Message:    message,
			Details:    details,
			Suggestion: suggestion,
		},
	})
}

// fail reports an error in the mode-appropriate way: as a JSON envelope in
// JSON mode (returning nil so cobra does not print it again), or as a plain
// error for cobra to surface in text mode.
func fail(code, message string, details interface{}, suggestion string) error {
	if jsonOutput {
		outputError(code, message, details, suggestion)
		return nil
	}
	return fmt.Errorf("%s", message)
}

// handleError reports a wrapped Go error.
func handleError(code string, err error, suggestion string) error {
	if jsonOutput {
		outputError(code, err.Error(), nil, suggestion)
		return nil
	}
	return err
}

// handleErrorMsg reports an error built from a message string.
func handleErrorMsg(code, message, suggestion string) error {
	return fail(code, message, nil, suggestion)
}

// handleErrorWithDetails reports an error with structured details attached.
func handleErrorWithDetails(code, message, suggestion string, details interface{}) error {
	return fail(code, message, details, suggestion)
}
