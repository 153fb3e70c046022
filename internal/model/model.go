// Package model defines the JSON-facing shapes the CLI boundary produces
// and consumes: the config document (§6) and a uniform error payload.
package model

import "encoding/json"

// Config is the top-level shape of a `lint --config FILE` document (§6:
// "object with optional global: { components: [string], filters: [string]
// }"). Unknown fields are rejected by the decoders in internal/config, not
// here — this struct only carries what the schema recognizes.
type Config struct {
	Global GlobalConfig `json:"global"`
}

// GlobalConfig is the one recognized top-level section.
type GlobalConfig struct {
	Components []string `json:"components"`
	Filters    []string `json:"filters"`
}

// ErrCode enumerates the CLI boundary's error identifiers (ambient stack:
// "the error-code catalogue ... lives in internal/model, following the
// ErrCode constant-block convention in the teacher's internal/core/errorfmt.go").
const (
	ErrInvalidConfig   = "ERR_INVALID_CONFIG"
	ErrUnsupportedLang = "ERR_UNSUPPORTED_LANG"
	ErrIO              = "ERR_IO"
	ErrNoSuchFile      = "ERR_NO_SUCH_FILE"
)

// CLIError is a uniform error payload for both human and JSON output. Error
// and String both return Message, followed by ": Detail" when Detail is
// set; JSON returns the JSON object form.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e CLIError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

func (e CLIError) String() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

// JSON renders e as a JSON object; used by callers that need machine-
// readable error output alongside the plain-text stderr line.
func (e CLIError) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// Wrap builds a CLIError carrying inner's message as Detail.
func Wrap(code, msg string, inner error) error {
	return CLIError{Code: code, Message: msg, Detail: inner.Error()}
}
