package errors

import (
	"encoding/json"
	stderrors "errors"
)

// Report is the canonical structured error type for ingc. Every error
// builder in discovery/resolve/merge/typecheck returns a *Report wrapped
// with WrapReport, so the original structure survives an errors.As
// unwrap even after being passed up through several fmt.Errorf("...: %w").
type Report struct {
	Schema  string         `json:"schema"` // always "ingc.error/v1"
	Code    string         `json:"code"`
	Phase   string         `json:"phase"`
	Message string         `json:"message"`
	Path    string         `json:"path,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
	Fix     *Fix           `json:"fix,omitempty"`
}

// Fix is an optional suggested remedy, e.g. a "did you mean" candidate.
type Fix struct {
	Suggestions []string `json:"suggestions,omitempty"`
}

// ReportError wraps a Report as an error.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown error"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// AsReport attempts to extract a Report from an error chain.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if stderrors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// WrapReport wraps a Report as an error, or returns nil for a nil Report.
func WrapReport(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// New builds a Report with the ingc schema tag.
func New(code, phase, message string) *Report {
	return &Report{Schema: "ingc.error/v1", Code: code, Phase: phase, Message: message}
}

// WithPath sets Path and returns the report for chaining.
func (r *Report) WithPath(path string) *Report {
	r.Path = path
	return r
}

// WithData merges key/value pairs into Data and returns the report.
func (r *Report) WithData(key string, value any) *Report {
	if r.Data == nil {
		r.Data = map[string]any{}
	}
	r.Data[key] = value
	return r
}

// WithSuggestions attaches "did you mean" candidates.
func (r *Report) WithSuggestions(suggestions ...string) *Report {
	if len(suggestions) == 0 {
		return r
	}
	r.Fix = &Fix{Suggestions: suggestions}
	return r
}

// ToJSON renders the report as JSON, indented unless compact is true.
func (r *Report) ToJSON(compact bool) (string, error) {
	var data []byte
	var err error
	if compact {
		data, err = json.Marshal(r)
	} else {
		data, err = json.MarshalIndent(r, "", "  ")
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
