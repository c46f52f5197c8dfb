package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sunholo/typelang/internal/ast"
)

// Report is the canonical structured error type, adapted from the teacher's
// errors.Report: every compile-phase failure is classified into one of
// these before it leaves its producing package.
type Report struct {
	Schema  string         `json:"schema"` // always "typelang.error/v1"
	Code    string         `json:"code"`
	Phase   string         `json:"phase"`
	Message string         `json:"message"`
	Span    *ast.Span      `json:"span,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
	Fix     *Fix           `json:"fix,omitempty"`
}

// Fix is an optional suggested remediation, carried from the teacher's Fix.
type Fix struct {
	Suggestion string  `json:"suggestion"`
	Confidence float64 `json:"confidence"`
}

// ReportError wraps a Report as an error so it survives errors.As unwrapping.
type ReportError struct{ Rep *Report }

// Error renders the header line of the original implementation's
// diagnostic format: "[CODE] message @line=L,col=C @pos=N", the position
// part only when a Span is set. The snippet and caret lines are added by
// RenderWithSnippet (see _examples/original_source/src/errors.rs).
func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown error"
	}
	r := e.Rep
	msg := fmt.Sprintf("[%s] %s", r.Code, r.Message)
	if r.Span != nil {
		msg += fmt.Sprintf(" @line=%d,col=%d @pos=%d", r.Span.Start.Line, r.Span.Start.Col, r.Span.Start.Offset)
	}
	return msg
}

// RenderWithSnippet reproduces the original's two extra lines (source
// snippet + caret) when the originating source line is available.
func RenderWithSnippet(r *Report, sourceLine string) string {
	base := (&ReportError{Rep: r}).Error()
	if r.Span == nil || sourceLine == "" {
		return base
	}
	caret := strings.Repeat(" ", r.Span.Start.Col) + "^"
	return base + "\n" + sourceLine + "\n" + caret
}

// AsReport extracts a Report from an error chain.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// WrapReport wraps a Report as an error.
func WrapReport(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// New builds a Report with the "typelang.error/v1" schema.
func New(phase, code, message string, span *ast.Span) *Report {
	return &Report{Schema: "typelang.error/v1", Code: code, Phase: phase, Message: message, Span: span}
}

// ToJSON renders the Report as JSON (deterministic key order via
// encoding/json's struct-tag ordering, compact or indented).
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

// NewGeneric wraps an arbitrary error under a phase as a Report, for
// failures that originate outside this repo's own classified error sites.
func NewGeneric(phase string, err error) *Report {
	return &Report{Schema: "typelang.error/v1", Code: "RUNTIME", Phase: phase, Message: err.Error(), Data: map[string]any{}}
}
