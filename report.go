package tableschema

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/dmitrymomot/tableschema/pkg/frame"
	"github.com/dmitrymomot/tableschema/pkg/validate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Report is a serializable summary of one validation run.
type Report struct {
	Valid       bool            `json:"valid"`
	RowCount    int             `json:"row_count"`
	ColumnCount int             `json:"column_count"`
	Warnings    []ReportWarning `json:"warnings"`
}

// ReportWarning is the wire form of a validate.Warning.
type ReportWarning struct {
	Scope    string `json:"scope"`
	Row      *int   `json:"row,omitempty"`
	Column   string `json:"column,omitempty"`
	Value    string `json:"value,omitempty"`
	Message  string `json:"message"`
	Rendered string `json:"rendered"`
}

// NewReport summarizes a validation run over a frame.
func NewReport(f *frame.Frame, warnings []validate.Warning) Report {
	report := Report{
		Valid:       len(warnings) == 0,
		RowCount:    f.RowCount(),
		ColumnCount: f.ColumnCount(),
		Warnings:    make([]ReportWarning, 0, len(warnings)),
	}
	for _, w := range warnings {
		rw := ReportWarning{
			Scope:    w.Scope.String(),
			Column:   w.Column,
			Message:  w.Message,
			Rendered: w.Render(),
		}
		if w.Row >= 0 {
			row := w.Row
			rw.Row = &row
		}
		if w.HasValue() {
			rw.Value = w.Value.String()
		}
		report.Warnings = append(report.Warnings, rw)
	}
	return report
}

// JSON encodes the report.
func (r Report) JSON() ([]byte, error) {
	return json.Marshal(r)
}
