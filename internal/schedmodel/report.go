package schedmodel

import "github.com/j3soon/nurse-scheduling-go/internal/solver"

// Report is a (description, observed variable, skip predicate) triple used
// for human-readable diagnostics after a solve. Skip defaults to "never
// skip" when nil.
type Report struct {
	Description string
	Variable    solver.Var
	Skip        func(value int64) bool
}

// AddReport appends a diagnostic entry. Skip may be nil to mean "never
// skip".
func (ctx *Context) AddReport(description string, v solver.Var, skip func(int64) bool) {
	ctx.Reports = append(ctx.Reports, Report{Description: description, Variable: v, Skip: skip})
}
