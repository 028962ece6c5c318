// Package macro provides the bulk edits a sparsesheet.MacroSheet can run.
//
// Every constructor validates its arguments and returns an error instead of
// a macro when they are invalid, so a macro value is always executable.
package macro

// Command keywords, also used to label construction errors.
const (
	NameBulkAssign  = "bulk-assign-value"
	NameAverage     = "average"
	NameRangeAssign = "range-assign"
)
