package sparsesheet

// Macro is a validated bulk edit applied to a sheet through Get and Set.
type Macro interface {
	Execute(sheet Sheet) error
}

// MacroSheet adds macro execution to any Sheet.
type MacroSheet struct {
	Sheet
}

// NewMacroSheet creates an empty sparse sheet that can run macros.
func NewMacroSheet() *MacroSheet {
	return WithMacros(NewSparseSheet())
}

// WithMacros enhances s with macro execution.
func WithMacros(s Sheet) *MacroSheet {
	return &MacroSheet{Sheet: s}
}

// ExecuteMacro runs m against this sheet.
func (s *MacroSheet) ExecuteMacro(m Macro) error {
	return m.Execute(s)
}
