package controller

import "github.com/ukaji3/sparsesheet-go/pkg/sparsesheet/render"

// Options configures a Controller.
type Options struct {
	// Prompt is written before each instruction is read. Empty disables it,
	// which is what interactive sessions want since the line editor prompts.
	Prompt string
	// ShowMenu prints the instruction list when a session starts.
	ShowMenu bool
	// Render configures print-sheet and print-range output.
	Render render.Options
}

// DefaultOptions returns default controller options.
func DefaultOptions() Options {
	return Options{
		Prompt:   "Type instruction: ",
		ShowMenu: true,
		Render:   render.DefaultOptions(),
	}
}
