// SPDX-License-Identifier: MIT

package script

// Op names a step operation.
type Op string

const (
	// OpSelect selects an A1 reference list.
	OpSelect Op = "select"
	// OpDeselect deselects an A1 reference list.
	OpDeselect Op = "deselect"
	// OpInsertRows inserts rows and renumbers the selection.
	OpInsertRows Op = "insert_rows"
	// OpDeleteRows deletes rows and renumbers the selection.
	OpDeleteRows Op = "delete_rows"
	// OpInsertCols inserts columns and renumbers the selection.
	OpInsertCols Op = "insert_cols"
	// OpDeleteCols deletes columns and renumbers the selection.
	OpDeleteCols Op = "delete_cols"
	// OpMinimize merges stored blocks.
	OpMinimize Op = "minimize"
	// OpClear deselects everything.
	OpClear Op = "clear"
)

// Script is a parsed replay file.
type Script struct {
	// Options configures the selection the script runs against.
	Options Options `yaml:"options"`
	// Steps are applied in order.
	Steps []Step `yaml:"steps"`
}

// Options mirrors the selection options in YAML.
type Options struct {
	// Mode is "multiple" (default) or "single".
	Mode string `yaml:"mode"`
	// Combine minimizes after every select/deselect. Defaults to true.
	Combine *bool `yaml:"combine"`
}

// Step holds exactly one operation.
type Step struct {
	// Select is an A1 reference list to select.
	Select string `yaml:"select,omitempty"`
	// Deselect is an A1 reference list to deselect.
	Deselect string `yaml:"deselect,omitempty"`
	// InsertRows inserts Count rows before row At.
	InsertRows *Edit `yaml:"insert_rows,omitempty"`
	// DeleteRows deletes Count rows starting at row At.
	DeleteRows *Edit `yaml:"delete_rows,omitempty"`
	// InsertCols inserts Count columns before column At.
	InsertCols *Edit `yaml:"insert_cols,omitempty"`
	// DeleteCols deletes Count columns starting at column At.
	DeleteCols *Edit `yaml:"delete_cols,omitempty"`
	// Minimize runs Selection.Minimize.
	Minimize bool `yaml:"minimize,omitempty"`
	// Clear runs Selection.Clear.
	Clear bool `yaml:"clear,omitempty"`
}

// Edit is a row or column insertion/deletion.
type Edit struct {
	// At is a 1-based row number or a column name.
	At string `yaml:"at"`
	// Count is the number of rows/columns, > 0.
	Count int `yaml:"count"`
}

// StepResult records the outcome of one step.
type StepResult struct {
	// Index is the 1-based step number.
	Index int
	// Op is the operation the step ran.
	Op Op
	// Arg is the step argument in text form.
	Arg string
	// Changed reports whether the selection was modified.
	Changed bool
}

// Report is the outcome of Run.
type Report struct {
	// Steps holds one result per applied step.
	Steps []StepResult
}

// Changed counts steps that modified the selection.
func (r Report) Changed() int {
	n := 0
	for _, s := range r.Steps {
		if s.Changed {
			n++
		}
	}
	return n
}
