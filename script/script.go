// SPDX-License-Identifier: MIT

package script

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridsel/a1"
	"github.com/katalvlaran/gridsel/selection"
)

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: read %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes YAML and validates every step.
func Parse(data []byte) (*Script, error) {
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("script: decode: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the options and that each step names one operation.
func (sc *Script) Validate() error {
	if _, err := sc.mode(); err != nil {
		return err
	}
	if len(sc.Steps) == 0 {
		return ErrNoSteps
	}
	for i, st := range sc.Steps {
		if _, _, err := st.Op(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

// Combine reports whether select/deselect steps minimize immediately.
func (sc *Script) Combine() bool {
	return sc.Options.Combine == nil || *sc.Options.Combine
}

func (sc *Script) mode() (selection.Mode, error) {
	switch sc.Options.Mode {
	case "", "multiple":
		return selection.ModeMultiple, nil
	case "single":
		return selection.ModeSingle, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadMode, sc.Options.Mode)
}

// NewSelection returns an empty Selection configured by the script options.
func (sc *Script) NewSelection(logger *slog.Logger) (*selection.Selection, error) {
	m, err := sc.mode()
	if err != nil {
		return nil, err
	}
	opts := []selection.Option{selection.WithMode(m)}
	if logger != nil {
		opts = append(opts, selection.WithLogger(logger))
	}
	return selection.NewSelection(opts...), nil
}

// Op returns the single operation of st and its argument in text form.
func (st Step) Op() (Op, string, error) {
	var ops []Op
	var arg string
	if st.Select != "" {
		ops, arg = append(ops, OpSelect), st.Select
	}
	if st.Deselect != "" {
		ops, arg = append(ops, OpDeselect), st.Deselect
	}
	for _, e := range []struct {
		op   Op
		edit *Edit
	}{
		{OpInsertRows, st.InsertRows},
		{OpDeleteRows, st.DeleteRows},
		{OpInsertCols, st.InsertCols},
		{OpDeleteCols, st.DeleteCols},
	} {
		if e.edit == nil {
			continue
		}
		if e.edit.Count <= 0 {
			return "", "", fmt.Errorf("%w: %s count must be > 0, got %d", ErrBadStep, e.op, e.edit.Count)
		}
		ops, arg = append(ops, e.op), e.edit.At+"+"+strconv.Itoa(e.edit.Count)
	}
	if st.Minimize {
		ops = append(ops, OpMinimize)
	}
	if st.Clear {
		ops = append(ops, OpClear)
	}

	if len(ops) != 1 {
		return "", "", fmt.Errorf("%w: want exactly one operation, got %d", ErrBadStep, len(ops))
	}
	return ops[0], arg, nil
}

// Run applies every step to sel in order. It stops at the first step whose
// argument cannot be parsed.
func (sc *Script) Run(sel *selection.Selection, logger *slog.Logger) (Report, error) {
	if logger == nil {
		logger = sel.Logger()
	}
	combine := sc.Combine()
	var rep Report
	for i, st := range sc.Steps {
		op, arg, err := st.Op()
		if err != nil {
			return rep, fmt.Errorf("step %d: %w", i+1, err)
		}
		changed, err := apply(sel, st, op, combine)
		if err != nil {
			return rep, fmt.Errorf("step %d (%s %s): %w", i+1, op, arg, err)
		}
		logger.Debug("script: step", "index", i+1, "op", string(op), "arg", arg, "changed", changed, "blocks", sel.Count())
		rep.Steps = append(rep.Steps, StepResult{Index: i + 1, Op: op, Arg: arg, Changed: changed})
	}
	return rep, nil
}

func apply(sel *selection.Selection, st Step, op Op, combine bool) (bool, error) {
	switch op {
	case OpSelect, OpDeselect:
		ref := st.Select
		if op == OpDeselect {
			ref = st.Deselect
		}
		blocks, err := a1.ParseBlocks(ref)
		if err != nil {
			return false, err
		}
		changed := false
		for i, b := range blocks {
			switch {
			case op == OpDeselect:
				changed = sel.DeselectBlock(b, combine) || changed
			case i == 0 && sel.Options().Mode() == selection.ModeSingle:
				changed = sel.Replace(b, combine) || changed
			default:
				changed = sel.SelectBlock(b, combine) || changed
			}
		}
		return changed, nil

	case OpInsertRows, OpDeleteRows:
		e := st.InsertRows
		sign := 1
		if op == OpDeleteRows {
			e, sign = st.DeleteRows, -1
		}
		row, err := a1.ParseRow(e.At)
		if err != nil {
			return false, err
		}
		return sel.UpdateRows(row, sign*e.Count), nil

	case OpInsertCols, OpDeleteCols:
		e := st.InsertCols
		sign := 1
		if op == OpDeleteCols {
			e, sign = st.DeleteCols, -1
		}
		col, err := a1.ParseCol(e.At)
		if err != nil {
			return false, err
		}
		return sel.UpdateCols(col, sign*e.Count), nil

	case OpMinimize:
		return sel.Minimize(), nil

	case OpClear:
		return sel.Clear(), nil
	}
	return false, fmt.Errorf("%w: unknown op %q", ErrBadStep, op)
}
