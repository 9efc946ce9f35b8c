// SPDX-License-Identifier: MIT

package script_test

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsel/a1"
	"github.com/katalvlaran/gridsel/script"
	"github.com/katalvlaran/gridsel/selection"
)

func TestLoadAndRun(t *testing.T) {
	sc, err := script.Load(filepath.Join("testdata", "hole.yaml"))
	require.NoError(t, err)
	require.True(t, sc.Combine())

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sel, err := sc.NewSelection(logger)
	require.NoError(t, err)

	rep, err := sc.Run(sel, nil)
	require.NoError(t, err)
	require.Len(t, rep.Steps, 4)
	assert.Equal(t, 4, rep.Changed())
	assert.Equal(t, script.OpInsertRows, rep.Steps[2].Op)
	assert.Equal(t, "2+2", rep.Steps[2].Arg)

	// A1:E5 minus C3, two rows inserted inside at row 2, column A deleted.
	ref, err := a1.FormatSelection(sel)
	require.NoError(t, err)
	assert.Equal(t, "A1:D4,A5,C5:D5,A6:D7", ref)
	assert.Equal(t, 4*7-1, sel.Area())
	assert.Contains(t, buf.String(), "script: step")
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		err  error
	}{
		{"NoSteps", "options: {mode: single}\n", script.ErrNoSteps},
		{"BadMode", "options: {mode: many}\nsteps: [{select: A1}]\n", script.ErrBadMode},
		{"TwoOps", "steps: [{select: A1, deselect: B2}]\n", script.ErrBadStep},
		{"NoOp", "steps: [{}]\n", script.ErrBadStep},
		{"ZeroCount", "steps: [{insert_rows: {at: \"1\", count: 0}}]\n", script.ErrBadStep},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := script.Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := script.Parse([]byte("steps: [\n"))
	assert.Error(t, err)
	_, err = script.Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestRun_BadReference(t *testing.T) {
	sc, err := script.Parse([]byte("steps:\n  - select: A1\n  - deselect: \"1Z\"\n"))
	require.NoError(t, err)
	sel, err := sc.NewSelection(nil)
	require.NoError(t, err)

	rep, err := sc.Run(sel, nil)
	require.ErrorIs(t, err, a1.ErrBadRef)
	assert.Len(t, rep.Steps, 1, "first step applied before failure")
	assert.Equal(t, 1, sel.Area())
}

func TestRun_SingleModeAndClear(t *testing.T) {
	yaml := `
options:
  mode: single
  combine: false
steps:
  - select: "A1:B2"
  - select: "D4"
  - minimize: true
  - clear: true
  - clear: true
`
	sc, err := script.Parse([]byte(yaml))
	require.NoError(t, err)
	require.False(t, sc.Combine())
	sel, err := sc.NewSelection(nil)
	require.NoError(t, err)
	require.Equal(t, selection.ModeSingle, sel.Options().Mode())

	rep, err := sc.Run(sel, nil)
	require.NoError(t, err)
	changed := make([]bool, len(rep.Steps))
	for i, s := range rep.Steps {
		changed[i] = s.Changed
	}
	assert.Equal(t, []bool{true, true, false, true, false}, changed)
	assert.True(t, sel.IsEmpty())
}

func TestRun_SingleModeStartsOverPerSelect(t *testing.T) {
	yaml := `
options:
  mode: single
steps:
  - select: "A1:E5"
  - deselect: "C3"
  - select: "B2:C3, E1"
  - select: "B2:C3, E1"
`
	sc, err := script.Parse([]byte(yaml))
	require.NoError(t, err)
	sel, err := sc.NewSelection(nil)
	require.NoError(t, err)

	rep, err := sc.Run(sel, nil)
	require.NoError(t, err)
	require.Len(t, rep.Steps, 4)
	assert.True(t, rep.Steps[2].Changed)
	assert.True(t, rep.Steps[3].Changed, "replaced again, E1 re-added")
	assert.Equal(t, 5, sel.Area())
	assert.True(t, sel.ContainsCell(2, 2), "hole from the first region is gone")
	assert.True(t, sel.ContainsCell(0, 4))
}

func TestRun_ListReferences(t *testing.T) {
	sc, err := script.Parse([]byte("options: {combine: false}\nsteps:\n  - select: \"A1, B1, A2:B2\"\n  - minimize: true\n  - insert_cols: {at: B, count: 1}\n  - delete_rows: {at: \"1\", count: 1}\n"))
	require.NoError(t, err)
	sel, err := sc.NewSelection(nil)
	require.NoError(t, err)
	_, err = sc.Run(sel, nil)
	require.NoError(t, err)
	assert.Equal(t, []selection.Block{selection.NewBlock(0, 0, 1, 3)}, sel.Blocks())
}
