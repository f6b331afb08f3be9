// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/datawire/dlib/dlog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqlath/sorting"
)

// run executes one command line against a fresh command tree.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	argparser := newRootCommand(nil)
	argparser.SetOut(&stdout)
	argparser.SetErr(io.Discard)
	argparser.SetArgs(args)
	err := argparser.ExecuteContext(dlog.NewTestContext(t, false))

	return stdout.String(), err
}

func TestSort(t *testing.T) {
	out, err := run(t, "sort", "--", "5", "-3", "1", "4", "1")
	require.NoError(t, err)
	assert.JSONEq(t, `[-3, 1, 1, 4, 5]`, out)

	for _, a := range sorting.Algorithms() {
		out, err := run(t, "sort", "--algorithm", a.String(), "--seed", "9", "3", "1", "2")
		require.NoError(t, err, a.String())
		assert.JSONEq(t, `[1, 2, 3]`, out, a.String())
	}

	out, err = run(t, "sort", "--index", "30", "10", "20", "10")
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 3, 2, 0]`, out)

	out, err = run(t, "sort", "--unique", "--reverse", "2", "1", "2", "3")
	require.NoError(t, err)
	assert.JSONEq(t, `[3, 2, 1]`, out)

	out, err = run(t, "sort", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, `"quick-iterative"`)

	_, err = run(t, "sort", "--algorithm", "bogo", "1")
	assert.ErrorContains(t, err, sorting.ErrUnknownAlgorithm.Error())
	_, err = run(t, "sort", "1", "x")
	assert.Error(t, err)
}

func TestSort_InputFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(fn, []byte("[9, 7, 8]\n"), 0o644))

	out, err := run(t, "--input", fn, "sort", "1")
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 7, 8, 9]`, out)

	_, err = run(t, "--input", filepath.Join(t.TempDir(), "missing.json"), "sort")
	assert.Error(t, err)

	trailing := filepath.Join(t.TempDir(), "trailing.json")
	require.NoError(t, os.WriteFile(trailing, []byte("[1, 2] [3]"), 0o644))
	_, err = run(t, "--input", trailing, "sort")
	assert.ErrorContains(t, err, trailing)
}

func TestOutput_OneLine(t *testing.T) {
	out, err := run(t, "sort", "3", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "[1,2,3]\n", out)
}

func TestSelect(t *testing.T) {
	out, err := run(t, "select", "--nth", "2", "--", "9", "-1", "4", "7")
	require.NoError(t, err)
	assert.JSONEq(t, `{"n": 2, "value": 7}`, out)

	_, err = run(t, "select", "--nth", "4", "1", "2")
	assert.Error(t, err)
}

func TestSearch(t *testing.T) {
	for _, method := range []string{"binary", "exponential", "interpolation", "fibonacci"} {
		out, err := run(t, "search", "--key", "4", "--method", method, "1", "4", "4", "9")
		require.NoError(t, err, method)
		assert.JSONEq(t, `{"key": 4, "method": "`+method+`", "found": true, "lower_bound": 1, "upper_bound": 3}`, out)
	}

	out, err := run(t, "search", "--key", "5", "1", "4", "9")
	require.NoError(t, err)
	assert.JSONEq(t, `{"key": 5, "method": "binary", "found": false, "lower_bound": 2, "upper_bound": 2}`, out)

	out, err = run(t, "search", "--pattern", "1,2", "1", "2", "1", "2", "3")
	require.NoError(t, err)
	assert.JSONEq(t, `{"pattern": [1, 2], "matches": [0, 2]}`, out)

	_, err = run(t, "search", "--key", "1", "3", "1")
	assert.ErrorContains(t, err, errNotAscending.Error())
	_, err = run(t, "search", "--method", "linear", "1")
	assert.Error(t, err)
}

func TestSetop(t *testing.T) {
	cases := map[string]string{
		"union":                `[1, 2, 3, 4, 5]`,
		"intersection":         `[2, 4]`,
		"difference":           `[1, 3]`,
		"symmetric-difference": `[1, 3, 5]`,
		"merge":                `[1, 2, 2, 3, 4, 4, 5]`,
		"includes":             `{"includes": false}`,
	}
	for op, want := range cases {
		out, err := run(t, "setop", "--op", op, "--a", "1,2,3,4", "--b", "2,4,5")
		require.NoError(t, err, op)
		assert.JSONEq(t, want, out, op)
	}

	out, err := run(t, "setop", "--op", "includes", "--a", "1,2,3,4", "--b", "2,4")
	require.NoError(t, err)
	assert.JSONEq(t, `{"includes": true}`, out)

	_, err = run(t, "setop", "--op", "union", "--a", "3,1", "--b", "2")
	assert.ErrorContains(t, err, errNotAscending.Error())
	_, err = run(t, "setop", "--op", "xor", "--a", "1", "--b", "2")
	assert.Error(t, err)
}

func TestPermutations(t *testing.T) {
	out, err := run(t, "permutations", "3", "1", "2")
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,2,3],[1,3,2],[2,1,3],[2,3,1],[3,1,2],[3,2,1]]`, out)

	out, err = run(t, "permutations", "1", "1", "2")
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,1,2],[1,2,1],[2,1,1]]`, out)

	out, err = run(t, "permutations", "--k", "2", "1", "2", "3")
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,2],[1,3],[2,1],[2,3],[3,1],[3,2]]`, out)

	out, err = run(t, "permutations", "--limit", "2", "1", "2", "3")
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,2,3],[1,3,2]]`, out)
}

func TestCombinations(t *testing.T) {
	out, err := run(t, "combinations", "--k", "2", "4", "3", "2", "1")
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,2],[1,3],[1,4],[2,3],[2,4],[3,4]]`, out)

	_, err = run(t, "combinations", "--k", "5", "1", "2")
	assert.Error(t, err)
}

func TestEditDistance(t *testing.T) {
	for _, extra := range [][]string{nil, {"--rolling"}} {
		args := append([]string{"edit-distance", "kitten", "sitting"}, extra...)
		out, err := run(t, args...)
		require.NoError(t, err)
		assert.JSONEq(t, `{"from": "kitten", "to": "sitting", "distance": 3}`, out)
	}

	_, err := run(t, "edit-distance", "only-one")
	assert.Error(t, err)
}

func TestSubarray(t *testing.T) {
	out, err := run(t, "subarray", "--", "-2", "1", "-3", "4", "-1", "2", "1", "-5", "4")
	require.NoError(t, err)
	assert.JSONEq(t, `{"low": 3, "high": 6, "sum": 6, "kadane_sum": 6}`, out)

	_, err = run(t, "subarray")
	assert.Error(t, err)
}

func TestBinomial(t *testing.T) {
	out, err := run(t, "binomial", "5")
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 5, 10, 10, 5, 1]`, out)

	out, err = run(t, "binomial", "10", "3", "11")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"n": 10, "k": 3, "coefficient": 120}, {"n": 10, "k": 11, "coefficient": 0}]`, out)

	_, err = run(t, "binomial", "100")
	assert.Error(t, err)
	_, err = run(t, "binomial", "--cache-size", "0", "4")
	assert.Error(t, err)
}

func TestDTW(t *testing.T) {
	out, err := run(t, "dtw", "--a", "1,2,3", "--b", "1,2,2,3", "--path")
	require.NoError(t, err)
	assert.JSONEq(t, `{"distance": 0, "path": [[0,0],[1,1],[1,2],[2,3]]}`, out)

	out, err = run(t, "dtw", "--a", "1,2,3", "--b", "2,2,2", "--rolling")
	require.NoError(t, err)
	assert.JSONEq(t, `{"distance": 2}`, out)

	_, err = run(t, "dtw", "--a", "1", "--b", "1", "--path", "--rolling")
	assert.Error(t, err)
}

func TestTypes(t *testing.T) {
	out, err := run(t, "types", "int64", "int8", "uint8", "int32", "bool")
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"type": "int8", "size": 1},
		{"type": "uint8", "size": 1},
		{"type": "bool", "size": 1},
		{"type": "int32", "size": 4},
		{"type": "int64", "size": 8}
	]`, out)

	_, err = run(t, "types", "chan")
	assert.Error(t, err)
}

func TestRoot(t *testing.T) {
	_, err := run(t, "no-such-command")
	assert.Error(t, err)
	_, err = run(t, "--verbosity", "loud", "sort", "1")
	assert.Error(t, err)
	_, err = run(t, "--verbosity", "debug", "sort", "1")
	assert.NoError(t, err)
}

func TestVerbosityFlag(t *testing.T) {
	var v verbosity
	for _, name := range []string{"error", "warning", "info", "debug", "trace"} {
		require.NoError(t, v.Set(name))
		assert.Equal(t, name, v.String())
	}
	require.NoError(t, v.Set("WARN"))
	assert.Equal(t, "warning", v.String())
	assert.Equal(t, logrus.WarnLevel, logrus.Level(v))
	assert.Error(t, v.Set("chatty"))
	assert.ErrorContains(t, v.Set("fatal"), "would hide errors")
	assert.ErrorContains(t, v.Set("panic"), "would hide errors")
	assert.Equal(t, "warning", v.String(), "rejected values keep the old level")
	assert.Equal(t, "level", v.Type())
}
