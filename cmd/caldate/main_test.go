// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &strings.Builder{}
	cs := newCommandSet(&app{out: out})
	err := cs.DispatchWithArgs(context.Background(), "caldate", args...)
	return out.String(), err
}

func TestCommands(t *testing.T) {
	for _, tc := range []struct {
		args []string
		out  string
	}{
		{[]string{"format", "14-May-1989", "1989-05-15"}, "14-May-1989\n15-May-1989\n"},
		{[]string{"format", "--layout=long", "15-May-1989", "29-feb-2000"}, "May 15th, 1989\nFebruary 29th, 2000\n"},
		{[]string{"format", "--layout=short", "15-May-1989"}, "05/15/1989\n"},
		{[]string{"format", "--layout=iso", "15-May-1989"}, "1989-05-15\n"},
		{[]string{"add", "31-Dec-2024", "1"}, "01-Jan-2025\n"},
		{[]string{"add", "13-Feb-2024", "16"}, "29-Feb-2024\n"},
		{[]string{"add", "02-Mar-1989", "-17"}, "13-Feb-1989\n"},
		{[]string{"sub", "02-Mar-1989", "17"}, "13-Feb-1989\n"},
		{[]string{"sub", "29-May-1989", "14-May-1989"}, "15\n"},
		{[]string{"sub", "14-May-1989", "29-May-1989"}, "-15\n"},
		{[]string{"diff", "29-Feb-2024", "15-Feb-2024"}, "14\n"},
		{[]string{"advance", "31-Jan-2024", "1M"}, "29-Feb-2024\n"},
		{[]string{"advance", "21-Aug-2024", "2W"}, "04-Sep-2024\n"},
		{[]string{"advance", "29-Feb-2024", "-1Y"}, "28-Feb-2023\n"},
		{[]string{"nth-weekday", "3", "fri", "sep", "2024"}, "20-Sep-2024\n"},
		{[]string{"nth-weekday", "1", "Monday", "5", "2025"}, "05-May-2025\n"},
	} {
		out, err := run(t, tc.args...)
		if err != nil {
			t.Errorf("%v: %v", tc.args, err)
			continue
		}
		if got, want := out, tc.out; got != want {
			t.Errorf("%v: got %q, want %q", tc.args, got, want)
		}
	}
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", "29-Feb-2024")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"date:          29-Feb-2024\n",
		"long:          February 29th, 2024\n",
		"iso:           2024-02-29\n",
		"serial:        45351\n",
		"weekday:       Thursday\n",
		"day of year:   60\n",
		"leap year:     true\n",
		"days in month: 29\n",
		"end of month:  29-Feb-2024\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("got %q, does not contain %q", out, want)
		}
	}
}

func TestCommandErrors(t *testing.T) {
	for _, tc := range []struct {
		args []string
		err  string
	}{
		{[]string{"add", "32-Jan-2024", "1"}, "day not valid: 32 is not between 1 and 31"},
		{[]string{"add", "14-May-1989", "x"}, "days"},
		{[]string{"add", "31-Dec-2150", "1"}, "year not valid: 2151 is not between 1950 and 2150"},
		{[]string{"format", "14-May-1989", "14-Foo-1989", "1949-01-01"}, "2 errors"},
		{[]string{"diff", "14-May-1989"}, "accepts exactly 2 arguments"},
		{[]string{"nth-weekday", "5", "mon", "feb", "2025"}, "nth not valid: 5 is not between 1 and 4"},
		{[]string{"nth-weekday", "x", "xx", "13", "2025"}, "3 errors"},
		{[]string{"advance", "14-May-1989", "3Q"}, "period not valid"},
		{[]string{"format", "--layout=fancy", "14-May-1989"}, "layout not valid"},
		{[]string{"format", "@settlement"}, `date "settlement" is not defined`},
	} {
		_, err := run(t, tc.args...)
		if err == nil || !strings.Contains(err.Error(), tc.err) {
			t.Errorf("%v: unexpected or missing error: %v, expected %q", tc.args, err, tc.err)
		}
	}
}

func writeConfig(t *testing.T, dir, contents string) string {
	filename := filepath.Join(dir, "caldate.yaml")
	if err := os.WriteFile(filename, []byte(contents), 0600); err != nil {
		_, _, line, _ := runtime.Caller(1)
		t.Fatalf("line: %v: %v", line, err)
	}
	return filename
}

func TestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	logFile := filepath.Join(tmpDir, "caldate.log")
	cfg := writeConfig(t, tmpDir, `layout: iso
logging:
  level: 3
  format: text
  file: `+logFile+`
dates:
  settlement: 15-Feb-2024
  maturity:
    day: 15
    month: Feb
    year: 2029
`)

	out, err := run(t, "format", "--config="+cfg, "@settlement", "@maturity", "14-May-1989")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := out, "2024-02-15\n2029-02-15\n1989-05-14\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	out, err = run(t, "diff", "--config="+cfg, "@maturity", "@settlement")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := out, "1827\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	out, err = run(t, "advance", "--config="+cfg, "--layout=default", "@settlement", "3M")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := out, "15-May-2024\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	logged, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(logged), "msg=advance"; !strings.Contains(got, want) {
		t.Errorf("got %q, does not contain %q", got, want)
	}
}

func TestConfigErrors(t *testing.T) {
	tmpDir := t.TempDir()
	for i, tc := range []struct {
		cfg, err string
	}{
		{"unknown: field\n", "field unknown not found"},
		{"dates:\n  bad: 30-Feb-2024\n", "day not valid: 30 is not between 1 and 29"},
		{"dates:\n  bad:\n    day: x\n    month: 2\n    year: 2024\n", "day not valid"},
		{"layout: fancy\n", "layout not valid"},
	} {
		cfg := writeConfig(t, tmpDir, tc.cfg)
		_, err := run(t, "format", "--config="+cfg, "14-May-1989")
		if err == nil || !strings.Contains(err.Error(), tc.err) {
			t.Errorf("%v: unexpected or missing error: %v, expected %q", i, err, tc.err)
		}
	}
}
