package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_convertsStdin(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run(strings.NewReader("汉字转换"), &out, &errOut, []string{"s2t"}, nil)

	require.Equal(t, 0, code)
	require.Equal(t, "漢字轉換", out.String())
	require.Empty(t, errOut.String())
}

func TestRun_defaultsToS2TWhenNoTagGiven(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run(strings.NewReader("汉字转换"), &out, &errOut, nil, nil)

	require.Equal(t, 0, code)
	require.Equal(t, "漢字轉換", out.String())
}

func TestRun_statsFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run(strings.NewReader(""), &out, &errOut, []string{"--stats", "s2t"}, nil)

	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "st_characters")
	require.Contains(t, out.String(), "total:")
}

func TestRun_checkFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run(strings.NewReader("Hello 世界 汉字"), &out, &errOut, []string{"--check", "s2t"}, nil)

	require.Equal(t, 0, code)
	require.Equal(t, "2\n", out.String())
}

func TestRun_dumpBundleFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run(strings.NewReader(""), &out, &errOut, []string{"--dump-bundle", "s2t"}, nil)

	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "st_characters")
}

func TestRun_unknownFlagFails(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run(strings.NewReader(""), &out, &errOut, []string{"--bogus-flag"}, nil)

	require.Equal(t, 2, code)
	require.NotEmpty(t, errOut.String())
}

func TestRun_helpFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run(strings.NewReader(""), &out, &errOut, []string{"--help"}, nil)

	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "zhconv [flags]")
}
