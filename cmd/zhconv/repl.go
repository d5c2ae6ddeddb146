package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/calvinalkan/zhconv/pkg/zhconv"
	"github.com/peterh/liner"
)

// runREPL starts an interactive line-editing session: each line read is
// converted under the bound config and printed immediately, mirroring
// cmd/sloty's liner-based command loop.
func runREPL(_ io.Reader, out, errOut io.Writer, conv *zhconv.Converter) int {
	line := liner.NewLiner()
	defer func() { _ = line.Close() }()

	line.SetCtrlCAborts(true)

	if f, err := os.Open(historyFile()); err == nil {
		_, _ = line.ReadHistory(f)
		_ = f.Close()
	}

	fmt.Fprintf(out, "zhconv interactive (config=%s). Type :help for commands, :exit to quit.\n", conv.GetConfig())

	for {
		input, err := line.Prompt("zhconv> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Fprintln(out, "\nbye")
				break
			}
			fmt.Fprintln(errOut, "error:", err)
			return 1
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		line.AppendHistory(input)

		switch {
		case trimmed == ":exit" || trimmed == ":quit":
			saveHistory(line)
			return 0
		case trimmed == ":help":
			printREPLHelp(out)
			continue
		case strings.HasPrefix(trimmed, ":config "):
			conv.SetConfig(zhconv.Config(strings.TrimSpace(strings.TrimPrefix(trimmed, ":config "))))
			if msg := conv.GetLastError(); msg != "" {
				fmt.Fprintln(errOut, "warning:", msg)
			}
			fmt.Fprintf(out, "config=%s\n", conv.GetConfig())
			continue
		case trimmed == ":check":
			fmt.Fprintln(out, "usage: :check <text> (on its own line without the colon prefix it converts instead)")
			continue
		case strings.HasPrefix(trimmed, ":check "):
			fmt.Fprintln(out, conv.ZhoCheck(strings.TrimSpace(strings.TrimPrefix(trimmed, ":check "))))
			continue
		}

		result, err := conv.Convert(trimmed, false)
		if err != nil {
			fmt.Fprintln(errOut, "error:", err)
			continue
		}
		fmt.Fprintln(out, result)
	}

	saveHistory(line)
	return 0
}

func printREPLHelp(out io.Writer) {
	fmt.Fprintln(out, "commands:")
	fmt.Fprintln(out, "  :config <tag>   switch the active configuration tag")
	fmt.Fprintln(out, "  :help           show this help")
	fmt.Fprintln(out, "  :exit / :quit   leave the REPL")
	fmt.Fprintln(out, "any other line is converted and echoed back")
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".zhconv_history")
}

func saveHistory(line *liner.State) {
	path := historyFile()
	if path == "" {
		return
	}
	if f, err := os.Create(path); err == nil { //nolint:gosec // fixed, user-owned path
		_, _ = line.WriteHistory(f)
		_ = f.Close()
	}
}
