package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/calvinalkan/zhconv/pkg/dict"
	"github.com/calvinalkan/zhconv/pkg/zhconv"
	flag "github.com/spf13/pflag"
)

// Run is the CLI entry point, testable without touching the real process
// environment (mirrors the teacher's internal/cli.Run signature).
func Run(in io.Reader, out, errOut io.Writer, args []string, env []string) int {
	fs := flag.NewFlagSet("zhconv", flag.ContinueOnError)
	fs.SetOutput(errOut)

	flagConfig := fs.String("config", "", "use specified HuJSON config `file`")
	flagDictDir := fs.String("dict-dir", "", "load dictionaries from `dir` instead of the embedded defaults")
	flagPunctuation := fs.Bool("punctuation", false, "convert quote punctuation too (only for configs crossing Simplified<->Traditional)")
	flagInteractive := fs.Bool("interactive", false, "start an interactive REPL instead of converting stdin")
	flagCheck := fs.Bool("check", false, "print zho_check's classification instead of converting")
	flagDumpBundle := fs.Bool("dump-bundle", false, "print the active dictionary bundle as JSON and exit")
	flagPretty := fs.Bool("pretty", false, "pretty-print --dump-bundle output")
	flagStats := fs.Bool("stats", false, "print per-slot entry counts for the active bundle and exit")
	flagHelp := fs.BoolP("help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(errOut, "error:", err)
		return 2
	}

	if *flagHelp {
		printUsage(out, fs)
		return 0
	}

	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	cliCfg, err := LoadConfig(workDir, *flagConfig, env)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	if fs.Changed("dict-dir") {
		cliCfg.DictDir = *flagDictDir
	}
	if fs.Changed("punctuation") {
		cliCfg.Punctuation = *flagPunctuation
	}

	positional := fs.Args()
	tag := cliCfg.DefaultConfig
	if len(positional) > 0 {
		tag = positional[0]
		positional = positional[1:]
	}

	var (
		conv     *zhconv.Converter
		warnings []dict.Warning
	)

	if cliCfg.DictDir != "" {
		conv, warnings, err = zhconv.NewFromDir(cliCfg.DictDir, zhconv.Config(tag))
	} else {
		conv, err = zhconv.NewDefault(zhconv.Config(tag))
	}
	if err != nil {
		fmt.Fprintln(errOut, "error: loading dictionaries:", err)
		return 1
	}
	for _, w := range warnings {
		fmt.Fprintln(errOut, "warning:", w.String())
	}
	if msg := conv.GetLastError(); msg != "" {
		fmt.Fprintln(errOut, "warning:", msg)
	}

	switch {
	case *flagDumpBundle:
		return runDumpBundle(out, errOut, cliCfg, *flagPretty)
	case *flagStats:
		return runStats(out, conv)
	case *flagInteractive:
		return runREPL(in, out, errOut, conv)
	case *flagCheck:
		return runCheck(in, out, conv, positional)
	default:
		return runConvert(in, out, conv, positional, cliCfg.Punctuation)
	}
}

func printUsage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "zhconv [flags] <config-tag> [file...]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Converts Chinese/Japanese text between scripts using one of sixteen")
	fmt.Fprintln(out, "OpenCC-style configuration tags (s2t, t2s, s2tw, tw2s, s2twp, tw2sp,")
	fmt.Fprintln(out, "s2hk, hk2s, t2tw, t2twp, tw2t, tw2tp, t2hk, hk2t, t2jp, jp2t).")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "With no file arguments, reads from stdin and writes to stdout.")
	fmt.Fprintln(out)
	fs.PrintDefaults()
}

func runConvert(in io.Reader, out io.Writer, conv *zhconv.Converter, files []string, punctuation bool) int {
	if len(files) == 0 {
		return convertReader(in, out, conv, punctuation)
	}
	for _, path := range files {
		f, err := os.Open(path) //nolint:gosec // operator-provided path
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			return 1
		}
		code := convertReader(f, out, conv, punctuation)
		_ = f.Close()
		if code != 0 {
			return code
		}
	}
	return 0
}

func convertReader(in io.Reader, out io.Writer, conv *zhconv.Converter, punctuation bool) int {
	data, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintln(out, "error:", err)
		return 1
	}

	result, err := conv.Convert(string(data), punctuation)
	if err != nil {
		fmt.Fprintln(out, "error:", err)
		return 1
	}

	fmt.Fprint(out, result)
	return 0
}

func runCheck(in io.Reader, out io.Writer, conv *zhconv.Converter, files []string) int {
	readers := []io.Reader{in}
	if len(files) > 0 {
		readers = readers[:0]
		for _, path := range files {
			f, err := os.Open(path) //nolint:gosec // operator-provided path
			if err != nil {
				fmt.Fprintln(out, "error:", err)
				return 1
			}
			defer func() { _ = f.Close() }()
			readers = append(readers, f)
		}
	}

	for _, r := range readers {
		data, err := io.ReadAll(r)
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			return 1
		}
		fmt.Fprintln(out, conv.ZhoCheck(string(data)))
	}
	return 0
}

func runDumpBundle(out, errOut io.Writer, cfg Config, pretty bool) int {
	var (
		b   *dict.Bundle
		err error
	)
	if cfg.DictDir != "" {
		b, _, err = dict.LoadBundleDir(cfg.DictDir)
	} else {
		b, _, err = loadEmbeddedBundle()
	}
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	var data []byte
	if pretty {
		data, err = b.MarshalJSONIndent()
	} else {
		data, err = b.MarshalJSON()
	}
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	fmt.Fprintln(out, string(data))
	return 0
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}
