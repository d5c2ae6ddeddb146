// Command zhconv-bench measures pkg/convert's throughput on synthetic
// input, exercising the §4.9 parallel driver once the input crosses its
// size threshold. Unlike the teacher's cmd/tk-bench (which shells out to
// hyperfine to benchmark process startup and cache I/O), this benchmark
// targets a pure in-memory hot loop, so it drives the engine directly
// in-process and reports throughput rather than wall-clock process time.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/calvinalkan/zhconv/internal/bundledict"
	"github.com/calvinalkan/zhconv/pkg/zhconv"
	flag "github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out, errOut *os.File) int {
	fs := flag.NewFlagSet("zhconv-bench", flag.ContinueOnError)
	fs.SetOutput(errOut)

	config := fs.String("config", "s2t", "config tag to benchmark")
	sizeMiB := fs.Int("size-mib", 10, "synthetic input size in MiB")
	repeat := fs.Int("repeat", 3, "number of timed repetitions")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	bundle, _, err := bundledict.Load()
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	conv := zhconv.New(bundle, zhconv.Config(*config), nil)
	if msg := conv.GetLastError(); msg != "" {
		fmt.Fprintln(errOut, "warning:", msg)
	}

	text := syntheticText(*sizeMiB)

	var total time.Duration
	for i := 0; i < *repeat; i++ {
		start := time.Now()
		_, _ = conv.Convert(text, false)
		total += time.Since(start)
	}

	avg := total / time.Duration(*repeat)
	mib := float64(len(text)) / (1024 * 1024)
	throughput := mib / avg.Seconds()

	fmt.Fprintf(out, "config=%s input=%.1fMiB reps=%d avg=%s throughput=%.1fMiB/s\n",
		*config, mib, *repeat, avg, throughput)

	return 0
}

// syntheticText repeats a short mixed Chinese/punctuation unit until the
// output reaches roughly sizeMiB, large enough to cross parallel.go's
// thresholds (1000 segments and 1,000,000 scalars) for a meaningful
// parallel-path benchmark.
func syntheticText(sizeMiB int) string {
	const unit = "汉字转换计算机程序说学校，"
	target := sizeMiB * 1024 * 1024

	var b strings.Builder
	b.Grow(target + len(unit))
	for b.Len() < target {
		b.WriteString(unit)
	}
	return b.String()
}
