package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/MeKo-Tech/csscolor/internal/convert"
	"github.com/MeKo-Tech/csscolor/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var convertCmd = &cobra.Command{
	Use:   "convert [color...]",
	Short: "Convert CSS colors to another notation",
	Long: `Convert CSS colors given as arguments, or one per line from --file, to rgb, hex
or hsl notation. Output keeps the input order; failed lines are logged.`,
	Example: `  csscolor convert "#336699" "hsl(30,100%,50%)" --to rgb
  csscolor convert --file colors.txt --to hex --workers 8`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("to", "hex", "Target notation (rgb, hex, hsl)")
	convertCmd.Flags().StringP("file", "f", "", "Read colors from file, one per line (- for stdin)")
	convertCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: number of CPUs)")
	convertCmd.Flags().Bool("progress", false, "Show progress bar")
	convertCmd.Flags().Bool("allow-failures", false, "Exit successfully even if some colors fail to convert")

	mustBind(convertCmd, "convert", "to", "file", "workers", "progress", "allow-failures")
}

func runConvert(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	notation, err := convert.ParseNotation(viper.GetString("convert.to"))
	if err != nil {
		return err
	}

	tasks, err := convertTasks(cmd.InOrStdin(), viper.GetString("convert.file"), args)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return fmt.Errorf("no colors given (pass arguments or --file)")
	}

	workers := viper.GetInt("convert.workers")
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	progress := worker.NewProgress(len(tasks), viper.GetBool("convert.progress"))
	pool := worker.New(worker.Config{
		Workers:    workers,
		Converter:  convert.Converter{Notation: notation},
		OnProgress: progress.Callback(),
	})

	logger.Debug("Converting colors", "count", len(tasks), "notation", notation, "workers", workers)
	results := pool.Run(ctx, tasks)
	progress.Done()

	failed := writeResults(cmd.OutOrStdout(), results)
	logger.Debug(progress.Summary(), "inputs", progress.Inputs())
	if failed > 0 {
		logger.Warn("Some colors failed to convert", "lines", progress.FailedLines(), "causes", progress.Causes())
	}

	if failed > 0 && !viper.GetBool("convert.allow_failures") {
		return fmt.Errorf("%d of %d colors failed to convert", failed, len(results))
	}
	return nil
}

// convertTasks builds tasks from a file (or stdin for "-") when path is set,
// otherwise from args.
func convertTasks(stdin io.Reader, path string, args []string) ([]worker.Task, error) {
	switch path {
	case "":
		tasks := make([]worker.Task, len(args))
		for i, arg := range args {
			tasks[i] = worker.Task{Index: i, Line: i + 1, Input: arg}
		}
		return tasks, nil
	case "-":
		return convert.ReadTasks(stdin)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		return convert.ReadTasks(f)
	}
}

// writeResults prints one converted color per line and logs failures. It
// returns the number of failed results.
func writeResults(w io.Writer, results []worker.Result) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.Error("Conversion failed", "line", r.Task.Line, "input", r.Task.Input, "error", r.Err)
			continue
		}
		fmt.Fprintln(w, r.Output)
	}
	return failed
}
