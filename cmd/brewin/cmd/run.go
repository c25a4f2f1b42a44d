package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	srcerrors "github.com/cwbudde/go-brewin/internal/errors"
	"github.com/cwbudde/go-brewin/internal/interp"
	"github.com/cwbudde/go-brewin/internal/token"
	"github.com/cwbudde/go-brewin/pkg/brewin"
	"github.com/cwbudde/go-brewin/pkg/platform/native"
)

var (
	keywordsPath string
	traceEnabled bool
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a Brewin program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		var opts []brewin.Option
		if keywordsPath != "" {
			kw, err := interp.LoadKeywords(keywordsPath)
			if err != nil {
				return err
			}
			opts = append(opts, brewin.WithKeywords(kw))
		}
		if traceEnabled {
			opts = append(opts, brewin.WithTrace(interp.WithTrace(os.Stderr)))
		}

		console := native.NewConsole()
		if err := brewin.Run(string(source), console, opts...); err != nil {
			reportError(err, string(source), args[0])
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&keywordsPath, "keywords", "", "path to a YAML file overriding reserved-word spellings")
	runCmd.Flags().BoolVar(&traceEnabled, "trace", false, "write one line per executed statement to stderr")
	rootCmd.AddCommand(runCmd)
}

// reportError prints a Brewin interpreter error with its source-line and
// caret context, matching the format internal/errors was built for; any
// other error (parse failure, I/O failure) is printed plainly.
func reportError(err error, source, file string) {
	var ie *interp.InterpreterError
	if errors.As(err, &ie) {
		se := srcerrors.New(ie.Kind.String(), token.Position{Line: ie.Line, Column: 1}, ie.Message, source, file)
		fmt.Fprintln(os.Stderr, se.Format(true))
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
