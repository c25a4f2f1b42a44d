// Package brewin is the embeddable facade over the interpreter core:
// parse source text, build the class index, and run it against a host
// console. Grounded on go-dws's internal/interp/runner.New(output
// io.Writer), which plays the same "wire the pieces, hand back one
// entry point" role for that interpreter.
package brewin

import (
	"fmt"

	"github.com/cwbudde/go-brewin/internal/interp"
	"github.com/cwbudde/go-brewin/internal/sexpr"
	"github.com/cwbudde/go-brewin/pkg/platform"
)

// Option configures a Run call.
type Option func(*config)

type config struct {
	keywords *interp.Keywords
	trace    interp.Option
}

// WithKeywords overrides the default keyword spellings (SPEC_FULL.md
// §2.4).
func WithKeywords(kw *interp.Keywords) Option {
	return func(c *config) { c.keywords = kw }
}

// WithTrace enables the interpreter's statement trace.
func WithTrace(opt interp.Option) Option {
	return func(c *config) { c.trace = opt }
}

// hostAdapter makes a platform.Console satisfy interp.Host.
type hostAdapter struct {
	console platform.Console
}

func (h hostAdapter) Output(line string)        { h.console.Print(line) }
func (h hostAdapter) GetInput() (string, error) { return h.console.ReadLine() }

// Run parses source, builds the class index, and runs the designated
// main class/method against console, per spec.md end to end.
func Run(source string, console platform.Console, opts ...Option) error {
	classes, cfg, err := buildClasses(source, opts)
	if err != nil {
		return err
	}

	var ipOpts []interp.Option
	if cfg.trace != nil {
		ipOpts = append(ipOpts, cfg.trace)
	}

	host := hostAdapter{console: console}
	ip := interp.NewInterpreter(classes, host, cfg.keywords, ipOpts...)
	return ip.Run()
}

// ParseClasses parses source and builds its class index without running
// it, for diagnostic tooling such as the `classes` CLI subcommand.
func ParseClasses(source string, opts ...Option) (*interp.ClassIndex, error) {
	classes, _, err := buildClasses(source, opts)
	return classes, err
}

func buildClasses(source string, opts []Option) (*interp.ClassIndex, *config, error) {
	cfg := &config{keywords: interp.DefaultKeywords()}
	for _, opt := range opts {
		opt(cfg)
	}

	ok, tree, message := sexpr.Parse(source)
	if !ok {
		return nil, cfg, fmt.Errorf("parse error: %s", message)
	}

	classes, err := interp.BuildClassIndex(tree, cfg.keywords)
	if err != nil {
		return nil, cfg, err
	}
	return classes, cfg, nil
}
