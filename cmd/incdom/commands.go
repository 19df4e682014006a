package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/npillmayer/incdom"
	"github.com/npillmayer/incdom/config"
	"github.com/npillmayer/incdom/dom/domdbg"
	"github.com/npillmayer/incdom/replay"
)

var (
	rootCmd = &cobra.Command{
		Use:           "incdom",
		Short:         "Generate IncrementalDOM build scripts from HTML or markdown",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
	}
	renderCmd = &cobra.Command{
		Use:   "render FILE",
		Short: "Print the render closure for a document",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	replayCmd = &cobra.Command{
		Use:   "replay FILE",
		Short: "Run the render closure in a JS VM and print the DOM calls",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplay,
	}
	treeCmd = &cobra.Command{
		Use:   "tree FILE",
		Short: "Print the document tree the script is generated from",
		Args:  cobra.ExactArgs(1),
		RunE:  runTree,
	}
	configPath string
	basePath   string
	verbose    bool
	asMarkdown bool
	callsOnly  bool
	asDot      bool
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "configuration file (YAML)")
	pf.StringVarP(&basePath, "base", "b", "", "base path for local images (default: folder of FILE)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	pf.BoolVarP(&asMarkdown, "markdown", "m", false, "treat input as markdown (default for *.md)")
	renderCmd.Flags().BoolVar(&callsOnly, "calls-only", false, "print the build calls without closure")
	treeCmd.Flags().BoolVar(&asDot, "dot", false, "print the tree in GraphViz DOT format")
	rootCmd.AddCommand(renderCmd, replayCmd, treeCmd)
}

// loadConfig reads the configuration and applies command line overrides.
func loadConfig(input string) (*config.Config, error) {
	conf := config.Default()
	if configPath != "" {
		var err error
		if conf, err = config.Load(configPath); err != nil {
			return nil, err
		}
		logrus.WithField("file", configPath).Debug("configuration loaded")
	}
	switch {
	case basePath != "":
		conf.BasePath = basePath
	case conf.BasePath == "" && input != "-":
		conf.BasePath = filepath.Dir(input)
	}
	if conf.BasePath != "" {
		abs, err := filepath.Abs(conf.BasePath)
		if err != nil {
			return nil, errors.Wrap(err, "base path")
		}
		conf.BasePath = abs
	}
	return conf, nil
}

func readInput(input string) ([]byte, error) {
	if input == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(input)
	return data, errors.Wrap(err, "reading input")
}

func isMarkdown(input string) bool {
	if asMarkdown {
		return true
	}
	ext := strings.ToLower(filepath.Ext(input))
	return ext == ".md" || ext == ".markdown"
}

// builderFor creates a builder for an input file, converting markdown
// first if necessary.
func builderFor(input string) (*incdom.Builder, *config.Config, error) {
	conf, err := loadConfig(input)
	if err != nil {
		return nil, nil, err
	}
	src, err := readInput(input)
	if err != nil {
		return nil, nil, err
	}
	log := logrus.WithFields(logrus.Fields{"input": input, "base": conf.BasePath})
	if isMarkdown(input) {
		log.Debug("converting markdown")
		r, err := conf.Preview()
		if err != nil {
			return nil, nil, err
		}
		b, err := r.Builder(src)
		return b, conf, err
	}
	log.Debug("parsing HTML")
	opts, err := conf.Options()
	if err != nil {
		return nil, nil, err
	}
	b, err := incdom.New(string(src), opts...)
	return b, conf, err
}

func runRender(cmd *cobra.Command, args []string) error {
	b, _, err := builderFor(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if callsOnly {
		_, err = fmt.Fprintln(out, b.BuildCalls().String())
		return err
	}
	_, err = fmt.Fprintln(out, b.RenderClosure())
	return err
}

func runReplay(cmd *cobra.Command, args []string) error {
	b, conf, err := builderFor(args[0])
	if err != nil {
		return err
	}
	calls, err := replay.Run(b.RenderClosure(), conf.Renderer)
	if err != nil {
		return errors.Wrap(err, "replaying build script")
	}
	out := cmd.OutOrStdout()
	depth := 0
	for _, c := range calls {
		if c.Op == replay.Close && depth > 0 {
			depth--
		}
		fmt.Fprintf(out, "%s%s\n", strings.Repeat("  ", depth), c)
		if c.Op == replay.Open {
			depth++
		}
	}
	if err := replay.Balanced(calls); err != nil {
		return err
	}
	logrus.WithField("calls", len(calls)).Debug("replay finished")
	return nil
}

func runTree(cmd *cobra.Command, args []string) error {
	b, _, err := builderFor(args[0])
	if err != nil {
		return err
	}
	body := b.Document().Body()
	if asDot {
		return domdbg.ToGraphViz(body, cmd.OutOrStdout())
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), domdbg.Dump(body))
	return err
}
