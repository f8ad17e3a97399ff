package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Sang-it/wave/internal/ast"
	"github.com/Sang-it/wave/internal/diagnostics"
	"github.com/Sang-it/wave/internal/interp"
	"github.com/Sang-it/wave/internal/lexer"
	"github.com/Sang-it/wave/internal/parser"
)

var (
	evalExpr string
	dumpAST  bool
	noColor  bool
	trace    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Wave file or expression",
	Long: `Execute a Wave program from a file or inline expression.

Examples:
  # Run a script file
  wave run script.wv

  # Evaluate an inline expression
  wave run -e "print(1 + 2);"

  # Run with AST dump (for debugging)
  wave run --dump-ast script.wv

  # Run with execution trace
  wave run --trace script.wv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		c.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
		c.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
		c.Flags().BoolVar(&noColor, "no-color", false, "disable colored diagnostic output")
		c.Flags().BoolVar(&trace, "trace", false, "trace evaluation (for debugging)")
	}
}

// runScript drives lex -> parse -> eval and maps failures onto the exit
// codes the CLI promises: 0 on success, 1 on a lex/parse error, 2 on a
// runtime error. It calls os.Exit directly (rather than returning an error
// for cobra to report) so the three outcomes stay distinguishable.
func runScript(_ *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case evalExpr != "":
		input = evalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	renderer := diagnostics.NewRenderer(diagnostics.UnicodeTheme, !noColor)

	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()

	diags := p.Errors()
	if len(diags) > 0 {
		fmt.Fprint(os.Stderr, diagnostics.FormatErrors(diags, renderer, input, filename))
		os.Exit(1)
	}

	if dumpAST {
		fmt.Println(ast.Dump(program))
	}

	logger := zap.NewNop()
	if trace {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to initialize trace logger: %w", err)
		}
	}
	defer logger.Sync() //nolint:errcheck

	runtime := interp.New(os.Stdout,
		interp.WithImporter(newFileImporter()),
		interp.WithLogger(logger),
	)

	result := runtime.Eval(program)
	if diag, ok := interp.Diagnostic(result, program.Span); ok {
		fmt.Fprint(os.Stderr, diagnostics.FormatErrors([]diagnostics.Diagnostic{diag}, renderer, input, filename))
		os.Exit(2)
	}

	return nil
}
