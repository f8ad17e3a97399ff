package interp

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sang-it/wave/internal/ast"
	"github.com/Sang-it/wave/internal/diagnostics"
	"github.com/Sang-it/wave/internal/span"
)

// callFrame tracks the class/instance context a method or constructor body
// is executing under, so SuperExpression and ThisExpression can resolve
// without threading extra parameters through every eval* call. Both are nil
// while evaluating top-level code or a free (unbound) function.
type callFrame struct {
	class       *Class
	instanceEnv *Environment
}

// Runtime is `Runtime(program).eval() -> Primitive | Error` (spec §4.4): it
// owns the global environment, the built-in registry, and the importer used
// by `import` declarations. Grounded on go-dws's interp.Interpreter, which
// is likewise constructed once per run and threaded through every Eval call.
type Runtime struct {
	ID          string // correlates trace log lines across concurrent Runtimes
	Globals     *Environment
	Out         io.Writer
	Log         *zap.Logger
	frames      []callFrame
	importer    Importer
	moduleCache map[string]*Environment // imported-module results, keyed by source path
}

// Importer resolves and evaluates an imported module, returning the
// bindings it exports (spec §4.4.3). The CLI wires a file-system importer;
// tests can substitute an in-memory one.
type Importer interface {
	Import(path string) (*Environment, error)
}

// Option configures a Runtime at construction, following the functional-
// options pattern go-dws's lexer uses for LexerOption.
type Option func(*Runtime)

// WithImporter sets the importer used to resolve `import` declarations.
func WithImporter(imp Importer) Option {
	return func(r *Runtime) { r.importer = imp }
}

// WithLogger sets the trace logger (spec's ambient stack: zap, `--trace`).
func WithLogger(log *zap.Logger) Option {
	return func(r *Runtime) { r.Log = log }
}

// New builds a Runtime writing built-in output to out and registers the
// built-in function table (spec §4.4.4).
func New(out io.Writer, opts ...Option) *Runtime {
	r := &Runtime{
		ID:          uuid.NewString(),
		Globals:     NewEnvironment(),
		Out:         out,
		Log:         zap.NewNop(),
		moduleCache: make(map[string]*Environment),
	}
	for _, opt := range opts {
		opt(r)
	}
	registerBuiltins(r.Globals)
	r.Log.Debug("runtime initialized", zap.String("runtime_id", r.ID))
	return r
}

func (r *Runtime) pushFrame(f callFrame) {
	r.frames = append(r.frames, f)
}

func (r *Runtime) popFrame() {
	r.frames = r.frames[:len(r.frames)-1]
}

func (r *Runtime) currentFrame() callFrame {
	if len(r.frames) == 0 {
		return callFrame{}
	}
	return r.frames[len(r.frames)-1]
}

// Eval runs a Program to completion in the Runtime's global environment.
func (r *Runtime) Eval(program *ast.Program) Value {
	var result Value = NullValue
	for _, stmt := range program.Body {
		result = r.evalStatement(stmt, r.Globals)
		if isError(result) {
			return result
		}
		if ret, ok := result.(*Return); ok {
			return ret.Value
		}
	}
	return result
}

// Diagnostic converts a runtime Error Value into a diagnostics.Diagnostic
// for the CLI to render (spec §7: "Runtime errors are fatal ... and
// returned to the caller").
func Diagnostic(v Value, sp span.Span) (diagnostics.Diagnostic, bool) {
	e, ok := v.(*Error)
	if !ok {
		return diagnostics.Diagnostic{}, false
	}
	return diagnostics.NewRuntime(diagnostics.Kind(e.Kind), e.Message, sp), true
}

func newError(kind diagnostics.Kind, format string, args ...any) *Error {
	return &Error{Kind: string(kind), Message: fmt.Sprintf(format, args...)}
}
