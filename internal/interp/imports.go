package interp

import (
	"github.com/Sang-it/wave/internal/ast"
	"github.com/Sang-it/wave/internal/diagnostics"
)

// evalModuleDeclaration implements `import { name, ... } from "path";`
// (spec §4.4.3): resolve the module through the configured Importer,
// evaluate it in its own isolated environment, and copy the requested
// bindings into the current scope. Importing the same path twice reuses
// the first result rather than re-running the module's top-level code.
func (r *Runtime) evalModuleDeclaration(s *ast.ModuleDeclaration, env *Environment) Value {
	if r.importer == nil {
		return newError(diagnostics.ImportFailure, "cannot import %q: no importer is configured", s.Source)
	}

	moduleEnv, ok := r.moduleCache[s.Source]
	if !ok {
		var err error
		moduleEnv, err = r.importer.Import(s.Source)
		if err != nil {
			return newError(diagnostics.ImportFailure, "failed to import %q: %v", s.Source, err)
		}
		r.moduleCache[s.Source] = moduleEnv
	}

	for _, spec := range s.Specifiers {
		v, ok := moduleEnv.GetLocal(spec.Name)
		if !ok {
			return newError(diagnostics.ImportFailure, "%q does not export %q", s.Source, spec.Name)
		}
		env.Define(spec.Name, v)
	}
	return NullValue
}
