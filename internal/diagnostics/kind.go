package diagnostics

// Kind enumerates the diagnostic taxonomy from spec §6. Kinds that carry
// parameters (ExpectToken) store them in Diagnostic.Message instead of as
// struct fields, keeping the renderer independent of any one kind's shape.
type Kind string

const (
	InvalidCharacter               Kind = "InvalidCharacter"
	UnterminatedString             Kind = "UnterminatedString"
	InvalidNumberEnd               Kind = "InvalidNumberEnd"
	UnterminatedMultiLineComment   Kind = "UnterminatedMultiLineComment"
	UnexpectedToken                Kind = "UnexpectedToken"
	ExpectToken                    Kind = "ExpectToken"
	AutoSemicolonInsertion         Kind = "AutoSemicolonInsertion"
	InvalidAssignment              Kind = "InvalidAssignment"
	LexicalDeclarationSingleStmt   Kind = "LexicalDeclarationSingleStatement"
	ClassDeclarationMisplacement   Kind = "ClassDeclaration"
	FieldConstructor               Kind = "FieldConstructor"
	EmptyParenthesizedExpression   Kind = "EmptyParenthesizedExpression"
	ExpectFunctionName             Kind = "ExpectFunctionName"
	ReturnStatementOnlyInFunction  Kind = "ReturnStatementOnlyInFunctionBody"
	InvalidNumber                  Kind = "InvalidNumber"
	InvalidBoolean                 Kind = "InvalidBoolean"
	TypeMismatch                   Kind = "TypeMismatch"
	VariableNotFound               Kind = "VariableNotFound"
	InvalidNumberOfArguments       Kind = "InvalidNumberOfArguments"
	CannotCallNonFunction          Kind = "CannotCallNonFunction"
	CannotInstantiateNonClass      Kind = "CannotInstantiateNonClass"
	CannotAccessProperty           Kind = "CannotAccessProperty"
	InvalidArrayAccess             Kind = "InvalidArrayAccess"
	IndexOutOfBounds               Kind = "IndexOutOfBounds"
	NotAnArray                     Kind = "NotAnArray"
	ImportFailure                  Kind = "ImportFailure"
	CannotRedeclareInbuiltFunction Kind = "CannotRedeclareInbuiltFunction"
)
