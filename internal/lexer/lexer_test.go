package lexer

import "testing"

func TestNextTokenOperators(t *testing.T) {
	input := `let x = 1 + 2 ** 3; x += 1; x &&= true;`

	tests := []struct {
		kind    Kind
		literal string
	}{
		{Let, "let"},
		{Identifier, "x"},
		{Assign, "="},
		{Number, "1"},
		{Plus, "+"},
		{Number, "2"},
		{StarStar, "**"},
		{Number, "3"},
		{Semicolon, ";"},
		{Identifier, "x"},
		{PlusEq, "+="},
		{Number, "1"},
		{Semicolon, ";"},
		{Identifier, "x"},
		{AmpAmpEq, "&&="},
		{True, "true"},
		{Semicolon, ";"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Kind != tt.kind {
			t.Fatalf("test[%d]: expected kind %s, got %s (%q)", i, tt.kind, tok.Kind, tok.Literal)
		}
		if tt.literal != "" && tok.Literal != tt.literal {
			t.Fatalf("test[%d]: expected literal %q, got %q", i, tt.literal, tok.Literal)
		}
	}
}

func TestPeekLookahead(t *testing.T) {
	l := New("a b c")
	if got := l.Peek(0).Literal; got != "a" {
		t.Fatalf("Peek(0) = %q, want %q", got, "a")
	}
	if got := l.Peek(2).Literal; got != "c" {
		t.Fatalf("Peek(2) = %q, want %q", got, "c")
	}
	// NextToken must agree with what Peek(0) already reported.
	tok := l.NextToken()
	if tok.Literal != "a" {
		t.Fatalf("NextToken() = %q, want %q", tok.Literal, "a")
	}
}

func TestCheckpointRewind(t *testing.T) {
	l := New("one two three")
	cp := l.SaveState()

	first := l.NextToken()
	second := l.NextToken()

	l.RestoreState(cp)

	firstAgain := l.NextToken()
	secondAgain := l.NextToken()

	if first.Literal != firstAgain.Literal || second.Literal != secondAgain.Literal {
		t.Fatalf("rewind produced a different token stream: %q,%q vs %q,%q",
			first.Literal, second.Literal, firstAgain.Literal, secondAgain.Literal)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"abc`)
	tok := l.NextToken()
	if tok.Kind != String {
		t.Fatalf("expected String token, got %s", tok.Kind)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 error, got %d", len(l.Errors()))
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	l := New("/* never closed")
	tok := l.NextToken()
	if tok.Kind != EOF {
		t.Fatalf("expected EOF after unterminated comment, got %s", tok.Kind)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 error, got %d", len(l.Errors()))
	}
}

func TestLineComment(t *testing.T) {
	l := New("1 // trailing comment\n2")
	first := l.NextToken()
	second := l.NextToken()
	if first.Literal != "1" || second.Literal != "2" {
		t.Fatalf("comment not skipped correctly: %q %q", first.Literal, second.Literal)
	}
	if !second.IsOnNewLine {
		t.Fatalf("expected second token to be marked as starting a new line")
	}
}

func TestInvalidNumberEnd(t *testing.T) {
	l := New("123abc")
	l.NextToken()
	if len(l.Errors()) != 1 {
		t.Fatalf("expected InvalidNumberEnd error, got %d errors", len(l.Errors()))
	}
}
