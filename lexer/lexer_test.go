package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kong-lang/kong/token"
)

// TestNextToken tests the functionality of the NextToken method in the Lexer to ensure all tokens are correctly identified.
func TestNextToken(t *testing.T) {
	input := `let five = 5;
let ten = 10;
let add = fn(x, y) {
    x + y;
};
let result = add(five, ten);
!-/*5;
5 < 10 > 5;
5 <= 10 >= 5;

if (5 < 10) {
    return true;
} else {
    return false;
}

10 == 10;
10 != 9;

"foobar"
"foo bar"
[1, 2];
{"foo": "bar"}
`
	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.Let, "let"},
		{token.Ident, "five"},
		{token.Assign, "="},
		{token.Int, "5"},
		{token.Semicolon, ";"},
		{token.Let, "let"},
		{token.Ident, "ten"},
		{token.Assign, "="},
		{token.Int, "10"},
		{token.Semicolon, ";"},
		{token.Let, "let"},
		{token.Ident, "add"},
		{token.Assign, "="},
		{token.Function, "fn"},
		{token.Lparen, "("},
		{token.Ident, "x"},
		{token.Comma, ","},
		{token.Ident, "y"},
		{token.Rparen, ")"},
		{token.Lbrace, "{"},
		{token.Ident, "x"},
		{token.Plus, "+"},
		{token.Ident, "y"},
		{token.Semicolon, ";"},
		{token.Rbrace, "}"},
		{token.Semicolon, ";"},
		{token.Let, "let"},
		{token.Ident, "result"},
		{token.Assign, "="},
		{token.Ident, "add"},
		{token.Lparen, "("},
		{token.Ident, "five"},
		{token.Comma, ","},
		{token.Ident, "ten"},
		{token.Rparen, ")"},
		{token.Semicolon, ";"},
		{token.Bang, "!"},
		{token.Minus, "-"},
		{token.Slash, "/"},
		{token.Asterisk, "*"},
		{token.Int, "5"},
		{token.Semicolon, ";"},
		{token.Int, "5"},
		{token.Lt, "<"},
		{token.Int, "10"},
		{token.Gt, ">"},
		{token.Int, "5"},
		{token.Semicolon, ";"},
		{token.Int, "5"},
		{token.Lte, "<="},
		{token.Int, "10"},
		{token.Gte, ">="},
		{token.Int, "5"},
		{token.Semicolon, ";"},
		{token.If, "if"},
		{token.Lparen, "("},
		{token.Int, "5"},
		{token.Lt, "<"},
		{token.Int, "10"},
		{token.Rparen, ")"},
		{token.Lbrace, "{"},
		{token.Return, "return"},
		{token.True, "true"},
		{token.Semicolon, ";"},
		{token.Rbrace, "}"},
		{token.Else, "else"},
		{token.Lbrace, "{"},
		{token.Return, "return"},
		{token.False, "false"},
		{token.Semicolon, ";"},
		{token.Rbrace, "}"},
		{token.Int, "10"},
		{token.Eq, "=="},
		{token.Int, "10"},
		{token.Semicolon, ";"},
		{token.Int, "10"},
		{token.NotEq, "!="},
		{token.Int, "9"},
		{token.Semicolon, ";"},
		{token.String, "foobar"},
		{token.String, "foo bar"},
		{token.Lbracket, "["},
		{token.Int, "1"},
		{token.Comma, ","},
		{token.Int, "2"},
		{token.Rbracket, "]"},
		{token.Semicolon, ";"},
		{token.Lbrace, "{"},
		{token.String, "foo"},
		{token.Colon, ":"},
		{token.String, "bar"},
		{token.Rbrace, "}"},
		{token.EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()
		require.Equalf(t, tt.expectedType, tok.Type, "tests[%d] - tokentype wrong", i)
		require.Equalf(t, tt.expectedLiteral, tok.Literal, "tests[%d] - literal wrong", i)
	}
}

func runTokenTable(t *testing.T, input string, tests []struct {
	expectedType    token.Type
	expectedLiteral string
}) {
	t.Helper()
	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		require.Equalf(t, tt.expectedType, tok.Type, "tests[%d] - tokentype wrong", i)
		require.Equalf(t, tt.expectedLiteral, tok.Literal, "tests[%d] - literal wrong", i)
	}
}

// TestComments ensures that // style line comments are ignored by the lexer
// whether they appear at end-of-line, on their own line, or directly after code.
func TestComments(t *testing.T) {
	input := `let a = 1; // comment
// full line comment
let b = 2; // another
let c = 3;//no space
let d = 4; /////// multiple slashes
let e = "string with // not a comment";
// comment at EOF`

	runTokenTable(t, input, []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.Let, "let"}, {token.Ident, "a"}, {token.Assign, "="}, {token.Int, "1"}, {token.Semicolon, ";"},
		{token.Let, "let"}, {token.Ident, "b"}, {token.Assign, "="}, {token.Int, "2"}, {token.Semicolon, ";"},
		{token.Let, "let"}, {token.Ident, "c"}, {token.Assign, "="}, {token.Int, "3"}, {token.Semicolon, ";"},
		{token.Let, "let"}, {token.Ident, "d"}, {token.Assign, "="}, {token.Int, "4"}, {token.Semicolon, ";"},
		{token.Let, "let"}, {token.Ident, "e"}, {token.Assign, "="},
		{token.String, "string with // not a comment"}, {token.Semicolon, ";"},
		{token.EOF, ""},
	})
}

// TestCommentBetweenIdentifiers tests tokenization of input containing inline comments between identifiers.
func TestCommentBetweenIdentifiers(t *testing.T) {
	runTokenTable(t, "a//inline comment\nb", []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.Ident, "a"}, {token.Ident, "b"}, {token.EOF, ""},
	})
}

func TestCommentBetweenParenthesis(t *testing.T) {
	runTokenTable(t, "(//comment\n    x)", []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.Lparen, "("}, {token.Ident, "x"}, {token.Rparen, ")"}, {token.EOF, ""},
	})
}

// TestCommentBetweenArrayElements validates the lexer's ability to handle comments between array elements.
func TestCommentBetweenArrayElements(t *testing.T) {
	runTokenTable(t, "[1,//comment\n2]", []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.Lbracket, "["}, {token.Int, "1"}, {token.Comma, ","}, {token.Int, "2"}, {token.Rbracket, "]"}, {token.EOF, ""},
	})
}

// TestCommentAfterCommaNoSpace tests comments immediately after a comma without a space.
func TestCommentAfterCommaNoSpace(t *testing.T) {
	runTokenTable(t, "a,//c\nb", []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.Ident, "a"}, {token.Comma, ","}, {token.Ident, "b"}, {token.EOF, ""},
	})
}

// TestCommentsInComplexConstructs verifies comments interspersed with functions, arrays, and blocks.
func TestCommentsInComplexConstructs(t *testing.T) {
	input := `fn(a, // after first arg
    b) { return [1, // in array
    2, 3]; // after array
}; // after function`

	runTokenTable(t, input, []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.Function, "fn"}, {token.Lparen, "("}, {token.Ident, "a"}, {token.Comma, ","}, {token.Ident, "b"},
		{token.Rparen, ")"}, {token.Lbrace, "{"}, {token.Return, "return"},
		{token.Lbracket, "["}, {token.Int, "1"}, {token.Comma, ","}, {token.Int, "2"}, {token.Comma, ","}, {token.Int, "3"},
		{token.Rbracket, "]"}, {token.Semicolon, ";"}, {token.Rbrace, "}"}, {token.Semicolon, ";"}, {token.EOF, ""},
	})
}

// TestCommentBeforeSemicolon tests an inline comment preceding a semicolon on the next line.
func TestCommentBeforeSemicolon(t *testing.T) {
	input := `let x = 1 // inline comment
;`
	runTokenTable(t, input, []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.Let, "let"}, {token.Ident, "x"}, {token.Assign, "="}, {token.Int, "1"}, {token.Semicolon, ";"}, {token.EOF, ""},
	})
}

// TestDivisionFollowedByComment ensures a division operator is distinguished from a line comment.
func TestDivisionFollowedByComment(t *testing.T) {
	runTokenTable(t, `5 / // divide then comment`, []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.Int, "5"}, {token.Slash, "/"}, {token.EOF, ""},
	})
}

// TestSingleSlashAtEOF validates a single slash token followed directly by EOF.
func TestSingleSlashAtEOF(t *testing.T) {
	l := New(`/`)

	tok := l.NextToken()
	require.Equal(t, token.Slash, tok.Type)
	require.Equal(t, "/", tok.Literal)

	tok = l.NextToken()
	require.Equal(t, token.EOF, tok.Type)
}

// TestSpacedSlashes tests token parsing for input containing spaced slashes.
func TestSpacedSlashes(t *testing.T) {
	runTokenTable(t, `/ /`, []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.Slash, "/"}, {token.Slash, "/"}, {token.EOF, ""},
	})
}

func TestStringEscapes(t *testing.T) {
	input := `"hello\nworld" "tab:\tend" "quote:\"inner\"" "backslash:\\"`

	runTokenTable(t, input, []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.String, "hello\nworld"},
		{token.String, "tab:\tend"},
		{token.String, "quote:\"inner\""},
		{token.String, "backslash:\\"},
		{token.EOF, ""},
	})
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"no end`)

	tok := l.NextToken()
	require.Equal(t, token.Illegal, tok.Type)
	require.Equal(t, "unterminated string", tok.Literal)
}

func TestRelationalOperators(t *testing.T) {
	runTokenTable(t, `a <= b >= c`, []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.Ident, "a"}, {token.Lte, "<="}, {token.Ident, "b"}, {token.Gte, ">="}, {token.Ident, "c"}, {token.EOF, ""},
	})
}
