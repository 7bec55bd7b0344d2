package sql

import "strings"

type StatementKind int

const (
	EmptyStatement StatementKind = iota
	QueryStatement
	ExecStatement
)

func (kind StatementKind) String() string {
	switch kind {
	case EmptyStatement:
		return "empty"
	case QueryStatement:
		return "query"
	case ExecStatement:
		return "exec"
	default:
		return "unknown"
	}
}

// queryLeaders are the leading words of statements that return rows.
var queryLeaders = map[string]bool{
	"SELECT":    true,
	"WITH":      true,
	"VALUES":    true,
	"FROM":      true,
	"PRAGMA":    true,
	"SHOW":      true,
	"DESCRIBE":  true,
	"EXPLAIN":   true,
	"SUMMARIZE": true,
	"CALL":      true,
	"TABLE":     true,
}

// Classify reports whether a statement returns rows. Only the first
// statement of a script is inspected.
func Classify(sql string) StatementKind {
	lexer := NewLexer(sql)

	token := lexer.NextToken()
	for token.Type == ParenOpen {
		token = lexer.NextToken()
	}

	switch token.Type {
	case EOF, Semicolon:
		return EmptyStatement
	case Keyword, Identifier:
		if queryLeaders[toUpper(token.Value)] {
			return QueryStatement
		}
	}

	return ExecStatement
}

// SplitStatements splits a script on semicolons that are not inside string
// literals, quoted identifiers or comments. Statements consisting only of
// comments are dropped.
func SplitStatements(script string) []string {
	var statements []string

	lexer := NewLexer(script)
	start := 0
	tokens := 0

	flush := func(end int) {
		if tokens > 0 {
			if stmt := strings.TrimSpace(script[start:end]); stmt != "" {
				statements = append(statements, stmt)
			}
		}
		tokens = 0
	}

	for {
		token := lexer.NextToken()
		switch token.Type {
		case EOF:
			flush(len(script))
			return statements
		case Semicolon:
			flush(token.Pos)
			start = token.Pos + 1
		default:
			tokens++
		}
	}
}
