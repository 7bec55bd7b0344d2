package sql

type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

type TokenType int

const (
	Identifier TokenType = iota
	QuotedIdentifier
	Keyword
	String
	Int
	Float
	Parameter
	Wildcard
	Comma
	Semicolon
	ParenOpen
	ParenClose
	Operator
	EOF
	Unknown
)

func (token Token) String() string {
	switch token.Type {
	case Identifier:
		return "Identifier(" + token.Value + ")"
	case QuotedIdentifier:
		return "QuotedIdentifier(" + token.Value + ")"
	case Keyword:
		return "Keyword(" + token.Value + ")"
	case String:
		return "String(" + token.Value + ")"
	case Int:
		return "Int(" + token.Value + ")"
	case Float:
		return "Float(" + token.Value + ")"
	case Parameter:
		return "Parameter"
	case Wildcard:
		return "Wildcard"
	case Comma:
		return "Comma"
	case Semicolon:
		return "Semicolon"
	case ParenOpen:
		return "ParenOpen"
	case ParenClose:
		return "ParenClose"
	case Operator:
		return "Operator(" + token.Value + ")"
	case EOF:
		return "EOF"
	default:
		return "Unknown(" + token.Value + ")"
	}
}

// keywords holds the words that cannot be emitted as bare identifiers.
var keywords = map[string]bool{
	"ALL": true, "ALTER": true, "AND": true, "ANY": true, "AS": true, "ASC": true,
	"BETWEEN": true, "BY": true, "CASE": true, "CAST": true, "CHECK": true,
	"COLLATE": true, "COLUMN": true, "CONSTRAINT": true, "CREATE": true,
	"CROSS": true, "DEFAULT": true, "DELETE": true, "DESC": true,
	"DESCRIBE": true, "DISTINCT": true, "DROP": true, "ELSE": true, "END": true,
	"EXCEPT": true, "EXISTS": true, "EXPLAIN": true, "FALSE": true,
	"FETCH": true, "FOR": true, "FOREIGN": true, "FROM": true, "FULL": true,
	"GROUP": true, "HAVING": true, "IN": true, "INDEX": true, "INNER": true,
	"INSERT": true, "INTERSECT": true, "INTO": true, "IS": true, "JOIN": true,
	"KEY": true, "LEFT": true, "LIKE": true, "LIMIT": true, "NOT": true,
	"NULL": true, "OFFSET": true, "ON": true, "OR": true, "ORDER": true,
	"OUTER": true, "PRAGMA": true, "PRIMARY": true, "REFERENCES": true,
	"RIGHT": true, "SELECT": true, "SET": true, "SHOW": true, "TABLE": true,
	"THEN": true, "TO": true, "TRUE": true, "UNION": true, "UNIQUE": true,
	"UPDATE": true, "USING": true, "VALUES": true, "WHEN": true, "WHERE": true,
	"WITH": true,
}

type Lexer struct {
	sql          string
	position     int
	readPosition int
	ch           byte
}

func NewLexer(sql string) *Lexer {
	lexer := &Lexer{sql: sql}
	lexer.readChar()
	return lexer
}

func (lexer *Lexer) readChar() {
	if lexer.readPosition >= len(lexer.sql) {
		lexer.ch = 0
	} else {
		lexer.ch = lexer.sql[lexer.readPosition]
	}
	lexer.position = lexer.readPosition
	lexer.readPosition++
}

func (lexer *Lexer) peekChar() byte {
	if lexer.readPosition >= len(lexer.sql) {
		return 0
	}
	return lexer.sql[lexer.readPosition]
}

func (lexer *Lexer) NextToken() Token {
	var token Token

	lexer.skipWhitespaceAndComments()
	start := lexer.position

	switch lexer.ch {
	case ',':
		token = Token{Type: Comma, Value: ","}
	case ';':
		token = Token{Type: Semicolon, Value: ";"}
	case '(':
		token = Token{Type: ParenOpen, Value: "("}
	case ')':
		token = Token{Type: ParenClose, Value: ")"}
	case '*':
		token = Token{Type: Wildcard, Value: "*"}
	case '?':
		token = Token{Type: Parameter, Value: "?"}
	case 0:
		if lexer.position >= len(lexer.sql) {
			return Token{Type: EOF, Value: "", Pos: len(lexer.sql)}
		}
		token = Token{Type: Unknown, Value: string(lexer.ch)}
	case '\'':
		token = Token{Type: String, Value: lexer.readQuoted('\'')}
	case '"':
		token = Token{Type: QuotedIdentifier, Value: lexer.readQuoted('"')}
	default:
		if isOperator(lexer.ch) {
			return Token{Type: Operator, Value: lexer.readOperator(), Pos: start}
		} else if isDigit(lexer.ch) {
			num := lexer.readNumber()
			if lexer.ch == '.' {
				lexer.readChar()
				decimal := lexer.readNumber()
				return Token{Type: Float, Value: num + "." + decimal, Pos: start}
			}
			return Token{Type: Int, Value: num, Pos: start}
		} else if isIdentifierStart(lexer.ch) {
			literal := lexer.readIdentifier()
			if IsReserved(literal) {
				return Token{Type: Keyword, Value: toUpper(literal), Pos: start}
			}
			return Token{Type: Identifier, Value: literal, Pos: start}
		}
		token = Token{Type: Unknown, Value: string(lexer.ch)}
	}

	token.Pos = start
	lexer.readChar()
	return token
}

func (lexer *Lexer) PeekToken() Token {
	savedPosition := lexer.position
	savedReadPosition := lexer.readPosition
	savedCh := lexer.ch

	token := lexer.NextToken()

	lexer.position = savedPosition
	lexer.readPosition = savedReadPosition
	lexer.ch = savedCh

	return token
}

func (lexer *Lexer) skipWhitespaceAndComments() {
	for {
		for lexer.ch == ' ' || lexer.ch == '\t' || lexer.ch == '\n' || lexer.ch == '\r' {
			lexer.readChar()
		}

		switch {
		case lexer.ch == '-' && lexer.peekChar() == '-':
			for lexer.ch != '\n' && lexer.position < len(lexer.sql) {
				lexer.readChar()
			}
		case lexer.ch == '/' && lexer.peekChar() == '*':
			lexer.readChar()
			lexer.readChar()
			for lexer.position < len(lexer.sql) && !(lexer.ch == '*' && lexer.peekChar() == '/') {
				lexer.readChar()
			}
			if lexer.position < len(lexer.sql) {
				lexer.readChar()
				lexer.readChar()
			}
		default:
			return
		}
	}
}

func (lexer *Lexer) readIdentifier() string {
	position := lexer.position
	for isAlphaNumeric(lexer.ch) {
		lexer.readChar()
	}
	return lexer.sql[position:lexer.position]
}

// readQuoted reads a quoted literal; a doubled quote is an escaped quote.
// The lexer is left on the closing quote.
func (lexer *Lexer) readQuoted(quote byte) string {
	var buf []byte
	lexer.readChar() // skip opening quote
	for lexer.position < len(lexer.sql) {
		if lexer.ch == quote {
			if lexer.peekChar() != quote {
				break
			}
			lexer.readChar()
		}
		buf = append(buf, lexer.ch)
		lexer.readChar()
	}
	return string(buf)
}

func (lexer *Lexer) readNumber() string {
	position := lexer.position
	for isDigit(lexer.ch) {
		lexer.readChar()
	}
	return lexer.sql[position:lexer.position]
}

func (lexer *Lexer) readOperator() string {
	position := lexer.position
	for isOperator(lexer.ch) {
		lexer.readChar()
	}
	return lexer.sql[position:lexer.position]
}

func isIdentifierStart(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isAlphaNumeric(ch byte) bool {
	return isIdentifierStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isOperator(ch byte) bool {
	switch ch {
	case '=', '!', '<', '>', '+', '-', '/', '%', '|', '.', ':':
		return true
	}
	return false
}

// IsReserved reports whether word is a reserved SQL keyword (case-insensitive).
func IsReserved(word string) bool {
	return keywords[toUpper(word)]
}

// toUpper converts a string to uppercase without allocating for ASCII strings
func toUpper(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'a' && s[i] <= 'z' {
			b := make([]byte, len(s))
			for j := 0; j < len(s); j++ {
				if s[j] >= 'a' && s[j] <= 'z' {
					b[j] = s[j] - 32
				} else {
					b[j] = s[j]
				}
			}
			return string(b)
		}
	}
	return s
}

func tokenize(sql string) []Token {
	lexer := NewLexer(sql)

	var tokens []Token

	for {
		token := lexer.NextToken()
		if token.Type == EOF {
			return append(tokens, token)
		}
		tokens = append(tokens, token)
	}
}
