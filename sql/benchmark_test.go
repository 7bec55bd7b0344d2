package sql

import (
	"testing"

	"github.com/nickyhof/SQLExplorer/core"
)

func BenchmarkLexer(b *testing.B) {
	query := "SELECT id, name, age FROM users WHERE age > 25 AND city = 'NYC' ORDER BY name ASC LIMIT 100 OFFSET 10"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lexer := NewLexer(query)
		for {
			token := lexer.NextToken()
			if token.Type == EOF {
				break
			}
		}
	}
}

func BenchmarkSynthesizeUpdate(b *testing.B) {
	table := usersTable()
	change := core.Change{
		Kind:     core.UpdateChange,
		Position: 0,
		Before:   core.Row{"id": 1, "name": "a", "email": "a@example.com"},
		After:    core.Row{"id": 1, "name": "b", "email": "a@example.com"},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Synthesize(change, table); err != nil {
			b.Fatalf("Synthesize error: %v", err)
		}
	}
}
