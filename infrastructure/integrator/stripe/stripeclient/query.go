package stripeclient

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
)

const clauseSeparator = " AND "

// Query é um predicado da linguagem de busca do Stripe
type Query struct {
	clauses []string
}

// WindowQuery compila [start, end) para created<END AND created>START
func WindowQuery(start, end int64) Query {
	return Query{clauses: []string{
		"created<" + strconv.FormatInt(end, 10),
		"created>" + strconv.FormatInt(start, 10),
	}}
}

// And acrescenta um filtro field:'value'. Aspas no valor são rejeitadas.
func (q Query) And(field, value string) (Query, error) {
	if strings.ContainsAny(value, `'"`) {
		return q, fmt.Errorf("%w: %s contém aspas", domain.ErrInvalidFilter, field)
	}
	if field == "" || strings.ContainsAny(field, `:'" `) {
		return q, fmt.Errorf("%w: campo %q", domain.ErrInvalidFilter, field)
	}

	clauses := make([]string, len(q.clauses), len(q.clauses)+1)
	copy(clauses, q.clauses)
	clauses = append(clauses, fmt.Sprintf("%s:'%s'", field, value))

	return Query{clauses: clauses}, nil
}

func (q Query) Clauses() []string {
	return append([]string(nil), q.clauses...)
}

func (q Query) String() string {
	return strings.Join(q.clauses, clauseSeparator)
}

// ParseQuery lê de volta um predicado produzido por String
func ParseQuery(raw string) Query {
	if strings.TrimSpace(raw) == "" {
		return Query{}
	}
	return Query{clauses: strings.Split(raw, clauseSeparator)}
}
