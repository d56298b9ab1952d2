package stripeclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
)

func TestWindowQuery(t *testing.T) {
	q := WindowQuery(1704067200, 1705276800)

	assert.Equal(t, "created<1705276800 AND created>1704067200", q.String())
}

func TestQuery_And(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		expected string
		err      error
	}{
		{
			name:     "filtro de cliente",
			field:    "customer",
			value:    "cus_123",
			expected: "created<20 AND created>10 AND customer:'cus_123'",
		},
		{
			name:     "email com caracteres especiais",
			field:    "email",
			value:    "a+b@x.com",
			expected: "created<20 AND created>10 AND email:'a+b@x.com'",
		},
		{
			name:  "aspas simples rejeitadas",
			field: "email",
			value: "o'neil@x.com",
			err:   domain.ErrInvalidFilter,
		},
		{
			name:  "aspas duplas rejeitadas",
			field: "customer",
			value: `cus_"1`,
			err:   domain.ErrInvalidFilter,
		},
		{
			name:  "campo inválido",
			field: "created:",
			value: "1",
			err:   domain.ErrInvalidFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := WindowQuery(10, 20)

			q, err := base.And(tt.field, tt.value)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Equal(t, base.String(), q.String())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, q.String())
			// o predicado original não é alterado
			assert.Equal(t, "created<20 AND created>10", base.String())
		})
	}
}

func TestParseQuery(t *testing.T) {
	q, err := WindowQuery(10, 20).And("customer", "cus_1")
	require.NoError(t, err)

	parsed := ParseQuery(q.String())

	assert.Equal(t, []string{"created<20", "created>10", "customer:'cus_1'"}, parsed.Clauses())
	assert.Empty(t, ParseQuery("  ").Clauses())
}
