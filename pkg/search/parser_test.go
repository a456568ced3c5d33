package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Condition
		logic   []Operator
		wantErr string
	}{
		{
			name:  "empty",
			input: "   ",
		},
		{
			name:  "bare term",
			input: "sign",
			want:  []Condition{{Field: FieldAnywhere, Operator: OperatorContains, Value: "sign"}},
		},
		{
			name:  "implicit and",
			input: "type:button handler:on_ok",
			want: []Condition{
				{Field: FieldTypeField, Operator: OperatorEquals, Value: "button"},
				{Field: FieldHandler, Operator: OperatorEquals, Value: "on_ok"},
			},
			logic: []Operator{OperatorAND},
		},
		{
			name:  "quoted value with or",
			input: `value:"Sign in" or type:label`,
			want: []Condition{
				{Field: FieldValue, Operator: OperatorContains, Value: "Sign in"},
				{Field: FieldTypeField, Operator: OperatorEquals, Value: "label"},
			},
			logic: []Operator{OperatorOR},
		},
		{
			name:  "not",
			input: "NOT event:clicked",
			want:  []Condition{{Field: FieldEvent, Operator: OperatorEquals, Value: "clicked", Negate: true}},
		},
		{name: "unknown field", input: "color:red", wantErr: "unknown field"},
		{name: "leading operator", input: "AND type:button", wantErr: "unexpected operator"},
		{name: "trailing operator", input: "type:button OR", wantErr: "ends with operator"},
		{name: "dangling not", input: "type:button NOT", wantErr: "NOT operator requires"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewParser().Parse(tt.input)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.Conditions)
			assert.Equal(t, tt.logic, q.Logic)
		})
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"a", `value:"x y"`, "b"}, tokenize(` a  value:"x y"	b `))
	assert.Empty(t, tokenize(""))
}
