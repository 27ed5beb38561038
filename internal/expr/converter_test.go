package expr_test

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pay-theory/dynaquery/internal/expr"
	dqerrors "github.com/pay-theory/dynaquery/pkg/errors"
)

func TestConvertToAttributeValue(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 500, time.UTC)

	tests := []struct {
		name     string
		value    any
		expected types.AttributeValue
	}{
		{"string", "Jo", &types.AttributeValueMemberS{Value: "Jo"}},
		{"int", 21, &types.AttributeValueMemberN{Value: "21"}},
		{"float", 1.5, &types.AttributeValueMemberN{Value: "1.5"}},
		{"bool", true, &types.AttributeValueMemberBOOL{Value: true}},
		{"nil", nil, &types.AttributeValueMemberNULL{Value: true}},
		{"time", ts, &types.AttributeValueMemberS{Value: ts.Format(time.RFC3339Nano)}},
		{"time pointer", &ts, &types.AttributeValueMemberS{Value: ts.Format(time.RFC3339Nano)}},
		{"bytes", []byte("ab"), &types.AttributeValueMemberB{Value: []byte("ab")}},
		{"attribute value passthrough", &types.AttributeValueMemberN{Value: "7"}, &types.AttributeValueMemberN{Value: "7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			av, err := expr.ConvertToAttributeValue(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, av)
		})
	}
}

func TestConvertToAttributeValue_Unsupported(t *testing.T) {
	_, err := expr.ConvertToAttributeValue(make(chan int))
	require.Error(t, err)
	assert.ErrorIs(t, err, dqerrors.ErrUnsupportedType)
}

func TestConvertValues(t *testing.T) {
	out, err := expr.ConvertValues(map[string]any{":val1": "a", ":val2": 2})
	require.NoError(t, err)
	assert.Equal(t, map[string]types.AttributeValue{
		":val1": &types.AttributeValueMemberS{Value: "a"},
		":val2": &types.AttributeValueMemberN{Value: "2"},
	}, out)

	_, err = expr.ConvertValues(map[string]any{":val1": func() {}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ":val1")
}
