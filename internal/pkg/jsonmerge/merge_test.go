package jsonmerge_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/search-enrichment-service/internal/pkg/jsonmerge"
)

func decode(t *testing.T, s string) interface{} {
	t.Helper()
	tree, err := jsonmerge.Decode([]byte(s))
	require.NoError(t, err)
	return tree
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		overlay  string
		expected string
	}{
		{
			name:     "keys only in base are kept",
			base:     `{"search_id":"abc","currency":"USD"}`,
			overlay:  `{"geo":"I"}`,
			expected: `{"search_id":"abc","currency":"USD","geo":"I"}`,
		},
		{
			name:     "scalar overlay wins",
			base:     `{"cabin":"Y","n":1}`,
			overlay:  `{"cabin":"M","n":2.5}`,
			expected: `{"cabin":"M","n":2.5}`,
		},
		{
			name:     "nested objects merge recursively",
			base:     `{"a":{"x":1,"y":{"k":"v"}}}`,
			overlay:  `{"a":{"y":{"z":true}}}`,
			expected: `{"a":{"x":1,"y":{"k":"v","z":true}}}`,
		},
		{
			name:     "arrays are replaced wholesale",
			base:     `{"list":[1,2,3],"objs":[{"a":1},{"b":2}]}`,
			overlay:  `{"list":[9],"objs":[{"c":3}]}`,
			expected: `{"list":[9],"objs":[{"c":3}]}`,
		},
		{
			name:     "object replaced by scalar",
			base:     `{"a":{"x":1}}`,
			overlay:  `{"a":"flat"}`,
			expected: `{"a":"flat"}`,
		},
		{
			name:     "scalar replaced by object",
			base:     `{"a":"flat"}`,
			overlay:  `{"a":{"x":1}}`,
			expected: `{"a":{"x":1}}`,
		},
		{
			name:     "null overlay replaces value",
			base:     `{"a":{"x":1}}`,
			overlay:  `{"a":null}`,
			expected: `{"a":null}`,
		},
		{
			name:     "non-object root is replaced",
			base:     `[1,2]`,
			overlay:  `{"a":1}`,
			expected: `{"a":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := jsonmerge.Merge(decode(t, tt.base), decode(t, tt.overlay))

			out, err := json.Marshal(result)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(out))
		})
	}
}

func TestMerge_Idempotent(t *testing.T) {
	base := `{"search_id":"1","recos":[{"price":"10"}],"meta":{"source":"x","v":1}}`
	overlay := `{"recos":[{"price_EUR":9.5}],"meta":{"v":2},"geo":"D"}`

	once := jsonmerge.Merge(decode(t, base), decode(t, overlay))
	onceJSON, err := json.Marshal(once)
	require.NoError(t, err)

	twice := jsonmerge.Merge(decode(t, string(onceJSON)), decode(t, overlay))
	twiceJSON, err := json.Marshal(twice)
	require.NoError(t, err)

	assert.JSONEq(t, string(onceJSON), string(twiceJSON))
}

func TestDecode_PreservesNumbers(t *testing.T) {
	tree := decode(t, `{"big":12345678901234567890,"f":0.1}`)

	out, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.Equal(t, `{"big":12345678901234567890,"f":0.1}`, string(out))
}

func TestDecode_RejectsTrailingData(t *testing.T) {
	_, err := jsonmerge.Decode([]byte(`{"a":1} {"b":2}`))
	assert.Error(t, err)
}

func TestDeepCopy_IsIndependent(t *testing.T) {
	original := decode(t, `{"a":{"b":[1,{"c":2}]}}`)
	copied := jsonmerge.DeepCopy(original)

	copied.(map[string]interface{})["a"].(map[string]interface{})["b"] = "changed"

	out, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":{"b":[1,{"c":2}]}}`, string(out))
}
