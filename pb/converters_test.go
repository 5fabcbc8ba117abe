package pb

import (
	"testing"

	"github.com/VKCOM/cxxflags/internal/flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestResultToStruct(t *testing.T) {
	s := ResultToStruct(flags.Result{Flags: []string{"-Wall", "-I", "/p"}, DoCache: true})

	assert.Equal(t, map[string]interface{}{
		"flags":    []interface{}{"-Wall", "-I", "/p"},
		"do_cache": true,
	}, s.AsMap())

	res, err := StructToResult(s)
	require.NoError(t, err)
	assert.Equal(t, flags.Result{Flags: []string{"-Wall", "-I", "/p"}, DoCache: true}, res)
}

func TestStructToResult_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]interface{}
	}{
		{"no flags", map[string]interface{}{"do_cache": true}},
		{"flags not a list", map[string]interface{}{"flags": "-Wall"}},
		{"flag not a string", map[string]interface{}{"flags": []interface{}{"-Wall", 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := structpb.NewStruct(tt.in)
			require.NoError(t, err)
			_, err = StructToResult(s)
			assert.Error(t, err)
		})
	}
}

func TestStructToResult_NoDoCache(t *testing.T) {
	s, err := structpb.NewStruct(map[string]interface{}{"flags": []interface{}{}})
	require.NoError(t, err)

	res, err := StructToResult(s)
	require.NoError(t, err)
	assert.False(t, res.DoCache)
	assert.Empty(t, res.Flags)
}
