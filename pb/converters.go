package pb

import (
	"github.com/VKCOM/cxxflags/internal/flags"
	"golang.org/x/xerrors"
	"google.golang.org/protobuf/types/known/structpb"
)

// ResultToStruct encodes a result the same way a completion engine expects it: {"flags": [...], "do_cache": true}.
func ResultToStruct(res flags.Result) *structpb.Struct {
	values := make([]*structpb.Value, 0, len(res.Flags))
	for _, arg := range res.Flags {
		values = append(values, structpb.NewStringValue(arg))
	}
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"flags":    structpb.NewListValue(&structpb.ListValue{Values: values}),
			"do_cache": structpb.NewBoolValue(res.DoCache),
		},
	}
}

// StructToResult decodes a reply of FlagsForFile.
func StructToResult(s *structpb.Struct) (flags.Result, error) {
	var res flags.Result

	flagsValue, ok := s.GetFields()["flags"]
	if !ok {
		return res, xerrors.New("no 'flags' in reply")
	}
	list := flagsValue.GetListValue()
	if list == nil {
		return res, xerrors.New("'flags' is not a list")
	}
	res.Flags = make([]string, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		str, isStr := v.GetKind().(*structpb.Value_StringValue)
		if !isStr {
			return res, xerrors.Errorf("flags[%d] is not a string", i)
		}
		res.Flags = append(res.Flags, str.StringValue)
	}

	if doCache, ok := s.GetFields()["do_cache"]; ok {
		res.DoCache = doCache.GetBoolValue()
	}
	return res, nil
}
