// Package encode offers an optional compact binary encoding for parsed
// response records, for callers that want to persist results. Nothing in the
// library itself depends on it.
package encode

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/David-OConnor/bio-apis/pkg/common/code"
)

func Marshal(v any) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, code.InvalidInputErr.WithErr(err)
	}
	return data, nil
}

func Unmarshal(data []byte, v any) error {
	if err := msgpack.Unmarshal(data, v); err != nil {
		return code.DecodeErr.WithErr(err)
	}
	return nil
}
