package grpc

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// The hand-rolled service descriptor in proto.go exchanges plain structs
// rather than generated protobuf messages, so requests and responses ride a
// JSON wire codec. Clients select it with the "json" content-subtype.
func init() {
	encoding.RegisterCodec(adapterCodec{})
}

type adapterCodec struct{}

func (adapterCodec) Name() string { return "json" }

func (adapterCodec) Marshal(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", v, err)
	}
	return data, nil
}

func (adapterCodec) Unmarshal(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %T: %w", v, err)
	}
	return nil
}
