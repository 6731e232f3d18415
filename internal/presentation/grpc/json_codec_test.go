package grpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestAdapterCodecRegistered(t *testing.T) {
	codec := encoding.GetCodec("json")
	require.NotNil(t, codec, "json codec should be registered at init")
}

func TestAdapterCodecRoundTrip(t *testing.T) {
	codec := adapterCodec{}

	in := &SubmitMessageRequest{RawXML: "<Document/>", Source: "swift-connector"}
	data, err := codec.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"raw_xml"`)

	var out SubmitMessageRequest
	require.NoError(t, codec.Unmarshal(data, &out))
	assert.Equal(t, in.RawXML, out.RawXML)
	assert.Equal(t, in.Source, out.Source)
}

func TestAdapterCodecUnmarshalError(t *testing.T) {
	codec := adapterCodec{}

	var out SubmitMessageRequest
	err := codec.Unmarshal([]byte("{not json"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
