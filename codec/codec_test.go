package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/votedapp/sponsorvote/codec"
	"github.com/votedapp/sponsorvote/common/types"
)

func TestEncodeDecode(t *testing.T) {
	addr := types.MustStringToAddress("0xabcd")
	buf, err := codec.Encode(&addr)
	require.NoError(t, err)
	require.Len(t, buf, types.AddressLength)

	var decoded types.Address
	require.NoError(t, codec.Decode(buf, &decoded))
	require.Equal(t, addr, decoded)
}

func TestEncodeReturnsOwnedBuffer(t *testing.T) {
	first := types.MustStringToAddress("0x1")
	buf, err := codec.Encode(&first)
	require.NoError(t, err)

	second := types.MustStringToAddress("0x2")
	_, err = codec.Encode(&second)
	require.NoError(t, err)
	require.Equal(t, first.Bytes(), buf)
}

func TestDecodeRejectsTrailingBytes(t *testing.T) {
	addr := types.MustStringToAddress("0x1")
	buf, err := codec.Encode(&addr)
	require.NoError(t, err)

	var decoded types.Address
	require.ErrorIs(t, codec.Decode(append(buf, 0), &decoded), codec.ErrTrailingBytes)
	require.Error(t, codec.Decode(buf[:10], &decoded))
}
