package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringToAddress(t *testing.T) {
	for _, tc := range []struct {
		desc string
		in   string
		err  error
		last byte
	}{
		{desc: "short form padded", in: "0x2", last: 2},
		{desc: "odd length", in: "0x1ab", last: 0xab},
		{desc: "full length", in: "0x" + "00000000000000000000000000000000000000000000000000000000000000ff", last: 0xff},
		{desc: "missing prefix", in: "ff", err: ErrMissingPrefix},
		{desc: "empty body", in: "0x", err: ErrWrongAddressLength},
		{desc: "too long", in: "0x" + string(make([]byte, 66)), err: ErrWrongAddressLength},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			addr, err := StringToAddress(tc.in)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.last, addr[AddressLength-1])
		})
	}
}

func TestAddressJSON(t *testing.T) {
	addr := MustStringToAddress("0x35a3")
	data, err := json.Marshal(addr)
	require.NoError(t, err)
	require.Equal(t, `"`+addr.String()+`"`, string(data))

	var decoded Address
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, addr, decoded)
}

func TestPublicKeyToAddressDependsOnScheme(t *testing.T) {
	pub := make([]byte, 32)
	require.NotEqual(t, PublicKeyToAddress(Ed25519Scheme, pub), PublicKeyToAddress(SignatureScheme(1), pub))
	require.False(t, PublicKeyToAddress(Ed25519Scheme, pub).IsEmpty())
}
