package types

import (
	"encoding/base64"
	"encoding/json"
)

// Base64Enc is a byte slice that travels as a standard base64 string in JSON.
type Base64Enc []byte

// MarshalJSON implements json.Marshaler.
func (b Base64Enc) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(b))
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Base64Enc) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Bytes returns the raw bytes.
func (b Base64Enc) Bytes() []byte {
	return b
}

// String returns the base64 form.
func (b Base64Enc) String() string {
	return base64.StdEncoding.EncodeToString(b)
}

// Base64FromString decodes a base64 string.
func Base64FromString(s string) (Base64Enc, error) {
	v, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return Base64Enc(v), nil
}
