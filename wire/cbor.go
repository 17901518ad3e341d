package wire

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"

	"github.com/bobg/hstr"
)

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2),
// so equal Strs always encode to identical bytes.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("wire: CBOR encoder initialization failed: " + err.Error())
	}
}

// MarshalCBOR encodes s as a CBOR byte string
// holding its serialized form.
func MarshalCBOR(s *hstr.Str) ([]byte, error) {
	return encMode.Marshal(s.Bytes())
}

// UnmarshalCBOR decodes a Str encoded by MarshalCBOR.
// The result is free-standing and does not share memory with data.
func UnmarshalCBOR(data []byte) (*hstr.Str, error) {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return nil, errors.Wrap(err, "decoding CBOR")
	}
	return hstr.Decode(b)
}

// UnmarshalCBORInto decodes a Str encoded by MarshalCBOR
// and interns it into in,
// reusing the hash it carries.
// As with InternAll, data must come from a trusted source.
func UnmarshalCBORInto(data []byte, in hstr.Interner) (*hstr.Str, error) {
	s, err := UnmarshalCBOR(data)
	if err != nil {
		return nil, err
	}
	return in.InternWithHash(s.Hash(), s.String()), nil
}
