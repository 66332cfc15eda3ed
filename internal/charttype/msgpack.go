package charttype

import "github.com/vmihailenco/msgpack/v5"

var (
	_ msgpack.CustomEncoder = Family(0)
	_ msgpack.CustomDecoder = (*Family)(nil)
)

// EncodeMsgpack writes the family as its name so exported plans match the JSON form
func (f Family) EncodeMsgpack(enc *msgpack.Encoder) error {
	if f == Unknown {
		return enc.EncodeString("")
	}
	return enc.EncodeString(f.String())
}

// DecodeMsgpack reads a family name written by EncodeMsgpack
func (f *Family) DecodeMsgpack(dec *msgpack.Decoder) error {
	name, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return f.UnmarshalText([]byte(name))
}
