package models

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

var (
	_ msgpack.CustomEncoder = YAxisOption{}
	_ msgpack.CustomDecoder = (*YAxisOption)(nil)
)

// EncodeMsgpack writes the same shape as MarshalJSON: a map, an array or nil
func (o YAxisOption) EncodeMsgpack(enc *msgpack.Encoder) error {
	switch {
	case o.list:
		return enc.Encode(o.items)
	case len(o.items) == 1:
		return enc.Encode(o.items[0])
	default:
		return enc.EncodeNil()
	}
}

// DecodeMsgpack reads a map, an array of maps or nil
func (o *YAxisOption) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.PeekCode()
	if err != nil {
		return fmt.Errorf("failed to peek yAxis: %w", err)
	}

	switch {
	case code == msgpcode.Nil:
		*o = YAxisOption{}
		return dec.DecodeNil()
	case msgpcode.IsFixedArray(code) || code == msgpcode.Array16 || code == msgpcode.Array32:
		var items []AxisOption
		if err := dec.Decode(&items); err != nil {
			return fmt.Errorf("failed to decode yAxis list: %w", err)
		}
		*o = YAxisList(items...)
	default:
		var item AxisOption
		if err := dec.Decode(&item); err != nil {
			return fmt.Errorf("failed to decode yAxis: %w", err)
		}
		*o = SingleYAxis(item)
	}
	return nil
}
