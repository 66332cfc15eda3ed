package reports

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/mazilong/tui.chart/internal/chart"
)

// Plan encodings
const (
	EncodingJSON    = "json"
	EncodingMsgpack = "msgpack"
)

// EncodeFrame serializes a drawn frame. Msgpack output uses the JSON field
// names so both encodings decode to the same document.
func EncodeFrame(frame *chart.Frame, encoding string) ([]byte, error) {
	switch encoding {
	case EncodingMsgpack:
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		enc.SetCustomStructTag("json")
		enc.SetOmitEmpty(true)
		if err := enc.Encode(frame); err != nil {
			return nil, fmt.Errorf("failed to encode msgpack frame: %w", err)
		}
		return buf.Bytes(), nil
	case EncodingJSON, "":
		data, err := json.MarshalIndent(frame, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json frame: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported plan encoding %q", encoding)
	}
}

// DecodeFrame reads a frame written by EncodeFrame
func DecodeFrame(data []byte, encoding string) (*chart.Frame, error) {
	var frame chart.Frame
	switch encoding {
	case EncodingMsgpack:
		dec := msgpack.NewDecoder(bytes.NewReader(data))
		dec.SetCustomStructTag("json")
		if err := dec.Decode(&frame); err != nil {
			return nil, fmt.Errorf("failed to decode msgpack frame: %w", err)
		}
	case EncodingJSON, "":
		if err := json.Unmarshal(data, &frame); err != nil {
			return nil, fmt.Errorf("failed to decode json frame: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported plan encoding %q", encoding)
	}
	return &frame, nil
}
