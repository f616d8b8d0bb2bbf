package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// EncodeRequest serializes a request envelope to wire bytes.
func EncodeRequest(req *Request) ([]byte, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return data, nil
}

// DecodeResponse parses wire bytes into a response envelope and verifies it
// against the expected request id.
//
// It fails with a CodecMalformed error when the payload is not valid JSON or
// carries both a result and an error, and with CodecIDMismatch when the
// response id is absent or differs from wantID. The error member is returned
// verbatim; classifying it is the caller's job.
func DecodeResponse(data []byte, wantID int64) (*Response, error) {
	var resp Response
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&resp); err != nil {
		return nil, newMalformed("invalid JSON", err)
	}

	if resp.HasResult() && resp.HasError() {
		return nil, newMalformed("both result and error present", nil)
	}

	gotID, ok := numericID(resp.ID)
	if !ok {
		return nil, newIDMismatch(fmt.Sprintf("expected id %d, got %s", wantID, describeID(resp.ID)))
	}
	if gotID != wantID {
		return nil, newIDMismatch(fmt.Sprintf("expected id %d, got %d", wantID, gotID))
	}

	return &resp, nil
}

// numericID extracts an integer id from its raw JSON form. Daemons echo the
// request id as a number; anything else (null, string, absent) fails.
func numericID(raw json.RawMessage) (int64, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0, false
	}
	id, err := strconv.ParseInt(string(trimmed), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func describeID(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "none"
	}
	return string(trimmed)
}
