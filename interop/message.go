package interop

import (
	"encoding/json"
	"fmt"

	"github.com/abyssparanoia/blender-go/internal/ir"
)

// Op names a protocol operation.
type Op string

const (
	OpHello Op = "hello"
	OpGet   Op = "get"
	OpSet   Op = "set"
	OpCall  Op = "call"
	OpLen   Op = "len"
	OpKeys  Op = "keys"
	OpFind  Op = "find"
	OpPing  Op = "ping"
)

// ValidOps defines the operations a host must serve.
var ValidOps = map[Op]bool{
	OpHello: true,
	OpGet:   true,
	OpSet:   true,
	OpCall:  true,
	OpLen:   true,
	OpKeys:  true,
	OpFind:  true,
	OpPing:  true,
}

// Request is one protocol request. ID and Seq are assigned by the Client.
type Request struct {
	ID    string      `json:"id"`
	Seq   int64       `json:"seq"`
	Op    Op          `json:"op"`
	Path  string      `json:"path"`
	Value ir.IRValue  `json:"value,omitempty"` // set only
	Args  ir.IRObject `json:"args,omitempty"`  // call and find
}

// UnmarshalJSON decodes a request, keeping host references as ir.IRRef.
func (r *Request) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    string          `json:"id"`
		Seq   int64           `json:"seq"`
		Op    Op              `json:"op"`
		Path  string          `json:"path"`
		Value json.RawMessage `json:"value"`
		Args  ir.IRObject     `json:"args"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Request{ID: raw.ID, Seq: raw.Seq, Op: raw.Op, Path: raw.Path, Args: raw.Args}
	if len(raw.Value) > 0 {
		v, err := ir.UnmarshalIRValue(raw.Value)
		if err != nil {
			return fmt.Errorf("request value: %w", err)
		}
		r.Value = v
	}
	return nil
}

// WireError is the error payload of a failed response. Type is the host
// exception class name, e.g. "AttributeError".
type WireError struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Traceback string `json:"traceback,omitempty"`
}

// Response answers the request with the same ID.
type Response struct {
	ID    string     `json:"id"`
	OK    bool       `json:"ok"`
	Value ir.IRValue `json:"value,omitempty"`
	Error *WireError `json:"error,omitempty"`
}

// UnmarshalJSON decodes a response. A missing value decodes as ir.IRNull.
func (r *Response) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    string          `json:"id"`
		OK    bool            `json:"ok"`
		Value json.RawMessage `json:"value"`
		Error *WireError      `json:"error"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Response{ID: raw.ID, OK: raw.OK, Value: ir.IRNull{}, Error: raw.Error}
	if len(raw.Value) > 0 {
		v, err := ir.UnmarshalIRValue(raw.Value)
		if err != nil {
			return fmt.Errorf("response value: %w", err)
		}
		r.Value = v
	}
	return nil
}

// encodeRequest marshals a request for the wire.
func encodeRequest(req Request) ([]byte, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, &ProtocolError{Message: fmt.Sprintf("encode %s %s", req.Op, req.Path), Err: err}
	}
	return data, nil
}

// decodeResponse unmarshals a response from the wire.
func decodeResponse(data []byte) (Response, error) {
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return Response{}, &ProtocolError{Message: "decode response", Err: err}
	}
	if resp.ID == "" {
		return Response{}, &ProtocolError{Message: "response without id"}
	}
	if !resp.OK && resp.Error == nil {
		resp.Error = &WireError{Type: "RuntimeError", Message: "host reported failure without error"}
	}
	return resp, nil
}
