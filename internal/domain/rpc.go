package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSON-RPC version and error codes used by the agent.
const (
	JSONRPCVersion = "2.0"

	CodeMethodNotFound = -32601
	CodeInternalError  = -32603
)

// RPC method names.
const (
	MethodMessageSend = "message/send"
	MethodTasksGet    = "tasks/get"
)

// RPCRequest is the inbound JSON-RPC envelope.
type RPCRequest struct {
	JSONRPC string                     `json:"jsonrpc"`
	Method  string                     `json:"method"`
	Params  map[string]json.RawMessage `json:"params"`
	ID      json.RawMessage            `json:"id,omitempty"`
}

// UnmarshalJSON validates the envelope shape.
func (r *RPCRequest) UnmarshalJSON(b []byte) error {
	var wire struct {
		JSONRPC *string         `json:"jsonrpc"`
		Method  *string         `json:"method"`
		Params  json.RawMessage `json:"params"`
		ID      json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	version := JSONRPCVersion
	if wire.JSONRPC != nil {
		version = *wire.JSONRPC
	}
	if version != JSONRPCVersion {
		return fmt.Errorf("unsupported jsonrpc version %q", version)
	}
	if wire.Method == nil {
		return fmt.Errorf("method is required")
	}

	params := bytes.TrimSpace(wire.Params)
	if len(params) == 0 || params[0] != '{' {
		return fmt.Errorf("params must be an object")
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(params, &decoded); err != nil {
		return fmt.Errorf("params: %w", err)
	}

	id := bytes.TrimSpace(wire.ID)
	if len(id) > 0 && id[0] != '"' && id[0] != 'n' && (id[0] < '0' || id[0] > '9') && id[0] != '-' {
		return fmt.Errorf("id must be a string, number or null")
	}

	*r = RPCRequest{JSONRPC: version, Method: *wire.Method, Params: decoded, ID: wire.ID}
	return nil
}

// RPCError is the JSON-RPC error object.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RPCResponse is the outbound JSON-RPC envelope. ID is written as null when absent.
type RPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  *Task           `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// NewErrorResponse builds an error envelope echoing the request id.
func NewErrorResponse(id json.RawMessage, code int, message string) RPCResponse {
	return RPCResponse{
		JSONRPC: JSONRPCVersion,
		ID:      nullableID(id),
		Error:   &RPCError{Code: code, Message: message},
	}
}

// NewResultResponse wraps a task in a result envelope.
func NewResultResponse(id json.RawMessage, task Task) RPCResponse {
	return RPCResponse{
		JSONRPC: JSONRPCVersion,
		ID:      nullableID(id),
		Result:  &task,
	}
}

func nullableID(id json.RawMessage) json.RawMessage {
	if len(bytes.TrimSpace(id)) == 0 {
		return json.RawMessage("null")
	}
	return id
}
