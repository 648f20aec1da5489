package handler

import (
	"encoding/json"
	"net/http"

	"github.com/exatools/exa-mcp-server/internal/models"
	"github.com/exatools/exa-mcp-server/internal/tools"
	"github.com/rs/zerolog/log"
)

const (
	serverName      = "exa-mcp-server"
	protocolVersion = "2025-03-26"

	codeParseError     = -32700
	codeInvalidParams  = -32602
	codeMethodNotFound = -32601
)

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

type rpcResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type callToolParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

// MCPHandler serves the tool-invocation protocol over JSON-RPC 2.0 on a
// single HTTP endpoint. Tool-level failures never surface here; the registry
// folds them into the text result, so only malformed requests produce a
// JSON-RPC error.
type MCPHandler struct {
	registry *tools.Registry
}

func NewMCPHandler(registry *tools.Registry) *MCPHandler {
	return &MCPHandler{registry: registry}
}

// Serve handles POST /mcp
func (h *MCPHandler) Serve(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRPC(w, rpcResponse{
			JSONRPC: "2.0",
			Error:   &rpcError{Code: codeParseError, Message: "parse error: " + err.Error()},
		})
		return
	}

	resp := rpcResponse{JSONRPC: "2.0", ID: req.ID}

	switch req.Method {
	case "initialize":
		resp.Result = map[string]any{
			"protocolVersion": protocolVersion,
			"capabilities":    map[string]any{"tools": map[string]any{}},
			"serverInfo":      map[string]any{"name": serverName, "version": version},
		}
	case "ping":
		resp.Result = map[string]any{}
	case "tools/list":
		resp.Result = map[string]any{"tools": h.registry.List()}
	case "tools/call":
		var params callToolParams
		if err := json.Unmarshal(req.Params, &params); err != nil || params.Name == "" {
			resp.Error = &rpcError{Code: codeInvalidParams, Message: "invalid tools/call params"}
			break
		}
		log.Debug().Str("tool", params.Name).Msg("tool call")
		resp.Result = map[string]any{"content": h.registry.Dispatch(r.Context(), params.Name, params.Arguments)}
	default:
		resp.Error = &rpcError{Code: codeMethodNotFound, Message: "method not found: " + req.Method}
	}

	writeRPC(w, resp)
}

func writeRPC(w http.ResponseWriter, resp rpcResponse) {
	models.WriteJSON(w, http.StatusOK, resp)
}
