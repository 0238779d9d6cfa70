package models

// Response is the JSON envelope every endpoint returns: exactly one of
// Data or Error is set, so clients see {"data": ...} or {"error": "..."}.
type Response struct {
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}
