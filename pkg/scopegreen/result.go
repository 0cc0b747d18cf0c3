package scopegreen

// Result is the outcome of one API call: exactly one of Payload or Err
// is set. Payload is the decoded response body, untouched.
type Result struct {
	Payload any
	Err     *CallError
}

// CallError is a normalized API failure. Details carries the remote
// error body (parsed JSON, or raw text when the body is not JSON) and
// is absent for transport-level failures.
type CallError struct {
	Message string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// OK reports whether the call succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Body renders the object handed back to the caller: the payload
// as-is on success, or an error object mirroring the wire shape
// {"error": ..., "details": ...} on failure.
func (r Result) Body() any {
	if r.Err == nil {
		return r.Payload
	}
	body := map[string]any{"error": r.Err.Message}
	if r.Err.Details != nil {
		body["details"] = r.Err.Details
	}
	return body
}

func errorResult(err *CallError) Result {
	return Result{Err: err}
}
