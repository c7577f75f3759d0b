package envelope

// Builder constructs Response envelopes using a fluent API.
type Builder struct {
	resp *Response
}

// New creates a new envelope builder.
func New() *Builder {
	return &Builder{
		resp: &Response{
			SchemaVersion: CurrentSchemaVersion,
		},
	}
}

// Data sets the tool-specific payload.
func (b *Builder) Data(data interface{}) *Builder {
	b.resp.Data = data
	return b
}

// Warning appends a non-fatal issue.
func (b *Builder) Warning(code, message string) *Builder {
	b.resp.Warnings = append(b.resp.Warnings, Warning{Code: code, Message: message})
	return b
}

// Error sets the envelope-level error message.
func (b *Builder) Error(msg string) *Builder {
	b.resp.Error = &msg
	return b
}

// Suggest appends a recommended follow-up tool call.
func (b *Builder) Suggest(tool, reason string, params map[string]interface{}) *Builder {
	b.resp.SuggestedNextCalls = append(b.resp.SuggestedNextCalls, SuggestedCall{
		Tool:   tool,
		Params: params,
		Reason: reason,
	})
	return b
}

// Build returns the assembled envelope.
func (b *Builder) Build() *Response {
	return b.resp
}

// Operational wraps a payload in a plain success envelope.
func Operational(data interface{}) *Response {
	return New().Data(data).Build()
}
