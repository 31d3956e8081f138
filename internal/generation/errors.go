package generation

// NotConfiguredError indicates the LLM credential is absent. It is
// detected after request validation but before any outbound call, so
// research is never performed for a request that cannot succeed.
type NotConfiguredError struct{}

func (e *NotConfiguredError) Error() string {
	return "Groq API key not configured"
}

// GenerateError indicates an unexpected failure in the generation
// pipeline that the fallback path could not absorb.
type GenerateError struct {
	Message string
	Cause   error
}

func (e *GenerateError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *GenerateError) Unwrap() error {
	return e.Cause
}
