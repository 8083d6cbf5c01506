package serverutils

// ErrorResponse is the single error body shape used by every endpoint.
func ErrorResponse(message string) map[string]string {
	return map[string]string{
		"error": message,
	}
}
