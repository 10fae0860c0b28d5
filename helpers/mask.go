package helpers

// MaskKey hides all but the first two characters of a session key for logs.
func MaskKey(key string) string {
	if len(key) <= 2 {
		return "****"
	}
	return key[:2] + "****"
}
