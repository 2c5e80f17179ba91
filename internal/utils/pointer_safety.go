package utils

// Ptr returns a pointer to v, for building partial-update payloads where nil
// means "leave unchanged".
func Ptr[T any](v T) *T {
	return &v
}
