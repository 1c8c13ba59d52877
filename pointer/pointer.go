package pointer

func FromAny[T any](v T) *T {
	return &v
}

// FromNonEmptyString returns nil for an empty string
func FromNonEmptyString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func ToString(p *string) string {
	if p == nil {
		return ""
	}

	return *p
}
