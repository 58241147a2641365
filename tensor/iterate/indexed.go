package iterate

// Indexed calls body once per element of xs, in order, passing the
// zero-based position alongside the element. A non-nil error from body halts
// the remaining iterations and is returned unmodified. Returns nil once xs
// is exhausted.
func Indexed[T any](xs []T, body func(i int, v T) error) error {
	for i, v := range xs {
		if err := body(i, v); err != nil {
			return err
		}
	}
	return nil
}
