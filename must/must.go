// Package must converts errors into panics, for call sites where an error
// can only mean a programming mistake or unusable input.
package must

func Must2[T1 any](p1 T1, err error) T1 {
	if err != nil {
		panic(err)
	}
	return p1
}
