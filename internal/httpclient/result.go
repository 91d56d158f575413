package httpclient

// Result holds exactly one of a success value or a failure error.
// The zero Result is a failure carrying [ErrNilFailure]; only [Ok] builds a
// success.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Fail returns a failed Result holding err. A nil err is replaced by
// [ErrNilFailure] so the Result is never both or neither.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilFailure
	}

	return Result[T]{err: err}
}

func (r Result[T]) IsOk() bool { return r.ok }

func (r Result[T]) IsErr() bool { return !r.ok }

// Value returns the success value, or the zero T for a failure.
func (r Result[T]) Value() T { return r.value }

// Err returns the failure error, or nil for a success.
func (r Result[T]) Err() error {
	switch {
	case r.ok:
		return nil
	case r.err == nil:
		return ErrNilFailure
	default:
		return r.err
	}
}

// ErrorMessage returns the failure text, or "" for a success.
func (r Result[T]) ErrorMessage() string {
	if r.ok {
		return ""
	}

	return r.Err().Error()
}

// Unwrap returns the Result as a conventional (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.Err()
}
