/*
Package result implements the outcome of a computation that may fail.

Result is used where a failure is expected and recoverable, e.g. parsing
an image source which may not be a valid URI. Clients pattern-match:

	var u *url.URL
	var err error
	switch m := r.Match(); m {
	case m.Ok(&u):
	case m.Err(&err):
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package result

import "github.com/npillmayer/incdom/maybe"

type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
	ToMaybe() maybe.Maybe[T]
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure. A nil err is a programming error and is treated
// as success with the zero value.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// From converts Go's (value, error) idiom into a Result.
func From[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

// ToMaybe drops the error, Err becoming Nothing.
func (r result[T]) ToMaybe() maybe.Maybe[T] {
	return maybe.Of(r.value, r.err == nil)
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
