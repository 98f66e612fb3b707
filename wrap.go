// wrap.go — adapting arbitrary errors into structured ones.
package structerr

import "errors"

// From converts err into an *Error.
//   - nil → nil
//   - an *Error anywhere in err's chain → that value, amended with opts. Text
//     added by outer wrappers (fmt.Errorf("layer: %w", se)) is not part of
//     the result; keep err itself if that text matters.
//   - any other error → New(err, opts...), with the stack starting at the
//     caller of From
func From(err error, opts ...Option) *Error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) && se != nil {
		return se.Amend(opts...)
	}
	return build(err, 1, opts)
}
