package errors

// type check
var _ Error = String("")

// String is a string-based Error. It behaves like a simple error containing
// only a message, with no causes and no stack trace.
//
// String is often used as a starting point for building a full error with
// additional context. When causes or a stack trace are added, a new Error is
// created that keeps the message and includes the added details:
//
//	err := errors.String("read failed").AddCause(inner)
//
// String can also be used as a constant error value, for example:
//
//	const ErrRead = errors.String("read failed")
type String string

func (e String) Error() string {
	return string(e)
}

func (e String) GetCause() []error {
	return nil
}

func (e String) AddCause(errors ...error) Error {
	var cause []error
	concat(&cause, errors...)
	if len(cause) == 0 {
		return e
	}
	return fullError{
		String: string(e),
		Cause:  cause,
	}
}

func (e String) GetStackTrace() StackFrames {
	return nil
}

func (e String) FillStackTrace(skip int) Error {
	return fullError{
		String:     string(e),
		StackTrace: StackTrace(skip + 1),
	}
}

func (e String) Is(target error) bool {
	return is(e, target)
}

func (e String) As(target any) bool {
	return as(e, target)
}
