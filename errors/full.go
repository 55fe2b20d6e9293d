package errors

type fullError struct {
	String     string
	Cause      []error
	StackTrace StackFrames
}

func (e fullError) Error() string {
	return e.String
}

func (e fullError) GetCause() []error {
	return e.Cause
}

func (e fullError) AddCause(errors ...error) Error {
	concat(&e.Cause, errors...)
	return e
}

func (e fullError) GetStackTrace() StackFrames {
	return e.StackTrace
}

func (e fullError) FillStackTrace(skip int) Error {
	e.StackTrace = StackTrace(skip + 1)
	return e
}

func (e fullError) Unwrap() []error {
	return e.Cause
}

func (e fullError) Is(target error) bool {
	return is(e, target)
}

func (e fullError) As(target any) bool {
	return as(e, target)
}
