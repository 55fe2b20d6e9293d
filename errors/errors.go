package errors

// Error is the error type used throughout this module, providing cause
// chaining and stack trace capture on top of the standard error interface.
//
// Methods that return Error may either modify the current error in place or
// return a new instance. Callers should always use the returned value and
// must not assume that the original error remains unchanged.
type Error interface {
	error

	// GetCause returns the list of underlying causes associated with this
	// error. The slice may be empty if no causes have been attached.
	GetCause() []error

	// AddCause attaches one or more underlying causes to this error. Nil
	// values are ignored.
	//
	// Note: This method may modify the current Error or return a new one.
	// Always use the returned value.
	AddCause(errors ...error) Error

	// GetStackTrace returns the stack trace captured for this error. The
	// slice is nil if no stack trace was filled.
	GetStackTrace() StackFrames

	// FillStackTrace captures the current call stack starting from the
	// caller of FillStackTrace itself and attaches it to the error.
	//
	// The skip parameter controls how many additional stack frames are
	// omitted. A value of 0 includes the caller of FillStackTrace, a value
	// of 1 skips that frame, and higher values skip more.
	//
	// Note: This method may modify the current Error or return a new one.
	// Always use the returned value.
	FillStackTrace(skip int) Error
}

// ========================================

func is(source Error, target error) bool {
	if err, ok := target.(Error); ok {
		return source.Error() == err.Error()
	}
	return false
}

func as(source Error, target any) bool {
	if err, ok := target.(*Error); ok {
		if source.Error() == (*err).Error() {
			*err = source
			return true
		}
	}
	return false
}

func concat(result *[]error, errors ...error) {
	// assert result != nil
	for _, err := range errors {
		if err != nil {
			*result = append(*result, err)
		}
	}
}
