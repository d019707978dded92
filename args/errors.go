package args

// ErrorType represents error categories for registration and parsing.
// Registration-time types are reported by the registration entry points;
// parse-time types are reported by Parse.
type ErrorType string

const (
	// Registration-time errors.
	ErrorTypeDuplicateLongName  ErrorType = "duplicate_long_name"
	ErrorTypeDuplicateShortName ErrorType = "duplicate_short_name"
	ErrorTypeTooShortName       ErrorType = "too_short_name"
	ErrorTypeBadShortName       ErrorType = "bad_short_name"
	ErrorTypeBadOrdering        ErrorType = "bad_positional_ordering"

	// Parse-time errors.
	ErrorTypeUnexpectedArgument ErrorType = "unexpected_argument"
	ErrorTypeBadArgument        ErrorType = "bad_argument"
	ErrorTypeRepeatedArgument   ErrorType = "repeated_argument"
	ErrorTypeMissingArgument    ErrorType = "missing_argument"
	ErrorTypeMissingPositional  ErrorType = "missing_positional"
)

// Error is the single structured error value surfaced by this package.
// Every failure carries a human-readable message plus the parameter
// reference and offending token where applicable. The caller is expected
// to print it and exit non-zero; the package itself never exits or logs.
type Error struct {
	Type       ErrorType
	Message    string
	Param      string // long name of the parameter involved, if any
	Token      string // offending command-line token, if any
	Suggestion string // closest registered long name for unknown options
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// NewError creates a new Error with the given type and message.
func NewError(typ ErrorType, message string) *Error {
	return &Error{
		Type:    typ,
		Message: message,
	}
}
