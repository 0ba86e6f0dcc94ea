package export

import "errors"

var (
	// ErrEmptyAssessment is returned when the assessment has no questions.
	ErrEmptyAssessment = errors.New("assessment has no questions")
	// ErrMissingDependency indicates a requested format whose backend is not
	// usable in this process.
	ErrMissingDependency = errors.New("format backend unavailable")
	// ErrNoFormatsAvailable is returned when none of the requested formats
	// are usable.
	ErrNoFormatsAvailable = errors.New("no requested format is available")
	// ErrPackagingFailed is returned when every cell of the version-format
	// matrix failed and the package would be empty.
	ErrPackagingFailed = errors.New("no artifacts could be produced")
)
