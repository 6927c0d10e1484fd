package booking

import "errors"

var (
	// ErrLoginFormNotFound means the login inputs never appeared within the wait budget.
	ErrLoginFormNotFound = errors.New("login form not found")
	// ErrNavigationTimeout means a page transition did not complete in time.
	ErrNavigationTimeout = errors.New("navigation timeout")
	// ErrConfirmButtonNotFound means neither selector phase produced a usable confirm control.
	ErrConfirmButtonNotFound = errors.New("confirm button not found")
)

// ValidationError is a pre-flight rejection of CLI input. It always fires
// before the browser is touched.
type ValidationError struct {
	Reason string
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string { return e.Reason }

// VerificationError reports a booking attempt that did not land back on the
// bare base URL. Explicit carries whether the page showed a readable error
// banner (Reason is its text) or the failure is ambiguous (Reason describes
// the observed URL and page title).
type VerificationError struct {
	Reason    string
	URL       string
	PageTitle string
	Explicit  bool
}

func (e *VerificationError) Error() string { return "booking verification failed: " + e.Reason }
