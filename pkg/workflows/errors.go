package workflows

import "fmt"

// InvalidReferenceError reports a template reference that does not have
// the owner/name form.
type InvalidReferenceError struct {
	Reference string
}

// Error implements the error interface
func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("invalid template reference: %q (expected owner/name)", e.Reference)
}

// FetchError reports a failed template download.
type FetchError struct {
	URL        string
	StatusCode int
	Cause      error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP %d fetching %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("error fetching %s: %v", e.URL, e.Cause)
}

// Unwrap returns the underlying error
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// GitError reports a git command that exited non-zero, including the
// command's combined output for diagnostics.
type GitError struct {
	Args   []string
	Output string
	Cause  error
}

// Error implements the error interface
func (e *GitError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("git %v: %v: %s", e.Args, e.Cause, e.Output)
	}
	return fmt.Sprintf("git %v: %v", e.Args, e.Cause)
}

// Unwrap returns the underlying error
func (e *GitError) Unwrap() error {
	return e.Cause
}
