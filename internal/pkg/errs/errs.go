package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr as a sentinel so errors.Is(err, markErr) holds
// while keeping the original cause chain intact.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &marked{cause: cr.Mark(err, markErr), mark: markErr}
}

type marked struct {
	cause error
	mark  error
}

func (m *marked) Error() string { return m.cause.Error() }
func (m *marked) Unwrap() error { return m.cause }

// Is exposes the mark to the stdlib chain walker. cockroachdb's Mark alone
// is only matched by its own Is, not by errors.Is.
func (m *marked) Is(target error) bool { return target == m.mark }
