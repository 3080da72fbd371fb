package health

import (
	"context"
	"fmt"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Service aggregates dependency checkers for the readiness endpoint.
type Service struct {
	checkers []Checker
}

func NewService(checkers ...Checker) *Service {
	return &Service{checkers: checkers}
}

// CheckError names the dependency that failed.
type CheckError struct {
	Checker string
	Err     error
}

func (e *CheckError) Error() string { return fmt.Sprintf("%s: %v", e.Checker, e.Err) }

func (e *CheckError) Unwrap() error { return e.Err }

// Ready runs checkers in order and stops at the first failure.
func (s *Service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return &CheckError{Checker: ch.Name(), Err: err}
		}
	}
	return nil
}
