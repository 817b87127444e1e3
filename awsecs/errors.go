package awsecs

import "fmt"

// AuthError indicates AWS connection or credential setup failed.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("can't authorize connection: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
