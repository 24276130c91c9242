package command

import "fmt"

// The parser distinguishes two failure modes as first-class outcomes:
// running out of tokens before a required token (MissingParameterError)
// and finding a token that does not match a required literal
// (InvalidTokenError). Commands that match no known shape at all raise
// InvalidCommandError.

// MissingParameterError reports an exhausted token stream, naming what
// was expected next.
type MissingParameterError struct {
	Want string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter: %s", e.Want)
}

// InvalidTokenError reports a present token that does not match the
// required literal.
type InvalidTokenError struct {
	Want string
	Got  string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token: expected %q, got %q", e.Want, e.Got)
}

// InvalidCommandError reports an unknown command family or sub-form.
type InvalidCommandError struct {
	Reason string
}

func (e *InvalidCommandError) Error() string {
	return fmt.Sprintf("invalid command: %s", e.Reason)
}
