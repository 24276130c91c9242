package command

import "strings"

// cursor is a left-to-right position in the token list. There is no
// backtracking: every method either consumes at the current position or
// fails.
type cursor struct {
	tokens []string
	pos    int
}

// take consumes and returns the free-form token at the cursor. An
// exhausted stream is a MissingParameterError naming what was expected.
func (c *cursor) take(what string) (string, error) {
	if c.pos >= len(c.tokens) {
		return "", &MissingParameterError{Want: what}
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, nil
}

// expect consumes the required literal (case-insensitive) at the cursor.
// Exhaustion is a MissingParameterError; a mismatched token is an
// InvalidTokenError.
func (c *cursor) expect(literal string) error {
	if c.pos >= len(c.tokens) {
		return &MissingParameterError{Want: literal}
	}
	if !strings.EqualFold(c.tokens[c.pos], literal) {
		return &InvalidTokenError{Want: literal, Got: c.tokens[c.pos]}
	}
	c.pos++
	return nil
}

// accept consumes the literal if it is present at the cursor and reports
// whether it did. Used for optional keywords.
func (c *cursor) accept(literal string) bool {
	if c.pos < len(c.tokens) && strings.EqualFold(c.tokens[c.pos], literal) {
		c.pos++
		return true
	}
	return false
}

// done reports whether every token has been consumed.
func (c *cursor) done() bool { return c.pos >= len(c.tokens) }

// equalFold is shorthand for case-insensitive literal comparison, the
// matching rule for every keyword in the grammar.
func equalFold(a, b string) bool { return strings.EqualFold(a, b) }
