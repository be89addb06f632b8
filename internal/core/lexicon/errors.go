package lexicon

import (
	"errors"
	"fmt"
)

// Registry errors
var (
	ErrDuplicateID       = errors.New("lexicon id already registered")
	ErrInvalidSchema     = errors.New("lexicon does not match the lexicon v1 meta-schema")
	ErrInvalidDefinition = errors.New("invalid lexicon definition")
	ErrUnresolvedRef     = errors.New("unresolved lexicon reference")
)

// ErrInvalidNSID is returned by ParseNSID. Registry.Add reports it wrapped
// in ErrInvalidSchema.
var ErrInvalidNSID = errors.New("invalid NSID")

// ParseError reports a file whose content is not a JSON object.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON in %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// VersionMismatchError reports a document whose lexicon field is not Version.
// Found holds the decoded value, nil when the field is absent.
type VersionMismatchError struct {
	File  string
	Found any
}

func (e *VersionMismatchError) Error() string {
	if e.Found == nil {
		return fmt.Sprintf("Lexicon version must be %d in %s (field missing)", Version, e.File)
	}
	return fmt.Sprintf("Lexicon version must be %d in %s (found %v)", Version, e.File, e.Found)
}

// IdentifierMismatchError reports a document whose id differs from its
// filename without the .json extension.
type IdentifierMismatchError struct {
	File     string
	Found    string
	Expected string
}

func (e *IdentifierMismatchError) Error() string {
	return fmt.Sprintf("Lexicon id mismatch in %s: id='%s' expected '%s'", e.File, e.Found, e.Expected)
}

// RegistryError is returned by Registry operations. Err wraps one of the
// registry sentinels and, for meta-schema failures, the validation error.
type RegistryError struct {
	ID  string
	Def string
	Err error
}

func (e *RegistryError) Error() string {
	if e.Def != "" {
		return fmt.Sprintf("lexicon %s#%s: %v", e.ID, e.Def, e.Err)
	}
	return fmt.Sprintf("lexicon %s: %v", e.ID, e.Err)
}

func (e *RegistryError) Unwrap() error { return e.Err }
