// internal/catalog/errors.go
package catalog

import "fmt"

// DuplicateKeyError is returned by Merge when two groups define the same id.
type DuplicateKeyError struct {
	ID          string
	FirstGroup  string
	SecondGroup string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate category id %q: defined in %q and %q", e.ID, e.FirstGroup, e.SecondGroup)
}

// KeyMismatchError is returned when a group's map key differs from the record id.
type KeyMismatchError struct {
	Group string
	Key   string
	ID    string
}

func (e *KeyMismatchError) Error() string {
	return fmt.Sprintf("group %q: key %q does not match record id %q", e.Group, e.Key, e.ID)
}

type InvalidRecordError struct {
	Group string
	ID    string
	Err   error
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("group %q: category %q: %v", e.Group, e.ID, e.Err)
}

func (e *InvalidRecordError) Unwrap() error {
	return e.Err
}
