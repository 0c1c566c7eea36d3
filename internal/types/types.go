// Package types holds the core domain entities shared across the
// store, reducer, and presentation layers.
package types

// User is a single profile record. ID is the identity and never changes
// after creation; the remaining fields are optional and carry no
// validation beyond presence.
type User struct {
	ID     int64  `json:"id"`
	Name   string `json:"name,omitempty"`
	Age    int    `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`
}
