package model

import "fmt"

// Contributor identifies the person or automation owning a lock or a
// backup record.
type Contributor struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	_     struct{}
}

func (c Contributor) String() string {
	if c.Email == "" {
		return c.Name
	}
	if c.Name == "" {
		return c.Email
	}
	return fmt.Sprintf("%s <%s>", c.Name, c.Email)
}

// SameIdentity reports whether two contributors stand for the same
// identity. The name is the identity; the email is informational.
func (c Contributor) SameIdentity(other Contributor) bool {
	return c.Name == other.Name
}
