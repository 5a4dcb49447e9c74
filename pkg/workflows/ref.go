package workflows

import (
	"fmt"
	"strings"
)

// TemplateRef identifies one template in a remote actions-workflows
// repository.
type TemplateRef struct {
	Owner string
	Name  string
}

// ParseTemplateRef parses an owner/name template reference. Both parts
// must be non-empty and free of slashes and whitespace.
func ParseTemplateRef(reference string) (TemplateRef, error) {
	parts := strings.Split(reference, "/")
	if len(parts) != 2 {
		return TemplateRef{}, &InvalidReferenceError{Reference: reference}
	}

	owner, name := parts[0], parts[1]
	if owner == "" || name == "" {
		return TemplateRef{}, &InvalidReferenceError{Reference: reference}
	}
	if strings.ContainsAny(owner, " \t") || strings.ContainsAny(name, " \t") {
		return TemplateRef{}, &InvalidReferenceError{Reference: reference}
	}

	return TemplateRef{Owner: owner, Name: name}, nil
}

// String returns the owner/name form of the reference.
func (r TemplateRef) String() string {
	return r.Owner + "/" + r.Name
}

// RawURL returns the raw content URL for the template on the default
// branch of the owner's actions-workflows repository.
func (r TemplateRef) RawURL() string {
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/actions-workflows/refs/heads/main/%s.yml", r.Owner, r.Name)
}
