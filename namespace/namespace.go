// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package namespace synthesizes qualified names by walking the chain of
// enclosing containers, since the frontend does not hand these out
// directly.
package namespace


// AnonymousNamespace is how an anonymous namespace renders in a qualified
// name.
const AnonymousNamespace = "(anonymous namespace)"

// ContainerKind distinguishes the few container shapes that affect
// qualified-name synthesis.
type ContainerKind uint8

const (
	ContainerNone ContainerKind = iota
	ContainerNamespace
	ContainerInlineNamespace
	ContainerClass
	ContainerFunction
)

// Container is one link in the enclosing-scope chain, identified by the
// frontend's own cursor identity (cursorKey) so the Helper can memoize on it.
type Container struct {
	CursorKey string
	Kind      ContainerKind
	Name      string // unqualified; "" for an anonymous namespace
}

// Helper memoizes, per container cursor, the cumulative qualified prefix,
// so repeated declarations inside the same namespace/class do not re-walk
// the chain.
type Helper struct {
	prefixes map[string]string // cursorKey -> qualified prefix, including trailing "::"
}

// NewHelper returns an empty Helper.
func NewHelper() *Helper {
	return &Helper{prefixes: map[string]string{}}
}

// QualifiedPrefix returns the cumulative "a::b::" prefix for walking chain
// from outermost to innermost, memoizing every intermediate prefix.
func (h *Helper) QualifiedPrefix(chain []Container) string {
	if len(chain) == 0 {
		return ""
	}

	prefix := ""
	for _, c := range chain {
		if cached, ok := h.prefixes[c.CursorKey]; ok {
			prefix = cached
			continue
		}

		switch c.Kind {
		case ContainerFunction:
			// Local types/functions qualify under their enclosing function's
			// name, same as a namespace segment.
			prefix = prefix + segmentName(c) + "::"
		case ContainerNamespace:
			prefix = prefix + segmentName(c) + "::"
		case ContainerInlineNamespace:
			// Inline namespaces only contribute if the frontend reports them
			// as visible; Helper trusts the caller to omit invisible ones
			// from chain entirely.
			prefix = prefix + segmentName(c) + "::"
		case ContainerClass:
			prefix = prefix + c.Name + "::"
		}

		h.prefixes[c.CursorKey] = prefix
	}
	return prefix
}

func segmentName(c Container) string {
	if c.Name == "" {
		return AnonymousNamespace
	}
	return c.Name
}

// Result is the synthesized qualified-name data for one entity.
type Result struct {
	// Qualified is the full qualified string, e.g. "ns::Class::method".
	Qualified string
	// QualNameOffset is the offset, within a DetailedName that embeds
	// Qualified as a suffix, at which the non-namespace-qualified portion
	// begins.
	QualNameOffset uint16
	// ShortNameOffset/ShortNameSize carve the unqualified name back out
	// of Qualified.
	ShortNameOffset uint16
	ShortNameSize   uint16
}

// Qualify synthesizes the qualified name for name declared inside chain.
// The chain is ordered outermost-to-innermost and excludes the entity's
// own name. baseOffset is where Qualified will be embedded inside the
// caller's DetailedName string.
func (h *Helper) Qualify(chain []Container, name string, baseOffset uint16) Result {
	prefix := h.QualifiedPrefix(chain)
	qualified := prefix + name

	// The qualified span (for display) begins after any purely-namespace
	// prefix: walk backwards from the end, skipping class segments only.
	classPrefixLen := classOnlyPrefixLen(chain)
	qualStart := len(prefix) - classPrefixLen

	return Result{
		Qualified:       qualified,
		QualNameOffset:  baseOffset + uint16(qualStart),
		ShortNameOffset: baseOffset + uint16(len(prefix)),
		ShortNameSize:   uint16(len(name)),
	}
}

// classOnlyPrefixLen returns the length, in the cumulative prefix string,
// contributed by the trailing run of Class containers (i.e. everything
// after the last pure-namespace container).
func classOnlyPrefixLen(chain []Container) int {
	lastNamespaceIdx := -1
	for i, c := range chain {
		if c.Kind == ContainerNamespace || c.Kind == ContainerInlineNamespace {
			lastNamespaceIdx = i
		}
	}

	length := 0
	for i := lastNamespaceIdx + 1; i < len(chain); i++ {
		length += len(segmentNameForLen(chain[i])) + len("::")
	}
	return length
}

func segmentNameForLen(c Container) string {
	if c.Kind == ContainerClass {
		return c.Name
	}
	return segmentName(c)
}
