package model

import "strings"

// Capability is a permission tag checked before privileged mutations.
type Capability string

const (
	CapabilityManageProducts Capability = "manage_products"
	CapabilityManageOrders   Capability = "manage_orders"
)

// PermissionCheck answers whether the acting admin holds a capability.
type PermissionCheck interface {
	Has(Capability) bool
}

// CapabilitySet is a PermissionCheck backed by an explicit set of capabilities.
type CapabilitySet map[Capability]struct{}

// NewCapabilitySet builds a set from the given capabilities.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	set := make(CapabilitySet, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}

// ParseCapabilities reads a comma-separated capability list, skipping blanks.
func ParseCapabilities(raw string) CapabilitySet {
	var caps []Capability
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			caps = append(caps, Capability(part))
		}
	}
	return NewCapabilitySet(caps...)
}

// Has reports whether c is present in the set.
func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}
