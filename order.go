package md2site

import (
	"fmt"
	"slices"
)

// Order is the policy that arranges listed posts for the index and build.
type Order int

const (
	// OrderNewestFirst reverses the lexical listing, so "post-3" precedes "post-1".
	OrderNewestFirst Order = iota
	// OrderListing keeps the lexical listing.
	OrderListing
)

var orderNames = map[Order]string{
	OrderNewestFirst: "newest-first",
	OrderListing:     "listing",
}

// String returns the configuration name of o.
func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder parses "newest-first" or "listing".
func ParseOrder(s string) (Order, error) {
	for o, name := range orderNames {
		if name == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (must be newest-first or listing)", ErrInvalidOrder, s)
}

func (o Order) valid() bool {
	_, ok := orderNames[o]
	return ok
}

// apply returns a new slice with paths arranged by o.
func (o Order) apply(paths []string) []string {
	out := slices.Clone(paths)
	if o == OrderNewestFirst {
		slices.Reverse(out)
	}
	return out
}
