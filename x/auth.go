package x

import "github.com/covault/covault"

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of handlers,
// so we can plug in another authentication system, rather than hardcoding
// the one module for all extensions.
type Authenticator interface {
	// GetConditions reveals all conditions fulfilled,
	// you may want GetAddresses helper
	GetConditions(covault.Context) []covault.Condition
	// HasAddress checks if any condition matches this address
	HasAddress(covault.Context, covault.Address) bool
}

// MultiAuth chains together many Authenticators into one.
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticators.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions will return the union of all conditions
// of all chained Authenticators.
func (m MultiAuth) GetConditions(ctx covault.Context) []covault.Condition {
	var res []covault.Condition
	for _, impl := range m.impls {
		add := impl.GetConditions(ctx)
		if len(add) > 0 {
			res = append(res, add...)
		}
	}
	// TODO: remove duplicates
	return res
}

// HasAddress returns true iff any of the chained Authenticators
// vouches for this address.
func (m MultiAuth) HasAddress(ctx covault.Context, addr covault.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first condition of the authentication.
// Returns nil if no conditions are fulfilled.
func MainSigner(ctx covault.Context, auth Authenticator) covault.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// GetAddresses wraps the GetConditions method of any Authenticator.
func GetAddresses(ctx covault.Context, auth Authenticator) []covault.Address {
	perms := auth.GetConditions(ctx)
	addrs := make([]covault.Address, len(perms))
	for i, p := range perms {
		addrs[i] = p.Address()
	}
	return addrs
}

// HasAllConditions returns true if all elements in required are
// also in context.
func HasAllConditions(ctx covault.Context, auth Authenticator, required []covault.Condition) bool {
	return HasNConditions(ctx, auth, required, len(required))
}

// HasNConditions returns true if at least n elements in requested are
// also in context. Useful for threshold conditions (1 of 3, 4 of 7, etc...).
func HasNConditions(ctx covault.Context, auth Authenticator, requested []covault.Condition, n int) bool {
	perms := auth.GetConditions(ctx)
	for _, r := range requested {
		for _, perm := range perms {
			if r.Equals(perm) {
				n--
				if n <= 0 {
					return true
				}
				break
			}
		}
	}
	return n <= 0
}

// HasAllAddresses returns true if all elements in required are
// authenticated in the context.
func HasAllAddresses(ctx covault.Context, auth Authenticator, required []covault.Address) bool {
	return HasNAddresses(ctx, auth, required, len(required))
}

// HasNAddresses returns true if at least n elements in requested are
// authenticated in the context.
func HasNAddresses(ctx covault.Context, auth Authenticator, requested []covault.Address, n int) bool {
	for _, r := range requested {
		if auth.HasAddress(ctx, r) {
			n--
			if n <= 0 {
				return true
			}
		}
	}
	return n <= 0
}
