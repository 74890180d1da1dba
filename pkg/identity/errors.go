package identity

import "errors"

var (
	// ErrGrantDerivation wraps failures of the grant-derivation collaborator.
	ErrGrantDerivation = errors.New("identity.grant_derivation_failed")

	// ErrProviderFailure wraps failures of the principal provider.
	ErrProviderFailure = errors.New("identity.provider_failed")
)
