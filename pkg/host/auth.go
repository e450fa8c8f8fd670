package host

import (
	"context"
	"fmt"
)

// Delegation statuses returned by TokenSource.DelegationCheck.
const (
	DelegationReady = "ready"
)

// TokenSource is the external auth collaborator that mints per-request
// access tokens from stored provider identities. OAuth flows and token
// refresh live behind this interface.
type TokenSource interface {
	UserToken(ctx context.Context, userID, provider string, scopes []string) (string, error)
	DelegationCheck(ctx context.Context, provider, subject string, scopes []string) (string, error)
	ServiceAccountToken(ctx context.Context, provider, subject string, scopes []string) (string, error)
	// Identities lists the stored subjects for (userID, provider).
	Identities(ctx context.Context, userID, provider string) ([]string, error)
}

// AuthCapability resolves provider tokens for the executing user. The
// per-provider auth sections (mode, subject, scopes) are fixed at host
// construction from manifest op_auth and caller params.
type AuthCapability struct {
	tokens   TokenSource
	userID   string
	sections map[string]*AuthSection
}

// Section returns the resolved auth instructions for provider, or nil.
func (a *AuthCapability) Section(provider string) *AuthSection {
	return a.sections[provider]
}

// ProviderUserToken mints a user-mode access token with the given scopes.
func (a *AuthCapability) ProviderUserToken(ctx context.Context, provider string, scopes []string) (string, error) {
	if a.tokens == nil {
		return "", fmt.Errorf("no token source configured")
	}
	return a.tokens.UserToken(ctx, a.userID, provider, scopes)
}

// ProviderDelegationCheck verifies domain delegation for subject + scopes.
// Returns the delegation status ("ready" when usable).
func (a *AuthCapability) ProviderDelegationCheck(ctx context.Context, provider string, scopes []string, subject string) (string, error) {
	if a.tokens == nil {
		return "", fmt.Errorf("no token source configured")
	}
	return a.tokens.DelegationCheck(ctx, provider, subject, scopes)
}

// ProviderServiceAccountToken mints a service-account token, optionally
// impersonating subject.
func (a *AuthCapability) ProviderServiceAccountToken(ctx context.Context, provider string, scopes []string, subject string) (string, error) {
	if a.tokens == nil {
		return "", fmt.Errorf("no token source configured")
	}
	return a.tokens.ServiceAccountToken(ctx, provider, subject, scopes)
}

// ResolveTokenAndTarget selects the right token for provider using the auth
// section bound at host construction. Returns the bearer token and the
// subject it acts as.
func (a *AuthCapability) ResolveTokenAndTarget(ctx context.Context, provider string) (token, subject string, err error) {
	section := a.sections[provider]
	if section == nil {
		return "", "", fmt.Errorf("no auth instructions for provider %q", provider)
	}

	switch section.Mode {
	case "domain_delegate":
		if section.Subject == "" {
			return "", "", fmt.Errorf("domain_delegate requires a subject")
		}
		status, err := a.ProviderDelegationCheck(ctx, provider, section.Scopes, section.Subject)
		if err != nil {
			return "", "", err
		}
		if status != DelegationReady {
			return "", "", fmt.Errorf("delegation for %s not ready: %s", section.Subject, status)
		}
		token, err := a.ProviderServiceAccountToken(ctx, provider, section.Scopes, section.Subject)
		if err != nil {
			return "", "", err
		}
		return token, section.Subject, nil

	case "service_account":
		token, err := a.ProviderServiceAccountToken(ctx, provider, section.Scopes, section.Subject)
		if err != nil {
			return "", "", err
		}
		return token, section.Subject, nil

	default: // user mode
		token, err := a.ProviderUserToken(ctx, provider, section.Scopes)
		if err != nil {
			return "", "", err
		}
		return token, section.Subject, nil
	}
}
