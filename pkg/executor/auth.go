package executor

import (
	"github.com/shu-assistant/shu/pkg/plugin"
)

// ErrCodeIdentityRequired is the preflight code for unresolvable auth.
const ErrCodeIdentityRequired = "identity_required"

// ResolvedAuth is the (provider, mode, subject, scopes) tuple for one op.
type ResolvedAuth struct {
	Provider string
	Mode     string
	Subject  string
	Scopes   []string
}

// AmbiguousAuthError reports that the auth mode requires a subject and none
// could be resolved from any source. Callers surface it as identity_required
// rather than guessing.
type AmbiguousAuthError struct {
	Provider string
	Mode     string
}

func (e *AmbiguousAuthError) Error() string {
	return "auth mode " + e.Mode + " for provider " + e.Provider + " requires a subject and none was provided"
}

// ResolveOpAuth resolves the auth tuple for an operation. Precedence for
// mode and subject, highest first: explicit request params ("auth_mode",
// "auth_subject"), feed-stored settings, the manifest op_auth entry, then the
// user-mode default. Returns nil when the op declares no auth requirement.
func ResolveOpAuth(m *plugin.Manifest, op string, params map[string]any, feedAuth map[string]string) (*ResolvedAuth, error) {
	if m == nil || m.OpAuth == nil {
		return nil, nil
	}
	oa, ok := m.OpAuth[op]
	if !ok || oa.Provider == "" {
		return nil, nil
	}

	resolved := &ResolvedAuth{
		Provider: oa.Provider,
		Mode:     oa.Mode,
		Subject:  oa.Subject,
		Scopes:   oa.Scopes,
	}
	if resolved.Mode == "" {
		resolved.Mode = plugin.AuthModeUser
	}

	if v, ok := feedAuth["mode"]; ok && v != "" {
		resolved.Mode = v
	}
	if v, ok := feedAuth["subject"]; ok && v != "" {
		resolved.Subject = v
	}
	if v, ok := params["auth_mode"].(string); ok && v != "" {
		resolved.Mode = v
	}
	if v, ok := params["auth_subject"].(string); ok && v != "" {
		resolved.Subject = v
	}

	if resolved.Mode == plugin.AuthModeDomainDelegate && resolved.Subject == "" {
		return nil, &AmbiguousAuthError{Provider: resolved.Provider, Mode: resolved.Mode}
	}
	return resolved, nil
}
