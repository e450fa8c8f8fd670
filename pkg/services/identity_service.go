// Package services holds the persistence-backed collaborators the runtime
// wires into the host and orchestrator: provider identities, plugin secrets,
// feed cursors, and conversation history.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shu-assistant/shu/ent"
	"github.com/shu-assistant/shu/ent/provideridentity"
	"github.com/shu-assistant/shu/pkg/host"
	"github.com/shu-assistant/shu/pkg/provider"
)

// Reserved user ids for non-user identity rows. Domain delegation and
// service accounts are stored in the same table under these owners.
const (
	DomainIdentityOwner  = "@domain"
	ServiceIdentityOwner = "@service"
)

// IdentityService resolves provider credentials from stored identities.
// Implements host.TokenSource; stored credentials are encrypted at rest and
// decrypted per request.
type IdentityService struct {
	client *ent.Client
	cipher *provider.KeyCipher
}

// NewIdentityService creates an IdentityService. cipher may be nil, in which
// case credentials are stored in the clear (tests only).
func NewIdentityService(client *ent.Client, cipher *provider.KeyCipher) *IdentityService {
	return &IdentityService{client: client, cipher: cipher}
}

var _ host.TokenSource = (*IdentityService)(nil)

// Link upserts a provider identity for a user, encrypting the credential.
func (s *IdentityService) Link(ctx context.Context, userID, providerKey, subject, credential string, scopes []string) (*ent.ProviderIdentity, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if providerKey == "" {
		return nil, NewValidationError("provider", "required")
	}
	if subject == "" {
		return nil, NewValidationError("subject", "required")
	}

	stored, err := s.encrypt(credential)
	if err != nil {
		return nil, err
	}

	existing, err := s.client.ProviderIdentity.Query().
		Where(
			provideridentity.UserIDEQ(userID),
			provideridentity.ProviderEQ(providerKey),
			provideridentity.SubjectEQ(subject),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("querying provider identity: %w", err)
	}

	if existing != nil {
		return existing.Update().
			SetScopes(scopes).
			SetRefreshToken(stored).
			SetUpdatedAt(time.Now()).
			Save(ctx)
	}
	return s.client.ProviderIdentity.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetProvider(providerKey).
		SetSubject(subject).
		SetScopes(scopes).
		SetRefreshToken(stored).
		Save(ctx)
}

// Identities lists the stored subjects for (userID, provider).
func (s *IdentityService) Identities(ctx context.Context, userID, providerKey string) ([]string, error) {
	rows, err := s.client.ProviderIdentity.Query().
		Where(
			provideridentity.UserIDEQ(userID),
			provideridentity.ProviderEQ(providerKey),
		).
		Order(ent.Asc(provideridentity.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing identities: %w", err)
	}
	subjects := make([]string, 0, len(rows))
	for _, row := range rows {
		subjects = append(subjects, row.Subject)
	}
	return subjects, nil
}

// UserToken resolves a credential for the user's linked identity covering
// the requested scopes.
func (s *IdentityService) UserToken(ctx context.Context, userID, providerKey string, scopes []string) (string, error) {
	row, err := s.findCovering(ctx, userID, providerKey, "", scopes)
	if err != nil {
		return "", err
	}
	return s.credential(row)
}

// DelegationCheck reports whether domain delegation is configured for
// (provider, subject) with the requested scopes.
func (s *IdentityService) DelegationCheck(ctx context.Context, providerKey, subject string, scopes []string) (string, error) {
	row, err := s.findCovering(ctx, DomainIdentityOwner, providerKey, subject, scopes)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "not_configured", nil
		}
		return "", err
	}
	if row.RefreshToken == nil || *row.RefreshToken == "" {
		return "no_credential", nil
	}
	return host.DelegationReady, nil
}

// ServiceAccountToken resolves the stored service-account credential for
// provider, optionally narrowed to one subject.
func (s *IdentityService) ServiceAccountToken(ctx context.Context, providerKey, subject string, scopes []string) (string, error) {
	row, err := s.findCovering(ctx, ServiceIdentityOwner, providerKey, subject, scopes)
	if err != nil {
		return "", err
	}
	return s.credential(row)
}

// findCovering returns the oldest identity row for (owner, provider)
// whose scopes cover the requested set, optionally pinned to a subject.
func (s *IdentityService) findCovering(ctx context.Context, owner, providerKey, subject string, scopes []string) (*ent.ProviderIdentity, error) {
	q := s.client.ProviderIdentity.Query().
		Where(
			provideridentity.UserIDEQ(owner),
			provideridentity.ProviderEQ(providerKey),
		)
	if subject != "" {
		q = q.Where(provideridentity.SubjectEQ(subject))
	}
	rows, err := q.Order(ent.Asc(provideridentity.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying identities: %w", err)
	}
	for _, row := range rows {
		if scopesCover(row.Scopes, scopes) {
			return row, nil
		}
	}
	if len(rows) > 0 {
		return nil, fmt.Errorf("no %s identity with required scopes %v", providerKey, scopes)
	}
	return nil, fmt.Errorf("no %s identity linked: %w", providerKey, ErrNotFound)
}

func (s *IdentityService) credential(row *ent.ProviderIdentity) (string, error) {
	if row.RefreshToken == nil || *row.RefreshToken == "" {
		return "", fmt.Errorf("identity %s has no stored credential", row.ID)
	}
	if s.cipher == nil {
		return *row.RefreshToken, nil
	}
	token, err := s.cipher.Decrypt(*row.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("decrypting credential for identity %s: %w", row.ID, err)
	}
	return token, nil
}

func (s *IdentityService) encrypt(credential string) (string, error) {
	if credential == "" || s.cipher == nil {
		return credential, nil
	}
	out, err := s.cipher.Encrypt(credential)
	if err != nil {
		return "", fmt.Errorf("encrypting credential: %w", err)
	}
	return out, nil
}

// scopesCover reports whether granted includes every requested scope.
func scopesCover(granted, requested []string) bool {
	for _, want := range requested {
		found := false
		for _, have := range granted {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
