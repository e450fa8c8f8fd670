// Package host provides the sandboxed capability surface plugins use to
// reach outside their process. Every capability is scoped at construction
// (plugin name, user, bound KB IDs, schedule id) with unexported fields and
// no setters: scope cannot be mutated after the host is handed to a plugin.
//
// Access to a capability not declared in the plugin's manifest returns a
// *CapabilityError (code "capability_denied") at the accessor call.
package host

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/shu-assistant/shu/pkg/kb"
)

// The closed capability set.
const (
	CapHTTP     = "http"
	CapLog      = "log"
	CapSecrets  = "secrets"
	CapAuth     = "auth"
	CapCache    = "cache"
	CapCursor   = "cursor"
	CapKB       = "kb"
	CapStorage  = "storage"
	CapOCR      = "ocr"
	CapIdentity = "identity"
	CapUtils    = "utils"
)

// AllCapabilities lists every valid capability name.
var AllCapabilities = []string{
	CapHTTP, CapLog, CapSecrets, CapAuth, CapCache, CapCursor,
	CapKB, CapStorage, CapOCR, CapIdentity, CapUtils,
}

// CapabilityError is returned when a plugin reaches for a capability its
// manifest does not grant.
type CapabilityError struct {
	Capability string
	Plugin     string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("capability %q not granted", e.Capability)
}

// Code returns the stable error code for structured results.
func (e *CapabilityError) Code() string { return "capability_denied" }

// Deps are the long-lived collaborators capabilities delegate to.
// Constructed once at startup and shared by every host build.
type Deps struct {
	Secrets     SecretsStore
	Tokens      TokenSource
	Cursors     CursorStore
	Objects     ObjectStore
	OCR         OCRService
	Searcher    kb.Searcher
	Access      kb.AccessChecker
	HTTP        *HTTPConfig
	CacheMax    int
	EmailHidden bool
}

// Builder constructs Host values. One builder per process.
type Builder struct {
	deps Deps
}

// NewBuilder creates a host builder.
func NewBuilder(deps Deps) *Builder {
	return &Builder{deps: deps}
}

// Build assembles a host for one plugin execution. caps is the manifest
// capability allow-list; ctx is the parsed trusted host context.
func (b *Builder) Build(pluginName, userID, userEmail string, caps []string, ctx *Context) *Host {
	if ctx == nil {
		ctx = NewContext()
	}
	h := &Host{
		pluginName: pluginName,
		userID:     userID,
		caps:       slices.Clone(caps),
	}
	h.log = slog.With("plugin", pluginName, "user_id", userID)
	h.http = newHTTPCapability(b.deps.HTTP, h.log)
	h.secrets = &SecretsCapability{store: b.deps.Secrets, pluginName: pluginName, userID: userID}
	h.auth = &AuthCapability{
		tokens:   b.deps.Tokens,
		userID:   userID,
		sections: ctx.Auth,
	}
	h.cache = newCacheCapability(b.deps.CacheMax)
	h.cursor = &CursorCapability{
		store:      b.deps.Cursors,
		pluginName: pluginName,
		userID:     userID,
		scheduleID: ctx.ScheduleID,
	}
	h.kb = &KBCapability{
		searcher: b.deps.Searcher,
		access:   b.deps.Access,
		userID:   userID,
		kbIDs:    slices.Clone(ctx.KnowledgeBaseIDs),
	}
	h.storage = &StorageCapability{store: b.deps.Objects, namespace: pluginName}
	h.ocr = &OCRCapability{service: b.deps.OCR, mode: ctx.OCRMode}
	h.identity = &IdentityCapability{
		userID:      userID,
		email:       userEmail,
		emailHidden: b.deps.EmailHidden,
	}
	return h
}

// Host is the per-execution capability surface.
type Host struct {
	pluginName string
	userID     string
	caps       []string

	log      *slog.Logger
	http     *HTTPCapability
	secrets  *SecretsCapability
	auth     *AuthCapability
	cache    *CacheCapability
	cursor   *CursorCapability
	kb       *KBCapability
	storage  *StorageCapability
	ocr      *OCRCapability
	identity *IdentityCapability
}

// granted checks the manifest allow-list.
func (h *Host) granted(cap string) error {
	if slices.Contains(h.caps, cap) {
		return nil
	}
	return &CapabilityError{Capability: cap, Plugin: h.pluginName}
}

// HTTP returns the http capability.
func (h *Host) HTTP() (*HTTPCapability, error) {
	if err := h.granted(CapHTTP); err != nil {
		return nil, err
	}
	return h.http, nil
}

// Log returns a structured logger bound to the plugin scope.
func (h *Host) Log() (*slog.Logger, error) {
	if err := h.granted(CapLog); err != nil {
		return nil, err
	}
	return h.log, nil
}

// Secrets returns the secrets capability.
func (h *Host) Secrets() (*SecretsCapability, error) {
	if err := h.granted(CapSecrets); err != nil {
		return nil, err
	}
	return h.secrets, nil
}

// Auth returns the auth capability.
func (h *Host) Auth() (*AuthCapability, error) {
	if err := h.granted(CapAuth); err != nil {
		return nil, err
	}
	return h.auth, nil
}

// Cache returns the bounded TTL cache capability.
func (h *Host) Cache() (*CacheCapability, error) {
	if err := h.granted(CapCache); err != nil {
		return nil, err
	}
	return h.cache, nil
}

// Cursor returns the per-feed cursor capability.
func (h *Host) Cursor() (*CursorCapability, error) {
	if err := h.granted(CapCursor); err != nil {
		return nil, err
	}
	return h.cursor, nil
}

// KB returns the scoped knowledge-base capability.
func (h *Host) KB() (*KBCapability, error) {
	if err := h.granted(CapKB); err != nil {
		return nil, err
	}
	return h.kb, nil
}

// Storage returns the per-plugin object store capability.
func (h *Host) Storage() (*StorageCapability, error) {
	if err := h.granted(CapStorage); err != nil {
		return nil, err
	}
	return h.storage, nil
}

// OCR returns the text extraction capability.
func (h *Host) OCR() (*OCRCapability, error) {
	if err := h.granted(CapOCR); err != nil {
		return nil, err
	}
	return h.ocr, nil
}

// Identity returns the executing user's identity capability.
func (h *Host) Identity() (*IdentityCapability, error) {
	if err := h.granted(CapIdentity); err != nil {
		return nil, err
	}
	return h.identity, nil
}

// Utils returns the pure text helper capability.
func (h *Host) Utils() (*UtilsCapability, error) {
	if err := h.granted(CapUtils); err != nil {
		return nil, err
	}
	return &UtilsCapability{}, nil
}

// PluginName returns the executing plugin's name.
func (h *Host) PluginName() string { return h.pluginName }

// UserID returns the executing user's id. Always available to the runtime;
// plugins read identity through the identity capability.
func (h *Host) UserID() string { return h.userID }
