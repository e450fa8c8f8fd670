package plugin

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the manifest file looked up in each plugin directory.
const ManifestFileName = "manifest.yaml"

// Auth modes accepted in op_auth entries.
const (
	AuthModeUser           = "user"
	AuthModeDomainDelegate = "domain_delegate"
	AuthModeServiceAccount = "service_account"
)

// Manifest declares a plugin: identity, entry point, capability allow-list,
// and per-operation auth requirements.
type Manifest struct {
	Name         string   `yaml:"name"`
	Version      string   `yaml:"version"`
	Entry        string   `yaml:"entry"` // "<package>:<type>", resolved against registered factories
	Capabilities []string `yaml:"capabilities"`

	// OpAuth maps an operation name to the provider credential it needs.
	OpAuth map[string]OpAuth `yaml:"op_auth,omitempty"`

	DefaultFeedOp   string   `yaml:"default_feed_op,omitempty"`
	AllowedFeedOps  []string `yaml:"allowed_feed_ops,omitempty"`
	ChatCallableOps []string `yaml:"chat_callable_ops,omitempty"`

	RequiredIdentities []RequiredIdentity `yaml:"required_identities,omitempty"`
	RequiredSecrets    []string           `yaml:"required_secrets,omitempty"`

	// Limits are the plugin's default policy limits, synced into the
	// plugin_definitions row on first discovery.
	Limits *Limits `yaml:"limits,omitempty"`

	// Dir is the plugin directory the manifest was discovered in.
	Dir string `yaml:"-"`
}

// OpAuth declares the provider, auth mode, and scopes one operation needs.
type OpAuth struct {
	Provider string   `yaml:"provider"`
	Mode     string   `yaml:"mode"`
	Subject  string   `yaml:"subject,omitempty"`
	Scopes   []string `yaml:"scopes,omitempty"`
}

// RequiredIdentity declares a provider identity the user must have linked.
type RequiredIdentity struct {
	Provider string   `yaml:"provider"`
	Scopes   []string `yaml:"scopes,omitempty"`
}

// Limits holds per-plugin policy limits. Zero values fall back to the
// configured global defaults when the executor resolves effective limits.
type Limits struct {
	RateLimitUserRequests int    `yaml:"rate_limit_user_requests,omitempty" json:"rate_limit_user_requests,omitempty"`
	RateLimitUserPeriod   int    `yaml:"rate_limit_user_period,omitempty" json:"rate_limit_user_period,omitempty"`
	QuotaDailyRequests    int    `yaml:"quota_daily_requests,omitempty" json:"quota_daily_requests,omitempty"`
	QuotaMonthlyRequests  int    `yaml:"quota_monthly_requests,omitempty" json:"quota_monthly_requests,omitempty"`
	ProviderName          string `yaml:"provider_name,omitempty" json:"provider_name,omitempty"`
	ProviderRPM           int    `yaml:"provider_rpm,omitempty" json:"provider_rpm,omitempty"`
	ProviderWindowSeconds int    `yaml:"provider_window_seconds,omitempty" json:"provider_window_seconds,omitempty"`
	ProviderConcurrency   int    `yaml:"provider_concurrency,omitempty" json:"provider_concurrency,omitempty"`
}

// HasFeedOp reports whether op may run from a scheduled feed.
// An empty allowed_feed_ops list permits every op.
func (m *Manifest) HasFeedOp(op string) bool {
	if len(m.AllowedFeedOps) == 0 {
		return true
	}
	for _, allowed := range m.AllowedFeedOps {
		if allowed == op {
			return true
		}
	}
	return false
}

// DiscoverManifests scans root for plugin directories containing a manifest
// file. Malformed manifests and manifests missing name or entry are skipped
// with a warning; one bad plugin never blocks the rest.
func DiscoverManifests(root string) ([]*Manifest, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading plugins root %s: %w", root, err)
	}

	var manifests []*Manifest
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		path := filepath.Join(dir, ManifestFileName)

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue // Not a plugin directory
			}
			slog.Warn("Failed to read plugin manifest", "path", path, "error", err)
			continue
		}

		var m Manifest
		if err := yaml.Unmarshal(data, &m); err != nil {
			slog.Warn("Failed to parse plugin manifest", "path", path, "error", err)
			continue
		}
		if m.Name == "" || m.Entry == "" {
			slog.Warn("Plugin manifest missing name or entry, skipping", "path", path)
			continue
		}
		m.Dir = dir
		manifests = append(manifests, &m)
	}
	return manifests, nil
}

// DeniedImports are substrings that must not appear in plugin source.
// Direct HTTP clients must go through host.http; host-internal packages are
// off limits entirely. Runtime capability gating is the backstop.
var DeniedImports = []string{
	`"net/http"`,
	`"github.com/go-resty/resty`,
	`"github.com/shu-assistant/shu/pkg/executor`,
	`"github.com/shu-assistant/shu/pkg/limiter`,
	`"github.com/shu-assistant/shu/pkg/database`,
	`"github.com/shu-assistant/shu/pkg/provider`,
	`"github.com/shu-assistant/shu/ent`,
}

// ScanForDeniedImports text-scans every .go file in dir for denied import
// substrings. Returns a descriptive error naming the offending file and
// substring, or nil when the directory is clean.
func ScanForDeniedImports(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("scanning plugin dir %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		src := string(data)
		for _, denied := range DeniedImports {
			if strings.Contains(src, denied) {
				return fmt.Errorf("plugin source %s contains disallowed import %s", path, denied)
			}
		}
	}
	return nil
}
