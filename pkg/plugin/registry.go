package plugin

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/shu-assistant/shu/ent"
	"github.com/shu-assistant/shu/ent/plugindefinition"
)

// Registry maintains the installed plugin set in two views: on-disk
// manifests (authoritative for code) and persisted plugin_definitions rows
// (authoritative for enablement and published schemas).
type Registry struct {
	client *ent.Client
	root   string

	mu        sync.Mutex
	factories map[string]Factory
	manifests map[string]*Manifest // name → discovered manifest
	loaded    map[string]*Loaded   // name → loaded instance (enabled gate applies on Resolve)
}

// NewRegistry creates a registry rooted at the configured plugins directory.
func NewRegistry(client *ent.Client, root string) *Registry {
	return &Registry{
		client:    client,
		root:      root,
		factories: make(map[string]Factory),
		manifests: make(map[string]*Manifest),
		loaded:    make(map[string]*Loaded),
	}
}

// RegisterFactory binds a manifest entry string to a plugin constructor.
// Registration happens at startup before Load.
func (r *Registry) RegisterFactory(entry string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[entry] = f
}

// Load discovers manifests under the plugins root, statically scans each
// plugin directory for disallowed imports, constructs the plugin instance,
// and validates the op enum contract. Failures are logged and isolated per
// plugin; a malformed plugin never prevents others from loading.
func (r *Registry) Load() error {
	manifests, err := DiscoverManifests(r.root)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.manifests = make(map[string]*Manifest, len(manifests))
	r.loaded = make(map[string]*Loaded, len(manifests))

	for _, m := range manifests {
		log := slog.With("plugin", m.Name, "version", m.Version)

		if err := ScanForDeniedImports(m.Dir); err != nil {
			log.Error("Plugin load refused by static import scan", "error", err)
			continue
		}

		factory, ok := r.factories[m.Entry]
		if !ok {
			log.Error("Plugin manifest entry has no registered factory", "entry", m.Entry)
			continue
		}

		p, err := factory()
		if err != nil {
			log.Error("Plugin factory failed", "error", err)
			continue
		}

		if OpEnum(p.Schema()) == nil {
			log.Error("Plugin schema missing properties.op.enum, rejecting")
			continue
		}

		r.manifests[m.Name] = m
		r.loaded[m.Name] = &Loaded{Plugin: p, Manifest: m}
		log.Info("Plugin loaded", "capabilities", m.Capabilities)
	}
	return nil
}

// Sync upserts one plugin_definitions row per discovered manifest (created
// disabled), refreshes stored schemas and limits, and deletes rows whose
// manifest has disappeared. Sync never changes the enabled flag.
// Idempotent: sync(); sync() leaves the same definition set as one sync().
func (r *Registry) Sync(ctx context.Context) error {
	r.mu.Lock()
	loaded := make(map[string]*Loaded, len(r.loaded))
	for name, l := range r.loaded {
		loaded[name] = l
	}
	r.mu.Unlock()

	for name, l := range loaded {
		m := l.Manifest
		existing, err := r.client.PluginDefinition.Query().
			Where(
				plugindefinition.NameEQ(name),
				plugindefinition.VersionEQ(m.Version),
			).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("querying plugin definition %s: %w", name, err)
		}

		if existing == nil {
			create := r.client.PluginDefinition.Create().
				SetID(uuid.New().String()).
				SetName(name).
				SetVersion(m.Version).
				SetEnabled(false)
			if schema := l.Plugin.Schema(); schema != nil {
				create = create.SetInputSchema(schema)
			}
			if schema := l.Plugin.OutputSchema(); schema != nil {
				create = create.SetOutputSchema(schema)
			}
			if m.Limits != nil {
				create = create.SetLimits(LimitsToMap(m.Limits))
			}
			if _, err := create.Save(ctx); err != nil {
				return fmt.Errorf("creating plugin definition %s: %w", name, err)
			}
			slog.Info("Plugin definition created (disabled)", "plugin", name, "version", m.Version)
			continue
		}

		update := existing.Update()
		if schema := l.Plugin.Schema(); schema != nil {
			update = update.SetInputSchema(schema)
		}
		if schema := l.Plugin.OutputSchema(); schema != nil {
			update = update.SetOutputSchema(schema)
		}
		if _, err := update.Save(ctx); err != nil {
			return fmt.Errorf("refreshing plugin definition %s: %w", name, err)
		}
	}

	// Purge definitions whose manifest disappeared.
	stale, err := r.client.PluginDefinition.Query().All(ctx)
	if err != nil {
		return fmt.Errorf("listing plugin definitions: %w", err)
	}
	for _, def := range stale {
		if _, ok := loaded[def.Name]; ok {
			continue
		}
		if err := r.client.PluginDefinition.DeleteOne(def).Exec(ctx); err != nil {
			return fmt.Errorf("purging plugin definition %s: %w", def.Name, err)
		}
		slog.Info("Plugin definition purged (manifest gone)", "plugin", def.Name)
	}
	return nil
}

// Resolve returns the loaded plugin iff an enabled plugin_definitions row
// with that name exists at the moment of the call. Enablement is re-verified
// from the store on every call; a disabled row evicts nothing from the code
// view but makes the plugin unresolvable. Returns (nil, nil) when the plugin
// is unknown or disabled.
func (r *Registry) Resolve(ctx context.Context, name string) (*Loaded, error) {
	enabled, err := r.client.PluginDefinition.Query().
		Where(
			plugindefinition.NameEQ(name),
			plugindefinition.EnabledEQ(true),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking plugin enablement %s: %w", name, err)
	}
	if !enabled {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.loaded[name]
	if !ok {
		return nil, nil
	}
	return l, nil
}

// EnabledLoaded returns the loaded plugins whose definition row is enabled,
// for tool assembly. Enablement is read from the store at call time.
func (r *Registry) EnabledLoaded(ctx context.Context) ([]*Loaded, error) {
	defs, err := r.client.PluginDefinition.Query().
		Where(plugindefinition.EnabledEQ(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing enabled plugin definitions: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Loaded
	for _, def := range defs {
		if l, ok := r.loaded[def.Name]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

// Definition returns the persisted definition row for a plugin name, or nil.
func (r *Registry) Definition(ctx context.Context, name string) (*ent.PluginDefinition, error) {
	def, err := r.client.PluginDefinition.Query().
		Where(plugindefinition.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return def, nil
}

// Manifests returns the discovered manifests keyed by plugin name.
func (r *Registry) Manifests() map[string]*Manifest {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]*Manifest, len(r.manifests))
	for k, v := range r.manifests {
		out[k] = v
	}
	return out
}

// LimitsToMap converts Limits to the JSON object stored on the definition row.
func LimitsToMap(l *Limits) map[string]any {
	if l == nil {
		return nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}

// LimitsFromMap converts a stored limits JSON object back to Limits.
func LimitsFromMap(m map[string]any) *Limits {
	if len(m) == 0 {
		return nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	var l Limits
	if err := json.Unmarshal(data, &l); err != nil {
		return nil
	}
	return &l
}
