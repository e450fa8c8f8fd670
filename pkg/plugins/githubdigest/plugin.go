// Package githubdigest is the built-in GitHub activity digest plugin. Its
// digest operation is designed to run from a scheduled feed: it walks repo
// event streams, uses the cursor capability to remember the last event seen
// per repo, and reports only what is new since the previous run.
package githubdigest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/shu-assistant/shu/pkg/host"
	"github.com/shu-assistant/shu/pkg/plugin"
)

// Name is the plugin name, matching the manifest.
const Name = "github_digest"

// Version is the plugin version, matching the manifest.
const Version = "1.0.0"

const (
	apiBase       = "https://api.github.com"
	maxEventPages = 3
	cacheTTL      = 5 * time.Minute
)

// Plugin implements the GitHub digest operations.
type Plugin struct{}

// New is the factory registered for the manifest entry "githubdigest:Plugin".
func New() (plugin.Plugin, error) {
	return &Plugin{}, nil
}

func (p *Plugin) Name() string    { return Name }
func (p *Plugin) Version() string { return Version }

func (p *Plugin) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"op": map[string]any{
				"type":        "string",
				"enum":        []any{"digest", "repo_activity"},
				"description": "Operation to perform.",
			},
			"repos": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Repositories to digest, as owner/name.",
			},
			"repo": map[string]any{
				"type":        "string",
				"description": "Single repository for repo_activity, as owner/name.",
			},
			"reset_cursor": map[string]any{
				"type":        "boolean",
				"description": "Discard stored cursors and treat every event as new.",
			},
		},
		"required": []any{"op"},
	}
}

func (p *Plugin) OutputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"repos":     map[string]any{"type": "array"},
			"new_count": map[string]any{"type": "integer"},
		},
	}
}

// Execute dispatches one operation.
func (p *Plugin) Execute(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
	log, err := h.Log()
	if err != nil {
		return nil, err
	}

	op, _ := params["op"].(string)
	switch op {
	case "digest":
		return p.digest(ctx, params, h, log)
	case "repo_activity":
		return p.repoActivity(ctx, params, h)
	default:
		return plugin.Err(fmt.Sprintf("unknown operation %q", op), "invalid_params"), nil
	}
}

// digest fetches new events for each configured repo since the stored cursor.
func (p *Plugin) digest(ctx context.Context, params map[string]any, h *host.Host, log *slog.Logger) (*plugin.Result, error) {
	repos := stringSlice(params["repos"])
	if len(repos) == 0 {
		return plugin.Err("repos is required for digest", "invalid_params"), nil
	}
	reset, _ := params["reset_cursor"].(bool)

	token, result := p.token(ctx, h)
	if result != nil {
		return result, nil
	}
	cursor, err := h.Cursor()
	if err != nil {
		return nil, err
	}

	var (
		summaries []map[string]any
		warnings  []string
		newTotal  int
	)
	for _, repo := range repos {
		cursorKey := "events:" + repo
		since := ""
		if !reset {
			if v, ok, err := cursor.Get(ctx, cursorKey); err == nil && ok {
				since = v
			}
		}

		events, newest, fetchErr := p.fetchEvents(ctx, h, token, repo, since)
		if fetchErr != nil {
			warnings = append(warnings, fmt.Sprintf("repo %s: %v", repo, fetchErr))
			continue
		}

		if newest != "" {
			if err := cursor.Set(ctx, cursorKey, newest); err != nil {
				warnings = append(warnings, fmt.Sprintf("repo %s: cursor not saved: %v", repo, err))
			}
		}

		newTotal += len(events)
		summaries = append(summaries, map[string]any{
			"repo":       repo,
			"new_events": len(events),
			"events":     events,
		})
	}

	log.Info("GitHub digest completed",
		"repos", len(repos), "new_events", newTotal, "warnings", len(warnings))

	return &plugin.Result{
		Status: plugin.StatusSuccess,
		Data: map[string]any{
			"repos":     summaries,
			"new_count": newTotal,
		},
		Warnings: warnings,
	}, nil
}

// repoActivity returns a point-in-time snapshot of one repository.
func (p *Plugin) repoActivity(ctx context.Context, params map[string]any, h *host.Host) (*plugin.Result, error) {
	repo, _ := params["repo"].(string)
	if repo == "" {
		return plugin.Err("repo is required for repo_activity", "invalid_params"), nil
	}

	token, result := p.token(ctx, h)
	if result != nil {
		return result, nil
	}

	info, err := p.fetchJSON(ctx, h, token, apiBase+"/repos/"+repo)
	if err != nil {
		return plugin.Err(fmt.Sprintf("fetching %s: %v", repo, err), "upstream_error"), nil
	}

	events, _, err := p.fetchEvents(ctx, h, token, repo, "")
	if err != nil {
		return plugin.Err(fmt.Sprintf("fetching events for %s: %v", repo, err), "upstream_error"), nil
	}
	if len(events) > 10 {
		events = events[:10]
	}

	return plugin.OK(map[string]any{
		"repo":          repo,
		"description":   info["description"],
		"stars":         info["stargazers_count"],
		"open_issues":   info["open_issues_count"],
		"pushed_at":     info["pushed_at"],
		"recent_events": events,
	}), nil
}

// token resolves the GitHub credential: the user's linked identity when the
// manifest bound one, otherwise the stored github_token secret.
func (p *Plugin) token(ctx context.Context, h *host.Host) (string, *plugin.Result) {
	auth, err := h.Auth()
	if err == nil && auth.Section("github") != nil {
		token, _, err := auth.ResolveTokenAndTarget(ctx, "github")
		if err == nil && token != "" {
			return token, nil
		}
	}

	secrets, err := h.Secrets()
	if err != nil {
		return "", plugin.Err(err.Error(), "capability_denied")
	}
	token, ok, err := secrets.Get(ctx, "github_token")
	if err != nil {
		return "", plugin.Err(fmt.Sprintf("resolving github_token: %v", err), "secret_error")
	}
	if !ok {
		return "", plugin.Err("no GitHub credential available", "missing_secrets")
	}
	return token, nil
}

// fetchEvents walks the repo event stream, newest first, stopping at the
// cursor event id. Returns the new events and the newest event id seen.
func (p *Plugin) fetchEvents(ctx context.Context, h *host.Host, token, repo, since string) ([]map[string]any, string, error) {
	var (
		events []map[string]any
		newest string
	)
	for page := 1; page <= maxEventPages; page++ {
		raw, err := p.fetchJSONList(ctx, h, token,
			fmt.Sprintf("%s/repos/%s/events?per_page=30&page=%d", apiBase, repo, page))
		if err != nil {
			return nil, "", err
		}
		if len(raw) == 0 {
			break
		}

		for _, ev := range raw {
			id, _ := ev["id"].(string)
			if newest == "" {
				newest = id
			}
			if since != "" && id == since {
				return events, newest, nil
			}
			events = append(events, summarizeEvent(ev))
		}
		if since == "" {
			// No cursor yet, one page is enough for a first digest.
			break
		}
	}
	return events, newest, nil
}

// summarizeEvent reduces a raw event to the fields worth surfacing.
func summarizeEvent(ev map[string]any) map[string]any {
	out := map[string]any{
		"id":         ev["id"],
		"type":       ev["type"],
		"created_at": ev["created_at"],
	}
	if actor, ok := ev["actor"].(map[string]any); ok {
		out["actor"] = actor["login"]
	}
	if payload, ok := ev["payload"].(map[string]any); ok {
		if action, ok := payload["action"].(string); ok {
			out["action"] = action
		}
	}
	return out
}

func (p *Plugin) fetchJSON(ctx context.Context, h *host.Host, token, url string) (map[string]any, error) {
	body, err := p.fetch(ctx, h, token, url)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return out, nil
}

func (p *Plugin) fetchJSONList(ctx context.Context, h *host.Host, token, url string) ([]map[string]any, error) {
	body, err := p.fetch(ctx, h, token, url)
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return out, nil
}

// fetch performs one authenticated GET, memoized in the execution cache so
// repeated repo entries in a single digest do not refetch.
func (p *Plugin) fetch(ctx context.Context, h *host.Host, token, url string) ([]byte, error) {
	cache, cacheErr := h.Cache()
	if cacheErr == nil {
		if v, ok := cache.Get(url); ok {
			if body, ok := v.([]byte); ok {
				return body, nil
			}
		}
	}

	httpCap, err := h.HTTP()
	if err != nil {
		return nil, err
	}
	resp, err := httpCap.Fetch(ctx, host.Request{
		Method: "GET",
		URL:    url,
		Headers: map[string]string{
			"Authorization": "Bearer " + token,
			"Accept":        "application/vnd.github+json",
		},
	})
	if err != nil {
		return nil, err
	}

	if cacheErr == nil {
		cache.Set(url, resp.Body, cacheTTL)
	}
	return resp.Body, nil
}

func stringSlice(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
