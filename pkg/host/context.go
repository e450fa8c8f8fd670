package host

// Reserved host-context section keys. Callers inject trusted context through
// the params __host overlay; the executor strips it before plugins see params.
const (
	SectionAuth = "auth"
	SectionExec = "exec"
	SectionKB   = "kb"
	SectionOCR  = "ocr"
)

// AuthSection carries per-provider auth instructions resolved by the
// executor from manifest op_auth and caller params. Plugins never see these
// in params; they reach them through host.Auth().
type AuthSection struct {
	Mode    string
	Subject string
	Scopes  []string
}

// Context is the parsed execution context handed to the host at build time.
type Context struct {
	Auth             map[string]*AuthSection
	ScheduleID       string
	KnowledgeBaseIDs []string
	OCRMode          string
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{Auth: make(map[string]*AuthSection)}
}

// ParseContext converts a raw __host overlay into a Context.
// Unknown sections are ignored. KB IDs that are not non-empty strings are
// filtered out; an all-invalid list becomes no bindings.
func ParseContext(raw map[string]any) *Context {
	c := NewContext()
	if raw == nil {
		return c
	}

	if auth, ok := raw[SectionAuth].(map[string]any); ok {
		for provider, v := range auth {
			section, ok := v.(map[string]any)
			if !ok {
				continue
			}
			as := &AuthSection{}
			if mode, ok := section["mode"].(string); ok {
				as.Mode = mode
			}
			if subject, ok := section["subject"].(string); ok {
				as.Subject = subject
			}
			as.Scopes = stringList(section["scopes"])
			c.Auth[provider] = as
		}
	}

	if exec, ok := raw[SectionExec].(map[string]any); ok {
		if id, ok := exec["schedule_id"].(string); ok {
			c.ScheduleID = id
		}
	}

	if kbSection, ok := raw[SectionKB].(map[string]any); ok {
		c.KnowledgeBaseIDs = stringList(kbSection["knowledge_base_ids"])
	}

	if ocr, ok := raw[SectionOCR].(map[string]any); ok {
		if mode, ok := ocr["mode"].(string); ok {
			c.OCRMode = mode
		}
	}

	return c
}

// EnsureAuth returns the auth section for provider, creating it if absent.
func (c *Context) EnsureAuth(provider string) *AuthSection {
	if c.Auth == nil {
		c.Auth = make(map[string]*AuthSection)
	}
	section, ok := c.Auth[provider]
	if !ok {
		section = &AuthSection{}
		c.Auth[provider] = section
	}
	return section
}

// stringList filters an arbitrary value into its non-empty string members.
func stringList(v any) []string {
	var out []string
	switch list := v.(type) {
	case []string:
		for _, s := range list {
			if s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, item := range list {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
