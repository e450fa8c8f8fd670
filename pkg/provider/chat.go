package provider

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shu-assistant/shu/pkg/executor"
	"github.com/shu-assistant/shu/pkg/plugin"
)

// Message roles in a chat context.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ToolNameSeparator joins plugin name and operation in the tool name shown
// to the LLM. Inbound tool names are split on the first occurrence.
const ToolNameSeparator = "__"

// Message is one conversation message.
type Message struct {
	Role        string
	Content     string
	Attachments []Attachment
}

// Attachment is a file attached to a message. ExtractedText carries the
// pre-extracted content for adapters without native document support.
type Attachment struct {
	Path          string
	FileName      string
	MimeType      string
	ExtractedText string
}

// ChatContext is the mutable message context one turn runs against. The
// orchestrator appends tool round-trip messages between stream cycles.
type ChatContext struct {
	Messages []Message

	// Native holds provider-native messages appended during tool cycles.
	// Adapters that shape payloads from raw maps read these after Messages.
	Native []map[string]any
}

// Append adds provider-native round-trip messages.
func (c *ChatContext) Append(msgs []map[string]any) {
	c.Native = append(c.Native, msgs...)
}

// CallableTool is one (plugin, op) pair exposed to the LLM.
type CallableTool struct {
	PluginName  string
	Operation   string
	Description string
	// Parameters is the op's JSON schema fragment shown to the provider.
	Parameters map[string]any
}

// WireName returns the tool name on the wire: <plugin>__<op>.
func (t CallableTool) WireName() string {
	return t.PluginName + ToolNameSeparator + t.Operation
}

// SplitToolName splits a wire tool name into plugin name and operation.
func SplitToolName(name string) (pluginName, op string, ok bool) {
	i := strings.Index(name, ToolNameSeparator)
	if i <= 0 || i+len(ToolNameSeparator) >= len(name) {
		return "", "", false
	}
	return name[:i], name[i+len(ToolNameSeparator):], true
}

// PluginCaller executes one plugin call through the policy pipeline.
// Satisfied by *executor.Executor.
type PluginCaller interface {
	Execute(ctx context.Context, req executor.Request) (*plugin.Result, error)
}

// callPlugin marshals args plus the bound KB scope into the host overlay,
// runs the plugin through the executor, and returns the JSON-serialized
// result. Policy denials become structured error JSON so the LLM can
// recover; they never abort the stream.
func (b *base) callPlugin(ctx context.Context, pluginName, op string, args map[string]any) string {
	params := make(map[string]any, len(args)+2)
	for k, v := range args {
		params[k] = v
	}
	params["op"] = op

	// Merge KB scope into the host overlay, preserving caller-set keys.
	overlay, _ := params[executor.ParamHost].(map[string]any)
	if overlay == nil {
		overlay = map[string]any{}
	}
	if len(b.pctx.KnowledgeBaseIDs) > 0 {
		kbSection, _ := overlay["kb"].(map[string]any)
		if kbSection == nil {
			kbSection = map[string]any{}
		}
		if _, ok := kbSection["knowledge_base_ids"]; !ok {
			ids := make([]any, len(b.pctx.KnowledgeBaseIDs))
			for i, id := range b.pctx.KnowledgeBaseIDs {
				ids[i] = id
			}
			kbSection["knowledge_base_ids"] = ids
		}
		overlay["kb"] = kbSection
	}
	if len(overlay) > 0 {
		params[executor.ParamHost] = overlay
	}

	result, err := b.pctx.Caller.Execute(ctx, executor.Request{
		PluginName: pluginName,
		UserID:     b.pctx.UserID,
		UserEmail:  b.pctx.UserEmail,
		Params:     params,
	})
	if err != nil {
		var polErr *executor.PolicyError
		code := plugin.CodePluginExecuteError
		details := map[string]any(nil)
		if ok := asPolicyError(err, &polErr); ok {
			code = polErr.Code
			details = polErr.Details
		}
		result = plugin.ErrWithDetails(err.Error(), code, details)
	}
	data, err := json.Marshal(result)
	if err != nil {
		data = []byte(fmt.Sprintf(`{"status":"error","error":{"code":"plugin_execute_error","message":%q}}`, err.Error()))
	}
	return string(data)
}

func asPolicyError(err error, target **executor.PolicyError) bool {
	pe, ok := err.(*executor.PolicyError)
	if !ok {
		return false
	}
	*target = pe
	return true
}

// resolveAttachment enforces the path-traversal guard: the attachment must
// resolve inside the configured storage root, symlinks rejected.
func (b *base) resolveAttachment(a Attachment) (string, error) {
	if b.pctx.AttachmentRoot == "" {
		return "", fmt.Errorf("no attachment storage configured")
	}
	root, err := filepath.Abs(b.pctx.AttachmentRoot)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.Abs(filepath.Join(root, filepath.Clean("/"+a.Path)))
	if err != nil {
		return "", err
	}
	if resolved != root && !strings.HasPrefix(resolved, root+string(filepath.Separator)) {
		return "", fmt.Errorf("attachment path escapes storage root")
	}
	info, err := os.Lstat(resolved)
	if err != nil {
		return "", err
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return "", fmt.Errorf("attachment path is a symlink")
	}
	return resolved, nil
}

// readFileBase64 reads a file and base64-encodes it for inline delivery.
func readFileBase64(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// inlineAttachmentText is the fallback for adapters without native document
// support: pre-extracted text with a labeled header.
func inlineAttachmentText(a Attachment) string {
	if a.ExtractedText == "" {
		return ""
	}
	return fmt.Sprintf("\n\n[Attached file: %s]\n%s", a.FileName, a.ExtractedText)
}
