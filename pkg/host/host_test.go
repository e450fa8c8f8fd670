package host

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shu-assistant/shu/pkg/kb"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHostCapabilityGating(t *testing.T) {
	builder := NewBuilder(Deps{})
	h := builder.Build("github", "user-1", "u@example.com", []string{CapHTTP, CapLog}, nil)

	httpCap, err := h.HTTP()
	require.NoError(t, err)
	assert.NotNil(t, httpCap)

	log, err := h.Log()
	require.NoError(t, err)
	assert.NotNil(t, log)

	_, err = h.Secrets()
	require.Error(t, err)
	capErr, ok := err.(*CapabilityError)
	require.True(t, ok)
	assert.Equal(t, "secrets", capErr.Capability)
	assert.Equal(t, "github", capErr.Plugin)
	assert.Equal(t, "capability_denied", capErr.Code())

	_, err = h.KB()
	assert.Error(t, err)
	_, err = h.Storage()
	assert.Error(t, err)
}

func TestStorageAndOCRWithoutBackends(t *testing.T) {
	builder := NewBuilder(Deps{})
	h := builder.Build("github", "user-1", "", []string{CapStorage, CapOCR}, nil)

	storage, err := h.Storage()
	require.NoError(t, err)

	var unconfigured *UnconfiguredError
	err = storage.Put(context.Background(), "k", []byte("v"))
	require.ErrorAs(t, err, &unconfigured)
	assert.Equal(t, CapStorage, unconfigured.Capability)
	assert.Equal(t, "capability_unconfigured", unconfigured.Code())

	_, _, err = storage.Get(context.Background(), "k")
	assert.ErrorAs(t, err, &unconfigured)
	_, err = storage.List(context.Background(), "")
	assert.ErrorAs(t, err, &unconfigured)
	assert.ErrorAs(t, storage.Delete(context.Background(), "k"), &unconfigured)

	ocr, err := h.OCR()
	require.NoError(t, err)
	_, err = ocr.ExtractText(context.Background(), []byte("%PDF"))
	require.ErrorAs(t, err, &unconfigured)
	assert.Equal(t, CapOCR, unconfigured.Capability)
}

func TestParseContext(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want func(t *testing.T, c *Context)
	}{
		{
			name: "nil raw yields empty context",
			raw:  nil,
			want: func(t *testing.T, c *Context) {
				assert.Empty(t, c.Auth)
				assert.Empty(t, c.KnowledgeBaseIDs)
				assert.Empty(t, c.ScheduleID)
			},
		},
		{
			name: "auth sections parsed per provider",
			raw: map[string]any{
				"auth": map[string]any{
					"google": map[string]any{
						"mode":    "domain_delegate",
						"subject": "ops@corp.com",
						"scopes":  []any{"calendar.readonly", "drive"},
					},
				},
			},
			want: func(t *testing.T, c *Context) {
				section := c.Auth["google"]
				require.NotNil(t, section)
				assert.Equal(t, "domain_delegate", section.Mode)
				assert.Equal(t, "ops@corp.com", section.Subject)
				assert.Equal(t, []string{"calendar.readonly", "drive"}, section.Scopes)
			},
		},
		{
			name: "non-string and empty kb ids filtered",
			raw: map[string]any{
				"kb": map[string]any{
					"knowledge_base_ids": []any{"kb-1", 42, "", nil, "kb-2"},
				},
			},
			want: func(t *testing.T, c *Context) {
				assert.Equal(t, []string{"kb-1", "kb-2"}, c.KnowledgeBaseIDs)
			},
		},
		{
			name: "all-invalid kb ids become no bindings",
			raw: map[string]any{
				"kb": map[string]any{
					"knowledge_base_ids": []any{7, false, ""},
				},
			},
			want: func(t *testing.T, c *Context) {
				assert.Empty(t, c.KnowledgeBaseIDs)
			},
		},
		{
			name: "schedule id and ocr mode",
			raw: map[string]any{
				"exec": map[string]any{"schedule_id": "feed-9"},
				"ocr":  map[string]any{"mode": "fast"},
			},
			want: func(t *testing.T, c *Context) {
				assert.Equal(t, "feed-9", c.ScheduleID)
				assert.Equal(t, "fast", c.OCRMode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, ParseContext(tt.raw))
		})
	}
}

func TestCacheCapability(t *testing.T) {
	now := time.Now()
	c := newCacheCapability(2)
	c.nowFn = func() time.Time { return now }

	c.Set("a", 1, time.Minute)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	// Expiry.
	now = now.Add(2 * time.Minute)
	_, ok = c.Get("a")
	assert.False(t, ok)

	// Eviction of the oldest at capacity.
	c.Set("a", 1, time.Hour)
	c.Set("b", 2, time.Hour)
	c.Set("c", 3, time.Hour)
	_, ok = c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestHTTPCapabilityRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"ok":true}`)
	}))
	defer srv.Close()

	cap := newHTTPCapability(DefaultHTTPConfig(), testLogger())
	cap.sleepFn = func(time.Duration) {}

	resp, err := cap.Fetch(context.Background(), Request{URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPCapabilityNonRetryable(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"bad token"}`)
	}))
	defer srv.Close()

	cap := newHTTPCapability(DefaultHTTPConfig(), testLogger())
	cap.sleepFn = func(time.Duration) {}

	_, err := cap.Fetch(context.Background(), Request{URL: srv.URL})
	require.Error(t, err)
	reqErr, ok := err.(*RequestError)
	require.True(t, ok)
	assert.Equal(t, CategoryAuthError, reqErr.Category)
	assert.False(t, reqErr.IsRetryable)
	assert.Contains(t, reqErr.Body, "bad token")
	assert.Equal(t, int32(1), calls.Load(), "auth errors must not be retried")
}

func TestHTTPCapabilityRejectsBadScheme(t *testing.T) {
	cap := newHTTPCapability(DefaultHTTPConfig(), testLogger())
	_, err := cap.Fetch(context.Background(), Request{URL: "ftp://example.com/x"})
	require.Error(t, err)
	reqErr, ok := err.(*RequestError)
	require.True(t, ok)
	assert.Equal(t, CategoryValidationError, reqErr.Category)
}

type fakeSearcher struct {
	chunkPage *kb.Page
	docPage   *kb.Page
	doc       *kb.Document
	err       error
}

func (f *fakeSearcher) SearchChunks(ctx context.Context, q kb.Query) (*kb.Page, error) {
	return f.chunkPage, f.err
}

func (f *fakeSearcher) SearchDocuments(ctx context.Context, q kb.Query) (*kb.Page, error) {
	return f.docPage, f.err
}

func (f *fakeSearcher) GetDocument(ctx context.Context, kbIDs []string, id string) (*kb.Document, error) {
	return f.doc, f.err
}

type fakeAccess struct{ err error }

func (f *fakeAccess) CheckRead(ctx context.Context, userID string, kbIDs []string) error {
	return f.err
}

func kbErrCode(t *testing.T, result map[string]any) string {
	t.Helper()
	require.Equal(t, "error", result["status"])
	detail, ok := result["error"].(map[string]any)
	require.True(t, ok)
	code, _ := detail["code"].(string)
	return code
}

func TestKBCapabilityNoKnowledgeBases(t *testing.T) {
	k := &KBCapability{searcher: &fakeSearcher{}, userID: "u1"}
	result := k.SearchChunks(context.Background(), "content", "contains", "x", 1)
	assert.Equal(t, "no_knowledge_bases", kbErrCode(t, result))

	result = k.GetDocument(context.Background(), "doc-1")
	assert.Equal(t, "no_knowledge_bases", kbErrCode(t, result))
}

func TestKBCapabilityFieldValidation(t *testing.T) {
	k := &KBCapability{searcher: &fakeSearcher{}, userID: "u1", kbIDs: []string{"kb-1"}}

	result := k.SearchChunks(context.Background(), "embedding", "eq", "x", 1)
	assert.Equal(t, "invalid_field", kbErrCode(t, result))

	result = k.SearchChunks(context.Background(), "content", "has_key", "x", 1)
	assert.Equal(t, "invalid_operator", kbErrCode(t, result))

	result = k.SearchDocuments(context.Background(), "tags", "icontains", "x", 1)
	assert.Equal(t, "invalid_operator", kbErrCode(t, result))
}

func TestKBCapabilityAccessDenied(t *testing.T) {
	k := &KBCapability{
		searcher: &fakeSearcher{},
		access:   &fakeAccess{err: &kb.AccessError{Code: kb.AccessDenied, Message: "no read grant"}},
		userID:   "u1",
		kbIDs:    []string{"kb-1"},
	}
	result := k.SearchChunks(context.Background(), "content", "contains", "x", 1)
	assert.Equal(t, kb.AccessDenied, kbErrCode(t, result))
}

func TestKBCapabilitySearchEnvelope(t *testing.T) {
	searcher := &fakeSearcher{
		chunkPage: &kb.Page{
			Results: []kb.Result{{
				ID:              "c1",
				KnowledgeBaseID: "kb-1",
				DocumentID:      "d1",
				Title:           "Readme",
				Source:          "repo",
				Score:           0.9,
			}},
			TotalResults: 41,
			Page:         2,
			PageSize:     kb.DefaultPageSize,
		},
	}
	k := &KBCapability{searcher: searcher, userID: "u1", kbIDs: []string{"kb-1"}}

	result := k.SearchChunks(context.Background(), "content", "contains", "read", 2)
	assert.Equal(t, 41, result["total_results"])
	assert.Equal(t, 2, result["page"])
	assert.Equal(t, kb.DefaultPageSize, result["page_size"])

	results, ok := result["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 1)
	first := results[0].(map[string]any)
	assert.Equal(t, "c1", first["id"])
	assert.NotContains(t, first, "content", "chunk results must omit content")
	assert.NotContains(t, first, "embedding")
}

func TestKBCapabilityGetDocument(t *testing.T) {
	searcher := &fakeSearcher{doc: &kb.Document{
		ID:              "d1",
		KnowledgeBaseID: "kb-1",
		Title:           "Onboarding guide",
		Content:         "step one",
	}}
	k := &KBCapability{searcher: searcher, userID: "u1", kbIDs: []string{"kb-1"}}

	result := k.GetDocument(context.Background(), "d1")
	assert.Equal(t, "d1", result["id"])
	assert.Equal(t, "step one", result["content"])

	// Out-of-scope documents look exactly like missing ones.
	searcher.doc = nil
	result = k.GetDocument(context.Background(), "d1")
	assert.Equal(t, "not_found", kbErrCode(t, result))
}

func TestKBCapabilitySearchErrorEnvelope(t *testing.T) {
	k := &KBCapability{
		searcher: &fakeSearcher{err: fmt.Errorf("backend unavailable")},
		userID:   "u1",
		kbIDs:    []string{"kb-1"},
	}
	result := k.SearchChunks(context.Background(), "content", "contains", "x", 1)
	assert.Equal(t, "search_chunks_error", kbErrCode(t, result))

	result = k.SearchDocuments(context.Background(), "title", "eq", "x", 1)
	assert.Equal(t, "search_documents_error", kbErrCode(t, result))

	result = k.GetDocument(context.Background(), "d1")
	assert.Equal(t, "get_document_error", kbErrCode(t, result))
}

func TestSecretsCapabilityUserScopedFirst(t *testing.T) {
	store := &mapSecrets{values: map[string]string{
		"github/u1/token": "user-token",
		"github//token":   "global-token",
		"github//shared":  "shared-value",
	}}
	s := &SecretsCapability{store: store, pluginName: "github", userID: "u1"}

	val, ok, err := s.Get(context.Background(), "token")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "user-token", val)

	val, ok, err = s.Get(context.Background(), "shared")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "shared-value", val)

	_, ok, err = s.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

type mapSecrets struct{ values map[string]string }

func (m *mapSecrets) Lookup(ctx context.Context, pluginName, userID, key string) (string, bool, error) {
	v, ok := m.values[pluginName+"/"+userID+"/"+key]
	return v, ok, nil
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 100))

	long := "line one\nline two\nline three and a long tail of text"
	got := TruncateText(long, 30)
	assert.Less(t, len(got), len(long)+60)
	assert.Contains(t, got, "[TRUNCATED:")
	assert.Contains(t, got, "line one")
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("abc"))
	assert.Equal(t, 1, EstimateTokens("abcd"))
	assert.Equal(t, 2, EstimateTokens("abcde"))
}
