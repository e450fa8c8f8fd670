package kbsearch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shu-assistant/shu/pkg/host"
	"github.com/shu-assistant/shu/pkg/kb"
	"github.com/shu-assistant/shu/pkg/plugin"
)

type fakeSearcher struct {
	page *kb.Page
	doc  *kb.Document
	got  kb.Query
}

func (f *fakeSearcher) SearchChunks(_ context.Context, q kb.Query) (*kb.Page, error) {
	f.got = q
	return f.page, nil
}

func (f *fakeSearcher) SearchDocuments(_ context.Context, q kb.Query) (*kb.Page, error) {
	f.got = q
	return f.page, nil
}

func (f *fakeSearcher) GetDocument(_ context.Context, _ []string, _ string) (*kb.Document, error) {
	return f.doc, nil
}

func newTestHost(t *testing.T, searcher kb.Searcher, kbIDs []string, caps []string) *host.Host {
	t.Helper()
	builder := host.NewBuilder(host.Deps{Searcher: searcher})
	ctx := host.NewContext()
	ctx.KnowledgeBaseIDs = kbIDs
	return builder.Build(Name, "user-1", "", caps, ctx)
}

func TestSchemaDeclaresOpEnum(t *testing.T) {
	p, err := New()
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"search_chunks", "search_documents", "get_document"},
		plugin.OpEnum(p.Schema()))
}

func TestExecuteSearchChunks(t *testing.T) {
	searcher := &fakeSearcher{page: &kb.Page{
		Results: []kb.Result{
			{ID: "c1", KnowledgeBaseID: "kb-1", Title: "Oncall guide", Score: 0.88},
		},
		TotalResults: 1,
		Page:         1,
		PageSize:     kb.DefaultPageSize,
	}}
	h := newTestHost(t, searcher, []string{"kb-1"}, []string{host.CapKB, host.CapLog})

	p := &Plugin{}
	result, err := p.Execute(context.Background(), map[string]any{
		"op":       "search_chunks",
		"field":    "content",
		"operator": "contains",
		"value":    "deploy",
	}, h)
	require.NoError(t, err)
	require.True(t, result.IsSuccess())

	assert.Equal(t, []string{"kb-1"}, searcher.got.KnowledgeBaseIDs)
	assert.Equal(t, "contains", searcher.got.Operator)
	assert.Equal(t, 1, result.Data["total_results"])
}

func TestExecuteGetDocument(t *testing.T) {
	searcher := &fakeSearcher{doc: &kb.Document{
		ID:              "doc-1",
		KnowledgeBaseID: "kb-1",
		Content:         "full text",
	}}
	h := newTestHost(t, searcher, []string{"kb-1"}, []string{host.CapKB, host.CapLog})

	p := &Plugin{}
	result, err := p.Execute(context.Background(), map[string]any{
		"op":          "get_document",
		"document_id": "doc-1",
	}, h)
	require.NoError(t, err)
	require.True(t, result.IsSuccess())

	doc, ok := result.Data["document"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "full text", doc["content"])
}

func TestExecuteGetDocumentMissingID(t *testing.T) {
	h := newTestHost(t, &fakeSearcher{}, []string{"kb-1"}, []string{host.CapKB, host.CapLog})

	p := &Plugin{}
	result, err := p.Execute(context.Background(), map[string]any{"op": "get_document"}, h)
	require.NoError(t, err)
	require.NotNil(t, result.Error)
	assert.Equal(t, "invalid_params", result.Error.Code)
}

func TestExecuteNoBoundKnowledgeBases(t *testing.T) {
	h := newTestHost(t, &fakeSearcher{}, nil, []string{host.CapKB, host.CapLog})

	p := &Plugin{}
	result, err := p.Execute(context.Background(), map[string]any{
		"op":       "search_chunks",
		"field":    "content",
		"operator": "contains",
		"value":    "x",
	}, h)
	require.NoError(t, err)
	require.NotNil(t, result.Error)
	assert.Equal(t, "no_knowledge_bases", result.Error.Code)
}

func TestExecuteCapabilityDenied(t *testing.T) {
	h := newTestHost(t, &fakeSearcher{}, []string{"kb-1"}, []string{host.CapLog})

	p := &Plugin{}
	_, err := p.Execute(context.Background(), map[string]any{"op": "search_chunks"}, h)
	require.Error(t, err)

	var capErr *host.CapabilityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, host.CapKB, capErr.Capability)
}

func TestIntParam(t *testing.T) {
	assert.Equal(t, 3, intParam(map[string]any{"page": float64(3)}, "page", 1))
	assert.Equal(t, 2, intParam(map[string]any{"page": 2}, "page", 1))
	assert.Equal(t, 1, intParam(map[string]any{}, "page", 1))
}
