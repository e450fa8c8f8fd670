package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/shu-assistant/shu/pkg/kb"
	pb "github.com/shu-assistant/shu/proto"
)

func TestSearchRequestMapping(t *testing.T) {
	req := searchRequest(kb.Query{
		KnowledgeBaseIDs: []string{"kb-1", "kb-2"},
		Field:            "content",
		Operator:         "contains",
		Value:            "deploy",
		Page:             3,
		PageSize:         20,
	})

	assert.Equal(t, []string{"kb-1", "kb-2"}, req.KnowledgeBaseIds)
	assert.Equal(t, "content", req.Field)
	assert.Equal(t, "contains", req.Operator)
	assert.Equal(t, "deploy", req.Value)
	assert.Equal(t, int32(3), req.Page)
	assert.Equal(t, int32(20), req.PageSize)
}

func TestPageFromResponse(t *testing.T) {
	meta, err := structpb.NewStruct(map[string]any{"lang": "en"})
	require.NoError(t, err)

	page := pageFromResponse(&pb.SearchResponse{
		Results: []*pb.SearchResult{
			{
				Id:              "chunk-1",
				KnowledgeBaseId: "kb-1",
				DocumentId:      "doc-1",
				Title:           "Onboarding guide",
				Score:           0.92,
				Metadata:        meta,
			},
			{Id: "chunk-2", KnowledgeBaseId: "kb-2"},
		},
		TotalResults: 41,
		Page:         2,
		PageSize:     20,
	})

	require.Len(t, page.Results, 2)
	assert.Equal(t, "chunk-1", page.Results[0].ID)
	assert.Equal(t, "doc-1", page.Results[0].DocumentID)
	assert.Equal(t, 0.92, page.Results[0].Score)
	assert.Equal(t, map[string]any{"lang": "en"}, page.Results[0].Metadata)
	assert.Nil(t, page.Results[1].Metadata)
	assert.Equal(t, 41, page.TotalResults)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 20, page.PageSize)
}

func TestPageFromResponseEmpty(t *testing.T) {
	page := pageFromResponse(&pb.SearchResponse{PageSize: 20, Page: 1})
	assert.Empty(t, page.Results)
	assert.Zero(t, page.TotalResults)
}
