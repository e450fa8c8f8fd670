package host

import (
	"context"
	"fmt"

	"github.com/shu-assistant/shu/pkg/kb"
)

// KBCapability exposes knowledge-base search and single-document retrieval
// scoped to the KB IDs bound at host construction. The bound set is
// immutable; plugins cannot widen their search scope.
type KBCapability struct {
	searcher kb.Searcher
	access   kb.AccessChecker
	userID   string
	kbIDs    []string
}

// KnowledgeBaseIDs returns a copy of the bound KB IDs.
func (k *KBCapability) KnowledgeBaseIDs() []string {
	out := make([]string, len(k.kbIDs))
	copy(out, k.kbIDs)
	return out
}

// SearchChunks searches stored chunks. Results omit content and embeddings.
func (k *KBCapability) SearchChunks(ctx context.Context, field, operator, value string, page int) map[string]any {
	return k.search(ctx, kb.EntityChunk, field, operator, value, page)
}

// SearchDocuments searches documents. Results omit content.
func (k *KBCapability) SearchDocuments(ctx context.Context, field, operator, value string, page int) map[string]any {
	return k.search(ctx, kb.EntityDocument, field, operator, value, page)
}

func (k *KBCapability) search(ctx context.Context, entity kb.Entity, field, operator, value string, page int) map[string]any {
	if len(k.kbIDs) == 0 {
		return kbError("no_knowledge_bases", "no knowledge bases bound to this execution")
	}

	ft, ok := kb.ValidateField(entity, field)
	if !ok {
		return kbError("invalid_field", fmt.Sprintf("field %q is not searchable", field))
	}
	if !kb.ValidOperator(ft, operator) {
		return kbError("invalid_operator", fmt.Sprintf("operator %q is not valid for %s field %q", operator, ft, field))
	}

	if err := k.checkAccess(ctx); err != nil {
		return err
	}

	if page < 1 {
		page = 1
	}
	q := kb.Query{
		KnowledgeBaseIDs: k.kbIDs,
		Field:            field,
		Operator:         operator,
		Value:            value,
		Page:             page,
		PageSize:         kb.DefaultPageSize,
	}

	var (
		result *kb.Page
		err    error
	)
	if entity == kb.EntityChunk {
		result, err = k.searcher.SearchChunks(ctx, q)
		if err != nil {
			return kbError("search_chunks_error", err.Error())
		}
	} else {
		result, err = k.searcher.SearchDocuments(ctx, q)
		if err != nil {
			return kbError("search_documents_error", err.Error())
		}
	}

	results := make([]any, 0, len(result.Results))
	for _, r := range result.Results {
		results = append(results, map[string]any{
			"id":                r.ID,
			"knowledge_base_id": r.KnowledgeBaseID,
			"document_id":       r.DocumentID,
			"title":             r.Title,
			"source":            r.Source,
			"score":             r.Score,
			"metadata":          r.Metadata,
		})
	}
	return map[string]any{
		"results":       results,
		"total_results": result.TotalResults,
		"page":          result.Page,
		"page_size":     result.PageSize,
	}
}

// GetDocument retrieves one document including its content. A document whose
// KB is outside the bound set is reported as not_found.
func (k *KBCapability) GetDocument(ctx context.Context, documentID string) map[string]any {
	if len(k.kbIDs) == 0 {
		return kbError("no_knowledge_bases", "no knowledge bases bound to this execution")
	}
	if err := k.checkAccess(ctx); err != nil {
		return err
	}

	doc, err := k.searcher.GetDocument(ctx, k.kbIDs, documentID)
	if err != nil {
		return kbError("get_document_error", err.Error())
	}
	if doc == nil {
		return kbError("not_found", fmt.Sprintf("document %q not found", documentID))
	}
	return map[string]any{
		"id":                doc.ID,
		"knowledge_base_id": doc.KnowledgeBaseID,
		"title":             doc.Title,
		"source":            doc.Source,
		"mime_type":         doc.MimeType,
		"content":           doc.Content,
		"metadata":          doc.Metadata,
	}
}

// checkAccess runs the RBAC check over every bound KB.
func (k *KBCapability) checkAccess(ctx context.Context) map[string]any {
	if k.access == nil {
		return nil
	}
	if err := k.access.CheckRead(ctx, k.userID, k.kbIDs); err != nil {
		if ae, ok := err.(*kb.AccessError); ok {
			return kbError(ae.Code, ae.Message)
		}
		return kbError(kb.AccessDenied, err.Error())
	}
	return nil
}

func kbError(code, message string) map[string]any {
	return map[string]any{
		"status": "error",
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	}
}
