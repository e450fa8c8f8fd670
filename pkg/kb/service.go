package kb

import "context"

// DefaultPageSize is the fixed page size for search results.
const DefaultPageSize = 20

// Result is one search hit. Content and embeddings are deliberately absent
// from search results; only GetDocument returns content.
type Result struct {
	ID              string         `json:"id"`
	KnowledgeBaseID string         `json:"knowledge_base_id"`
	DocumentID      string         `json:"document_id,omitempty"`
	Title           string         `json:"title,omitempty"`
	Source          string         `json:"source,omitempty"`
	Score           float64        `json:"score,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

// Page is a paginated search response.
type Page struct {
	Results      []Result `json:"results"`
	TotalResults int      `json:"total_results"`
	Page         int      `json:"page"`
	PageSize     int      `json:"page_size"`
}

// Document is a full document, returned only by GetDocument.
type Document struct {
	ID              string         `json:"id"`
	KnowledgeBaseID string         `json:"knowledge_base_id"`
	Title           string         `json:"title,omitempty"`
	Source          string         `json:"source,omitempty"`
	MimeType        string         `json:"mime_type,omitempty"`
	Content         string         `json:"content"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

// Query is a validated search request. KnowledgeBaseIDs is always non-empty
// by the time a query reaches the searcher; the scoped capability rejects
// empty bindings before any call.
type Query struct {
	KnowledgeBaseIDs []string
	Field            string
	Operator         string
	Value            string
	Page             int
	PageSize         int
}

// Searcher is the external search service the core consumes.
// Implementations must restrict every query to Query.KnowledgeBaseIDs.
type Searcher interface {
	SearchChunks(ctx context.Context, q Query) (*Page, error)
	SearchDocuments(ctx context.Context, q Query) (*Page, error)
	// GetDocument returns the document iff its KB is in kbIDs; an ID outside
	// the bound set is indistinguishable from not-found (nil, nil).
	GetDocument(ctx context.Context, kbIDs []string, documentID string) (*Document, error)
}

// AccessError codes returned by AccessChecker.
const (
	AccessDenied = "access_denied"
	UserNotFound = "user_not_found"
)

// AccessError is an RBAC failure with a stable code.
type AccessError struct {
	Code    string
	Message string
}

func (e *AccessError) Error() string { return e.Message }

// AccessChecker verifies the executing user has read access to every bound KB.
type AccessChecker interface {
	CheckRead(ctx context.Context, userID string, kbIDs []string) error
}
