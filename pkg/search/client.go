// Package search provides the gRPC client for the external knowledge-base
// search service. It implements both kb.Searcher and kb.AccessChecker so
// the host capability layer and the orchestrator share one connection.
package search

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/shu-assistant/shu/pkg/kb"
	pb "github.com/shu-assistant/shu/proto"
)

// Client wraps the gRPC connection to the KB search service.
type Client struct {
	conn    *grpc.ClientConn
	client  pb.KBSearchServiceClient
	timeout time.Duration
}

// Interface guards.
var (
	_ kb.Searcher      = (*Client)(nil)
	_ kb.AccessChecker = (*Client)(nil)
)

// NewClient creates a new KB search client. The connection is lazy; no
// network traffic happens until the first RPC.
func NewClient(addr string, timeout time.Duration) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to KB search service: %w", err)
	}
	return &Client{
		conn:    conn,
		client:  pb.NewKBSearchServiceClient(conn),
		timeout: timeout,
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// SearchChunks searches chunk records in the bound knowledge bases.
func (c *Client) SearchChunks(ctx context.Context, q kb.Query) (*kb.Page, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.SearchChunks(ctx, searchRequest(q))
	if err != nil {
		return nil, fmt.Errorf("chunk search failed: %w", err)
	}
	return pageFromResponse(resp), nil
}

// SearchDocuments searches document records in the bound knowledge bases.
func (c *Client) SearchDocuments(ctx context.Context, q kb.Query) (*kb.Page, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.SearchDocuments(ctx, searchRequest(q))
	if err != nil {
		return nil, fmt.Errorf("document search failed: %w", err)
	}
	return pageFromResponse(resp), nil
}

// GetDocument fetches a full document. A document outside the bound set is
// reported by the service as NotFound, which maps to (nil, nil) so callers
// cannot distinguish out-of-scope from missing.
func (c *Client) GetDocument(ctx context.Context, kbIDs []string, documentID string) (*kb.Document, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.GetDocument(ctx, &pb.GetDocumentRequest{
		KnowledgeBaseIds: kbIDs,
		DocumentId:       documentID,
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("document fetch failed: %w", err)
	}
	return &kb.Document{
		ID:              resp.Id,
		KnowledgeBaseID: resp.KnowledgeBaseId,
		Title:           resp.Title,
		Source:          resp.Source,
		MimeType:        resp.MimeType,
		Content:         resp.Content,
		Metadata:        metadataMap(resp.Metadata),
	}, nil
}

// CheckRead verifies the user can read every knowledge base in kbIDs.
// Denials come back as *kb.AccessError with a stable code.
func (c *Client) CheckRead(ctx context.Context, userID string, kbIDs []string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.CheckRead(ctx, &pb.CheckReadRequest{
		UserId:           userID,
		KnowledgeBaseIds: kbIDs,
	})
	if err != nil {
		switch status.Code(err) {
		case codes.PermissionDenied:
			return &kb.AccessError{Code: kb.AccessDenied, Message: status.Convert(err).Message()}
		case codes.NotFound:
			return &kb.AccessError{Code: kb.UserNotFound, Message: status.Convert(err).Message()}
		}
		return fmt.Errorf("access check failed: %w", err)
	}
	if !resp.Allowed {
		code := resp.Code
		if code == "" {
			code = kb.AccessDenied
		}
		msg := resp.Message
		if msg == "" {
			msg = "knowledge base access denied"
		}
		return &kb.AccessError{Code: code, Message: msg}
	}
	return nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func searchRequest(q kb.Query) *pb.SearchRequest {
	return &pb.SearchRequest{
		KnowledgeBaseIds: q.KnowledgeBaseIDs,
		Field:            q.Field,
		Operator:         q.Operator,
		Value:            q.Value,
		Page:             int32(q.Page),
		PageSize:         int32(q.PageSize),
	}
}

func pageFromResponse(resp *pb.SearchResponse) *kb.Page {
	results := make([]kb.Result, len(resp.Results))
	for i, r := range resp.Results {
		results[i] = kb.Result{
			ID:              r.Id,
			KnowledgeBaseID: r.KnowledgeBaseId,
			DocumentID:      r.DocumentId,
			Title:           r.Title,
			Source:          r.Source,
			Score:           r.Score,
			Metadata:        metadataMap(r.Metadata),
		}
	}
	return &kb.Page{
		Results:      results,
		TotalResults: int(resp.TotalResults),
		Page:         int(resp.Page),
		PageSize:     int(resp.PageSize),
	}
}

func metadataMap(s *structpb.Struct) map[string]any {
	if s == nil {
		return nil
	}
	return s.AsMap()
}
