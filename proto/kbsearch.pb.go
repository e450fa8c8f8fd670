// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: kbsearch.proto

package proto

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	structpb "google.golang.org/protobuf/types/known/structpb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type SearchRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	KnowledgeBaseIds []string               `protobuf:"bytes,1,rep,name=knowledge_base_ids,json=knowledgeBaseIds,proto3" json:"knowledge_base_ids,omitempty"`
	Field            string                 `protobuf:"bytes,2,opt,name=field,proto3" json:"field,omitempty"`
	Operator         string                 `protobuf:"bytes,3,opt,name=operator,proto3" json:"operator,omitempty"`
	Value            string                 `protobuf:"bytes,4,opt,name=value,proto3" json:"value,omitempty"`
	Page             int32                  `protobuf:"varint,5,opt,name=page,proto3" json:"page,omitempty"`
	PageSize         int32                  `protobuf:"varint,6,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *SearchRequest) Reset() {
	*x = SearchRequest{}
	mi := &file_kbsearch_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchRequest) ProtoMessage() {}

func (x *SearchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kbsearch_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchRequest.ProtoReflect.Descriptor instead.
func (*SearchRequest) Descriptor() ([]byte, []int) {
	return file_kbsearch_proto_rawDescGZIP(), []int{0}
}

func (x *SearchRequest) GetKnowledgeBaseIds() []string {
	if x != nil {
		return x.KnowledgeBaseIds
	}
	return nil
}

func (x *SearchRequest) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *SearchRequest) GetOperator() string {
	if x != nil {
		return x.Operator
	}
	return ""
}

func (x *SearchRequest) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *SearchRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *SearchRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type SearchResult struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	KnowledgeBaseId string                 `protobuf:"bytes,2,opt,name=knowledge_base_id,json=knowledgeBaseId,proto3" json:"knowledge_base_id,omitempty"`
	DocumentId      string                 `protobuf:"bytes,3,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Title           string                 `protobuf:"bytes,4,opt,name=title,proto3" json:"title,omitempty"`
	Source          string                 `protobuf:"bytes,5,opt,name=source,proto3" json:"source,omitempty"`
	Score           float64                `protobuf:"fixed64,6,opt,name=score,proto3" json:"score,omitempty"`
	Metadata        *structpb.Struct       `protobuf:"bytes,7,opt,name=metadata,proto3" json:"metadata,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *SearchResult) Reset() {
	*x = SearchResult{}
	mi := &file_kbsearch_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchResult) ProtoMessage() {}

func (x *SearchResult) ProtoReflect() protoreflect.Message {
	mi := &file_kbsearch_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchResult.ProtoReflect.Descriptor instead.
func (*SearchResult) Descriptor() ([]byte, []int) {
	return file_kbsearch_proto_rawDescGZIP(), []int{1}
}

func (x *SearchResult) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SearchResult) GetKnowledgeBaseId() string {
	if x != nil {
		return x.KnowledgeBaseId
	}
	return ""
}

func (x *SearchResult) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *SearchResult) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *SearchResult) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *SearchResult) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *SearchResult) GetMetadata() *structpb.Struct {
	if x != nil {
		return x.Metadata
	}
	return nil
}

type SearchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Results       []*SearchResult        `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
	TotalResults  int32                  `protobuf:"varint,2,opt,name=total_results,json=totalResults,proto3" json:"total_results,omitempty"`
	Page          int32                  `protobuf:"varint,3,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,4,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchResponse) Reset() {
	*x = SearchResponse{}
	mi := &file_kbsearch_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchResponse) ProtoMessage() {}

func (x *SearchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kbsearch_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchResponse.ProtoReflect.Descriptor instead.
func (*SearchResponse) Descriptor() ([]byte, []int) {
	return file_kbsearch_proto_rawDescGZIP(), []int{2}
}

func (x *SearchResponse) GetResults() []*SearchResult {
	if x != nil {
		return x.Results
	}
	return nil
}

func (x *SearchResponse) GetTotalResults() int32 {
	if x != nil {
		return x.TotalResults
	}
	return 0
}

func (x *SearchResponse) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *SearchResponse) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type GetDocumentRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	KnowledgeBaseIds []string               `protobuf:"bytes,1,rep,name=knowledge_base_ids,json=knowledgeBaseIds,proto3" json:"knowledge_base_ids,omitempty"`
	DocumentId       string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_kbsearch_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kbsearch_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_kbsearch_proto_rawDescGZIP(), []int{3}
}

func (x *GetDocumentRequest) GetKnowledgeBaseIds() []string {
	if x != nil {
		return x.KnowledgeBaseIds
	}
	return nil
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	KnowledgeBaseId string                 `protobuf:"bytes,2,opt,name=knowledge_base_id,json=knowledgeBaseId,proto3" json:"knowledge_base_id,omitempty"`
	Title           string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Source          string                 `protobuf:"bytes,4,opt,name=source,proto3" json:"source,omitempty"`
	MimeType        string                 `protobuf:"bytes,5,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	Content         string                 `protobuf:"bytes,6,opt,name=content,proto3" json:"content,omitempty"`
	Metadata        *structpb.Struct       `protobuf:"bytes,7,opt,name=metadata,proto3" json:"metadata,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_kbsearch_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kbsearch_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_kbsearch_proto_rawDescGZIP(), []int{4}
}

func (x *GetDocumentResponse) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *GetDocumentResponse) GetKnowledgeBaseId() string {
	if x != nil {
		return x.KnowledgeBaseId
	}
	return ""
}

func (x *GetDocumentResponse) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *GetDocumentResponse) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *GetDocumentResponse) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *GetDocumentResponse) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *GetDocumentResponse) GetMetadata() *structpb.Struct {
	if x != nil {
		return x.Metadata
	}
	return nil
}

type CheckReadRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	UserId           string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	KnowledgeBaseIds []string               `protobuf:"bytes,2,rep,name=knowledge_base_ids,json=knowledgeBaseIds,proto3" json:"knowledge_base_ids,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *CheckReadRequest) Reset() {
	*x = CheckReadRequest{}
	mi := &file_kbsearch_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckReadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckReadRequest) ProtoMessage() {}

func (x *CheckReadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kbsearch_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckReadRequest.ProtoReflect.Descriptor instead.
func (*CheckReadRequest) Descriptor() ([]byte, []int) {
	return file_kbsearch_proto_rawDescGZIP(), []int{5}
}

func (x *CheckReadRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *CheckReadRequest) GetKnowledgeBaseIds() []string {
	if x != nil {
		return x.KnowledgeBaseIds
	}
	return nil
}

type CheckReadResponse struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	Allowed bool                   `protobuf:"varint,1,opt,name=allowed,proto3" json:"allowed,omitempty"`
	// Stable denial code ("access_denied", "user_not_found") when allowed
	// is false.
	Code          string `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Message       string `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckReadResponse) Reset() {
	*x = CheckReadResponse{}
	mi := &file_kbsearch_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckReadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckReadResponse) ProtoMessage() {}

func (x *CheckReadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kbsearch_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckReadResponse.ProtoReflect.Descriptor instead.
func (*CheckReadResponse) Descriptor() ([]byte, []int) {
	return file_kbsearch_proto_rawDescGZIP(), []int{6}
}

func (x *CheckReadResponse) GetAllowed() bool {
	if x != nil {
		return x.Allowed
	}
	return false
}

func (x *CheckReadResponse) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *CheckReadResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

var File_kbsearch_proto protoreflect.FileDescriptor

const file_kbsearch_proto_rawDesc = "" +
	"\n" +
	"\x0ekbsearch.proto\x12\fshu.kbsearch\x1a\x1cgoogle/protobuf/struct.proto\"\xb6\x01\n" +
	"\rSearchRequest\x12,\n" +
	"\x12knowledge_base_ids\x18\x01 \x03(\tR\x10knowledgeBaseIds\x12\x14\n" +
	"\x05field\x18\x02 \x01(\tR\x05field\x12\x1a\n" +
	"\boperator\x18\x03 \x01(\tR\boperator\x12\x14\n" +
	"\x05value\x18\x04 \x01(\tR\x05value\x12\x12\n" +
	"\x04page\x18\x05 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x06 \x01(\x05R\bpageSize\"\xe4\x01\n" +
	"\fSearchResult\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12*\n" +
	"\x11knowledge_base_id\x18\x02 \x01(\tR\x0fknowledgeBaseId\x12\x1f\n" +
	"\vdocument_id\x18\x03 \x01(\tR\n" +
	"documentId\x12\x14\n" +
	"\x05title\x18\x04 \x01(\tR\x05title\x12\x16\n" +
	"\x06source\x18\x05 \x01(\tR\x06source\x12\x14\n" +
	"\x05score\x18\x06 \x01(\x01R\x05score\x123\n" +
	"\bmetadata\x18\a \x01(\v2\x17.google.protobuf.StructR\bmetadata\"\x9c\x01\n" +
	"\x0eSearchResponse\x124\n" +
	"\aresults\x18\x01 \x03(\v2\x1a.shu.kbsearch.SearchResultR\aresults\x12#\n" +
	"\rtotal_results\x18\x02 \x01(\x05R\ftotalResults\x12\x12\n" +
	"\x04page\x18\x03 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x04 \x01(\x05R\bpageSize\"c\n" +
	"\x12GetDocumentRequest\x12,\n" +
	"\x12knowledge_base_ids\x18\x01 \x03(\tR\x10knowledgeBaseIds\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\"\xeb\x01\n" +
	"\x13GetDocumentResponse\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12*\n" +
	"\x11knowledge_base_id\x18\x02 \x01(\tR\x0fknowledgeBaseId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12\x16\n" +
	"\x06source\x18\x04 \x01(\tR\x06source\x12\x1b\n" +
	"\tmime_type\x18\x05 \x01(\tR\bmimeType\x12\x18\n" +
	"\acontent\x18\x06 \x01(\tR\acontent\x123\n" +
	"\bmetadata\x18\a \x01(\v2\x17.google.protobuf.StructR\bmetadata\"Y\n" +
	"\x10CheckReadRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12,\n" +
	"\x12knowledge_base_ids\x18\x02 \x03(\tR\x10knowledgeBaseIds\"[\n" +
	"\x11CheckReadResponse\x12\x18\n" +
	"\aallowed\x18\x01 \x01(\bR\aallowed\x12\x12\n" +
	"\x04code\x18\x02 \x01(\tR\x04code\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage2\xcc\x02\n" +
	"\x0fKBSearchService\x12I\n" +
	"\fSearchChunks\x12\x1b.shu.kbsearch.SearchRequest\x1a\x1c.shu.kbsearch.SearchResponse\x12L\n" +
	"\x0fSearchDocuments\x12\x1b.shu.kbsearch.SearchRequest\x1a\x1c.shu.kbsearch.SearchResponse\x12R\n" +
	"\vGetDocument\x12 .shu.kbsearch.GetDocumentRequest\x1a!.shu.kbsearch.GetDocumentResponse\x12L\n" +
	"\tCheckRead\x12\x1e.shu.kbsearch.CheckReadRequest\x1a\x1f.shu.kbsearch.CheckReadResponseB$Z\"github.com/shu-assistant/shu/protob\x06proto3"

var (
	file_kbsearch_proto_rawDescOnce sync.Once
	file_kbsearch_proto_rawDescData []byte
)

func file_kbsearch_proto_rawDescGZIP() []byte {
	file_kbsearch_proto_rawDescOnce.Do(func() {
		file_kbsearch_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_kbsearch_proto_rawDesc), len(file_kbsearch_proto_rawDesc)))
	})
	return file_kbsearch_proto_rawDescData
}

var file_kbsearch_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_kbsearch_proto_goTypes = []any{
	(*SearchRequest)(nil),       // 0: shu.kbsearch.SearchRequest
	(*SearchResult)(nil),        // 1: shu.kbsearch.SearchResult
	(*SearchResponse)(nil),      // 2: shu.kbsearch.SearchResponse
	(*GetDocumentRequest)(nil),  // 3: shu.kbsearch.GetDocumentRequest
	(*GetDocumentResponse)(nil), // 4: shu.kbsearch.GetDocumentResponse
	(*CheckReadRequest)(nil),    // 5: shu.kbsearch.CheckReadRequest
	(*CheckReadResponse)(nil),   // 6: shu.kbsearch.CheckReadResponse
	(*structpb.Struct)(nil),     // 7: google.protobuf.Struct
}
var file_kbsearch_proto_depIdxs = []int32{
	7, // 0: shu.kbsearch.SearchResult.metadata:type_name -> google.protobuf.Struct
	1, // 1: shu.kbsearch.SearchResponse.results:type_name -> shu.kbsearch.SearchResult
	7, // 2: shu.kbsearch.GetDocumentResponse.metadata:type_name -> google.protobuf.Struct
	0, // 3: shu.kbsearch.KBSearchService.SearchChunks:input_type -> shu.kbsearch.SearchRequest
	0, // 4: shu.kbsearch.KBSearchService.SearchDocuments:input_type -> shu.kbsearch.SearchRequest
	3, // 5: shu.kbsearch.KBSearchService.GetDocument:input_type -> shu.kbsearch.GetDocumentRequest
	5, // 6: shu.kbsearch.KBSearchService.CheckRead:input_type -> shu.kbsearch.CheckReadRequest
	2, // 7: shu.kbsearch.KBSearchService.SearchChunks:output_type -> shu.kbsearch.SearchResponse
	2, // 8: shu.kbsearch.KBSearchService.SearchDocuments:output_type -> shu.kbsearch.SearchResponse
	4, // 9: shu.kbsearch.KBSearchService.GetDocument:output_type -> shu.kbsearch.GetDocumentResponse
	6, // 10: shu.kbsearch.KBSearchService.CheckRead:output_type -> shu.kbsearch.CheckReadResponse
	7, // [7:11] is the sub-list for method output_type
	3, // [3:7] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_kbsearch_proto_init() }
func file_kbsearch_proto_init() {
	if File_kbsearch_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_kbsearch_proto_rawDesc), len(file_kbsearch_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_kbsearch_proto_goTypes,
		DependencyIndexes: file_kbsearch_proto_depIdxs,
		MessageInfos:      file_kbsearch_proto_msgTypes,
	}.Build()
	File_kbsearch_proto = out.File
	file_kbsearch_proto_goTypes = nil
	file_kbsearch_proto_depIdxs = nil
}
