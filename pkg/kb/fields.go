// Package kb defines the knowledge-base search model consumed by the scoped
// kb host capability: searchable fields, operator validation, and the
// interfaces of the external search service and RBAC checker.
package kb

// FieldType classifies a searchable field.
type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeJSONBArray  FieldType = "jsonb_array"
	FieldTypeJSONBObject FieldType = "jsonb_object"
)

// Entity selects the search target.
type Entity string

const (
	EntityChunk    Entity = "chunk"
	EntityDocument Entity = "document"
)

// ChunkFields is the closed set of searchable chunk fields.
var ChunkFields = map[string]FieldType{
	"content":      FieldTypeText,
	"title":        FieldTypeText,
	"source":       FieldTypeText,
	"tags":         FieldTypeJSONBArray,
	"chunk_labels": FieldTypeJSONBArray,
	"metadata":     FieldTypeJSONBObject,
}

// DocumentFields is the closed set of searchable document fields.
var DocumentFields = map[string]FieldType{
	"title":     FieldTypeText,
	"source":    FieldTypeText,
	"mime_type": FieldTypeText,
	"tags":      FieldTypeJSONBArray,
	"metadata":  FieldTypeJSONBObject,
}

// operatorsByType is the closed operator set per field type.
var operatorsByType = map[FieldType][]string{
	FieldTypeText:        {"eq", "contains", "icontains"},
	FieldTypeJSONBArray:  {"contains", "has_key", "has_any"},
	FieldTypeJSONBObject: {"contains", "has_key", "path_contains"},
}

// ValidateField resolves a field name for an entity.
// Returns the field type and true, or false when the field is not searchable.
func ValidateField(entity Entity, field string) (FieldType, bool) {
	fields := ChunkFields
	if entity == EntityDocument {
		fields = DocumentFields
	}
	ft, ok := fields[field]
	return ft, ok
}

// ValidOperator reports whether operator is allowed for the field type.
func ValidOperator(ft FieldType, operator string) bool {
	for _, op := range operatorsByType[ft] {
		if op == operator {
			return true
		}
	}
	return false
}
