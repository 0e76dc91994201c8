// Package entities defines the six domain types persisted in the
// single-table store, together with their create/update request shapes.
//
// Attribute names mirror the stored item layout exactly (PK, SK,
// GSI1PK..GSI3SK, snake_case entity fields) so that items written by
// this service interoperate with data already in the table.
package entities

// Entity type literals. Each is both the partition-key prefix
// ("{TYPE}#{id}") and the GSI1 partition value for list-by-type queries.
const (
	TypeProperty    = "PROPERTY"
	TypeGuest       = "GUEST"
	TypeReservation = "RESERVATION"
	TypeMessage     = "MESSAGE"
	TypeStaff       = "STAFF"
	TypeTask        = "TASK"
)

// SortKeyMetadata is the constant sort key of every entity item; the
// design stores a single item per partition.
const SortKeyMetadata = "METADATA"

// ItemKeys is the key attribute set shared by all stored entities.
// GSI2 is present only on entities with a parent relation, GSI3 only on
// reservations.
type ItemKeys struct {
	PK     string `dynamodbav:"PK" json:"PK"`
	SK     string `dynamodbav:"SK" json:"SK"`
	GSI1PK string `dynamodbav:"GSI1PK" json:"GSI1PK"`
	GSI1SK string `dynamodbav:"GSI1SK" json:"GSI1SK"`
	GSI2PK string `dynamodbav:"GSI2PK,omitempty" json:"GSI2PK,omitempty"`
	GSI2SK string `dynamodbav:"GSI2SK,omitempty" json:"GSI2SK,omitempty"`
	GSI3PK string `dynamodbav:"GSI3PK,omitempty" json:"GSI3PK,omitempty"`
	GSI3SK string `dynamodbav:"GSI3SK,omitempty" json:"GSI3SK,omitempty"`
}

// Timestamps are stamped at creation; UpdatedAt is refreshed on every
// mutation.
type Timestamps struct {
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt string `dynamodbav:"updatedAt" json:"updatedAt"`
}
