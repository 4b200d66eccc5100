// server/internal/models/proposal.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SourcingItem is one row of the internal sourcing grid: which agent quoted
// what rate for which equipment. Not shown to the customer.
type SourcingItem struct {
	EquipmentType   string  `bson:"equipment_type" json:"equipment_type"`
	AgentID         string  `bson:"agent_id" json:"agent_id"`
	QuotedRate      float64 `bson:"quoted_rate" json:"quoted_rate"`
	Detention       string  `bson:"detention" json:"detention"`
	DetentionAmount float64 `bson:"detention_amount" json:"detention_amount"`
	Notes           string  `bson:"notes" json:"notes"`
}

// LineItem is one customer-facing quotation line. Amount is quantity x rate,
// computed on save.
type LineItem struct {
	Description   string  `bson:"description" json:"description"`
	POL           string  `bson:"pol" json:"pol"`
	POD           string  `bson:"pod" json:"pod"`
	EquipmentType string  `bson:"equipment_type" json:"equipment_type"`
	Quantity      float64 `bson:"quantity" json:"quantity"`
	Rate          float64 `bson:"rate" json:"rate"`
	Amount        float64 `bson:"amount" json:"amount"`
}

type ProposalTerm struct {
	TermText  string `bson:"term_text" json:"term_text"`
	SortOrder int    `bson:"sort_order" json:"sort_order"`
}

type Proposal struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProposalRef   string             `bson:"proposal_ref" json:"proposal_ref"` // ALPHAQ-<year>-<n>
	CustomerID    string             `bson:"customer_id" json:"customer_id"`
	AttentionID   string             `bson:"attention_id" json:"attention_id"` // contact the proposal is addressed to
	Section       string             `bson:"section" json:"section"`
	Category      string             `bson:"category" json:"category"`
	ProposalDate  *time.Time         `bson:"proposal_date,omitempty" json:"proposal_date"`
	ValidUntil    *time.Time         `bson:"valid_until,omitempty" json:"valid_until"`
	Subject       string             `bson:"subject" json:"subject"`
	ScopeOfWork   string             `bson:"scope_of_work" json:"scope_of_work"`
	SignatoryName string             `bson:"signatory_name" json:"signatory_name"`
	Currency      string             `bson:"currency" json:"currency"`
	Status        string             `bson:"status" json:"status"` // Proposed, Draft, Approved, Rejected
	Sourcing      []SourcingItem     `bson:"sourcing" json:"sourcing"`
	LineItems     []LineItem         `bson:"line_items" json:"line_items"`
	Terms         []ProposalTerm     `bson:"terms" json:"terms"`
	CreatedBy     string             `bson:"created_by" json:"created_by"`
	IsDeleted     bool               `bson:"is_deleted" json:"-"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
