package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Lead statuses (sales funnel stages)
const (
	LeadStatusNew          = "New Lead"
	LeadStatusContacted    = "Contacted"
	LeadStatusQualified    = "Qualified"
	LeadStatusProposalSent = "Proposal Sent"
	LeadStatusNegotiation  = "Negotiation"
	LeadStatusClosedWon    = "Closed Won"
	LeadStatusClosedLost   = "Closed Lost"
)

// OpenLeadStatuses are the non-terminal funnel stages. A customer counts as an
// open opportunity only while in one of these.
var OpenLeadStatuses = []string{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusProposalSent,
	LeadStatusNegotiation,
}

// IsOpenLeadStatus reports whether status is a non-terminal funnel stage.
func IsOpenLeadStatus(status string) bool {
	for _, s := range OpenLeadStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Interest category types (product class discriminant)
const (
	CategoryDiamond = "Diamond"
	CategoryGold    = "Gold"
	CategoryPolki   = "Polki"
)

// InterestProduct a single product entry inside an interest category. Only
// PriceRange feeds the pipeline valuation; the rest is display data.
type InterestProduct struct {
	ProductName string `json:"product_name"`
	PriceRange  string `json:"price_range"`
}

// PreferenceFlags customer preference detail recorded per interest category
type PreferenceFlags struct {
	DesignSelected         bool   `json:"design_selected"`
	WantsDiscount          bool   `json:"wants_discount"`
	CheckingOtherJewellers bool   `json:"checking_other_jewellers"`
	FeltLessVariety        bool   `json:"felt_less_variety"`
	Others                 string `json:"others,omitempty"`
}

// InterestCategory one recorded product-class interest, tagged by CategoryType
type InterestCategory struct {
	CategoryType string            `json:"category_type"`
	Products     []InterestProduct `json:"products"`
	Preferences  PreferenceFlags   `json:"customer_preferences"`
}

// InterestCategories JSONB column type for the nested interest records.
// Array order is insertion order and carries no aggregation meaning.
type InterestCategories []InterestCategory

func (ic InterestCategories) Value() (driver.Value, error) {
	if ic == nil {
		return nil, nil
	}
	return json.Marshal(ic)
}

func (ic *InterestCategories) Scan(value interface{}) error {
	if value == nil {
		*ic = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("unsupported type for InterestCategories")
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, ic)
}

// Customer showroom lead/customer record
type Customer struct {
	ID                    string             `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CustomerCode          string             `json:"customer_code" gorm:"size:50;not null;uniqueIndex"`
	Name                  string             `json:"name" gorm:"size:200;not null"`
	Phone                 string             `json:"phone" gorm:"size:20"`
	Email                 string             `json:"email" gorm:"size:100"`
	Address               string             `json:"address" gorm:"size:500"`
	ShowroomID            string             `json:"showroom_id" gorm:"type:uuid;not null;index"`
	AssignedSalespersonID *string            `json:"assigned_salesperson_id" gorm:"type:uuid;index"`
	LeadStatus            string             `json:"lead_status" gorm:"size:30;not null;default:New Lead;index"`
	LeadSource            string             `json:"lead_source" gorm:"size:50"`
	InterestCategories    InterestCategories `json:"interest_categories" gorm:"type:jsonb"`
	PurchaseAmount        *float64           `json:"purchase_amount" gorm:"type:decimal(14,2)"`
	WalkoutReason         string             `json:"walkout_reason" gorm:"size:200"`
	Notes                 string             `json:"notes" gorm:"type:text"`
	CreatedBy             string             `json:"created_by" gorm:"size:64"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
	DeletedAt             *time.Time         `json:"deleted_at" gorm:"index"`
}

func (Customer) TableName() string {
	return "crm_customers"
}
