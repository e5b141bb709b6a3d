package tenant

import (
	"time"
)

// Tenant is a business that completed onboarding.
type Tenant struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Status           string    `json:"status"`
	BusinessType     string    `json:"business_type"`
	BusinessCategory string    `json:"business_category"`
	Description      string    `json:"description"`
	Address          string    `json:"address"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	Website          string    `json:"website,omitempty"`
	TemplateID       string    `json:"template_id"`
	OwnerID          string    `json:"owner_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Space is a bookable room or area of a tenant.
type Space struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Name        string    `json:"name"`
	SpaceType   string    `json:"space_type"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description,omitempty"`
	Amenities   []string  `json:"amenities"`
	ImageRef    string    `json:"image_ref,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)
