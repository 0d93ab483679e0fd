package dto

import (
	"time"

	"github.com/roshni-energy/crm-service/internal/domain"
)

// CreateLeadRequest payload.
type CreateLeadRequest struct {
	CustomerName string              `json:"customer_name"`
	PhoneNumber  string              `json:"phone_number"`
	Email        *string             `json:"email"`
	Address      string              `json:"address"`
	PropertyType domain.PropertyType `json:"property_type"`
	Likelihood   domain.Likelihood   `json:"likelihood"`
	FollowUpDate *time.Time          `json:"follow_up_date"`
}

// UpdateLeadStatusRequest payload.
type UpdateLeadStatusRequest struct {
	Status domain.LeadStatus `json:"status"`
	Notes  string            `json:"notes"`
}

// AssignTechnicianRequest payload, shared by leads and tickets.
type AssignTechnicianRequest struct {
	TechnicianID string `json:"technician_id"`
}

// LeadResponse is the full lead shape served to clients.
type LeadResponse struct {
	ID               string              `json:"id"`
	CustomerName     string              `json:"customer_name"`
	PhoneNumber      string              `json:"phone_number"`
	Email            *string             `json:"email,omitempty"`
	Address          string              `json:"address"`
	PropertyType     domain.PropertyType `json:"property_type"`
	Likelihood       domain.Likelihood   `json:"likelihood"`
	Status           domain.LeadStatus   `json:"status"`
	SalesmanID       string              `json:"salesman_id"`
	SalesmanName     string              `json:"salesman_name"`
	CallOperatorID   *string             `json:"call_operator_id,omitempty"`
	CallOperatorName *string             `json:"call_operator_name,omitempty"`
	TechnicianID     *string             `json:"technician_id,omitempty"`
	TechnicianName   *string             `json:"technician_name,omitempty"`
	CallNotes        *string             `json:"call_notes,omitempty"`
	VisitNotes       *string             `json:"visit_notes,omitempty"`
	FollowUpDate     *time.Time          `json:"follow_up_date,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// NewLeadResponse maps a domain lead.
func NewLeadResponse(lead domain.Lead) LeadResponse {
	return LeadResponse{
		ID:               lead.ID,
		CustomerName:     lead.CustomerName,
		PhoneNumber:      lead.PhoneNumber,
		Email:            lead.Email,
		Address:          lead.Address,
		PropertyType:     lead.PropertyType,
		Likelihood:       lead.Likelihood,
		Status:           lead.Status,
		SalesmanID:       lead.SalesmanID,
		SalesmanName:     lead.SalesmanName,
		CallOperatorID:   lead.CallOperatorID,
		CallOperatorName: lead.CallOperatorName,
		TechnicianID:     lead.TechnicianID,
		TechnicianName:   lead.TechnicianName,
		CallNotes:        lead.CallNotes,
		VisitNotes:       lead.VisitNotes,
		FollowUpDate:     lead.FollowUpDate,
		CreatedAt:        lead.CreatedAt,
		UpdatedAt:        lead.UpdatedAt,
	}
}

// NewLeadList maps a slice of domain leads.
func NewLeadList(leads []domain.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, lead := range leads {
		out = append(out, NewLeadResponse(lead))
	}
	return out
}
