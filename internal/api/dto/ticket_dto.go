package dto

import (
	"time"

	"github.com/roshni-energy/crm-service/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	CustomerID    string                `json:"customer_id"`
	CustomerName  string                `json:"customer_name"`
	CustomerPhone string                `json:"customer_phone"`
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	Priority      domain.TicketPriority `json:"priority"`
}

// UpdateTicketStatusRequest payload.
type UpdateTicketStatusRequest struct {
	Status domain.TicketStatus `json:"status"`
	Notes  string              `json:"notes"`
}

// TicketResponse is the full support-ticket shape served to clients.
type TicketResponse struct {
	ID             string                `json:"id"`
	CustomerID     string                `json:"customer_id"`
	CustomerName   string                `json:"customer_name"`
	CustomerPhone  string                `json:"customer_phone"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	Priority       domain.TicketPriority `json:"priority"`
	Status         domain.TicketStatus   `json:"status"`
	OperatorID     string                `json:"operator_id"`
	OperatorName   string                `json:"operator_name"`
	TechnicianID   *string               `json:"technician_id,omitempty"`
	TechnicianName *string               `json:"technician_name,omitempty"`
	Notes          *string               `json:"notes,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
	ResolvedAt     *time.Time            `json:"resolved_at,omitempty"`
}

// NewTicketResponse maps a domain ticket.
func NewTicketResponse(ticket domain.SupportTicket) TicketResponse {
	return TicketResponse{
		ID:             ticket.ID,
		CustomerID:     ticket.CustomerID,
		CustomerName:   ticket.CustomerName,
		CustomerPhone:  ticket.CustomerPhone,
		Title:          ticket.Title,
		Description:    ticket.Description,
		Priority:       ticket.Priority,
		Status:         ticket.Status,
		OperatorID:     ticket.OperatorID,
		OperatorName:   ticket.OperatorName,
		TechnicianID:   ticket.TechnicianID,
		TechnicianName: ticket.TechnicianName,
		Notes:          ticket.Notes,
		CreatedAt:      ticket.CreatedAt,
		UpdatedAt:      ticket.UpdatedAt,
		ResolvedAt:     ticket.ResolvedAt,
	}
}

// NewTicketList maps a slice of domain tickets.
func NewTicketList(tickets []domain.SupportTicket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, ticket := range tickets {
		out = append(out, NewTicketResponse(ticket))
	}
	return out
}
