package domain

import "time"

// TicketStatus enumerates lifecycle states for support tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// SupportTicket is a post-installation service request. Customer identity is
// copied from the lead at creation time; there is no foreign-key link back.
type SupportTicket struct {
	ID             string
	CustomerID     string
	CustomerName   string
	CustomerPhone  string
	Title          string
	Description    string
	Priority       TicketPriority
	Status         TicketStatus
	OperatorID     string
	OperatorName   string
	TechnicianID   *string
	TechnicianName *string
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	// ResolvedAt is stamped only on the transition to resolved.
	ResolvedAt *time.Time
}
