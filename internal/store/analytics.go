package store

import (
	"strconv"
	"time"

	"github.com/roshni-energy/crm-service/internal/domain"
)

// Analytics is a pure derivation of the current mirror state.
type Analytics struct {
	TotalLeads     int    `json:"total_leads"`
	CompletedLeads int    `json:"completed_leads"`
	ActiveTickets  int    `json:"active_tickets"`
	ConversionRate string `json:"conversion_rate"`
	TotalUsers     int    `json:"total_users"`
	ActiveUsers    int    `json:"active_users"`
	MonthlyLeads   int    `json:"monthly_leads"`
}

// Analytics derives dashboard numbers from the in-memory state on demand.
// Conversion rate is completed/total as a percentage with one decimal, "0"
// when there are no leads.
func (s *Store) Analytics() Analytics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := Analytics{TotalLeads: len(s.leads), TotalUsers: len(s.users)}

	now := time.Now()
	for _, lead := range s.leads {
		if lead.Status == domain.LeadStatusCompleted {
			out.CompletedLeads++
		}
		if lead.CreatedAt.Month() == now.Month() && lead.CreatedAt.Year() == now.Year() {
			out.MonthlyLeads++
		}
	}
	for _, ticket := range s.tickets {
		if ticket.Status != domain.TicketStatusResolved && ticket.Status != domain.TicketStatusClosed {
			out.ActiveTickets++
		}
	}
	for _, user := range s.users {
		if user.IsActive {
			out.ActiveUsers++
		}
	}

	if out.TotalLeads > 0 {
		rate := float64(out.CompletedLeads) / float64(out.TotalLeads) * 100
		out.ConversionRate = strconv.FormatFloat(rate, 'f', 1, 64)
	} else {
		out.ConversionRate = "0"
	}
	return out
}
