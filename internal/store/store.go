package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/roshni-energy/crm-service/internal/domain"
	"github.com/roshni-energy/crm-service/internal/events"
	"github.com/roshni-energy/crm-service/internal/repository"
)

// Notifier publishes a change notification for a mutated table. It is
// satisfied by feed.ChangeFeed.
type Notifier interface {
	Notify(ctx context.Context, table string) error
}

const (
	tableLeads   = "leads"
	tableTickets = "support_tickets"
	tableUsers   = "users"
)

// Store is the single source of truth for leads, support tickets and users.
// It mirrors all three collections in memory, answers role-scoped reads from
// the mirror, and funnels every mutation through the repositories. Any write
// anywhere triggers a full reload of all three collections; that policy is
// deliberate, there is no delta path.
type Store struct {
	leadRepo   repository.LeadRepository
	ticketRepo repository.TicketRepository
	userRepo   repository.UserRepository
	dispatcher events.Dispatcher
	notifier   Notifier
	logger     *zap.Logger

	mu      sync.RWMutex
	leads   []domain.Lead
	tickets []domain.SupportTicket
	users   []domain.User
	busy    bool
}

// Dependencies bundles collaborators for the store.
type Dependencies struct {
	LeadRepo   repository.LeadRepository
	TicketRepo repository.TicketRepository
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
	Notifier   Notifier
	Logger     *zap.Logger
}

// New constructs the store. Call Reload before serving reads.
func New(deps Dependencies) *Store {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		leadRepo:   deps.LeadRepo,
		ticketRepo: deps.TicketRepo,
		userRepo:   deps.UserRepo,
		dispatcher: deps.Dispatcher,
		notifier:   deps.Notifier,
		logger:     logger,
	}
}

// NewLeadInput describes a salesperson's lead submission.
type NewLeadInput struct {
	CustomerName string
	PhoneNumber  string
	Email        *string
	Address      string
	PropertyType domain.PropertyType
	Likelihood   domain.Likelihood
	FollowUpDate *time.Time
}

// NewTicketInput describes an operator's ticket submission. Customer identity
// is copied from the lead at creation time.
type NewTicketInput struct {
	CustomerID    string
	CustomerName  string
	CustomerPhone string
	Title         string
	Description   string
	Priority      domain.TicketPriority
}

// NewUserInput describes a super-admin's user submission.
type NewUserInput struct {
	Name         string
	Email        string
	Phone        string
	Role         domain.Role
	PasswordHash *string
	Profile      domain.RoleProfile
}

// UserPatch carries partial user updates; nil fields are left unchanged.
type UserPatch struct {
	Name           *string
	Email          *string
	Phone          *string
	Role           *domain.Role
	IsActive       *bool
	Territory      *string
	Shift          *string
	Specialization *string
}

// Reload re-fetches all three collections from the backing store, replacing
// the mirror wholesale. The busy flag is set for the duration.
func (s *Store) Reload(ctx context.Context) error {
	s.setBusy(true)
	defer s.setBusy(false)

	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return err
	}
	tickets, err := s.ticketRepo.List(ctx)
	if err != nil {
		return err
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.leads = leads
	s.tickets = tickets
	s.users = users
	s.mu.Unlock()
	return nil
}

// Busy reports whether a reload is in flight.
func (s *Store) Busy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.busy
}

func (s *Store) setBusy(v bool) {
	s.mu.Lock()
	s.busy = v
	s.mu.Unlock()
}

// LeadsFor returns the leads visible to the given actor:
// salesperson sees leads they created, call operator sees the unclaimed queue
// (status new) plus leads they already claimed, technician sees leads assigned
// to them, super-admin sees everything.
func (s *Store) LeadsFor(actor *domain.User) []domain.Lead {
	if actor == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Lead
	switch actor.Role {
	case domain.RoleSalesman:
		for _, lead := range s.leads {
			if lead.SalesmanID == actor.ID {
				out = append(out, lead)
			}
		}
	case domain.RoleCallOperator:
		for _, lead := range s.leads {
			if lead.Status == domain.LeadStatusNew ||
				(lead.CallOperatorID != nil && *lead.CallOperatorID == actor.ID) {
				out = append(out, lead)
			}
		}
	case domain.RoleTechnician:
		for _, lead := range s.leads {
			if lead.TechnicianID != nil && *lead.TechnicianID == actor.ID {
				out = append(out, lead)
			}
		}
	case domain.RoleSuperAdmin:
		out = append(out, s.leads...)
	}
	return out
}

// TicketsFor returns the support tickets visible to the given actor:
// call operator sees their own tickets plus the unassigned queue, technician
// sees tickets assigned to them, super-admin sees everything. Salespeople
// have no ticket view.
func (s *Store) TicketsFor(actor *domain.User) []domain.SupportTicket {
	if actor == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.SupportTicket
	switch actor.Role {
	case domain.RoleCallOperator:
		for _, ticket := range s.tickets {
			if ticket.OperatorID == actor.ID || ticket.TechnicianID == nil {
				out = append(out, ticket)
			}
		}
	case domain.RoleTechnician:
		for _, ticket := range s.tickets {
			if ticket.TechnicianID != nil && *ticket.TechnicianID == actor.ID {
				out = append(out, ticket)
			}
		}
	case domain.RoleSuperAdmin:
		out = append(out, s.tickets...)
	}
	return out
}

// Users returns all users, active or not.
func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User(nil), s.users...)
}

// Technicians returns active technicians.
func (s *Store) Technicians() []domain.User {
	return s.activeByRole(domain.RoleTechnician)
}

// CallOperators returns active call operators.
func (s *Store) CallOperators() []domain.User {
	return s.activeByRole(domain.RoleCallOperator)
}

// Salesmen returns active salespeople.
func (s *Store) Salesmen() []domain.User {
	return s.activeByRole(domain.RoleSalesman)
}

func (s *Store) activeByRole(role domain.Role) []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.User
	for _, user := range s.users {
		if user.Role == role && user.IsActive {
			out = append(out, user)
		}
	}
	return out
}

// CreateLead records a new lead owned by the acting salesperson. Without an
// authenticated actor the call is a silent no-op.
func (s *Store) CreateLead(ctx context.Context, actor *domain.User, input NewLeadInput) (*domain.Lead, error) {
	if actor == nil {
		return nil, nil
	}
	now := time.Now()
	lead := &domain.Lead{
		ID:           uuid.NewString(),
		CustomerName: input.CustomerName,
		PhoneNumber:  input.PhoneNumber,
		Email:        input.Email,
		Address:      input.Address,
		PropertyType: input.PropertyType,
		Likelihood:   input.Likelihood,
		FollowUpDate: input.FollowUpDate,
		Status:       domain.LeadStatusNew,
		SalesmanID:   actor.ID,
		SalesmanName: actor.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}
	s.afterWrite(ctx, tableLeads, events.Event{
		Type:     events.EventLeadCreated,
		EntityID: lead.ID,
		ActorID:  actor.ID,
		Payload: events.LeadCreatedPayload{
			CustomerName: lead.CustomerName,
			PropertyType: lead.PropertyType,
			Likelihood:   lead.Likelihood,
			SalesmanID:   lead.SalesmanID,
		},
	})
	return lead, nil
}

// SetLeadStatus updates a lead's status. Notes land in call notes when the
// status becomes contacted and in visit notes for transit/completed; on
// contacted the acting operator is attached. Any status is settable from any
// other status; there is no enforced transition graph.
func (s *Store) SetLeadStatus(ctx context.Context, actor *domain.User, leadID string, status domain.LeadStatus, notes string) error {
	lead, ok := s.leadByID(leadID)
	if !ok {
		return nil
	}
	oldStatus := lead.Status
	lead.Status = status
	if notes != "" && status == domain.LeadStatusContacted {
		lead.CallNotes = &notes
	}
	if notes != "" && (status == domain.LeadStatusTransit || status == domain.LeadStatusCompleted) {
		lead.VisitNotes = &notes
	}
	if status == domain.LeadStatusContacted && actor != nil {
		lead.CallOperatorID = &actor.ID
		lead.CallOperatorName = &actor.Name
	}
	lead.UpdatedAt = time.Now()

	if err := s.leadRepo.Update(ctx, &lead); err != nil {
		return err
	}
	actorID := ""
	if actor != nil {
		actorID = actor.ID
	}
	s.afterWrite(ctx, tableLeads, events.Event{
		Type:     events.EventLeadStatusChanged,
		EntityID: lead.ID,
		ActorID:  actorID,
		Payload: events.LeadStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: status,
			Notes:     notes,
		},
	})
	return nil
}

// AssignLeadTechnician attaches a technician to a lead and forces the status
// to transit regardless of the prior status. An unknown technician id is a
// silent no-op.
func (s *Store) AssignLeadTechnician(ctx context.Context, leadID, technicianID string) error {
	technician, ok := s.userByID(technicianID)
	if !ok {
		return nil
	}
	lead, ok := s.leadByID(leadID)
	if !ok {
		return nil
	}
	lead.TechnicianID = &technician.ID
	lead.TechnicianName = &technician.Name
	lead.Status = domain.LeadStatusTransit
	lead.UpdatedAt = time.Now()

	if err := s.leadRepo.Update(ctx, &lead); err != nil {
		return err
	}
	s.afterWrite(ctx, tableLeads, events.Event{
		Type:     events.EventLeadAssigned,
		EntityID: lead.ID,
		Payload: events.LeadAssignedPayload{
			TechnicianID:   technician.ID,
			TechnicianName: technician.Name,
		},
	})
	return nil
}

// CreateTicket records a new support ticket owned by the acting operator.
// Without an authenticated actor the call is a silent no-op.
func (s *Store) CreateTicket(ctx context.Context, actor *domain.User, input NewTicketInput) (*domain.SupportTicket, error) {
	if actor == nil {
		return nil, nil
	}
	now := time.Now()
	ticket := &domain.SupportTicket{
		ID:            uuid.NewString(),
		CustomerID:    input.CustomerID,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		Title:         input.Title,
		Description:   input.Description,
		Priority:      input.Priority,
		Status:        domain.TicketStatusOpen,
		OperatorID:    actor.ID,
		OperatorName:  actor.Name,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	s.afterWrite(ctx, tableTickets, events.Event{
		Type:     events.EventTicketCreated,
		EntityID: ticket.ID,
		ActorID:  actor.ID,
		Payload: events.TicketCreatedPayload{
			CustomerID: ticket.CustomerID,
			Priority:   ticket.Priority,
			Title:      ticket.Title,
		},
	})
	return ticket, nil
}

// SetTicketStatus updates a ticket's status, optionally overwriting its notes.
// ResolvedAt is stamped on the transition to resolved and only then.
func (s *Store) SetTicketStatus(ctx context.Context, ticketID string, status domain.TicketStatus, notes string) error {
	ticket, ok := s.ticketByID(ticketID)
	if !ok {
		return nil
	}
	oldStatus := ticket.Status
	ticket.Status = status
	if notes != "" {
		ticket.Notes = &notes
	}
	now := time.Now()
	if status == domain.TicketStatusResolved {
		ticket.ResolvedAt = &now
	}
	ticket.UpdatedAt = now

	if err := s.ticketRepo.Update(ctx, &ticket); err != nil {
		return err
	}
	s.afterWrite(ctx, tableTickets, events.Event{
		Type:     events.EventTicketStatusChanged,
		EntityID: ticket.ID,
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: status,
			Notes:     notes,
		},
	})
	return nil
}

// AssignTicketTechnician attaches a technician to a ticket and forces the
// status to in_progress. An unknown technician id is a silent no-op.
func (s *Store) AssignTicketTechnician(ctx context.Context, ticketID, technicianID string) error {
	technician, ok := s.userByID(technicianID)
	if !ok {
		return nil
	}
	ticket, ok := s.ticketByID(ticketID)
	if !ok {
		return nil
	}
	ticket.TechnicianID = &technician.ID
	ticket.TechnicianName = &technician.Name
	ticket.Status = domain.TicketStatusInProgress
	ticket.UpdatedAt = time.Now()

	if err := s.ticketRepo.Update(ctx, &ticket); err != nil {
		return err
	}
	s.afterWrite(ctx, tableTickets, events.Event{
		Type:     events.EventTicketAssigned,
		EntityID: ticket.ID,
		Payload: events.TicketAssignedPayload{
			TechnicianID:   technician.ID,
			TechnicianName: technician.Name,
		},
	})
	return nil
}

// CreateUser inserts a new active user.
func (s *Store) CreateUser(ctx context.Context, input NewUserInput) (*domain.User, error) {
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Role:         input.Role,
		IsActive:     true,
		PasswordHash: input.PasswordHash,
		Profile:      input.Profile,
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	s.afterWrite(ctx, tableUsers, events.Event{
		Type:     events.EventUserCreated,
		EntityID: user.ID,
		Payload:  events.UserChangedPayload{Name: user.Name, Role: user.Role},
	})
	return user, nil
}

// UpdateUser applies a partial update to a user. Unknown ids are a no-op.
func (s *Store) UpdateUser(ctx context.Context, id string, patch UserPatch) error {
	user, ok := s.userByID(id)
	if !ok {
		return nil
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.IsActive != nil {
		user.IsActive = *patch.IsActive
	}
	if patch.Territory != nil {
		user.Profile.Territory = patch.Territory
	}
	if patch.Shift != nil {
		user.Profile.Shift = patch.Shift
	}
	if patch.Specialization != nil {
		user.Profile.Specialization = patch.Specialization
	}

	if err := s.userRepo.Update(ctx, &user); err != nil {
		return err
	}
	s.afterWrite(ctx, tableUsers, events.Event{
		Type:     events.EventUserUpdated,
		EntityID: user.ID,
		Payload:  events.UserChangedPayload{Name: user.Name, Role: user.Role},
	})
	return nil
}

// DeleteUser hard-removes a user. Unknown ids are a no-op.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}
	s.afterWrite(ctx, tableUsers, events.Event{
		Type:     events.EventUserDeleted,
		EntityID: id,
	})
	return nil
}

func (s *Store) leadByID(id string) (domain.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, lead := range s.leads {
		if lead.ID == id {
			return lead, true
		}
	}
	return domain.Lead{}, false
}

func (s *Store) ticketByID(id string) (domain.SupportTicket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ticket := range s.tickets {
		if ticket.ID == id {
			return ticket, true
		}
	}
	return domain.SupportTicket{}, false
}

func (s *Store) userByID(id string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.ID == id {
			return user, true
		}
	}
	return domain.User{}, false
}

// afterWrite publishes the domain event, emits the change notification and
// reloads the mirror. The write itself has already succeeded; failures here
// leave the mirror stale until the next reload and are only logged.
func (s *Store) afterWrite(ctx context.Context, table string, event events.Event) {
	if s.dispatcher != nil {
		if event.ID == "" {
			event.ID = uuid.NewString()
		}
		if event.Timestamp.IsZero() {
			event.Timestamp = time.Now()
		}
		event.Table = table
		_ = s.dispatcher.Publish(ctx, event)
	}
	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, table); err != nil {
			s.logger.Warn("change notification failed", zap.String("table", table), zap.Error(err))
		}
	}
	if err := s.Reload(ctx); err != nil {
		s.logger.Warn("reload after write failed", zap.String("table", table), zap.Error(err))
	}
}
