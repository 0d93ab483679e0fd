package domain

import "time"

// LeadStatus enumerates pipeline states for a sales lead.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusHold      LeadStatus = "hold"
	LeadStatusTransit   LeadStatus = "transit"
	LeadStatusDeclined  LeadStatus = "declined"
	LeadStatusCompleted LeadStatus = "completed"
)

// Likelihood grades how promising a lead is.
type Likelihood string

const (
	LikelihoodHot  Likelihood = "hot"
	LikelihoodWarm Likelihood = "warm"
	LikelihoodCold Likelihood = "cold"
)

// PropertyType classifies the installation site.
type PropertyType string

const (
	PropertyResidential PropertyType = "residential"
	PropertyCommercial  PropertyType = "commercial"
	PropertyIndustrial  PropertyType = "industrial"
)

// Lead is the aggregate for a sales prospect moving through the pipeline.
// Salesman ownership is permanent once set; operator and technician ownership
// are attached by the corresponding assignment events and may be overwritten
// on reassignment (no history is kept).
type Lead struct {
	ID               string
	CustomerName     string
	PhoneNumber      string
	Email            *string
	Address          string
	PropertyType     PropertyType
	Likelihood       Likelihood
	Status           LeadStatus
	SalesmanID       string
	SalesmanName     string
	CallOperatorID   *string
	CallOperatorName *string
	TechnicianID     *string
	TechnicianName   *string
	CallNotes        *string
	VisitNotes       *string
	FollowUpDate     *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
