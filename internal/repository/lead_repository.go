package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roshni-energy/crm-service/internal/domain"
)

// LeadRepository encapsulates lead persistence. Leads are never deleted;
// terminal states are reached purely through status updates.
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) error
	Update(ctx context.Context, lead *domain.Lead) error
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	List(ctx context.Context) ([]domain.Lead, error)
}

type leadRepository struct {
	pool *pgxpool.Pool
}

// NewLeadRepository instantiates a Postgres-backed repository.
func NewLeadRepository(pool *pgxpool.Pool) LeadRepository {
	return &leadRepository{pool: pool}
}

const leadColumns = `id, customer_name, phone_number, email, address, property_type, likelihood,
        status, salesman_id, salesman_name, call_operator_id, call_operator_name,
        technician_id, technician_name, call_notes, visit_notes, follow_up_date,
        created_at, updated_at`

func (r *leadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	const query = `
        INSERT INTO leads (id, customer_name, phone_number, email, address, property_type,
            likelihood, status, salesman_id, salesman_name, call_operator_id, call_operator_name,
            technician_id, technician_name, call_notes, visit_notes, follow_up_date,
            created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`
	_, err := r.pool.Exec(ctx, query,
		lead.ID,
		lead.CustomerName,
		lead.PhoneNumber,
		lead.Email,
		lead.Address,
		lead.PropertyType,
		lead.Likelihood,
		lead.Status,
		lead.SalesmanID,
		lead.SalesmanName,
		lead.CallOperatorID,
		lead.CallOperatorName,
		lead.TechnicianID,
		lead.TechnicianName,
		lead.CallNotes,
		lead.VisitNotes,
		lead.FollowUpDate,
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	return err
}

func (r *leadRepository) Update(ctx context.Context, lead *domain.Lead) error {
	const query = `
        UPDATE leads SET customer_name=$1, phone_number=$2, email=$3, address=$4,
            property_type=$5, likelihood=$6, status=$7, call_operator_id=$8,
            call_operator_name=$9, technician_id=$10, technician_name=$11,
            call_notes=$12, visit_notes=$13, follow_up_date=$14, updated_at=$15
        WHERE id=$16`
	cmd, err := r.pool.Exec(ctx, query,
		lead.CustomerName,
		lead.PhoneNumber,
		lead.Email,
		lead.Address,
		lead.PropertyType,
		lead.Likelihood,
		lead.Status,
		lead.CallOperatorID,
		lead.CallOperatorName,
		lead.TechnicianID,
		lead.TechnicianName,
		lead.CallNotes,
		lead.VisitNotes,
		lead.FollowUpDate,
		lead.UpdatedAt,
		lead.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *leadRepository) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id=$1`
	var lead domain.Lead
	if err := r.pool.QueryRow(ctx, query, id).Scan(leadFields(&lead)...); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) List(ctx context.Context) ([]domain.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Lead
	for rows.Next() {
		var lead domain.Lead
		if err := rows.Scan(leadFields(&lead)...); err != nil {
			return nil, err
		}
		result = append(result, lead)
	}
	return result, rows.Err()
}

func leadFields(lead *domain.Lead) []any {
	return []any{
		&lead.ID,
		&lead.CustomerName,
		&lead.PhoneNumber,
		&lead.Email,
		&lead.Address,
		&lead.PropertyType,
		&lead.Likelihood,
		&lead.Status,
		&lead.SalesmanID,
		&lead.SalesmanName,
		&lead.CallOperatorID,
		&lead.CallOperatorName,
		&lead.TechnicianID,
		&lead.TechnicianName,
		&lead.CallNotes,
		&lead.VisitNotes,
		&lead.FollowUpDate,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	}
}
