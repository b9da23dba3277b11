package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/company"

	"github.com/google/uuid"
)

type CompanyRepository interface {
	Create(ctx context.Context, c company.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (company.Company, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (company.Company, error)
	List(ctx context.Context, limit, offset int) ([]company.Company, error)
	Update(ctx context.Context, c company.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

const companyColumns = `id, owner_id, name, logo, location, website, size, industry, founded,
	description, email, phone, address, created_at, updated_at`

func (r *PostgresCompanyRepository) Create(ctx context.Context, c company.Company) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO companies (id, owner_id, name, logo, location, website, size, industry, founded,
			description, email, phone, address)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		c.ID, c.OwnerID, c.Name, c.Logo, c.Location, c.Website, c.Size, c.Industry, c.Founded,
		c.Description, c.Email, c.Phone, c.Address,
	)
	if err != nil && database.IsUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (company.Company, error) {
	return scanCompany(r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
}

func (r *PostgresCompanyRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (company.Company, error) {
	return scanCompany(r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE owner_id = $1`, ownerID))
}

func (r *PostgresCompanyRepository) List(ctx context.Context, limit, offset int) ([]company.Company, error) {
	limit, offset = clampPage(limit, offset, 20, 100)

	rows, err := r.db.Query(ctx,
		`SELECT `+companyColumns+`
		 FROM companies
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]company.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCompanyRepository) Update(ctx context.Context, c company.Company) error {
	n, err := r.db.Exec(ctx,
		`UPDATE companies SET name = $2, logo = $3, location = $4, website = $5, size = $6,
			industry = $7, founded = $8, description = $9, email = $10, phone = $11, address = $12,
			updated_at = now()
		 WHERE id = $1`,
		c.ID, c.Name, c.Logo, c.Location, c.Website, c.Size, c.Industry, c.Founded,
		c.Description, c.Email, c.Phone, c.Address,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func (r *PostgresCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func scanCompany(row database.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.Logo, &c.Location, &c.Website, &c.Size, &c.Industry, &c.Founded,
		&c.Description, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if database.IsNoRows(err) {
			return company.Company{}, ErrCompanyNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}
