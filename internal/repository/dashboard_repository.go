package repository

import (
	"context"

	"jobboard/internal/database"

	"github.com/google/uuid"
)

type MonthCount struct {
	Month int
	Count int
}

type DepartmentCount struct {
	Department string
	Count      int
}

type CompanyKPI struct {
	StatusCounts map[string]int
	ByMonth      []MonthCount
	ByDepartment []DepartmentCount
}

type DashboardRepository interface {
	CompanyKPI(ctx context.Context, companyID uuid.UUID) (CompanyKPI, error)
}

type PostgresDashboardRepository struct {
	db database.DB
}

func NewPostgresDashboardRepository(db database.DB) *PostgresDashboardRepository {
	return &PostgresDashboardRepository{db: db}
}

func (r *PostgresDashboardRepository) CompanyKPI(ctx context.Context, companyID uuid.UUID) (CompanyKPI, error) {
	out := CompanyKPI{
		StatusCounts: map[string]int{"pending": 0, "accepted": 0, "rejected": 0},
		ByMonth:      make([]MonthCount, 0),
		ByDepartment: make([]DepartmentCount, 0),
	}

	rows, err := r.db.Query(ctx,
		`SELECT cd.status, COUNT(*)
		 FROM candidacies cd JOIN jobs j ON j.id = cd.job_id
		 WHERE j.company_id = $1
		 GROUP BY cd.status`,
		companyID,
	)
	if err != nil {
		return CompanyKPI{}, err
	}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			rows.Close()
			return CompanyKPI{}, err
		}
		out.StatusCounts[status] = n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return CompanyKPI{}, err
	}

	rows, err = r.db.Query(ctx,
		`SELECT EXTRACT(MONTH FROM cd.applied_at)::int AS month, COUNT(*)
		 FROM candidacies cd JOIN jobs j ON j.id = cd.job_id
		 WHERE j.company_id = $1
		 GROUP BY month
		 ORDER BY month`,
		companyID,
	)
	if err != nil {
		return CompanyKPI{}, err
	}
	for rows.Next() {
		var m MonthCount
		if err := rows.Scan(&m.Month, &m.Count); err != nil {
			rows.Close()
			return CompanyKPI{}, err
		}
		out.ByMonth = append(out.ByMonth, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return CompanyKPI{}, err
	}

	rows, err = r.db.Query(ctx,
		`SELECT j.department, COUNT(*)
		 FROM candidacies cd JOIN jobs j ON j.id = cd.job_id
		 WHERE j.company_id = $1
		 GROUP BY j.department
		 ORDER BY COUNT(*) DESC, j.department`,
		companyID,
	)
	if err != nil {
		return CompanyKPI{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var d DepartmentCount
		if err := rows.Scan(&d.Department, &d.Count); err != nil {
			return CompanyKPI{}, err
		}
		out.ByDepartment = append(out.ByDepartment, d)
	}
	if err := rows.Err(); err != nil {
		return CompanyKPI{}, err
	}

	return out, nil
}
