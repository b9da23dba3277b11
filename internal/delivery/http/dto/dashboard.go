package dto

import "jobboard/internal/usecase"

type MonthCount struct {
	Month int `json:"month"`
	Count int `json:"count"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

type CompanyKPIResponse struct {
	TotalCandidates int               `json:"total_candidates"`
	Pending         int               `json:"pending"`
	Shortlisted     int               `json:"shortlisted"`
	Rejected        int               `json:"rejected"`
	ByMonth         []MonthCount      `json:"candidacies_by_month"`
	ByDepartment    []DepartmentCount `json:"candidacies_by_department"`
}

func FromCompanyKPI(k usecase.CompanyKPI) CompanyKPIResponse {
	out := CompanyKPIResponse{
		TotalCandidates: k.TotalCandidates,
		Pending:         k.Pending,
		Shortlisted:     k.Accepted,
		Rejected:        k.Rejected,
		ByMonth:         make([]MonthCount, 0, len(k.ByMonth)),
		ByDepartment:    make([]DepartmentCount, 0, len(k.ByDepartment)),
	}
	for _, m := range k.ByMonth {
		out.ByMonth = append(out.ByMonth, MonthCount{Month: m.Month, Count: m.Count})
	}
	for _, d := range k.ByDepartment {
		out.ByDepartment = append(out.ByDepartment, DepartmentCount{Department: d.Department, Count: d.Count})
	}
	return out
}
