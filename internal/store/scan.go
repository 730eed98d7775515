package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-job-board/models"
)

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.Email, &u.RecoveryEmail, &u.DOB,
		&u.MobileNumber, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func scanCompany(row rowScanner) (models.Company, error) {
	var c models.Company
	err := row.Scan(
		&c.ID, &c.CompanyName, &c.Description, &c.Industry, &c.Address, &c.NumberOfEmployees,
		&c.CompanyEmail, &c.CompanyEmailHash, &c.CompanyHR, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func jobFields(j *models.Job) []any {
	return []any{
		&j.ID, &j.JobTitle, &j.JobLocation, &j.WorkingTime, &j.SeniorityLevel, &j.JobDescription,
		&j.Salary, &j.TechnicalSkills, &j.SoftSkills, &j.AddedBy, &j.Company, &j.CreatedAt, &j.UpdatedAt,
	}
}

func scanJob(row rowScanner) (models.Job, error) {
	var j models.Job
	err := row.Scan(jobFields(&j)...)
	return j, err
}

// scanJobWithCompanyName reads a job followed by its company name.
func scanJobWithCompanyName(row rowScanner) (models.JobWithCompany, error) {
	var jc models.JobWithCompany
	dest := append(jobFields(&jc.Job), &jc.Company.CompanyName)
	if err := row.Scan(dest...); err != nil {
		return models.JobWithCompany{}, err
	}
	jc.Company.ID = jc.Job.Company

	return jc, nil
}

func scanJobWithCompany(row rowScanner) (models.JobWithCompany, error) {
	var jc models.JobWithCompany
	c := &jc.Company
	dest := append(jobFields(&jc.Job),
		&c.ID, &c.CompanyName, &c.Description, &c.Industry, &c.Address, &c.NumberOfEmployees,
		&c.CompanyEmail, &c.CompanyEmailHash, &c.CompanyHR, &c.CreatedAt, &c.UpdatedAt,
	)
	err := row.Scan(dest...)
	return jc, err
}

func applicationFields(a *models.Application) []any {
	return []any{
		&a.ID, &a.JobID, &a.UserID, &a.UserTechSkills, &a.UserSoftSkills,
		&a.UserResume, &a.ApplicationDate, &a.CreatedAt,
	}
}

func scanApplication(row rowScanner) (models.Application, error) {
	var a models.Application
	err := row.Scan(applicationFields(&a)...)
	return a, err
}

func scanApplicationRow(row rowScanner) (models.ApplicationExportRow, error) {
	var r models.ApplicationExportRow
	dest := append(applicationFields(&r.Application),
		&r.Applicant.Username, &r.Applicant.Email, &r.Applicant.MobileNumber,
	)
	err := row.Scan(dest...)
	return r, err
}

// collect drains rows with scan. It always closes rows.
func collect[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()

	result := make([]T, 0, 16)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}
