// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-job-board/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	userColumns = `id, first_name, last_name, username, email, recovery_email, dob, mobile_number,
		password_hash, role, status, created_at, updated_at`

	createUser = `INSERT INTO users (id, first_name, last_name, username, email, recovery_email, dob,
			mobile_number, password_hash, role, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + userColumns + `;`

	findUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1;`

	findUserByLogin = `SELECT ` + userColumns + ` FROM users
		WHERE username = $1 OR mobile_number = $1
		LIMIT 1;`

	findUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1;`

	findUsersByRecoveryEmail = `SELECT ` + userColumns + ` FROM users
		WHERE recovery_email = $1
		ORDER BY created_at;`

	updateUserPassword = `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1;`

	updateUserStatus = `UPDATE users SET status = $2, updated_at = NOW() WHERE id = $1;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	saveUserOTP = `UPDATE users SET otp_hash = $2, otp_expires_at = $3 WHERE id = $1;`

	consumeUserOTP = `UPDATE users SET otp_hash = NULL, otp_expires_at = NULL
		WHERE id = $1 AND otp_hash = $2 AND otp_expires_at > NOW();`
)

const (
	companyColumns = `id, company_name, description, industry, address, number_of_employees,
		company_email, company_email_hash, company_hr, created_at, updated_at`

	createCompany = `INSERT INTO companies (id, company_name, description, industry, address,
			number_of_employees, company_email, company_email_hash, company_hr)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + companyColumns + `;`

	findCompanyByID = `SELECT ` + companyColumns + ` FROM companies WHERE id = $1;`

	findCompanyByName = `SELECT ` + companyColumns + ` FROM companies WHERE company_name = $1;`

	findCompaniesByHR = `SELECT ` + companyColumns + ` FROM companies
		WHERE company_hr = $1
		ORDER BY created_at;`

	deleteCompany = `DELETE FROM companies WHERE id = $1;`
)

const (
	jobColumns = `j.id, j.job_title, j.job_location, j.working_time, j.seniority_level, j.job_description,
		j.salary, j.technical_skills, j.soft_skills, j.added_by, j.company_id, j.created_at, j.updated_at`

	createJob = `INSERT INTO jobs AS j (id, job_title, job_location, working_time, seniority_level,
			job_description, salary, technical_skills, soft_skills, added_by, company_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + jobColumns + `;`

	findJobByID = `SELECT ` + jobColumns + ` FROM jobs j WHERE j.id = $1;`

	findJobWithCompany = `SELECT ` + jobColumns + `,
			c.id, c.company_name, c.description, c.industry, c.address, c.number_of_employees,
			c.company_email, c.company_email_hash, c.company_hr, c.created_at, c.updated_at
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.id = $1;`

	findJobsByCompany = `SELECT ` + jobColumns + ` FROM jobs j
		WHERE j.company_id = $1
		ORDER BY j.created_at DESC;`

	deleteJob = `DELETE FROM jobs WHERE id = $1;`

	deleteJobsByCompany = `DELETE FROM jobs WHERE company_id = $1;`
)

const (
	applicationColumns = `a.id, a.job_id, a.user_id, a.user_tech_skills, a.user_soft_skills,
		a.user_resume, a.application_date, a.created_at`

	createApplication = `INSERT INTO applications AS a (id, job_id, user_id, user_tech_skills,
			user_soft_skills, user_resume, application_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + applicationColumns + `;`

	findApplicationsByJob = `SELECT ` + applicationColumns + `, u.username, u.email, u.mobile_number
		FROM applications a
		JOIN users u ON u.id = a.user_id
		WHERE a.job_id = $1
		ORDER BY a.created_at;`

	deleteApplicationsByJob = `DELETE FROM applications WHERE job_id = $1;`

	deleteApplicationsByCompany = `DELETE FROM applications
		WHERE job_id IN (SELECT id FROM jobs WHERE company_id = $1);`

	deleteApplicationsByUser = `DELETE FROM applications WHERE user_id = $1;`
)

// jobListColumns selects a job with the id and name of its company.
var jobListColumns = []string{
	"j.id", "j.job_title", "j.job_location", "j.working_time", "j.seniority_level",
	"j.job_description", "j.salary", "j.technical_skills", "j.soft_skills",
	"j.added_by", "j.company_id", "j.created_at", "j.updated_at",
	"c.company_name",
}

func selectJobsWithCompanyNames() sq.SelectBuilder {
	return psql.Select(jobListColumns...).
		From("jobs j").
		Join("companies c ON c.id = j.company_id")
}

// buildFindJobsWithCompanyNamesQuery lists jobs newest first. limit 0 means
// no limit.
func buildFindJobsWithCompanyNamesQuery(ctx context.Context, limit uint64) (string, []any, error) {
	q := selectJobsWithCompanyNames().OrderBy("j.created_at DESC", "j.id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	return toSQL(q)
}

// buildFindJobsByHRQuery lists the jobs created by one HR user joined with
// their full company.
func buildFindJobsByHRQuery(ctx context.Context, hrID string) (string, []any, error) {
	q := psql.Select(jobListColumns[:len(jobListColumns)-1]...).
		Columns(
			"c.id", "c.company_name", "c.description", "c.industry", "c.address", "c.number_of_employees",
			"c.company_email", "c.company_email_hash", "c.company_hr", "c.created_at", "c.updated_at",
		).
		From("jobs j").
		Join("companies c ON c.id = j.company_id").
		Where(sq.Eq{"j.added_by": hrID}).
		OrderBy("j.created_at DESC")

	return toSQL(q)
}

// buildSearchCompaniesQuery matches fragment anywhere in the company name,
// ignoring case. LIKE wildcards in fragment match literally.
func buildSearchCompaniesQuery(ctx context.Context, fragment string) (string, []any, error) {
	q := psql.Select(companyColumns).
		From("companies").
		Where(sq.ILike{"company_name": "%" + escapeLike(fragment) + "%"}).
		OrderBy("company_name")

	return toSQL(q)
}

// buildFilterJobsQuery turns the allow-listed filter into a WHERE clause.
// Empty criteria are skipped; skill lists use array containment.
func buildFilterJobsQuery(ctx context.Context, filter models.JobFilter) (string, []any, error) {
	q := selectJobsWithCompanyNames()

	if filter.JobTitle != "" {
		q = q.Where(sq.ILike{"j.job_title": "%" + escapeLike(filter.JobTitle) + "%"})
	}
	if filter.JobLocation != "" {
		q = q.Where(sq.Eq{"j.job_location": filter.JobLocation})
	}
	if filter.WorkingTime != "" {
		q = q.Where(sq.Eq{"j.working_time": filter.WorkingTime})
	}
	if filter.SeniorityLevel != "" {
		q = q.Where(sq.Eq{"j.seniority_level": filter.SeniorityLevel})
	}
	if filter.Salary != "" {
		q = q.Where(sq.Eq{"j.salary": filter.Salary})
	}
	if len(filter.TechnicalSkills) > 0 {
		q = q.Where("j.technical_skills @> ?::text[]", filter.TechnicalSkills)
	}
	if len(filter.SoftSkills) > 0 {
		q = q.Where("j.soft_skills @> ?::text[]", filter.SoftSkills)
	}

	return toSQL(q.OrderBy("j.created_at DESC"))
}

// buildUpdateUserQuery sets only the non-nil fields of update.
func buildUpdateUserQuery(ctx context.Context, userID string, update models.UserUpdate) (string, []any, error) {
	set := map[string]any{}
	putString(set, "first_name", update.FirstName)
	putString(set, "last_name", update.LastName)
	putString(set, "username", update.Username)
	putString(set, "email", update.Email)
	putString(set, "recovery_email", update.RecoveryEmail)
	putString(set, "dob", update.DOB)
	putString(set, "mobile_number", update.MobileNumber)
	if update.Role != nil {
		set["role"] = *update.Role
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}

	return buildUpdateQuery("users", userID, set, "RETURNING "+userColumns)
}

// buildUpdateCompanyQuery sets only the non-nil fields of update.
func buildUpdateCompanyQuery(ctx context.Context, companyID string, update models.CompanyUpdate) (string, []any, error) {
	set := map[string]any{}
	putString(set, "company_name", update.CompanyName)
	putString(set, "description", update.Description)
	putString(set, "industry", update.Industry)
	putString(set, "address", update.Address)
	putString(set, "company_email", update.CompanyEmail)
	putString(set, "company_email_hash", update.CompanyEmailHash)
	if update.NumberOfEmployees != nil {
		set["number_of_employees"] = *update.NumberOfEmployees
	}

	return buildUpdateQuery("companies", companyID, set, "RETURNING "+companyColumns)
}

// buildUpdateJobQuery sets only the non-nil fields of update.
func buildUpdateJobQuery(ctx context.Context, jobID string, update models.JobUpdate) (string, []any, error) {
	set := map[string]any{}
	putString(set, "job_title", update.JobTitle)
	putString(set, "job_description", update.JobDescription)
	putString(set, "salary", update.Salary)
	if update.JobLocation != nil {
		set["job_location"] = *update.JobLocation
	}
	if update.WorkingTime != nil {
		set["working_time"] = *update.WorkingTime
	}
	if update.SeniorityLevel != nil {
		set["seniority_level"] = *update.SeniorityLevel
	}
	if update.TechnicalSkills != nil {
		set["technical_skills"] = *update.TechnicalSkills
	}
	if update.SoftSkills != nil {
		set["soft_skills"] = *update.SoftSkills
	}

	return buildUpdateQuery("jobs AS j", jobID, set, "RETURNING "+jobColumns)
}

// buildFindApplicationsForExportQuery selects the applications of jobIDs
// submitted on date, joined with the applicant.
func buildFindApplicationsForExportQuery(ctx context.Context, jobIDs []string, date string) (string, []any, error) {
	q := psql.Select(
		"a.id", "a.job_id", "a.user_id", "a.user_tech_skills", "a.user_soft_skills",
		"a.user_resume", "a.application_date", "a.created_at",
		"u.username", "u.email", "u.mobile_number",
	).
		From("applications a").
		Join("users u ON u.id = a.user_id").
		Where(sq.Eq{"a.job_id": jobIDs}).
		Where(sq.Eq{"a.application_date": date}).
		OrderBy("a.created_at")

	return toSQL(q)
}

func buildUpdateQuery(table, id string, set map[string]any, suffix string) (string, []any, error) {
	if len(set) == 0 {
		return "", nil, fmt.Errorf("%w: nothing to update", ErrBuildingSQLQuery)
	}

	q := psql.Update(table).
		SetMap(set).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(suffix)

	return toSQL(q)
}

func toSQL(q sq.Sqlizer) (string, []any, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func putString(set map[string]any, column string, value *string) {
	if value != nil {
		set[column] = *value
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralises LIKE wildcards in user input.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
