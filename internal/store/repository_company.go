package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/models"
)

// companyRepository is the PostgreSQL-backed implementation of
// [CompanyRepository] over the "companies" table.
type companyRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCompanyRepository(db *DB, logger *logger.Logger) CompanyRepository {
	logger.Debug().Msg("creating company repository")
	return &companyRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCompany inserts company. A taken name or email hash yields
// [ErrCompanyAlreadyExists].
func (r *companyRepository) CreateCompany(ctx context.Context, company models.Company) (models.Company, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCompany,
		company.ID, company.CompanyName, company.Description, company.Industry, company.Address,
		company.NumberOfEmployees, company.CompanyEmail, company.CompanyEmailHash, company.CompanyHR,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "companyRepository.CreateCompany").Msg("error inserting company")
		return models.Company{}, writeError(err, ErrCompanyAlreadyExists)
	}

	created, err := scanCompany(row)
	if err != nil {
		log.Err(err).Str("func", "companyRepository.CreateCompany").Msg("failed to scan company row")
		return models.Company{}, scanError(err, ErrCompanyAlreadyExists, ErrExecutingStatement)
	}

	return created, nil
}

func (r *companyRepository) FindCompanyByID(ctx context.Context, companyID string) (models.Company, error) {
	return r.findOne(ctx, "companyRepository.FindCompanyByID", findCompanyByID, companyID)
}

func (r *companyRepository) FindCompanyByName(ctx context.Context, name string) (models.Company, error) {
	return r.findOne(ctx, "companyRepository.FindCompanyByName", findCompanyByName, name)
}

func (r *companyRepository) findOne(ctx context.Context, fn, query, arg string) (models.Company, error) {
	company, err := scanCompany(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Company{}, ErrCompanyNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error finding company")
		return models.Company{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return company, nil
}

func (r *companyRepository) FindCompaniesByHR(ctx context.Context, hrID string) ([]models.Company, error) {
	return r.findMany(ctx, "companyRepository.FindCompaniesByHR", findCompaniesByHR, hrID)
}

func (r *companyRepository) SearchCompaniesByName(ctx context.Context, fragment string) ([]models.Company, error) {
	query, args, err := buildSearchCompaniesQuery(ctx, fragment)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "companyRepository.SearchCompaniesByName").Msg("failed to create query")
		return nil, err
	}

	return r.findMany(ctx, "companyRepository.SearchCompaniesByName", query, args...)
}

func (r *companyRepository) findMany(ctx context.Context, fn, query string, args ...any) ([]models.Company, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	companies, err := collect(rows, scanCompany)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to read company rows")
		return nil, err
	}

	return companies, nil
}

func (r *companyRepository) UpdateCompany(ctx context.Context, companyID string, update models.CompanyUpdate) (models.Company, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCompanyQuery(ctx, companyID, update)
	if err != nil {
		log.Err(err).Str("func", "companyRepository.UpdateCompany").Msg("failed to create query")
		return models.Company{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "companyRepository.UpdateCompany").Str("company_id", companyID).Msg("error updating company")
		return models.Company{}, writeError(err, ErrCompanyAlreadyExists)
	}

	company, err := scanCompany(row)
	if err != nil {
		return models.Company{}, scanError(err, ErrCompanyAlreadyExists, ErrCompanyNotFound)
	}

	return company, nil
}

func (r *companyRepository) DeleteCompany(ctx context.Context, companyID string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteCompany, companyID)
	if err != nil {
		log.Err(err).Str("func", "companyRepository.DeleteCompany").Str("company_id", companyID).Msg("error deleting company")
		return writeError(err, ErrCompanyAlreadyExists)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCompanyNotFound
	}

	return nil
}
