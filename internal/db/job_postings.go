package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/types"
)

const jobPostingColumns = `id, title, company, location, salary_range, description,
	required_skills, preferred_skills, industry, experience_level,
	employment_type, remote_work, company_size, benefits, requirements,
	posted_date, application_deadline, is_active`

// InsertJobPosting stores a posting. A zero ID is assigned before insert.
func (db *DB) InsertJobPosting(ctx context.Context, job *types.JobPosting) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}

	requiredJSON, preferredJSON, benefitsJSON, requirementsJSON, err := listFields(job)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO job_postings (`+jobPostingColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		job.ID, job.Title, job.Company, job.Location, job.SalaryRange, job.Description,
		requiredJSON, preferredJSON, job.Industry, job.ExperienceLevel,
		job.EmploymentType, job.RemoteWork, job.CompanySize, benefitsJSON, requirementsJSON,
		job.PostedDate, job.ApplicationDeadline, job.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to insert job posting: %w", err)
	}
	return nil
}

// GetJobPostingByID retrieves a posting by its ID, or nil when absent.
func (db *DB) GetJobPostingByID(ctx context.Context, id uuid.UUID) (*types.JobPosting, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobPostingColumns+` FROM job_postings WHERE id = $1`, id)

	job, err := scanJobPosting(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}
	return job, nil
}

// ListActiveJobPostings retrieves all active postings, newest first.
func (db *DB) ListActiveJobPostings(ctx context.Context) ([]types.JobPosting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobPostingColumns+` FROM job_postings
		 WHERE is_active = TRUE ORDER BY posted_date DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var jobs []types.JobPosting
	for rows.Next() {
		job, err := scanJobPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

// CountJobPostings returns the total number of postings, active or not.
func (db *DB) CountJobPostings(ctx context.Context) (int, error) {
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM job_postings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count job postings: %w", err)
	}
	return count, nil
}

// DeactivateJobPosting marks a posting inactive without deleting it.
func (db *DB) DeactivateJobPosting(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE job_postings SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate job posting: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job posting not found: %s", id)
	}
	return nil
}

// SeedJobPostings inserts the given postings only when the table is empty,
// so repeated seeding is a no-op. Returns the number of postings inserted.
func (db *DB) SeedJobPostings(ctx context.Context, jobs []types.JobPosting) (int, error) {
	count, err := db.CountJobPostings(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for i := range jobs {
		if err := db.InsertJobPosting(ctx, &jobs[i]); err != nil {
			return i, err
		}
	}
	return len(jobs), nil
}

func listFields(job *types.JobPosting) (required, preferred, benefits, requirements []byte, err error) {
	if required, err = marshalList(job.RequiredSkills); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to marshal required skills: %w", err)
	}
	if preferred, err = marshalList(job.PreferredSkills); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to marshal preferred skills: %w", err)
	}
	if benefits, err = marshalList(job.Benefits); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to marshal benefits: %w", err)
	}
	if requirements, err = marshalList(job.Requirements); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to marshal requirements: %w", err)
	}
	return required, preferred, benefits, requirements, nil
}

// marshalList encodes a string list as JSONB, mapping nil to an empty array
// so the column never stores SQL NULL.
func marshalList(list []string) ([]byte, error) {
	if list == nil {
		list = []string{}
	}
	return json.Marshal(list)
}

func scanJobPosting(row pgx.Row) (*types.JobPosting, error) {
	var job types.JobPosting
	var requiredJSON, preferredJSON, benefitsJSON, requirementsJSON []byte

	err := row.Scan(&job.ID, &job.Title, &job.Company, &job.Location, &job.SalaryRange, &job.Description,
		&requiredJSON, &preferredJSON, &job.Industry, &job.ExperienceLevel,
		&job.EmploymentType, &job.RemoteWork, &job.CompanySize, &benefitsJSON, &requirementsJSON,
		&job.PostedDate, &job.ApplicationDeadline, &job.IsActive)
	if err != nil {
		return nil, err
	}

	// Parse JSONB fields
	if requiredJSON != nil {
		_ = json.Unmarshal(requiredJSON, &job.RequiredSkills)
	}
	if preferredJSON != nil {
		_ = json.Unmarshal(preferredJSON, &job.PreferredSkills)
	}
	if benefitsJSON != nil {
		_ = json.Unmarshal(benefitsJSON, &job.Benefits)
	}
	if requirementsJSON != nil {
		_ = json.Unmarshal(requirementsJSON, &job.Requirements)
	}

	return &job, nil
}
