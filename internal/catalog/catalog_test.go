package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalog = `[
  {
    "title": "Senior Python Developer",
    "company": "TechCorp Inc.",
    "location": "San Francisco, CA",
    "required_skills": ["Python", "Django"],
    "industry": "Technology",
    "experience_level": "Senior",
    "posted_date": "2025-01-15T00:00:00Z"
  },
  {
    "title": "Data Scientist",
    "company": "DataFlow Solutions",
    "required_skills": ["Python", "SQL"],
    "remote_work": true,
    "is_active": false
  }
]`

func TestParse_ValidCatalog(t *testing.T) {
	jobs, err := Parse([]byte(validCatalog))
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Senior Python Developer", jobs[0].Title)
	assert.Equal(t, []string{"Python", "Django"}, jobs[0].RequiredSkills)
	assert.True(t, jobs[0].IsActive, "postings default to active")
	assert.False(t, jobs[1].IsActive, "explicit is_active is preserved")
	assert.True(t, jobs[1].RemoteWork)
}

func TestParse_AssignsMissingIDs(t *testing.T) {
	jobs, err := Parse([]byte(validCatalog))
	require.NoError(t, err)

	for _, job := range jobs {
		assert.NotEqual(t, uuid.Nil, job.ID)
	}
}

func TestParse_MissingRequiredField(t *testing.T) {
	doc := `[{"title": "Engineer", "required_skills": ["Go"]}]`

	_, err := Parse([]byte(doc))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "company")
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	doc := `[{"title": "Engineer", "company": "Acme", "required_skills": [], "bogus": 1}]`

	_, err := Parse([]byte(doc))

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestParse_RejectsNonArrayDocument(t *testing.T) {
	_, err := Parse([]byte(`{"title": "Engineer"}`))

	assert.Error(t, err)
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`[{"title": `))

	assert.Error(t, err)
}

func TestLoad_SampleCatalog(t *testing.T) {
	jobs, err := Load("../../data/sample_jobs.json")
	require.NoError(t, err)

	assert.Len(t, jobs, 5)
	for _, job := range jobs {
		assert.NoError(t, job.Validate())
		assert.True(t, job.IsActive)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/does_not_exist.json")

	assert.Error(t, err)
}
