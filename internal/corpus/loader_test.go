package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-match/internal/domain/job"
)

func TestReadCSV_ExportHeaders(t *testing.T) {
	in := "Title,Company,Location,Job Link,Description,Posted\n" +
		"Data Analyst,Acme,Remote,https://x/1,\"Python, SQL reporting\",3 days ago\n" +
		"\n" +
		"Chef,Bistro,Paris,https://x/2\n"

	res, err := ReadCSV(strings.NewReader(in), ImportColumns...)
	require.NoError(t, err)
	require.Len(t, res.Postings, 2)

	assert.Equal(t, job.Posting{
		Title: "Data Analyst", Company: "Acme", Location: "Remote", URL: "https://x/1",
		Description: "Python, SQL reporting", DatePosted: "3 days ago", Status: job.StatusNew,
	}, res.Postings[0])

	short := res.Postings[1]
	assert.Equal(t, "Chef", short.Title)
	assert.Equal(t, "https://x/2", short.URL)
	assert.Empty(t, short.Description, "missing cells degrade to empty strings")
	assert.Zero(t, short.ID)
}

func TestReadCSV_StoreStyleHeaders(t *testing.T) {
	in := "\ufeffid,title,company,location,url,description,date_posted\n" +
		"7,Go Developer,Globex,Berlin,https://x/3,go docker,2024-01-01\n"

	res, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, res.Postings, 1)
	p := res.Postings[0]
	assert.Equal(t, "Go Developer", p.Title)
	assert.Equal(t, "https://x/3", p.URL)
	assert.Equal(t, "2024-01-01", p.DatePosted)
	assert.Zero(t, p.ID, "feed ids are never trusted as store identity")
}

func TestReadCSV_MissingRequiredColumns(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Title,Company\nA,B\n"), ImportColumns...)
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "location")
	assert.Contains(t, err.Error(), "url")
	assert.Contains(t, err.Error(), "description")
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyFeed)
}

func TestNormalize(t *testing.T) {
	p := Normalize(map[string]string{
		"Job Title":    " Analyst ",
		"company_name": "Acme",
		"Job-Link":     "https://x/9",
		"unrelated":    "ignored",
	})
	assert.Equal(t, "Analyst", p.Title)
	assert.Equal(t, "Acme", p.Company)
	assert.Equal(t, "https://x/9", p.URL)
	assert.Empty(t, p.Description)
	assert.Equal(t, job.StatusNew, p.Status)
}
