// Package corpus normalizes job postings from tabular feeds into job.Posting.
package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"resume-match/internal/domain/job"
)

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrEmptyFeed     = errors.New("empty feed")
)

type Field string

const (
	FieldTitle       Field = "title"
	FieldCompany     Field = "company"
	FieldLocation    Field = "location"
	FieldURL         Field = "url"
	FieldDescription Field = "description"
	FieldDatePosted  Field = "date_posted"
)

// ImportColumns are the columns a job export must carry to be imported.
var ImportColumns = []Field{FieldTitle, FieldCompany, FieldLocation, FieldURL, FieldDescription}

// aliases maps normalized header names to fields. Headers are compared
// lower-cased with runs of space, dash and underscore collapsed to "_".
var aliases = map[string]Field{
	"title":        FieldTitle,
	"job_title":    FieldTitle,
	"company":      FieldCompany,
	"company_name": FieldCompany,
	"location":     FieldLocation,
	"job_link":     FieldURL,
	"link":         FieldURL,
	"url":          FieldURL,
	"job_url":      FieldURL,
	"description":  FieldDescription,
	"posted":       FieldDatePosted,
	"date_posted":  FieldDatePosted,
	"posted_date":  FieldDatePosted,
}

func normalizeHeader(h string) string {
	h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	h = strings.ToLower(h)
	return strings.Join(strings.FieldsFunc(h, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}), "_")
}

// Result is a parsed feed. Skipped counts rows that could not be read at all.
type Result struct {
	Postings []job.Posting
	Skipped  int
}

// ReadCSV parses a job feed with a header row. Columns named in required
// must be present or the whole feed is rejected; everything else degrades
// per record: missing cells become empty strings and unreadable rows are
// skipped.
func ReadCSV(r io.Reader, required ...Field) (Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Result{}, ErrEmptyFeed
		}
		return Result{}, fmt.Errorf("read header: %w", err)
	}

	index := make(map[Field]int, len(header))
	for i, h := range header {
		f, ok := aliases[normalizeHeader(h)]
		if !ok {
			continue
		}
		if _, dup := index[f]; !dup {
			index[f] = i
		}
	}

	var missing []string
	for _, f := range required {
		if _, ok := index[f]; !ok {
			missing = append(missing, string(f))
		}
	}
	if len(missing) > 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	out := Result{Postings: make([]job.Posting, 0)}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				out.Skipped++
				continue
			}
			return out, err
		}
		if blank(rec) {
			continue
		}
		out.Postings = append(out.Postings, fromRow(rec, index))
	}
	return out, nil
}

// Normalize builds a posting from a loosely keyed record, such as a decoded
// JSON object from an external feed.
func Normalize(rec map[string]string) job.Posting {
	fields := make(map[Field]string, len(rec))
	for k, v := range rec {
		if f, ok := aliases[normalizeHeader(k)]; ok {
			if _, seen := fields[f]; !seen {
				fields[f] = v
			}
		}
	}
	return build(func(f Field) string { return fields[f] })
}

func fromRow(rec []string, index map[Field]int) job.Posting {
	return build(func(f Field) string {
		i, ok := index[f]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	})
}

func build(get func(Field) string) job.Posting {
	return job.Posting{
		Title:       strings.TrimSpace(get(FieldTitle)),
		Company:     strings.TrimSpace(get(FieldCompany)),
		Location:    strings.TrimSpace(get(FieldLocation)),
		URL:         strings.TrimSpace(get(FieldURL)),
		Description: strings.TrimSpace(get(FieldDescription)),
		DatePosted:  strings.TrimSpace(get(FieldDatePosted)),
		Status:      job.StatusNew,
	}
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
