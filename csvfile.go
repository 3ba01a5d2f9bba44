package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// csvHeader fixes the column order of the output file. The first seven
// columns are the record schema; score and timestamp trail them.
var csvHeader = []string{
	"post_id",
	"author_name",
	"author_profile_url",
	"job_title",
	"content",
	"reaction_count",
	"sentiment",
	"sentiment_score",
	"collected_at",
}

// requiredColumns must be present when re-reading a CSV for reporting.
var requiredColumns = []string{"post_id", "author_name", "content", "reaction_count"}

const timestampLayout = "2006-01-02 15:04:05"

// writeRecordsCSV serializes records to path in csvHeader order, one row per
// record, overwriting any existing file. An unwritable path is fatal to the
// run and is reported to the caller.
func writeRecordsCSV(path string, records []PostRecord) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.ID,
			r.AuthorName,
			r.AuthorProfileURL,
			r.JobTitle,
			r.Content,
			strconv.Itoa(r.ReactionCount),
			string(r.Sentiment),
			strconv.FormatFloat(r.Score, 'f', 3, 64),
			r.CollectedAt.UTC().Format(timestampLayout),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row for post %s: %w", r.ID, err)
		}
	}

	w.Flush()
	return w.Error()
}

// readRecordsCSV loads a previously written CSV, preserving row order.
// Columns are resolved by header name, so the legacy layout without the
// trailing score/timestamp columns still reads. Unparsable counts and
// scores default to zero; a row with a missing sentiment value keeps it
// empty so callers can backfill.
func readRecordsCSV(path string) ([]PostRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%s is missing required column %q", path, name)
		}
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []PostRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		count, err := strconv.Atoi(field(row, "reaction_count"))
		if err != nil || count < 0 {
			count = 0
		}
		score, err := strconv.ParseFloat(field(row, "sentiment_score"), 64)
		if err != nil {
			score = 0
		}
		collected, _ := time.Parse(timestampLayout, field(row, "collected_at"))

		records = append(records, PostRecord{
			ID:               field(row, "post_id"),
			AuthorName:       field(row, "author_name"),
			AuthorProfileURL: field(row, "author_profile_url"),
			JobTitle:         field(row, "job_title"),
			Content:          field(row, "content"),
			ReactionCount:    count,
			Sentiment:        Sentiment(field(row, "sentiment")),
			Score:            score,
			CollectedAt:      collected.UTC(),
		})
	}

	return records, nil
}

// backupCSV copies path to a timestamped sibling before an in-place update.
func backupCSV(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer src.Close()

	backupPath := fmt.Sprintf("%s.backup_%s", path, time.Now().Format("20060102_150405"))
	dst, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("creating backup: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("copying to backup: %w", err)
	}
	return backupPath, nil
}
