package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// merge-runs combines the CSVs from several scraping runs into one file,
// keeping the first sighting of each post_id. Row order follows the input
// files in the order given.
func main() {
	if len(os.Args) < 4 {
		log.Fatal("Usage: merge-runs <output.csv> <input1.csv> <input2.csv> [more.csv...]")
	}

	output := os.Args[1]
	inputs := os.Args[2:]

	header, rows, err := mergeFiles(inputs)
	if err != nil {
		log.Fatal(err)
	}

	if err := writeMerged(output, header, rows); err != nil {
		log.Fatal(err)
	}
	log.Printf("Merged %d unique posts from %d files into %s", len(rows), len(inputs), output)
}

func mergeFiles(paths []string) ([]string, [][]string, error) {
	var header []string
	var merged [][]string
	seen := make(map[string]bool)

	for _, path := range paths {
		fileHeader, rows, err := readFile(path)
		if err != nil {
			return nil, nil, err
		}

		if header == nil {
			header = fileHeader
		} else if !equalHeaders(header, fileHeader) {
			return nil, nil, fmt.Errorf("%s has a different column layout than %s", path, paths[0])
		}

		idCol := columnIndex(fileHeader, "post_id")
		if idCol < 0 {
			return nil, nil, fmt.Errorf("%s has no post_id column", path)
		}

		kept := 0
		for _, row := range rows {
			if idCol >= len(row) || row[idCol] == "" {
				continue
			}
			if seen[row[idCol]] {
				continue
			}
			seen[row[idCol]] = true
			merged = append(merged, row)
			kept++
		}
		log.Printf("%s: %d rows, %d new", path, len(rows), kept)
	}

	return header, merged, nil
}

func readFile(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading header of %s: %w", path, err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", path, err)
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

func writeMerged(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}
	w.Flush()
	return w.Error()
}

func columnIndex(header []string, name string) int {
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i
		}
	}
	return -1
}

func equalHeaders(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(strings.TrimSpace(a[i]), strings.TrimSpace(b[i])) {
			return false
		}
	}
	return true
}
