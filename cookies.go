package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// browserCookie is one entry parsed from a Netscape-format cookies.txt file.
type browserCookie struct {
	Domain  string
	Path    string
	Secure  bool
	Expires int64 // unix seconds, 0 when the file carries no expiry
	Name    string
	Value   string
}

// loadCookieFile parses a Netscape-format cookies.txt export. Comment lines
// and blank lines are skipped; malformed lines are ignored rather than
// failing the whole file.
func loadCookieFile(path string) ([]browserCookie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening cookie file: %w", err)
	}
	defer f.Close()

	var cookies []browserCookie
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 7 {
			continue
		}

		expires, _ := strconv.ParseInt(fields[4], 10, 64)
		cookies = append(cookies, browserCookie{
			Domain:  fields[0],
			Path:    fields[2],
			Secure:  strings.EqualFold(fields[3], "TRUE"),
			Expires: expires,
			Name:    fields[5],
			Value:   fields[6],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading cookie file: %w", err)
	}

	if len(cookies) == 0 {
		return nil, fmt.Errorf("no cookies found in %s", path)
	}
	return cookies, nil
}
