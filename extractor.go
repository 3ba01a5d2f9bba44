package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

// Extraction failures for a single post wrapper. The wrapper is skipped and
// the run continues; neither aborts a pass.
var (
	ErrNoPostID  = errors.New("post wrapper has no activity ID")
	ErrNoContent = errors.New("post has no text content")
)

// extractor turns raw page snapshots into PostRecords. The HTML-to-markdown
// converter flattens the post body (links, line breaks, lists) into plain
// text before sanitization.
type extractor struct {
	converter *md.Converter
}

func newExtractor() *extractor {
	return &extractor{converter: md.NewConverter("", true, nil)}
}

// extractPage parses one page-source snapshot and returns a record for every
// post wrapper that carries the required fields. The skipped count reports
// wrappers dropped for missing ID or content.
func (e *extractor) extractPage(pageHTML string) ([]PostRecord, int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, 0, fmt.Errorf("parsing page HTML: %w", err)
	}

	var records []PostRecord
	skipped := 0
	doc.Find(selectorPostWrapper).Each(func(_ int, wrapper *goquery.Selection) {
		record, err := e.extractPost(wrapper)
		if err != nil {
			skipped++
			debugLog("skipping wrapper: %v", err)
			return
		}
		records = append(records, record)
	})

	return records, skipped, nil
}

// extractPost builds one PostRecord from a post wrapper. Missing optional
// fields (author, job title, reactions) degrade to empty/zero; a missing ID
// or empty content fails the record.
func (e *extractor) extractPost(wrapper *goquery.Selection) (PostRecord, error) {
	id := postID(wrapper)
	if id == "" {
		return PostRecord{}, ErrNoPostID
	}

	record := PostRecord{
		ID:          id,
		CollectedAt: time.Now().UTC(),
	}

	if actor := wrapper.Find(selectorActorContainer).First(); actor.Length() > 0 {
		record.AuthorName = halveDoubledText(actor.Find(selectorActorTitle).First().Text())
		record.JobTitle = sanitizeContent(halveDoubledText(actor.Find(selectorActorHeadline).First().Text()))
		if href, ok := actor.Find(selectorActorLink).First().Attr("href"); ok {
			record.AuthorProfileURL = normalizeProfileURL(href)
		}
	}

	content := wrapper.Find(selectorPostText).First()
	if content.Length() > 0 {
		inner, err := content.Html()
		if err == nil {
			if text, err := e.converter.ConvertString(inner); err == nil {
				record.Content = sanitizeContent(text)
			}
		}
		if record.Content == "" {
			// converter failed or produced nothing; fall back to node text
			record.Content = sanitizeContent(content.Text())
		}
	}
	if record.Content == "" {
		return PostRecord{}, ErrNoContent
	}

	if counts := wrapper.Find(selectorSocialCounts).First(); counts.Length() > 0 {
		if label, ok := counts.Find(selectorReactionsItem).First().Attr("aria-label"); ok {
			first := strings.Fields(label)
			if len(first) > 0 {
				record.ReactionCount = parseAbbreviatedCount(first[0])
			}
		}
	}

	return record, nil
}

// postID pulls the numeric activity ID out of the detail-page link, falling
// back to the wrapper's data-urn attribute.
func postID(wrapper *goquery.Selection) string {
	if href, ok := wrapper.Find(selectorDetailLink).First().Attr("href"); ok {
		if id := parseActivityID(href); id != "" {
			return id
		}
	}
	return parseActivityID(wrapper.AttrOr("data-urn", ""))
}

// parseActivityID extracts the ID following the activity URN marker from a
// href or data-urn value, dropping any trailing path or query.
func parseActivityID(s string) string {
	idx := strings.LastIndex(s, activityURNMarker)
	if idx < 0 {
		return ""
	}
	id := s[idx+len(activityURNMarker):]
	if q := strings.IndexByte(id, '?'); q >= 0 {
		id = id[:q]
	}
	return strings.ReplaceAll(strings.TrimSpace(id), "/", "")
}

// halveDoubledText undoes LinkedIn's accessibility duplication: the visible
// name and headline render twice in one node ("Jane Doe Jane Doe"), so the
// first half of the words is the real value.
func halveDoubledText(raw string) string {
	words := strings.Fields(strings.TrimSpace(raw))
	if len(words) < 2 {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:len(words)/2], " ")
}

// normalizeProfileURL makes relative /in/ profile paths absolute and drops
// tracking query strings.
func normalizeProfileURL(href string) string {
	href = strings.TrimSpace(href)
	if q := strings.IndexByte(href, '?'); q >= 0 {
		href = href[:q]
	}
	if strings.HasPrefix(href, "/in/") {
		href = "https://www.linkedin.com" + href
	}
	return href
}

// parseAbbreviatedCount converts LinkedIn's abbreviated counters ("1.2K",
// "3M", "47") to integers. Unparsable input yields 0, never an error.
func parseAbbreviatedCount(s string) int {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, ",", "")

	multiplier := 1.0
	switch {
	case strings.Contains(s, "K"):
		multiplier = 1_000
		s = strings.ReplaceAll(s, "K", "")
	case strings.Contains(s, "M"):
		multiplier = 1_000_000
		s = strings.ReplaceAll(s, "M", "")
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n < 0 {
		return 0
	}
	return int(n * multiplier)
}
