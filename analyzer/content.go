package analyzer

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const topKeywordCount = 5

// AnalyzeContent reports heading structure, image alt coverage and, when
// extracted text is available, word count and keyword density. It also
// returns the trimmed h1 texts for the report.
func AnalyzeContent(doc *goquery.Document, text string) ([]Finding, []string) {
	var findings []Finding

	var counts [7]int // counts[1] through counts[6]
	for level := 1; level <= 6; level++ {
		counts[level] = doc.Find(fmt.Sprintf("h%d", level)).Length()
	}

	var h1Text []string
	doc.Find("h1").Each(func(_ int, s *goquery.Selection) {
		h1Text = append(h1Text, strings.TrimSpace(s.Text()))
	})

	switch {
	case counts[1] == 0:
		findings = append(findings, issue(CategoryContent, "h1-missing", "Missing H1 heading (main title)"))
	case counts[1] > 1:
		findings = append(findings, issue(CategoryContent, "h1-multiple", "Multiple H1 headings detected (%d found, recommended: 1)", counts[1]))
	}

	var present []string
	for level := 1; level <= 6; level++ {
		if counts[level] > 0 {
			present = append(present, fmt.Sprintf("h%d: %d", level, counts[level]))
		}
	}
	findings = append(findings, info(CategoryContent, "headings", "Heading structure: %s", strings.Join(present, ", ")))

	images := doc.Find("img")
	withoutAlt, raster := 0, 0
	images.Each(func(_ int, s *goquery.Selection) {
		if alt, ok := s.Attr("alt"); !ok || alt == "" {
			withoutAlt++
		}
		src, _ := s.Attr("src")
		if strings.HasSuffix(src, ".png") || strings.HasSuffix(src, ".jpg") || strings.HasSuffix(src, ".jpeg") {
			raster++
		}
	})
	findings = append(findings, info(CategoryContent, "images", "Total images: %d", images.Length()))
	if withoutAlt > 0 {
		findings = append(findings, warn(CategoryContent, "images-alt", "Images without alt text: %d", withoutAlt))
	}
	if raster > 0 {
		findings = append(findings, warn(CategoryContent, "images-raster", "Consider optimizing %d large image(s)", raster))
	}

	if text != "" {
		findings = append(findings, analyzeText(text)...)
	}

	return findings, h1Text
}

// analyzeText derives word count and keyword density findings. Density
// denominators use the full token count; the frequency table only holds
// lowercase tokens longer than three characters.
func analyzeText(text string) []Finding {
	words := strings.Fields(text)
	wordCount := len(words)

	var findings []Finding
	if wordCount < 300 {
		findings = append(findings, issue(CategoryContent, "words-short", "Content is too short (%d words, recommended: minimum 300)", wordCount))
	} else {
		findings = append(findings, good(CategoryContent, "words", "Good content length: %d words", wordCount))
	}

	freq := make(map[string]int)
	var order []string
	for _, word := range words {
		if utf8.RuneCountInString(word) <= 3 {
			continue
		}
		word = strings.ToLower(word)
		if _, seen := freq[word]; !seen {
			order = append(order, word)
		}
		freq[word]++
	}

	// Stable sort keeps first-occurrence order among equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})
	if len(order) > topKeywordCount {
		order = order[:topKeywordCount]
	}

	findings = append(findings, info(CategoryContent, "keywords", "Top 5 keywords and their density:"))
	for _, word := range order {
		density := float64(freq[word]) / float64(wordCount) * 100
		findings = append(findings, info(CategoryContent, "keyword", "'%s': %.1f%% (%d occurrences)", word, density, freq[word]))
	}

	return findings
}
