package analyzer

import "testing"

func TestAnalyzeLinksClassification(t *testing.T) {
	html := `<html><body>
		<a href="/about">About</a>
		<a href="https://example.com/contact">Contact</a>
		<a href="https://other.org">Other</a>
		<a href="#section">Jump</a>
	</body></html>`
	findings := AnalyzeLinks(docFromHTML(t, html), mustParseURL(t, "https://example.com/blog"))

	wantTexts := []string{
		"Total links found: 4",
		"Internal links: 2",
		"External links: 1",
	}
	if len(findings) != len(wantTexts) {
		t.Fatalf("Expected %d findings, got %d", len(wantTexts), len(findings))
	}
	for i, want := range wantTexts {
		if findings[i].Text != want {
			t.Errorf("Finding %d: expected %q, got %q", i, want, findings[i].Text)
		}
	}
}

func TestAnalyzeLinksNofollow(t *testing.T) {
	html := `<html><body>
		<a href="/a" rel="nofollow">A</a>
		<a href="/b" rel="nofollow noopener">B</a>
		<a href="/c">C</a>
	</body></html>`
	findings := AnalyzeLinks(docFromHTML(t, html), mustParseURL(t, "https://example.com/"))

	f, ok := findByKind(findings, "nofollow")
	if !ok {
		t.Fatal("Expected a nofollow finding")
	}
	if f.Text != "Links with nofollow: 2" {
		t.Errorf("Unexpected nofollow text: %q", f.Text)
	}
}

func TestAnalyzeLinksNoNofollowFinding(t *testing.T) {
	findings := AnalyzeLinks(docFromHTML(t, `<html><body><a href="/a">A</a></body></html>`), mustParseURL(t, "https://example.com/"))

	if _, ok := findByKind(findings, "nofollow"); ok {
		t.Error("No nofollow finding expected when no links carry it")
	}
}

func TestAnalyzeLinksNeverFlagIssues(t *testing.T) {
	html := `<html><body><a href="https://gone.example.net/404">Dead</a></body></html>`
	findings := AnalyzeLinks(docFromHTML(t, html), mustParseURL(t, "https://example.com/"))

	if n := countIssues(findings); n != 0 {
		t.Errorf("Link findings are informational only, got %d issues", n)
	}
}
