package docs

import (
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md exists, and every topic is listed in readme.md.
	readme, err := Topic("readme")
	if err != nil {
		t.Fatal(err)
	}
	var listed []string
	for _, m := range regexp.MustCompile(`(?m)^\*\s+([^:]+):`).FindAllStringSubmatch(readme, -1) {
		listed = append(listed, strings.TrimSpace(m[1]))
	}

	sort.Strings(listed)

	all, err := List()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(all, listed); diff != "" {
		t.Errorf("readme.md topics mismatch (-files +readme):\n%s", diff)
	}
}

func TestTopicTitle(t *testing.T) {
	all, err := List()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range all {
		t.Run(name, func(t *testing.T) {
			content, err := Topic(name)
			if err != nil {
				t.Fatal(err)
			}
			doc := goldmark.New().Parser().Parse(text.NewReader([]byte(content)))
			h, ok := doc.FirstChild().(*ast.Heading)
			if !ok || h.Level != 1 {
				t.Errorf("topic %q does not start with a level 1 heading", name)
			}
		})
	}
}

func TestTopicsStar(t *testing.T) {
	got, err := Topics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"# Raw export", "# Converted CSV", "# Transactions"} {
		if !strings.Contains(got, title) {
			t.Errorf("Topics(*) misses %q", title)
		}
	}
	if _, err := Topic("nope"); err == nil {
		t.Errorf("Topic(nope) should fail")
	}
}
