package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation stays in sync with itself:
	// 1. Every topic listed in docs/readme.md can be loaded with GetTopic.
	// 2. Every .md file in the docs directory (excluding readme.md) is listed in docs/readme.md.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		line := scanner.Text()
		matches := topicRegex.FindStringSubmatch(line)
		if len(matches) > 1 {
			topic := strings.TrimSpace(matches[1])
			topic = strings.Trim(topic, "`")
			topicsInReadme = append(topicsInReadme, topic)
		}
	}

	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
			if strings.TrimSpace(content) == "" {
				t.Errorf("topic %q is empty", topic)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}

	for _, file := range files {
		base := filepath.Base(file)
		if base == "readme.md" {
			continue
		}
		name := strings.TrimSuffix(base, ".md")
		found := false
		for _, topic := range topicsInReadme {
			if topic == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in docs/readme.md", name)
		}
	}
}

func TestTopicStructure(t *testing.T) {
	// Every topic must start with exactly one level-1 heading, so that
	// concatenating topics with GetTopics("*") produces a readable manual.
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if len(topics) == 0 {
		t.Fatal("no topics embedded")
	}

	mdParser := goldmark.DefaultParser()
	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatal(err)
			}
			source := []byte(content)
			doc := mdParser.Parse(text.NewReader(source))

			var h1s int
			err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
					h1s++
				}
				return ast.WalkContinue, nil
			})
			if err != nil {
				t.Fatal(err)
			}
			if h1s != 1 {
				t.Errorf("topic %q has %d level-1 headings, want 1", topic, h1s)
			}
		})
	}
}

func TestGetTopicsStar(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, heading := range []string{"# Importing Holdings", "# Broker Formats", "# Risk Factors", "# Portfolio Archetypes"} {
		if !strings.Contains(all, heading) {
			t.Errorf("GetTopic(*) is missing %q", heading)
		}
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("expected an error for an unknown topic")
	}
}
