// Package docs embeds the help topics printed by "psplit topic".
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var files embed.FS

// Index is the topic listing every other topic.
const Index = "readme"

// All expands to every topic but the index.
const All = "*"

// GetTopic returns the markdown of one topic.
func GetTopic(name string) (string, error) {
	content, err := files.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// GetTopics concatenates the given topics, in order, expanding All.
func GetTopics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		expanded := []string{name}
		if name == All {
			var err error
			if expanded, err = GetAllTopics(); err != nil {
				return "", err
			}
		}
		for _, n := range expanded {
			content, err := GetTopic(n)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted topic names, without the index.
func GetAllTopics() ([]string, error) {
	matches, err := fs.Glob(files, "*.md")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, m := range matches {
		if name := strings.TrimSuffix(m, ".md"); name != Index {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}
