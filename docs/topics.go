// Package docs embeds the help topics shown by "fa topic".
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var topics embed.FS

// GetTopic returns the markdown content of one help topic.
func GetTopic(topic string) (string, error) {
	content, err := topics.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found, try one of %v: %w", topic, mustList(), err)
	}
	return string(content), nil
}

// ListTopics returns every available topic name, sorted. The readme is the
// index, not a topic.
func ListTopics() ([]string, error) {
	entries, err := fs.Glob(topics, "*.md")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e, ".md")
		if name == "readme" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Index returns the readme listing every topic.
func Index() (string, error) {
	content, err := topics.ReadFile("readme.md")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func mustList() []string {
	names, _ := ListTopics()
	return names
}
