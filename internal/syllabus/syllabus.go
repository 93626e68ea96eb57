// Package syllabus loads a subject's curriculum from YAML and seeds it into
// the content store.
package syllabus

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk syllabus shape: one subject, ordered modules, ordered
// topics, optional reference books.
type File struct {
	Subject     string       `yaml:"subject"`
	Description string       `yaml:"description"`
	Modules     []ModuleSpec `yaml:"modules"`
	Books       []BookSpec   `yaml:"books"`
}

// ModuleSpec is one module in declaration order.
type ModuleSpec struct {
	Name        string      `yaml:"module"`
	Description string      `yaml:"description"`
	Topics      []TopicSpec `yaml:"topics"`
}

// TopicSpec is one topic in declaration order.
type TopicSpec struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// BookSpec is study material attached to the subject. Its title and author
// feed the quiz generation prompt.
type BookSpec struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Path   string `yaml:"path"`
}

// Load reads and validates a syllabus file.
func Load(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("open syllabus: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes and validates a syllabus document.
func Parse(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("decode syllabus: %w", err)
	}
	if err := f.validate(); err != nil {
		return File{}, fmt.Errorf("invalid syllabus: %w", err)
	}
	return f, nil
}

func (f File) validate() error {
	if f.Subject == "" {
		return fmt.Errorf("subject name is required")
	}
	if len(f.Modules) == 0 {
		return fmt.Errorf("subject %q has no modules", f.Subject)
	}
	for _, m := range f.Modules {
		if m.Name == "" {
			return fmt.Errorf("subject %q has an unnamed module", f.Subject)
		}
		if len(m.Topics) == 0 {
			return fmt.Errorf("module %q has no topics", m.Name)
		}
		for _, t := range m.Topics {
			if t.Name == "" {
				return fmt.Errorf("module %q has an unnamed topic", m.Name)
			}
		}
	}
	for _, b := range f.Books {
		if b.Title == "" {
			return fmt.Errorf("subject %q has a book without a title", f.Subject)
		}
	}
	return nil
}

// TopicCount returns the total number of topics across all modules.
func (f File) TopicCount() int {
	n := 0
	for _, m := range f.Modules {
		n += len(m.Topics)
	}
	return n
}
