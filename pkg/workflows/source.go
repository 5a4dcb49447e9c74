package workflows

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// BindingSource discovers the bindings a project wants reconciled.
// Sources report their own diagnostics; an abnormal configuration
// surface yields an empty set rather than an error so the caller can
// treat it uniformly as "nothing configured".
type BindingSource interface {
	Bindings() []Binding
}

// ConfigSource reads bindings from a YAML document, either a list of
// owner/name references or a mapping of filename to reference. This is
// the primary discovery strategy.
type ConfigSource struct {
	Path   string
	ErrOut io.Writer
}

// Bindings parses the config document. Document order is preserved; a
// repeated filename keeps its first position and takes the last
// reference, matching plain mapping semantics.
func (s *ConfigSource) Bindings() []Binding {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(s.ErrOut, "Error: config file %s not found\n", s.Path)
		} else {
			fmt.Fprintf(s.ErrOut, "Error reading %s: %v\n", s.Path, err)
		}
		return nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		fmt.Fprintf(s.ErrOut, "Error parsing %s: %v\n", s.Path, err)
		return nil
	}

	// Empty or null document means nothing is configured.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil
	}

	set := newBindingSet()

	switch root.Kind {
	case yaml.SequenceNode:
		// List format: entries are owner/name references, the local
		// filename is derived from the name. Non-string entries and
		// entries without a slash are dropped.
		for _, item := range root.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				continue
			}
			if !strings.Contains(item.Value, "/") {
				continue
			}
			name := item.Value[strings.LastIndex(item.Value, "/")+1:]
			set.add(name, item.Value)
		}
	case yaml.MappingNode:
		// Mapping format: filename -> reference.
		for i := 0; i+1 < len(root.Content); i += 2 {
			key := root.Content[i]
			val := root.Content[i+1]
			reference := ""
			if val.Kind == yaml.ScalarNode {
				reference = val.Value
			}
			set.add(key.Value, reference)
		}
	default:
		fmt.Fprintf(s.ErrOut, "Warning: unexpected config format in %s\n", s.Path)
		return nil
	}

	return set.bindings
}

var commentRefPattern = regexp.MustCompile(`^#\s*([^/\s]+)/([^/\s]+)\s*$`)

// CommentSource reads a binding from the first line of a single
// workflow file, written as "# owner/name". A missing or malformed
// comment is simply no binding, not an error; only an unreadable file
// is diagnosed.
type CommentSource struct {
	Path   string
	ErrOut io.Writer
}

// Bindings returns at most one binding, named after the file itself.
func (s *CommentSource) Bindings() []Binding {
	f, err := os.Open(s.Path)
	if err != nil {
		fmt.Fprintf(s.ErrOut, "Error reading %s: %v\n", s.Path, err)
		return nil
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil
	}

	m := commentRefPattern.FindStringSubmatch(scanner.Text())
	if m == nil {
		return nil
	}

	return []Binding{{
		FileName: NormalizeFileName(filepath.Base(s.Path)),
		Template: m[1] + "/" + m[2],
	}}
}

// bindingSet accumulates bindings in insertion order while overwriting
// the reference when the same filename reappears.
type bindingSet struct {
	bindings []Binding
	index    map[string]int
}

func newBindingSet() *bindingSet {
	return &bindingSet{index: make(map[string]int)}
}

func (b *bindingSet) add(fileName, template string) {
	name := NormalizeFileName(fileName)
	if i, ok := b.index[name]; ok {
		b.bindings[i].Template = template
		return
	}
	b.index[name] = len(b.bindings)
	b.bindings = append(b.bindings, Binding{FileName: name, Template: template})
}
