package nav

import (
	"fmt"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docsite/internal/errors"
)

// HiddenSentinel is the reserved title marking an entry as hidden in the
// user-authored pages list. It exists only at the configuration boundary;
// past decoding, hidden-ness is carried by PageEntry.Hidden.
const HiddenSentinel = "**HIDDEN**"

// PageEntry is one user-specified line of the pages configuration: a
// source path plus optional title and child title. Empty strings mean the
// field was not given and the title is derived from the path.
type PageEntry struct {
	Path       string
	Title      string
	ChildTitle string
	Hidden     bool
}

// NewPageEntry builds an entry from the 1-3 positional fields of a pages
// config line. A single bare path is the one-field form.
func NewPageEntry(fields ...string) (PageEntry, error) {
	if len(fields) < 1 || len(fields) > 3 {
		return PageEntry{}, derrors.Newf(derrors.CategoryValidation, derrors.SeverityFatal,
			"pages entry contained %d items, expected 1, 2 or 3 strings", len(fields))
	}
	e := PageEntry{Path: fields[0]}
	if len(fields) > 1 {
		e.Title = fields[1]
	}
	if len(fields) > 2 {
		e.ChildTitle = fields[2]
	}
	if e.Title == HiddenSentinel {
		e.Title = ""
		e.Hidden = true
	}
	if e.Path == "" {
		return PageEntry{}, derrors.New(derrors.CategoryValidation, derrors.SeverityFatal,
			"pages entry has an empty path")
	}
	return e, nil
}

// UnmarshalYAML decodes the two shapes a pages line may take: a bare
// scalar path, or a sequence of 1-3 strings (path, title, child title).
func (e *PageEntry) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var p string
		if err := value.Decode(&p); err != nil {
			return fmt.Errorf("decoding pages entry: %w", err)
		}
		entry, err := NewPageEntry(p)
		if err != nil {
			return err
		}
		*e = entry
		return nil
	case yaml.SequenceNode:
		var fields []string
		if err := value.Decode(&fields); err != nil {
			return fmt.Errorf("decoding pages entry: %w", err)
		}
		entry, err := NewPageEntry(fields...)
		if err != nil {
			return err
		}
		*e = entry
		return nil
	default:
		return derrors.New(derrors.CategoryValidation, derrors.SeverityFatal,
			"pages entry must be a string or a list of 1-3 strings")
	}
}
