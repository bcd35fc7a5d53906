// Package rolefile parses and validates role selection files. A role file is
// line-oriented text: blank lines and # comments are ignored, an optional
// "formation: <name>" header expands a preset, and every other line names a
// role from the catalogue followed by optional key=value annotations
// (pin=<player>, exclude=<player>, foot=left|right). Values containing
// whitespace are double-quoted.
package rolefile

import (
	"os"
	"strings"

	"github.com/gaffertool/gaffer/internal/roles"
	"github.com/gaffertool/gaffer/internal/squad"
)

// Selection is one validated role selection with its filter hints
type Selection struct {
	Role    squad.RoleID
	Pin     string
	Exclude []string
	Foot    squad.Footedness
	Line    int
}

// Content is the parsed, validated representation of a role file
type Content struct {
	Formation  string
	Selections []Selection
}

// RoleIDs returns the selected role identifiers in file order
func (c *Content) RoleIDs() []squad.RoleID {
	ids := make([]squad.RoleID, len(c.Selections))
	for i, sel := range c.Selections {
		ids[i] = sel.Role
	}
	return ids
}

// Filters builds the solver filter set declared by the file's annotations
func (c *Content) Filters() squad.FilterSet {
	var fs squad.FilterSet
	for _, sel := range c.Selections {
		if sel.Pin != "" {
			fs = append(fs, squad.PinFilter{Role: sel.Role, PlayerName: sel.Pin})
		}
		for _, name := range sel.Exclude {
			fs = append(fs, squad.RoleExcludeFilter{Role: sel.Role, PlayerName: name})
		}
		if sel.Foot != "" {
			fs = append(fs, squad.FootFilter{Role: sel.Role, Foot: sel.Foot})
		}
	}
	return fs
}

// ApplyFormation merges a formation preset into content that declared none:
// every preset role becomes a selection and the file's explicit selections
// annotate their preset slots. Content that already carries a formation, or an
// empty name, is returned unchanged.
func (c *Content) ApplyFormation(name string) (*Content, error) {
	if name == "" || c.Formation != "" {
		return c, nil
	}
	preset, ok := roles.FormationRoles(name)
	if !ok {
		return nil, squad.NewError(squad.ErrCodeValidation,
			"unknown formation %q (available: %s)", name, strings.Join(roles.FormationNames(), ", "))
	}

	merged := &Content{Formation: name}
	index := make(map[squad.RoleID]int, len(preset))
	for _, id := range preset {
		index[id] = len(merged.Selections)
		merged.Selections = append(merged.Selections, Selection{Role: id})
	}
	for _, sel := range c.Selections {
		i, ok := index[sel.Role]
		if !ok {
			return nil, squad.NewError(squad.ErrCodeValidation,
				"role is not part of formation %s", name).WithRole(sel.Role).WithLine(sel.Line)
		}
		merged.Selections[i] = sel
	}
	return merged, nil
}

// ParseRoleFile reads a role file from disk and parses its content. The file
// handle is scoped to this call and released on every exit path.
func ParseRoleFile(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, squad.NewError(squad.ErrCodeIO, "cannot read role file %s", path).WithCause(err)
	}
	return ParseRoleFileContent(string(data))
}

// ParseRoleFileContent parses and validates a role file payload. It is a pure
// function over text: no I/O, same input same output.
func ParseRoleFileContent(text string) (*Content, error) {
	content := &Content{}
	selectionIndex := make(map[squad.RoleID]int)
	sawSelection := false

	for lineNo, raw := range strings.Split(text, "\n") {
		line := stripComment(raw)
		if line == "" {
			continue
		}
		no := lineNo + 1

		if name, ok := strings.CutPrefix(line, "formation:"); ok {
			if content.Formation != "" {
				return nil, squad.NewError(squad.ErrCodeParse, "formation declared twice").WithLine(no)
			}
			if sawSelection {
				return nil, squad.NewError(squad.ErrCodeParse, "formation header must precede role selections").WithLine(no)
			}
			name = strings.TrimSpace(name)
			preset, ok := roles.FormationRoles(name)
			if !ok {
				return nil, squad.NewError(squad.ErrCodeParse,
					"unknown formation %q (available: %s)", name, strings.Join(roles.FormationNames(), ", ")).WithLine(no)
			}
			content.Formation = name
			for _, id := range preset {
				selectionIndex[id] = len(content.Selections)
				content.Selections = append(content.Selections, Selection{Role: id, Line: no})
			}
			continue
		}

		fields, err := splitFields(line, no)
		if err != nil {
			return nil, err
		}
		// A line of bare quotes survives comment stripping but yields no fields
		if len(fields) == 0 {
			return nil, squad.NewError(squad.ErrCodeParse, "empty role selection").WithLine(no)
		}
		sawSelection = true

		roleID := squad.RoleID(fields[0])
		var sel *Selection
		if content.Formation != "" {
			// Under a formation header, role lines annotate preset slots
			i, ok := selectionIndex[roleID]
			if !ok {
				return nil, squad.NewError(squad.ErrCodeValidation,
					"role is not part of formation %s", content.Formation).WithRole(roleID).WithLine(no)
			}
			if content.Selections[i].annotated() {
				return nil, squad.NewError(squad.ErrCodeValidation, "role annotated twice").WithRole(roleID).WithLine(no)
			}
			sel = &content.Selections[i]
		} else {
			content.Selections = append(content.Selections, Selection{Role: roleID, Line: no})
			sel = &content.Selections[len(content.Selections)-1]
		}

		if err := parseAnnotations(sel, fields[1:], no); err != nil {
			return nil, err
		}
	}

	if err := ValidateRoles(content.Selections); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *Selection) annotated() bool {
	return s.Pin != "" || len(s.Exclude) > 0 || s.Foot != ""
}

func parseAnnotations(sel *Selection, fields []string, line int) error {
	for _, field := range fields {
		key, value, ok := strings.Cut(field, "=")
		if !ok || value == "" {
			return squad.NewError(squad.ErrCodeParse, "malformed annotation %q, want key=value", field).
				WithRole(sel.Role).WithLine(line)
		}
		switch key {
		case "pin":
			if sel.Pin != "" {
				return squad.NewError(squad.ErrCodeParse, "role pinned twice").WithRole(sel.Role).WithLine(line)
			}
			sel.Pin = value
		case "exclude":
			sel.Exclude = append(sel.Exclude, value)
		case "foot":
			foot := squad.Footedness(value)
			if foot != squad.LeftFooted && foot != squad.RightFooted {
				return squad.NewError(squad.ErrCodeParse, "foot must be left or right, got %q", value).
					WithRole(sel.Role).WithLine(line)
			}
			if sel.Foot != "" {
				return squad.NewError(squad.ErrCodeParse, "foot declared twice").WithRole(sel.Role).WithLine(line)
			}
			sel.Foot = foot
		default:
			return squad.NewError(squad.ErrCodeParse, "unknown annotation key %q", key).
				WithRole(sel.Role).WithLine(line)
		}
	}
	return nil
}

// stripComment removes a trailing comment and surrounding whitespace; a # that
// appears inside a quoted value is kept.
func stripComment(line string) string {
	inQuote := false
	for i, r := range line {
		switch r {
		case '"':
			inQuote = !inQuote
		case '#':
			if !inQuote {
				return strings.TrimSpace(line[:i])
			}
		}
	}
	return strings.TrimSpace(line)
}

// splitFields splits a selection line on whitespace, honoring double quotes so
// annotation values may contain spaces (pin="Alice Smith").
func splitFields(line string, lineNo int) ([]string, error) {
	var fields []string
	var current strings.Builder
	inQuote := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
		case !inQuote && (r == ' ' || r == '\t'):
			if current.Len() > 0 {
				fields = append(fields, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if inQuote {
		return nil, squad.NewError(squad.ErrCodeParse, "unterminated quote").WithLine(lineNo)
	}
	if current.Len() > 0 {
		fields = append(fields, current.String())
	}
	return fields, nil
}
