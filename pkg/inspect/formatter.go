package inspect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/screen-co/libhyscandriver-sub000/pkg/driver"
	"github.com/screen-co/libhyscandriver-sub000/pkg/schema"
	"github.com/screen-co/libhyscandriver-sub000/pkg/version"
)

// Formatter formats schemas for display.
type Formatter struct {
	// ShowMetadata includes type, access and range information
	ShowMetadata bool

	// ShowHidden includes keys marked hidden
	ShowHidden bool

	// IndentWidth is the number of spaces per indent level
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowMetadata: true,
		IndentWidth:  2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	return strings.Repeat(" ", depth*width) + content
}

// FormatValue formats the default value of a key.
func (f *Formatter) FormatValue(key schema.Key) string {
	switch key.Type {
	case schema.TypeBoolean:
		return strconv.FormatBool(key.Default.Bool)
	case schema.TypeInteger:
		return strconv.FormatInt(key.Default.Int, 10)
	case schema.TypeDouble:
		return strconv.FormatFloat(key.Default.Double, 'g', -1, 64)
	case schema.TypeString:
		return strconv.Quote(key.Default.Str)
	case schema.TypeEnum:
		for _, v := range key.Enum {
			if v.Value == key.Default.Int {
				return v.ID
			}
		}
		return fmt.Sprintf("enum(%d)", key.Default.Int)
	default:
		return "null"
	}
}

// FormatRange formats the range of a key, or "" when it has none.
func FormatRange(key schema.Key) string {
	switch {
	case key.IntRange != nil:
		r := key.IntRange
		return fmt.Sprintf("[%d, %d] step %d", r.Min, r.Max, r.Step)
	case key.DblRange != nil:
		r := key.DblRange
		return fmt.Sprintf("[%g, %g] step %g", r.Min, r.Max, r.Step)
	case len(key.Enum) > 0:
		ids := make([]string, len(key.Enum))
		for i, v := range key.Enum {
			ids[i] = v.ID
		}
		return "{" + strings.Join(ids, ", ") + "}"
	default:
		return ""
	}
}

// FormatAccess formats access flags for display.
func FormatAccess(access schema.Access) string {
	switch {
	case access.CanRead() && access.CanWrite():
		return "read-write"
	case access.CanRead():
		return "read-only"
	case access.CanWrite():
		return "write-only"
	default:
		return "none"
	}
}

// KeyRow represents a formatted key for display.
type KeyRow struct {
	Path   string
	Value  string
	Type   string
	Access string
	Range  string
}

// Rows returns the displayable keys of s below prefix, in schema order.
// An empty prefix selects every key.
func (f *Formatter) Rows(s *schema.Schema, prefix string) []KeyRow {
	var rows []KeyRow
	for _, p := range s.Keys() {
		if !Match(prefix, p) {
			continue
		}
		key, ok := s.Key(p)
		if !ok || (key.Access.IsHidden() && !f.ShowHidden) {
			continue
		}
		rows = append(rows, KeyRow{
			Path:   p,
			Value:  f.FormatValue(key),
			Type:   key.Type.String(),
			Access: FormatAccess(key.Access),
			Range:  FormatRange(key),
		})
	}
	return rows
}

// FormatKeyTable formats rows as a table with aligned value columns.
func (f *Formatter) FormatKeyTable(rows []KeyRow) string {
	if len(rows) == 0 {
		return f.Indent(1, "(no keys)") + "\n"
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row.Path))
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(f.Indent(1, fmt.Sprintf("%-*s  %s", width, row.Path, row.Value)))
		if f.ShowMetadata {
			sb.WriteString(fmt.Sprintf(" (%s, %s", row.Type, row.Access))
			if row.Range != "" {
				sb.WriteString(", " + row.Range)
			}
			sb.WriteString(")")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatSchema formats the keys of s below prefix.
func (f *Formatter) FormatSchema(s *schema.Schema, prefix string) string {
	return f.FormatKeyTable(f.Rows(s, prefix))
}

// FormatInfo formats driver information.
func (f *Formatter) FormatInfo(info driver.Info) string {
	var sb strings.Builder
	sb.WriteString(info.Name + "\n")
	if info.Description != "" {
		sb.WriteString(f.Indent(1, "description: "+info.Description) + "\n")
	}
	sb.WriteString(f.Indent(1, "version:     "+info.Version) + "\n")
	sb.WriteString(f.Indent(1, "id:          "+info.ID) + "\n")
	sb.WriteString(f.Indent(1, "api:         "+version.Code(info.APIVersion).String()) + "\n")
	return sb.String()
}

// FormatSummary formats a device summary as one line.
func FormatSummary(d driver.DeviceSummary) string {
	line := fmt.Sprintf("%s  %s", d.ID, d.URI)
	if d.Name != "" {
		line += "  " + d.Name
	}
	if d.Model != "" {
		line += " (" + d.Model + ")"
	}
	if d.Multi {
		line += " [multi]"
	}
	return line
}
