package display

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Color is an ANSI colour used for a card's title bar
type Color string

const (
	ColorGreen  Color = "\033[32m"
	ColorRed    Color = "\033[31m"
	ColorBlue   Color = "\033[34m"
	ColorOrange Color = "\033[33m"
	ColorGray   Color = "\033[90m"
	colorReset        = "\033[0m"
)

const maxFieldValue = 1000

// Field is a labelled value on a card
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Card is a terminal-rendered block of text
type Card struct {
	Title       string
	Description string
	Color       Color
	Fields      []Field
	Footer      string
	Timestamp   time.Time
}

// AddField appends a field, skipping empty values
func (c *Card) AddField(name, value string, inline bool) *Card {
	value = strings.TrimSpace(value)
	if value == "" {
		return c
	}
	if len(value) > maxFieldValue {
		value = value[:maxFieldValue-3] + "..."
	}
	c.Fields = append(c.Fields, Field{Name: name, Value: value, Inline: inline})
	return c
}

// Field returns the value of the named field, or "" when absent
func (c *Card) Field(name string) string {
	for _, f := range c.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// Render writes the card to w. Inline fields share a line; colour codes are
// omitted for the "plain" theme.
func (c *Card) Render(w io.Writer, theme string) error {
	var b strings.Builder

	title := c.Title
	if theme != ThemePlain && c.Color != "" {
		title = string(c.Color) + title + colorReset
	}
	fmt.Fprintf(&b, "== %s ==\n", title)
	if c.Description != "" {
		fmt.Fprintf(&b, "%s\n", c.Description)
	}

	var inline []string
	flush := func() {
		if len(inline) > 0 {
			fmt.Fprintf(&b, "  %s\n", strings.Join(inline, "  |  "))
			inline = inline[:0]
		}
	}
	for _, f := range c.Fields {
		if f.Inline {
			inline = append(inline, f.Name+": "+f.Value)
			continue
		}
		flush()
		fmt.Fprintf(&b, "  %s: %s\n", f.Name, f.Value)
	}
	flush()

	if c.Footer != "" || !c.Timestamp.IsZero() {
		footer := c.Footer
		if !c.Timestamp.IsZero() {
			if footer != "" {
				footer += " | "
			}
			footer += c.Timestamp.Format(time.RFC3339)
		}
		fmt.Fprintf(&b, "-- %s\n", footer)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
