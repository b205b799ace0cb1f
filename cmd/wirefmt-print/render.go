// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/wirefmt/lib/config"
	"github.com/bureau-foundation/wirefmt/lib/wirelog"
)

// levelColors are ANSI 256-color codes per level, trace through error.
var levelColors = [...]string{"245", "39", "42", "214", "196"}

// printer renders decoded records.
type printer struct {
	output   io.Writer
	format   config.OutputFormat
	relative bool
	styles   [len(levelColors)]lipgloss.Style
	dim      lipgloss.Style

	started bool
	first   uint64
	encoder *json.Encoder
}

// newPrinter returns a printer writing to output. profile selects the
// escape sequences used for styling; termenv.Ascii disables them.
func newPrinter(output io.Writer, format config.OutputFormat, relative bool, profile termenv.Profile) *printer {
	renderer := lipgloss.NewRenderer(output, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)

	p := &printer{
		output:   output,
		format:   format,
		relative: relative,
		dim:      renderer.NewStyle().Faint(true),
		encoder:  json.NewEncoder(output),
	}
	for level, color := range levelColors {
		style := renderer.NewStyle().Foreground(lipgloss.Color(color))
		if wirelog.Level(level) >= wirelog.LevelWarn {
			style = style.Bold(true)
		}
		p.styles[level] = style
	}
	return p
}

// jsonRecord is the line format for --format json.
type jsonRecord struct {
	Time    string `json:"time"`
	Micros  uint64 `json:"micros"`
	Level   string `json:"level"`
	Tag     uint16 `json:"tag"`
	Message string `json:"message"`
}

// print writes one record. Message text comes from the device, so
// escape sequences in it are stripped before it reaches a terminal.
func (p *printer) print(record wirelog.Record) error {
	if !p.started {
		p.started = true
		p.first = record.Micros
	}
	timestamp := p.timestamp(record)
	message := ansi.Strip(record.Message)

	if p.format == config.FormatJSON {
		return p.encoder.Encode(jsonRecord{
			Time:    timestamp,
			Micros:  record.Micros,
			Level:   record.Level.String(),
			Tag:     uint16(record.Tag),
			Message: message,
		})
	}

	level := strings.ToUpper(record.Level.String())
	level += strings.Repeat(" ", 5-len(level))
	_, err := fmt.Fprintf(p.output, "%s %s %s\n",
		p.dim.Render(timestamp), p.styles[record.Level].Render(level), message)
	return err
}

func (p *printer) timestamp(record wirelog.Record) string {
	if !p.relative {
		return record.Time().Format("2006-01-02T15:04:05.000000Z")
	}
	offset := time.Duration(record.Micros-p.first) * time.Microsecond
	if record.Micros < p.first {
		offset = -time.Duration(p.first-record.Micros) * time.Microsecond
	}
	return fmt.Sprintf("%+.6f", offset.Seconds())
}
