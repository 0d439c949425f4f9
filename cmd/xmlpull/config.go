package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jacoelho/xmlpull/pkg/xmlpull"
)

type settings struct {
	configPath     string
	charset        string
	defaultCharset string
	bufferSize     int
	stream         bool
	decode         bool
	trim           bool
	verbosity      int
	cpuProfile     string
	memProfile     string
}

func defaultSettings() settings {
	return settings{decode: true}
}

// profile is the YAML form of the settings. Pointer fields distinguish an
// explicit false from an absent key.
type profile struct {
	Charset        string `yaml:"charset"`
	DefaultCharset string `yaml:"default_charset"`
	BufferSize     int    `yaml:"buffer_size"`
	Stream         *bool  `yaml:"stream"`
	Decode         *bool  `yaml:"decode"`
	Trim           *bool  `yaml:"trim"`
	Verbosity      int    `yaml:"verbosity"`
}

func loadProfile(path string) (profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return profile{}, fmt.Errorf("failed to read config file: %w", err)
	}
	var p profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return profile{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if p.BufferSize < 0 {
		return profile{}, fmt.Errorf("invalid config: buffer_size must not be negative, got %d", p.BufferSize)
	}
	return p, nil
}

// apply copies profile values into s for every flag the command line did
// not set.
func (s *settings) apply(p profile, changed func(string) bool) {
	if p.Charset != "" && !changed("charset") {
		s.charset = p.Charset
	}
	if p.DefaultCharset != "" && !changed("default-charset") {
		s.defaultCharset = p.DefaultCharset
	}
	if p.BufferSize != 0 && !changed("buffer-size") {
		s.bufferSize = p.BufferSize
	}
	if p.Stream != nil && !changed("stream") {
		s.stream = *p.Stream
	}
	if p.Decode != nil && !changed("decode") {
		s.decode = *p.Decode
	}
	if p.Trim != nil && !changed("trim") {
		s.trim = *p.Trim
	}
	if p.Verbosity != 0 && !changed("verbose") {
		s.verbosity = p.Verbosity
	}
}

func (s *settings) parserOptions() []xmlpull.Options {
	var opts []xmlpull.Options
	if s.charset != "" {
		opts = append(opts, xmlpull.WithCharset(s.charset))
	}
	if s.defaultCharset != "" {
		opts = append(opts, xmlpull.DefaultCharset(s.defaultCharset))
	}
	if s.bufferSize > 0 {
		opts = append(opts, xmlpull.BufferSize(s.bufferSize))
	}
	return opts
}
