package xmlpull

// Options holds parser configuration values.
// The zero value means no overrides.
type Options struct {
	charset        string
	defaultCharset string
	bufferSize     int

	charsetSet        bool
	defaultCharsetSet bool
	bufferSizeSet     bool
}

// JoinOptions combines multiple option sets into one in declaration order.
// Later options override earlier ones when set.
func JoinOptions(srcs ...Options) Options {
	var merged Options
	for _, src := range srcs {
		merged.merge(src)
	}
	return merged
}

func (opts *Options) merge(src Options) {
	if src.charsetSet {
		opts.charset = src.charset
		opts.charsetSet = true
	}
	if src.defaultCharsetSet {
		opts.defaultCharset = src.defaultCharset
		opts.defaultCharsetSet = true
	}
	if src.bufferSizeSet {
		opts.bufferSize = src.bufferSize
		opts.bufferSizeSet = true
	}
}

// WithCharset fixes the document charset. The encoding pseudo-attribute of
// the XML declaration is then ignored. An empty label means auto-detect.
func WithCharset(label string) Options {
	return Options{charset: label, charsetSet: true}
}

// DefaultCharset sets the charset used when neither WithCharset nor the
// XML declaration names one. It defaults to UTF-8.
func DefaultCharset(label string) Options {
	return Options{defaultCharset: label, defaultCharsetSet: true}
}

// BufferSize sets the initial window size for streaming input.
// The window grows past it when a single token does not fit.
func BufferSize(value int) Options {
	return Options{bufferSize: value, bufferSizeSet: true}
}

// Charset reports the WithCharset label, if set.
func (opts Options) Charset() (string, bool) {
	return opts.charset, opts.charsetSet
}

// DefaultCharset reports the DefaultCharset label, if set.
func (opts Options) DefaultCharset() (string, bool) {
	return opts.defaultCharset, opts.defaultCharsetSet
}

// BufferSize reports the BufferSize value, if set.
func (opts Options) BufferSize() (int, bool) {
	return opts.bufferSize, opts.bufferSizeSet
}

type parserOptions struct {
	charset        string
	defaultCharset string
	bufferSize     int
}

func resolveOptions(opts Options) parserOptions {
	resolved := parserOptions{defaultCharset: defaultCharsetLabel, bufferSize: defaultBufferSize}
	if value, ok := opts.Charset(); ok {
		resolved.charset = value
	}
	if value, ok := opts.DefaultCharset(); ok && value != "" {
		resolved.defaultCharset = value
	}
	if value, ok := opts.BufferSize(); ok && value > 0 {
		resolved.bufferSize = value
	}
	if resolved.bufferSize < minBufferSize {
		resolved.bufferSize = minBufferSize
	}
	return resolved
}
