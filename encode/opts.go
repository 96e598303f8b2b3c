package encode

import "github.com/nodeluna/luco/format"

type EncodeOption func(*EncState)

// EncodeFormat selects the output format; the default is luco.
func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// Indent configures the indentation unit as a (character, count) pair.
// The default is four spaces.
func Indent(ch byte, n int) EncodeOption {
	return func(es *EncState) {
		es.indentCh = ch
		es.indentN = n
	}
}

// EncodeColors enables colorized luco output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}
