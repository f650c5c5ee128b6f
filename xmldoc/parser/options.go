package parser

import "fmt"

// DocumentationMode controls how much work the lexer puts into
// documentation content: None keeps trivia coarse and suppresses
// lexical diagnostics, Parse builds the full tree without diagnostics,
// Diagnose additionally attaches diagnostics to malformed tokens.
type DocumentationMode int

const (
	DocumentationModeNone DocumentationMode = iota
	DocumentationModeParse
	DocumentationModeDiagnose
)

func (m DocumentationMode) String() string {
	switch m {
	case DocumentationModeNone:
		return "None"
	case DocumentationModeParse:
		return "Parse"
	case DocumentationModeDiagnose:
		return "Diagnose"
	}
	return "Unknown"
}

// SourceKind distinguishes complete documents from interactive
// fragments. Interactive fragments may end mid-construct without the
// missing-token diagnostics a regular document would get.
type SourceKind int

const (
	SourceKindRegular SourceKind = iota
	SourceKindInteractive
)

func (k SourceKind) String() string {
	switch k {
	case SourceKindRegular:
		return "Regular"
	case SourceKindInteractive:
		return "Interactive"
	}
	return "Unknown"
}

// ParseOptions is an immutable settings record. Use the With* methods
// to derive a new value differing in one field; values produced by
// NewParseOptions or With* are always valid.
type ParseOptions struct {
	DocumentationMode DocumentationMode
	SourceKind        SourceKind
}

func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		DocumentationMode: DocumentationModeDiagnose,
		SourceKind:        SourceKindRegular,
	}
}

func NewParseOptions(mode DocumentationMode, kind SourceKind) (ParseOptions, error) {
	opts := ParseOptions{DocumentationMode: mode, SourceKind: kind}
	if err := opts.Validate(); err != nil {
		return ParseOptions{}, err
	}
	return opts, nil
}

func (o ParseOptions) Validate() error {
	switch o.DocumentationMode {
	case DocumentationModeNone, DocumentationModeParse, DocumentationModeDiagnose:
	default:
		return fmt.Errorf("invalid documentation mode %d", int(o.DocumentationMode))
	}
	switch o.SourceKind {
	case SourceKindRegular, SourceKindInteractive:
	default:
		return fmt.Errorf("invalid source kind %d", int(o.SourceKind))
	}
	return nil
}

// WithDocumentationMode returns a copy with the documentation mode
// replaced. The receiver is not modified.
func (o ParseOptions) WithDocumentationMode(mode DocumentationMode) (ParseOptions, error) {
	next := o
	next.DocumentationMode = mode
	if err := next.Validate(); err != nil {
		return ParseOptions{}, err
	}
	return next, nil
}

// WithSourceKind returns a copy with the source kind replaced. The
// receiver is not modified.
func (o ParseOptions) WithSourceKind(kind SourceKind) (ParseOptions, error) {
	next := o
	next.SourceKind = kind
	if err := next.Validate(); err != nil {
		return ParseOptions{}, err
	}
	return next, nil
}
