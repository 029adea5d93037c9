package converter

import (
	"fmt"
	"io"

	"github.com/erraggy/wsdltools/internal/options"
	"github.com/erraggy/wsdltools/wsdl"
	"github.com/erraggy/wsdltools/wsdlerrors"
)

// Option is a function that configures a conversion operation
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion operation
type convertConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	// Configuration options
	strictMode  bool
	includeInfo bool
	soapExtras  bool
	title       string
	version     string
	imports     map[string][]byte
	logger      wsdl.Logger
}

// ConvertWithOptions converts a WSDL document using functional options,
// combining input source selection and configuration in one call.
//
// Example:
//
//	result, err := converter.ConvertWithOptions(
//	    converter.WithFilePath("service.wsdl"),
//	    converter.WithTitle("User Service API"),
//	)
func ConvertWithOptions(opts ...Option) (*ConversionResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, &wsdlerrors.ConfigError{Message: "invalid options", Cause: err}
	}

	c := &Converter{
		StrictMode:  cfg.strictMode,
		IncludeInfo: cfg.includeInfo,
		SOAPExtras:  cfg.soapExtras,
		Title:       cfg.title,
		Version:     cfg.version,
		Imports:     cfg.imports,
		Logger:      cfg.logger,
	}

	switch {
	case cfg.filePath != nil:
		return c.Convert(*cfg.filePath)
	case cfg.reader != nil:
		data, readErr := io.ReadAll(cfg.reader)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read WSDL document: %w", readErr)
		}
		return c.ConvertBytes(data)
	case cfg.bytes != nil:
		return c.ConvertBytes(cfg.bytes)
	default:
		// Unreachable: applyOptions validates an input source is set
		return nil, &wsdlerrors.ConfigError{Message: "no input source specified"}
	}
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		includeInfo: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"converter: must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"converter: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a WSDL file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *convertConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *convertConfig) error {
		if r == nil {
			return fmt.Errorf("converter: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *convertConfig) error {
		if data == nil {
			return fmt.Errorf("converter: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithImport supplies the pre-fetched bytes of an imported or included
// schema document. The converter performs no network or file I/O to fetch
// import targets; every xsd:import the document relies on must be supplied
// this way. May be repeated.
func WithImport(location string, data []byte) Option {
	return func(cfg *convertConfig) error {
		if location == "" {
			return fmt.Errorf("converter: import location cannot be empty")
		}
		if data == nil {
			return fmt.Errorf("converter: import data cannot be nil")
		}
		if cfg.imports == nil {
			cfg.imports = make(map[string][]byte)
		}
		cfg.imports[location] = data
		return nil
	}
}

// WithTitle overrides the generated info.title.
// Default: the WSDL service name.
func WithTitle(title string) Option {
	return func(cfg *convertConfig) error {
		cfg.title = title
		return nil
	}
}

// WithVersion sets the generated info.version.
// Default: "1.0.0".
func WithVersion(version string) Option {
	return func(cfg *convertConfig) error {
		if version == "" {
			return fmt.Errorf("converter: version cannot be empty")
		}
		cfg.version = version
		return nil
	}
}

// WithSOAPExtras enables SOAP transport details that have no REST
// equivalent, currently SOAPAction header parameters on each operation.
// Default: false
func WithSOAPExtras(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.soapExtras = enabled
		return nil
	}
}

// WithStrictMode causes conversion to return an error when any warnings
// are produced, alongside the populated result.
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeInfo controls whether informational messages are kept on the
// result.
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithLogger sets a structured logger for debug output during conversion.
// By default, no logging is performed.
//
// The logger interface is compatible with log/slog, zap, and zerolog.
// Use xsd.NewSlogAdapter to wrap a *slog.Logger.
func WithLogger(l wsdl.Logger) Option {
	return func(cfg *convertConfig) error {
		cfg.logger = l
		return nil
	}
}
