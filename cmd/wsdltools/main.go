package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/wsdltools"
	"github.com/erraggy/wsdltools/converter"
	"github.com/erraggy/wsdltools/wsdl"
	"github.com/erraggy/wsdltools/xsd"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("wsdltools v%s\n", wsdltools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		if err := handleConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "inspect":
		if err := handleInspect(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean %q?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or an empty string when nothing is close enough.
func suggestCommand(input string) string {
	commands := []string{"convert", "inspect", "version", "help"}
	best := ""
	bestDistance := 3
	for _, cmd := range commands {
		if d := editDistance(input, cmd); d < bestDistance {
			best = cmd
			bestDistance = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// importFlag collects repeated --import location=path pairs
type importFlag map[string]string

func (f importFlag) String() string {
	pairs := make([]string, 0, len(f))
	for location, path := range f {
		pairs = append(pairs, location+"="+path)
	}
	return strings.Join(pairs, ",")
}

func (f importFlag) Set(value string) error {
	location, path, ok := strings.Cut(value, "=")
	if !ok || location == "" || path == "" {
		return fmt.Errorf("expected location=path, got %q", value)
	}
	f[location] = path
	return nil
}

// convertFlags contains flags for the convert command
type convertFlags struct {
	output     string
	format     string
	title      string
	docVersion string
	strict     bool
	noInfo     bool
	soapExtras bool
	imports    importFlag
}

func setupConvertFlags() (*flag.FlagSet, *convertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &convertFlags{imports: make(importFlag)}

	fs.StringVar(&flags.output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.format, "f", "yaml", "output format: \"yaml\" or \"json\"")
	fs.StringVar(&flags.format, "format", "yaml", "output format: \"yaml\" or \"json\"")
	fs.StringVar(&flags.title, "title", "", "document title (default: WSDL service name)")
	fs.StringVar(&flags.docVersion, "doc-version", "", "document info.version (default: \"1.0.0\")")
	fs.BoolVar(&flags.strict, "strict", false, "fail on any conversion issues (even warnings)")
	fs.BoolVar(&flags.noInfo, "no-info", false, "suppress informational messages")
	fs.BoolVar(&flags.soapExtras, "soap-extras", false, "include SOAPAction header parameters")
	fs.Var(flags.imports, "import", "pre-fetched schema import as location=path (repeatable)")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: wsdltools convert [flags] <file|->\n\n")
		_, _ = fmt.Fprintf(fs.Output(), "Convert a WSDL 1.1 document to an OpenAPI 3.0 document.\n")
		_, _ = fmt.Fprintf(fs.Output(), "Use \"-\" to read the document from stdin.\n\n")
		_, _ = fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(fs.Output(), "\nExamples:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  wsdltools convert service.wsdl -o openapi.yaml\n")
		_, _ = fmt.Fprintf(fs.Output(), "  wsdltools convert -f json service.wsdl\n")
		_, _ = fmt.Fprintf(fs.Output(), "  wsdltools convert --import common.xsd=schemas/common.xsd service.wsdl\n")
		_, _ = fmt.Fprintf(fs.Output(), "  wsdltools convert --strict --title \"User API\" service.wsdl\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nNotes:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  - No network I/O is performed; supply import targets with --import\n")
		_, _ = fmt.Fprintf(fs.Output(), "  - Warnings indicate lossy or best-effort translations\n")
		_, _ = fmt.Fprintf(fs.Output(), "  - Always validate generated documents before deployment\n")
	}

	return fs, flags
}

func handleConvert(args []string) error {
	fs, flags := setupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one file path")
	}
	if flags.format != "yaml" && flags.format != "json" {
		return fmt.Errorf("unsupported output format %q (use \"yaml\" or \"json\")", flags.format)
	}

	wsdlPath := fs.Arg(0)

	// Create converter with options
	c := converter.New()
	c.StrictMode = flags.strict
	c.IncludeInfo = !flags.noInfo
	c.SOAPExtras = flags.soapExtras
	c.Title = flags.title
	c.Version = flags.docVersion
	for location, path := range flags.imports {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading import %s: %w", location, err)
		}
		if c.Imports == nil {
			c.Imports = make(map[string][]byte)
		}
		c.Imports[location] = data
	}

	startTime := time.Now()
	var (
		result *converter.ConversionResult
		err    error
	)
	if wsdlPath == "-" {
		data, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			return fmt.Errorf("reading stdin: %w", readErr)
		}
		result, err = c.ConvertBytes(data)
	} else {
		result, err = c.Convert(wsdlPath)
	}
	totalTime := time.Since(startTime)
	if err != nil {
		if result == nil {
			return fmt.Errorf("converting file: %w", err)
		}
		// Strict mode returns the populated result with the error
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	// Print results
	fmt.Fprintf(os.Stderr, "WSDL to OpenAPI Converter\n")
	fmt.Fprintf(os.Stderr, "=========================\n\n")
	fmt.Fprintf(os.Stderr, "wsdltools version: %s\n", wsdltools.Version())
	fmt.Fprintf(os.Stderr, "WSDL Document: %s\n", wsdlPath)
	fmt.Fprintf(os.Stderr, "Service: %s\n", result.ServiceName)
	fmt.Fprintf(os.Stderr, "Operations: %d\n", result.OperationCount)
	fmt.Fprintf(os.Stderr, "Total Time: %v\n\n", totalTime)

	// Print issues
	if len(result.Issues) > 0 {
		fmt.Fprintf(os.Stderr, "Conversion Issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(os.Stderr, "  %s\n", issue.String())
		}
		fmt.Fprintln(os.Stderr)
	}

	// Print summary
	if result.Success && err == nil {
		fmt.Fprintf(os.Stderr, "✓ Conversion successful")
		if result.InfoCount > 0 || result.WarningCount > 0 {
			fmt.Fprintf(os.Stderr, " (%d info, %d warnings)", result.InfoCount, result.WarningCount)
		}
		fmt.Fprintln(os.Stderr)
	} else {
		fmt.Fprintf(os.Stderr, "✗ Conversion completed with %d critical issue(s), %d warning(s)\n",
			result.CriticalCount, result.WarningCount)
	}

	// Write output
	data, marshalErr := marshalDocument(result.Document, flags.format)
	if marshalErr != nil {
		return fmt.Errorf("marshaling generated document: %w", marshalErr)
	}

	if flags.output != "" {
		if writeErr := os.WriteFile(flags.output, data, 0600); writeErr != nil {
			return fmt.Errorf("writing output file: %w", writeErr)
		}
		fmt.Fprintf(os.Stderr, "\nOutput written to: %s\n", flags.output)
	} else {
		if _, writeErr := os.Stdout.Write(data); writeErr != nil {
			return fmt.Errorf("writing generated document to stdout: %w", writeErr)
		}
	}

	if err != nil || !result.Success {
		os.Exit(1)
	}
	return nil
}

// marshalDocument marshals a document to bytes in the requested format
func marshalDocument(doc any, format string) ([]byte, error) {
	if format == "json" {
		return json.MarshalIndent(doc, "", "  ")
	}
	return yaml.Marshal(doc)
}

// inspectFlags contains flags for the inspect command
type inspectFlags struct {
	asJSON bool
}

func setupInspectFlags() (*flag.FlagSet, *inspectFlags) {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	flags := &inspectFlags{}

	fs.BoolVar(&flags.asJSON, "json", false, "emit the summary as JSON")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: wsdltools inspect [flags] <file>\n\n")
		_, _ = fmt.Fprintf(fs.Output(), "Summarize the services, operations, and schema types of a WSDL document.\n\n")
		_, _ = fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(fs.Output(), "\nExamples:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  wsdltools inspect service.wsdl\n")
		_, _ = fmt.Fprintf(fs.Output(), "  wsdltools inspect --json service.wsdl\n")
	}

	return fs, flags
}

// inspectSummary is the structured output of the inspect command
type inspectSummary struct {
	Service         string   `json:"service"`
	TargetNamespace string   `json:"targetNamespace"`
	Operations      []string `json:"operations"`
	Types           []string `json:"types"`
	Endpoints       []string `json:"endpoints"`
	Warnings        []string `json:"warnings,omitempty"`
}

func handleInspect(args []string) error {
	fs, flags := setupInspectFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("inspect command requires exactly one file path")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	defs, err := wsdl.ParseBytes(data)
	if err != nil {
		return fmt.Errorf("parsing WSDL: %w", err)
	}
	graph, resolveWarnings, err := xsd.Resolve(defs.Schemas)
	if err != nil {
		return fmt.Errorf("resolving schema types: %w", err)
	}
	model, buildWarnings, err := wsdl.BuildModel(defs, graph)
	if err != nil {
		return fmt.Errorf("building service model: %w", err)
	}

	summary := inspectSummary{
		Service:         model.Service,
		TargetNamespace: model.TargetNamespace,
		Types:           graph.Names(),
	}
	for _, op := range model.Operations {
		kind := "request-response"
		if op.Output == nil {
			kind = "one-way"
		}
		summary.Operations = append(summary.Operations, fmt.Sprintf("%s (%s, %s-style)", op.Name, kind, op.Style))
	}
	for _, ep := range model.Endpoints {
		summary.Endpoints = append(summary.Endpoints, fmt.Sprintf("%s: %s", ep.Port, ep.Location))
	}
	for _, w := range append(resolveWarnings, buildWarnings...) {
		summary.Warnings = append(summary.Warnings, w.String())
	}

	if flags.asJSON {
		out, marshalErr := json.MarshalIndent(summary, "", "  ")
		if marshalErr != nil {
			return fmt.Errorf("marshaling summary: %w", marshalErr)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("WSDL Document Inspector\n")
	fmt.Printf("=======================\n\n")
	fmt.Printf("Service: %s\n", summary.Service)
	fmt.Printf("Target Namespace: %s\n", summary.TargetNamespace)
	fmt.Printf("Operations: %d\n", len(summary.Operations))
	for _, op := range summary.Operations {
		fmt.Printf("  - %s\n", op)
	}
	fmt.Printf("Schema Types: %d\n", len(summary.Types))
	for _, name := range summary.Types {
		fmt.Printf("  - %s\n", name)
	}
	fmt.Printf("Endpoints: %d\n", len(summary.Endpoints))
	for _, ep := range summary.Endpoints {
		fmt.Printf("  - %s\n", ep)
	}
	if len(summary.Warnings) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, w := range summary.Warnings {
			fmt.Printf("  %s\n", w)
		}
	}
	return nil
}

func printUsage() {
	fmt.Printf("wsdltools - WSDL to OpenAPI translation tools\n\n")
	fmt.Printf("Usage: wsdltools <command> [arguments]\n\n")
	fmt.Printf("Commands:\n")
	fmt.Printf("  convert   Convert a WSDL document to OpenAPI 3.0\n")
	fmt.Printf("  inspect   Summarize the contents of a WSDL document\n")
	fmt.Printf("  version   Print version information\n")
	fmt.Printf("  help      Print this help message\n\n")
	fmt.Printf("Run 'wsdltools <command> -h' for command-specific help.\n")
}
