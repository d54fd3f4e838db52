// Command xmlselect parses an XML document and prints the serialized
// matches of an XPath expression, one per line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/xmldom"
	xmlerrors "github.com/jacoelho/xmldom/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xmlselect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	expr := fs.String("xpath", "", "XPath expression to evaluate")
	text := fs.Bool("text", false, "print string values instead of XML fragments")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s --xpath <expression> <document.xml>\n\n", os.Args[0]),
			writeln(stderr, "Evaluates an XPath expression against an XML document."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *expr == "" {
		if err := writeln(stderr, "error: --xpath is required"); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}

	remaining := fs.Args()
	if len(remaining) != 1 {
		if err := writeln(stderr, "error: exactly one XML file argument is required"); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}
	xmlPath := remaining[0]

	data, err := os.ReadFile(xmlPath)
	if err != nil {
		if writeErr := writef(stderr, "error reading %s: %v\n", xmlPath, err); writeErr != nil {
			return 1
		}
		return 1
	}

	doc, err := xmldom.ParseData(data, 0)
	if err != nil {
		if writeErr := writef(stderr, "error parsing %s: %v\n", xmlPath, err); writeErr != nil {
			return 1
		}
		return 1
	}
	defer doc.Close()

	if doc.RootElement() == nil {
		if writeErr := writef(stderr, "%s is not well-formed XML\n", xmlPath); writeErr != nil {
			return 1
		}
		return 1
	}

	nodes, err := doc.NodesForXPath(*expr)
	if err != nil {
		if x, ok := xmlerrors.AsXML(err); ok {
			if writeErr := writef(stderr, "error evaluating %q: %s\n", *expr, x.Error()); writeErr != nil {
				return 1
			}
			return 1
		}
		if writeErr := writef(stderr, "error evaluating %q: %v\n", *expr, err); writeErr != nil {
			return 1
		}
		return 1
	}

	for _, node := range nodes {
		out := node.XMLString()
		if *text {
			out = node.StringValue()
		}
		if err := writeln(stdout, out); err != nil {
			return 1
		}
	}
	return 0
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
