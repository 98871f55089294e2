// Command gentable writes the Go source of a 256-sample pulse wavetable.
//
//	go run ./cmd/gentable -high 8 -o duallfo/wavetable/pulse8.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"os"
)

const (
	tableSize = 256
	perRow    = 16
)

func main() {
	var (
		high   int
		output string
		pkg    string
	)
	flag.IntVar(&high, "high", 8, "Number of leading samples at full scale")
	flag.StringVar(&output, "o", "", "Output file (default stdout)")
	flag.StringVar(&pkg, "package", "wavetable", "Package name of the generated file")
	flag.Parse()

	src, err := generate(pkg, high)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var out io.Writer = os.Stdout
	if output != "" {
		if err := os.WriteFile(output, src, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "error: writing %s: %v\n", output, err)
			os.Exit(1)
		}
		return
	}
	if _, err := out.Write(src); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// generate returns gofmt'ed source declaring pulse<high>, a table whose
// first high samples are 0xFF and the rest 0x00.
func generate(pkg string, high int) ([]byte, error) {
	if high < 0 || high > tableSize {
		return nil, fmt.Errorf("high must be between 0 and %d, got %d", tableSize, high)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by gentable -high %d; DO NOT EDIT.\n\n", high)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "// pulse%d is one period of a pulse wave with %d samples at High followed by\n", high, high)
	fmt.Fprintf(&buf, "// %d samples at Low.\n", tableSize-high)
	fmt.Fprintf(&buf, "var pulse%d = Table{\n", high)
	for row := 0; row < tableSize; row += perRow {
		buf.WriteString("\t")
		for i := row; i < row+perRow; i++ {
			v := 0x00
			if i < high {
				v = 0xFF
			}
			fmt.Fprintf(&buf, "0x%02X, ", v)
		}
		fmt.Fprintf(&buf, "// 0x%02x\n", row)
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}
