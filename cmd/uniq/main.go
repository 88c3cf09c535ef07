package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mibar/identified/pkg/identified"
)

// element keeps the original JSON text so output is byte-faithful; the id
// is the raw JSON of the identity field, extracted once up front.
type element struct {
	raw json.RawMessage
	id  string
}

func main() {
	by := flag.String("by", "", "name of the object field that identifies each element")
	keep := flag.String("keep", "first", `which element wins on duplicate ids: "first" or "last"`)
	file := flag.String("file", "", "path to input JSON file (default: read from stdin)")
	output := flag.String("output", "", "path to output JSON file (default: write to stdout)")
	pretty := flag.Bool("pretty", false, "pretty-print the JSON output")
	flag.Parse()

	if *by == "" {
		fmt.Fprintln(os.Stderr, "usage: uniq -by id [-keep first|last] [-file input.json | < input.json] [-output result.json]")
		os.Exit(1)
	}

	var choice identified.Choice
	switch *keep {
	case "first":
		choice = identified.KeepExisting
	case "last":
		choice = identified.KeepNew
	default:
		fmt.Fprintf(os.Stderr, "invalid keep policy: %q (expected \"first\" or \"last\")\n", *keep)
		os.Exit(1)
	}

	var r io.Reader = os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	input, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	elems, err := parse(input, *by)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse input: %v\n", err)
		os.Exit(1)
	}

	vec := identified.FromCombining(
		func(e element) string { return e.id },
		elems,
		func(int, element, element) identified.Choice { return choice },
	)

	kept := make([]json.RawMessage, 0, vec.Len())
	for e := range vec.Values() {
		kept = append(kept, e.raw)
	}

	out, err := json.Marshal(kept)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode output: %v\n", err)
		os.Exit(1)
	}

	if *pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, out, "", "  "); err != nil {
			fmt.Fprintf(os.Stderr, "pretty-print: %v\n", err)
			os.Exit(1)
		}
		out = buf.Bytes()
	}

	if *output != "" {
		if err := os.WriteFile(*output, append(out, '\n'), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write output: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Println(string(out))
	}
}

// parse decodes a JSON array of objects and extracts the identity field
// from each. Elements missing the field are an error, not a silent skip.
func parse(input []byte, field string) ([]element, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(input, &raws); err != nil {
		return nil, err
	}

	elems := make([]element, 0, len(raws))
	for i, raw := range raws {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, fmt.Errorf("element at offset %d is not an object: %w", i, err)
		}
		id, ok := obj[field]
		if !ok {
			return nil, fmt.Errorf("element at offset %d has no %q field", i, field)
		}
		elems = append(elems, element{raw: raw, id: string(id)})
	}
	return elems, nil
}
