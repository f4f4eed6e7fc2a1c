package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	jsonkeep "github.com/reoring/jsonkeep"
	"gopkg.in/yaml.v3"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	ctx := context.Background()
	var err error
	switch os.Args[1] {
	case "detect":
		err = detectCmd(ctx, os.Args[2:])
	case "fmt":
		err = fmtCmd(ctx, os.Args[2:])
	case "set":
		err = setCmd(ctx, os.Args[2:])
	case "convert":
		err = convertCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "jsonkeep:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "jsonkeep CLI\n\nUsage:\n  jsonkeep detect <file.json>\n  jsonkeep fmt <file.json>\n  jsonkeep set <file.json> <key> <json-value>\n  jsonkeep convert [-indent STR] <in.yaml> <out.json>\n\nNotes:\n  - fmt and set rewrite the file preserving its indentation and line endings.")
}

func detectCmd(ctx context.Context, args []string) error {
	if len(args) != 1 {
		usage()
		os.Exit(2)
	}
	v, err := jsonkeep.ReadFile(ctx, args[0])
	if err != nil {
		return err
	}
	d, ok := jsonkeep.DescriptorOf(v)
	if !ok {
		fmt.Println("untracked: root is not an object or array")
		return nil
	}
	fmt.Printf("indent: %q\n", d.Indent)
	fmt.Printf("crlf: %v\n", d.CRLF)
	fmt.Printf("trailing newline: %v\n", d.TrailingNewline)
	fmt.Printf("path: %s\n", d.Path)
	return nil
}

func fmtCmd(ctx context.Context, args []string) error {
	if len(args) != 1 {
		usage()
		os.Exit(2)
	}
	v, err := jsonkeep.ReadFile(ctx, args[0])
	if err != nil {
		return err
	}
	return jsonkeep.WriteFile(ctx, v, "")
}

func setCmd(ctx context.Context, args []string) error {
	if len(args) != 3 {
		usage()
		os.Exit(2)
	}
	file, key, raw := args[0], args[1], args[2]
	v, err := jsonkeep.ReadFile(ctx, file)
	if err != nil {
		return err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("%s: root is not an object", file)
	}
	// The value argument is JSON; a bare word falls back to a string.
	val, err := jsonkeep.Decode([]byte(raw))
	if err != nil {
		val = raw
	}
	obj[key] = val
	return jsonkeep.WriteFile(ctx, v, "")
}

func convertCmd(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	indent := fs.String("indent", "  ", "indentation unit for the JSON output")
	_ = fs.Parse(args)
	if fs.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	in, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	var v any
	if err := yaml.Unmarshal(in, &v); err != nil {
		return err
	}
	out, err := jsonkeep.EncodeIndent(v, *indent)
	if err != nil {
		return err
	}
	out = append(out, '\n')
	return os.WriteFile(fs.Arg(1), out, 0o644)
}
