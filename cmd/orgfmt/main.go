// Command orgfmt reads an Org file and writes it back out, either
// verbatim (a round-trip exercise of Document.ToOrg) or as HTML.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/alexispurslane/orgast/org"
)

func main() {
	html := flag.Bool("html", false, "render HTML instead of Org syntax")
	flag.Parse()

	var in io.Reader = os.Stdin
	if args := flag.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "orgfmt:", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	text, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "orgfmt:", err)
		os.Exit(1)
	}

	doc := org.Parse(string(text))
	if *html {
		out, err := doc.ToHTML()
		if err != nil {
			fmt.Fprintln(os.Stderr, "orgfmt:", err)
			os.Exit(1)
		}
		fmt.Print(out)
		return
	}
	rendered := doc.ToOrg()
	if rendered != string(text) {
		fmt.Fprintln(os.Stderr, "orgfmt: warning: round-trip mismatch, output does not match input byte-for-byte")
	}
	fmt.Print(rendered)
}
