// Command render_resume renders a resume JSON file offline, as PDF with the
// layout renderer or as the HTML page the chrome renderer prints.
//
//	go run ./tools -in resume.json -out resume.pdf -layout sidebar
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

func main() {
	in := flag.String("in", "resume.json", "resume JSON file")
	out := flag.String("out", "", "output file (default: <in>.pdf or <in>.html)")
	layout := flag.String("layout", "classic", "classic or sidebar")
	html := flag.Bool("html", false, "write the HTML page instead of a PDF")
	regular := flag.String("font-regular", "", "regular TTF font (optional)")
	bold := flag.String("font-bold", "", "bold TTF font (optional)")
	flag.Parse()

	if err := run(*in, *out, render.ParseLayout(*layout), *html, *regular, *bold); err != nil {
		fmt.Fprintf(os.Stderr, "render_resume: %v\n", err)
		os.Exit(2)
	}
}

func run(in, out string, layout render.Layout, html bool, regular, bold string) error {
	b, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}
	if err := model.Validate(model.ResumeSchema, b); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	var rec model.Resume
	if err := json.Unmarshal(b, &rec); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	var opts []render.Option
	if regular != "" && bold != "" {
		opts = append(opts, render.WithFonts(render.TrueTypeFonts{RegularPath: regular, BoldPath: bold}))
	}
	gen := render.NewGenerator(opts...)

	ext := ".pdf"
	var data []byte
	if html {
		ext = ".html"
		m := gen.Model(&rec, layout)
		page, err := render.RenderHTML(&m, layout, gen.Footer())
		if err != nil {
			return err
		}
		data = []byte(page)
	} else if data, err = gen.GeneratePDF(context.Background(), &rec, layout); err != nil {
		return err
	}

	if out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + ext
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("wrote %s (%d bytes, %s layout)\n", out, len(data), layout)
	return nil
}
