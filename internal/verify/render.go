package verify

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/writewhisker/tourkit/internal/report"
	"github.com/writewhisker/tourkit/internal/story"
)

// Render writes the human-readable report.
func Render(w io.Writer, r *Report) {
	rule := strings.Repeat("=", 80)
	thin := strings.Repeat("-", 80)

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  %s - ASSET VERIFICATION\n", strings.ToUpper(r.Tour))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	for _, cat := range r.Categories {
		fmt.Fprintf(w, "%s (%d required)\n", cat.Header, cat.Required)
		fmt.Fprintln(w, thin)
		for _, f := range cat.Files {
			renderFile(w, f)
		}
		fmt.Fprintf(w, "\nFound: %d/%d\n", cat.Found, cat.Required)
		fmt.Fprintf(w, "Total size: %s\n", report.FormatSize(cat.TotalSize))
		fmt.Fprintln(w)
	}

	renderStory(w, thin, r.Story)
	renderSummary(w, rule, thin, r)
}

func renderFile(w io.Writer, f File) {
	if f.Pixels > 0 {
		if f.Found {
			fmt.Fprintf(w, "  ✅ %s (%d×%dpx, %s)\n", f.Name, f.Pixels, f.Pixels, report.FormatSize(f.SizeBytes))
		} else {
			fmt.Fprintf(w, "  ❌ %s MISSING\n", f.Name)
		}
		return
	}

	switch {
	case f.Status == StatusMarkerOnly:
		fmt.Fprintf(w, "  ⚠️  %-30s MARKER FILE ONLY\n", f.Name)
	case !f.Found:
		fmt.Fprintf(w, "  ❌ %-30s MISSING\n", f.Name)
	case f.Status != "":
		fmt.Fprintf(w, "  ✅ %-30s (%s) [%s]\n", f.Name, report.FormatSize(f.SizeBytes), f.Status)
	default:
		fmt.Fprintf(w, "  ✅ %-30s (%s)\n", f.Name, report.FormatSize(f.SizeBytes))
	}
}

func renderStory(w io.Writer, thin string, sc StoryCheck) {
	fmt.Fprintln(w, "📖 TOUR STORY")
	fmt.Fprintln(w, thin)

	name := filepath.Base(sc.Path)
	if !sc.Found {
		fmt.Fprintf(w, "  ❌ %s MISSING\n", name)
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "  ✅ %s (%s)\n", name, report.FormatSize(sc.SizeBytes))
	if !sc.ValidJSON {
		fmt.Fprintf(w, "  ❌ JSON Error: %s\n", sc.Error)
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintln(w, "  ✅ Valid JSON")
	fmt.Fprintf(w, "  %s Format: %s %s\n", mark(sc.Format == story.FormatName && sc.FormatVersion != ""), sc.Format, sc.FormatVersion)
	fmt.Fprintf(w, "  %s Passages: %d\n", mark(sc.Passages > 0), sc.Passages)
	fmt.Fprintf(w, "  %s Title: %s\n", mark(sc.Title != ""), sc.Title)
	fmt.Fprintln(w)
}

func renderSummary(w io.Writer, rule, thin string, r *Report) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "  SUMMARY")
	fmt.Fprintln(w, rule)

	for _, cat := range r.Categories {
		status := "✅"
		if cat.Found != cat.Required {
			status = "⚠️"
		}
		fmt.Fprintf(w, "%s %-12s %2d/%-2d (%5.1f%%)\n", status, cat.Label, cat.Found, cat.Required, cat.Percent())
	}

	fmt.Fprintln(w, thin)
	total := 0.0
	if r.Required > 0 {
		total = float64(r.Found) / float64(r.Required) * 100
	}
	fmt.Fprintf(w, "   %-12s %2d/%-2d (%5.1f%%)\n", "TOTAL", r.Found, r.Required, total)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total asset size: %s\n", report.FormatSize(r.TotalSize))
	fmt.Fprintln(w)

	fmt.Fprintln(w, rule)
	if r.Complete {
		fmt.Fprintln(w, "  ✅ STATUS: ALL ASSETS COMPLETE")
	} else {
		fmt.Fprintln(w, "  ⚠️  STATUS: PARTIAL - SOME ASSETS NEED REPLACEMENT")
		renderNextSteps(w, r)
	}
	fmt.Fprintln(w, rule)
}

func renderNextSteps(w io.Writer, r *Report) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Next steps:")

	for _, cat := range r.Categories {
		missing := cat.Required - cat.Found
		switch {
		case cat.Language != "":
			if missing > 0 {
				fmt.Fprintf(w, "  - Record %s audio narration (%d missing) or run: tourkit audio synth\n", cat.Language, missing)
			}
		case cat.Key == "images":
			if missing > 0 {
				fmt.Fprintln(w, "  - Generate missing images: tourkit images placeholders")
			}
			if cat.countStatus(StatusPlaceholder) > 0 {
				fmt.Fprintln(w, "  - Replace placeholder images with collection photographs: tourkit images fetch")
			}
		case cat.Key == "qr_codes" && missing > 0:
			fmt.Fprintln(w, "  - Generate missing QR codes: tourkit qrcodes")
		case cat.Key == "pwa_icons" && missing > 0:
			fmt.Fprintln(w, "  - Generate missing icons: tourkit icons")
		}
	}
}

func mark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}
