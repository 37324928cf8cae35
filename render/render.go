// Package render writes a forge result out as a Markdown content pack or
// as HTML.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"autoforge/forge"
)

// Options tunes HTML output.
type Options struct {
	// Flatten rewrites lists and headings into plain paragraphs for rich
	// text editors that drop those tags on paste.
	Flatten bool
}

var md = goldmark.New(goldmark.WithExtensions(extension.Linkify))

// Markdown renders the three steps of a result in display order.
func Markdown(res forge.Result) string {
	var sb strings.Builder
	in := res.Interpretation

	sb.WriteString("# " + escape(res.Copywriting.Headline) + "\n\n")

	sb.WriteString("## Step 1 · Interpret\n\n")
	for _, row := range in.Breakdown() {
		fmt.Fprintf(&sb, "**%s:** %s\n\n", row.Label, escape(row.Value))
	}
	fmt.Fprintf(&sb, "**Keywords:** %s\n\n", escape(strings.Join(in.Keywords, ", ")))

	sb.WriteString("## Step 2 · Prompt\n\n")
	sb.WriteString("> " + escape(res.Prompt.Formatted) + "\n\n")
	for _, p := range res.Prompt.Pieces {
		fmt.Fprintf(&sb, "- **%s:** %s\n", p.Label, escape(p.Value))
	}
	sb.WriteString("\n")

	c := res.Copywriting
	sb.WriteString("## Step 3 · Copywriting\n\n")
	fmt.Fprintf(&sb, "**Hook:** %s\n\n", escape(c.Hook))
	fmt.Fprintf(&sb, "**Narrative Summary:** %s\n\n", escape(c.Narrative))
	fmt.Fprintf(&sb, "**Platform Note:** %s\n\n", escape(c.PlatformNote))

	sb.WriteString("### Script Beats\n\n")
	for i, beat := range c.ScriptBeats {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, escape(beat))
	}
	sb.WriteString("\n")

	sb.WriteString("### Caption\n\n")
	for _, line := range strings.Split(c.Caption, "\n") {
		if line == "" {
			sb.WriteString("\n")
			continue
		}
		sb.WriteString(escape(line) + "  \n")
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "**Hashtags:** %s\n\n", escape(strings.Join(c.Hashtags, " ")))
	fmt.Fprintf(&sb, "**CTA:** %s\n", escape(c.CTA))
	return sb.String()
}

// HTML renders the Markdown content pack to HTML.
func HTML(res forge.Result, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(res)), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	out := buf.String()
	if opts.Flatten {
		out = flatten(out)
	}
	return out, nil
}

var mdSpecial = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"#", `\#`,
	"[", `\[`,
	"]", `\]`,
	"<", "&lt;",
	">", "&gt;",
)

// escape keeps user text from being read as Markdown syntax.
func escape(s string) string {
	return mdSpecial.Replace(s)
}

var (
	olRe = regexp.MustCompile(`(?s)<ol[^>]*>(.*?)</ol>`)
	ulRe = regexp.MustCompile(`(?s)<ul[^>]*>(.*?)</ul>`)
	liRe = regexp.MustCompile(`(?s)<li[^>]*>(.*?)</li>`)
	hRe  = regexp.MustCompile(`(?s)<h([1-6])[^>]*>(.*?)</h[1-6]>`)
)

var headingSizes = map[string]string{
	"1": "24px",
	"2": "20px",
	"3": "18px",
}

func flatten(html string) string {
	html = hRe.ReplaceAllStringFunc(html, func(block string) string {
		parts := hRe.FindStringSubmatch(block)
		size := headingSizes[parts[1]]
		if size == "" {
			size = "16px"
		}
		return fmt.Sprintf(`<p style="font-size:%s;font-weight:700;margin:1em 0 0.6em;">%s</p>`, size, strings.TrimSpace(parts[2]))
	})

	html = olRe.ReplaceAllStringFunc(html, func(block string) string {
		var b strings.Builder
		for i, item := range liRe.FindAllStringSubmatch(block, -1) {
			fmt.Fprintf(&b, "<p>%d. %s</p>", i+1, strings.TrimSpace(item[1]))
		}
		return b.String()
	})

	return ulRe.ReplaceAllStringFunc(html, func(block string) string {
		var b strings.Builder
		for _, item := range liRe.FindAllStringSubmatch(block, -1) {
			b.WriteString("<p>• " + strings.TrimSpace(item[1]) + "</p>")
		}
		return b.String()
	})
}
