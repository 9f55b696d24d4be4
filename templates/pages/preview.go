package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Preview renders the note as HTML. The body is markdown already converted
// by goldmark, which escapes embedded raw HTML, so it is written through.
func Preview(renderedBody, filename string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, chunk := range []string{
			previewHead,
			`<header class="bar"><h1>Preview</h1><p class="file">File: `,
			templ.EscapeString(filename),
			`</p></header><article class="note">`,
			renderedBody,
			`</article><p><a href="/">Back to editor</a></p></div></body></html>`,
		} {
			if _, err := io.WriteString(w, chunk); err != nil {
				return err
			}
		}
		return nil
	})
}

const previewHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Git Notebook - Preview</title>
<style>
  body { font-family: -apple-system, 'Segoe UI', sans-serif; background: #f3f4f6; margin: 0; padding: 1rem; }
  .wrap { max-width: 56rem; margin: 0 auto; }
  .bar { display: flex; justify-content: space-between; align-items: center; background: #fff;
         padding: .75rem 1rem; border-radius: .5rem; box-shadow: 0 1px 3px rgba(0,0,0,.15); margin-bottom: 1rem; }
  .bar h1 { font-size: 1.25rem; margin: 0; color: #1f2937; }
  .bar .file { font-size: .85rem; color: #4c51bf; background: #ebf4ff; padding: .25rem .75rem; border-radius: 9999px; }
  .note { background: #fff; padding: 1.5rem; border-radius: .5rem; box-shadow: 0 1px 3px rgba(0,0,0,.1); line-height: 1.6; }
</style>
</head>
<body>
<div class="wrap">`
