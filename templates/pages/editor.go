package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Editor renders the single-page notebook UI with the current note content
// pre-populated. The inline script is the edit debouncer: a single-slot
// 2000 ms timer that coalesces keystroke bursts into one save request.
func Editor(noteContent, filename string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, chunk := range []string{
			editorHead,
			`<header class="bar"><h1>Git Auto-Commit Notebook</h1><p class="file">File: `,
			templ.EscapeString(filename),
			`</p></header><textarea id="editor" name="editor" placeholder="Start writing your notes here...">`,
			templ.EscapeString(noteContent),
			`</textarea><div id="status-message" class="status idle">Waiting for input...</div></div>`,
			editorScript,
			`</body></html>`,
		} {
			if _, err := io.WriteString(w, chunk); err != nil {
				return err
			}
		}
		return nil
	})
}

const editorHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Git Notebook</title>
<style>
  body { font-family: -apple-system, 'Segoe UI', sans-serif; background: #f3f4f6; margin: 0; padding: 1rem; }
  .wrap { max-width: 56rem; margin: 0 auto; }
  .bar { display: flex; justify-content: space-between; align-items: center; background: #fff;
         padding: .75rem 1rem; border-radius: .5rem; box-shadow: 0 1px 3px rgba(0,0,0,.15); margin-bottom: 1rem; }
  .bar h1 { font-size: 1.25rem; margin: 0; color: #1f2937; }
  .bar .file { font-size: .85rem; color: #4c51bf; background: #ebf4ff; padding: .25rem .75rem; border-radius: 9999px; }
  #editor { width: 100%; box-sizing: border-box; height: calc(100vh - 160px); resize: none; padding: 1rem;
            font-size: 1rem; line-height: 1.5; tab-size: 4; border: 1px solid #d1d5db; border-radius: .5rem; }
  #editor:focus { outline: none; box-shadow: 0 0 0 4px rgba(66,153,225,.5); }
  .status { margin-top: .75rem; padding: .75rem; font-size: .9rem; border-radius: .5rem; box-shadow: 0 1px 3px rgba(0,0,0,.1); }
  .status.idle { background: #fef9c3; color: #854d0e; }
  .status.busy { background: #dbeafe; color: #4c51bf; }
  .status.ok { background: #dcfce7; color: #166534; }
  .status.err { background: #fee2e2; color: #991b1b; }
</style>
</head>
<body>
<div class="wrap">`

const editorScript = `<script>
const editor = document.getElementById('editor');
const statusMessage = document.getElementById('status-message');
let saveTimer = null;
const SAVE_DELAY_MS = 2000;

function setStatus(text, cls) {
    statusMessage.textContent = text;
    statusMessage.className = 'status ' + cls;
}

async function saveContent() {
    setStatus('Saving and committing changes...', 'busy');

    const formData = new FormData();
    formData.append('content', editor.value);

    try {
        const response = await fetch('/save', { method: 'POST', body: formData });
        const result = await response.json();

        if (result.status === 'success') {
            setStatus('Saved! ' + result.message, 'ok');
        } else {
            setStatus('Save Error: ' + result.message, 'err');
        }
    } catch (error) {
        setStatus('Network Error: Could not connect to server.', 'err');
        console.error('Fetch error:', error);
    }
}

editor.addEventListener('keyup', () => {
    // Only the most recent timer matters: a new edit replaces any pending save.
    if (saveTimer) {
        clearTimeout(saveTimer);
    }
    setStatus('Typing... Waiting to auto-commit.', 'idle');
    saveTimer = setTimeout(saveContent, SAVE_DELAY_MS);
});

window.onload = () => {
    setStatus('Application loaded. Start typing in the editor.', 'idle');
};
</script>`
