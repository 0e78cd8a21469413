package htmlview

import (
	"context"
	"io"
)

// pageStyle is the embedded stylesheet for the rendered page. The :target
// rule highlights the element a same-document link jumps to.
const pageStyle = `
a {
    text-decoration: none;
}
.token {
    color: #0000ff;
}
.string {
    color: #ff0000;
}
.ident {
    color: #0080ff;
}
.number {
    color: #000000;
}
.boolean {
    color: #000000;
}
.link {
    color: #0000ff;
}
.properties {
    color: #008000;
}
.classes {
    color: #800000;
}
.vocabularies {
    color: #800080;
}
:target {
    background-color: yellow;
}
`

const pageHeader = `<!DOCTYPE html>
<html>
<head>
<style>
` + pageStyle + `
</style>
</head>
<body>`

const pageFooter = `</body>
</html>
`

// WritePage renders the complete HTML page: the fixed shell around the
// legend and the annotated document body.
func (r *Renderer) WritePage(ctx context.Context, w io.Writer) error {
	if _, err := io.WriteString(w, pageHeader); err != nil {
		return err
	}
	if err := r.Write(ctx, w); err != nil {
		return err
	}
	_, err := io.WriteString(w, pageFooter)
	return err
}
