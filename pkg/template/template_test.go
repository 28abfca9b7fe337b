//go:build unit

package template

import (
	"testing"

	"github.com/kevinphelps/nglint/pkg/program"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(src string) *program.Template {
	return Parse(program.NewFile("app.component.html", []byte(src)), src, 0)
}

// shape renders the element tree as a compact string for assertions.
func shape(elements []*program.Element) []string {
	var out []string
	for _, e := range elements {
		s := e.Name
		for _, a := range e.Attrs {
			s += " " + a.Name
			if a.Value != "" {
				s += "=" + a.Value
			}
		}
		if len(e.Children) > 0 {
			s += " {"
			for _, c := range shape(e.Children) {
				s += c + ";"
			}
			s += "}"
		}
		out = append(out, s)
	}
	return out
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "empty template",
			src:  "",
			want: nil,
		},
		{
			name: "text only",
			src:  "Hello {{ name }}!",
			want: nil,
		},
		{
			name: "nested elements",
			src:  `<div><app-item [item]="x"></app-item><span>text</span></div><footer></footer>`,
			want: []string{"div {app-item [item]=x;span;}", "footer"},
		},
		{
			name: "binding spellings keep their case",
			src:  `<app-slider [(value)]="v" (valueChange)="on($event)" label="Volume" disabled></app-slider>`,
			want: []string{"app-slider [(value)]=v (valueChange)=on($event) label=Volume disabled"},
		},
		{
			name: "structural and reference attributes",
			src:  `<li *ngFor="let i of items" #row [attr.aria-label]='i.name'></li>`,
			want: []string{"li *ngFor=let i of items #row [attr.aria-label]=i.name"},
		},
		{
			name: "unquoted values and spaces around equals",
			src:  "<input type=text value = \"a\">",
			want: []string{"input type=text value=a"},
		},
		{
			name: "void elements do not nest",
			src:  `<p><img src="a.png"><br>after</p>`,
			want: []string{"p {img src=a.png;br;}"},
		},
		{
			name: "self closing elements",
			src:  `<div><app-icon name="x"/><app-icon name="y" /></div>`,
			want: []string{"div {app-icon name=x;app-icon name=y;}"},
		},
		{
			name: "comments and doctype are skipped",
			src:  `<!DOCTYPE html><!-- <app-hidden [a]="b"></app-hidden> --><main></main>`,
			want: []string{"main"},
		},
		{
			name: "raw text content is not markup",
			src:  `<style>a > b { color: red }</style><script>if (a<b) {}</script><textarea><app-x></app-x></textarea><p></p>`,
			want: []string{"style", "script", "textarea", "p"},
		},
		{
			name: "less than inside interpolation",
			src:  `<div>{{ a<b ? 1 : 2 }}</div><span></span>`,
			want: []string{"div", "span"},
		},
		{
			name: "less than followed by space is text",
			src:  `<div>1 < 2</div>`,
			want: []string{"div"},
		},
		{
			name: "unmatched closing tag is ignored",
			src:  `<div></span><p></p></div>`,
			want: []string{"div {p;}"},
		},
		{
			name: "unclosed element swallows the rest",
			src:  `<div><p>one<p>two</div><footer></footer>`,
			want: []string{"div {p {p;};}", "footer"},
		},
		{
			name: "control flow blocks are transparent",
			src:  "@if (show) {\n  <app-item [item]=\"x\" />\n} @else {\n  <app-empty></app-empty>\n}",
			want: []string{"app-item [item]=x", "app-empty"},
		},
		{
			name: "ng-template children are kept",
			src:  `<ng-template #tpl let-item><app-item [item]="item"></app-item></ng-template>`,
			want: []string{"ng-template #tpl let-item {app-item [item]=item;}"},
		},
		{
			name: "truncated input",
			src:  `<div><app-item [item]="x`,
			want: []string{"div {app-item [item]=x;}"},
		},
		{
			name: "case insensitive closing of html tags",
			src:  `<DIV><b></b></div><i></i>`,
			want: []string{"DIV {b;}", "i"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := parse(tt.src)
			assert.Equal(t, "app.component.html", tmpl.Source)
			assert.Equal(t, tt.want, shape(tmpl.Roots))
		})
	}
}

func TestParse_Positions(t *testing.T) {
	src := "<div>\n  <app-item\n      [item]=\"x\"></app-item>\n</div>"
	tmpl := parse(src)

	require.Len(t, tmpl.Roots, 1)
	require.Len(t, tmpl.Roots[0].Children, 1)
	item := tmpl.Roots[0].Children[0]

	assert.Equal(t, 2, item.NamePos.Line)
	assert.Equal(t, 4, item.NamePos.Column)
	require.Len(t, item.Attrs, 1)
	assert.Equal(t, 3, item.Attrs[0].Pos.Line)
	assert.Equal(t, 7, item.Attrs[0].Pos.Column)
}

func TestParse_InlineOffset(t *testing.T) {
	source := "@Component({\n  template: `<app-x></app-x>`\n})"
	base := len("@Component({\n  template: `")
	markup := "<app-x></app-x>"

	tmpl := Parse(program.NewFile("x.component.ts", []byte(source)), markup, base)

	require.Len(t, tmpl.Roots, 1)
	assert.Equal(t, "x.component.ts", tmpl.Source)
	assert.Equal(t, program.Position{File: "x.component.ts", Line: 2, Column: 15, Offset: base + 1}, tmpl.Roots[0].NamePos)
}

func TestParseMapped(t *testing.T) {
	source := "template: '<app-x>' +\n  '</app-x><app-y b></app-y>'"
	first := len("template: '")
	second := len("template: '<app-x>' +\n  '")
	markup := "<app-x></app-x><app-y b></app-y>"
	offsetOf := func(i int) int {
		if i < len("<app-x>") {
			return first + i
		}
		return second + i - len("<app-x>")
	}

	tmpl := ParseMapped(program.NewFile("x.component.ts", []byte(source)), markup, offsetOf)

	require.Len(t, tmpl.Roots, 2)
	assert.Equal(t, program.Position{File: "x.component.ts", Line: 1, Column: 13, Offset: first + 1}, tmpl.Roots[0].NamePos)
	assert.Equal(t, "app-y", tmpl.Roots[1].Name)
	assert.Equal(t, 2, tmpl.Roots[1].NamePos.Line)
	assert.Equal(t, 13, tmpl.Roots[1].NamePos.Column)
	require.Len(t, tmpl.Roots[1].Attrs, 1)
	assert.Equal(t, 19, tmpl.Roots[1].Attrs[0].Pos.Column)
}
