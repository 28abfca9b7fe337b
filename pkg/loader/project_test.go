//go:build unit

package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjectFile_JSONC(t *testing.T) {
	src := `{
  // line comment with "quotes"
  "compilerOptions": {
    "paths": { "@app/*": ["src/app/*"], }, /* block
    comment */
    "outDir": "./dist//out",
  },
  "include": ["src/**/*.ts", "a/*b*/c",],
  "exclude": ["x\" // not a comment",],
}`
	p, err := parseProjectFile([]byte(src))

	require.NoError(t, err)
	assert.Equal(t, []string{"src/**/*.ts", "a/*b*/c"}, p.Include)
	assert.Equal(t, []string{`x" // not a comment`}, p.Exclude)
	assert.Nil(t, p.Files)
}

func TestParseProjectFile(t *testing.T) {
	tests := []struct {
		name        string
		src         string
		wantFiles   []string
		wantInclude []string
		wantExclude []string
	}{
		{
			name:        "nothing selected includes everything",
			src:         `{"compilerOptions": {}}`,
			wantInclude: []string{"**/*"},
		},
		{
			name:      "files only",
			src:       `{"files": ["src/main.ts"]}`,
			wantFiles: []string{"src/main.ts"},
		},
		{
			name:        "explicit include and exclude",
			src:         `{"include": ["src"], "exclude": ["src/legacy"]}`,
			wantInclude: []string{"src"},
			wantExclude: []string{"src/legacy"},
		},
		{
			name:        "explicitly empty include",
			src:         `{"include": []}`,
			wantInclude: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := parseProjectFile([]byte(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.wantFiles, p.Files)
			assert.Equal(t, tt.wantInclude, p.Include)
			assert.Equal(t, tt.wantExclude, p.Exclude)
		})
	}
}

func TestParseProjectFile_Malformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "truncated array", src: `{"include": [`},
		{name: "unterminated block comment", src: `{"include": ["src"] /* never closed }`},
		{name: "unterminated string", src: `{"include": ["src]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseProjectFile([]byte(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestIncludePattern(t *testing.T) {
	assert.Equal(t, "/app/src/**/*", includePattern("/app", "src"))
	assert.Equal(t, "/app/src/**/*", includePattern("/app", "src/"))
	assert.Equal(t, "/app/src/**/*.ts", includePattern("/app", "src/**/*.ts"))
	assert.Equal(t, "/app/main.ts", includePattern("/app", "./main.ts"))
	assert.Equal(t, "/app/**/*", includePattern("/app", "**/*"))
}

func TestExcluded(t *testing.T) {
	patterns := []string{"**/node_modules/**", "**/*.spec.ts", "./dist", "src/legacy/"}

	tests := []struct {
		rel  string
		want bool
	}{
		{"src/app/app.component.ts", false},
		{"node_modules/lib/index.ts", true},
		{"src/node_modules/lib/index.ts", true},
		{"src/app/app.component.spec.ts", true},
		{"dist/main.ts", true},
		{"src/legacy/old.component.ts", true},
		{"src/legacyish/new.component.ts", false},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			got, err := excluded(patterns, tt.rel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSource(t *testing.T) {
	assert.True(t, isSource("src/app.component.ts"))
	assert.False(t, isSource("src/typings.d.ts"))
	assert.False(t, isSource("src/app.component.html"))
	assert.False(t, isSource("src/app.tsx"))
}
