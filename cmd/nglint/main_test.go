//go:build unit

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	itemComponent = `import { Component, EventEmitter, Input, Output } from '@angular/core';

@Component({
  selector: 'app-item',
  template: '<span>{{ item }}</span>',
})
export class ItemComponent {
  @Input() item: string;
  @Output() removed = new EventEmitter<void>();
}
`
	appComponent = `import { Component } from '@angular/core';

@Component({
  selector: 'app-root',
  template: '<app-item [item]="current" (removed)="onRemoved()"></app-item>',
})
export class AppComponent {}
`
)

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	files[".nglint.yaml"] = "color: false\n"
	files["tsconfig.json"] = `{ "include": ["src"] }`
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func execute(t *testing.T, root string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(root, ".nglint.yaml"),
		"--project", filepath.Join(root, "tsconfig.json"),
	}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Please fix the above 'nglint' failures.", summary(true, false))
	assert.Equal(t, "No failures found by 'nglint'.", summary(false, false))
}

func TestLint_Failures(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/item.component.ts": itemComponent,
	})

	out, err := execute(t, root)

	assert.ErrorIs(t, err, errFailuresFound)
	assert.Contains(t, out, filepath.Join(root, "src", "item.component.ts")+":8:12 - "+
		"The 'item' input on the 'app-item' component is not used. Remove it. (no-unused-component-binding)")
	assert.Contains(t, out, filepath.Join(root, "src", "item.component.ts")+":9:13 - "+
		"The 'removed' output on the 'app-item' component is not used. Remove it. (no-unused-component-binding)")
	assert.Contains(t, out, "Please fix the above 'nglint' failures.")
}

func TestLint_Clean(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/item.component.ts": itemComponent,
		"src/app.component.ts":  appComponent,
	})

	out, err := execute(t, root)

	require.NoError(t, err)
	assert.Equal(t, "No failures found by 'nglint'.\n", out)
}

func TestLint_Quiet(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/item.component.ts": itemComponent,
		"src/app.component.ts":  appComponent,
	})

	out, err := execute(t, root, "--quiet")

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestLint_MissingProject(t *testing.T) {
	root := t.TempDir()

	_, err := execute(t, root)

	require.Error(t, err)
	assert.NotErrorIs(t, err, errFailuresFound)
}

func TestInit(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, ".nglint.yaml")

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"init", "--config", path})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Configuration written to "+path+"\n", out.String())
	assert.FileExists(t, path)

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"init", "--config", path})
	assert.Error(t, cmd.Execute())

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"init", "--config", path, "--force"})
	assert.NoError(t, cmd.Execute())
}

func TestComponents(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/item.component.ts": itemComponent,
	})
	file := filepath.Join(root, "src", "item.component.ts")

	out, err := execute(t, root, "components")

	require.NoError(t, err)
	assert.Equal(t,
		"app-item ItemComponent ("+file+":7:14)\n"+
			"  template: "+file+"\n"+
			"  input item ("+file+":8:12)\n"+
			"  output removed ("+file+":9:13)\n",
		out)
}
