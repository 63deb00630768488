package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension script is a shell script")
	}
	tempDir := t.TempDir()
	store := useStore(t)

	// btg-hello writes the environment it received into a file.
	outFile := filepath.Join(tempDir, "env.txt")
	script := "#!/bin/sh\n" +
		"echo \"" + EnvStoreFile + "=$" + EnvStoreFile + "\" > \"" + outFile + "\"\n" +
		"echo \"" + EnvVerbose + "=$" + EnvVerbose + "\" >> \"" + outFile + "\"\n" +
		"echo \"args=$*\" >> \"" + outFile + "\"\n" +
		"exit 3\n"
	if err := os.WriteFile(filepath.Join(tempDir, "btg-hello"), []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write btg-hello: %v", err)
	}
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	found, code := RunExtension("hello", []string{"a", "b"})
	if !found {
		t.Fatal("RunExtension() did not find btg-hello")
	}
	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}

	content, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{EnvStoreFile + "=" + store, EnvVerbose + "=false", "args=a b"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("extension output does not contain %q:\n%s", want, content)
		}
	}
}

func TestExtensionMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, _ := RunExtension("nope", nil); found {
		t.Error("RunExtension() found a missing extension")
	}
}
