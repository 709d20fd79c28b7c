package sink

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		errMsg string
	}{
		{"simple", "cocoa.go", ""},
		{"nested", "out/cocoa/cocoa_shim.m", ""},
		{"dotted name", "a..b.go", ""},
		{"empty", "", "empty"},
		{"absolute", "/tmp/cocoa.go", "absolute paths not allowed"},
		{"drive letter", "C:cocoa.go", "absolute paths not allowed"},
		{"parent", "../cocoa.go", "path traversal not allowed"},
		{"inner parent", "out/../cocoa.go", "path traversal not allowed"},
		{"bare parent", "..", "path traversal not allowed"},
		{"dot prefix", "./cocoa.go", "not clean"},
		{"double slash", "out//cocoa.go", "not clean"},
		{"trailing slash", "out/", "not clean"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.errMsg == "" {
				if err != nil {
					t.Errorf("ValidatePath(%q) error = %v", tt.path, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidatePath(%q) error = %v, want containing %q", tt.path, err, tt.errMsg)
			}
		})
	}
}

func TestMemorySink(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySink()

	content := []byte("package cocoa\n")
	if err := s.WriteFile(ctx, "cocoa.go", content); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := s.WriteFile(ctx, "cocoa_shim.h", []byte("#pragma once\n")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	content[0] = 'X'
	if got := string(s.Get("cocoa.go")); got != "package cocoa\n" {
		t.Errorf("Get() = %q, stored content aliased caller's slice", got)
	}

	got := s.Get("cocoa.go")
	got[0] = 'Y'
	if string(s.Get("cocoa.go")) != "package cocoa\n" {
		t.Error("Get() returned internal storage")
	}

	if s.Get("missing.go") != nil {
		t.Error("Get(missing) != nil")
	}
	if paths := s.Paths(); !reflect.DeepEqual(paths, []string{"cocoa.go", "cocoa_shim.h"}) {
		t.Errorf("Paths() = %v", paths)
	}
	if files := s.Files(); len(files) != 2 {
		t.Errorf("len(Files()) = %d, want 2", len(files))
	}

	s.Reset()
	if len(s.Files()) != 0 {
		t.Error("Reset() kept files")
	}
}

func TestMemorySink_Errors(t *testing.T) {
	s := NewMemorySink()
	if err := s.WriteFile(context.Background(), "../x.go", nil); err == nil {
		t.Error("WriteFile(../x.go) error = nil")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.WriteFile(ctx, "x.go", nil); err != context.Canceled {
		t.Errorf("WriteFile() on canceled context error = %v, want %v", err, context.Canceled)
	}
}

func TestMemorySink_Concurrent(t *testing.T) {
	s := NewMemorySink()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.WriteFile(context.Background(), fmt.Sprintf("f%d.go", i), []byte("x"))
			_ = s.Files()
		}()
	}
	wg.Wait()
	if n := len(s.Paths()); n != 32 {
		t.Errorf("len(Paths()) = %d, want 32", n)
	}
}

func TestFilesystemSink(t *testing.T) {
	root := t.TempDir()
	s := NewFilesystemSink(root)
	ctx := context.Background()

	if err := s.WriteFile(ctx, "cocoa/cocoa.go", []byte("v1")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := s.WriteFile(ctx, "cocoa/cocoa.go", []byte("v2")); err != nil {
		t.Fatalf("WriteFile() overwrite error = %v", err)
	}

	path := filepath.Join(root, "cocoa", "cocoa.go")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "v2" {
		t.Errorf("content = %q, want v2", data)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("mode = %v, want 0644", info.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Join(root, "cocoa"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, temp files left behind", len(entries))
	}
}

func TestFilesystemSink_NoOverwrite(t *testing.T) {
	root := t.TempDir()
	s := &FilesystemSink{Root: root, Mode: 0600}
	ctx := context.Background()

	if err := s.WriteFile(ctx, "cocoa.go", []byte("v1")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	err := s.WriteFile(ctx, "cocoa.go", []byte("v2"))
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second WriteFile() error = %v, want already exists", err)
	}

	data, _ := os.ReadFile(filepath.Join(root, "cocoa.go"))
	if string(data) != "v1" {
		t.Errorf("content = %q, want v1", data)
	}
	entries, _ := os.ReadDir(root)
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, temp files left behind", len(entries))
	}
}

func TestFilesystemSink_RejectsEscapes(t *testing.T) {
	s := NewFilesystemSink(t.TempDir())
	for _, p := range []string{"../x.go", "/etc/x.go", "a/../../x.go"} {
		if err := s.WriteFile(context.Background(), p, []byte("x")); err == nil {
			t.Errorf("WriteFile(%q) error = nil", p)
		}
	}
}

func TestStreamSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewStreamSink(&buf)
	ctx := context.Background()

	if err := s.WriteFile(ctx, "cocoa_shim.h", []byte("#pragma once")); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteFile(ctx, "cocoa.go", []byte("package cocoa\n")); err != nil {
		t.Fatal(err)
	}

	want := "// ==> cocoa_shim.h <==\n#pragma once\n// ==> cocoa.go <==\npackage cocoa\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
