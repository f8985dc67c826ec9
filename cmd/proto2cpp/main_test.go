package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGeneratesFiles(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "person.proto")
	err := os.WriteFile(src, []byte(`
package demo;

message Person {
  required string name = 1;
  optional int32 age = 2;
}
`), 0o644)
	require.NoError(t, err)

	outDir := filepath.Join(dir, "out")
	cfg := &config{outDir: outDir, language: "CPlusPlus"}

	err = run(zerolog.Nop(), cfg, []string{src})
	require.NoError(t, err)

	for _, name := range []string{"person.protocol.h", "person.protocol.cpp", "ProtoBase.protocol.h"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, "expected %s to have been written", name)
	}
}

func TestRunUnknownLanguage(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "empty.proto")
	require.NoError(t, os.WriteFile(src, []byte(`package demo;`), 0o644))

	cfg := &config{outDir: dir, language: "Rust"}
	err := run(zerolog.Nop(), cfg, []string{src})
	require.Error(t, err)
}

func TestRunInvalidProtoReturnsExitCode2(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.proto")
	require.NoError(t, os.WriteFile(src, []byte(`message {`), 0o644))

	cfg := &config{outDir: dir, language: "CPlusPlus"}
	err := run(zerolog.Nop(), cfg, []string{src})
	require.Error(t, err)
	assert.Equal(t, 2, exitCodeFor(err))
}

func TestRunSharesRuntimeHeaderAcrossInputs(t *testing.T) {
	dir := t.TempDir()
	srcA := filepath.Join(dir, "a.proto")
	srcB := filepath.Join(dir, "b.proto")
	require.NoError(t, os.WriteFile(srcA, []byte("package demo;\n\nmessage A {\n  optional int32 x = 1;\n}\n"), 0o644))
	require.NoError(t, os.WriteFile(srcB, []byte("package demo;\n\nmessage B {\n  optional int32 y = 1;\n}\n"), 0o644))

	outDir := filepath.Join(dir, "out")
	cfg := &config{outDir: outDir, language: "CPlusPlus"}

	err := run(zerolog.Nop(), cfg, []string{srcA, srcB})
	require.NoError(t, err)

	for _, name := range []string{"a.protocol.h", "b.protocol.h", "ProtoBase.protocol.h"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, "expected %s to have been written", name)
	}
}
