package darija

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const (
	testModelPath = "testdata/model.onnx"
	testVocabPath = "testdata/vocab.json"
)

// skipIfNoModel skips the test if the ONNX model is not available.
func skipIfNoModel(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(testModelPath); err != nil {
		t.Skipf("Skipping: ONNX model not available at %s", testModelPath)
	}
}

// writeTestVocab writes a minimal vocabulary file and returns its path.
func writeTestVocab(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.json")
	data := []byte(`{"<unk>": 0, "<s>": 1, "</s>": 2, "dar": 3}`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing vocab: %v", err)
	}
	return path
}

func TestNew_ModelNotFound(t *testing.T) {
	_, err := New("nonexistent/model.onnx", writeTestVocab(t))
	if err == nil {
		t.Fatal("expected error for nonexistent model")
	}
	if !errors.Is(err, ErrModelNotFound) {
		t.Errorf("expected ErrModelNotFound, got: %v", err)
	}
}

func TestNew_VocabNotFound(t *testing.T) {
	// Create a temp file to act as the model so we pass the model check
	tmpModel, err := os.CreateTemp(t.TempDir(), "fake_model_*.onnx")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	_ = tmpModel.Close()

	_, err = New(tmpModel.Name(), "nonexistent/vocab.json")
	if err == nil {
		t.Fatal("expected error for nonexistent vocab")
	}
	if !errors.Is(err, ErrVocabFailed) {
		t.Errorf("expected ErrVocabFailed, got: %v", err)
	}
}

func TestNew_VocabMalformed(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.onnx")
	if err := os.WriteFile(modelPath, []byte("stub"), 0o600); err != nil {
		t.Fatalf("writing model stub: %v", err)
	}
	vocabPath := filepath.Join(dir, "vocab.json")
	if err := os.WriteFile(vocabPath, []byte("not json"), 0o600); err != nil {
		t.Fatalf("writing vocab: %v", err)
	}

	_, err := New(modelPath, vocabPath)
	if err == nil {
		t.Fatal("expected error for malformed vocab")
	}
	if !errors.Is(err, ErrVocabFailed) {
		t.Errorf("expected ErrVocabFailed, got: %v", err)
	}
}

func TestPipeline_Normalize(t *testing.T) {
	// The substitution stage needs no model.
	p := &Pipeline{table: Default()}
	if got := p.Normalize("d7"); got != "ظ" {
		t.Errorf("Normalize(%q) = %q, want %q", "d7", got, "ظ")
	}
}

func TestPipeline_Standardize_Empty(t *testing.T) {
	p := &Pipeline{table: Default()}

	for _, input := range []string{"", "   \t  "} {
		out, err := p.Standardize(context.Background(), input)
		if err != nil {
			t.Fatalf("Standardize(%q) failed: %v", input, err)
		}
		if out != "" {
			t.Errorf("Standardize(%q) = %q, want empty", input, out)
		}
	}
}

func TestNew(t *testing.T) {
	skipIfNoModel(t)

	p, err := New(testModelPath, testVocabPath)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer func() { _ = p.Close() }()

	if p.vocab == nil {
		t.Error("expected non-nil vocab")
	}
	if p.pool == nil {
		t.Error("expected non-nil pool")
	}
}

func TestNew_WithOptions(t *testing.T) {
	skipIfNoModel(t)

	custom, err := NewTable([]Entry{{"sh", "ش"}})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	p, err := New(testModelPath, testVocabPath,
		WithPoolSize(2),
		WithTable(custom),
	)
	if err != nil {
		t.Fatalf("New() with options failed: %v", err)
	}
	defer func() { _ = p.Close() }()

	if p.table != custom {
		t.Error("expected custom table to be used")
	}
	if got := p.Normalize("d7"); got != "d7" {
		t.Errorf("custom table should not map d7, got %q", got)
	}
}

func TestPipeline_Standardize(t *testing.T) {
	skipIfNoModel(t)

	p, err := New(testModelPath, testVocabPath)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer func() { _ = p.Close() }()

	out, err := p.Standardize(context.Background(), "3andi 7ob l dar")
	if err != nil {
		t.Fatalf("Standardize failed: %v", err)
	}

	// Output depends on the model; we only require some text back.
	t.Logf("Standardize returned %q", out)
	if out == "" {
		t.Error("expected non-empty output")
	}
}

func TestPipeline_Standardize_ContextCancelled(t *testing.T) {
	skipIfNoModel(t)

	p, err := New(testModelPath, testVocabPath)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer func() { _ = p.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err = p.Standardize(ctx, "3andi 7ob l dar")
	if err == nil {
		t.Error("expected error for cancelled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
}

func TestPipeline_Close(t *testing.T) {
	skipIfNoModel(t)

	p, err := New(testModelPath, testVocabPath)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := p.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	// Double close should not panic
	if err := p.Close(); err != nil {
		t.Logf("Second Close() returned: %v", err)
	}
}
