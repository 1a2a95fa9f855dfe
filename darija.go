package darija

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jamesainslie/go-darija/inference"
	"github.com/jamesainslie/go-darija/vocab"
)

// maxSeqLen is the maximum input sequence length accepted by the model.
// Longer inputs are truncated before inference; the end-of-sequence token
// is always kept.
const maxSeqLen = 512

// Pipeline standardizes romanized Darija into formal Arabic text: the
// chat-alphabet normalizer rewrites digit and digraph tokens into Arabic
// script, then a seq2seq ONNX model produces the standardized form.
// It is safe for concurrent use.
type Pipeline struct {
	table  *Table
	vocab  *vocab.Vocab
	pool   *inference.Pool
	logger *slog.Logger
}

// New creates a Pipeline from a seq2seq ONNX model and a vocabulary file.
func New(modelPath, vocabPath string, opts ...Option) (*Pipeline, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Check model file exists
	if _, err := os.Stat(modelPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, modelPath)
		}
		return nil, fmt.Errorf("checking model file: %w", err)
	}

	// Load vocabulary
	voc, err := vocab.Load(vocabPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrVocabFailed, vocabPath)
		}
		return nil, fmt.Errorf("%w: %w", ErrVocabFailed, err)
	}

	// Create session pool
	pool, err := inference.NewPool(modelPath, cfg.poolSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}

	return &Pipeline{
		table:  cfg.table,
		vocab:  voc,
		pool:   pool,
		logger: cfg.logger,
	}, nil
}

// Normalize applies only the chat-alphabet substitution stage. It needs no
// model and never fails.
func (p *Pipeline) Normalize(text string) string {
	return p.table.Normalize(text)
}

// Standardize normalizes text and runs it through the model, returning the
// standardized Arabic form. Empty input (or input that normalizes to
// nothing) yields "" without touching the model.
func (p *Pipeline) Standardize(ctx context.Context, text string) (string, error) {
	normalized := p.table.Normalize(text)
	if normalized == "" {
		return "", nil
	}

	ids := p.vocab.Encode(normalized)
	if len(ids) > maxSeqLen {
		p.logger.Warn("input exceeds model sequence length, truncating",
			"tokens", len(ids), "max", maxSeqLen)
		ids = append(ids[:maxSeqLen-1], p.vocab.EOSID())
	}

	outputIDs, err := p.generate(ctx, ids)
	if err != nil {
		return "", err
	}

	return p.vocab.Decode(outputIDs), nil
}

// generate runs the model on the encoded input and returns generated IDs.
func (p *Pipeline) generate(ctx context.Context, ids []int32) ([]int32, error) {
	session, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer p.pool.Release(session)

	inputIDs := make([]int64, len(ids))
	attentionMask := make([]int64, len(ids))
	for i, id := range ids {
		inputIDs[i] = int64(id)
		attentionMask[i] = 1
	}

	raw, err := session.Generate(ctx, inputIDs, attentionMask)
	if err != nil {
		return nil, err
	}

	out := make([]int32, len(raw))
	for i, id := range raw {
		out[i] = int32(id)
	}
	return out, nil
}

// Close releases all resources.
func (p *Pipeline) Close() error {
	if p.pool != nil {
		return p.pool.Close()
	}
	return nil
}
