package transaction

import (
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spendlens/spendlens/internal/extract"
	"github.com/spendlens/spendlens/internal/scanning"
)

// IDGenerator generates unique IDs for transactions
type IDGenerator interface {
	Generate() string
}

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

// defaultIDGenerator generates IDs using UnixNano timestamp
type defaultIDGenerator struct{}

func (g *defaultIDGenerator) Generate() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

// defaultTimeSource provides the current time
type defaultTimeSource struct{}

func (t *defaultTimeSource) Now() time.Time {
	return time.Now()
}

// Service turns receipt files into stored transactions. It owns the I/O the
// extraction pipeline refuses to do: file storage, text recognition and
// persistence.
type Service struct {
	store       Store
	recognizer  scanning.Recognizer
	storage     Storage
	parser      *extract.Parser
	idGenerator IDGenerator
	timeSource  TimeSource
}

// NewService creates a new Service with default ID generator and time source
func NewService(store Store, recognizer scanning.Recognizer, storage Storage, parser *extract.Parser) *Service {
	return &Service{
		store:       store,
		recognizer:  recognizer,
		storage:     storage,
		parser:      parser,
		idGenerator: &defaultIDGenerator{},
		timeSource:  &defaultTimeSource{},
	}
}

// NewServiceWithDeps creates a new Service with custom dependencies for testing
func NewServiceWithDeps(store Store, recognizer scanning.Recognizer, storage Storage, parser *extract.Parser, idGen IDGenerator, timeSrc TimeSource) *Service {
	return &Service{
		store:       store,
		recognizer:  recognizer,
		storage:     storage,
		parser:      parser,
		idGenerator: idGen,
		timeSource:  timeSrc,
	}
}

// sanitizeFilename cleans up a filename by removing special characters and truncating length
func sanitizeFilename(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	reg := regexp.MustCompile(`[^a-zA-Z0-9\s\-_]`)
	base = reg.ReplaceAllString(base, "")

	reg = regexp.MustCompile(`\s+`)
	base = reg.ReplaceAllString(base, " ")

	base = strings.TrimSpace(base)

	// Phone cameras produce very long names
	maxLen := 50
	if len(base) > maxLen {
		base = base[:maxLen]
	}

	if base == "" {
		base = "receipt"
	}

	return base + ext
}

// ProcessReceipt stores a receipt file, recognizes its text, runs the
// extraction pipeline and persists the resulting transaction. Extraction
// failures (blank text, no usable amount) are returned to the caller, who
// decides whether to retry or fall back to manual entry.
func (s *Service) ProcessReceipt(filename string, data []byte, contentType string) (*Transaction, error) {
	id := s.idGenerator.Generate()
	now := s.timeSource.Now()

	cleanFilename := sanitizeFilename(filename)

	savedPath, err := s.storage.Save(fmt.Sprintf("%s_%s", id, cleanFilename), data)
	if err != nil {
		return nil, fmt.Errorf("saving file: %w", err)
	}

	rawText, err := s.recognizer.RecognizeText(data, contentType)
	if err != nil {
		slog.Error("Failed to recognize receipt text",
			"filename", filename,
			"content_type", contentType,
			"file_size", len(data),
			"error", err,
		)
		s.storage.Delete(savedPath)
		return nil, fmt.Errorf("recognizing receipt text: %w", err)
	}

	result, err := s.parser.Parse(rawText)
	if err != nil {
		slog.Warn("Failed to parse receipt text",
			"filename", filename,
			"text_length", len(rawText),
			"error", err,
		)
		s.storage.Delete(savedPath)
		return nil, fmt.Errorf("parsing receipt text: %w", err)
	}

	txn := &Transaction{
		ID:          id,
		Merchant:    result.Merchant,
		Description: result.Description,
		Category:    result.Category,
		Date:        result.Date,
		Amount:      int(math.Round(result.Amount * 100)),
		Items:       result.Items,
		Confidence:  result.Confidence,
		Filename:    savedPath,
		ContentType: contentType,
		RawText:     rawText,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.SaveTransaction(txn); err != nil {
		s.storage.Delete(savedPath)
		return nil, fmt.Errorf("saving transaction: %w", err)
	}

	return txn, nil
}

// GetTransaction retrieves a transaction by ID
func (s *Service) GetTransaction(id string) (*Transaction, error) {
	txn, err := s.store.GetTransaction(id)
	if err != nil {
		return nil, fmt.Errorf("getting transaction: %w", err)
	}
	return txn, nil
}

// ListTransactions returns all transactions
func (s *Service) ListTransactions() ([]*Transaction, error) {
	txns, err := s.store.ListTransactions()
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	return txns, nil
}

// DeleteTransaction removes a transaction and its receipt file
func (s *Service) DeleteTransaction(id string) error {
	txn, err := s.store.GetTransaction(id)
	if err != nil {
		return fmt.Errorf("getting transaction for deletion: %w", err)
	}

	if err := s.storage.Delete(txn.Filename); err != nil {
		// The record still goes away; the orphaned file is only noise
		slog.Warn("Failed to delete file", "filename", txn.Filename, "error", err)
	}

	if err := s.store.DeleteTransaction(id); err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}
	return nil
}

// GetReceiptFile retrieves the original receipt file for a transaction
func (s *Service) GetReceiptFile(id string) ([]byte, string, error) {
	txn, err := s.store.GetTransaction(id)
	if err != nil {
		return nil, "", fmt.Errorf("getting transaction: %w", err)
	}

	data, err := s.storage.Get(txn.Filename)
	if err != nil {
		return nil, "", fmt.Errorf("getting receipt file: %w", err)
	}

	return data, txn.ContentType, nil
}
