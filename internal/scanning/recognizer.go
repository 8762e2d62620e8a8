package scanning

// Recognizer defines the interface for turning a receipt image or PDF into
// raw text. Implementations may return empty text for unreadable documents;
// making sense of the text is the extraction pipeline's job, not theirs.
type Recognizer interface {
	// RecognizeText reads all visible text from a receipt document
	RecognizeText(imageData []byte, contentType string) (string, error)
	// Close closes the recognizer and releases resources
	Close() error
}
