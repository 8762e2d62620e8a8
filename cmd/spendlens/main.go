package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/spendlens/spendlens/internal/extract"
	"github.com/spendlens/spendlens/internal/scanning"
	"github.com/spendlens/spendlens/internal/transaction"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-version" || arg == "-v" {
			fmt.Println(version)
			os.Exit(0)
		}
	}

	fs := ff.NewFlagSet("spendlens")
	var (
		dbPath      = fs.StringLong("db", "spendlens.db", "Database file path")
		storagePath = fs.StringLong("storage", "./receipts", "Storage directory path")
		scannerType = fs.StringLong("scanner", "gemini", "Text recognizer: 'gemini' or 'ollama'")
		geminiKey   = fs.StringLong("gemini-key", "", "Google Gemini API key (or set GEMINI_API_KEY env var)")
		geminiModel = fs.StringLong("gemini-model", "gemini-2.5-pro", "Google Gemini model name")
		ollamaURL   = fs.StringLong("ollama-url", "http://localhost:11434", "Ollama API base URL")
		ollamaModel = fs.StringLong("ollama-model", "llava", "Ollama model name (e.g., llava, llava-phi3, bakllava, qwen2-vl)")
		monthFirst  = fs.BoolLong("month-first", "Interpret numeric dates as MM/DD instead of DD/MM")
		maxAmount   = fs.IntLong("max-amount", 100000, "Exclusive upper bound for an accepted total")
		textMode    = fs.BoolLong("text", "Treat arguments as already-recognized text files, skipping OCR")
		showVersion = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("SPENDLENS"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	files := fs.GetArgs()
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintln(os.Stderr, "error: at least one receipt file is required")
		os.Exit(1)
	}

	parser := extract.NewParserWithOptions(extract.Options{
		MaxAmount:  float64(*maxAmount),
		MonthFirst: *monthFirst,
	})

	if *textMode {
		if !parseTextFiles(parser, files) {
			os.Exit(1)
		}
		return
	}

	slog.Info("Initializing database...")
	store, err := transaction.NewBoltStore(*dbPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	var recognizer scanning.Recognizer
	switch *scannerType {
	case "gemini":
		apiKey := *geminiKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			slog.Error("Gemini API key is required. Set --gemini-key flag or GEMINI_API_KEY environment variable")
			os.Exit(1)
		}
		slog.Info("Initializing Gemini recognizer...", "model", *geminiModel)
		recognizer, err = scanning.NewGemini(apiKey, *geminiModel)
		if err != nil {
			slog.Error("Failed to initialize Gemini", "error", err)
			os.Exit(1)
		}
	case "ollama":
		slog.Info("Initializing Ollama recognizer...", "url", *ollamaURL, "model", *ollamaModel)
		recognizer, err = scanning.NewOllama(*ollamaURL, *ollamaModel)
		if err != nil {
			slog.Error("Failed to initialize Ollama", "error", err)
			os.Exit(1)
		}
	default:
		slog.Error("Invalid scanner type", "type", *scannerType, "valid", "gemini or ollama")
		os.Exit(1)
	}
	defer recognizer.Close()

	slog.Info("Initializing storage...")
	fileStore, err := transaction.NewLocalStorage(*storagePath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}

	service := transaction.NewService(store, recognizer, fileStore, parser)

	ok := true
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Error("Failed to read receipt file", "file", path, "error", err)
			ok = false
			continue
		}

		txn, err := service.ProcessReceipt(filepath.Base(path), data, contentTypeFor(path))
		if err != nil {
			slog.Error("Failed to process receipt", "file", path, "error", err)
			ok = false
			continue
		}

		printJSON(txn)
	}
	if !ok {
		os.Exit(1)
	}
}

// parseTextFiles runs the extraction pipeline directly over raw text files
func parseTextFiles(parser *extract.Parser, files []string) bool {
	ok := true
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Error("Failed to read text file", "file", path, "error", err)
			ok = false
			continue
		}

		result, err := parser.Parse(string(data))
		if err != nil {
			slog.Error("Failed to parse receipt text", "file", path, "error", err)
			ok = false
			continue
		}

		printJSON(result)
	}
	return ok
}

// contentTypeFor resolves a content type from the file extension, covering
// the receipt formats the mime package does not know about.
func contentTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".heic", ".heif":
		return "image/heic"
	}
	if contentType := mime.TypeByExtension(filepath.Ext(path)); contentType != "" {
		return contentType
	}
	return "image/jpeg"
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		slog.Error("Failed to encode result", "error", err)
		return
	}
	fmt.Println(string(out))
}
