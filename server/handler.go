package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path"
	"strings"

	"github.com/dargueta/squish"
	"github.com/dargueta/squish/utilities/compression"
)

// DefaultMaxUploadSize is the largest upload accepted when [Options] doesn't
// say otherwise.
const DefaultMaxUploadSize = 32 << 20

// Options configures a [CodecHandler].
type Options struct {
	// MaxUploadSize is the largest request body accepted, in bytes. Zero means
	// [DefaultMaxUploadSize].
	MaxUploadSize int64
}

// Response is the JSON body returned for a successful request.
type Response struct {
	Message    string            `json:"message"`
	Algorithm  string            `json:"algorithm"`
	OutputName string            `json:"outputName"`
	Stats      compression.Stats `json:"stats"`
	Output     []byte            `json:"output"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type transformFunc func(squish.Codec, []byte) ([]byte, compression.Stats, error)

// CodecHandler handles compression and decompression requests. Each request is
// processed independently; the handler holds no per-request state.
type CodecHandler struct {
	maxUploadSize int64
}

// NewCodecHandler creates a new handler.
func NewCodecHandler(opts Options) *CodecHandler {
	maxUploadSize := opts.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}
	return &CodecHandler{maxUploadSize: maxUploadSize}
}

// HandleCompress compresses the uploaded `file` with the codec named by the
// `algorithm` form field.
func (h *CodecHandler) HandleCompress(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "File compressed successfully", compression.CompressWithStats)
}

// HandleDecompress is the inverse of HandleCompress.
func (h *CodecHandler) HandleDecompress(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "File decompressed successfully", compression.DecompressWithStats)
}

// HandlePing responds with "Ok." for health checks.
func (h *CodecHandler) HandlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Ok.")
}

func (h *CodecHandler) handle(
	w http.ResponseWriter, r *http.Request, message string, transform transformFunc,
) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeError(w, http.StatusBadRequest, "Expected a multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	codec, err := compression.Lookup(r.FormValue("algorithm"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid algorithm")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	input, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	output, stats, err := transform(codec, input)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, squish.ErrMalformedInput) ||
			errors.Is(err, squish.ErrEmptyInput) ||
			errors.Is(err, squish.ErrInputTooLarge) {
			status = http.StatusUnprocessableEntity
		}
		log.Printf("%s %s failed on %q: %s", codec.Name(), r.URL.Path, header.Filename, err)
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Message:    message,
		Algorithm:  codec.Name(),
		OutputName: outputName(header.Filename, codec.Name(), stats.Operation),
		Stats:      stats,
		Output:     output,
	})
}

// outputName suggests a file name for the result: compressing appends an
// extension for the algorithm, decompressing strips it again.
func outputName(inputName, algorithm, operation string) string {
	inputName = path.Base(strings.ReplaceAll(inputName, "\\", "/"))
	extension := "." + algorithm
	if algorithm == squish.AlgorithmHuffman {
		extension = ".huff"
	}

	if operation == compression.OperationCompress {
		return inputName + extension
	}
	if trimmed := strings.TrimSuffix(inputName, extension); trimmed != inputName && trimmed != "" {
		return trimmed
	}
	return inputName + ".decoded"
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to write response: %s", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
