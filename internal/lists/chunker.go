package lists

import (
	"fmt"
	"path/filepath"

	"github.com/valyala/fasttemplate"

	"github.com/rangekit/rangefetch/internal/config"
)

// ChunkFile is one bounded-size slice of a provider's normalized output.
type ChunkFile struct {
	// Provider is the owning provider's name.
	Provider string
	// Index is the 1-based sequence number of this chunk.
	Index int
	// Path is the target file path for this chunk.
	Path string
	// CIDRs is the contiguous slice of entries for this chunk.
	CIDRs []string
}

// PlanChunks splits an already-normalized CIDR sequence into chunks of at
// most cfg.General.ChunkSize entries, in the given order. Chunk N holds the
// entries at positions [(N-1)*size, N*size). Planning performs no writes, so
// it doubles as the dry-run preview.
func PlanChunks(provider string, cidrs []string, cfg *config.Config) []ChunkFile {
	size := cfg.General.ChunkSize
	dir := filepath.Join(cfg.GetAbsChunksDir(), provider)

	if len(cidrs) <= size {
		// Provider fits in a single chunk
		return []ChunkFile{{
			Provider: provider,
			Index:    1,
			Path:     filepath.Join(dir, chunkFileName(cfg, provider, 1)),
			CIDRs:    cidrs,
		}}
	}

	var chunks []ChunkFile
	for start := 0; start < len(cidrs); start += size {
		end := start + size
		if end > len(cidrs) {
			end = len(cidrs)
		}
		index := start/size + 1
		chunks = append(chunks, ChunkFile{
			Provider: provider,
			Index:    index,
			Path:     filepath.Join(dir, chunkFileName(cfg, provider, index)),
			CIDRs:    cidrs[start:end],
		})
	}

	return chunks
}

// chunkFileName renders the configured chunk file name template. The index
// is zero-padded to width 3 so that files sort correctly.
func chunkFileName(cfg *config.Config, provider string, index int) string {
	return fasttemplate.ExecuteString(cfg.General.ChunkFileTemplate, "{{", "}}", map[string]interface{}{
		"provider": provider,
		"index":    fmt.Sprintf("%03d", index),
	})
}

// WriteChunks writes every planned chunk to disk.
func WriteChunks(chunks []ChunkFile) error {
	for _, chunk := range chunks {
		if err := writeLines(chunk.Path, chunk.CIDRs); err != nil {
			return fmt.Errorf("failed to write chunk %d of %s: %v", chunk.Index, chunk.Provider, err)
		}
	}
	return nil
}
