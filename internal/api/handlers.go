package api

import (
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rangekit/rangefetch/internal/providers"
)

type providerInfo struct {
	Name       string `json:"name"`
	URL        string `json:"url,omitempty"`
	Parser     string `json:"parser,omitempty"`
	OutputFile string `json:"output_file,omitempty"`
	Manual     bool   `json:"manual"`
	HasOutput  bool   `json:"has_output"`
}

type providersResponse struct {
	Automated []providerInfo `json:"automated"`
	Manual    []providerInfo `json:"manual"`
}

func (s *Server) handleProvidersList(w http.ResponseWriter, r *http.Request) {
	resp := providersResponse{
		Automated: make([]providerInfo, 0, len(providers.Registry)),
		Manual:    make([]providerInfo, 0, len(providers.Manual)),
	}

	for _, name := range providers.Names() {
		p, _ := providers.Get(name)
		resp.Automated = append(resp.Automated, s.describeProvider(p))
	}
	for _, name := range providers.ManualNames() {
		resp.Manual = append(resp.Manual, providerInfo{
			Name:   name,
			URL:    providers.Manual[name],
			Manual: true,
		})
	}

	WriteJSON(w, http.StatusOK, resp)
}

func (s *Server) handleProviderGet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "provider_name")

	if p, ok := providers.Get(name); ok {
		WriteJSON(w, http.StatusOK, s.describeProvider(p))
		return
	}
	if url, ok := providers.Manual[name]; ok {
		WriteJSON(w, http.StatusOK, providerInfo{Name: name, URL: url, Manual: true})
		return
	}

	WriteNotFound(w, "unknown provider: "+name)
}

func (s *Server) handleListGet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "provider_name")

	p, ok := providers.Get(name)
	if !ok {
		WriteNotFound(w, "unknown provider: "+name)
		return
	}

	content, err := os.ReadFile(s.canonicalPath(p))
	if err != nil {
		if os.IsNotExist(err) {
			WriteNotFound(w, "no generated output for provider: "+name)
			return
		}
		WriteInternalError(w, "failed to read list file")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(content)
}

func (s *Server) handleChunksList(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "provider_name")

	if _, ok := providers.Get(name); !ok {
		WriteNotFound(w, "unknown provider: "+name)
		return
	}

	names, err := s.chunkFileNames(name)
	if err != nil {
		WriteNotFound(w, "no generated chunks for provider: "+name)
		return
	}

	WriteJSON(w, http.StatusOK, map[string][]string{"chunks": names})
}

func (s *Server) handleChunkGet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "provider_name")

	if _, ok := providers.Get(name); !ok {
		WriteNotFound(w, "unknown provider: "+name)
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 1 {
		WriteInvalidRequest(w, "chunk index must be a positive integer")
		return
	}

	names, err := s.chunkFileNames(name)
	if err != nil || index > len(names) {
		WriteNotFound(w, "no such chunk")
		return
	}

	content, err := os.ReadFile(filepath.Join(s.cfg.GetAbsChunksDir(), name, names[index-1]))
	if err != nil {
		WriteInternalError(w, "failed to read chunk file")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(content)
}

func (s *Server) describeProvider(p *providers.Provider) providerInfo {
	info := providerInfo{
		Name:       p.Name,
		URL:        p.URL,
		Parser:     p.Parser.String(),
		OutputFile: p.OutputFile,
	}
	if _, err := os.Stat(s.canonicalPath(p)); err == nil {
		info.HasOutput = true
	}
	return info
}

func (s *Server) canonicalPath(p *providers.Provider) string {
	return filepath.Join(s.cfg.GetAbsProvidersDir(), p.OutputFile)
}

// chunkFileNames lists a provider's chunk files, sorted by name. The index
// ordering matches the zero-padded sequence numbers in the file names.
func (s *Server) chunkFileNames(provider string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.cfg.GetAbsChunksDir(), provider))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
