// Package lists implements the provider pipeline: fetch a raw feed, parse it
// into CIDR strings, normalize (dedup + lexicographic sort), write the
// canonical per-provider list and split it into bounded-size chunk files.
//
// Each provider is processed independently; a failure is recorded in its
// ProviderResult and the run continues with the next provider. The Manager
// aggregates results into a RunSummary whose AllSucceeded predicate drives
// the process exit code.
//
// Typical usage:
//
//	manager := lists.NewManager(cfg)
//	summary, _ := manager.FetchProviders(providers.Names(), lists.FetchOptions{})
//	if !summary.AllSucceeded() {
//	    os.Exit(1)
//	}
package lists
