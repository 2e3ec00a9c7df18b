// Package providers holds the static registry of supported IP-range feeds.
//
// The registry is a fixed, hand-maintained table. Adding a provider means
// adding a record here and, if its feed uses a new format, a parser kind in
// the parsers package.
package providers

import (
	"sort"

	"github.com/rangekit/rangefetch/internal/parsers"
)

// Provider describes one IP-range feed: where to fetch it, how to parse it
// and which canonical output file it maps to.
type Provider struct {
	// Name is the identifier used on the command line.
	Name string
	// URL is the feed location.
	URL string
	// Parser selects the format adapter for the fetched text.
	Parser parsers.Kind
	// OutputFile is the canonical list file name, relative to the providers
	// output directory.
	OutputFile string
}

// Registry is the full set of automated providers.
var Registry = []Provider{
	{
		Name:       "aws",
		URL:        "https://ip-ranges.amazonaws.com/ip-ranges.json",
		Parser:     parsers.KindJSONPrefixList,
		OutputFile: "aws.txt",
	},
	{
		Name:       "digitalocean",
		URL:        "https://www.digitalocean.com/geo/google.csv",
		Parser:     parsers.KindGeofeedCSV,
		OutputFile: "digitalocean.txt",
	},
	{
		Name:       "linode",
		URL:        "https://geoip.linode.com/",
		Parser:     parsers.KindGeofeedCSVStrict,
		OutputFile: "linode.txt",
	},
	{
		Name:       "tor",
		URL:        "https://check.torproject.org/exit-addresses",
		Parser:     parsers.KindExitNodeList,
		OutputFile: "tor-exit-nodes.txt",
	},
	{
		Name:       "vultr",
		URL:        "https://geofeed.constant.com/?text",
		Parser:     parsers.KindPlainCIDR,
		OutputFile: "vultr.txt",
	},
	{
		Name:       "vpn",
		URL:        "https://raw.githubusercontent.com/X4BNet/lists_vpn/main/output/vpn/ipv4.txt",
		Parser:     parsers.KindPlainCIDR,
		OutputFile: "vpn.txt",
	},
}

// Manual lists providers whose ranges have no machine-readable feed and must
// be extracted by hand. The URL may be empty when there is no public source
// at all. These never take part in the fetch pipeline.
var Manual = map[string]string{
	"hetzner":   "https://bgp.he.net/AS24940#_prefixes",
	"hostinger": "",
	"ovh":       "",
	"protonvpn": "https://protonvpn.com/vpn-servers",
}

// Get returns the provider with the given name.
func Get(name string) (*Provider, bool) {
	for i := range Registry {
		if Registry[i].Name == name {
			return &Registry[i], true
		}
	}
	return nil, false
}

// Names returns the names of all automated providers, sorted.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for _, p := range Registry {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// ManualNames returns the names of all manual providers, sorted.
func ManualNames() []string {
	names := make([]string, 0, len(Manual))
	for name := range Manual {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
