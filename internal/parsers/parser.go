package parsers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/netip"
	"strings"
)

// Kind identifies the feed format of a provider.
type Kind uint8

const (
	// KindJSONPrefixList is a JSON document with a "prefixes" list whose
	// entries carry an "ip_prefix" field (AWS ip-ranges.json shape).
	KindJSONPrefixList Kind = iota + 1

	// KindGeofeedCSV is a comma-separated geofeed where the first field is a
	// CIDR. Lines whose first field does not contain "/" are dropped.
	KindGeofeedCSV

	// KindGeofeedCSVStrict is a comma-separated geofeed where the first field
	// must be a valid IPv4 network. Invalid lines are dropped silently.
	KindGeofeedCSVStrict

	// KindExitNodeList is the Tor exit-addresses format: only lines starting
	// with "ExitAddress" are used, the second token becomes "<ip>/32".
	KindExitNodeList

	// KindPlainCIDR is one candidate network per line. Invalid lines are
	// dropped silently, only IPv4 networks are kept.
	KindPlainCIDR
)

// exitNodeMarker starts the only lines of an exit-node list that carry an address.
const exitNodeMarker = "ExitAddress"

func (k Kind) String() string {
	switch k {
	case KindJSONPrefixList:
		return "json-prefix-list"
	case KindGeofeedCSV:
		return "geofeed-csv"
	case KindGeofeedCSVStrict:
		return "geofeed-csv-strict"
	case KindExitNodeList:
		return "exit-node-list"
	case KindPlainCIDR:
		return "plain-cidr"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Parse converts raw feed text into a sequence of CIDR strings using the
// given format. A malformed line never fails the parse; it is skipped.
// Only a structurally broken document (undecodable JSON) returns an error.
func Parse(kind Kind, content string) ([]string, error) {
	switch kind {
	case KindJSONPrefixList:
		return parseJSONPrefixList(content)
	case KindGeofeedCSV:
		return parseGeofeedCSV(content), nil
	case KindGeofeedCSVStrict:
		return parseGeofeedCSVStrict(content), nil
	case KindExitNodeList:
		return parseExitNodeList(content), nil
	case KindPlainCIDR:
		return parsePlainCIDR(content), nil
	default:
		return nil, fmt.Errorf("unknown parser kind: %s", kind)
	}
}

type prefixDocument struct {
	Prefixes []struct {
		IPPrefix string `json:"ip_prefix"`
	} `json:"prefixes"`
}

func parseJSONPrefixList(content string) ([]string, error) {
	var doc prefixDocument
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return nil, err
	}

	var cidrs []string
	for _, prefix := range doc.Prefixes {
		if prefix.IPPrefix != "" {
			cidrs = append(cidrs, prefix.IPPrefix)
		}
	}
	return cidrs, nil
}

func parseGeofeedCSV(content string) []string {
	var cidrs []string
	forEachLine(content, func(line string) {
		if line == "" || strings.HasPrefix(line, "#") {
			return
		}
		// CSV format: range,country,city
		cidr := strings.TrimSpace(strings.SplitN(line, ",", 2)[0])
		if strings.Contains(cidr, "/") {
			cidrs = append(cidrs, cidr)
		}
	})
	return cidrs
}

func parseGeofeedCSVStrict(content string) []string {
	var cidrs []string
	forEachLine(content, func(line string) {
		if line == "" || strings.HasPrefix(line, "#") {
			return
		}
		// CSV format: ip_prefix,alpha2code,region,city,postal_code
		cidr := strings.TrimSpace(strings.SplitN(line, ",", 2)[0])
		if isIPv4Network(cidr) {
			cidrs = append(cidrs, cidr)
		}
	})
	return cidrs
}

func parseExitNodeList(content string) []string {
	var cidrs []string
	forEachLine(content, func(line string) {
		if !strings.HasPrefix(line, exitNodeMarker+" ") {
			return
		}
		// Format: ExitAddress <ip> <timestamp>
		fields := strings.Fields(line)
		if len(fields) >= 2 {
			cidrs = append(cidrs, fields[1]+"/32")
		}
	})
	return cidrs
}

func parsePlainCIDR(content string) []string {
	var cidrs []string
	forEachLine(content, func(line string) {
		if line == "" || strings.HasPrefix(line, "#") {
			return
		}
		if isIPv4Network(line) {
			cidrs = append(cidrs, line)
		}
	})
	return cidrs
}

// forEachLine calls fn for every line of content, trimmed of surrounding
// whitespace. Exit-node lists rely on the marker surviving the trim, which
// TrimSpace guarantees.
func forEachLine(content string, fn func(line string)) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fn(strings.TrimSpace(scanner.Text()))
	}
}

// isIPv4Network reports whether s is a syntactically valid IPv4 network.
// A bare address without a prefix length counts as a valid network, matching
// the permissive behavior of the upstream geofeed consumers.
func isIPv4Network(s string) bool {
	if strings.Contains(s, "/") {
		prefix, err := netip.ParsePrefix(s)
		return err == nil && prefix.Addr().Is4()
	}
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is4()
}
