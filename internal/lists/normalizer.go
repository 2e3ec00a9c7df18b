package lists

import "sort"

// Normalize deduplicates the given CIDR strings and sorts them ascending by
// their literal text. The sort is deliberately lexicographic, not numeric:
// downstream consumers depend on the exact file ordering staying stable.
func Normalize(cidrs []string) []string {
	seen := make(map[string]struct{}, len(cidrs))
	result := make([]string, 0, len(cidrs))

	for _, cidr := range cidrs {
		if _, ok := seen[cidr]; ok {
			continue
		}
		seen[cidr] = struct{}{}
		result = append(result, cidr)
	}

	sort.Strings(result)
	return result
}
