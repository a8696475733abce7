package analyzer

import "sort"

// MostActive returns the cookies holding the highest count in freq, sorted
// lexicographically so ties are reported in a stable order.
func MostActive(freq FrequencyMap) []string {
	if len(freq) == 0 {
		return []string{}
	}

	highest := 0
	for _, count := range freq {
		if count > highest {
			highest = count
		}
	}

	cookies := make([]string, 0, 1)
	for cookie, count := range freq {
		if count == highest {
			cookies = append(cookies, cookie)
		}
	}
	sort.Strings(cookies)

	return cookies
}
