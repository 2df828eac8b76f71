// internal/signal/types.go
package signal

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

func init() {
	signalGroups["@all"] = AllSignals()
}

// SignalFromString converts a signal name or number to its numeric value.
func SignalFromString(s string) (int, error) {
	s = strings.TrimSpace(strings.ToUpper(s))

	// Try as number first
	if num, err := strconv.Atoi(s); err == nil {
		if num > 0 && num <= maxSignal {
			return num, nil
		}
		return 0, fmt.Errorf("signal number out of range: %d", num)
	}

	if sig, ok := signalNames[s]; ok {
		return sig, nil
	}

	// Try with SIG prefix
	if !strings.HasPrefix(s, "SIG") {
		if sig, ok := signalNames["SIG"+s]; ok {
			return sig, nil
		}
	}

	return 0, fmt.Errorf("unknown signal: %s", s)
}

// SignalName returns the name of a signal number.
func SignalName(sig int) string {
	if name, ok := signalByNumber[sig]; ok {
		return name
	}
	return fmt.Sprintf("SIG%d", sig)
}

// ExpandSignalGroup expands a signal group (e.g., "@fault") to its signal numbers.
func ExpandSignalGroup(group string) ([]int, error) {
	group = strings.ToLower(strings.TrimSpace(group))
	if signals, ok := signalGroups[group]; ok {
		return append([]int{}, signals...), nil
	}
	return nil, fmt.Errorf("unknown signal group: %s", group)
}

// IsSignalGroup returns true if the string is a signal group (starts with @).
func IsSignalGroup(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "@")
}

// ParseSignals resolves a list of names, numbers and groups. Duplicates are
// dropped and the result is sorted.
func ParseSignals(specs []string) ([]int, error) {
	seen := make(map[int]bool)
	var out []int
	for _, spec := range specs {
		var sigs []int
		if IsSignalGroup(spec) {
			g, err := ExpandSignalGroup(spec)
			if err != nil {
				return nil, err
			}
			sigs = g
		} else {
			sig, err := SignalFromString(spec)
			if err != nil {
				return nil, err
			}
			sigs = []int{sig}
		}
		for _, sig := range sigs {
			if !seen[sig] {
				seen[sig] = true
				out = append(out, sig)
			}
		}
	}
	sort.Ints(out)
	return out, nil
}

// AllSignals returns the standard signal numbers (1 through 31).
func AllSignals() []int {
	signals := make([]int, 31)
	for i := range signals {
		signals[i] = i + 1
	}
	return signals
}

var signalByNumber = func() map[int]string {
	m := make(map[int]string, len(signalNames))
	for name, num := range signalNames {
		// Aliases share a number; keep the alphabetically first name so the
		// result does not depend on map order.
		if cur, ok := m[num]; !ok || name < cur {
			m[num] = name
		}
	}
	return m
}()
