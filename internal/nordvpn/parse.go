package nordvpn

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// locationGroups are server groups that name regions rather than server
// features. The client lists them under "groups", but connecting to a
// region behaves like a plain country connect, so the interactive menu
// hides them. The set tracks the client's current taxonomy.
//
//nolint:gochecknoglobals // Fixed lookup set for group filtering
var locationGroups = map[string]struct{}{
	"Africa_The_Middle_East_And_India": {},
	"Asia_Pacific":                     {},
	"Europe":                           {},
	"The_Americas":                     {},
}

// sanitizeOutput strips the carriage-return spinner frames the client
// emits while waiting on the daemon, leaving clean newline-separated text.
func sanitizeOutput(out string) string {
	out = strings.ReplaceAll(out, "\r", "\n")
	return strings.TrimSpace(out)
}

// ParseCountries extracts country names from `nordvpn countries` output.
// Footnote lines starting with '*' (virtual location notes) are skipped;
// every other line is split on whitespace, one token per country.
func ParseCountries(out string) []string {
	var countries []string

	scanner := bufio.NewScanner(strings.NewReader(sanitizeOutput(out)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "*") {
			continue
		}
		for _, token := range strings.Fields(line) {
			token = strings.Trim(token, ",")
			if token == "" || token == "-" {
				continue
			}
			countries = append(countries, token)
		}
	}

	return countries
}

// ParseGroups extracts every server group from `nordvpn groups` output,
// including location groups. Tokenization matches ParseCountries.
func ParseGroups(out string) []string {
	return ParseCountries(out)
}

// FilterLocationGroups returns groups with the region-style location
// groups removed. The input slice is not modified.
func FilterLocationGroups(groups []string) []string {
	filtered := make([]string, 0, len(groups))
	for _, g := range groups {
		if _, isLocation := locationGroups[g]; isLocation {
			continue
		}
		filtered = append(filtered, g)
	}
	return filtered
}

// IsLocationGroup reports whether the named group is a region rather
// than a server feature.
func IsLocationGroup(group string) bool {
	_, ok := locationGroups[group]
	return ok
}

// ParseVersion extracts the semantic client version from `nordvpn version`
// output, e.g. "NordVPN Version 3.16.6" yields 3.16.6.
func ParseVersion(out string) (*semver.Version, error) {
	for _, token := range strings.Fields(sanitizeOutput(out)) {
		if v, err := semver.NewVersion(token); err == nil {
			return v, nil
		}
	}
	return nil, fmt.Errorf("no version found in client output %q", strings.TrimSpace(out))
}

// Status holds the parsed fields of `nordvpn status` output.
// Raw preserves the full sanitized output for fields the parser does
// not recognize.
type Status struct {
	State      string
	Server     string
	IP         string
	Country    string
	City       string
	Technology string
	Protocol   string
	Transfer   string
	Uptime     string
	Raw        string
}

// Connected reports whether the client is currently connected.
func (s *Status) Connected() bool {
	return strings.EqualFold(s.State, "Connected")
}

// ErrNoStatus means the status output contained no recognizable fields.
var ErrNoStatus = errors.New("no status fields in client output")

// ParseStatus parses the key/value lines of `nordvpn status` output.
func ParseStatus(out string) (*Status, error) {
	status := &Status{Raw: sanitizeOutput(out)}
	found := false

	scanner := bufio.NewScanner(strings.NewReader(status.Raw))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "status":
			status.State = value
		case "hostname", "current server":
			status.Server = value
		case "ip", "server ip":
			status.IP = value
		case "country":
			status.Country = value
		case "city":
			status.City = value
		case "current technology":
			status.Technology = value
		case "current protocol":
			status.Protocol = value
		case "transfer":
			status.Transfer = value
		case "uptime":
			status.Uptime = value
		default:
			continue
		}
		found = true
	}

	if !found {
		return nil, fmt.Errorf("%w: %q", ErrNoStatus, status.Raw)
	}
	return status, nil
}
