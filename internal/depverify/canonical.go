package depverify

import "strings"

// registry identifies which package registry a canonicalized import
// name should be probed against.
type registry string

const (
	registryPyPI   registry = "pypi"
	registryNPM    registry = "npm"
	registryCrates registry = "crates"
	registryGo     registry = "goproxy"
)

// registryForLanguage maps a ParsedFile's Language to the probe
// registry that verifies its imports. Languages with no associated
// public registry (Java, C, C++, Ruby, PHP, Scala, Swift) are not
// probed at all: an empty registry mapping here means the verifier
// simply has nothing to check for them.
func registryForLanguage(language string) (registry, bool) {
	switch language {
	case "python":
		return registryPyPI, true
	case "javascript", "typescript", "tsx":
		return registryNPM, true
	case "rust":
		return registryCrates, true
	case "go":
		return registryGo, true
	default:
		return "", false
	}
}

// Canonicalize reduces a raw import path to the identifier its
// registry is keyed by.
func Canonicalize(language, raw string) string {
	switch language {
	case "python":
		trimmed := strings.TrimLeft(raw, ".")
		if i := strings.IndexByte(trimmed, '.'); i >= 0 {
			return trimmed[:i]
		}
		return trimmed
	case "javascript", "typescript", "tsx":
		if strings.HasPrefix(raw, "@") {
			if segs := strings.SplitN(raw, "/", 3); len(segs) >= 2 {
				return segs[0] + "/" + segs[1]
			}
			return raw
		}
		if i := strings.IndexByte(raw, '/'); i >= 0 {
			return raw[:i]
		}
		return raw
	case "go":
		segs := strings.Split(raw, "/")
		for i, s := range segs {
			if strings.Contains(s, ".") {
				end := i + 3
				if end > len(segs) {
					end = len(segs)
				}
				return strings.Join(segs[:end], "/")
			}
		}
		return raw
	case "rust":
		if i := strings.Index(raw, "::"); i >= 0 {
			return raw[:i]
		}
		return raw
	default:
		return raw
	}
}
