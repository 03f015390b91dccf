// Package depverify implements the Dependency Verifier: it filters
// each file's imports down to the ones worth checking against a
// public package registry, probes the survivors concurrently through
// a disk-backed cache, and emits a hallucinated_dependency Finding for
// every import a registry reports as missing.
package depverify

import (
	"context"
	"path/filepath"
	"sort"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/hollowcheck/hollowcheck/internal/facts"
	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// Verifier runs the probe pipeline over a Fact Store's imports.
type Verifier struct {
	cache  *diskCache
	prober *prober
	cfg    model.DependencyConfig
}

// New builds a Verifier. cacheDir is the on-disk root for the
// registry probe cache; callers typically pass a subdirectory of
// os.UserCacheDir().
func New(cacheDir string, cfg model.DependencyConfig) (*Verifier, error) {
	c, err := newDiskCache(cacheDir, cfg.CacheTTLHours, cfg.CacheTTLHours > 0)
	if err != nil {
		return nil, err
	}
	timeout := time.Duration(cfg.ProbeTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Verifier{cache: c, prober: newProber(timeout), cfg: cfg}, nil
}

// importSite is one occurrence of an import in the tree, before
// dedup-by-canonical-name.
type importSite struct {
	file      string
	line      int
	canonical string
	raw       string
	reg       registry
}

type probeResult struct {
	key string
	out outcome
}

// Verify probes every qualifying import reachable from store and
// returns the hallucinated-dependency findings. Individual probe
// failures never surface as an error — they degrade to the unknown
// outcome — only cache setup problems in New can fail.
func (v *Verifier) Verify(ctx context.Context, store *facts.Store) []model.Finding {
	sites := v.collectSites(store)
	if len(sites) == 0 {
		return nil
	}

	// Dedup probes by (registry, canonical name): many files can import
	// the same package, but each unique pair is only probed once.
	firstSiteForKey := map[string]importSite{}
	var order []string
	for _, s := range sites {
		key := string(s.reg) + "\x00" + s.canonical
		if _, ok := firstSiteForKey[key]; !ok {
			firstSiteForKey[key] = s
			order = append(order, key)
		}
	}

	maxInFlight := v.cfg.MaxInFlight
	if maxInFlight <= 0 {
		maxInFlight = 8
	}

	resultsCh := make(chan probeResult, len(order))
	p := pool.New().WithMaxGoroutines(maxInFlight).WithContext(ctx)
	for _, key := range order {
		key := key
		s := firstSiteForKey[key]
		p.Go(func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				resultsCh <- probeResult{key, outcomeUnknown}
				return nil
			default:
			}
			if cached, ok := v.cache.get(s.reg, s.canonical); ok {
				resultsCh <- probeResult{key, cached}
				return nil
			}
			o := v.prober.probe(ctx, s.reg, s.canonical)
			if o != outcomeUnknown {
				_ = v.cache.put(s.reg, s.canonical, o)
			}
			resultsCh <- probeResult{key, o}
			return nil
		})
	}
	_ = p.Wait()
	close(resultsCh)

	results := make(map[string]outcome, len(order))
	for r := range resultsCh {
		results[r.key] = r.out
	}

	var findings []model.Finding
	for _, s := range sites {
		key := string(s.reg) + "\x00" + s.canonical
		o := results[key]
		switch o {
		case outcomeNotFound:
			findings = append(findings, hallucinatedFinding(s))
		case outcomeUnknown:
			if v.cfg.FailOnTimeout {
				findings = append(findings, hallucinatedFinding(s))
			}
		}
	}
	sort.Slice(findings, func(i, j int) bool {
		if findings[i].File != findings[j].File {
			return findings[i].File < findings[j].File
		}
		return findings[i].Line < findings[j].Line
	})
	return findings
}

// collectSites walks every parsed file's imports and keeps the ones
// the filtering pipeline (stdlib, allowlist, registry applicability)
// doesn't eliminate.
func (v *Verifier) collectSites(store *facts.Store) []importSite {
	var sites []importSite
	for _, pf := range store.Files() {
		reg, ok := registryForLanguage(pf.Language)
		if !ok {
			continue
		}
		if v.cfg.EnabledRegistries != nil && !v.cfg.EnabledRegistries[string(reg)] {
			continue
		}
		for _, imp := range pf.Imports {
			canonical := Canonicalize(pf.Language, imp.ModulePath)
			if IsStdlib(pf.Language, canonical, "") {
				continue
			}
			if v.isAllowlisted(imp.ModulePath) || v.isAllowlisted(canonical) {
				continue
			}
			sites = append(sites, importSite{
				file: pf.RelPath, line: imp.Line,
				raw: imp.ModulePath, canonical: canonical, reg: reg,
			})
		}
	}
	return sites
}

func (v *Verifier) isAllowlisted(name string) bool {
	for _, pattern := range v.cfg.Allowlist {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func hallucinatedFinding(s importSite) model.Finding {
	return model.Finding{
		Rule:        model.RuleHallucinatedDependency,
		Severity:    model.SeverityCritical,
		Points:      15,
		File:        s.file,
		Line:        s.line,
		Message:     "import \"" + s.raw + "\" not found on " + string(s.reg),
		RuleContext: s.raw,
	}
}
