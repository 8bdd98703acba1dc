package branch

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/utils/logging"
)

// Resolver normalizes free-text branch names to canonical program names
// via a bidirectional alias table plus the list of canonical names known
// from the cutoff data. The tables are built once and immutable.
type Resolver struct {
	aliasToCanonical map[string]string
	canonicalToAlias map[string]string
	canonicals       []string
}

// NewResolver builds a resolver from `full name:alias` lines and the
// canonical branch names observed in the loaded data. A missing alias file
// degrades to an empty alias table: the resolver then recognizes only
// canonical full names, and never returns an error.
func NewResolver(ctx context.Context, path string, canonicals []string) *Resolver {
	r := &Resolver{
		aliasToCanonical: make(map[string]string),
		canonicalToAlias: make(map[string]string),
		canonicals:       canonicals,
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		logging.From(ctx).Warn("branch alias file unavailable, aliases disabled",
			"path", path, logging.ErrAttr(err))
		return r
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		canonical, alias, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		canonical = strings.TrimSpace(canonical)
		alias = strings.TrimSpace(alias)
		if canonical == "" || alias == "" {
			continue
		}
		r.aliasToCanonical[strings.ToLower(alias)] = canonical
		r.canonicalToAlias[strings.ToLower(canonical)] = alias
	}
	if err := scanner.Err(); err != nil {
		logging.From(ctx).Warn("failed reading branch alias file", "path", path, logging.ErrAttr(err))
	}

	return r
}

// NewResolverFromMap builds a resolver directly from alias→canonical
// pairs, for tests.
func NewResolverFromMap(aliases map[string]string, canonicals []string) *Resolver {
	r := &Resolver{
		aliasToCanonical: make(map[string]string, len(aliases)),
		canonicalToAlias: make(map[string]string, len(aliases)),
		canonicals:       canonicals,
	}
	for alias, canonical := range aliases {
		r.aliasToCanonical[strings.ToLower(alias)] = canonical
		r.canonicalToAlias[strings.ToLower(canonical)] = alias
	}
	return r
}

// Normalize resolves input to a canonical branch name. It lowercases and
// trims the input, checks the alias table for an exact match, then scans
// canonical names for a case-insensitive exact match (no prefix or fuzzy
// matching). The second return is false when the input names no known
// branch; that is an expected outcome, not a fault.
func (r *Resolver) Normalize(input string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(input))
	if key == "" {
		return "", false
	}

	if canonical, ok := r.aliasToCanonical[key]; ok {
		return canonical, true
	}

	for _, canonical := range r.aliasToCanonical {
		if strings.ToLower(canonical) == key {
			return canonical, true
		}
	}
	for _, canonical := range r.canonicals {
		if strings.ToLower(canonical) == key {
			return canonical, true
		}
	}

	return "", false
}

// Alias returns the shorthand for a canonical name, if one is defined.
func (r *Resolver) Alias(canonical string) (string, bool) {
	alias, ok := r.canonicalToAlias[strings.ToLower(canonical)]
	return alias, ok
}

// Size reports how many alias pairs were loaded.
func (r *Resolver) Size() int {
	return len(r.aliasToCanonical)
}
