package token

import (
	"os"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/corpusgen/pen/penerr"
)

// Comparer compares two tokens and returns a negative, zero, or positive
// value following the usual strcmp convention. Absent compares strictly
// less than any present string. A Comparer must be a pure function: no
// allocation-free requirement is imposed on callers, but it must not
// block and must tolerate the absent token on either side.
type Comparer func(a, b Token) int

// Relation names one of the built-in comparison relations a Pen can be
// built with. The zero value is Ordinal.
type Relation int

const (
	// Ordinal compares tokens byte-for-byte.
	Ordinal Relation = iota
	// OrdinalIgnoreCase compares tokens byte-for-byte after ASCII/Unicode
	// case folding.
	OrdinalIgnoreCase
	// InvariantCulture compares tokens under a locale-independent
	// collation order.
	InvariantCulture
	// InvariantCultureIgnoreCase is InvariantCulture with case folding.
	InvariantCultureIgnoreCase
	// CurrentCulture compares tokens under the process's current locale,
	// read from LC_ALL/LC_COLLATE/LANG at the time Comparer is called.
	CurrentCulture
	// CurrentCultureIgnoreCase is CurrentCulture with case folding.
	CurrentCultureIgnoreCase
)

// String returns the canonical name of the relation.
func (r Relation) String() string {
	switch r {
	case Ordinal:
		return "ordinal"
	case OrdinalIgnoreCase:
		return "ordinal-ignore-case"
	case InvariantCulture:
		return "invariant-culture"
	case InvariantCultureIgnoreCase:
		return "invariant-culture-ignore-case"
	case CurrentCulture:
		return "current-culture"
	case CurrentCultureIgnoreCase:
		return "current-culture-ignore-case"
	default:
		return "unknown"
	}
}

// ParseRelation parses a relation tag (case-insensitive, dashes or
// underscores) into a Relation. Unsupported tags surface as the
// InvalidArgument error per spec §7.
func ParseRelation(s string) (Relation, error) {
	normalized := strings.ToLower(strings.ReplaceAll(s, "_", "-"))
	switch normalized {
	case "ordinal":
		return Ordinal, nil
	case "ordinal-ignore-case":
		return OrdinalIgnoreCase, nil
	case "invariant-culture":
		return InvariantCulture, nil
	case "invariant-culture-ignore-case":
		return InvariantCultureIgnoreCase, nil
	case "current-culture":
		return CurrentCulture, nil
	case "current-culture-ignore-case":
		return CurrentCultureIgnoreCase, nil
	default:
		return 0, penerr.New(penerr.InvalidArgument, "token: unsupported comparison relation %q", s)
	}
}

// Comparer returns the Comparer function implementing r.
func (r Relation) Comparer() Comparer {
	switch r {
	case Ordinal:
		return compareOrdinal
	case OrdinalIgnoreCase:
		return compareOrdinalIgnoreCase
	case InvariantCulture:
		return compareCollated(collate.New(language.Und))
	case InvariantCultureIgnoreCase:
		return compareCollated(collate.New(language.Und, collate.IgnoreCase))
	case CurrentCulture:
		return compareCollated(collate.New(currentLocale()))
	case CurrentCultureIgnoreCase:
		return compareCollated(collate.New(currentLocale(), collate.IgnoreCase))
	default:
		return compareOrdinal
	}
}

// currentLocale resolves the process locale from the environment,
// falling back to the undetermined (locale-neutral) tag. Go has no
// platform API for "current culture"; this is the documented, grounded
// approximation (see spec §9).
func currentLocale() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		if v := os.Getenv(key); v != "" {
			if tag, err := language.Parse(normalizeLocale(v)); err == nil {
				return tag
			}
		}
	}
	return language.Und
}

func normalizeLocale(v string) string {
	// Strip trailing encoding/modifier, e.g. "en_US.UTF-8" -> "en_US".
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	return strings.ReplaceAll(v, "_", "-")
}

func compareOrdinal(a, b Token) int {
	av, aok := a.Value()
	bv, bok := b.Value()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	default:
		return strings.Compare(av, bv)
	}
}

func compareOrdinalIgnoreCase(a, b Token) int {
	av, aok := a.Value()
	bv, bok := b.Value()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	default:
		return strings.Compare(strings.ToLower(av), strings.ToLower(bv))
	}
}

func compareCollated(c *collate.Collator) Comparer {
	return func(a, b Token) int {
		av, aok := a.Value()
		bv, bok := b.Value()
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		default:
			return c.CompareString(av, bv)
		}
	}
}

// Equivalent reports whether a and b are equal under comparer — the
// equivalence relation induced by the total order, not identity.
func Equivalent(comparer Comparer, a, b Token) bool {
	return comparer(a, b) == 0
}
