// Package selector picks the day's word set, balancing fresh vocabulary
// against review of previously studied words and deduplicating against
// history.
package selector

import (
	"context"
	"math/rand"
	"strings"
)

// Level is a learner difficulty band.
type Level string

// Category is a vocabulary domain.
type Category string

const (
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelExpert       Level = "expert"

	CategoryAcademic   Category = "academic"
	CategoryBusiness   Category = "business"
	CategoryScientific Category = "scientific"
	CategoryLiterary   Category = "literary"
	CategoryGeneral    Category = "general"
)

// Levels returns all difficulty bands in broadening order.
func Levels() []Level {
	return []Level{LevelIntermediate, LevelAdvanced, LevelExpert}
}

// Categories returns all vocabulary domains in broadening order.
func Categories() []Category {
	return []Category{CategoryAcademic, CategoryBusiness, CategoryScientific, CategoryLiterary, CategoryGeneral}
}

// CandidateSource produces vocabulary candidates for the selector.
// Implementations must be safe for concurrent use.
type CandidateSource interface {
	// Words returns up to count words for one level and category.
	Words(ctx context.Context, level Level, category Category, count int) ([]string, error)

	// Mixed returns up to count words drawn across levels and categories
	// according to the source's weighting.
	Mixed(ctx context.Context, count int) ([]string, error)
}

// Catalog is an immutable level-and-category word table built once at
// startup. It backs the selector when no model-generated candidates are
// available and anchors the weighting for mixed draws.
type Catalog struct {
	buckets map[Level]map[Category][]string
	mixed   []bucketWeight
}

type bucketWeight struct {
	level    Level
	category Category
	weight   int
}

// NewCatalog builds the embedded catalog. The mixed draw is weighted toward
// the buckets daily study benefits from most: intermediate academic and
// general words first, advanced business and scientific words next.
func NewCatalog() *Catalog {
	return &Catalog{
		buckets: catalogWords,
		mixed: []bucketWeight{
			{LevelIntermediate, CategoryAcademic, 3},
			{LevelIntermediate, CategoryGeneral, 3},
			{LevelAdvanced, CategoryBusiness, 2},
			{LevelAdvanced, CategoryScientific, 2},
			{LevelAdvanced, CategoryAcademic, 2},
			{LevelExpert, CategoryLiterary, 1},
			{LevelExpert, CategoryGeneral, 1},
		},
	}
}

// Words returns up to count words from one bucket, in randomized order.
func (c *Catalog) Words(_ context.Context, level Level, category Category, count int) ([]string, error) {
	bucket := c.buckets[level][category]
	out := make([]string, len(bucket))
	copy(out, bucket)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if count < len(out) {
		out = out[:count]
	}
	return out, nil
}

// Mixed returns up to count words drawn across buckets by weight, without
// duplicates.
func (c *Catalog) Mixed(ctx context.Context, count int) ([]string, error) {
	total := 0
	for _, bw := range c.mixed {
		total += bw.weight
	}

	seen := make(map[string]struct{}, count)
	var out []string
	for _, bw := range c.mixed {
		share := count * bw.weight / total
		if share < 1 {
			share = 1
		}
		words, _ := c.Words(ctx, bw.level, bw.category, share)
		for _, w := range words {
			key := strings.ToLower(w)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, w)
		}
		if len(out) >= count {
			break
		}
	}
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if count < len(out) {
		out = out[:count]
	}
	return out, nil
}

// catalogWords is the embedded vocabulary table. Never mutated after init.
var catalogWords = map[Level]map[Category][]string{
	LevelIntermediate: {
		CategoryAcademic: {
			"analyze", "concept", "derive", "establish", "evaluate",
			"factor", "indicate", "interpret", "method", "principle",
			"relevant", "significant", "structure", "theory", "valid",
			"consistent", "preliminary", "hypothesis", "criteria", "context",
		},
		CategoryBusiness: {
			"agenda", "budget", "client", "deadline", "invoice",
			"negotiate", "proposal", "revenue", "schedule", "strategy",
			"supplier", "target", "vendor", "forecast", "margin",
			"stakeholder", "logistics", "procurement", "turnover", "quota",
		},
		CategoryScientific: {
			"catalyst", "compound", "density", "element", "equation",
			"experiment", "frequency", "molecule", "organism", "particle",
			"reaction", "specimen", "variable", "velocity", "volume",
			"gravity", "membrane", "nutrient", "stimulus", "tissue",
		},
		CategoryLiterary: {
			"allegory", "character", "dialogue", "imagery", "metaphor",
			"narrative", "protagonist", "rhythm", "setting", "symbolism",
			"theme", "tone", "genre", "irony", "prose",
			"stanza", "satire", "memoir", "anthology", "foreshadow",
		},
		CategoryGeneral: {
			"accommodate", "anticipate", "appreciate", "appropriate", "beneficial",
			"crucial", "demonstrate", "distinct", "efficient", "essential",
			"facilitate", "fundamental", "maintain", "substantial", "thorough",
			"acquire", "adequate", "equivalent", "investigate", "particular",
		},
	},
	LevelAdvanced: {
		CategoryAcademic: {
			"ambiguous", "coherent", "empirical", "implicit", "inherent",
			"paradigm", "pragmatic", "qualitative", "rigorous", "substantiate",
			"synthesis", "tangible", "corroborate", "delineate", "extrapolate",
			"juxtapose", "plausible", "prominent", "salient", "scrutinize",
		},
		CategoryBusiness: {
			"arbitrage", "collateral", "consolidate", "depreciate", "dividend",
			"equity", "leverage", "liability", "liquidity", "merger",
			"portfolio", "solvency", "subsidiary", "acquisition", "amortize",
			"benchmark", "diversify", "escalate", "incentivize", "streamline",
		},
		CategoryScientific: {
			"anomaly", "calibrate", "correlation", "diffusion", "entropy",
			"equilibrium", "inertia", "isotope", "oscillate", "permeable",
			"polymer", "quantum", "resonance", "symbiosis", "threshold",
			"trajectory", "turbulence", "viscosity", "catalysis", "osmosis",
		},
		CategoryLiterary: {
			"allusion", "archetype", "cadence", "denouement", "elegy",
			"epiphany", "hyperbole", "lyricism", "motif", "pathos",
			"soliloquy", "subtext", "vernacular", "verisimilitude", "zeitgeist",
			"aphorism", "dissonance", "eloquence", "nuance", "poignant",
		},
		CategoryGeneral: {
			"contemplative", "deteriorate", "diligent", "ephemeral", "inevitable",
			"meticulous", "resilient", "serendipity", "sophisticated", "ubiquitous",
			"versatile", "advantageous", "authentic", "credible", "innovative",
			"intricate", "precise", "profound", "reluctant", "tenacious",
		},
	},
	LevelExpert: {
		CategoryAcademic: {
			"antithesis", "dialectic", "epistemology", "hermeneutic", "heuristic",
			"ontology", "postulate", "reductive", "teleological", "axiomatic",
			"dichotomy", "exegesis", "normative", "tautology", "syllogism",
		},
		CategoryBusiness: {
			"fiduciary", "indemnity", "oligopoly", "remuneration", "rescind",
			"solvent", "usury", "actuarial", "covenant", "expropriate",
			"moratorium", "tranche", "underwrite", "vested", "windfall",
		},
		CategoryScientific: {
			"chirality", "entanglement", "epigenetics", "homeostasis", "isomorphic",
			"morphogenesis", "phylogeny", "stochastic", "supersaturate", "tensor",
			"allele", "enzymatic", "gradient", "mutagen", "substrate",
		},
		CategoryLiterary: {
			"apocryphal", "bildungsroman", "chiaroscuro", "doppelganger", "ekphrasis",
			"grandiloquent", "lacuna", "palimpsest", "picaresque", "sesquipedalian",
			"anachronism", "bathos", "euphony", "litotes", "metonymy",
		},
		CategoryGeneral: {
			"abnegation", "equanimity", "intransigent", "obfuscate", "perspicacious",
			"pulchritude", "quixotic", "recalcitrant", "sycophant", "truculent",
			"disparate", "erudite", "insidious", "laconic", "magnanimous",
		},
	},
}
