package build

import (
	"go.uber.org/zap"

	"ucss/class"
	"ucss/rules"
	"ucss/values"
)

// Stats summarizes a single generation pass.
type Stats struct {
	Candidates int // class strings fed in
	Parsed     int // candidates with valid class syntax
	Rules      int // unique rules produced
}

// Generator turns scanned class candidates into an ordered rule set.
type Generator struct {
	comp *rules.Composer
	log  *zap.Logger
}

// NewGenerator creates generator with the standard value registry.
func NewGenerator(opts rules.Options, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("generator")
	return &Generator{
		comp: rules.NewComposer(values.NewRegistry(), opts, log),
		log:  log,
	}
}

// Generate compiles candidates into CSS text. Candidates which do not
// parse or do not resolve to a known utility are silently dropped, the
// scanner is expected to produce noise.
func (g *Generator) Generate(candidates []string) (string, Stats) {

	stats := Stats{Candidates: len(candidates)}

	set := rules.NewSet()
	for _, c := range candidates {
		p, err := class.Parse(c)
		if err != nil {
			continue
		}
		stats.Parsed++

		r, ok := g.comp.Compose(p)
		if !ok {
			continue
		}
		set.Add(r)
	}
	stats.Rules = set.Len()

	set.Sort()

	g.log.Debug("Generated rules",
		zap.Int("candidates", stats.Candidates),
		zap.Int("parsed", stats.Parsed),
		zap.Int("rules", stats.Rules))

	return set.RenderAll(), stats
}
