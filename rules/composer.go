package rules

import (
	"go.uber.org/zap"

	"ucss/class"
	"ucss/values"
	"ucss/variant"
)

// ValueResolver supplies declarations for base utilities. The values
// package provides the built-in registry; anything satisfying this
// interface can be plugged in instead.
type ValueResolver interface {
	Resolve(utility string, isArbitrary bool, arbitrary string) ([]values.Declaration, bool)
}

// Composer folds parsed class names into rules against a fixed value
// resolver and build options. It keeps no per-class state and is safe to use
// from concurrent producers.
type Composer struct {
	reg  ValueResolver
	opts Options
	log  *zap.Logger
}

// NewComposer creates a rule composer.
func NewComposer(reg ValueResolver, opts Options, log *zap.Logger) *Composer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Composer{reg: reg, opts: opts, log: log.Named("composer")}
}

// Compose builds the rule for one parsed class name. A false return means
// the base utility is unknown to the value resolver and the class yields no
// CSS - silently skipped, never an error.
func (c *Composer) Compose(p *class.Parsed) (*Rule, bool) {
	decls, ok := c.reg.Resolve(p.Utility, p.IsArbitrary, p.ArbitraryValue)
	if !ok {
		c.log.Debug("unknown utility ignored", zap.String("class", p.Raw))
		return nil, false
	}

	r := &Rule{
		Selector:  "." + escapeClassToken(p.Raw),
		Important: p.IsImportant,
	}

	for _, v := range p.Variants {
		c.apply(r, v, variant.Resolve(v))
	}

	for _, d := range decls {
		r.setDeclaration(d)
	}
	return r, true
}

// apply folds one resolved variant effect into the rule.
func (c *Composer) apply(r *Rule, v class.Variant, e variant.Effect) {
	switch e.Kind {
	case variant.PseudoClass, variant.PseudoElement:
		// left-to-right stacking: hover:focus: renders :hover:focus
		r.Pseudo += e.Selector

	case variant.Breakpoint, variant.ArbitraryMedia:
		// a rule holds a single media wrapper, the last media variant wins
		if r.Media != "" {
			c.log.Debug("media wrapper overwritten",
				zap.String("selector", r.Selector),
				zap.String("dropped", r.Media),
				zap.String("kept", e.Query))
		}
		r.Media = e.Query
		r.MediaWidth = e.Width

	case variant.Container:
		r.Container = e.Query

	case variant.DarkMode:
		// strategy is resolved here, at composition time, not during parsing
		if c.opts.Dark == DarkStrategyClass {
			r.ParentSelector = "." + escapeClassToken(c.opts.darkSelector()) + " " + r.ParentSelector
		} else {
			if r.Media != "" {
				c.log.Debug("media wrapper overwritten by dark scheme",
					zap.String("selector", r.Selector), zap.String("dropped", r.Media))
			}
			r.Media = variant.DarkSchemeQuery
			r.MediaWidth = 0
		}

	case variant.Group:
		r.ParentSelector += markerSelector("group", v.Name) + e.Selector + " "

	case variant.Peer:
		r.ParentSelector += markerSelector("peer", v.Name) + e.Selector + " ~ "

	case variant.Attribute:
		r.Pseudo = "[" + e.Attr + "]" + r.Pseudo

	case variant.Unsupported:
		c.log.Debug("unsupported variant ignored",
			zap.String("class", UnescapeClassToken(r.Selector[1:])),
			zap.String("variant", v.Token))
	}
}

// markerSelector builds the group/peer marker class selector, escaping the
// slash of a named marker ("group/sidebar" -> ".group\/sidebar").
func markerSelector(kind, name string) string {
	if name == "" {
		return "." + kind
	}
	return "." + escapeClassToken(kind+"/"+name)
}
