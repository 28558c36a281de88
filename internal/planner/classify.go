package planner

// PathKind says which production path a product resolved to.
type PathKind int

const (
	// PathUnresolved covers products with no path configured and products
	// whose style/dough reference is missing from the catalog. Both are
	// tolerated and excluded from the plan rather than raised as errors:
	// one bad catalog row must not abort a whole site's plan.
	PathUnresolved PathKind = iota
	PathDirect
	PathLaminated
)

func (k PathKind) String() string {
	switch k {
	case PathDirect:
		return "direct"
	case PathLaminated:
		return "laminated"
	default:
		return "unresolved"
	}
}

// PathResolution is the outcome of classifying one product. Dough is set
// for both resolved kinds; Style only for PathLaminated. A laminated
// product's effective dough is always its style's owning dough.
type PathResolution struct {
	Kind  PathKind
	Dough *BaseDough
	Style *LaminationStyle
}

// catalogIndex gives id lookups over a fetched catalog. Pointers reference
// the backing dough slice so a style and its dough stay connected.
type catalogIndex struct {
	doughs map[string]*BaseDough
	styles map[string]*LaminationStyle
}

func indexCatalog(doughs []BaseDough) catalogIndex {
	idx := catalogIndex{
		doughs: make(map[string]*BaseDough, len(doughs)),
		styles: make(map[string]*LaminationStyle),
	}
	for i := range doughs {
		d := &doughs[i]
		idx.doughs[d.ID] = d
		for j := range d.Styles {
			s := &d.Styles[j]
			idx.styles[s.ID] = s
		}
	}
	return idx
}

// ResolvePath classifies one product against the catalog. The lamination
// path wins when both references are somehow set; a dangling reference
// resolves to PathUnresolved.
func ResolvePath(p Product, idx catalogIndex) PathResolution {
	if p.LaminationStyleID != nil {
		style, ok := idx.styles[*p.LaminationStyleID]
		if !ok {
			return PathResolution{Kind: PathUnresolved}
		}
		dough, ok := idx.doughs[style.BaseDoughID]
		if !ok {
			return PathResolution{Kind: PathUnresolved}
		}
		return PathResolution{Kind: PathLaminated, Dough: dough, Style: style}
	}
	if p.BaseDoughID != nil {
		dough, ok := idx.doughs[*p.BaseDoughID]
		if !ok {
			return PathResolution{Kind: PathUnresolved}
		}
		return PathResolution{Kind: PathDirect, Dough: dough}
	}
	return PathResolution{Kind: PathUnresolved}
}
