package model

// NumberFormat is the display format of one numbering level.
type NumberFormat int

const (
	FormatNone NumberFormat = iota
	FormatDecimal
	FormatBullet
	FormatLowerLetter
	FormatLowerRoman
	FormatUpperLetter
	FormatUpperRoman
)

func (f NumberFormat) String() string {
	switch f {
	case FormatDecimal:
		return "decimal"
	case FormatBullet:
		return "bullet"
	case FormatLowerLetter:
		return "lowerLetter"
	case FormatLowerRoman:
		return "lowerRoman"
	case FormatUpperLetter:
		return "upperLetter"
	case FormatUpperRoman:
		return "upperRoman"
	default:
		return "none"
	}
}

// Tristate is a boolean property that distinguishes "not set" from an
// explicit false. Serializers must emit TristateOff explicitly; dropping
// it would let an inherited bold leak back in.
type Tristate int

const (
	TristateInherit Tristate = iota
	TristateOn
	TristateOff
)

// Level is one rung of a numbering definition.
type Level struct {
	Index   int
	Format  NumberFormat
	Text    string // display pattern, e.g. "%1."
	Font    string
	Size    float64 // points; 0 = inherit
	Color   string  // hex RGB without '#'
	Bold    Tristate
	Left    int // left indent, twips
	Hanging int // hanging indent, twips
}

// Definition is a reusable ordered-list template ("abstract numbering"):
// an ordered set of levels, typically indices 0 through 8.
type Definition struct {
	ID     int
	Levels []*Level
}

// Level returns the level with the given index, or nil when the
// definition does not define it.
func (d *Definition) Level(index int) *Level {
	for _, lvl := range d.Levels {
		if lvl.Index == index {
			return lvl
		}
	}
	return nil
}

// Reference is a list instance binding a NumID (what paragraphs point at)
// to a definition.
type Reference struct {
	ID           int
	DefinitionID int
}

// Numbering is the document's numbering registry.
type Numbering struct {
	defs map[int]*Definition
	refs map[int]*Reference

	nextDefID int
	nextRefID int
}

// NewNumbering returns an empty registry.
func NewNumbering() *Numbering {
	return &Numbering{
		defs:      make(map[int]*Definition),
		refs:      make(map[int]*Reference),
		nextDefID: 1,
		nextRefID: 1,
	}
}

// AddDefinition registers def and returns its id. A zero ID is assigned;
// a caller-provided positive ID is kept.
func (n *Numbering) AddDefinition(def *Definition) int {
	if def.ID == 0 {
		def.ID = n.nextDefID
	}
	if def.ID >= n.nextDefID {
		n.nextDefID = def.ID + 1
	}
	n.defs[def.ID] = def
	return def.ID
}

// NewReference creates a list instance for the given definition and
// returns its NumID. The definition does not need to exist yet.
func (n *Numbering) NewReference(definitionID int) int {
	ref := &Reference{ID: n.nextRefID, DefinitionID: definitionID}
	n.nextRefID++
	n.refs[ref.ID] = ref
	return ref.ID
}

// Lookup returns the definition with the given id, or nil.
func (n *Numbering) Lookup(definitionID int) *Definition {
	return n.defs[definitionID]
}

// Definition resolves a NumID through its reference to the underlying
// definition. Any miss along the way returns nil: a dangling id is
// treated as "no numbering", never as an error.
func (n *Numbering) Definition(numID int) *Definition {
	ref, ok := n.refs[numID]
	if !ok {
		return nil
	}
	return n.defs[ref.DefinitionID]
}

// DefinitionID resolves a NumID to its definition id, or 0 when the
// reference does not exist.
func (n *Numbering) DefinitionID(numID int) int {
	ref, ok := n.refs[numID]
	if !ok {
		return 0
	}
	return ref.DefinitionID
}

// References returns the NumIDs of every instance bound to the given
// definition, in ascending order of creation.
func (n *Numbering) References(definitionID int) []int {
	var ids []int
	for id := 1; id < n.nextRefID; id++ {
		if ref, ok := n.refs[id]; ok && ref.DefinitionID == definitionID {
			ids = append(ids, id)
		}
	}
	return ids
}
