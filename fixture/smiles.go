package fixture

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/submatch/molgraph"
)

// Sentinel errors for SMILES parsing failures.
var (
	ErrUnexpectedCloseParen = errors.New("fixture: unmatched ')'")
	ErrUnknownElement       = errors.New("fixture: unrecognized element symbol")
	ErrDanglingBond         = errors.New("fixture: bond symbol with no following atom")
	ErrUnclosedRing         = errors.New("fixture: ring-closure digit never reopened/closed a pair")
)

// organic-subset elements this parser recognizes, longest symbols first
// so "Cl"/"Br" are not mistaken for "C"/"B"-then-next-atom.
var twoLetterElements = []string{"Cl", "Br"}
var oneLetterElements = map[rune]bool{'C': true, 'N': true, 'O': true, 'S': true, 'P': true, 'F': true, 'I': true}

func isBondSymbol(r rune) bool {
	switch r {
	case '-', '=', '#', ':':
		return true
	default:
		return false
	}
}

type ringEntry struct {
	vertex molgraph.VertexHandle
	bond   string
}

// smilesParser walks an organic-subset SMILES string left to right,
// tracking the most recently placed atom (prev), a branch stack
// for "(" / ")", and open ring-closure digits awaiting their partner.
type smilesParser struct {
	runes   []rune
	pos     int
	g       *molgraph.Mol
	prev    molgraph.VertexHandle
	pending string // bond symbol queued by a preceding bond character
	branch  []molgraph.VertexHandle
	rings   map[rune]ringEntry
	count   int
}

// ParseSMILES builds a molgraph.Graph from an organic-subset SMILES
// string. Atom ids are assigned "a1", "a2", ... in the order atoms
// appear in the string, matching spec §8's convention for naming target
// vertices.
func ParseSMILES(s string) (*molgraph.Mol, error) {
	p := &smilesParser{
		runes: []rune(s),
		g:     molgraph.NewGraph(),
		prev:  molgraph.InvalidVertex,
		rings: make(map[rune]ringEntry),
	}

	for p.pos < len(p.runes) {
		c := p.runes[p.pos]
		switch {
		case c == '(':
			p.branch = append(p.branch, p.prev)
			p.pos++
		case c == ')':
			if len(p.branch) == 0 {
				return nil, ErrUnexpectedCloseParen
			}
			p.prev = p.branch[len(p.branch)-1]
			p.branch = p.branch[:len(p.branch)-1]
			p.pos++
		case isBondSymbol(c):
			p.pending = string(c)
			p.pos++
		case c >= '0' && c <= '9':
			if err := p.closeOrOpenRing(c); err != nil {
				return nil, err
			}
			p.pos++
		default:
			if err := p.readAtom(); err != nil {
				return nil, err
			}
		}
	}

	if len(p.rings) > 0 {
		return nil, ErrUnclosedRing
	}

	return p.g, nil
}

func (p *smilesParser) readAtom() error {
	elem, width, err := p.matchElement()
	if err != nil {
		return err
	}
	p.pos += width

	p.count++
	id := fmt.Sprintf("a%d", p.count)
	v, err := p.g.AddAtom(id, elem)
	if err != nil {
		return fmt.Errorf("fixture: AddAtom %q: %w", id, err)
	}

	if p.prev != molgraph.InvalidVertex {
		bond := p.pending
		if bond == "" {
			bond = "-"
		}
		if _, err := p.g.AddBond(p.g.ID(p.prev), id, bond); err != nil {
			return fmt.Errorf("fixture: AddBond %s-%s: %w", p.g.ID(p.prev), id, err)
		}
	} else if p.pending != "" {
		return ErrDanglingBond
	}

	p.pending = ""
	p.prev = v

	return nil
}

func (p *smilesParser) matchElement() (string, int, error) {
	for _, sym := range twoLetterElements {
		if p.pos+2 <= len(p.runes) && string(p.runes[p.pos:p.pos+2]) == sym {
			return sym, 2, nil
		}
	}
	if p.pos < len(p.runes) && oneLetterElements[p.runes[p.pos]] {
		return string(p.runes[p.pos]), 1, nil
	}

	return "", 0, fmt.Errorf("%w: %q at offset %d", ErrUnknownElement, string(p.runes[p.pos]), p.pos)
}

func (p *smilesParser) closeOrOpenRing(digit rune) error {
	if entry, ok := p.rings[digit]; ok {
		delete(p.rings, digit)
		bond := p.pending
		if bond == "" {
			bond = entry.bond
		}
		if bond == "" {
			bond = "-"
		}
		p.pending = ""
		_, err := p.g.AddBond(p.g.ID(p.prev), p.g.ID(entry.vertex), bond)
		if err != nil {
			return fmt.Errorf("fixture: ring-closure bond: %w", err)
		}

		return nil
	}

	p.rings[digit] = ringEntry{vertex: p.prev, bond: p.pending}
	p.pending = ""

	return nil
}
