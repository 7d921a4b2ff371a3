package eflr

import (
	"fmt"

	"github.com/bgrewell/dlis-kit/pkg/attribute"
	"github.com/bgrewell/dlis-kit/pkg/consts"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// Set groups Items of one RP66 EFLR type (e.g. CHANNEL, FRAME) sharing one
// attribute template (§4.4).
type Set struct {
	setType  string
	name     string
	template []attribute.Spec
	items    []*Item
	names    map[string]int // item name -> count of items already using it
}

// NewSet constructs an empty Set. name may be empty for the common case of
// one set per type per file.
func NewSet(setType string, name string, template []attribute.Spec) *Set {
	return &Set{
		setType:  setType,
		name:     name,
		template: template,
		names:    map[string]int{},
	}
}

// SetType returns the RP66 set type identifier, e.g. "CHANNEL".
func (s *Set) SetType() string { return s.setType }

// Name returns the set's optional name.
func (s *Set) Name() string { return s.name }

// Items returns the set's items in registration order.
func (s *Set) Items() []*Item { return s.items }

// AddItem appends it to the set, assigning its copy number. It returns a
// SchemaViolation-shaped error if it does not carry one value per template
// slot.
func (s *Set) AddItem(it *Item) error {
	if len(it.values) != len(s.template) {
		return fmt.Errorf("eflr: item %q has %d attribute values, set %q expects %d",
			it.name, len(it.values), s.setType, len(s.template))
	}
	it.copyNumber = uint8(s.names[it.name])
	s.names[it.name]++
	s.items = append(s.items, it)
	return nil
}

// EncodeSetComponent writes the SET component: a descriptor byte followed
// by the IDENT set type and, if non-empty, the IDENT set name (§4.4, the
// 0xF8/0xF0 worked examples).
func (s *Set) EncodeSetComponent() ([]byte, error) {
	flags := uint8(consts.SetHasTypeMask)
	if s.name != "" {
		flags |= consts.SetHasNameMask
	}
	typeBytes, err := reprcode.EncodeIdent(s.setType)
	if err != nil {
		return nil, fmt.Errorf("eflr: set type: %w", err)
	}
	b := []byte{attribute.EncodeComponentDescriptor(consts.ComponentRoleSet, flags)}
	b = append(b, typeBytes...)
	if s.name != "" {
		nameBytes, err := reprcode.EncodeIdent(s.name)
		if err != nil {
			return nil, fmt.Errorf("eflr: set name: %w", err)
		}
		b = append(b, nameBytes...)
	}
	return b, nil
}

// EncodeTemplate writes the TEMPLATE component sequence: one attribute
// component per template slot, in order (§4.4).
func (s *Set) EncodeTemplate() ([]byte, error) {
	var b []byte
	for _, spec := range s.template {
		tb, err := attribute.EncodeTemplate(spec)
		if err != nil {
			return nil, fmt.Errorf("eflr: set %q template: %w", s.setType, err)
		}
		b = append(b, tb...)
	}
	return b, nil
}

// EncodeObject writes one OBJECT component (descriptor + OBNAME) followed
// by its item's attribute components, in template order (§4.4).
func (s *Set) EncodeObject(originReference uint32, it *Item) ([]byte, error) {
	name := reprcode.OName{OriginReference: originReference, CopyNumber: it.copyNumber, Name: it.name}
	nameBytes, err := reprcode.EncodeOBNAME(name)
	if err != nil {
		return nil, fmt.Errorf("eflr: object name: %w", err)
	}
	b := []byte{attribute.EncodeComponentDescriptor(consts.ComponentRoleObject, consts.ObjectHasNameMask)}
	b = append(b, nameBytes...)

	for i, av := range it.values {
		vb, err := attribute.EncodeValue(s.template[i].ReprCode, av.Values, av.Units)
		if err != nil {
			return nil, fmt.Errorf("eflr: item %q attribute %q: %w", it.name, s.template[i].Label, err)
		}
		b = append(b, vb...)
	}
	return b, nil
}

// EncodeBody writes the complete EFLR body: the SET component, the
// TEMPLATE, and one OBJECT sequence per item. A Set with no items produces
// no bytes at all (§8's empty-EFLRSet edge case), since there is nothing
// for a reader to index.
func (s *Set) EncodeBody(originReference uint32) ([]byte, error) {
	if len(s.items) == 0 {
		return nil, nil
	}

	setBytes, err := s.EncodeSetComponent()
	if err != nil {
		return nil, err
	}
	templateBytes, err := s.EncodeTemplate()
	if err != nil {
		return nil, err
	}

	b := make([]byte, 0, len(setBytes)+len(templateBytes))
	b = append(b, setBytes...)
	b = append(b, templateBytes...)

	for _, it := range s.items {
		ob, err := s.EncodeObject(originReference, it)
		if err != nil {
			return nil, err
		}
		b = append(b, ob...)
	}
	return b, nil
}
