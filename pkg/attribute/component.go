// Package attribute implements RP66 V1's Attribute component: the
// label/representation-code/units/value model used by every EFLR template
// and object (§4.2).
package attribute

// descriptor packs a component role and a set of low-bit characteristic
// flags into RP66's one-byte component descriptor (§4.2, §4.4).
func descriptor(role uint8, flags uint8) byte {
	return EncodeComponentDescriptor(role, flags)
}

// EncodeComponentDescriptor packs any component's role (top 3 bits) and
// characteristic flags (low 5 bits) into RP66's one-byte component
// descriptor. SET and OBJECT components in pkg/eflr use this directly;
// ATTRIBUTE components go through EncodeTemplate/EncodeValue/EncodeAbsent.
func EncodeComponentDescriptor(role uint8, flags uint8) byte {
	return byte(role<<5) | (flags & 0b00011111)
}
