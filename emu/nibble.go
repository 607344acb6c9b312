package emu

// packNibbles combines two 4-bit values into one byte. lo is the left
// (even) element and ends up in bits 3-0, hi is the right (odd) element
// in bits 7-4.
func packNibbles(lo, hi uint8) uint8 {
	return lo&0x0F | (hi&0x0F)<<4
}

// unpackNibbles splits a packed byte into its even and odd elements.
func unpackNibbles(b uint8) (lo, hi uint8) {
	return b & 0x0F, b >> 4
}

// Nibbles is a byte-packed array of 4-bit elements, two per byte.
// Element 2i lives in the low nibble of byte i, element 2i+1 in the
// high nibble.
type Nibbles []uint8

// Len returns the number of 4-bit elements.
func (n Nibbles) Len() int {
	return len(n) * 2
}

// Get returns element i.
func (n Nibbles) Get(i int) uint8 {
	b := n[i>>1]
	if i&1 == 0 {
		return b & 0x0F
	}
	return b >> 4
}

// Set stores the low 4 bits of v as element i. The other element sharing
// the byte is left untouched.
func (n Nibbles) Set(i int, v uint8) {
	p := &n[i>>1]
	if i&1 == 0 {
		*p = *p&0xF0 | v&0x0F
	} else {
		*p = *p&0x0F | (v&0x0F)<<4
	}
}

// packPixels packs one-byte-per-element colour indices into dst.
// dst must hold at least (len(pix)+1)/2 bytes.
func packPixels(dst []uint8, pix []Colour) {
	n := Nibbles(dst)
	for i, p := range pix {
		n.Set(i, p)
	}
}

// unpackPixels expands packed elements from src into pix.
func unpackPixels(pix []Colour, src []uint8) {
	n := Nibbles(src)
	for i := range pix {
		pix[i] = n.Get(i)
	}
}
