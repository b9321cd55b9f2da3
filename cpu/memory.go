package cpu

// Memory is a flat, word-addressable memory image. It grows on demand:
// reads past the current length return 0, and writes past the current
// length zero-extend the image up to and including the target word
// (spec §3/§4.4). Byte and halfword addressing is emulated by lane
// selection within the containing word; lane 0 is the least
// significant byte (little-endian).
type Memory struct {
	words []uint32
}

// NewMemory returns an empty memory image.
func NewMemory() *Memory {
	return &Memory{}
}

// Reset empties the memory image.
func (m *Memory) Reset() {
	m.words = m.words[:0]
}

// Len returns the number of allocated words.
func (m *Memory) Len() uint32 {
	return uint32(len(m.words))
}

func (m *Memory) ensure(index uint32) {
	if index < uint32(len(m.words)) {
		return
	}
	grown := make([]uint32, index+1)
	copy(grown, m.words)
	m.words = grown
}

// ReadWord reads the word at byte address addr. The low two bits of
// addr are ignored (word reads are assumed aligned per spec §4.4).
func (m *Memory) ReadWord(addr uint32) uint32 {
	idx := addr >> 2
	if idx >= uint32(len(m.words)) {
		return 0
	}
	return m.words[idx]
}

// WriteWord writes value at byte address addr, zero-extending the
// image if necessary.
func (m *Memory) WriteWord(addr uint32, value uint32) {
	idx := addr >> 2
	m.ensure(idx)
	m.words[idx] = value
}

// ReadHalfword returns the 16-bit halfword selected by bit 1 of addr:
// bit 1 == 0 selects the low half, bit 1 == 1 the high half.
func (m *Memory) ReadHalfword(addr uint32) uint16 {
	word := m.ReadWord(addr &^ 3)
	if addr&2 == 0 {
		return uint16(word)
	}
	return uint16(word >> 16)
}

// WriteHalfword updates the selected half of the containing word,
// preserving the other half.
func (m *Memory) WriteHalfword(addr uint32, value uint16) {
	base := addr &^ 3
	word := m.ReadWord(base)
	if addr&2 == 0 {
		word = (word &^ 0x0000FFFF) | uint32(value)
	} else {
		word = (word &^ 0xFFFF0000) | (uint32(value) << 16)
	}
	m.WriteWord(base, word)
}

// ReadByte returns the byte selected by bits [1:0] of addr
// (00 -> LSB, 01/10/11 -> progressively more significant bytes).
func (m *Memory) ReadByte(addr uint32) byte {
	word := m.ReadWord(addr &^ 3)
	shift := (addr & 3) * 8
	return byte(word >> shift)
}

// WriteByte updates the selected byte of the containing word,
// preserving the other three bytes.
func (m *Memory) WriteByte(addr uint32, value byte) {
	base := addr &^ 3
	shift := (addr & 3) * 8
	word := m.ReadWord(base)
	word = (word &^ (0xFF << shift)) | (uint32(value) << shift)
	m.WriteWord(base, word)
}

// Append concatenates words to the end of the memory image and returns
// the byte address of the first appended word. Used only by the
// loader (spec §4.4/§6.2).
func (m *Memory) Append(words []uint32) uint32 {
	base := uint32(len(m.words)) * 4
	m.words = append(m.words, words...)
	return base
}
