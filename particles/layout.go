package particles

import (
	"encoding/binary"
	"fmt"
	stdmath "math"
)

// DataType is the scalar type of one attribute component as the GPU reads it.
type DataType int

const (
	Float        DataType = iota // 32-bit float, read as-is
	UnsignedByte                 // 8-bit unsigned, normalized to 0..1 by the GPU
)

// Size returns the width in bytes of one component.
func (t DataType) Size() int {
	switch t {
	case UnsignedByte:
		return 1
	default:
		return 4
	}
}

func (t DataType) String() string {
	switch t {
	case Float:
		return "float"
	case UnsignedByte:
		return "ubyte"
	default:
		return fmt.Sprintf("DataType(%d)", int(t))
	}
}

// Semantic names the Particle field an attribute carries.
type Semantic int

const (
	SemanticPosition Semantic = iota
	SemanticSize
	SemanticBirth
	SemanticDuration
	SemanticColor
	SemanticVelocity
	SemanticOrientation
)

var semanticNames = [...]string{"position", "size", "birth", "duration", "color", "velocity", "orientation"}

func (s Semantic) String() string {
	if int(s) >= 0 && int(s) < len(semanticNames) {
		return semanticNames[s]
	}
	return fmt.Sprintf("Semantic(%d)", int(s))
}

// Attribute is one entry of the vertex attribute schema: which field, its scalar
// type, and how many components of that field are stored.
type Attribute struct {
	Semantic   Semantic
	Type       DataType
	Components int
}

// Size returns the number of bytes the attribute occupies in a record.
func (a Attribute) Size() int {
	return a.Type.Size() * a.Components
}

// Layout is the ordered attribute schema of one interleaved particle record.
// Attribute i is bound to shader location i.
type Layout []Attribute

// DefaultLayout is position(2) size(1) birth(1) duration(1) color(4) velocity(2), all float.
var DefaultLayout = Layout{
	{SemanticPosition, Float, 2},
	{SemanticSize, Float, 1},
	{SemanticBirth, Float, 1},
	{SemanticDuration, Float, 1},
	{SemanticColor, Float, 4},
	{SemanticVelocity, Float, 2},
}

// RGBLayout stores a 3-component color; the GPU supplies alpha = 1.
var RGBLayout = Layout{
	{SemanticPosition, Float, 2},
	{SemanticSize, Float, 1},
	{SemanticBirth, Float, 1},
	{SemanticDuration, Float, 1},
	{SemanticColor, Float, 3},
	{SemanticVelocity, Float, 2},
}

// RotatedLayout is DefaultLayout followed by the sprite orientation.
var RotatedLayout = Layout{
	{SemanticPosition, Float, 2},
	{SemanticSize, Float, 1},
	{SemanticBirth, Float, 1},
	{SemanticDuration, Float, 1},
	{SemanticColor, Float, 4},
	{SemanticVelocity, Float, 2},
	{SemanticOrientation, Float, 1},
}

// PackedColorLayout stores color as four normalized bytes.
var PackedColorLayout = Layout{
	{SemanticPosition, Float, 2},
	{SemanticSize, Float, 1},
	{SemanticBirth, Float, 1},
	{SemanticDuration, Float, 1},
	{SemanticColor, UnsignedByte, 4},
	{SemanticVelocity, Float, 2},
}

// LayoutByName resolves the layout names accepted in configuration files.
func LayoutByName(name string) (Layout, error) {
	switch name {
	case "", "default":
		return DefaultLayout, nil
	case "rgb":
		return RGBLayout, nil
	case "rotated":
		return RotatedLayout, nil
	case "packed":
		return PackedColorLayout, nil
	}
	return nil, fmt.Errorf("unknown particle layout %q", name)
}

// Stride returns the byte distance between consecutive records.
func (l Layout) Stride() int {
	n := 0
	for _, a := range l {
		n += a.Size()
	}
	return n
}

// Offset returns the byte offset of attribute i inside a record.
func (l Layout) Offset(i int) int {
	n := 0
	for _, a := range l[:i] {
		n += a.Size()
	}
	return n
}

// Encode writes p into dst using the layout. dst must hold at least Stride() bytes.
// Components are written in host byte order, which is what the driver reads.
func (l Layout) Encode(dst []byte, p Particle) {
	off := 0
	for _, a := range l {
		v := p.component(a.Semantic)
		for c := 0; c < a.Components; c++ {
			switch a.Type {
			case UnsignedByte:
				dst[off] = unorm8(v[c])
				off++
			default:
				binary.NativeEndian.PutUint32(dst[off:], stdmath.Float32bits(v[c]))
				off += 4
			}
		}
	}
}

// Decode reads one record back through the layout. Fields the layout does not
// carry stay zero, except a 3-component color whose alpha reads as 1 the way
// the GPU fills a missing fourth component.
func (l Layout) Decode(src []byte) Particle {
	var p Particle
	off := 0
	for _, a := range l {
		var v [4]float32
		if a.Semantic == SemanticColor {
			v[3] = 1
		}
		for c := 0; c < a.Components; c++ {
			switch a.Type {
			case UnsignedByte:
				v[c] = float32(src[off]) / 255
				off++
			default:
				v[c] = stdmath.Float32frombits(binary.NativeEndian.Uint32(src[off:]))
				off += 4
			}
		}
		p.setComponent(a.Semantic, v)
	}
	return p
}

func unorm8(v float32) byte {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return byte(v*255 + 0.5)
}
