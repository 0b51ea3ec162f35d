package vtf

import (
	"encoding/binary"
	"image"

	"github.com/m-mizutani/goerr/v2"
)

func decodePixels(f Format, src []byte, w, h int) (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	switch f {
	case FormatDXT1, FormatDXT1OneBitAlpha:
		decodeDXT(img, src, 8, func(block []byte, out *[16][4]uint8) { decodeColorBlock(block, out, true) })
	case FormatDXT3:
		decodeDXT(img, src, 16, decodeDXT3Block)
	case FormatDXT5:
		decodeDXT(img, src, 16, decodeDXT5Block)
	default:
		if err := decodeLinear(img, f, src); err != nil {
			return nil, err
		}
	}
	return img, nil
}

func decodeLinear(img *image.NRGBA, f Format, src []byte) error {
	_, bpp, _ := f.blockInfo()
	pix := img.Pix
	for i := 0; i*bpp < len(src) && i*4 < len(pix); i++ {
		p := src[i*bpp : i*bpp+bpp]
		d := pix[i*4 : i*4+4]
		switch f {
		case FormatRGBA8888:
			d[0], d[1], d[2], d[3] = p[0], p[1], p[2], p[3]
		case FormatABGR8888:
			d[0], d[1], d[2], d[3] = p[3], p[2], p[1], p[0]
		case FormatARGB8888:
			d[0], d[1], d[2], d[3] = p[1], p[2], p[3], p[0]
		case FormatBGRA8888:
			d[0], d[1], d[2], d[3] = p[2], p[1], p[0], p[3]
		case FormatBGRX8888:
			d[0], d[1], d[2], d[3] = p[2], p[1], p[0], 0xFF
		case FormatRGB888:
			d[0], d[1], d[2], d[3] = p[0], p[1], p[2], 0xFF
		case FormatBGR888:
			d[0], d[1], d[2], d[3] = p[2], p[1], p[0], 0xFF
		case FormatRGB565:
			r, g, b := unpack565(binary.LittleEndian.Uint16(p))
			d[0], d[1], d[2], d[3] = r, g, b, 0xFF
		case FormatBGR565:
			b, g, r := unpack565(binary.LittleEndian.Uint16(p))
			d[0], d[1], d[2], d[3] = r, g, b, 0xFF
		case FormatI8:
			d[0], d[1], d[2], d[3] = p[0], p[0], p[0], 0xFF
		case FormatIA88:
			d[0], d[1], d[2], d[3] = p[0], p[0], p[0], p[1]
		case FormatA8:
			d[0], d[1], d[2], d[3] = 0, 0, 0, p[0]
		default:
			return goerr.Wrap(ErrUnsupportedFormat, "cannot decode pixels", goerr.V("format", int32(f)))
		}
	}
	return nil
}

// unpack565 expands a 5:6:5 value, high bits first
func unpack565(v uint16) (uint8, uint8, uint8) {
	a := uint8((v >> 11) & 0x1F)
	b := uint8((v >> 5) & 0x3F)
	c := uint8(v & 0x1F)
	return a<<3 | a>>2, b<<2 | b>>4, c<<3 | c>>2
}

// decodeDXT walks 4x4 blocks, clipping at the image border
func decodeDXT(img *image.NRGBA, src []byte, blockBytes int, decode func(block []byte, out *[16][4]uint8)) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	bw := max(1, (w+3)/4)
	bh := max(1, (h+3)/4)

	var texels [16][4]uint8
	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			off := (by*bw + bx) * blockBytes
			if off+blockBytes > len(src) {
				return
			}
			decode(src[off:off+blockBytes], &texels)
			for ty := 0; ty < 4; ty++ {
				y := by*4 + ty
				if y >= h {
					break
				}
				for tx := 0; tx < 4; tx++ {
					x := bx*4 + tx
					if x >= w {
						break
					}
					i := img.PixOffset(x, y)
					copy(img.Pix[i:i+4], texels[ty*4+tx][:])
				}
			}
		}
	}
}

// decodeColorBlock decodes the 8 byte BC1 colour block. allowAlpha enables
// the 3-colour plus transparent mode used by DXT1.
func decodeColorBlock(block []byte, out *[16][4]uint8, allowAlpha bool) {
	c0 := binary.LittleEndian.Uint16(block[0:])
	c1 := binary.LittleEndian.Uint16(block[2:])
	bits := binary.LittleEndian.Uint32(block[4:])

	var palette [4][4]uint8
	r0, g0, b0 := unpack565(c0)
	r1, g1, b1 := unpack565(c1)
	palette[0] = [4]uint8{r0, g0, b0, 0xFF}
	palette[1] = [4]uint8{r1, g1, b1, 0xFF}

	if c0 > c1 || !allowAlpha {
		palette[2] = [4]uint8{mix(r0, r1, 2, 1), mix(g0, g1, 2, 1), mix(b0, b1, 2, 1), 0xFF}
		palette[3] = [4]uint8{mix(r0, r1, 1, 2), mix(g0, g1, 1, 2), mix(b0, b1, 1, 2), 0xFF}
	} else {
		palette[2] = [4]uint8{mix(r0, r1, 1, 1), mix(g0, g1, 1, 1), mix(b0, b1, 1, 1), 0xFF}
		palette[3] = [4]uint8{0, 0, 0, 0}
	}

	for i := 0; i < 16; i++ {
		out[i] = palette[(bits>>(2*i))&0x3]
	}
}

func mix(a, b uint8, wa, wb int) uint8 {
	return uint8((int(a)*wa + int(b)*wb) / (wa + wb))
}

func decodeDXT3Block(block []byte, out *[16][4]uint8) {
	decodeColorBlock(block[8:], out, false)
	alpha := binary.LittleEndian.Uint64(block[0:])
	for i := 0; i < 16; i++ {
		a := uint8((alpha >> (4 * i)) & 0xF)
		out[i][3] = a<<4 | a
	}
}

func decodeDXT5Block(block []byte, out *[16][4]uint8) {
	decodeColorBlock(block[8:], out, false)

	a0, a1 := block[0], block[1]
	var palette [8]uint8
	palette[0], palette[1] = a0, a1
	if a0 > a1 {
		for i := 1; i < 7; i++ {
			palette[i+1] = uint8((int(a0)*(7-i) + int(a1)*i) / 7)
		}
	} else {
		for i := 1; i < 5; i++ {
			palette[i+1] = uint8((int(a0)*(5-i) + int(a1)*i) / 5)
		}
		palette[6], palette[7] = 0, 0xFF
	}

	var bits uint64
	for i := 0; i < 6; i++ {
		bits |= uint64(block[2+i]) << (8 * i)
	}
	for i := 0; i < 16; i++ {
		out[i][3] = palette[(bits>>(3*i))&0x7]
	}
}
