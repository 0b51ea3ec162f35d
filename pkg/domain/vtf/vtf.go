// Package vtf decodes the high resolution image of Valve Texture Format files.
//
// Importing the package registers the "vtf" format with the image package.
package vtf

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"io"

	"github.com/m-mizutani/goerr/v2"
)

const signature = "VTF\x00"

// Format is a VTF image format identifier
type Format int32

const (
	FormatNone            Format = -1
	FormatRGBA8888        Format = 0
	FormatABGR8888        Format = 1
	FormatRGB888          Format = 2
	FormatBGR888          Format = 3
	FormatRGB565          Format = 4
	FormatI8              Format = 5
	FormatIA88            Format = 6
	FormatA8              Format = 8
	FormatARGB8888        Format = 11
	FormatBGRA8888        Format = 12
	FormatDXT1            Format = 13
	FormatDXT3            Format = 14
	FormatDXT5            Format = 15
	FormatBGRX8888        Format = 16
	FormatBGR565          Format = 17
	FormatDXT1OneBitAlpha Format = 20
)

const (
	flagEnvMap         = 0x4000
	resourceHighRes    = "\x30\x00\x00"
	headerFixedSize    = 80
	resourceEntrySize  = 8
	noSphereMapVersion = 5
)

var (
	ErrInvalidSignature  = goerr.New("not a VTF file")
	ErrUnsupportedFormat = goerr.New("unsupported VTF image format")
)

// Header holds the fields of a VTF header needed to locate image data
type Header struct {
	MajorVersion uint32
	MinorVersion uint32
	HeaderSize   uint32
	Width        uint16
	Height       uint16
	Flags        uint32
	Frames       uint16
	FirstFrame   uint16
	Format       Format
	MipCount     uint8
	LowFormat    Format
	LowWidth     uint8
	LowHeight    uint8
	Depth        uint16
	NumResources uint32
}

func (f Format) blockInfo() (blockSize, bytesPerBlock int, ok bool) {
	switch f {
	case FormatDXT1, FormatDXT1OneBitAlpha:
		return 4, 8, true
	case FormatDXT3, FormatDXT5:
		return 4, 16, true
	case FormatRGBA8888, FormatABGR8888, FormatARGB8888, FormatBGRA8888, FormatBGRX8888:
		return 1, 4, true
	case FormatRGB888, FormatBGR888:
		return 1, 3, true
	case FormatRGB565, FormatBGR565, FormatIA88:
		return 1, 2, true
	case FormatI8, FormatA8:
		return 1, 1, true
	}
	return 0, 0, false
}

// dataSize returns the byte size of a w x h image in format f
func (f Format) dataSize(w, h int) (int, error) {
	block, size, ok := f.blockInfo()
	if !ok {
		return 0, goerr.Wrap(ErrUnsupportedFormat, "unknown image size", goerr.V("format", int32(f)))
	}
	if block > 1 {
		return max(1, (w+block-1)/block) * max(1, (h+block-1)/block) * size, nil
	}
	return w * h * size, nil
}

// ReadHeader parses the header at the start of data
func ReadHeader(data []byte) (*Header, error) {
	if len(data) < 64 || string(data[:4]) != signature {
		return nil, ErrInvalidSignature
	}

	le := binary.LittleEndian
	h := &Header{
		MajorVersion: le.Uint32(data[4:]),
		MinorVersion: le.Uint32(data[8:]),
		HeaderSize:   le.Uint32(data[12:]),
		Width:        le.Uint16(data[16:]),
		Height:       le.Uint16(data[18:]),
		Flags:        le.Uint32(data[20:]),
		Frames:       le.Uint16(data[24:]),
		FirstFrame:   le.Uint16(data[26:]),
		Format:       Format(int32(le.Uint32(data[52:]))),
		MipCount:     data[56],
		LowFormat:    Format(int32(le.Uint32(data[57:]))),
		LowWidth:     data[61],
		LowHeight:    data[62],
		Depth:        1,
	}
	if h.MajorVersion != 7 {
		return nil, goerr.New("unsupported VTF version", goerr.V("major", h.MajorVersion), goerr.V("minor", h.MinorVersion))
	}
	if h.MinorVersion >= 2 && len(data) >= 65 {
		h.Depth = max(1, le.Uint16(data[63:]))
	}
	if h.MinorVersion >= 3 && len(data) >= 72 {
		h.NumResources = le.Uint32(data[68:])
	}
	h.Frames = max(1, h.Frames)
	h.MipCount = max(1, h.MipCount)
	return h, nil
}

func (h *Header) faces() int {
	if h.Flags&flagEnvMap == 0 {
		return 1
	}
	if h.MinorVersion < noSphereMapVersion && h.FirstFrame == 0xFFFF {
		return 7
	}
	return 6
}

// highResOffset returns where the mipmap chain starts
func (h *Header) highResOffset(data []byte) (int, error) {
	if h.MinorVersion >= 3 && h.NumResources > 0 {
		for i := 0; i < int(h.NumResources); i++ {
			off := headerFixedSize + i*resourceEntrySize
			if off+resourceEntrySize > len(data) {
				break
			}
			if string(data[off:off+3]) == resourceHighRes {
				return int(binary.LittleEndian.Uint32(data[off+4:])), nil
			}
		}
		return 0, goerr.New("VTF has no high resolution image resource")
	}

	offset := int(h.HeaderSize)
	if h.LowFormat != FormatNone && h.LowWidth > 0 && h.LowHeight > 0 {
		size, err := h.LowFormat.dataSize(int(h.LowWidth), int(h.LowHeight))
		if err != nil {
			return 0, err
		}
		offset += size
	}
	return offset, nil
}

// Decode reads a VTF file and returns its largest mipmap of the first frame
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read VTF")
	}
	return DecodeBytes(data)
}

// DecodeBytes is Decode over an in-memory file
func DecodeBytes(data []byte) (*image.NRGBA, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	offset, err := h.highResOffset(data)
	if err != nil {
		return nil, err
	}

	// Mipmaps are stored smallest first; skip every level below the full size
	perMip := int(h.Frames) * h.faces()
	for mip := int(h.MipCount) - 1; mip > 0; mip-- {
		w := max(1, int(h.Width)>>mip)
		hh := max(1, int(h.Height)>>mip)
		d := max(1, int(h.Depth)>>mip)
		size, err := h.Format.dataSize(w, hh)
		if err != nil {
			return nil, err
		}
		offset += size * perMip * d
	}

	w, hh := int(h.Width), int(h.Height)
	size, err := h.Format.dataSize(w, hh)
	if err != nil {
		return nil, err
	}
	if offset < 0 || offset+size > len(data) {
		return nil, goerr.New("VTF image data truncated",
			goerr.V("offset", offset), goerr.V("size", size), goerr.V("file_size", len(data)))
	}

	return decodePixels(h.Format, data[offset:offset+size], w, hh)
}

// DecodeConfig returns the dimensions without decoding pixels
func DecodeConfig(r io.Reader) (image.Config, error) {
	buf := make([]byte, headerFixedSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		return image.Config{}, goerr.Wrap(err, "failed to read VTF header")
	}
	h, err := ReadHeader(buf[:n])
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.NRGBAModel, Width: int(h.Width), Height: int(h.Height)}, nil
}

func init() {
	image.RegisterFormat("vtf", signature, Decode, DecodeConfig)
}

// IsVTF reports whether data starts with the VTF signature
func IsVTF(data []byte) bool {
	return bytes.HasPrefix(data, []byte(signature))
}
