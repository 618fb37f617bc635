package favicon

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// ICO container layout: a 6-byte ICONDIR header, one 16-byte directory
// entry per image, then the image data. Entries here are PNG-compressed,
// which every browser since Vista-era Windows accepts.

const (
	icoHeaderSize = 6
	icoEntrySize  = 16
)

type icoEntry struct {
	size int
	data []byte
}

// writeICO encodes the images into a single .ico file at path.
func writeICO(path string, images ...*image.RGBA) error {
	entries := make([]icoEntry, 0, len(images))
	for _, img := range images {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("failed to encode ico entry: %w", err)
		}
		entries = append(entries, icoEntry{
			size: img.Bounds().Dx(),
			data: buf.Bytes(),
		})
	}

	var out bytes.Buffer
	// ICONDIR: reserved, type (1 = icon), count.
	writeU16(&out, 0)
	writeU16(&out, 1)
	writeU16(&out, uint16(len(entries)))

	offset := icoHeaderSize + icoEntrySize*len(entries)
	for _, e := range entries {
		// Width/height bytes: 0 denotes 256.
		out.WriteByte(dimensionByte(e.size))
		out.WriteByte(dimensionByte(e.size))
		out.WriteByte(0) // palette size
		out.WriteByte(0) // reserved
		writeU16(&out, 1)  // color planes
		writeU16(&out, 32) // bits per pixel
		writeU32(&out, uint32(len(e.data)))
		writeU32(&out, uint32(offset))
		offset += len(e.data)
	}
	for _, e := range entries {
		out.Write(e.data)
	}

	return os.WriteFile(path, out.Bytes(), 0644)
}

func dimensionByte(size int) byte {
	if size >= 256 {
		return 0
	}
	return byte(size)
}

func writeU16(buf *bytes.Buffer, v uint16) {
	_ = binary.Write(buf, binary.LittleEndian, v)
}

func writeU32(buf *bytes.Buffer, v uint32) {
	_ = binary.Write(buf, binary.LittleEndian, v)
}

// placeholderSize matches the fixed-size degraded favicon.ico: a minimal
// ICO header plus zero padding.
const placeholderSize = 1014

// placeholderHeader is a minimal valid ICONDIR + entry stub declaring a
// single 16x16 image.
var placeholderHeader = []byte{
	0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
	0x10, 0x10, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
}

// WritePlaceholder writes the degraded favicon.ico into dir so that
// tooling expecting the file to exist does not fail outright.
func WritePlaceholder(dir string) error {
	data := make([]byte, placeholderSize)
	copy(data, placeholderHeader)
	return os.WriteFile(filepath.Join(dir, FileICO), data, 0644)
}
