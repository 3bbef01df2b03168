// Package icon prepares window-icon assets for compiled programs: raster
// images become multi-resolution Windows icons, files that already are
// icons get copied next to the build output.
package icon

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"

	xdraw "golang.org/x/image/draw"
)

// entrySizes are the resolutions written into a converted icon, largest
// first.
var entrySizes = []int{256, 128, 64, 48, 32, 16}

// Stage makes the icon named by generation metadata exist in outDir under
// targetBasename. A relative sourcePath is resolved against outDir. Returns
// the staged file's path.
func Stage(sourcePath, outDir, targetBasename string, convert bool) (string, error) {
	src := sourcePath
	if !filepath.IsAbs(src) {
		src = filepath.Join(outDir, src)
	}
	dst := filepath.Join(outDir, targetBasename)
	if convert {
		if err := ConvertToICO(src, dst); err != nil {
			return "", err
		}
		return dst, nil
	}
	if sameFile(src, dst) {
		return dst, nil
	}
	if err := copyFile(src, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// ConvertToICO reads a raster image and writes a Windows icon containing
// PNG-compressed entries at the standard resolutions.
func ConvertToICO(srcPath, dstPath string) error {
	f, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open icon source: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", srcPath, err)
	}

	out, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create icon: %w", err)
	}
	if err := WriteICO(out, img); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", dstPath, err)
	}
	return out.Close()
}

// WriteICO encodes img as an ICO container, one PNG-compressed entry per
// standard size.
func WriteICO(w io.Writer, img image.Image) error {
	entries := make([][]byte, 0, len(entrySizes))
	for _, size := range entrySizes {
		data, err := encodeEntry(img, size)
		if err != nil {
			return err
		}
		entries = append(entries, data)
	}

	// ICONDIR: reserved, type 1 (icon), entry count.
	if err := binary.Write(w, binary.LittleEndian, []uint16{0, 1, uint16(len(entries))}); err != nil {
		return err
	}

	// Entry data begins after the directory.
	offset := uint32(6 + 16*len(entries))
	for i, data := range entries {
		dim := uint8(entrySizes[i])
		if entrySizes[i] >= 256 {
			dim = 0 // 0 encodes 256 in ICONDIRENTRY
		}
		dir := struct {
			Width, Height, Colors, Reserved uint8
			Planes, BitCount                uint16
			Size, Offset                    uint32
		}{
			Width:    dim,
			Height:   dim,
			Planes:   1,
			BitCount: 32,
			Size:     uint32(len(data)),
			Offset:   offset,
		}
		if err := binary.Write(w, binary.LittleEndian, dir); err != nil {
			return err
		}
		offset += uint32(len(data))
	}

	for _, data := range entries {
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

func encodeEntry(img image.Image, size int) ([]byte, error) {
	scaled := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open icon source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("stage icon: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func sameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}
