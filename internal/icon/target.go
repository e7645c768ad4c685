package icon

import (
	"fmt"
	"image/color"
	"path/filepath"
)

// Variant selects the encrypt or decrypt flavour of an icon.
type Variant int

const (
	Encrypt Variant = iota
	Decrypt
)

// String returns "encrypt" or "decrypt".
func (v Variant) String() string {
	switch v {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// FileName returns the GIF file name the node icon is published under.
func (v Variant) FileName() string {
	if v == Encrypt {
		return "PGPEncrypter.gif"
	}
	return "PGPDecrypter.gif"
}

// Badge returns the badge fill colour.
func (v Variant) Badge() color.RGBA {
	if v == Encrypt {
		return BadgeEncrypt
	}
	return BadgeDecrypt
}

// Accent returns the colour associated with the arrow direction.
func (v Variant) Accent() color.RGBA {
	if v == Encrypt {
		return ArrowUp
	}
	return ArrowDown
}

// PackagePath is the Java package directory every icon folder contains.
var PackagePath = filepath.Join("com", "ibm", "broker", "supportpac", "pgp")

// Target is one icon file: a drawing size, a variant and the icon folder it
// belongs to.
type Target struct {
	Size    int
	Variant Variant
	Folder  string
}

// RelPath returns the target path relative to the icon base directory.
func (t Target) RelPath() string {
	return filepath.Join(t.Folder, PackagePath, t.Variant.FileName())
}

func (t Target) String() string {
	return fmt.Sprintf("%s %dx%d %s", t.Folder, t.Size, t.Size, t.Variant)
}

// folders lists the icon folders with the drawing size each one uses.
var folders = []struct {
	name string
	size int
}{
	{"clcl16", 16},
	{"obj16", 16},
	{"obj30", 30},
	{"obj32", 32},
}

// Targets returns every icon in generation order: per folder, encrypt then
// decrypt.
func Targets() []Target {
	targets := make([]Target, 0, len(folders)*2)
	for _, f := range folders {
		for _, v := range []Variant{Encrypt, Decrypt} {
			targets = append(targets, Target{Size: f.size, Variant: v, Folder: f.name})
		}
	}
	return targets
}
