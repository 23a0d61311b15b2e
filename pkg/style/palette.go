package style

// ansiAnchors are the RGB values the 16 basic colors are matched against.
var ansiAnchors = [16]rgb{
	{0x00, 0x00, 0x00}, // black
	{0x80, 0x00, 0x00}, // red
	{0x00, 0x80, 0x00}, // green
	{0x80, 0x80, 0x00}, // yellow
	{0x00, 0x00, 0x80}, // blue
	{0x80, 0x00, 0x80}, // magenta
	{0x00, 0x80, 0x80}, // cyan
	{0xc0, 0xc0, 0xc0}, // white
	{0x80, 0x80, 0x80}, // bright black
	{0xff, 0x00, 0x00}, // bright red
	{0x00, 0xff, 0x00}, // bright green
	{0xff, 0xff, 0x00}, // bright yellow
	{0x00, 0x00, 0xff}, // bright blue
	{0xff, 0x00, 0xff}, // bright magenta
	{0x00, 0xff, 0xff}, // bright cyan
	{0xff, 0xff, 0xff}, // bright white
}

// Levels of the 6x6x6 color cube (indices 16-231).
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// paletteRGB returns the RGB value of an xterm 256-color index.
func paletteRGB(i uint8) rgb {
	switch {
	case i < 16:
		return ansiAnchors[i]
	case i < 232:
		i -= 16
		return rgb{cubeLevels[i/36], cubeLevels[(i%36)/6], cubeLevels[i%6]}
	default:
		v := 8 + 10*(i-232)
		return rgb{v, v, v}
	}
}

// nearestANSI256 maps c onto the color cube or the grayscale ramp, whichever
// is closer. The basic 16 colors are skipped since terminals theme them.
func nearestANSI256(c rgb) uint8 {
	qr, qg, qb := nearestLevel(c.R), nearestLevel(c.G), nearestLevel(c.B)
	cube := rgb{cubeLevels[qr], cubeLevels[qg], cubeLevels[qb]}
	cubeIdx := 16 + 36*qr + 6*qg + qb

	avg := (int(c.R) + int(c.G) + int(c.B)) / 3
	grayIdx := 23
	if avg < 238 {
		grayIdx = max(0, (avg-3)/10)
	}
	gv := uint8(8 + 10*grayIdx)

	if dist2(c, cube) <= dist2(c, rgb{gv, gv, gv}) {
		return cubeIdx
	}
	return uint8(232 + grayIdx)
}

// nearestANSI returns the index of the closest basic color.
func nearestANSI(c rgb) uint8 {
	best, bestDist := 0, -1
	for i, a := range ansiAnchors {
		if d := dist2(c, a); bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}

func nearestLevel(v uint8) uint8 {
	best, bestDist := 0, 256
	for i, l := range cubeLevels {
		d := int(v) - int(l)
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}

func dist2(a, b rgb) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
