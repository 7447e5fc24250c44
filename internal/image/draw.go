package image

import "image"

// DrawOver composites src onto dst with its top-left corner at pt, using
// Porter-Duff "source over" on straight-alpha pixels. Parts of src falling
// outside dst are clipped. dst is modified in place.
func DrawOver(dst, src *image.NRGBA, pt image.Point) {
	sb := src.Bounds()
	r := image.Rectangle{Min: pt, Max: pt.Add(sb.Size())}.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			si := src.PixOffset(sb.Min.X+x-pt.X, sb.Min.Y+y-pt.Y)
			di := dst.PixOffset(x, y)
			s := src.Pix[si : si+4 : si+4]
			d := dst.Pix[di : di+4 : di+4]
			d[0], d[1], d[2], d[3] = blendNormal(s[0], s[1], s[2], s[3], d[0], d[1], d[2], d[3])
		}
	}
}

// blendNormal performs standard alpha blending (source over destination).
func blendNormal(srcR, srcG, srcB, srcA, dstR, dstG, dstB, dstA uint8) (r, g, b, a uint8) {
	if srcA == 0 {
		return dstR, dstG, dstB, dstA
	}
	if srcA == 255 {
		return srcR, srcG, srcB, 255
	}
	if dstA == 0 {
		return srcR, srcG, srcB, srcA
	}

	// out_a = src_a + dst_a * (1 - src_a)
	// out_c = (src_c * src_a + dst_c * dst_a * (1 - src_a)) / out_a
	srcAlpha := float64(srcA) / 255.0
	dstAlpha := float64(dstA) / 255.0
	outAlpha := srcAlpha + dstAlpha*(1-srcAlpha)

	r = uint8((float64(srcR)*srcAlpha + float64(dstR)*dstAlpha*(1-srcAlpha)) / outAlpha)
	g = uint8((float64(srcG)*srcAlpha + float64(dstG)*dstAlpha*(1-srcAlpha)) / outAlpha)
	b = uint8((float64(srcB)*srcAlpha + float64(dstB)*dstAlpha*(1-srcAlpha)) / outAlpha)
	a = uint8(outAlpha*255.0 + 0.5)

	return r, g, b, a
}
