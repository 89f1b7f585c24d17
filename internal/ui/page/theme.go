package page

import "image/color"

var (
	colorCyan    = color.NRGBA{R: 0x22, G: 0xd3, B: 0xee, A: 0xff}
	colorRed     = color.NRGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
	colorText    = color.NRGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff}
	colorMuted   = color.NRGBA{R: 0x94, G: 0xa3, B: 0xb8, A: 0xff}
	colorPanel   = color.NRGBA{R: 0x0b, G: 0x12, B: 0x20, A: 0xcc}
	colorOutline = color.NRGBA{R: 0x22, G: 0xd3, B: 0xee, A: 0x55}
	colorBanner  = color.NRGBA{R: 0x7f, G: 0x1d, B: 0x1d, A: 0xee}
)
