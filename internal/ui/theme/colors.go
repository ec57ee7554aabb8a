//go:build cgo

// Package theme holds the colours and widgets of the raylib preview window.
package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Lake palette for the preview window.
var (
	Water         = rl.NewColor(0x1B, 0x3A, 0x4B, 255) // #1B3A4B
	DeepWater     = rl.NewColor(0x0E, 0x22, 0x2E, 255) // #0E222E
	Card          = rl.NewColor(0x21, 0x2A, 0x31, 250) // #212A31
	Border        = rl.NewColor(0x2E, 0x3A, 0x40, 255) // #2E3A40
	TextPrimary   = rl.NewColor(0xE8, 0xE2, 0xD8, 255) // #E8E2D8
	TextSecondary = rl.NewColor(0xA6, 0xAD, 0xB1, 255) // #A6ADB1
	TextMuted     = rl.NewColor(0x7D, 0x85, 0x8A, 255) // #7D858A
	AccentPerch   = rl.NewColor(0xD9, 0xA6, 0x2E, 255) // #D9A62E
)
