package hidraw

import "github.com/gz302-tools/gz302ctl/lights"

// FrameSize is the fixed length of every command sent to the hardware.
// Shorter payloads are zero-padded on the right.
const FrameSize = 64

// Frame is one 64-byte HID command.
type Frame [FrameSize]byte

func frame(payload ...byte) Frame {
	var f Frame
	copy(f[:], payload)
	return f
}

// LightbarPower builds the lightbar power on/off command.
func LightbarPower(on bool) Frame {
	if on {
		return frame(0x5d, 0xbd, 0x01, 0xae, 0x05, 0x22, 0xff, 0xff)
	}
	return frame(0x5d, 0xbd, 0x01, 0xaa, 0x00, 0x00, 0xff, 0xff)
}

// LightbarColor builds the lightbar static-color command. Channel bytes are
// raw magnitudes; no gamma correction happens at this layer.
func LightbarColor(c lights.Color) Frame {
	return frame(
		0x5d, 0xb3, 0x00, 0x00,
		c.Red, c.Green, c.Blue,
		0xeb, 0x00, 0x00,
		0xff, 0xff, 0xff,
	)
}

// KeyboardColor builds the keyboard static-color command. It takes effect
// only after a KeyboardCommit frame follows it.
func KeyboardColor(c lights.Color) Frame {
	return frame(0x5d, 0xb3, 0x00, 0x00, c.Red, c.Green, c.Blue)
}

// KeyboardCommit latches the previously written keyboard color.
func KeyboardCommit() Frame {
	return frame(0x5d, 0xb5, 0x00, 0x00)
}
