package skydive

// 1bpp sprites, one byte per row, MSB is the leftmost pixel.
var (
	spriteChute = []byte{
		0b00111100,
		0b01111110,
		0b10000001,
		0b01011010,
		0b00011000,
		0b00100100,
		0b00100100,
		0b00000000,
	}

	spriteSplat = []byte{
		0b00111100,
		0b01111110,
		0b01011010,
		0b01011010,
	}

	spriteFalling = []byte{
		0b00000100,
		0b00001000,
		0b10101101,
		0b01011110,
		0b00111100,
	}

	// Wind flags indexed by Wind.Strength.
	spriteFlags = [4][]byte{
		{
			0b00000000,
			0b10000000,
			0b11000000,
			0b11000000,
			0b11000000,
			0b10000000,
			0b10000000,
			0b10000000,
		},
		{
			0b00000000,
			0b10000000,
			0b11100000,
			0b11110000,
			0b11110000,
			0b10010000,
			0b10000000,
			0b10000000,
		},
		{
			0b00000000,
			0b10000000,
			0b11100000,
			0b11111100,
			0b11110000,
			0b10000000,
			0b10000000,
			0b10000000,
		},
		{
			0b00000000,
			0b10000000,
			0b11100000,
			0b11111111,
			0b11111000,
			0b10000000,
			0b10000000,
			0b10000000,
		},
	}
)
