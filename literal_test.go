package untimed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternalLitProjection(t *testing.T) {
	const fullSig = 7

	type tc struct {
		Name    string
		Untimed UntimedLit
		Time    int
	}

	for _, tt := range []tc{
		{"positive time zero", 3, 0},
		{"positive time positive", 5, 4},
		{"negative time zero", -3, 0},
		{"negative time positive", -5, 4},
		{"edge untimed one", 1, 0},
		{"edge untimed max", fullSig, 9},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			il := EncodeInternal(tt.Untimed, tt.Time, fullSig)
			assert.Equal(t, tt.Untimed, il.Untimed(fullSig))
			assert.Equal(t, tt.Time, il.Time(fullSig))
		})
	}
}

func TestInternalLitProjectionExhaustive(t *testing.T) {
	for fullSig := 1; fullSig <= 5; fullSig++ {
		for base := 1; base <= fullSig; base++ {
			for _, sign := range []int32{1, -1} {
				for time := 0; time <= 6; time++ {
					untimed := UntimedLit(sign * int32(base))
					il := EncodeInternal(untimed, time, fullSig)
					assert.Equal(t, untimed, il.Untimed(fullSig))
					assert.Equal(t, time, il.Time(fullSig))
				}
			}
		}
	}
}
