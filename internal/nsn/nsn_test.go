package nsn

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDigitKnownValues(t *testing.T) {
	tests := []struct {
		prefix string
		check  int
	}{
		// sum = 0, remainder 0, (11-0)%10 = 1
		{"00000000", 1},
		// d0=1 w=2 -> sum=2, (11-2)%10 = 9
		{"10000000", 9},
		// d7=1 w=9 -> sum=9, (11-9)%10 = 2
		{"00000001", 2},
		// sum = 1*2+2*3+3*4+4*5+5*6+6*7+7*8+8*9 = 240, 240%11=9, (11-9)%10=2
		{"12345678", 2},
	}

	for _, tt := range tests {
		check, err := CheckDigit(tt.prefix)
		require.NoError(t, err, "prefix %s", tt.prefix)
		assert.Equal(t, tt.check, check, "prefix %s", tt.prefix)
	}
}

func TestCheckDigitRejectsBadPrefix(t *testing.T) {
	_, err := CheckDigit("1234567")
	assert.Error(t, err)

	_, err = CheckDigit("123456789")
	assert.Error(t, err)

	_, err = CheckDigit("1234567a")
	assert.Error(t, err)
}

func TestFromPrefixAlwaysValid(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 5000; i++ {
		prefix := fmt.Sprintf("%08d", rng.IntN(100000000))
		valid, err := FromPrefix(prefix)
		require.NoError(t, err)
		require.Len(t, valid, Length)
		assert.True(t, Valid(valid), "generated NSN %s should validate", valid)
	}
}

func TestInvalidFromPrefixNeverValid(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 5000; i++ {
		prefix := fmt.Sprintf("%08d", rng.IntN(100000000))
		bad, err := InvalidFromPrefix(prefix)
		require.NoError(t, err)

		assert.False(t, Valid(bad), "deliberately bad NSN %s should not validate", bad)

		good, err := FromPrefix(prefix)
		require.NoError(t, err)
		wantBadCheck := (int(good[Length-1]-'0') + 1) % 10
		assert.Equal(t, wantBadCheck, int(bad[Length-1]-'0'))
	}
}

func TestValidRejectsMalformed(t *testing.T) {
	assert.False(t, Valid(""))
	assert.False(t, Valid("12345678"))
	assert.False(t, Valid("1234567890"))
	assert.False(t, Valid("12345678x"))
}
