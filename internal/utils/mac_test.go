package utils

import (
	"testing"

	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeMAC(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{"AA:BB:CC:DD:EE:FF", "aa:bb:cc:dd:ee:ff", false},
		{"aa-bb-cc-dd-ee-ff", "aa:bb:cc:dd:ee:ff", false},
		{"aabb.ccdd.eeff", "aa:bb:cc:dd:ee:ff", false},
		{" AABBCCDDEEFF ", "aa:bb:cc:dd:ee:ff", false},
		{"aa:bb:cc:dd:ee", "", true},
		{"zz:bb:cc:dd:ee:ff", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeMAC(tt.in)
			if tt.err {
				assert.ErrorIs(t, err, models.ErrInvalidMAC)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHashMAC_DependsOnSecret(t *testing.T) {
	a := HashMAC("tenant-a", "aa:bb:cc:dd:ee:ff")
	b := HashMAC("tenant-b", "aa:bb:cc:dd:ee:ff")

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, HashMAC("tenant-a", "aa:bb:cc:dd:ee:ff"))
}

func TestMaskMAC(t *testing.T) {
	assert.Equal(t, "aa:bb:cc:**:**:**", MaskMAC("aa:bb:cc:dd:ee:ff"))
	assert.Equal(t, "invalid", MaskMAC("nope"))
}
