package money_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"warung-pos/internal/money"
)

func TestRupiah(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Rp0"},
		{500, "Rp500"},
		{12000, "Rp12.000"},
		{27000, "Rp27.000"},
		{1234567, "Rp1.234.567"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, money.Rupiah(tc.in))
	}
}
