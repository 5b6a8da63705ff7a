package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreditTiers_OrderedByFloor(t *testing.T) {
	order := []string{"720+", "680-719", "640-679", "600-639", "<600"}
	for i := 1; i < len(order); i++ {
		assert.Greater(t, creditTiers[order[i-1]].NumericFloor, creditTiers[order[i]].NumericFloor)
		assert.Less(t, creditTiers[order[i-1]].RatePercent, creditTiers[order[i]].RatePercent)
	}
}

func TestResolveCreditTier(t *testing.T) {
	tests := []struct {
		name       string
		primary    string
		coBorrower string
		want       string
	}{
		{"single borrower", "680-719", "", "680-719"},
		{"weaker co-borrower", "720+", "<600", "<600"},
		{"weaker primary", "600-639", "720+", "600-639"},
		{"same bucket", "640-679", "640-679", "640-679"},
		{"unknown primary", "800", "", "<600"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCreditTier(tt.primary, tt.coBorrower).Bucket)
		})
	}
}

func TestAssumedRate(t *testing.T) {
	p := exampleProfile()
	tier := LookupCreditTier("720+")
	assert.Equal(t, 6.5, AssumedRate(p, tier))

	raw := exampleRaw()
	raw.InterestRate = "15"
	assert.Equal(t, 10.0, AssumedRate(NormalizeProfile(raw), tier))

	raw.InterestRate = "not a rate"
	assert.Equal(t, 6.5, AssumedRate(NormalizeProfile(raw), tier))
}
