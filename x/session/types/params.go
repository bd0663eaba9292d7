package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AssetParams configures one allow-listed payment asset. Each asset has
// independently configurable session size bounds.
type AssetParams struct {
	Denom      string   `json:"denom"`
	MinDeposit math.Int `json:"min_deposit"`
	MaxDeposit math.Int `json:"max_deposit"`
}

// Validate checks a single asset configuration.
func (a AssetParams) Validate() error {
	if err := sdk.ValidateDenom(a.Denom); err != nil {
		return fmt.Errorf("invalid denom %s: %w", a.Denom, err)
	}
	if a.MinDeposit.IsNil() || !a.MinDeposit.IsPositive() {
		return fmt.Errorf("asset %s: min deposit must be positive", a.Denom)
	}
	if a.MaxDeposit.IsNil() || a.MaxDeposit.LT(a.MinDeposit) {
		return fmt.Errorf("asset %s: max deposit must be >= min deposit", a.Denom)
	}
	return nil
}

// Params holds the session module parameters.
type Params struct {
	// FeeRateBps is the treasury fee in parts-per-ten-thousand of the gross
	// host payment.
	FeeRateBps uint64 `json:"fee_rate_bps"`

	// DisputeWindowSeconds is the grace period after session start during
	// which only the depositor may complete the session.
	DisputeWindowSeconds int64 `json:"dispute_window_seconds"`

	// MinTokensPerProof is the protocol-wide floor on claimed tokens per
	// proof submission.
	MinTokensPerProof uint64 `json:"min_tokens_per_proof"`

	// MaxTokensPerSecond is the expected peak work rate used to derive the
	// throughput ceiling on proof claims.
	MaxTokensPerSecond uint64 `json:"max_tokens_per_second"`

	// BurstMultiplier scales the throughput ceiling above the expected rate
	// to tolerate legitimate bursts.
	BurstMultiplier uint64 `json:"burst_multiplier"`

	// AllowedAssets is the set of denoms sessions may be priced in.
	AllowedAssets []AssetParams `json:"allowed_assets"`
}

// DefaultParams returns default session parameters.
func DefaultParams() Params {
	return Params{
		FeeRateBps:           1000, // 10%
		DisputeWindowSeconds: 3600, // 1 hour
		MinTokensPerProof:    100,
		MaxTokensPerSecond:   1000,
		BurstMultiplier:      2,
		AllowedAssets: []AssetParams{
			{
				Denom:      "ustream",
				MinDeposit: math.NewInt(10_000),
				MaxDeposit: math.NewInt(1_000_000_000_000),
			},
		},
	}
}

// Validate performs basic validation of module parameters.
func (p Params) Validate() error {
	if p.FeeRateBps >= FeeDenominator {
		return fmt.Errorf("fee rate %d bps must be below %d", p.FeeRateBps, FeeDenominator)
	}
	if p.DisputeWindowSeconds < 0 {
		return fmt.Errorf("dispute window cannot be negative")
	}
	if p.MinTokensPerProof == 0 {
		return fmt.Errorf("min tokens per proof must be positive")
	}
	if p.MaxTokensPerSecond == 0 {
		return fmt.Errorf("max tokens per second must be positive")
	}
	if p.BurstMultiplier == 0 {
		return fmt.Errorf("burst multiplier must be positive")
	}
	if len(p.AllowedAssets) == 0 {
		return fmt.Errorf("at least one allowed asset is required")
	}
	seen := make(map[string]bool, len(p.AllowedAssets))
	for _, asset := range p.AllowedAssets {
		if err := asset.Validate(); err != nil {
			return err
		}
		if seen[asset.Denom] {
			return fmt.Errorf("duplicate allowed asset %s", asset.Denom)
		}
		seen[asset.Denom] = true
	}
	return nil
}

// AssetFor returns the configuration for denom, if allow-listed.
func (p Params) AssetFor(denom string) (AssetParams, bool) {
	for _, asset := range p.AllowedAssets {
		if asset.Denom == denom {
			return asset, true
		}
	}
	return AssetParams{}, false
}
