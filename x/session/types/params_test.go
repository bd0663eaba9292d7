package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paystream-chain/paystream/x/session/types"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.Params)
		wantErr string
	}{
		{
			name:   "default params valid",
			mutate: func(*types.Params) {},
		},
		{
			name:    "fee rate at denominator",
			mutate:  func(p *types.Params) { p.FeeRateBps = types.FeeDenominator },
			wantErr: "fee rate",
		},
		{
			name:    "negative dispute window",
			mutate:  func(p *types.Params) { p.DisputeWindowSeconds = -1 },
			wantErr: "dispute window",
		},
		{
			name:    "zero min tokens per proof",
			mutate:  func(p *types.Params) { p.MinTokensPerProof = 0 },
			wantErr: "min tokens per proof",
		},
		{
			name:    "zero max tokens per second",
			mutate:  func(p *types.Params) { p.MaxTokensPerSecond = 0 },
			wantErr: "max tokens per second",
		},
		{
			name:    "zero burst multiplier",
			mutate:  func(p *types.Params) { p.BurstMultiplier = 0 },
			wantErr: "burst multiplier",
		},
		{
			name:    "no allowed assets",
			mutate:  func(p *types.Params) { p.AllowedAssets = nil },
			wantErr: "at least one allowed asset",
		},
		{
			name: "duplicate asset",
			mutate: func(p *types.Params) {
				p.AllowedAssets = append(p.AllowedAssets, p.AllowedAssets[0])
			},
			wantErr: "duplicate allowed asset",
		},
		{
			name: "asset max below min",
			mutate: func(p *types.Params) {
				p.AllowedAssets[0].MaxDeposit = p.AllowedAssets[0].MinDeposit.SubRaw(1)
			},
			wantErr: "max deposit",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := types.DefaultParams()
			tc.mutate(&params)
			err := params.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}

func TestParams_AssetFor(t *testing.T) {
	params := types.DefaultParams()
	params.AllowedAssets = append(params.AllowedAssets, types.AssetParams{
		Denom:      "uatom",
		MinDeposit: math.NewInt(1),
		MaxDeposit: math.NewInt(1000),
	})

	asset, ok := params.AssetFor("uatom")
	require.True(t, ok)
	require.Equal(t, "uatom", asset.Denom)

	_, ok = params.AssetFor("uosmo")
	require.False(t, ok)
}

func TestSessionStatus(t *testing.T) {
	require.True(t, types.StatusActive.Valid())
	require.False(t, types.StatusActive.IsTerminal())
	require.True(t, types.StatusCompleted.IsTerminal())
	require.True(t, types.StatusTimedOut.IsTerminal())
	require.False(t, types.SessionStatus("cancelled").Valid())
}
