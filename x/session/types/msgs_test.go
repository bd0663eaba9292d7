package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paystream-chain/paystream/x/session/types"
)

func accAddress() string {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address()).String()
}

func validCreateSession() types.MsgCreateSession {
	return types.MsgCreateSession{
		Depositor:            accAddress(),
		Host:                 accAddress(),
		Denom:                "ustream",
		Deposit:              math.NewInt(1_000_000),
		PricePerToken:        math.NewInt(100),
		MaxDurationSeconds:   3600,
		ProofIntervalSeconds: 60,
	}
}

func TestMsgCreateSession_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.MsgCreateSession)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*types.MsgCreateSession) {},
		},
		{
			name:    "invalid depositor",
			mutate:  func(m *types.MsgCreateSession) { m.Depositor = "not-an-address" },
			wantErr: "invalid depositor address",
		},
		{
			name:    "invalid host",
			mutate:  func(m *types.MsgCreateSession) { m.Host = "" },
			wantErr: "invalid host address",
		},
		{
			name:    "depositor equals host",
			mutate:  func(m *types.MsgCreateSession) { m.Host = m.Depositor },
			wantErr: "must be distinct",
		},
		{
			name:    "invalid denom",
			mutate:  func(m *types.MsgCreateSession) { m.Denom = "1bad" },
			wantErr: "invalid denom",
		},
		{
			name:    "zero deposit",
			mutate:  func(m *types.MsgCreateSession) { m.Deposit = math.ZeroInt() },
			wantErr: "deposit must be positive",
		},
		{
			name:    "nil deposit",
			mutate:  func(m *types.MsgCreateSession) { m.Deposit = math.Int{} },
			wantErr: "deposit must be positive",
		},
		{
			name:    "negative price",
			mutate:  func(m *types.MsgCreateSession) { m.PricePerToken = math.NewInt(-1) },
			wantErr: "price per token must be positive",
		},
		{
			name:    "zero duration",
			mutate:  func(m *types.MsgCreateSession) { m.MaxDurationSeconds = 0 },
			wantErr: "max duration",
		},
		{
			name:    "duration above one year",
			mutate:  func(m *types.MsgCreateSession) { m.MaxDurationSeconds = types.MaxSessionDurationSeconds + 1 },
			wantErr: "max duration",
		},
		{
			name:    "zero proof interval",
			mutate:  func(m *types.MsgCreateSession) { m.ProofIntervalSeconds = 0 },
			wantErr: "proof interval",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := validCreateSession()
			tc.mutate(&msg)
			err := msg.ValidateBasic()
			if tc.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}

func TestMsgSubmitProof_ValidateBasic(t *testing.T) {
	valid := types.MsgSubmitProof{
		Host:      accAddress(),
		SessionId: 1,
		Tokens:    math.NewInt(500),
		ProofHash: "abc123",
	}

	tests := []struct {
		name    string
		mutate  func(*types.MsgSubmitProof)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*types.MsgSubmitProof) {},
		},
		{
			name:    "invalid host",
			mutate:  func(m *types.MsgSubmitProof) { m.Host = "bad" },
			wantErr: "invalid host address",
		},
		{
			name:    "zero session id",
			mutate:  func(m *types.MsgSubmitProof) { m.SessionId = 0 },
			wantErr: "session id",
		},
		{
			name:    "zero tokens",
			mutate:  func(m *types.MsgSubmitProof) { m.Tokens = math.ZeroInt() },
			wantErr: "tokens must be positive",
		},
		{
			name:    "empty proof hash",
			mutate:  func(m *types.MsgSubmitProof) { m.ProofHash = "" },
			wantErr: "proof hash",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := valid
			tc.mutate(&msg)
			err := msg.ValidateBasic()
			if tc.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}

func TestMsgCompleteSession_ValidateBasic(t *testing.T) {
	msg := types.MsgCompleteSession{Caller: accAddress(), SessionId: 7}
	require.NoError(t, msg.ValidateBasic())

	msg.SessionId = 0
	require.ErrorContains(t, msg.ValidateBasic(), "session id")

	msg = types.MsgCompleteSession{Caller: "nope", SessionId: 7}
	require.ErrorContains(t, msg.ValidateBasic(), "invalid caller address")
}

func TestMsgDeposit_ValidateBasic(t *testing.T) {
	msg := types.MsgDeposit{
		Owner:  accAddress(),
		Amount: sdk.NewCoin("ustream", math.NewInt(5000)),
	}
	require.NoError(t, msg.ValidateBasic())

	msg.Amount = sdk.NewCoin("ustream", math.ZeroInt())
	require.ErrorContains(t, msg.ValidateBasic(), "amount must be positive")

	msg = types.MsgDeposit{Owner: "bad", Amount: sdk.NewCoin("ustream", math.NewInt(1))}
	require.ErrorContains(t, msg.ValidateBasic(), "invalid owner address")
}

func TestMsgWithdrawEarnings_ValidateBasic(t *testing.T) {
	msg := types.MsgWithdrawEarnings{Host: accAddress(), Denom: "ustream"}
	require.NoError(t, msg.ValidateBasic())

	msg.Denom = "1bad"
	require.ErrorContains(t, msg.ValidateBasic(), "invalid denom")
}

func TestMsgUpdateParams_ValidateBasic(t *testing.T) {
	msg := types.MsgUpdateParams{
		Authority: accAddress(),
		Params:    types.DefaultParams(),
	}
	require.NoError(t, msg.ValidateBasic())

	msg.Params.FeeRateBps = types.FeeDenominator
	require.ErrorContains(t, msg.ValidateBasic(), "fee rate")

	msg = types.MsgUpdateParams{Authority: "bad", Params: types.DefaultParams()}
	require.ErrorContains(t, msg.ValidateBasic(), "invalid authority address")
}
