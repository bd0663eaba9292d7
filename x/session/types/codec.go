package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
)

// RegisterLegacyAminoCodec registers the necessary x/session interfaces and
// concrete types on the provided LegacyAmino codec. These types are used
// for Amino JSON serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateSession{}, "paystream/session/MsgCreateSession", nil)
	cdc.RegisterConcrete(&MsgSubmitProof{}, "paystream/session/MsgSubmitProof", nil)
	cdc.RegisterConcrete(&MsgCompleteSession{}, "paystream/session/MsgCompleteSession", nil)
	cdc.RegisterConcrete(&MsgTimeoutSession{}, "paystream/session/MsgTimeoutSession", nil)
	cdc.RegisterConcrete(&MsgDeposit{}, "paystream/session/MsgDeposit", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "paystream/session/MsgWithdraw", nil)
	cdc.RegisterConcrete(&MsgWithdrawEarnings{}, "paystream/session/MsgWithdrawEarnings", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "paystream/session/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the x/session interface types with the
// interface registry.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateSession{},
		&MsgSubmitProof{},
		&MsgCompleteSession{},
		&MsgTimeoutSession{},
		&MsgDeposit{},
		&MsgWithdraw{},
		&MsgWithdrawEarnings{},
		&MsgUpdateParams{},
	)

	registry.RegisterImplementations((*txtypes.MsgResponse)(nil),
		&MsgCreateSessionResponse{},
		&MsgSubmitProofResponse{},
		&MsgCompleteSessionResponse{},
		&MsgTimeoutSessionResponse{},
		&MsgDepositResponse{},
		&MsgWithdrawResponse{},
		&MsgWithdrawEarningsResponse{},
		&MsgUpdateParamsResponse{},
	)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(amino)
}
