package types

import "fmt"

// gogoproto message plumbing for the module's wire types. The chain wires
// these through the amino JSON codec; the methods below satisfy the
// proto.Message interface expected by the SDK message router and the
// interface registry.

func (msg *MsgCreateSession) Reset()         { *msg = MsgCreateSession{} }
func (msg *MsgCreateSession) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgCreateSession) ProtoMessage()  {}
func (msg *MsgCreateSession) XXX_MessageName() string {
	return "paystream.session.v1.MsgCreateSession"
}

func (msg *MsgCreateSessionResponse) Reset()         { *msg = MsgCreateSessionResponse{} }
func (msg *MsgCreateSessionResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgCreateSessionResponse) ProtoMessage()  {}
func (msg *MsgCreateSessionResponse) XXX_MessageName() string {
	return "paystream.session.v1.MsgCreateSessionResponse"
}

func (msg *MsgSubmitProof) Reset()         { *msg = MsgSubmitProof{} }
func (msg *MsgSubmitProof) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSubmitProof) ProtoMessage()  {}
func (msg *MsgSubmitProof) XXX_MessageName() string {
	return "paystream.session.v1.MsgSubmitProof"
}

func (msg *MsgSubmitProofResponse) Reset()         { *msg = MsgSubmitProofResponse{} }
func (msg *MsgSubmitProofResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSubmitProofResponse) ProtoMessage()  {}
func (msg *MsgSubmitProofResponse) XXX_MessageName() string {
	return "paystream.session.v1.MsgSubmitProofResponse"
}

func (msg *MsgCompleteSession) Reset()         { *msg = MsgCompleteSession{} }
func (msg *MsgCompleteSession) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgCompleteSession) ProtoMessage()  {}
func (msg *MsgCompleteSession) XXX_MessageName() string {
	return "paystream.session.v1.MsgCompleteSession"
}

func (msg *MsgCompleteSessionResponse) Reset()         { *msg = MsgCompleteSessionResponse{} }
func (msg *MsgCompleteSessionResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgCompleteSessionResponse) ProtoMessage()  {}
func (msg *MsgCompleteSessionResponse) XXX_MessageName() string {
	return "paystream.session.v1.MsgCompleteSessionResponse"
}

func (msg *MsgTimeoutSession) Reset()         { *msg = MsgTimeoutSession{} }
func (msg *MsgTimeoutSession) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgTimeoutSession) ProtoMessage()  {}
func (msg *MsgTimeoutSession) XXX_MessageName() string {
	return "paystream.session.v1.MsgTimeoutSession"
}

func (msg *MsgTimeoutSessionResponse) Reset()         { *msg = MsgTimeoutSessionResponse{} }
func (msg *MsgTimeoutSessionResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgTimeoutSessionResponse) ProtoMessage()  {}
func (msg *MsgTimeoutSessionResponse) XXX_MessageName() string {
	return "paystream.session.v1.MsgTimeoutSessionResponse"
}

func (msg *MsgDeposit) Reset()         { *msg = MsgDeposit{} }
func (msg *MsgDeposit) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgDeposit) ProtoMessage()  {}
func (msg *MsgDeposit) XXX_MessageName() string {
	return "paystream.session.v1.MsgDeposit"
}

func (msg *MsgDepositResponse) Reset()         { *msg = MsgDepositResponse{} }
func (msg *MsgDepositResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgDepositResponse) ProtoMessage()  {}
func (msg *MsgDepositResponse) XXX_MessageName() string {
	return "paystream.session.v1.MsgDepositResponse"
}

func (msg *MsgWithdraw) Reset()         { *msg = MsgWithdraw{} }
func (msg *MsgWithdraw) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgWithdraw) ProtoMessage()  {}
func (msg *MsgWithdraw) XXX_MessageName() string {
	return "paystream.session.v1.MsgWithdraw"
}

func (msg *MsgWithdrawResponse) Reset()         { *msg = MsgWithdrawResponse{} }
func (msg *MsgWithdrawResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgWithdrawResponse) ProtoMessage()  {}
func (msg *MsgWithdrawResponse) XXX_MessageName() string {
	return "paystream.session.v1.MsgWithdrawResponse"
}

func (msg *MsgWithdrawEarnings) Reset()         { *msg = MsgWithdrawEarnings{} }
func (msg *MsgWithdrawEarnings) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgWithdrawEarnings) ProtoMessage()  {}
func (msg *MsgWithdrawEarnings) XXX_MessageName() string {
	return "paystream.session.v1.MsgWithdrawEarnings"
}

func (msg *MsgWithdrawEarningsResponse) Reset()         { *msg = MsgWithdrawEarningsResponse{} }
func (msg *MsgWithdrawEarningsResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgWithdrawEarningsResponse) ProtoMessage()  {}
func (msg *MsgWithdrawEarningsResponse) XXX_MessageName() string {
	return "paystream.session.v1.MsgWithdrawEarningsResponse"
}

func (msg *MsgUpdateParams) Reset()         { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgUpdateParams) ProtoMessage()  {}
func (msg *MsgUpdateParams) XXX_MessageName() string {
	return "paystream.session.v1.MsgUpdateParams"
}

func (msg *MsgUpdateParamsResponse) Reset()         { *msg = MsgUpdateParamsResponse{} }
func (msg *MsgUpdateParamsResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgUpdateParamsResponse) ProtoMessage()  {}
func (msg *MsgUpdateParamsResponse) XXX_MessageName() string {
	return "paystream.session.v1.MsgUpdateParamsResponse"
}
