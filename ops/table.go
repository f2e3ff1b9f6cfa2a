package ops

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// A Tag identifies a transaction or query variant.
type Tag uint8

// Transaction tags.
const (
	TagAccountCreate Tag = iota + 1
	TagAccountUpdate
	TagAccountDelete
	TagTransfer
	TagAccountAllowanceApprove
	TagAccountAllowanceDelete
	TagFileCreate
	TagFileUpdate
	TagFileAppend
	TagFileDelete
	TagContractCreate
	TagContractUpdate
	TagContractExecute
	TagContractDelete
	TagEthereum
	TagSystemDelete
	TagSystemUndelete
	TagFreeze
	TagTopicCreate
	TagTopicUpdate
	TagTopicDelete
	TagTopicMessageSubmit
	TagTokenCreate
	TagTokenUpdate
	TagTokenDelete
	TagTokenMint
	TagTokenBurn
	TagTokenWipe
	TagTokenFreeze
	TagTokenUnfreeze
	TagTokenGrantKyc
	TagTokenRevokeKyc
	TagTokenAssociate
	TagTokenDissociate
	TagTokenFeeScheduleUpdate
	TagTokenPause
	TagTokenUnpause
	TagTokenUpdateNfts
	TagTokenReject
	TagTokenAirdrop
	TagTokenCancelAirdrop
	TagTokenClaimAirdrop
	TagScheduleCreate
	TagScheduleSign
	TagScheduleDelete
	TagPrng
	TagUncheckedSubmit
	TagNodeCreate
	TagNodeUpdate
	TagNodeDelete

	// Query tags.
	TagAccountBalance
	TagAccountInfo
	TagAccountRecords
	TagTransactionReceipt
	TagTransactionRecord
	TagFileContents
	TagFileInfo
	TagContractInfo
	TagContractBytecode
	TagContractCallLocal
	TagTopicInfo
	TagTokenInfo
	TagTokenNftInfo
	TagScheduleInfo
	TagNetworkVersionInfo

	numTags
)

// gRPC service names.
const (
	ServiceCrypto        = "proto.CryptoService"
	ServiceFile          = "proto.FileService"
	ServiceSmartContract = "proto.SmartContractService"
	ServiceConsensus     = "proto.ConsensusService"
	ServiceToken         = "proto.TokenService"
	ServiceSchedule      = "proto.ScheduleService"
	ServiceFreeze        = "proto.FreezeService"
	ServiceNetwork       = "proto.NetworkService"
	ServiceUtil          = "proto.UtilService"
	ServiceAddressBook   = "proto.AddressBookService"
)

// A RemoteMethod names the service method a request is dispatched to.
type RemoteMethod struct {
	Service string
	Method  string
}

// FullName returns the gRPC method name, e.g.
// "/proto.CryptoService/createAccount".
func (m RemoteMethod) FullName() string { return "/" + m.Service + "/" + m.Method }

// String implements fmt.Stringer.
func (m RemoteMethod) String() string { return m.FullName() }

// A descriptor is the static description of a variant.
type descriptor struct {
	name  string
	query bool
	// field is the member of TransactionBody (or Query) carrying the variant.
	field protowire.Number
	// scheduled is the member of SchedulableTransactionBody; zero if the
	// variant cannot be scheduled.
	scheduled protowire.Number
	method    RemoteMethod
	// contractMethod replaces method when the body names a contract.
	contractMethod RemoteMethod
	// failure formats the message of an ExecutionError; it takes the status.
	failure string
}

func tx(name string, field, scheduled protowire.Number, service, method, failure string) descriptor {
	return descriptor{
		name:      name,
		field:     field,
		scheduled: scheduled,
		method:    RemoteMethod{service, method},
		failure:   failure + ", status: %v",
	}
}

func query(name string, field protowire.Number, service, method, failure string) descriptor {
	return descriptor{
		name:    name,
		query:   true,
		field:   field,
		method:  RemoteMethod{service, method},
		failure: failure + ", status: %v",
	}
}

var descriptors = [numTags]descriptor{
	TagAccountCreate:           tx("AccountCreate", 11, 9, ServiceCrypto, "createAccount", "Unable to create account"),
	TagAccountUpdate:           tx("AccountUpdate", 15, 12, ServiceCrypto, "updateAccount", "Unable to update account"),
	TagAccountDelete:           tx("AccountDelete", 12, 10, ServiceCrypto, "cryptoDelete", "Unable to delete account"),
	TagTransfer:                tx("Transfer", 14, 11, ServiceCrypto, "cryptoTransfer", "Unable to transfer"),
	TagAccountAllowanceApprove: tx("AccountAllowanceApprove", 48, 7, ServiceCrypto, "approveAllowances", "Unable to approve allowances"),
	TagAccountAllowanceDelete:  tx("AccountAllowanceDelete", 49, 8, ServiceCrypto, "deleteAllowances", "Unable to delete allowances"),
	TagFileCreate:              tx("FileCreate", 17, 14, ServiceFile, "createFile", "Unable to create file"),
	TagFileUpdate:              tx("FileUpdate", 19, 16, ServiceFile, "updateFile", "Unable to update file"),
	TagFileAppend:              tx("FileAppend", 16, 13, ServiceFile, "appendContent", "Unable to append to file"),
	TagFileDelete:              tx("FileDelete", 18, 15, ServiceFile, "deleteFile", "Unable to delete file"),
	TagContractCreate:          tx("ContractCreate", 8, 4, ServiceSmartContract, "createContract", "Unable to create contract"),
	TagContractUpdate:          tx("ContractUpdate", 9, 5, ServiceSmartContract, "updateContract", "Unable to update contract"),
	TagContractExecute:         tx("ContractExecute", 7, 3, ServiceSmartContract, "contractCallMethod", "Unable to execute contract"),
	TagContractDelete:          tx("ContractDelete", 22, 6, ServiceSmartContract, "deleteContract", "Unable to delete contract"),
	TagEthereum:                tx("Ethereum", 50, 0, ServiceSmartContract, "callEthereum", "Unable to submit ethereum transaction"),
	TagSystemDelete:            tx("SystemDelete", 20, 17, ServiceFile, "systemDelete", "Unable to delete entity"),
	TagSystemUndelete:          tx("SystemUndelete", 21, 18, ServiceFile, "systemUndelete", "Unable to undelete entity"),
	TagFreeze:                  tx("Freeze", 23, 0, ServiceFreeze, "freeze", "Unable to freeze network"),
	TagTopicCreate:             tx("TopicCreate", 24, 20, ServiceConsensus, "createTopic", "Unable to create topic"),
	TagTopicUpdate:             tx("TopicUpdate", 25, 21, ServiceConsensus, "updateTopic", "Unable to update topic"),
	TagTopicDelete:             tx("TopicDelete", 26, 22, ServiceConsensus, "deleteTopic", "Unable to delete topic"),
	TagTopicMessageSubmit:      tx("TopicMessageSubmit", 27, 23, ServiceConsensus, "submitMessage", "Unable to submit topic message"),
	TagTokenCreate:             tx("TokenCreate", 29, 24, ServiceToken, "createToken", "Unable to create token"),
	TagTokenUpdate:             tx("TokenUpdate", 36, 30, ServiceToken, "updateToken", "Unable to update token"),
	TagTokenDelete:             tx("TokenDelete", 35, 29, ServiceToken, "deleteToken", "Unable to delete token"),
	TagTokenMint:               tx("TokenMint", 37, 31, ServiceToken, "mintToken", "Unable to mint token"),
	TagTokenBurn:               tx("TokenBurn", 38, 32, ServiceToken, "burnToken", "Unable to burn token"),
	TagTokenWipe:               tx("TokenWipe", 39, 33, ServiceToken, "wipeTokenAccount", "Unable to wipe token"),
	TagTokenFreeze:             tx("TokenFreeze", 31, 25, ServiceToken, "freezeTokenAccount", "Unable to freeze token account"),
	TagTokenUnfreeze:           tx("TokenUnfreeze", 32, 26, ServiceToken, "unfreezeTokenAccount", "Unable to unfreeze token account"),
	TagTokenGrantKyc:           tx("TokenGrantKyc", 33, 27, ServiceToken, "grantKycToTokenAccount", "Unable to grant KYC"),
	TagTokenRevokeKyc:          tx("TokenRevokeKyc", 34, 28, ServiceToken, "revokeKycFromTokenAccount", "Unable to revoke KYC"),
	TagTokenAssociate:          tx("TokenAssociate", 40, 34, ServiceToken, "associateTokens", "Unable to associate tokens"),
	TagTokenDissociate:         tx("TokenDissociate", 41, 35, ServiceToken, "dissociateTokens", "Unable to dissociate tokens"),
	TagTokenFeeScheduleUpdate:  tx("TokenFeeScheduleUpdate", 45, 0, ServiceToken, "updateTokenFeeSchedule", "Unable to update token fee schedule"),
	TagTokenPause:              tx("TokenPause", 46, 37, ServiceToken, "pauseToken", "Unable to pause token"),
	TagTokenUnpause:            tx("TokenUnpause", 47, 38, ServiceToken, "unpauseToken", "Unable to unpause token"),
	TagTokenUpdateNfts:         tx("TokenUpdateNfts", 53, 41, ServiceToken, "updateNfts", "Unable to update NFTs"),
	TagTokenReject:             tx("TokenReject", 57, 45, ServiceToken, "rejectToken", "Unable to reject tokens"),
	TagTokenAirdrop:            tx("TokenAirdrop", 58, 48, ServiceToken, "airdropTokens", "Unable to airdrop tokens"),
	TagTokenCancelAirdrop:      tx("TokenCancelAirdrop", 59, 46, ServiceToken, "cancelAirdrop", "Unable to cancel airdrop"),
	TagTokenClaimAirdrop:       tx("TokenClaimAirdrop", 60, 47, ServiceToken, "claimAirdrop", "Unable to claim airdrop"),
	TagScheduleCreate:          tx("ScheduleCreate", 42, 0, ServiceSchedule, "createSchedule", "Unable to create schedule"),
	TagScheduleSign:            tx("ScheduleSign", 44, 0, ServiceSchedule, "signSchedule", "Unable to sign schedule"),
	TagScheduleDelete:          tx("ScheduleDelete", 43, 36, ServiceSchedule, "deleteSchedule", "Unable to delete schedule"),
	TagPrng:                    tx("Prng", 52, 39, ServiceUtil, "prng", "Unable to generate random number"),
	TagUncheckedSubmit:         tx("UncheckedSubmit", 28, 0, ServiceNetwork, "uncheckedSubmit", "Unable to submit transaction"),
	TagNodeCreate:              tx("NodeCreate", 54, 0, ServiceAddressBook, "createNode", "Unable to create node"),
	TagNodeUpdate:              tx("NodeUpdate", 55, 0, ServiceAddressBook, "updateNode", "Unable to update node"),
	TagNodeDelete:              tx("NodeDelete", 56, 0, ServiceAddressBook, "deleteNode", "Unable to delete node"),

	TagAccountBalance:     query("AccountBalance", 7, ServiceCrypto, "cryptoGetBalance", "Unable to get account balance"),
	TagAccountInfo:        query("AccountInfo", 9, ServiceCrypto, "getAccountInfo", "Unable to get account info"),
	TagAccountRecords:     query("AccountRecords", 8, ServiceCrypto, "getAccountRecords", "Unable to get account records"),
	TagTransactionReceipt: query("TransactionReceipt", 14, ServiceCrypto, "getTransactionReceipts", "Unable to get transaction receipt"),
	TagTransactionRecord:  query("TransactionRecord", 15, ServiceCrypto, "getTxRecordByTxID", "Unable to get transaction record"),
	TagFileContents:       query("FileContents", 12, ServiceFile, "getFileContent", "Unable to get file contents"),
	TagFileInfo:           query("FileInfo", 13, ServiceFile, "getFileInfo", "Unable to get file info"),
	TagContractInfo:       query("ContractInfo", 4, ServiceSmartContract, "getContractInfo", "Unable to get contract info"),
	TagContractBytecode:   query("ContractBytecode", 5, ServiceSmartContract, "ContractGetBytecode", "Unable to get contract bytecode"),
	TagContractCallLocal:  query("ContractCallLocal", 3, ServiceSmartContract, "contractCallLocalMethod", "Unable to call contract"),
	TagTopicInfo:          query("TopicInfo", 50, ServiceConsensus, "getTopicInfo", "Unable to get topic info"),
	TagTokenInfo:          query("TokenInfo", 52, ServiceToken, "getTokenInfo", "Unable to get token info"),
	TagTokenNftInfo:       query("TokenNftInfo", 55, ServiceToken, "getTokenNftInfo", "Unable to get NFT info"),
	TagScheduleInfo:       query("ScheduleInfo", 53, ServiceSchedule, "getScheduleInfo", "Unable to get schedule info"),
	TagNetworkVersionInfo: query("NetworkVersionInfo", 51, ServiceNetwork, "getVersionInfo", "Unable to get version info"),
}

func init() {
	for _, t := range []Tag{TagSystemDelete, TagSystemUndelete} {
		d := &descriptors[t]
		d.contractMethod = RemoteMethod{ServiceSmartContract, d.method.Method}
	}
}

// byField indexes transaction and query tags by their envelope field.
var byField = func() (m [2]map[protowire.Number]Tag) {
	m[0], m[1] = make(map[protowire.Number]Tag), make(map[protowire.Number]Tag)
	for t := Tag(1); t < numTags; t++ {
		d := descriptors[t]
		if d.query {
			m[1][d.field] = t
		} else {
			m[0][d.field] = t
		}
	}
	return
}()

// Tags returns every known tag, transactions first.
func Tags() []Tag {
	tags := make([]Tag, 0, numTags-1)
	for t := Tag(1); t < numTags; t++ {
		tags = append(tags, t)
	}
	return tags
}

func (t Tag) desc() descriptor {
	if t == 0 || t >= numTags {
		return descriptor{}
	}
	return descriptors[t]
}

// String implements fmt.Stringer.
func (t Tag) String() string {
	if name := t.desc().name; name != "" {
		return name
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// IsQuery reports whether t identifies a query.
func (t Tag) IsQuery() bool { return t.desc().query }

// IsSchedulable reports whether a transaction with tag t can be wrapped for
// deferred execution.
func (t Tag) IsSchedulable() bool { return t.desc().scheduled != 0 }

// Method returns the default remote method of t.
func (t Tag) Method() RemoteMethod { return t.desc().method }

// FailureMessage formats the message reported when a variant fails with the
// given status.
func (t Tag) FailureMessage(status fmt.Stringer) string {
	d := t.desc()
	if d.failure == "" {
		return fmt.Sprintf("%v failed, status: %v", t, status)
	}
	return fmt.Sprintf(d.failure, status)
}
